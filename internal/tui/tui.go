// Package tui provides the interactive terminal entry points of cornershape.
package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/felixgeelhaar/cornershape/internal/domain/preset"
	"github.com/felixgeelhaar/cornershape/internal/tui/ui"
)

// PickerOptions configures the preset picker.
type PickerOptions struct {
	Input  io.Reader
	Output io.Writer
	Styles ui.Styles
}

// NewPickerOptions creates default picker options using the process's
// terminal.
func NewPickerOptions() PickerOptions {
	return PickerOptions{Styles: ui.DefaultStyles()}
}

// PickerResult is the outcome of RunPresetPicker.
type PickerResult struct {
	Preset    preset.Preset
	Cancelled bool
}

// RunPresetPicker lets the user pick one of presets with the arrow keys.
// A cancelled picker reports the first preset with Cancelled set.
func RunPresetPicker(ctx context.Context, presets []preset.Preset, opts PickerOptions) (*PickerResult, error) {
	if len(presets) == 0 {
		return nil, fmt.Errorf("no presets to choose from")
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}

	p := tea.NewProgram(newPickerModel(presets, opts.Styles), programOpts...)
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("preset picker failed: %w", err)
	}

	m, ok := finalModel.(pickerModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}
	return m.result(), nil
}
