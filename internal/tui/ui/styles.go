// Package ui provides the shared palette, styles and key bindings of the
// terminal output.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette colors. Each adapts to light and dark terminals.
var (
	ColorPrimary   = lipgloss.AdaptiveColor{Light: "#0e7490", Dark: "#67e8f9"} // Cyan
	ColorSecondary = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#c4b5fd"} // Violet
	ColorSuccess   = lipgloss.AdaptiveColor{Light: "#15803d", Dark: "#86efac"} // Green
	ColorWarning   = lipgloss.AdaptiveColor{Light: "#b45309", Dark: "#fcd34d"} // Amber
	ColorError     = lipgloss.AdaptiveColor{Light: "#b91c1c", Dark: "#fca5a5"} // Red
	ColorMuted     = lipgloss.AdaptiveColor{Light: "#64748b", Dark: "#94a3b8"} // Slate
	ColorText      = lipgloss.AdaptiveColor{Light: "#1e293b", Dark: "#e2e8f0"}
)

// Styles contains the lipgloss styles used by the CLI and the picker.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Text     lipgloss.Style

	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	ListItem       lipgloss.Style
	ListItemActive lipgloss.Style

	// Code renders config and CSS snippets.
	Code lipgloss.Style
	// Panel frames banners and manual instructions.
	Panel lipgloss.Style

	Help    lipgloss.Style
	HelpKey lipgloss.Style

	DiffAdd    lipgloss.Style
	DiffRemove lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),

		Subtitle: lipgloss.NewStyle().
			Foreground(ColorSecondary),

		Text: lipgloss.NewStyle().
			Foreground(ColorText),

		Success: lipgloss.NewStyle().
			Foreground(ColorSuccess),

		Warning: lipgloss.NewStyle().
			Foreground(ColorWarning),

		Error: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(ColorPrimary),

		ListItem: lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(ColorText),

		ListItemActive: lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(ColorPrimary).
			Bold(true),

		Code: lipgloss.NewStyle().
			Foreground(ColorSecondary),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2),

		Help: lipgloss.NewStyle().
			Foreground(ColorMuted),

		HelpKey: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),

		DiffAdd: lipgloss.NewStyle().
			Foreground(ColorSuccess),

		DiffRemove: lipgloss.NewStyle().
			Foreground(ColorError),
	}
}

// PlainStyles returns styles that render text unchanged, for pipes and
// tests.
func PlainStyles() Styles {
	s := lipgloss.NewStyle()
	return Styles{
		Title: s, Subtitle: s, Text: s,
		Success: s, Warning: s, Error: s, Info: s,
		ListItem: s.PaddingLeft(2), ListItemActive: s.PaddingLeft(2),
		Code: s, Panel: s,
		Help: s, HelpKey: s,
		DiffAdd: s, DiffRemove: s,
	}
}
