package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/felixgeelhaar/cornershape/internal/domain/preset"
	"github.com/felixgeelhaar/cornershape/internal/tui/components"
	"github.com/felixgeelhaar/cornershape/internal/tui/ui"
)

type pickerModel struct {
	presets   []preset.Preset
	list      components.List
	keys      ui.KeyMap
	styles    ui.Styles
	chosen    int
	done      bool
	cancelled bool
}

func newPickerModel(presets []preset.Preset, styles ui.Styles) pickerModel {
	items := make([]components.ListItem, len(presets))
	for i, p := range presets {
		items[i] = components.ListItem{Key: p.Key, Title: p.Name, Description: p.Description}
	}
	return pickerModel{
		presets: presets,
		list:    components.NewList(items).WithStyles(styles),
		keys:    ui.DefaultKeyMap(),
		styles:  styles,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case components.ListSelectedMsg:
		m.chosen = msg.Index
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Cancel) || key.Matches(msg, m.keys.Quit) {
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Choose Your Corner Shape Style"))
	b.WriteString("\n\n")
	b.WriteString(m.list.View())
	b.WriteString("\n\n")

	help := make([]string, 0, len(m.keys.ShortHelp()))
	for _, binding := range m.keys.ShortHelp() {
		h := binding.Help()
		help = append(help, m.styles.HelpKey.Render(h.Key)+" "+m.styles.Help.Render(h.Desc))
	}
	b.WriteString(strings.Join(help, m.styles.Help.Render(" • ")))
	b.WriteString("\n")
	return b.String()
}

func (m pickerModel) result() *PickerResult {
	if m.cancelled || !m.done {
		return &PickerResult{Preset: m.presets[0], Cancelled: true}
	}
	return &PickerResult{Preset: m.presets[m.chosen]}
}
