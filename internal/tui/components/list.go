// Package components provides reusable Bubble Tea components.
package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/felixgeelhaar/cornershape/internal/tui/ui"
)

// ListItem is a single entry of a List.
type ListItem struct {
	// Key is a shortcut; typing it selects the item at once.
	Key         string
	Title       string
	Description string
}

// ListSelectedMsg is sent when an item is selected.
type ListSelectedMsg struct {
	Item  ListItem
	Index int
}

// List is a navigable single-choice list.
type List struct {
	items    []ListItem
	selected int
	keys     ui.KeyMap
	styles   ui.Styles
}

// NewList creates a list with the given items.
func NewList(items []ListItem) List {
	return List{
		items:  items,
		keys:   ui.DefaultKeyMap(),
		styles: ui.DefaultStyles(),
	}
}

// Items returns a copy of the list items.
func (l List) Items() []ListItem {
	result := make([]ListItem, len(l.items))
	copy(result, l.items)
	return result
}

// SelectedIndex returns the highlighted index.
func (l List) SelectedIndex() int {
	return l.selected
}

// SelectedItem returns the highlighted item, or nil if the list is empty.
func (l List) SelectedItem() *ListItem {
	if len(l.items) == 0 {
		return nil
	}
	item := l.items[l.selected]
	return &item
}

// SetSelected highlights index, clamped to the valid range.
func (l List) SetSelected(index int) List {
	if index >= len(l.items) {
		index = len(l.items) - 1
	}
	if index < 0 {
		index = 0
	}
	l.selected = index
	return l
}

// WithStyles returns the list with custom styles.
func (l List) WithStyles(styles ui.Styles) List {
	l.styles = styles
	return l
}

// Init implements tea.Model.
func (l List) Init() tea.Cmd {
	return nil
}

// Update handles navigation and selection keys.
func (l List) Update(msg tea.Msg) (List, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(l.items) == 0 {
		return l, nil
	}

	switch {
	case l.keys.IsUp(keyMsg):
		if l.selected > 0 {
			l.selected--
		}
	case l.keys.IsDown(keyMsg):
		if l.selected < len(l.items)-1 {
			l.selected++
		}
	case key.Matches(keyMsg, l.keys.Home):
		l.selected = 0
	case key.Matches(keyMsg, l.keys.End):
		l.selected = len(l.items) - 1
	case key.Matches(keyMsg, l.keys.Select):
		return l, l.selectCmd()
	default:
		for i, item := range l.items {
			if item.Key != "" && keyMsg.String() == item.Key {
				l.selected = i
				return l, l.selectCmd()
			}
		}
	}

	return l, nil
}

func (l List) selectCmd() tea.Cmd {
	item := l.items[l.selected]
	index := l.selected
	return func() tea.Msg {
		return ListSelectedMsg{Item: item, Index: index}
	}
}

// View renders every item; the highlighted one shows its description.
func (l List) View() string {
	if len(l.items) == 0 {
		return l.styles.Help.Render("No items")
	}

	var b strings.Builder
	for i, item := range l.items {
		label := item.Title
		if item.Key != "" {
			label = item.Key + ". " + item.Title
		}

		if i == l.selected {
			b.WriteString(l.styles.ListItemActive.Render("▸ " + label))
			if item.Description != "" {
				b.WriteString("\n")
				b.WriteString(l.styles.Help.Render("      " + item.Description))
			}
		} else {
			b.WriteString(l.styles.ListItem.Render("  " + label))
		}

		if i < len(l.items)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}
