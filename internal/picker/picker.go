// Package picker provides the bubbletea pickers used by install --tui.
package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/samhoang/claude-notify/internal/ui"
)

// Item represents a selectable item
type Item struct {
	ID       string
	Label    string
	Detail   string // shown dimmed under the label
	Selected bool
}

// Model is the Bubble Tea model for multi-select picker
type Model struct {
	title    string
	items    []Item
	cursor   int
	selected map[int]bool
	done     bool
	quitting bool
}

// New creates a new picker model
func New(title string, items []Item) Model {
	selected := make(map[int]bool)
	for i, item := range items {
		if item.Selected {
			selected[i] = true
		}
	}

	return Model{
		title:    title,
		items:    items,
		selected: selected,
	}
}

// SelectedIndices returns the positions of selected items in order
func (m Model) SelectedIndices() []int {
	var result []int
	for i := range m.items {
		if m.selected[i] {
			result = append(result, i)
		}
	}
	return result
}

// IsQuitting returns true if the user quit without confirming
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, keys.Toggle):
		if len(m.items) > 0 {
			m.selected[m.cursor] = !m.selected[m.cursor]
		}

	case key.Matches(keyMsg, keys.All):
		all := len(m.SelectedIndices()) == len(m.items)
		for i := range m.items {
			m.selected[i] = !all
		}

	case key.Matches(keyMsg, keys.Confirm):
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	if m.done || m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(ui.Title.Render(m.title))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = ui.Cursor.Render("> ")
		}

		checked := "[ ]"
		if m.selected[i] {
			checked = ui.Success.Render("[x]")
		}

		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, checked, item.Label))
		if item.Detail != "" {
			b.WriteString(ui.Dim.Render("      " + item.Detail))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(ui.Dim.Render("space: toggle • a: all/none • enter: confirm • q: quit"))

	return b.String()
}

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	All     key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
	),
	All: key.NewBinding(
		key.WithKeys("a"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
	),
}

// Run runs the picker and returns the selected positions. ok is false when
// the user quit without confirming.
func Run(title string, items []Item) (selected []int, ok bool, err error) {
	finalModel, err := tea.NewProgram(New(title, items)).Run()
	if err != nil {
		return nil, false, err
	}

	fm := finalModel.(Model)
	if fm.IsQuitting() {
		return nil, false, nil
	}

	return fm.SelectedIndices(), true, nil
}
