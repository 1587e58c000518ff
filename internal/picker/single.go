package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/samhoang/claude-notify/internal/ui"
)

const maxVisibleItems = 10

// SingleModel is the Bubble Tea model for single-select picker
type SingleModel struct {
	title       string
	items       []Item
	cursor      int
	offset      int // scroll offset
	done        bool
	quitting    bool
	searchInput textinput.Model
	searching   bool
}

// NewSingle creates a new single-select picker model
func NewSingle(title string, items []Item) SingleModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.CharLimit = 50
	ti.Width = 40

	cursor := 0
	for i, item := range items {
		if item.Selected {
			cursor = i
			break
		}
	}

	m := SingleModel{
		title:       title,
		items:       items,
		cursor:      cursor,
		searchInput: ti,
	}
	m.adjustScroll()
	return m
}

// Selected returns the ID of the item under the cursor
func (m SingleModel) Selected() string {
	filtered := m.filtered()
	if m.cursor >= 0 && m.cursor < len(filtered) {
		return filtered[m.cursor].ID
	}
	return ""
}

// IsQuitting returns true if the user quit without confirming
func (m SingleModel) IsQuitting() bool {
	return m.quitting
}

// Init implements tea.Model
func (m SingleModel) Init() tea.Cmd {
	return nil
}

// filtered returns items whose ID, label or detail contain the query
func (m SingleModel) filtered() []Item {
	query := strings.ToLower(m.searchInput.Value())
	if query == "" {
		return m.items
	}

	var out []Item
	for _, item := range m.items {
		if strings.Contains(strings.ToLower(item.ID), query) ||
			strings.Contains(strings.ToLower(item.Label), query) ||
			strings.Contains(strings.ToLower(item.Detail), query) {
			out = append(out, item)
		}
	}
	return out
}

// adjustScroll clamps the cursor and keeps it inside the viewport
func (m *SingleModel) adjustScroll() {
	count := len(m.filtered())

	if m.cursor >= count {
		m.cursor = count - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+maxVisibleItems {
		m.offset = m.cursor - maxVisibleItems + 1
	}
	if maxOffset := count - maxVisibleItems; m.offset > maxOffset {
		m.offset = max(maxOffset, 0)
	}
}

// Update implements tea.Model
func (m SingleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.searching {
		switch keyMsg.String() {
		case "esc":
			m.searching = false
			m.searchInput.SetValue("")
			m.searchInput.Blur()
			m.cursor, m.offset = 0, 0
			return m, nil
		case "enter":
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(keyMsg)
			m.cursor, m.offset = 0, 0
			return m, cmd
		}
	}

	switch {
	case key.Matches(keyMsg, singleKeys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, singleKeys.Search):
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(keyMsg, singleKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		} else {
			m.cursor = len(m.filtered()) - 1
		}
		m.adjustScroll()

	case key.Matches(keyMsg, singleKeys.Down):
		if m.cursor < len(m.filtered())-1 {
			m.cursor++
		} else {
			m.cursor = 0
		}
		m.adjustScroll()

	case key.Matches(keyMsg, singleKeys.Confirm):
		if m.Selected() == "" {
			return m, nil
		}
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model
func (m SingleModel) View() string {
	if m.done || m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(ui.Title.Render(m.title))
	b.WriteString("\n")

	if m.searching {
		b.WriteString("\n/ ")
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	} else if m.searchInput.Value() != "" {
		b.WriteString("\n")
		b.WriteString(ui.Dim.Render("Filter: " + m.searchInput.Value() + " (press / to edit, esc to clear)"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	filtered := m.filtered()
	if len(filtered) == 0 {
		b.WriteString(ui.Dim.Render("  (no matching hook types)"))
		b.WriteString("\n")
	} else {
		if m.offset > 0 {
			b.WriteString(ui.Dim.Render(fmt.Sprintf("  ↑ %d more above", m.offset)))
			b.WriteString("\n")
		}

		end := min(m.offset+maxVisibleItems, len(filtered))
		for i := m.offset; i < end; i++ {
			item := filtered[i]
			if i == m.cursor {
				b.WriteString(ui.Cursor.Render("> "))
				b.WriteString(ui.Success.Render(item.Label))
				if item.Detail != "" {
					b.WriteString(ui.Dim.Render("  " + item.Detail))
				}
			} else {
				b.WriteString("  ")
				b.WriteString(item.Label)
			}
			b.WriteString("\n")
		}

		if remaining := len(filtered) - end; remaining > 0 {
			b.WriteString(ui.Dim.Render(fmt.Sprintf("  ↓ %d more below", remaining)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(ui.Dim.Render("↑/↓: navigate • /: filter • enter: select • q: quit"))

	return b.String()
}

type singleKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Search  key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

var singleKeys = singleKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
	),
}

// RunSingle runs the single-select picker and returns the selected item ID,
// or "" if the user quit.
func RunSingle(title string, items []Item) (string, error) {
	finalModel, err := tea.NewProgram(NewSingle(title, items)).Run()
	if err != nil {
		return "", err
	}

	fm := finalModel.(SingleModel)
	if fm.IsQuitting() {
		return "", nil
	}

	return fm.Selected(), nil
}
