// Package ui holds the lipgloss styles shared by command output and pickers.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Title   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	Success = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	Error   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	Item    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	Cursor  = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	Path    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	Dim     = lipgloss.NewStyle().Faint(true)
)

// Rule renders a faint underline as wide as s
func Rule(s string) string {
	return Dim.Render(strings.Repeat("=", lipgloss.Width(s)))
}
