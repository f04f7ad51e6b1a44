package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles of the terminal page.
type Styles struct {
	Title       lipgloss.Style
	Selector    lipgloss.Style
	Cursor      lipgloss.Style
	CardTitle   lipgloss.Style
	Done        lipgloss.Style
	Description lipgloss.Style
	Placeholder lipgloss.Style
	Success     lipgloss.Style
	Error       lipgloss.Style
	Form        lipgloss.Style
	Focused     lipgloss.Style
	Help        lipgloss.Style
}

// DefaultStyles returns the styles used by New.
func DefaultStyles() Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Selector:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Cursor:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		CardTitle:   lipgloss.NewStyle().Bold(true),
		Done:        lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("244")),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("246")).PaddingLeft(6),
		Placeholder: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("244")),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Form: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1),
		Focused: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
