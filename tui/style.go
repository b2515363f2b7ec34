package tui

import "github.com/charmbracelet/lipgloss"

// Style controls the grid's rendering.
type Style struct {
	Header    lipgloss.Style
	Cell      lipgloss.Style
	Selected  lipgloss.Style
	Separator lipgloss.Style
	Input     lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8")),
		Cell:      lipgloss.NewStyle(),
		Selected:  lipgloss.NewStyle().Background(lipgloss.Color("4")).Foreground(lipgloss.Color("15")),
		Separator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Input:     lipgloss.NewStyle().Reverse(true),
	}
}
