package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title        lipgloss.Style
	subtitle     lipgloss.Style
	notice       lipgloss.Style
	errorBanner  lipgloss.Style
	hint         lipgloss.Style
	help         lipgloss.Style
	panel        lipgloss.Style
	focusedPanel lipgloss.Style
	panelTitle   lipgloss.Style
	cursorRow    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		subtitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		notice:       lipgloss.NewStyle().Foreground(lipgloss.Color("179")),
		errorBanner:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		hint:         lipgloss.NewStyle().Faint(true),
		help:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		panel:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		focusedPanel: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("39")).Padding(0, 1),
		panelTitle:   lipgloss.NewStyle().Bold(true),
		cursorRow:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	}
}
