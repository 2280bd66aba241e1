package calendar

import "github.com/charmbracelet/lipgloss"

// palette mirrors the six course colors of the web calendar.
var palette = [PaletteSize]lipgloss.Color{
	lipgloss.Color("#667eea"),
	lipgloss.Color("#f56565"),
	lipgloss.Color("#48bb78"),
	lipgloss.Color("#ed8936"),
	lipgloss.Color("#9f7aea"),
	lipgloss.Color("#38b2ac"),
}

type styles struct {
	title        lipgloss.Style
	header       lipgloss.Style
	dayHeader    lipgloss.Style
	timeLabel    lipgloss.Style
	emptyCell    lipgloss.Style
	empty        lipgloss.Style
	card         lipgloss.Style
	selectedCard lipgloss.Style
	cardTitle    lipgloss.Style
	bestBadge    lipgloss.Style
	prefBadge    lipgloss.Style
	courseCount  lipgloss.Style
	blocks       [PaletteSize]lipgloss.Style
}

func newStyles() styles {
	s := styles{
		title:        lipgloss.NewStyle().Bold(true),
		header:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		dayHeader:    lipgloss.NewStyle().Bold(true).Align(lipgloss.Center),
		timeLabel:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Align(lipgloss.Right),
		emptyCell:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		empty:        lipgloss.NewStyle().Faint(true),
		card:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		selectedCard: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("39")).Padding(0, 1),
		cardTitle:    lipgloss.NewStyle().Bold(true),
		bestBadge:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("94")).Padding(0, 1),
		prefBadge:    lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		courseCount:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	}
	for i, color := range palette {
		s.blocks[i] = lipgloss.NewStyle().Background(color).Foreground(lipgloss.Color("231"))
	}
	return s
}
