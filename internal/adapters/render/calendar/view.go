package calendar

import (
	"fmt"
	"strings"

	"github.com/BurtMcGurt64/owlplanner/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	rowMinutes = 30
	cellWidth  = 11
	labelWidth = 9
)

// View renders the schedule list alongside the weekly calendar of the
// selected schedule. An out-of-range selection falls back to the top
// schedule so rendering never fails.
func View(result domain.ScheduleResult, selected int, g Grid) string {
	st := newStyles()

	if len(result.Schedules) == 0 {
		return st.empty.Render("No schedules to show.")
	}
	if selected < 0 || selected >= len(result.Schedules) {
		selected = 0
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		st.title.Render(listTitle(result)),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			renderCards(result, selected, st),
			"  ",
			renderCalendar(result.Schedules[selected], g, st),
		),
	)
}

func listTitle(result domain.ScheduleResult) string {
	title := "Your schedules"
	if result.Total > len(result.Schedules) {
		title += fmt.Sprintf(" (showing top %d of %d)", len(result.Schedules), result.Total)
	}
	return title
}

func renderCards(result domain.ScheduleResult, selected int, st styles) string {
	cards := make([]string, 0, len(result.Schedules))
	for i, schedule := range result.Schedules {
		title := st.cardTitle.Render(fmt.Sprintf("Schedule #%d", i+1))
		if i == 0 {
			title = lipgloss.JoinHorizontal(lipgloss.Top, title, " ", st.bestBadge.Render("BEST"))
		}

		lines := []string{
			title,
			st.courseCount.Render(fmt.Sprintf("%d courses", len(schedule.Courses))),
		}
		for _, pref := range schedule.SatisfiedPreferences {
			lines = append(lines, st.prefBadge.Render("✓ "+pref))
		}

		style := st.card
		if i == selected {
			style = st.selectedCard
		}
		cards = append(cards, style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func renderCalendar(s domain.Schedule, g Grid, st styles) string {
	blocks := Layout(s, g)
	startMin, endMin := visibleRange(blocks, g)

	header := make([]string, 0, len(g.Days)+1)
	header = append(header, strings.Repeat(" ", labelWidth))
	for _, day := range g.Days {
		header = append(header, st.dayHeader.Width(cellWidth).Render(string(day)))
	}

	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}
	for rowStart := startMin; rowStart < endMin; rowStart += rowMinutes {
		label := strings.Repeat(" ", labelWidth)
		if rowStart%60 == 0 {
			label = st.timeLabel.Width(labelWidth).Render(formatTime(rowStart))
		}

		cells := make([]string, 0, len(g.Days)+1)
		cells = append(cells, label)
		for _, day := range g.Days {
			cells = append(cells, renderCell(blocks, day, rowStart, startMin, st))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// visibleRange extends the grid's hour window to cover blocks that fall
// outside it. Off-window intervals are shown on extra rows instead of
// being clipped or dropped.
func visibleRange(blocks []Block, g Grid) (int, int) {
	start := g.StartHour * 60
	end := g.EndHour * 60
	for _, b := range blocks {
		if b.Start < start {
			start = b.Start / 60 * 60
		}
		if b.End > end {
			end = (b.End + 59) / 60 * 60
		}
	}
	return start, end
}

// renderCell draws one day-column row. When intervals overlap, the block
// appearing later in the layout covers the earlier one.
func renderCell(blocks []Block, day domain.Weekday, rowStart, startMin int, st styles) string {
	var hit *Block
	for i := range blocks {
		b := &blocks[i]
		if b.Day != day {
			continue
		}
		if b.Start < rowStart+rowMinutes && b.End > rowStart {
			hit = b
		}
	}

	if hit == nil {
		fill := strings.Repeat(" ", cellWidth)
		if rowStart%60 == 0 {
			fill = strings.Repeat("┈", cellWidth)
		}
		return st.emptyCell.Render(fill)
	}

	visStart := hit.Start
	if visStart < startMin {
		visStart = startMin
	}
	firstRow := startMin + (visStart-startMin)/rowMinutes*rowMinutes

	var text string
	switch rowStart {
	case firstRow:
		text = hit.Course
	case firstRow + rowMinutes:
		text = formatRange(hit.Start, hit.End)
	}

	return st.blocks[hit.ColorIndex].Width(cellWidth).MaxWidth(cellWidth).Render(text)
}

// formatTime renders minutes of the day as a 12-hour clock label.
func formatTime(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	displayHour := h
	switch {
	case h == 0:
		displayHour = 12
	case h > 12:
		displayHour = h - 12
	}
	return fmt.Sprintf("%d:%02d %s", displayHour, m, period)
}

// formatRange is the compact 24-hour form that fits inside a cell.
func formatRange(start, end int) string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", start/60, start%60, end/60, end%60)
}
