package tui

import (
	"fmt"
	"strings"

	"github.com/BurtMcGurt64/owlplanner/internal/adapters/render/calendar"
	"github.com/BurtMcGurt64/owlplanner/internal/application"
	"github.com/BurtMcGurt64/owlplanner/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// preferenceLabels maps the wire flags to what the user reads, in
// domain.PreferenceFlags order.
var preferenceLabels = map[string]string{
	domain.PrefMorning:            "No classes before 9 AM",
	domain.PrefAvoid5Days:         "Prefer 4-day week",
	domain.PrefLunchBreak:         "1-hour lunch break (11 AM to 1 PM)",
	domain.PrefLimitClassesPerDay: "Max 2 classes per day",
	domain.PrefAvoidLateNights:    "No classes after 7 PM",
	domain.PrefBalanceGaps:        "Balanced gaps between classes",
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	state := m.session.State()
	sections := []string{
		m.styles.title.Render("OwlPlanner"),
		m.styles.subtitle.Render("Course scheduler for Rice students"),
		"",
	}

	if state.Phase == application.PhaseWarming {
		sections = append(sections, m.styles.notice.Render(
			fmt.Sprintf("%s Waking up the scheduler... this takes about 30 seconds on a cold start.", m.spin.View())))
	} else if !state.BackendReady {
		sections = append(sections, m.styles.notice.Render(
			"Scheduler did not answer the warm-up probe; you can still try generating."))
	}

	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderInputPanel(state),
		" ",
		m.renderPreferencePanel(state),
	))

	switch state.Phase {
	case application.PhaseLoading:
		sections = append(sections, "", fmt.Sprintf("%s Generating schedules...", m.spin.View()))
	case application.PhaseError:
		sections = append(sections, "", m.styles.errorBanner.Render("Error: "+state.Err))
	case application.PhaseResult:
		if state.Result != nil {
			sections = append(sections, "", calendar.View(*state.Result, state.SelectedIndex, m.grid))
		}
	default:
		sections = append(sections, "", m.styles.hint.Render("Enter courses above to see your schedule."))
	}

	sections = append(sections, "", m.helpLine())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderInputPanel(state application.SessionState) string {
	panel := m.styles.panel
	if m.focus == focusInput {
		panel = m.styles.focusedPanel
	}

	label := "Enter courses (comma-separated)"
	if state.Phase == application.PhaseWarming || state.Phase == application.PhaseLoading {
		label += " (waiting on the scheduler)"
	}

	return panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.panelTitle.Render(label),
		m.input.View(),
	))
}

func (m Model) renderPreferencePanel(state application.SessionState) string {
	panel := m.styles.panel
	if m.focus == focusPreferences {
		panel = m.styles.focusedPanel
	}

	lines := []string{m.styles.panelTitle.Render("Scheduling preferences")}
	for i, flag := range domain.PreferenceFlags() {
		mark := "[ ]"
		if state.Preferences.Enabled(flag) {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %d. %s", mark, i+1, preferenceLabels[flag])
		if m.focus == focusPreferences && i == m.prefCursor {
			line = m.styles.cursorRow.Render("> " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}

	return panel.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) helpLine() string {
	parts := []string{"tab: switch panel", "enter: generate"}
	if m.focus == focusPreferences {
		parts = append(parts, "1-6/space: toggle")
	}
	if m.focus == focusResults {
		parts = append(parts, "↑/↓: pick schedule")
	}
	parts = append(parts, "ctrl+c: quit")
	return m.styles.help.Render(strings.Join(parts, " · "))
}
