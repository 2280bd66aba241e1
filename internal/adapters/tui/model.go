// Package tui is the interactive planning session: a single bubbletea
// update loop owns every state change, so the session controller needs no
// locking and input stays responsive while network work runs in commands.
package tui

import (
	"context"

	"github.com/BurtMcGurt64/owlplanner/internal/adapters/render/calendar"
	"github.com/BurtMcGurt64/owlplanner/internal/application"
	"github.com/BurtMcGurt64/owlplanner/internal/domain"
	"github.com/BurtMcGurt64/owlplanner/internal/ports"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type focusArea int

const (
	focusInput focusArea = iota
	focusPreferences
	focusResults
)

// warmupSettledMsg reports the prober outcome; it arrives exactly once.
type warmupSettledMsg struct {
	ready bool
}

// schedulesMsg and scheduleFailedMsg carry the generation stamp of the
// request that produced them so stale completions are ignored.
type schedulesMsg struct {
	generation uint64
	result     domain.ScheduleResult
}

type scheduleFailedMsg struct {
	generation uint64
	err        error
}

type Model struct {
	session *application.Session
	api     ports.SchedulerAPI
	prober  *application.Prober

	input  textarea.Model
	spin   spinner.Model
	grid   calendar.Grid
	styles styles

	focus      focusArea
	prefCursor int
	width      int
	quitting   bool
}

func New(api ports.SchedulerAPI, prober *application.Prober, session *application.Session) Model {
	input := textarea.New()
	input.Placeholder = "e.g., COMP 140, MATH 212, STAT 315"
	input.ShowLineNumbers = false
	input.SetHeight(3)
	input.SetWidth(46)
	input.Focus()

	spin := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return Model{
		session: session,
		api:     api,
		prober:  prober,
		input:   input,
		spin:    spin,
		grid:    calendar.DefaultGrid(),
		styles:  newStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spin.Tick, m.probeCmd())
}

func (m Model) probeCmd() tea.Cmd {
	return func() tea.Msg {
		return warmupSettledMsg{ready: m.prober.Probe(context.Background())}
	}
}

func (m Model) requestCmd(ctx context.Context, query domain.CourseQuery, prefs domain.PreferenceSet, generation uint64) tea.Cmd {
	return func() tea.Msg {
		result, err := m.api.RequestSchedules(ctx, query, prefs)
		if err != nil {
			return scheduleFailedMsg{generation: generation, err: err}
		}
		return schedulesMsg{generation: generation, result: result}
	}
}
