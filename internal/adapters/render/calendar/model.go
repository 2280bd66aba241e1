package calendar

import (
	"errors"
	"io"

	"github.com/BurtMcGurt64/owlplanner/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	result   domain.ScheduleResult
	selected int
	grid     Grid
	output   string
}

func newModel(result domain.ScheduleResult, selected int, grid Grid) model {
	return model{
		result:   result,
		selected: selected,
		grid:     grid,
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = View(m.result, m.selected, m.grid)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render produces the schedule view once, without attaching to a terminal.
// Used by the non-interactive plan path.
func Render(result domain.ScheduleResult, selected int, grid Grid) (string, error) {
	p := tea.NewProgram(
		newModel(result, selected, grid),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
