package tui

import (
	"context"
	"errors"

	"github.com/BurtMcGurt64/owlplanner/internal/application"
	"github.com/BurtMcGurt64/owlplanner/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case warmupSettledMsg:
		m.session.SettleWarmup(msg.ready)
		return m, nil

	case schedulesMsg:
		m.session.Resolve(msg.generation, msg.result)
		if m.session.State().Phase == application.PhaseResult {
			m.focus = focusResults
			m.input.Blur()
		}
		return m, nil

	case scheduleFailedMsg:
		// A superseded request resolves with Canceled; the newer one owns
		// the session now.
		if errors.Is(msg.err, context.Canceled) {
			return m, nil
		}
		m.session.Fail(msg.generation, msg.err.Error())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "tab":
		return m.cycleFocus(), nil
	}

	if m.focus == focusInput {
		if msg.String() == "enter" {
			return m.submit()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "esc":
		return m.quit()
	case "enter", " ":
		if m.focus == focusPreferences {
			m.togglePreference(m.prefCursor)
		}
		return m, nil
	case "up", "k":
		if m.focus == focusPreferences && m.prefCursor > 0 {
			m.prefCursor--
		} else if m.focus == focusResults {
			m.session.Select(m.session.State().SelectedIndex - 1)
		}
		return m, nil
	case "down", "j":
		if m.focus == focusPreferences && m.prefCursor < len(domain.PreferenceFlags())-1 {
			m.prefCursor++
		} else if m.focus == focusResults {
			m.session.Select(m.session.State().SelectedIndex + 1)
		}
		return m, nil
	case "1", "2", "3", "4", "5", "6":
		m.togglePreference(int(msg.String()[0] - '1'))
		return m, nil
	}

	return m, nil
}

func (m *Model) togglePreference(index int) {
	flags := domain.PreferenceFlags()
	if index < 0 || index >= len(flags) {
		return
	}
	// The flag set is closed, so this cannot fail from the UI.
	_ = m.session.TogglePreference(flags[index])
}

func (m Model) cycleFocus() Model {
	switch m.focus {
	case focusInput:
		m.focus = focusPreferences
		m.input.Blur()
	case focusPreferences:
		if m.session.State().Phase == application.PhaseResult {
			m.focus = focusResults
		} else {
			m.focus = focusInput
			m.input.Focus()
		}
	default:
		m.focus = focusInput
		m.input.Focus()
	}
	return m
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	query, requestCtx, generation, ok := m.session.Submit(context.Background(), m.input.Value())
	if !ok {
		// Empty parse or still warming: zero state transitions.
		return m, nil
	}
	// Preferences are snapshotted here; the query is immutable once sent.
	prefs := m.session.State().Preferences
	return m, m.requestCmd(requestCtx, query, prefs, generation)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.session.Close()
	m.quitting = true
	return m, tea.Quit
}
