package tui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BurtMcGurt64/owlplanner/internal/adapters/api"
	"github.com/BurtMcGurt64/owlplanner/internal/application"
	"github.com/BurtMcGurt64/owlplanner/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI scripts the scheduler without a network.
type fakeAPI struct {
	healthy bool
	result  domain.ScheduleResult
	err     error
}

func (f *fakeAPI) Ping(context.Context, time.Duration) bool {
	return f.healthy
}

func (f *fakeAPI) RequestSchedules(ctx context.Context, _ domain.CourseQuery, _ domain.PreferenceSet) (domain.ScheduleResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.ScheduleResult{}, err
	}
	return f.result, f.err
}

func (f *fakeAPI) ListCourses(context.Context) ([]string, error) {
	return nil, nil
}

func newTestModel(fake *fakeAPI) Model {
	return New(fake, application.NewProber(fake), application.NewSession())
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func keyPress(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func TestWarmupSettlingUnlocksSubmission(t *testing.T) {
	t.Parallel()

	m := newTestModel(&fakeAPI{healthy: false})
	assert.Equal(t, application.PhaseWarming, m.session.State().Phase)
	assert.Contains(t, m.View(), "Waking up the scheduler")

	m, _ = update(t, m, warmupSettledMsg{ready: false})
	state := m.session.State()
	assert.Equal(t, application.PhaseIdle, state.Phase)
	assert.False(t, state.BackendReady)
	assert.Contains(t, m.View(), "did not answer the warm-up probe")
	assert.NotContains(t, m.View(), "Error:", "exhaustion never reaches the error banner")
}

func TestSubmitAgainstMockedServiceReachesResult(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"total": 5,
			"schedules": [
				{"courses": [{"course": "COMP 140", "meeting_times": [{"day": "Mon", "start": 540, "end": 600}]},
				             {"course": "MATH 212", "meeting_times": [{"day": "Tue", "start": 600, "end": 660}]}]},
				{"courses": [{"course": "COMP 140", "meeting_times": [{"day": "Wed", "start": 540, "end": 600}]},
				             {"course": "MATH 212", "meeting_times": [{"day": "Thu", "start": 600, "end": 660}]}]}
			]
		}`))
	}))
	t.Cleanup(server.Close)

	client := &api.Client{BaseURL: server.URL, HTTPClient: server.Client()}
	m := New(client, application.NewProber(client), application.NewSession())

	m, _ = update(t, m, warmupSettledMsg{ready: true})
	m.input.SetValue("COMP 140, MATH 212")

	m, cmd := update(t, m, keyPress("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, application.PhaseLoading, m.session.State().Phase)

	m, _ = update(t, m, cmd())
	state := m.session.State()
	assert.Equal(t, application.PhaseResult, state.Phase)
	assert.Equal(t, 0, state.SelectedIndex)
	assert.Contains(t, m.View(), "Your schedules (showing top 2 of 5)")
}

func TestEmptySubmissionIsSilentNoOp(t *testing.T) {
	t.Parallel()

	m := newTestModel(&fakeAPI{healthy: true})
	m, _ = update(t, m, warmupSettledMsg{ready: true})
	m.input.SetValue("  , ,  ")

	m, cmd := update(t, m, keyPress("enter"))
	assert.Nil(t, cmd)
	assert.Equal(t, application.PhaseIdle, m.session.State().Phase)
	assert.NotContains(t, m.View(), "Error:")
}

func TestFailureShowsTranslatedErrorBanner(t *testing.T) {
	t.Parallel()

	fake := &fakeAPI{healthy: true, err: api.ErrTimeout}
	m := newTestModel(fake)
	m, _ = update(t, m, warmupSettledMsg{ready: true})
	m.input.SetValue("COMP 140")

	m, cmd := update(t, m, keyPress("enter"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	state := m.session.State()
	assert.Equal(t, application.PhaseError, state.Phase)
	assert.Contains(t, m.View(), "Error: request timed out")
}

func TestStaleCompletionCannotOverwriteNewerRequest(t *testing.T) {
	t.Parallel()

	fake := &fakeAPI{healthy: true, result: domain.ScheduleResult{Total: 1, Schedules: []domain.Schedule{{}}}}
	m := newTestModel(fake)
	m, _ = update(t, m, warmupSettledMsg{ready: true})

	m.input.SetValue("COMP 140")
	m, firstCmd := update(t, m, keyPress("enter"))
	require.NotNil(t, firstCmd)

	m.input.SetValue("MATH 212")
	m, secondCmd := update(t, m, keyPress("enter"))
	require.NotNil(t, secondCmd)

	// The first request was cancelled; its completion must be dropped.
	m, _ = update(t, m, firstCmd())
	assert.Equal(t, application.PhaseLoading, m.session.State().Phase)

	m, _ = update(t, m, secondCmd())
	assert.Equal(t, application.PhaseResult, m.session.State().Phase)
}

func TestCancelledRequestNeverSurfacesAsError(t *testing.T) {
	t.Parallel()

	m := newTestModel(&fakeAPI{healthy: true})
	m, _ = update(t, m, warmupSettledMsg{ready: true})
	m.input.SetValue("COMP 140")
	m, _ = update(t, m, keyPress("enter"))

	m, _ = update(t, m, scheduleFailedMsg{generation: 99, err: context.Canceled})
	assert.Equal(t, application.PhaseLoading, m.session.State().Phase)
	assert.Empty(t, m.session.State().Err)
}

func TestPreferenceToggleByDigit(t *testing.T) {
	t.Parallel()

	m := newTestModel(&fakeAPI{healthy: true})
	m, _ = update(t, m, warmupSettledMsg{ready: true})
	m, _ = update(t, m, keyPress("tab")) // move to preferences panel

	m, _ = update(t, m, keyPress("3"))
	assert.False(t, m.session.State().Preferences.LunchBreak)
	m, _ = update(t, m, keyPress("3"))
	assert.Equal(t, domain.DefaultPreferenceSet(), m.session.State().Preferences)
}

func TestResultSelectionIsBounded(t *testing.T) {
	t.Parallel()

	fake := &fakeAPI{healthy: true, result: domain.ScheduleResult{
		Total:     2,
		Schedules: []domain.Schedule{{}, {}},
	}}
	m := newTestModel(fake)
	m, _ = update(t, m, warmupSettledMsg{ready: true})
	m.input.SetValue("COMP 140, MATH 212")
	m, cmd := update(t, m, keyPress("enter"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	require.Equal(t, application.PhaseResult, m.session.State().Phase)

	m, _ = update(t, m, keyPress("down"))
	assert.Equal(t, 1, m.session.State().SelectedIndex)

	// Already at the last schedule; stepping further is rejected.
	m, _ = update(t, m, keyPress("down"))
	assert.Equal(t, 1, m.session.State().SelectedIndex)

	assert.False(t, m.session.Select(5))
	assert.Equal(t, 1, m.session.State().SelectedIndex)
}
