package application

import (
	"context"
	"testing"

	"github.com/BurtMcGurt64/owlplanner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoScheduleResult() domain.ScheduleResult {
	return domain.ScheduleResult{
		Total: 5,
		Schedules: []domain.Schedule{
			{Courses: []domain.CourseBlock{{Course: "COMP 140", MeetingTimes: []domain.MeetingInterval{{Day: domain.Monday, Start: 540, End: 600}}}}},
			{Courses: []domain.CourseBlock{{Course: "MATH 212", MeetingTimes: []domain.MeetingInterval{{Day: domain.Tuesday, Start: 600, End: 660}}}}},
		},
	}
}

func settledSession() *Session {
	s := NewSession()
	s.SettleWarmup(true)
	return s
}

func TestSessionStartsWarming(t *testing.T) {
	t.Parallel()

	s := NewSession()
	state := s.State()
	assert.Equal(t, PhaseWarming, state.Phase)
	assert.False(t, state.BackendReady)
	assert.Nil(t, state.Result)
	assert.Equal(t, domain.DefaultPreferenceSet(), state.Preferences)
}

func TestSettleWarmupPermitsSubmissionEitherWay(t *testing.T) {
	t.Parallel()

	ready := NewSession()
	ready.SettleWarmup(true)
	assert.Equal(t, PhaseIdle, ready.State().Phase)
	assert.True(t, ready.State().BackendReady)

	exhausted := NewSession()
	exhausted.SettleWarmup(false)
	assert.Equal(t, PhaseIdle, exhausted.State().Phase)
	assert.False(t, exhausted.State().BackendReady)
	assert.Empty(t, exhausted.State().Err, "exhaustion is not an error")

	_, _, _, ok := exhausted.Submit(context.Background(), "COMP 140")
	assert.True(t, ok, "degraded mode still permits submission")
}

func TestSubmitDuringWarmingIsRejected(t *testing.T) {
	t.Parallel()

	s := NewSession()
	_, _, _, ok := s.Submit(context.Background(), "COMP 140")
	assert.False(t, ok)
	assert.Equal(t, PhaseWarming, s.State().Phase)
}

func TestEmptySubmitProducesZeroTransitions(t *testing.T) {
	t.Parallel()

	s := settledSession()
	var notifications int
	s.Subscribe(func(SessionState) { notifications++ })

	for _, raw := range []string{"", "   ", ",,,", " , , "} {
		_, _, _, ok := s.Submit(context.Background(), raw)
		assert.False(t, ok, "input %q", raw)
	}
	assert.Equal(t, PhaseIdle, s.State().Phase)
	assert.Zero(t, notifications)
}

func TestSubmitEntersLoadingAndResolveStoresResult(t *testing.T) {
	t.Parallel()

	s := settledSession()
	query, reqCtx, gen, ok := s.Submit(context.Background(), "comp 140, math 212")
	require.True(t, ok)
	require.NotNil(t, reqCtx)
	assert.Equal(t, domain.CourseQuery{"COMP 140", "MATH 212"}, query)
	assert.Equal(t, PhaseLoading, s.State().Phase)

	require.True(t, s.Resolve(gen, twoScheduleResult()))
	state := s.State()
	assert.Equal(t, PhaseResult, state.Phase)
	require.NotNil(t, state.Result)
	assert.Len(t, state.Result.Schedules, 2)
	assert.Equal(t, 5, state.Result.Total)
	assert.Equal(t, 0, state.SelectedIndex, "top-ranked schedule selected by default")
}

func TestFailStoresMessageAndClearsResult(t *testing.T) {
	t.Parallel()

	s := settledSession()
	_, _, gen, ok := s.Submit(context.Background(), "COMP 140")
	require.True(t, ok)
	require.True(t, s.Resolve(gen, twoScheduleResult()))

	_, _, gen2, ok := s.Submit(context.Background(), "COMP 140")
	require.True(t, ok)
	assert.Nil(t, s.State().Result, "no stale-result flash while loading")

	require.True(t, s.Fail(gen2, "request timed out"))
	state := s.State()
	assert.Equal(t, PhaseError, state.Phase)
	assert.Equal(t, "request timed out", state.Err)
	assert.Nil(t, state.Result)
}

func TestResubmissionCancelsPriorRequestAndIgnoresItsResolution(t *testing.T) {
	t.Parallel()

	s := settledSession()
	_, firstCtx, firstGen, ok := s.Submit(context.Background(), "COMP 140")
	require.True(t, ok)

	_, secondCtx, secondGen, ok := s.Submit(context.Background(), "MATH 212")
	require.True(t, ok)
	assert.Greater(t, secondGen, firstGen)

	assert.ErrorIs(t, firstCtx.Err(), context.Canceled, "prior in-flight request is cancelled")
	assert.NoError(t, secondCtx.Err())

	// The stale resolution must not overwrite the newer Loading state.
	assert.False(t, s.Resolve(firstGen, twoScheduleResult()))
	assert.Equal(t, PhaseLoading, s.State().Phase)
	assert.False(t, s.Fail(firstGen, "stale failure"))
	assert.Empty(t, s.State().Err)

	require.True(t, s.Resolve(secondGen, twoScheduleResult()))
	assert.Equal(t, PhaseResult, s.State().Phase)
}

func TestResolveAfterSettlingIsIgnored(t *testing.T) {
	t.Parallel()

	s := settledSession()
	_, _, gen, ok := s.Submit(context.Background(), "COMP 140")
	require.True(t, ok)
	require.True(t, s.Resolve(gen, twoScheduleResult()))

	assert.False(t, s.Resolve(gen, domain.ScheduleResult{}), "double resolution is a no-op")
	assert.Len(t, s.State().Result.Schedules, 2)
}

func TestSelectEnforcesBounds(t *testing.T) {
	t.Parallel()

	s := settledSession()
	assert.False(t, s.Select(0), "selection invalid outside Result")

	_, _, gen, ok := s.Submit(context.Background(), "COMP 140, MATH 212")
	require.True(t, ok)
	require.True(t, s.Resolve(gen, twoScheduleResult()))

	assert.True(t, s.Select(1))
	assert.Equal(t, 1, s.State().SelectedIndex)

	assert.False(t, s.Select(5), "index past the two schedules is rejected")
	assert.False(t, s.Select(-1))
	assert.Equal(t, 1, s.State().SelectedIndex, "state unchanged after rejection")
}

func TestTogglePreferenceReplacesWholeSet(t *testing.T) {
	t.Parallel()

	s := settledSession()
	require.NoError(t, s.TogglePreference(domain.PrefLunchBreak))
	assert.False(t, s.State().Preferences.LunchBreak)
	require.NoError(t, s.TogglePreference(domain.PrefLunchBreak))
	assert.Equal(t, domain.DefaultPreferenceSet(), s.State().Preferences)

	assert.ErrorIs(t, s.TogglePreference("bogus"), domain.ErrUnknownPreference)
}

func TestSubscribersObserveEveryTransition(t *testing.T) {
	t.Parallel()

	s := NewSession()
	var phases []Phase
	s.Subscribe(func(state SessionState) { phases = append(phases, state.Phase) })

	s.SettleWarmup(true)
	_, _, gen, ok := s.Submit(context.Background(), "COMP 140")
	require.True(t, ok)
	require.True(t, s.Resolve(gen, twoScheduleResult()))
	require.True(t, s.Select(1))

	assert.Equal(t, []Phase{PhaseIdle, PhaseLoading, PhaseResult, PhaseResult}, phases)
}

func TestCloseCancelsInFlightRequest(t *testing.T) {
	t.Parallel()

	s := settledSession()
	_, reqCtx, _, ok := s.Submit(context.Background(), "COMP 140")
	require.True(t, ok)

	s.Close()
	assert.ErrorIs(t, reqCtx.Err(), context.Canceled)
}
