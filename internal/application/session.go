package application

import (
	"context"

	"github.com/BurtMcGurt64/owlplanner/internal/domain"
)

// Phase is the session controller's lifecycle position.
type Phase string

const (
	PhaseWarming Phase = "warming"
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseResult  Phase = "result"
	PhaseError   Phase = "error"
)

// SessionState is a snapshot handed to subscribers on every transition.
// Result is shared but schedules are immutable once received.
type SessionState struct {
	Phase         Phase
	BackendReady  bool
	Err           string
	Result        *domain.ScheduleResult
	SelectedIndex int
	Preferences   domain.PreferenceSet
}

// Session owns all mutable client state. It is written only from the UI
// event loop (single-writer discipline), so it carries no lock. State
// changes are pushed to subscribers explicitly; nothing re-renders
// implicitly.
type Session struct {
	state          SessionState
	generation     uint64
	cancelInFlight context.CancelFunc
	subscribers    []func(SessionState)
}

func NewSession() *Session {
	return &Session{
		state: SessionState{
			Phase:       PhaseWarming,
			Preferences: domain.DefaultPreferenceSet(),
		},
	}
}

// Subscribe registers an observer invoked after every state transition.
func (s *Session) Subscribe(fn func(SessionState)) {
	s.subscribers = append(s.subscribers, fn)
}

func (s *Session) State() SessionState {
	return s.state
}

func (s *Session) notify() {
	for _, fn := range s.subscribers {
		fn(s.state)
	}
}

// SettleWarmup moves the session out of Warming once the prober settles.
// Both outcomes land in Idle: exhaustion only withholds the readiness
// assurance, it never blocks submission.
func (s *Session) SettleWarmup(ready bool) {
	if s.state.Phase != PhaseWarming {
		return
	}
	s.state.BackendReady = ready
	s.state.Phase = PhaseIdle
	s.notify()
}

// Submit parses the raw course text and, if anything survives parsing,
// enters Loading. An empty parse is a silent no-op with ok=false. Any
// prior in-flight request is cancelled (cancel-prior) and the returned
// generation stamps the new one; Resolve and Fail ignore older stamps.
// The returned context must be used for the network call.
func (s *Session) Submit(ctx context.Context, raw string) (domain.CourseQuery, context.Context, uint64, bool) {
	if s.state.Phase == PhaseWarming {
		return nil, nil, 0, false
	}

	query := domain.ParseCourseQuery(raw)
	if len(query) == 0 {
		return nil, nil, 0, false
	}

	if s.cancelInFlight != nil {
		s.cancelInFlight()
	}
	requestCtx, cancel := context.WithCancel(ctx)
	s.cancelInFlight = cancel
	s.generation++

	s.state.Phase = PhaseLoading
	s.state.Err = ""
	s.state.Result = nil
	s.state.SelectedIndex = 0
	s.notify()

	return query, requestCtx, s.generation, true
}

// Resolve stores a successful result for the given generation. A stale
// generation cannot overwrite newer state.
func (s *Session) Resolve(generation uint64, result domain.ScheduleResult) bool {
	if generation != s.generation || s.state.Phase != PhaseLoading {
		return false
	}

	s.clearInFlight()
	s.state.Phase = PhaseResult
	s.state.Result = &result
	s.state.SelectedIndex = 0
	s.notify()
	return true
}

// Fail stores a translated failure message for the given generation and
// clears any previous result.
func (s *Session) Fail(generation uint64, message string) bool {
	if generation != s.generation || s.state.Phase != PhaseLoading {
		return false
	}

	s.clearInFlight()
	s.state.Phase = PhaseError
	s.state.Err = message
	s.state.Result = nil
	s.state.SelectedIndex = 0
	s.notify()
	return true
}

// Select changes the highlighted schedule. Valid only in Result with an
// in-range index; everything else is a rejected no-op.
func (s *Session) Select(index int) bool {
	if s.state.Phase != PhaseResult || s.state.Result == nil {
		return false
	}
	if index < 0 || index >= len(s.state.Result.Schedules) {
		return false
	}
	s.state.SelectedIndex = index
	s.notify()
	return true
}

// TogglePreference replaces the whole preference set with one flag
// inverted.
func (s *Session) TogglePreference(flag string) error {
	prefs, err := s.state.Preferences.Toggle(flag)
	if err != nil {
		return err
	}
	s.state.Preferences = prefs
	s.notify()
	return nil
}

// Close cancels any in-flight request. The session owns its timers and
// cancellation state; nothing ambient survives it.
func (s *Session) Close() {
	s.clearInFlight()
}

func (s *Session) clearInFlight() {
	if s.cancelInFlight != nil {
		s.cancelInFlight()
		s.cancelInFlight = nil
	}
}
