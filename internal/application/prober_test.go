package application

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/BurtMcGurt64/owlplanner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAPI scripts Ping outcomes and records calls.
type stubAPI struct {
	pings     atomic.Int32
	pingScript func(attempt int32) bool

	requests  atomic.Int32
	result    domain.ScheduleResult
	err       error
	requestFn func(ctx context.Context) (domain.ScheduleResult, error)
}

func (s *stubAPI) Ping(_ context.Context, _ time.Duration) bool {
	attempt := s.pings.Add(1)
	if s.pingScript == nil {
		return false
	}
	return s.pingScript(attempt)
}

func (s *stubAPI) RequestSchedules(ctx context.Context, _ domain.CourseQuery, _ domain.PreferenceSet) (domain.ScheduleResult, error) {
	s.requests.Add(1)
	if s.requestFn != nil {
		return s.requestFn(ctx)
	}
	return s.result, s.err
}

func (s *stubAPI) ListCourses(context.Context) ([]string, error) {
	return nil, nil
}

func TestProbeExhaustsAfterThreeFailedAttempts(t *testing.T) {
	t.Parallel()

	api := &stubAPI{}
	prober := NewProber(api)

	require.NotPanics(t, func() {
		assert.False(t, prober.Probe(context.Background()))
	})
	assert.Equal(t, int32(3), api.pings.Load())
	assert.Equal(t, ProbeExhausted, prober.State())
}

func TestProbeStopsAtFirstSuccess(t *testing.T) {
	t.Parallel()

	api := &stubAPI{pingScript: func(attempt int32) bool { return attempt == 2 }}
	prober := NewProber(api)

	assert.True(t, prober.Probe(context.Background()))
	assert.Equal(t, int32(2), api.pings.Load())
	assert.Equal(t, ProbeReady, prober.State())
}

func TestProbeRunsAtMostOncePerSession(t *testing.T) {
	t.Parallel()

	api := &stubAPI{}
	prober := NewProber(api)

	assert.False(t, prober.Probe(context.Background()))
	assert.False(t, prober.Probe(context.Background()))
	assert.Equal(t, int32(3), api.pings.Load(), "no retries after exhaustion")

	readyAPI := &stubAPI{pingScript: func(int32) bool { return true }}
	readyProber := NewProber(readyAPI)
	assert.True(t, readyProber.Probe(context.Background()))
	assert.True(t, readyProber.Probe(context.Background()))
	assert.Equal(t, int32(1), readyAPI.pings.Load(), "settled outcome is reused")
}

func TestProbeStopsWhenContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	api := &stubAPI{}
	prober := NewProber(api)
	assert.False(t, prober.Probe(ctx))
	assert.Equal(t, int32(0), api.pings.Load())
	assert.Equal(t, ProbeExhausted, prober.State())
}
