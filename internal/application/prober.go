package application

import (
	"context"
	"sync"
	"time"

	"github.com/BurtMcGurt64/owlplanner/internal/ports"
)

// ProbeState tracks the warm-up lifecycle. The prober settles exactly once
// per session; there are no retries after exhaustion.
type ProbeState string

const (
	ProbeNotStarted ProbeState = "not_started"
	ProbeRunning    ProbeState = "probing"
	ProbeReady      ProbeState = "ready"
	ProbeExhausted  ProbeState = "exhausted"
)

const (
	defaultProbeAttempts  = 3
	defaultAttemptTimeout = 30 * time.Second
)

// Prober hides backend cold-start latency behind a bounded readiness check.
// Exhaustion is a degraded-availability outcome, never an error: the
// caller must still let the user proceed.
type Prober struct {
	api            ports.SchedulerAPI
	maxAttempts    int
	attemptTimeout time.Duration

	mu    sync.Mutex
	state ProbeState
}

func NewProber(api ports.SchedulerAPI) *Prober {
	return &Prober{
		api:            api,
		maxAttempts:    defaultProbeAttempts,
		attemptTimeout: defaultAttemptTimeout,
		state:          ProbeNotStarted,
	}
}

// Probe issues up to maxAttempts sequential health checks, each with its
// own timeout, and stops at the first success. It runs the sequence at
// most once; later calls report the settled outcome without probing again.
func (p *Prober) Probe(ctx context.Context) bool {
	p.mu.Lock()
	switch p.state {
	case ProbeReady:
		p.mu.Unlock()
		return true
	case ProbeExhausted, ProbeRunning:
		p.mu.Unlock()
		return false
	}
	p.state = ProbeRunning
	p.mu.Unlock()

	ready := false
	for attempt := 0; attempt < p.maxAttempts; attempt++ {
		if ctx.Err() != nil {
			break
		}
		if p.api.Ping(ctx, p.attemptTimeout) {
			ready = true
			break
		}
	}

	p.mu.Lock()
	if ready {
		p.state = ProbeReady
	} else {
		p.state = ProbeExhausted
	}
	p.mu.Unlock()
	return ready
}

func (p *Prober) State() ProbeState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}
