// Package latency provides the artificial-delay simulator used to exercise
// loading states and timeout handling in callers.
package latency

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

var rngMu sync.Mutex

func randIntn(n int) int {
	if n <= 0 {
		return 0
	}
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}

// Simulator draws delays uniformly from [minMs, maxMs]. A disabled simulator
// draws zero and adds no measurable overhead.
type Simulator struct {
	enabled bool
	minMs   int
	maxMs   int
}

func New(enabled bool, minMs, maxMs int) *Simulator {
	if minMs < 0 {
		minMs = 0
	}
	if maxMs < minMs {
		maxMs = minMs
	}
	return &Simulator{enabled: enabled, minMs: minMs, maxMs: maxMs}
}

func (s *Simulator) Enabled() bool {
	return s.enabled
}

// Draw picks the delay for one call in milliseconds. The drawn value is
// returned rather than hidden so callers can record it and tests can assert
// min <= drawn <= max.
func (s *Simulator) Draw() int {
	if !s.enabled {
		return 0
	}
	if s.maxMs == s.minMs {
		return s.minMs
	}
	return s.minMs + randIntn(s.maxMs-s.minMs+1)
}

// Wait sleeps for ms milliseconds or until ctx is done, whichever comes first.
func (s *Simulator) Wait(ctx context.Context, ms int) {
	if ms <= 0 {
		return
	}
	t := time.NewTimer(time.Duration(ms) * time.Millisecond)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return
	case <-t.C:
		return
	}
}
