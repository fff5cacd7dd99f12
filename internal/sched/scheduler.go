// Package sched is a cooperative timer registry. Callbacks are registered as
// periodic or one-shot and fire from Run, which the owner calls from its
// single event loop. Nothing here starts goroutines.
package sched

import (
	"log/slog"

	"github.com/riordanpawley/pomolight/internal/clock"
)

type timer struct {
	periodMs  int64
	lastRunMs int64
	// remaining runs; -1 repeats forever
	repeat    int
	fn        func()
	cancelled bool
}

// Scheduler fires registered callbacks when their period has elapsed
type Scheduler struct {
	clock  clock.Clock
	timers []*timer
	logger *slog.Logger
}

// New creates a scheduler measuring periods against clk
func New(clk clock.Clock, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		clock:  clk,
		logger: logger,
	}
}

// Every registers fn to run each time periodMs has elapsed since its last
// run. Runs missed while the loop was busy are dropped, not replayed.
// The returned function cancels the registration.
func (s *Scheduler) Every(periodMs int64, fn func()) func() {
	return s.add(periodMs, -1, fn)
}

// After registers fn to run once, delayMs from now. The registration is
// removed before fn is invoked.
func (s *Scheduler) After(delayMs int64, fn func()) func() {
	return s.add(delayMs, 1, fn)
}

func (s *Scheduler) add(periodMs int64, repeat int, fn func()) func() {
	if periodMs < 0 {
		periodMs = 0
	}
	t := &timer{
		periodMs:  periodMs,
		lastRunMs: s.clock.Millis(),
		repeat:    repeat,
		fn:        fn,
	}
	s.timers = append(s.timers, t)
	return func() {
		t.cancelled = true
	}
}

// Run fires every due callback and returns how many fired. Callbacks
// registered during Run are first considered on the next call.
func (s *Scheduler) Run(nowMs int64) int {
	due := append([]*timer(nil), s.timers...)
	fired := 0

	for _, t := range due {
		if t.cancelled || nowMs-t.lastRunMs < t.periodMs {
			continue
		}
		t.lastRunMs = nowMs
		if t.repeat > 0 {
			t.repeat--
			if t.repeat == 0 {
				t.cancelled = true
			}
		}
		t.fn()
		fired++
	}

	s.compact()
	return fired
}

// Pending returns the number of live registrations
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// CancelAll drops every registration
func (s *Scheduler) CancelAll() {
	for _, t := range s.timers {
		t.cancelled = true
	}
	s.timers = nil
	s.logger.Debug("scheduler cleared")
}

func (s *Scheduler) compact() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = live
}
