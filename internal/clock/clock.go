// Package clock provides the monotonic millisecond time source the light and
// timer state machines are driven by.
package clock

import (
	"sync"
	"time"
)

// Clock reports monotonic milliseconds since an arbitrary origin.
type Clock interface {
	Millis() int64
}

// System is a Clock backed by the process monotonic clock.
type System struct {
	start time.Time
}

// NewSystem creates a System clock whose origin is now
func NewSystem() *System {
	return &System{start: time.Now()}
}

// Millis returns milliseconds elapsed since the clock was created
func (c *System) Millis() int64 {
	return time.Since(c.start).Milliseconds()
}

// Manual is a Clock that only moves when told to. Used by tests and the
// headless simulation.
type Manual struct {
	mu  sync.Mutex
	now int64
}

// NewManual creates a Manual clock starting at the given millisecond value
func NewManual(start int64) *Manual {
	return &Manual{now: start}
}

// Millis returns the current manual time
func (c *Manual) Millis() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by ms and returns the new time
func (c *Manual) Advance(ms int64) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += ms
	return c.now
}

// Set jumps the clock to an absolute value
func (c *Manual) Set(ms int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = ms
}
