// Package light drives the single-pixel status light.
//
// The controller is a non-blocking state machine advanced by Tick. Idle, Work
// and Break are steady states painted with a fixed color; Blinking is an
// overlay that cycles the alert palette a number of times and then restores
// whatever steady state was showing before the blink began.
//
// All methods must be called from the same goroutine.
package light

import (
	"log/slog"
	"time"

	"github.com/riordanpawley/pomolight/internal/clock"
	"github.com/riordanpawley/pomolight/internal/domain"
	"github.com/riordanpawley/pomolight/internal/events"
	"github.com/riordanpawley/pomolight/internal/hardware"
)

const (
	// DefaultBrightness is the global brightness for steady states
	DefaultBrightness uint8 = 50
	// BlinkBrightness is used for the duration of a blink
	BlinkBrightness uint8 = 255
	// UpdateIntervalMs rate-limits steady repaints to ~60 per second
	UpdateIntervalMs int64 = 16
)

type blinkSession struct {
	sweepsTodo   int
	sweepsDone   int
	colorIdx     int
	on           bool
	nextChangeMs int64
	phaseMs      int64
}

// Controller owns the pixel driver and renders the logical light state
type Controller struct {
	driver hardware.Driver
	clock  clock.Clock
	logger *slog.Logger
	events events.Publisher
	power  hardware.PowerPin
	sleep  func(time.Duration)

	brightness      uint8
	savedBrightness uint8

	current  State
	previous State
	blink    blinkSession

	lastUpdateMs int64
	dirty        bool
	showFailing  bool
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithEvents publishes state transitions to p
func WithEvents(p events.Publisher) Option {
	return func(c *Controller) {
		c.events = p
	}
}

// WithPowerPin enables pin before the first write, waiting with sleep
func WithPowerPin(pin hardware.PowerPin, sleep func(time.Duration)) Option {
	return func(c *Controller) {
		c.power = pin
		c.sleep = sleep
	}
}

// WithBrightness overrides the steady-state brightness
func WithBrightness(b uint8) Option {
	return func(c *Controller) {
		c.brightness = b
	}
}

// New creates a controller for driver. Begin must be called before use.
func New(driver hardware.Driver, clk clock.Clock, opts ...Option) *Controller {
	c := &Controller{
		driver:     driver,
		clock:      clk,
		logger:     slog.Default(),
		sleep:      time.Sleep,
		brightness: DefaultBrightness,
		current:    Idle,
		previous:   Idle,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.savedBrightness = c.brightness
	return c
}

// Begin powers the pixel and paints Idle
func (c *Controller) Begin() {
	hardware.EnablePower(c.power, c.sleep)

	c.savedBrightness = c.brightness
	c.driver.SetBrightness(c.brightness)
	c.driver.SetPixelColor(0, ColorIdle)
	c.show()

	c.current = Idle
	c.previous = Idle
	c.lastUpdateMs = c.clock.Millis()
	c.dirty = false

	c.logger.Debug("status light initialized", "brightness", c.brightness)
}

// State returns the current logical state
func (c *Controller) State() State {
	return c.current
}

// Brightness returns the driver's global brightness
func (c *Controller) Brightness() uint8 {
	return c.driver.Brightness()
}

// SetState changes the steady state. Called while blinking with a steady
// state it cancels the blink at once and restores the saved brightness.
func (c *Controller) SetState(s State) {
	if c.current == Blinking {
		if s == Blinking {
			c.logger.Debug("ignoring SetState(blinking) while already blinking")
			return
		}
		c.driver.SetBrightness(c.savedBrightness)
		c.blink = blinkSession{}
		c.logger.Debug("blink cancelled", "state", s)
	}
	c.transition(s)
}

// Blink cycles the alert palette sweeps times, each color on for phaseMs and
// off for phaseMs, then restores the state that was showing before the first
// of any overlapping Blink calls. The sequence advances in Tick.
func (c *Controller) Blink(sweeps int, phaseMs int64) {
	if sweeps <= 0 {
		return
	}
	if phaseMs < 0 {
		phaseMs = 0
	}

	if c.current != Blinking {
		c.previous = c.current
		c.savedBrightness = c.driver.Brightness()
	}

	c.blink = blinkSession{
		sweepsTodo:   sweeps,
		colorIdx:     0,
		on:           true,
		phaseMs:      phaseMs,
		nextChangeMs: c.clock.Millis() + phaseMs,
	}

	c.driver.SetBrightness(BlinkBrightness)
	c.driver.SetPixelColor(0, Palette[0])
	c.transition(Blinking)
}

// Tick advances the blink sequence, repaints the steady color when due, and
// flushes the pixel exactly once.
func (c *Controller) Tick(nowMs int64) {
	if c.current == Blinking && nowMs >= c.blink.nextChangeMs {
		c.advanceBlink(nowMs)
	}

	if c.current != Blinking && (c.dirty || nowMs-c.lastUpdateMs >= UpdateIntervalMs) {
		c.lastUpdateMs = nowMs
		c.dirty = false
		c.previous = c.current
		c.driver.SetPixelColor(0, SteadyColor(c.current))
	}

	c.show()
}

func (c *Controller) advanceBlink(nowMs int64) {
	b := &c.blink
	b.nextChangeMs = nowMs + b.phaseMs

	if b.on {
		c.driver.SetPixelColor(0, hardware.Black)
		b.on = false
		return
	}

	b.colorIdx++
	if b.colorIdx >= len(Palette) {
		b.colorIdx = 0
		b.sweepsDone++
	}

	if b.sweepsDone >= b.sweepsTodo {
		c.driver.SetBrightness(c.savedBrightness)
		c.blink = blinkSession{}
		c.transition(c.previous)
		return
	}

	c.driver.SetPixelColor(0, Palette[b.colorIdx])
	b.on = true
}

func (c *Controller) transition(s State) {
	if s == c.current {
		return
	}
	from := c.current
	c.current = s
	c.dirty = true

	if c.events != nil {
		c.events.Publish(events.LightStateChanged{
			From: from.String(),
			To:   s.String(),
			AtMs: c.clock.Millis(),
		})
	}
}

func (c *Controller) show() {
	if err := c.driver.Show(); err != nil {
		if !c.showFailing {
			c.logger.Warn("pixel flush failed", "error", &domain.HardwareError{Op: "show", Err: err})
			c.showFailing = true
		}
		return
	}
	if c.showFailing {
		c.logger.Info("pixel flush recovered")
		c.showFailing = false
	}
}
