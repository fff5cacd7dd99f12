// Package pomodoro implements the session timer: a work/break countdown that
// drives the status light and the timer card.
//
// The timer never blocks. It registers a 1 s periodic callback and a 100 ms
// one-shot effects callback with a cooperative Scheduler and is advanced by
// whatever loop runs that scheduler. All methods must be called from that loop.
package pomodoro

import (
	"log/slog"
	"math"

	"github.com/riordanpawley/pomolight/internal/events"
	"github.com/riordanpawley/pomolight/internal/light"
)

const (
	// TickPeriodMs is the countdown resolution
	TickPeriodMs int64 = 1000
	// EffectsDelayMs separates a mode switch from its completion effects
	EffectsDelayMs int64 = 100
	// BlinkSweeps and BlinkPhaseMs shape the completion blink
	BlinkSweeps        = 2
	BlinkPhaseMs int64 = 250
	// StartStopButton is the index of the centre button
	StartStopButton = 1
)

// Light is the part of the status light the timer drives
type Light interface {
	SetState(s light.State)
	Blink(sweeps int, phaseMs int64)
}

// Display renders the timer card
type Display interface {
	SetCountdown(text string)
	SetProgress(percent int)
	SetTint(mode Mode)
	SetTally(marks string)
	FlashRainbow()
}

// Scheduler runs callbacks cooperatively. The returned functions cancel the
// registration and are safe to call more than once.
type Scheduler interface {
	Every(periodMs int64, fn func()) func()
	After(delayMs int64, fn func()) func()
}

// Option configures a Timer
type Option func(*Timer)

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(t *Timer) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithEvents publishes timer events to p
func WithEvents(p events.Publisher) Option {
	return func(t *Timer) {
		t.events = p
	}
}

// WithAutoContinue starts the next period automatically after an expiry
func WithAutoContinue(on bool) Option {
	return func(t *Timer) {
		t.autoContinue = on
	}
}

// Timer is the work/break session state machine
type Timer struct {
	light     Light
	scheduler Scheduler
	display   Display
	logger    *slog.Logger
	events    events.Publisher

	autoContinue bool

	running   bool
	mode      Mode
	remaining int
	completed int

	cancelTick    func()
	cancelEffects func()
	closed        bool
}

// New creates a stopped timer in work mode and paints the initial card.
// light and display may be nil.
func New(l Light, s Scheduler, d Display, opts ...Option) *Timer {
	t := &Timer{
		light:     l,
		scheduler: s,
		display:   d,
		logger:    slog.Default(),
		mode:      ModeWork,
		remaining: WorkSeconds,
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.display != nil {
		t.display.SetTally(Tally(0))
		t.display.SetTint(t.mode)
	}
	t.refresh()
	t.setLight(light.Idle)
	return t
}

// Running reports whether the countdown is active
func (t *Timer) Running() bool { return t.running }

// WorkMode reports whether the current period is a work period
func (t *Timer) WorkMode() bool { return t.mode == ModeWork }

// Mode returns the current period kind
func (t *Timer) Mode() Mode { return t.mode }

// Remaining returns the seconds left in the current period
func (t *Timer) Remaining() int { return t.remaining }

// Completed returns the number of finished work periods
func (t *Timer) Completed() int { return t.completed }

// Progress returns the remaining share of the period as a percentage
func (t *Timer) Progress() int {
	total := t.mode.Duration()
	if total <= 0 {
		return 0
	}
	p := int(math.Round(float64(t.remaining) / float64(total) * 100))
	return max(0, min(100, p))
}

// OnTick advances the countdown by one second. It is registered as the
// periodic callback by Start and may also be called to repaint the card.
func (t *Timer) OnTick() {
	if t.running {
		t.remaining--
	}
	if t.remaining < 0 {
		t.expire()
		return
	}
	t.refresh()
}

// Start begins counting the current period. It does not consume a second.
func (t *Timer) Start() {
	if t.running || t.closed {
		return
	}
	t.running = true
	t.refresh()
	t.setLight(t.mode.LightState())

	if t.cancelTick != nil {
		t.cancelTick()
	}
	if t.scheduler != nil {
		t.cancelTick = t.scheduler.Every(TickPeriodMs, t.OnTick)
	}

	t.logger.Info("timer started", "mode", t.mode.String(), "remaining", t.remaining)
	t.publish(events.TimerStarted{Mode: t.mode.String(), Remaining: t.remaining})
}

// Stop pauses the countdown and cancels any pending completion effects
func (t *Timer) Stop() {
	wasRunning := t.running
	t.running = false
	t.cancelAll()
	t.setLight(light.Idle)

	if wasRunning {
		t.logger.Info("timer stopped", "mode", t.mode.String(), "remaining", t.remaining)
		t.publish(events.TimerStopped{Mode: t.mode.String(), Remaining: t.remaining})
	}
}

// HandleButtonPress toggles the timer on the centre button and reports
// whether the press was consumed.
func (t *Timer) HandleButtonPress(index int) bool {
	if index != StartStopButton {
		return false
	}
	if t.running {
		t.Stop()
	} else {
		t.Start()
	}
	return true
}

// Close cancels both scheduled callbacks. The timer ignores Start afterwards.
func (t *Timer) Close() {
	t.closed = true
	t.running = false
	t.cancelAll()
}

func (t *Timer) expire() {
	t.logger.Info("period expired", "mode", t.mode.String(), "completed", t.completed)
	t.Stop()
	t.switchMode()

	if t.scheduler != nil && !t.closed {
		t.cancelEffects = t.scheduler.After(EffectsDelayMs, t.runEffects)
	}
}

func (t *Timer) switchMode() {
	from := t.mode
	if from == ModeWork {
		t.completed++
		if t.display != nil {
			t.display.SetTally(Tally(t.completed))
		}
		t.mode = ModeBreak
	} else {
		t.mode = ModeWork
	}
	t.remaining = t.mode.Duration()

	if t.display != nil {
		t.display.SetTint(t.mode)
	}
	t.refresh()

	t.publish(events.ModeSwitched{From: from.String(), To: t.mode.String(), Completed: t.completed})
}

func (t *Timer) runEffects() {
	t.cancelEffects = nil
	if t.closed {
		return
	}

	if t.autoContinue {
		t.Start()
	}
	if t.display != nil {
		t.display.FlashRainbow()
	}
	if t.light != nil {
		t.light.Blink(BlinkSweeps, BlinkPhaseMs)
	}

	t.logger.Debug("completion effects", "mode", t.mode.String())
	t.publish(events.EffectsTriggered{Mode: t.mode.String()})
}

func (t *Timer) refresh() {
	if t.display == nil {
		return
	}
	t.display.SetProgress(t.Progress())
	t.display.SetCountdown(FormatCountdown(t.remaining))
	if !t.running {
		t.display.SetTint(t.mode)
	}
}

func (t *Timer) cancelAll() {
	if t.cancelTick != nil {
		t.cancelTick()
		t.cancelTick = nil
	}
	if t.cancelEffects != nil {
		t.cancelEffects()
		t.cancelEffects = nil
	}
}

func (t *Timer) setLight(s light.State) {
	if t.light != nil {
		t.light.SetState(s)
	}
}

func (t *Timer) publish(ev events.Event) {
	if t.events != nil {
		t.events.Publish(ev)
	}
}
