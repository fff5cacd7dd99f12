// Package sim runs the light and the session timer headless on a manual
// clock and records what happened. It backs the simulate command and the
// end-to-end tests.
package sim

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/riordanpawley/pomolight/internal/clock"
	"github.com/riordanpawley/pomolight/internal/events"
	"github.com/riordanpawley/pomolight/internal/hardware"
	"github.com/riordanpawley/pomolight/internal/light"
	"github.com/riordanpawley/pomolight/internal/pomodoro"
	"github.com/riordanpawley/pomolight/internal/sched"
)

// DefaultFrameMs matches the UI frame loop
const DefaultFrameMs int64 = 16

// Options configures a simulation run
type Options struct {
	// Seconds of simulated time
	Seconds int
	// PressAt lists the seconds at which the centre button is pressed
	PressAt []int
	// FrameMs is the loop period; zero uses DefaultFrameMs
	FrameMs      int64
	AutoContinue bool
	Brightness   uint8
	Logger       *slog.Logger
	// Publisher receives every event in addition to the trace
	Publisher events.Publisher
}

// Kind classifies a trace entry
type Kind string

const (
	KindPress   Kind = "press"
	KindLight   Kind = "light"
	KindStarted Kind = "started"
	KindStopped Kind = "stopped"
	KindSwitch  Kind = "switch"
	KindEffects Kind = "effects"
	KindFlash   Kind = "flash"
	KindTally   Kind = "tally"
)

// Transition is one recorded trace entry
type Transition struct {
	AtMs   int64
	Kind   Kind
	Detail string
}

// Result summarises a run
type Result struct {
	Transitions []Transition
	Completed   int
	Remaining   int
	WorkMode    bool
	Running     bool
	LightState  light.State
	Shows       int
	LastFrame   hardware.Frame
}

// Run simulates opts.Seconds of wall time. It stops early with ctx's error.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Seconds < 0 {
		return nil, fmt.Errorf("seconds must not be negative, got %d", opts.Seconds)
	}
	frameMs := opts.FrameMs
	if frameMs <= 0 {
		frameMs = DefaultFrameMs
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	brightness := opts.Brightness
	if brightness == 0 {
		brightness = light.DefaultBrightness
	}

	clk := clock.NewManual(0)
	rec := &recorder{clock: clk, next: opts.Publisher}
	driver := hardware.NewMemoryDriver(1)
	scheduler := sched.New(clk, logger)

	ctrl := light.New(driver, clk,
		light.WithLogger(logger),
		light.WithEvents(rec),
		light.WithBrightness(brightness),
	)
	ctrl.Begin()

	timer := pomodoro.New(ctrl, scheduler, &traceDisplay{rec: rec},
		pomodoro.WithLogger(logger),
		pomodoro.WithEvents(rec),
		pomodoro.WithAutoContinue(opts.AutoContinue),
	)
	defer timer.Close()

	presses := append([]int(nil), opts.PressAt...)
	sort.Ints(presses)

	endMs := int64(opts.Seconds) * 1000
	frames := 0
	for now := int64(0); now <= endMs; now += frameMs {
		if frames%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		frames++

		clk.Set(now)
		for len(presses) > 0 && int64(presses[0])*1000 <= now {
			rec.add(KindPress, fmt.Sprintf("button %d", pomodoro.StartStopButton))
			timer.HandleButtonPress(pomodoro.StartStopButton)
			presses = presses[1:]
		}
		scheduler.Run(now)
		ctrl.Tick(now)
	}

	res := &Result{
		Transitions: rec.transitions,
		Completed:   timer.Completed(),
		Remaining:   timer.Remaining(),
		WorkMode:    timer.WorkMode(),
		Running:     timer.Running(),
		LightState:  ctrl.State(),
		Shows:       driver.ShowCount(),
	}
	if f, ok := driver.Last(); ok {
		res.LastFrame = f
	}

	logger.Info("simulation finished",
		"seconds", opts.Seconds,
		"frames", frames,
		"completed", res.Completed,
		"transitions", len(res.Transitions))
	return res, nil
}

// recorder turns events into trace entries stamped with the simulated time
type recorder struct {
	clock       clock.Clock
	next        events.Publisher
	transitions []Transition
}

func (r *recorder) add(kind Kind, detail string) {
	r.transitions = append(r.transitions, Transition{
		AtMs:   r.clock.Millis(),
		Kind:   kind,
		Detail: detail,
	})
}

func (r *recorder) Publish(ev events.Event) {
	switch e := ev.(type) {
	case events.LightStateChanged:
		r.add(KindLight, e.From+" -> "+e.To)
	case events.TimerStarted:
		r.add(KindStarted, fmt.Sprintf("%s at %s", e.Mode, pomodoro.FormatCountdown(e.Remaining)))
	case events.TimerStopped:
		r.add(KindStopped, fmt.Sprintf("%s at %s", e.Mode, pomodoro.FormatCountdown(e.Remaining)))
	case events.ModeSwitched:
		r.add(KindSwitch, fmt.Sprintf("%s -> %s (%d completed)", e.From, e.To, e.Completed))
	case events.EffectsTriggered:
		r.add(KindEffects, e.Mode)
	}
	if r.next != nil {
		r.next.Publish(ev)
	}
}

// traceDisplay records the card updates worth showing in a trace
type traceDisplay struct {
	rec *recorder
}

func (d *traceDisplay) SetCountdown(string)   {}
func (d *traceDisplay) SetProgress(int)       {}
func (d *traceDisplay) SetTint(pomodoro.Mode) {}
func (d *traceDisplay) FlashRainbow()         { d.rec.add(KindFlash, "rainbow") }

func (d *traceDisplay) SetTally(marks string) {
	if marks != "" {
		d.rec.add(KindTally, marks)
	}
}

// Filter returns the transitions of the given kinds
func (r *Result) Filter(kinds ...Kind) []Transition {
	want := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}
	var out []Transition
	for _, t := range r.Transitions {
		if want[t.Kind] {
			out = append(out, t)
		}
	}
	return out
}
