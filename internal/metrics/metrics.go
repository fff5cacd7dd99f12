// Package metrics exposes light and session counters for Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/riordanpawley/pomolight/internal/events"
)

var (
	lightState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "pomolight",
		Subsystem: "light",
		Name:      "state",
		Help:      "1 for the current logical light state, 0 otherwise",
	}, []string{"state"})

	lightTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pomolight",
		Subsystem: "light",
		Name:      "transitions_total",
		Help:      "Logical light state transitions by target state",
	}, []string{"to"})

	timerRunning = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "pomolight",
		Subsystem: "timer",
		Name:      "running",
		Help:      "1 while the countdown is active",
	})

	timerRemaining = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "pomolight",
		Subsystem: "timer",
		Name:      "remaining_seconds",
		Help:      "Seconds left when the timer last started or stopped",
	})

	modeSwitches = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pomolight",
		Subsystem: "timer",
		Name:      "mode_switches_total",
		Help:      "Expired periods by the mode that was entered",
	}, []string{"to"})

	completedSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "pomolight",
		Subsystem: "timer",
		Name:      "completed_sessions",
		Help:      "Completed work periods since start",
	})

	effectsTriggered = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pomolight",
		Subsystem: "timer",
		Name:      "effects_total",
		Help:      "Completion effects fired",
	})
)

var lightStates = []string{"idle", "work", "break", "blinking"}

// RecordLightState marks to as the current light state
func RecordLightState(to string) {
	for _, s := range lightStates {
		v := 0.0
		if s == to {
			v = 1
		}
		lightState.WithLabelValues(s).Set(v)
	}
	lightTransitions.WithLabelValues(to).Inc()
}

// SetTimerRunning records whether the countdown is active and its remaining seconds
func SetTimerRunning(running bool, remaining int) {
	if running {
		timerRunning.Set(1)
	} else {
		timerRunning.Set(0)
	}
	timerRemaining.Set(float64(remaining))
}

// RecordModeSwitch counts an expiry into mode to
func RecordModeSwitch(to string, completed int) {
	modeSwitches.WithLabelValues(to).Inc()
	completedSessions.Set(float64(completed))
}

// RecordEffects counts a completion effect
func RecordEffects() {
	effectsTriggered.Inc()
}

// Attach subscribes the recorders to bus and returns a function that
// detaches them.
func Attach(bus *events.Bus) func() {
	unsubs := []func(){
		events.Subscribe(bus, func(e events.LightStateChanged) {
			RecordLightState(e.To)
		}),
		events.Subscribe(bus, func(e events.TimerStarted) {
			SetTimerRunning(true, e.Remaining)
		}),
		events.Subscribe(bus, func(e events.TimerStopped) {
			SetTimerRunning(false, e.Remaining)
		}),
		events.Subscribe(bus, func(e events.ModeSwitched) {
			RecordModeSwitch(e.To, e.Completed)
		}),
		events.Subscribe(bus, func(e events.EffectsTriggered) {
			RecordEffects()
		}),
	}
	return func() {
		for _, unsub := range unsubs {
			unsub()
		}
	}
}
