package events

// Event type identifiers for kelindar/event.
const (
	TypeLightStateChanged uint32 = iota + 1
	TypeTimerStarted
	TypeTimerStopped
	TypeModeSwitched
	TypeEffectsTriggered
)

// Event is implemented by everything carried on the bus
type Event interface {
	Type() uint32
}

// LightStateChanged is published when the status light changes logical state
type LightStateChanged struct {
	From string
	To   string
	AtMs int64
}

// Type returns the event type identifier for LightStateChanged.
func (e LightStateChanged) Type() uint32 { return TypeLightStateChanged }

// TimerStarted is published when the countdown starts or resumes
type TimerStarted struct {
	Mode      string
	Remaining int
}

// Type returns the event type identifier for TimerStarted.
func (e TimerStarted) Type() uint32 { return TypeTimerStarted }

// TimerStopped is published when the countdown stops, by the user or on expiry
type TimerStopped struct {
	Mode      string
	Remaining int
}

// Type returns the event type identifier for TimerStopped.
func (e TimerStopped) Type() uint32 { return TypeTimerStopped }

// ModeSwitched is published after a period expires and the mode toggles
type ModeSwitched struct {
	From      string
	To        string
	Completed int
}

// Type returns the event type identifier for ModeSwitched.
func (e ModeSwitched) Type() uint32 { return TypeModeSwitched }

// EffectsTriggered is published when the post-expiry flash and blink begin
type EffectsTriggered struct {
	Mode string
}

// Type returns the event type identifier for EffectsTriggered.
func (e EffectsTriggered) Type() uint32 { return TypeEffectsTriggered }
