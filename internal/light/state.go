package light

import "github.com/riordanpawley/pomolight/internal/hardware"

// State is the logical state of the status light
type State int

const (
	Idle State = iota
	Work
	Break
	Blinking
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Work:
		return "work"
	case Break:
		return "break"
	case Blinking:
		return "blinking"
	default:
		return "unknown"
	}
}

// Steady colors per state. Blinking has no steady color.
var (
	ColorIdle  = hardware.Black
	ColorWork  = hardware.Color{R: 128, G: 64, B: 0}
	ColorBreak = hardware.Color{R: 0, G: 0, B: 128}
)

// Palette is the alert sequence every blink cycles through
var Palette = [...]hardware.Color{hardware.Blue, hardware.DeepPink, hardware.Orange}

// SteadyColor returns the color a non-blinking state is painted with
func SteadyColor(s State) hardware.Color {
	switch s {
	case Work:
		return ColorWork
	case Break:
		return ColorBreak
	default:
		return ColorIdle
	}
}
