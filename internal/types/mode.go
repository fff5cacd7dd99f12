// Package types contains shared types used across the application.
package types

// Status is what the status bar shows about the session
type Status int

const (
	StatusPaused Status = iota
	StatusWorking
	StatusResting
	StatusHelp
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case StatusPaused:
		return "PAUSED"
	case StatusWorking:
		return "WORK"
	case StatusResting:
		return "BREAK"
	case StatusHelp:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}

// StatusFor derives the status from the timer flags
func StatusFor(running, work bool) Status {
	switch {
	case !running:
		return StatusPaused
	case work:
		return StatusWorking
	default:
		return StatusResting
	}
}
