package pomodoro

import (
	"fmt"
	"strings"

	"github.com/riordanpawley/pomolight/internal/light"
)

const (
	// WorkSeconds is the length of a work period
	WorkSeconds = 1500
	// BreakSeconds is the length of a break period
	BreakSeconds = 300
)

// Mode is the kind of period the timer is counting
type Mode int

const (
	ModeWork Mode = iota
	ModeBreak
)

// String returns the string representation of Mode
func (m Mode) String() string {
	switch m {
	case ModeWork:
		return "work"
	case ModeBreak:
		return "break"
	default:
		return "unknown"
	}
}

// Duration returns the full length of the mode in seconds
func (m Mode) Duration() int {
	if m == ModeBreak {
		return BreakSeconds
	}
	return WorkSeconds
}

// LightState is the steady light shown while a period of this mode runs
func (m Mode) LightState() light.State {
	if m == ModeBreak {
		return light.Break
	}
	return light.Work
}

// FormatCountdown renders seconds as MM:SS. Negative values render as 00:00.
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Tally renders n completed sessions as tally marks grouped in fives. Every
// fifth mark is "/" and closes its group.
func Tally(n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		if i%5 == 0 {
			b.WriteByte('/')
			if i != n {
				b.WriteByte(' ')
			}
			continue
		}
		b.WriteByte('|')
	}
	return b.String()
}
