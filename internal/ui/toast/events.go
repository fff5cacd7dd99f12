package toast

import (
	"fmt"
	"time"

	"github.com/riordanpawley/pomolight/internal/events"
	"github.com/riordanpawley/pomolight/internal/pomodoro"
	"github.com/riordanpawley/pomolight/internal/types"
)

// TTL is how long a session toast stays on screen
const TTL = 4 * time.Second

// ForEvent builds the notification for a session event. Events that have no
// notification report false.
func ForEvent(ev events.Event, now time.Time) (types.Toast, bool) {
	switch e := ev.(type) {
	case events.TimerStarted:
		msg := fmt.Sprintf("%s started at %s", e.Mode, pomodoro.FormatCountdown(e.Remaining))
		return types.NewToast(types.ToastInfo, msg, now, TTL), true
	case events.TimerStopped:
		msg := fmt.Sprintf("%s paused at %s", e.Mode, pomodoro.FormatCountdown(e.Remaining))
		return types.NewToast(types.ToastWarning, msg, now, TTL), true
	case events.ModeSwitched:
		if e.To == pomodoro.ModeBreak.String() {
			msg := fmt.Sprintf("Session %d done, take a break", e.Completed)
			return types.NewToast(types.ToastSuccess, msg, now, TTL), true
		}
		return types.NewToast(types.ToastInfo, "Break over", now, TTL), true
	default:
		return types.Toast{}, false
	}
}
