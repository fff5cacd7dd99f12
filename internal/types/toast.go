package types

import "time"

// Toast represents a notification message
type Toast struct {
	Level   ToastLevel
	Message string
	Expires time.Time
}

// ToastLevel indicates the severity of a toast
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastWarning
	ToastError
)

// NewToast creates a toast that expires ttl after now
func NewToast(level ToastLevel, message string, now time.Time, ttl time.Duration) Toast {
	return Toast{
		Level:   level,
		Message: message,
		Expires: now.Add(ttl),
	}
}

// Live drops expired toasts, keeping the most recent max entries
func Live(toasts []Toast, now time.Time, max int) []Toast {
	live := toasts[:0]
	for _, t := range toasts {
		if now.Before(t.Expires) {
			live = append(live, t)
		}
	}
	if max > 0 && len(live) > max {
		live = live[len(live)-max:]
	}
	return live
}
