package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name    string
		running bool
		work    bool
		want    Status
	}{
		{"stopped work", false, true, StatusPaused},
		{"stopped break", false, false, StatusPaused},
		{"running work", true, true, StatusWorking},
		{"running break", true, false, StatusResting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.running, tt.work))
		})
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "PAUSED", StatusPaused.String())
	assert.Equal(t, "WORK", StatusWorking.String())
	assert.Equal(t, "BREAK", StatusResting.String())
	assert.Equal(t, "HELP", StatusHelp.String())
	assert.Equal(t, "UNKNOWN", Status(42).String())
}

func TestLive(t *testing.T) {
	now := time.Unix(1000, 0)
	toasts := []Toast{
		NewToast(ToastInfo, "old", now.Add(-10*time.Second), 5*time.Second),
		NewToast(ToastInfo, "a", now, time.Second),
		NewToast(ToastSuccess, "b", now, time.Second),
		NewToast(ToastWarning, "c", now, time.Second),
	}

	live := Live(toasts, now, 2)

	assert.Len(t, live, 2)
	assert.Equal(t, "b", live[0].Message)
	assert.Equal(t, "c", live[1].Message)
}
