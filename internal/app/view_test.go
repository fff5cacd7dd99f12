package app

import (
	"strings"
	"testing"

	"github.com/riordanpawley/pomolight/internal/events"
	"github.com/stretchr/testify/assert"
)

func TestViewHeight(t *testing.T) {
	env := newTestModel(t)

	t.Run("normal view", func(t *testing.T) {
		view := env.m.View()
		lines := strings.Split(strings.TrimRight(view, "\n"), "\n")
		if len(lines) > env.m.height {
			t.Errorf("Normal view is too tall: got %d lines, want %d", len(lines), env.m.height)
		}
	})

	t.Run("with help", func(t *testing.T) {
		env.key("?")
		defer env.key("esc")
		view := env.m.View()
		lines := strings.Split(strings.TrimRight(view, "\n"), "\n")
		if len(lines) > env.m.height {
			t.Errorf("View with help is too tall: got %d lines, want %d", len(lines), env.m.height)
		}
	})

	t.Run("with toasts", func(t *testing.T) {
		for i := 0; i < maxToasts; i++ {
			env.update(eventMsg{ev: events.TimerStopped{Mode: "work", Remaining: 1400}})
		}
		view := env.m.View()
		lines := strings.Split(strings.TrimRight(view, "\n"), "\n")
		if len(lines) > env.m.height {
			t.Errorf("View with toasts is too tall: got %d lines, want %d", len(lines), env.m.height)
		}
	})
}

func TestViewContent(t *testing.T) {
	env := newTestModel(t)

	view := env.m.View()
	assert.Contains(t, view, "25:00")
	assert.Contains(t, view, "PAUSED")
	assert.Contains(t, view, "idle")

	env.key("space")
	view = env.m.View()
	assert.Contains(t, view, "WORK")
	assert.Contains(t, view, "Space: pause")

	env.key("?")
	view = env.m.View()
	assert.Contains(t, view, "Keys")
	assert.Contains(t, view, "HELP")
}

func TestView_BeforeWindowSize(t *testing.T) {
	env := newTestModel(t)
	env.m.width = 0

	assert.Equal(t, "Starting...", env.m.View())
}
