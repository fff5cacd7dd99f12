package events

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBus_DeliversByType(t *testing.T) {
	bus := New()

	var mu sync.Mutex
	var switched []ModeSwitched
	var lights []LightStateChanged

	unsubMode := Subscribe(bus, func(e ModeSwitched) {
		mu.Lock()
		defer mu.Unlock()
		switched = append(switched, e)
	})
	defer unsubMode()
	unsubLight := Subscribe(bus, func(e LightStateChanged) {
		mu.Lock()
		defer mu.Unlock()
		lights = append(lights, e)
	})
	defer unsubLight()

	bus.Publish(ModeSwitched{From: "work", To: "break", Completed: 1})

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(switched) == 1
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, switched[0].Completed)
	assert.Empty(t, lights, "light subscriber must not see mode events")
}

func TestBus_SubscribeToChannel(t *testing.T) {
	bus := New()
	ch := make(chan any, 1)

	unsub := SubscribeToChannel[TimerStarted](bus, ch)
	defer unsub()

	bus.Publish(TimerStarted{Mode: "work", Remaining: 1500})

	select {
	case got := <-ch:
		assert.Equal(t, TimerStarted{Mode: "work", Remaining: 1500}, got)
	case <-time.After(time.Second):
		t.Fatal("event not delivered to channel")
	}
}

func TestBus_NilIsSafe(t *testing.T) {
	var bus *Bus
	assert.NotPanics(t, func() {
		bus.Publish(EffectsTriggered{Mode: "break"})
	})
}

func TestEventTypes_Distinct(t *testing.T) {
	seen := map[uint32]bool{}
	for _, ev := range []Event{
		LightStateChanged{}, TimerStarted{}, TimerStopped{}, ModeSwitched{}, EffectsTriggered{},
	} {
		assert.False(t, seen[ev.Type()], "duplicate type id %d", ev.Type())
		seen[ev.Type()] = true
	}
}
