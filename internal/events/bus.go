// Package events carries state changes of the light and the session timer to
// the outer surfaces (TUI notifications, metrics) without coupling them.
//
// Handlers run on the dispatcher's goroutines, not on the loop that publishes,
// so subscribers must be safe for concurrent use.
package events

import (
	"github.com/kelindar/event"
)

// Publisher is what the state machines need from the bus
type Publisher interface {
	Publish(ev Event)
}

// Bus wraps kelindar/event dispatcher for event broadcasting
type Bus struct {
	dispatcher *event.Dispatcher
}

// New creates a new event bus
func New() *Bus {
	return &Bus{
		dispatcher: event.NewDispatcher(),
	}
}

// Publish publishes an event to all subscribers of its concrete type.
// A nil bus drops the event.
func (b *Bus) Publish(ev Event) {
	if b == nil {
		return
	}
	switch e := ev.(type) {
	case LightStateChanged:
		event.Publish(b.dispatcher, e)
	case TimerStarted:
		event.Publish(b.dispatcher, e)
	case TimerStopped:
		event.Publish(b.dispatcher, e)
	case ModeSwitched:
		event.Publish(b.dispatcher, e)
	case EffectsTriggered:
		event.Publish(b.dispatcher, e)
	}
}

// Subscribe registers handler for events of type T and returns the
// unsubscribe function.
func Subscribe[T Event](bus *Bus, handler func(T)) func() {
	return event.Subscribe(bus.dispatcher, handler)
}

// SubscribeToChannel bridges a subscription to a channel. Events are dropped
// when the channel is full.
func SubscribeToChannel[T Event](bus *Bus, ch chan<- any) func() {
	return event.Subscribe(bus.dispatcher, func(e T) {
		select {
		case ch <- e:
		default:
		}
	})
}
