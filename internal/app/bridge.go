package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/pomolight/internal/events"
)

// BridgeEvents forwards session events from bus into the program through
// send, usually tea.Program.Send. The returned function unsubscribes.
func BridgeEvents(bus *events.Bus, send func(tea.Msg)) func() {
	unsubs := []func(){
		events.Subscribe(bus, func(e events.TimerStarted) { send(eventMsg{ev: e}) }),
		events.Subscribe(bus, func(e events.TimerStopped) { send(eventMsg{ev: e}) }),
		events.Subscribe(bus, func(e events.ModeSwitched) { send(eventMsg{ev: e}) }),
	}
	return func() {
		for _, unsub := range unsubs {
			unsub()
		}
	}
}
