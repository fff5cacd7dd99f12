package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Button indexes of the three-button input
const (
	ButtonLeft   = 0
	ButtonCenter = 1
	ButtonRight  = 2
)

// buttonFor maps a key to a button index, -1 when the key is not a button
func buttonFor(key string) int {
	switch key {
	case " ", "space", "enter":
		return ButtonCenter
	case "left", "h":
		return ButtonLeft
	case "right", "l":
		return ButtonRight
	default:
		return -1
	}
}

// handleKey processes keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Global keys
	switch key {
	case "q", "ctrl+c":
		m.timer.Close()
		m.logger.Info("quitting", "completed", m.timer.Completed())
		return m, tea.Quit
	case "ctrl+l":
		return m, tea.ClearScreen
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	case "esc":
		m.showHelp = false
		return m, nil
	}

	if m.showHelp {
		return m, nil
	}

	button := buttonFor(key)
	if button < 0 {
		return m, nil
	}
	if !m.timer.HandleButtonPress(button) {
		m.logger.Debug("button not handled", "button", button)
	}
	return m, nil
}
