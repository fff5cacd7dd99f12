package statusbar

import "github.com/riordanpawley/pomolight/internal/types"

// GetHints returns the keybinding hints for the given status
func GetHints(status types.Status) string {
	switch status {
	case types.StatusPaused:
		return "Space: start  ?: help  q: quit"
	case types.StatusWorking, types.StatusResting:
		return "Space: pause  ?: help  q: quit"
	case types.StatusHelp:
		return "?/Esc: close help"
	default:
		return ""
	}
}
