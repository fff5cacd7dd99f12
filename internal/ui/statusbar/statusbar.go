package statusbar

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/pomolight/internal/types"
	"github.com/riordanpawley/pomolight/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	status types.Status
	light  string
	width  int
	styles *styles.Styles
}

// New creates a new StatusBar for the session status and light state
func New(status types.Status, light string, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		status: status,
		light:  light,
		width:  width,
		styles: styles,
	}
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	modeBadge := sb.styles.StatusMode.Render(" " + sb.status.String() + " ")

	parts := []string{modeBadge}
	if sb.light != "" {
		parts = append(parts, " ", sb.styles.LightBadge(sb.light).Render("● "+sb.light))
	}

	if hints := GetHints(sb.status); hints != "" {
		separator := sb.styles.StatusHint.Render(" │ ")
		parts = append(parts, separator, sb.styles.StatusHint.Render(hints))
	}

	content := lipgloss.JoinHorizontal(lipgloss.Left, parts...)
	return sb.styles.StatusBar.Width(sb.width).Render(content)
}
