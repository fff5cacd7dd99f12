package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/pomolight/internal/types"
	"github.com/riordanpawley/pomolight/internal/ui/statusbar"
	"github.com/riordanpawley/pomolight/internal/ui/toast"
)

var helpKeys = [][2]string{
	{"space/enter", "start or pause"},
	{"h/←  l/→", "side buttons (unused)"},
	{"?", "toggle this help"},
	{"q", "quit"},
}

// View renders the current state
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Starting..."
	}

	status := types.StatusFor(m.timer.Running(), m.timer.WorkMode())
	if m.showHelp {
		status = types.StatusHelp
	}
	statusBarView := statusbar.New(status, m.light.State().String(), m.width, m.styles).Render()

	var toastView string
	if len(m.toasts) > 0 {
		toastView = toast.New(m.styles).Render(m.toasts, m.width)
	}

	body := m.card.View()
	if m.showHelp {
		body = m.renderHelp()
	}

	mainHeight := m.height - lipgloss.Height(statusBarView)
	if toastView != "" {
		mainHeight -= lipgloss.Height(toastView)
	}
	mainHeight = max(mainHeight, lipgloss.Height(body))

	mainView := lipgloss.Place(m.width, mainHeight, lipgloss.Center, lipgloss.Center, body)

	parts := []string{mainView}
	if toastView != "" {
		parts = append(parts, lipgloss.PlaceHorizontal(m.width, lipgloss.Right, toastView))
	}
	parts = append(parts, statusBarView)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHelp() string {
	var b strings.Builder
	for i, kv := range helpKeys {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(m.styles.MenuKey.Width(14).Render(kv[0]))
		b.WriteString(m.styles.MenuItem.Render(kv[1]))
	}

	title := m.styles.OverlayTitle.Render("Keys")
	return m.styles.Overlay.Render(lipgloss.JoinVertical(lipgloss.Left, title, b.String()))
}
