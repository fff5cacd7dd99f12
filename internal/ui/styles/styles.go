package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the UI styles
type Styles struct {
	// Card
	Card      lipgloss.Style
	Countdown lipgloss.Style
	Tally     lipgloss.Style
	Caption   lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style
	StatusInfo lipgloss.Style

	// Help overlay
	Overlay      lipgloss.Style
	OverlayTitle lipgloss.Style
	MenuItem     lipgloss.Style
	MenuKey      lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style

	// Light badges
	LightBadge func(state string) lipgloss.Style

	workTint  lipgloss.Color
	breakTint lipgloss.Color
}

// Option overrides part of the theme
type Option func(*Styles)

// WithTints replaces the work and break card backgrounds. Empty values keep
// the defaults.
func WithTints(work, brk string) Option {
	return func(s *Styles) {
		if work != "" {
			s.workTint = lipgloss.Color(work)
		}
		if brk != "" {
			s.breakTint = lipgloss.Color(brk)
		}
	}
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New(opts ...Option) *Styles {
	s := &Styles{
		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Foreground(Text).
			Padding(1, 3).
			Align(lipgloss.Center),

		Countdown: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true),

		Tally: lipgloss.NewStyle().
			Foreground(Subtext1),

		Caption: lipgloss.NewStyle().
			Foreground(Subtext0),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Subtext0),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Background(Base).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		MenuItem: lipgloss.NewStyle().
			Foreground(Text),

		MenuKey: lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true),

		ToastInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Foreground(Blue).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Foreground(Green).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Yellow).
			Foreground(Yellow).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),

		LightBadge: func(state string) lipgloss.Style {
			color, ok := LightColors[state]
			if !ok {
				color = Overlay0
			}
			return lipgloss.NewStyle().
				Foreground(Base).
				Background(color).
				Padding(0, 1).
				Bold(true)
		},

		workTint:  WorkTint,
		breakTint: BreakTint,
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tint returns the card background for a work or break period
func (s *Styles) Tint(work bool) lipgloss.Color {
	if work {
		return s.workTint
	}
	return s.breakTint
}
