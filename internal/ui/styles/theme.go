package styles

import "github.com/charmbracelet/lipgloss"

// Catppuccin Macchiato palette
var (
	// Base colors
	Base     = lipgloss.Color("#24273a")
	Mantle   = lipgloss.Color("#1e2030")
	Crust    = lipgloss.Color("#181926")
	Surface0 = lipgloss.Color("#363a4f")
	Surface1 = lipgloss.Color("#494d64")
	Surface2 = lipgloss.Color("#5b6078")
	Overlay0 = lipgloss.Color("#6e738d")
	Overlay1 = lipgloss.Color("#8087a2")
	Subtext0 = lipgloss.Color("#a5adcb")
	Subtext1 = lipgloss.Color("#b8c0e0")
	Text     = lipgloss.Color("#cad3f5")

	// Accent colors
	Red    = lipgloss.Color("#ed8796")
	Peach  = lipgloss.Color("#f5a97f")
	Yellow = lipgloss.Color("#eed49f")
	Green  = lipgloss.Color("#a6da95")
	Blue   = lipgloss.Color("#8aadf4")
	Mauve  = lipgloss.Color("#c6a0f6")
)

// Card tints
var (
	WorkTint  = lipgloss.Color("#E07A5F")
	BreakTint = lipgloss.Color("#3A5A7A")
)

// Rainbow is the completion flash sequence
var Rainbow = []lipgloss.Color{
	lipgloss.Color("#FF0000"),
	lipgloss.Color("#FF7F00"),
	lipgloss.Color("#FFFF00"),
	lipgloss.Color("#00FF00"),
	lipgloss.Color("#0000FF"),
	lipgloss.Color("#4B0082"),
	lipgloss.Color("#8B00FF"),
}

// LightColors maps light states to their status bar accent
var LightColors = map[string]lipgloss.Color{
	"idle":     Overlay0,
	"work":     Peach,
	"break":    Blue,
	"blinking": Mauve,
}
