// Package hardware describes the pixel driver capability the light controller
// renders through, plus the drivers this application ships with.
package hardware

import "fmt"

// Color is a 24-bit RGB value
type Color struct {
	R uint8
	G uint8
	B uint8
}

// Named colors used by the status light
var (
	Black    = Color{}
	Blue     = Color{R: 0x00, G: 0x00, B: 0xFF}
	DeepPink = Color{R: 0xFF, G: 0x14, B: 0x93}
	Orange   = Color{R: 0xFF, G: 0xA5, B: 0x00}
)

// Hex returns the color as a #rrggbb string
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// IsOff reports whether the pixel would emit no light
func (c Color) IsOff() bool {
	return c == Black
}

// Scale applies a 0-255 global brightness the way the strip does at flush time
func (c Color) Scale(brightness uint8) Color {
	scale := func(v uint8) uint8 {
		return uint8((uint16(v) * (uint16(brightness) + 1)) >> 8)
	}
	return Color{R: scale(c.R), G: scale(c.G), B: scale(c.B)}
}
