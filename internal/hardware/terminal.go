package hardware

import "sync"

// TerminalDriver stands in for the physical pixel when running in a terminal.
// It keeps the last flushed frame so the view can paint a swatch of it.
type TerminalDriver struct {
	mu         sync.RWMutex
	buffer     Color
	brightness uint8
	shown      Frame
	flushes    uint64
}

// NewTerminalDriver creates a terminal-backed pixel
func NewTerminalDriver() *TerminalDriver {
	return &TerminalDriver{}
}

// SetPixelColor writes the buffer. Only index 0 exists.
func (d *TerminalDriver) SetPixelColor(index int, c Color) {
	if index != 0 {
		return
	}
	d.mu.Lock()
	d.buffer = c
	d.mu.Unlock()
}

// SetBrightness sets the global brightness applied at flush
func (d *TerminalDriver) SetBrightness(b uint8) {
	d.mu.Lock()
	d.brightness = b
	d.mu.Unlock()
}

// Brightness returns the global brightness
func (d *TerminalDriver) Brightness() uint8 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.brightness
}

// Show latches the buffer as the visible frame
func (d *TerminalDriver) Show() error {
	d.mu.Lock()
	d.shown = Frame{Color: d.buffer, Brightness: d.brightness}
	d.flushes++
	d.mu.Unlock()
	return nil
}

// Shown returns the currently visible frame
func (d *TerminalDriver) Shown() Frame {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.shown
}

// Flushes returns how many times Show was called
func (d *TerminalDriver) Flushes() uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.flushes
}
