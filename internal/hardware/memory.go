package hardware

import "sync"

// Frame is one flushed pixel value
type Frame struct {
	Color      Color
	Brightness uint8
}

// Output is the color the eye would see for this frame
func (f Frame) Output() Color {
	return f.Color.Scale(f.Brightness)
}

// MemoryDriver is a Driver that records every flush in memory
type MemoryDriver struct {
	mu         sync.RWMutex
	buffer     Color
	brightness uint8
	frames     []Frame
	maxFrames  int
	shows      int

	// ShowErr, when set, is returned by Show and the frame is not recorded
	ShowErr error
}

// NewMemoryDriver creates a driver keeping at most maxFrames flushes.
// maxFrames <= 0 keeps every flush.
func NewMemoryDriver(maxFrames int) *MemoryDriver {
	return &MemoryDriver{maxFrames: maxFrames}
}

// SetPixelColor writes the buffer. Only index 0 exists.
func (d *MemoryDriver) SetPixelColor(index int, c Color) {
	if index != 0 {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.buffer = c
}

// SetBrightness sets the global brightness applied at flush
func (d *MemoryDriver) SetBrightness(b uint8) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.brightness = b
}

// Brightness returns the global brightness
func (d *MemoryDriver) Brightness() uint8 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.brightness
}

// Show records the buffered pixel as a frame
func (d *MemoryDriver) Show() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.ShowErr != nil {
		return d.ShowErr
	}
	d.shows++
	d.frames = append(d.frames, Frame{Color: d.buffer, Brightness: d.brightness})
	if d.maxFrames > 0 && len(d.frames) > d.maxFrames {
		d.frames = d.frames[len(d.frames)-d.maxFrames:]
	}
	return nil
}

// Buffered returns the unflushed pixel value
func (d *MemoryDriver) Buffered() Color {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.buffer
}

// Frames returns a copy of the recorded flushes
func (d *MemoryDriver) Frames() []Frame {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]Frame(nil), d.frames...)
}

// ShowCount returns the number of successful flushes, including trimmed ones
func (d *MemoryDriver) ShowCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.shows
}

// Last returns the most recent flush, false if nothing was flushed yet
func (d *MemoryDriver) Last() (Frame, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if len(d.frames) == 0 {
		return Frame{}, false
	}
	return d.frames[len(d.frames)-1], true
}
