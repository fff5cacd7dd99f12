package hardware

import "time"

// Driver is the capability a single-pixel RGB strip exposes. Writes go to a
// buffer; Show flushes the buffer to the LED.
type Driver interface {
	SetPixelColor(index int, c Color)
	SetBrightness(b uint8)
	Brightness() uint8
	Show() error
}

// PowerPin gates supply to the pixel on boards that switch it
type PowerPin interface {
	High()
	Low()
}

// PowerSettle is how long the pixel needs after power is enabled
const PowerSettle = 10 * time.Millisecond

// EnablePower drives the power pin high and waits for the pixel to settle.
// A nil pin means the pixel is always powered.
func EnablePower(pin PowerPin, sleep func(time.Duration)) {
	if pin == nil {
		return
	}
	pin.High()
	if sleep != nil {
		sleep(PowerSettle)
	}
}
