package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManual_Advance(t *testing.T) {
	c := NewManual(100)

	assert.Equal(t, int64(100), c.Millis())
	assert.Equal(t, int64(116), c.Advance(16))
	assert.Equal(t, int64(116), c.Millis())

	c.Set(5000)
	assert.Equal(t, int64(5000), c.Millis())
}

func TestSystem_Monotonic(t *testing.T) {
	c := NewSystem()

	first := c.Millis()
	time.Sleep(2 * time.Millisecond)
	second := c.Millis()

	assert.GreaterOrEqual(t, first, int64(0))
	assert.GreaterOrEqual(t, second, first, "system clock must never go backwards")
}
