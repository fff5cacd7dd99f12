package light

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/riordanpawley/pomolight/internal/clock"
	"github.com/riordanpawley/pomolight/internal/events"
	"github.com/riordanpawley/pomolight/internal/hardware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingDriver struct {
	*hardware.MemoryDriver
	writes int
}

func (d *countingDriver) SetPixelColor(index int, c hardware.Color) {
	d.writes++
	d.MemoryDriver.SetPixelColor(index, c)
}

type recordingPublisher struct {
	events []events.Event
}

func (p *recordingPublisher) Publish(ev events.Event) {
	p.events = append(p.events, ev)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestController(t *testing.T, opts ...Option) (*Controller, *hardware.MemoryDriver, *clock.Manual) {
	t.Helper()
	drv := hardware.NewMemoryDriver(0)
	clk := clock.NewManual(0)
	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	c := New(drv, clk, opts...)
	c.Begin()
	return c, drv, clk
}

func tickAt(c *Controller, clk *clock.Manual, now int64) {
	clk.Set(now)
	c.Tick(now)
}

func lastFrame(t *testing.T, drv *hardware.MemoryDriver) hardware.Frame {
	t.Helper()
	f, ok := drv.Last()
	require.True(t, ok, "expected at least one flush")
	return f
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Idle, "idle"},
		{Work, "work"},
		{Break, "break"},
		{Blinking, "blinking"},
		{State(42), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.String())
		})
	}
}

func TestBegin(t *testing.T) {
	c, drv, _ := newTestController(t)

	assert.Equal(t, Idle, c.State())
	assert.Equal(t, 1, drv.ShowCount(), "Begin flushes once")
	assert.Equal(t, hardware.Frame{Color: ColorIdle, Brightness: DefaultBrightness}, lastFrame(t, drv))
}

func TestBegin_PowerPin(t *testing.T) {
	pin := &fakePin{}
	var slept time.Duration

	newTestController(t, WithPowerPin(pin, func(d time.Duration) { slept += d }))

	assert.True(t, pin.high, "power enabled before first write")
	assert.Equal(t, hardware.PowerSettle, slept)
}

func TestBegin_CustomBrightness(t *testing.T) {
	c, drv, _ := newTestController(t, WithBrightness(20))

	assert.Equal(t, uint8(20), c.Brightness())
	assert.Equal(t, uint8(20), lastFrame(t, drv).Brightness)
}

func TestTick_AlwaysFlushesOnce(t *testing.T) {
	c, drv, clk := newTestController(t)

	for now := int64(1); now <= 10; now++ {
		tickAt(c, clk, now)
		assert.Equal(t, int(now)+1, drv.ShowCount())
	}

	c.Blink(1, 100)
	before := drv.ShowCount()
	tickAt(c, clk, 50)
	tickAt(c, clk, 100)
	assert.Equal(t, before+2, drv.ShowCount())
}

func TestTick_RateLimitsSteadyRepaint(t *testing.T) {
	drv := &countingDriver{MemoryDriver: hardware.NewMemoryDriver(0)}
	clk := clock.NewManual(0)
	c := New(drv, clk, WithLogger(quietLogger()))
	c.Begin()
	require.Equal(t, 1, drv.writes)

	tickAt(c, clk, 5)
	assert.Equal(t, 1, drv.writes, "repaint skipped inside the interval")

	tickAt(c, clk, 16)
	assert.Equal(t, 2, drv.writes)

	tickAt(c, clk, 20)
	assert.Equal(t, 2, drv.writes)

	tickAt(c, clk, 32)
	assert.Equal(t, 3, drv.writes)

	assert.Equal(t, 5, drv.ShowCount(), "flush is not rate limited")
}

func TestSetState_RendersOnNextTick(t *testing.T) {
	tests := []struct {
		state State
		want  hardware.Color
	}{
		{Work, ColorWork},
		{Break, ColorBreak},
		{Idle, ColorIdle},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			c, drv, clk := newTestController(t)
			if tt.state == Idle {
				c.SetState(Work)
				tickAt(c, clk, 1)
			}

			c.SetState(tt.state)
			tickAt(c, clk, 2)

			assert.Equal(t, tt.state, c.State())
			assert.Equal(t, hardware.Frame{Color: tt.want, Brightness: DefaultBrightness}, lastFrame(t, drv))
		})
	}
}

func TestSetState_Idempotent(t *testing.T) {
	once, onceDrv, onceClk := newTestController(t)
	once.SetState(Break)
	tickAt(once, onceClk, 1)

	twice, twiceDrv, twiceClk := newTestController(t)
	twice.SetState(Break)
	twice.SetState(Break)
	tickAt(twice, twiceClk, 1)

	assert.Equal(t, lastFrame(t, onceDrv), lastFrame(t, twiceDrv))
	assert.Equal(t, once.State(), twice.State())
}

func TestBlink_FullSequence(t *testing.T) {
	c, drv, clk := newTestController(t)
	c.SetState(Work)
	tickAt(c, clk, 0)

	c.Blink(2, 250)
	assert.Equal(t, Blinking, c.State())
	assert.Equal(t, hardware.Blue, drv.Buffered(), "first color loaded but not flushed")
	assert.Equal(t, BlinkBrightness, c.Brightness())

	tickAt(c, clk, 100)
	assert.Equal(t, hardware.Frame{Color: hardware.Blue, Brightness: BlinkBrightness}, lastFrame(t, drv))

	want := []hardware.Color{
		hardware.Black, hardware.DeepPink, hardware.Black, hardware.Orange, hardware.Black,
		hardware.Blue, hardware.Black, hardware.DeepPink, hardware.Black, hardware.Orange, hardware.Black,
	}
	for i, color := range want {
		now := int64(i+1) * 250
		tickAt(c, clk, now)
		assert.Equal(t, Blinking, c.State(), "still blinking at %dms", now)
		assert.Equal(t, color, lastFrame(t, drv).Color, "color at %dms", now)
	}

	tickAt(c, clk, 3000)
	assert.Equal(t, Work, c.State(), "previous state restored")
	assert.Equal(t, hardware.Frame{Color: ColorWork, Brightness: DefaultBrightness}, lastFrame(t, drv),
		"restored state painted in the completing tick")
}

func TestBlink_EndsAfterExactSweeps(t *testing.T) {
	for _, sweeps := range []int{1, 2, 3} {
		t.Run(fmt.Sprintf("%d sweeps", sweeps), func(t *testing.T) {
			c, _, clk := newTestController(t)
			c.SetState(Break)
			tickAt(c, clk, 0)

			const phase = 50
			c.Blink(sweeps, phase)
			end := int64(sweeps) * int64(len(Palette)) * 2 * phase

			for now := int64(10); now < end; now += 10 {
				tickAt(c, clk, now)
				require.Equal(t, Blinking, c.State(), "ended early at %dms", now)
			}
			tickAt(c, clk, end)
			assert.Equal(t, Break, c.State())
		})
	}
}

func TestBlink_LateTicksSelfCorrect(t *testing.T) {
	c, _, clk := newTestController(t)
	c.SetState(Work)
	tickAt(c, clk, 0)

	c.Blink(1, 100)
	// One tick per phase, each arriving late, still completes the sweep
	for i := 1; i <= 6; i++ {
		tickAt(c, clk, int64(i)*130)
	}
	assert.Equal(t, Work, c.State())
}

func TestBlink_OverlappingKeepsOriginalState(t *testing.T) {
	c, drv, clk := newTestController(t)
	c.SetState(Work)
	tickAt(c, clk, 0)

	c.Blink(1, 100)
	tickAt(c, clk, 100)
	tickAt(c, clk, 150)

	c.Blink(1, 100)
	assert.Equal(t, Blinking, c.State())

	for now := int64(160); now < 750; now += 10 {
		tickAt(c, clk, now)
		require.Equal(t, Blinking, c.State(), "restarted blink ended early at %dms", now)
	}
	tickAt(c, clk, 750)

	assert.Equal(t, Work, c.State(), "restores the state before the first blink")
	assert.Equal(t, hardware.Frame{Color: ColorWork, Brightness: DefaultBrightness}, lastFrame(t, drv),
		"brightness from before the first blink")
}

func TestBlink_NonPositiveSweepsIgnored(t *testing.T) {
	c, _, _ := newTestController(t)
	c.SetState(Work)

	c.Blink(0, 250)
	c.Blink(-3, 250)

	assert.Equal(t, Work, c.State())
}

func TestSetState_OverridesBlink(t *testing.T) {
	c, drv, clk := newTestController(t)
	c.SetState(Work)
	tickAt(c, clk, 0)

	c.Blink(2, 250)
	tickAt(c, clk, 250)
	tickAt(c, clk, 500)
	require.Equal(t, Blinking, c.State())

	c.SetState(Break)
	assert.Equal(t, Break, c.State(), "override is immediate")
	assert.Equal(t, DefaultBrightness, c.Brightness(), "saved brightness restored")

	tickAt(c, clk, 501)
	assert.Equal(t, hardware.Frame{Color: ColorBreak, Brightness: DefaultBrightness}, lastFrame(t, drv))

	// The cancelled sequence must not resume
	for now := int64(510); now <= 4000; now += 10 {
		tickAt(c, clk, now)
	}
	assert.Equal(t, Break, c.State())
}

func TestSetState_BlinkingWhileBlinkingIgnored(t *testing.T) {
	c, _, clk := newTestController(t)
	c.SetState(Work)
	tickAt(c, clk, 0)

	c.Blink(1, 100)
	c.SetState(Blinking)
	assert.Equal(t, Blinking, c.State())

	for now := int64(10); now < 600; now += 10 {
		tickAt(c, clk, now)
	}
	assert.Equal(t, Blinking, c.State(), "sequence timing unaffected")
	tickAt(c, clk, 600)
	assert.Equal(t, Work, c.State())
}

func TestSetState_DirectBlinkingResolves(t *testing.T) {
	c, _, clk := newTestController(t)
	c.SetState(Work)
	tickAt(c, clk, 0)

	c.SetState(Blinking)
	tickAt(c, clk, 1)

	assert.Equal(t, Work, c.State(), "a blink without a sequence resolves on the next tick")
	assert.Equal(t, DefaultBrightness, c.Brightness())
}

func TestEvents_PublishedOnTransitions(t *testing.T) {
	pub := &recordingPublisher{}
	c, _, clk := newTestController(t, WithEvents(pub))

	c.SetState(Work)
	c.SetState(Work)
	tickAt(c, clk, 0)
	c.Blink(1, 10)
	for now := int64(10); now <= 60; now += 10 {
		tickAt(c, clk, now)
	}

	var got []string
	for _, ev := range pub.events {
		change, ok := ev.(events.LightStateChanged)
		require.True(t, ok)
		got = append(got, change.From+">"+change.To)
	}
	assert.Equal(t, []string{"idle>work", "work>blinking", "blinking>work"}, got)
}

func TestShowFailure_LoggedOncePerStreak(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	drv := hardware.NewMemoryDriver(0)
	clk := clock.NewManual(0)
	c := New(drv, clk, WithLogger(logger))
	c.Begin()

	drv.ShowErr = errors.New("bus fault")
	for now := int64(1); now <= 5; now++ {
		tickAt(c, clk, now)
	}
	assert.Equal(t, 1, strings.Count(buf.String(), "pixel flush failed"))

	drv.ShowErr = nil
	tickAt(c, clk, 6)
	assert.Contains(t, buf.String(), "pixel flush recovered")
}

type fakePin struct {
	high bool
}

func (p *fakePin) High() { p.high = true }
func (p *fakePin) Low()  { p.high = false }
