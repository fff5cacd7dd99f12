// Package card renders the timer card: countdown, progress bar, tally and a
// swatch of the status light.
package card

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/pomolight/internal/clock"
	"github.com/riordanpawley/pomolight/internal/hardware"
	"github.com/riordanpawley/pomolight/internal/pomodoro"
	"github.com/riordanpawley/pomolight/internal/ui/styles"
)

const (
	// FlashCycleMs is one pass through the rainbow
	FlashCycleMs int64 = 2000
	// FlashRepeats is how many passes a flash makes
	FlashRepeats = 2

	defaultBarWidth = 30
)

// Card is the on-screen timer. It implements pomodoro.Display.
type Card struct {
	styles *styles.Styles
	clock  clock.Clock
	bar    progress.Model

	countdown string
	percent   int
	mode      pomodoro.Mode
	tally     string
	pixel     hardware.Color

	flashing     bool
	flashStartMs int64
	flashNowMs   int64
}

var _ pomodoro.Display = (*Card)(nil)

// New creates a card showing an untouched work period
func New(st *styles.Styles, clk clock.Clock) *Card {
	bar := progress.New(progress.WithoutPercentage(), progress.WithSolidFill(string(st.Tint(true))))
	bar.Width = defaultBarWidth

	return &Card{
		styles:    st,
		clock:     clk,
		bar:       bar,
		countdown: pomodoro.FormatCountdown(pomodoro.WorkSeconds),
		percent:   100,
		mode:      pomodoro.ModeWork,
	}
}

// SetCountdown replaces the MM:SS text
func (c *Card) SetCountdown(text string) { c.countdown = text }

// SetProgress sets the bar fill in percent
func (c *Card) SetProgress(percent int) { c.percent = max(0, min(100, percent)) }

// SetTally replaces the completed-session marks
func (c *Card) SetTally(marks string) { c.tally = marks }

// SetTint switches the card background to the mode's color. A running flash
// keeps control of the background until it ends.
func (c *Card) SetTint(mode pomodoro.Mode) {
	c.mode = mode
	c.bar.FullColor = string(c.styles.Tint(mode == pomodoro.ModeWork))
}

// FlashRainbow starts the completion animation, restarting one in progress
func (c *Card) FlashRainbow() {
	c.flashing = true
	c.flashStartMs = c.clock.Millis()
	c.flashNowMs = c.flashStartMs
}

// SetPixel records the color last flushed to the status light
func (c *Card) SetPixel(col hardware.Color) { c.pixel = col }

// SetWidth fits the progress bar to the terminal
func (c *Card) SetWidth(width int) {
	c.bar.Width = max(10, min(width-12, 60))
}

// Advance moves the flash animation to nowMs and ends it after the last pass
func (c *Card) Advance(nowMs int64) {
	if !c.flashing {
		return
	}
	c.flashNowMs = nowMs
	if nowMs-c.flashStartMs >= FlashCycleMs*FlashRepeats {
		c.flashing = false
	}
}

// Flashing reports whether the rainbow animation is running
func (c *Card) Flashing() bool { return c.flashing }

// Countdown returns the MM:SS text
func (c *Card) Countdown() string { return c.countdown }

// Progress returns the bar fill in percent
func (c *Card) Progress() int { return c.percent }

// Tally returns the completed-session marks
func (c *Card) Tally() string { return c.tally }

// Background is the current card color: the rainbow step while flashing,
// the mode tint otherwise.
func (c *Card) Background() lipgloss.Color {
	if !c.flashing {
		return c.styles.Tint(c.mode == pomodoro.ModeWork)
	}
	elapsed := max(0, c.flashNowMs-c.flashStartMs) % FlashCycleMs
	idx := int(elapsed * int64(len(styles.Rainbow)) / FlashCycleMs)
	return styles.Rainbow[idx]
}

// View renders the card
func (c *Card) View() string {
	bg := c.Background()

	title := strings.ToUpper(c.mode.String())
	swatch := lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.pixel.Hex())).
		Render("●")

	lines := []string{
		c.styles.Caption.Render(title) + "  " + swatch,
		"",
		c.styles.Countdown.Render(c.countdown),
		"",
		c.bar.ViewAs(float64(c.percent) / 100),
	}
	if c.tally != "" {
		lines = append(lines, "", c.styles.Tally.Render(c.tally))
	}

	return c.styles.Card.
		BorderForeground(bg).
		Background(bg).
		Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}
