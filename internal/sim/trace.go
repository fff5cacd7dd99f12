package sim

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/riordanpawley/pomolight/internal/pomodoro"
)

var (
	timeColor = color.New(color.FgHiBlack)
	kindColor = map[Kind]*color.Color{
		KindPress:   color.New(color.FgHiCyan),
		KindLight:   color.New(color.FgHiBlue),
		KindStarted: color.New(color.FgHiGreen),
		KindStopped: color.New(color.FgHiYellow),
		KindSwitch:  color.New(color.FgHiMagenta, color.Bold),
		KindEffects: color.New(color.FgHiMagenta),
		KindFlash:   color.New(color.FgHiRed),
		KindTally:   color.New(color.FgWhite),
	}
)

// FormatOffset renders milliseconds as MM:SS.mmm
func FormatOffset(ms int64) string {
	return fmt.Sprintf("%s.%03d", pomodoro.FormatCountdown(int(ms/1000)), ms%1000)
}

// Print writes the trace and a summary line to w
func Print(w io.Writer, res *Result) error {
	for _, t := range res.Transitions {
		c, ok := kindColor[t.Kind]
		if !ok {
			c = color.New(color.Reset)
		}
		if _, err := fmt.Fprintf(w, "%s  %s  %s\n",
			timeColor.Sprint(FormatOffset(t.AtMs)),
			c.Sprintf("%-8s", t.Kind),
			t.Detail); err != nil {
			return err
		}
	}

	mode := pomodoro.ModeBreak
	if res.WorkMode {
		mode = pomodoro.ModeWork
	}
	_, err := fmt.Fprintf(w, "\n%s %d completed, %s %s left, light %s (%s)\n",
		color.New(color.Bold).Sprint("summary:"),
		res.Completed,
		mode,
		pomodoro.FormatCountdown(res.Remaining),
		res.LightState,
		res.LastFrame.Output().Hex())
	return err
}
