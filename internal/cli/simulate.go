package cli

import (
	"github.com/spf13/cobra"

	"github.com/riordanpawley/pomolight/internal/logging"
	"github.com/riordanpawley/pomolight/internal/sim"
)

type simulateOptions struct {
	seconds int
	pressAt []int
	frameMs int64
}

func newSimulateCmd(e *env) *cobra.Command {
	o := &simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the timer headless on a simulated clock and print a trace",
		Example: `  pomolight simulate --seconds 1510
  pomolight simulate --seconds 60 --press-at 0,30 --press-at 40`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return simulateRun(cmd, e, o)
		},
	}

	cmd.Flags().IntVar(&o.seconds, "seconds", 1510, "Simulated seconds")
	cmd.Flags().IntSliceVar(&o.pressAt, "press-at", []int{0}, "Seconds at which the centre button is pressed")
	cmd.Flags().Int64Var(&o.frameMs, "frame-ms", sim.DefaultFrameMs, "Simulated frame period in milliseconds")
	return cmd
}

func simulateRun(cmd *cobra.Command, e *env, o *simulateOptions) error {
	cfg, err := e.load()
	if err != nil {
		return err
	}

	logger, closer, err := logging.Setup(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	res, err := sim.Run(cmd.Context(), sim.Options{
		Seconds:      o.seconds,
		PressAt:      o.pressAt,
		FrameMs:      o.frameMs,
		AutoContinue: cfg.Timer.AutoContinue,
		Brightness:   uint8(cfg.Light.Brightness),
		Logger:       logging.Module(logger, "sim"),
	})
	if err != nil {
		return err
	}

	return sim.Print(cmd.OutOrStdout(), res)
}
