package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/riordanpawley/pomolight/internal/app"
	"github.com/riordanpawley/pomolight/internal/events"
	"github.com/riordanpawley/pomolight/internal/logging"
	"github.com/riordanpawley/pomolight/internal/metrics"
)

func newRunCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the timer UI (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, e)
		},
	}
}

func runTUI(cmd *cobra.Command, e *env) error {
	cfg, err := e.load()
	if err != nil {
		return err
	}

	logger, closer, err := logging.Setup(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	bus := events.New()
	detach := metrics.Attach(bus)
	defer detach()

	if cfg.Metrics.Addr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.Metrics.Addr, logging.Module(logger, "metrics")); err != nil {
				logger.Error("metrics server stopped", "error", err)
			}
		}()
	}

	model, err := app.New(cfg, app.WithEvents(bus), app.WithLogger(logger))
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	unbridge := app.BridgeEvents(bus, p.Send)
	defer unbridge()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}
	return nil
}
