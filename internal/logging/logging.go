// Package logging builds the process logger from the log config. The TUI owns
// stdout, so logs go to a file by default.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/riordanpawley/pomolight/internal/config"
)

// Stderr as log.file sends logs to standard error
const Stderr = "-"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup creates a logger for cfg and installs it as the slog default. The
// returned closer releases the log file.
func Setup(cfg config.LogConfig) (*slog.Logger, io.Closer, error) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	var (
		w      io.Writer
		closer io.Closer = nopCloser{}
	)
	switch cfg.File {
	case "":
		w = io.Discard
	case Stderr:
		w = os.Stderr
	default:
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := slog.New(NewHandler(w, cfg.Format, level))
	slog.SetDefault(logger)
	return logger, closer, nil
}

// NewHandler creates a text or JSON handler writing to w
func NewHandler(w io.Writer, format string, level slog.Leveler) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// Module returns logger tagged with a module attribute
func Module(logger *slog.Logger, module string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("module", module)
}
