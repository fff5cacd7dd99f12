package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrUnsupportedVersion = errors.New("unsupported config version")
	ErrUnknownDriver      = errors.New("unknown light driver")
	ErrInvalidLevel       = errors.New("invalid log level")
)

// ConfigError represents a failure loading, migrating or writing configuration
type ConfigError struct {
	Op   string // Operation: "read", "migrate", "decode", "validate", "write"
	Path string // Optional: config file involved
	Err  error  // Underlying error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config %s [%s]: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Op, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// HardwareError represents a failure talking to the pixel driver
type HardwareError struct {
	Op  string
	Err error
}

func (e *HardwareError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("hardware %s failed", e.Op)
	}
	return fmt.Sprintf("hardware %s: %v", e.Op, e.Err)
}

func (e *HardwareError) Unwrap() error {
	return e.Err
}
