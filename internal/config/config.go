package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/riordanpawley/pomolight/internal/domain"
)

// EnvPrefix prefixes every environment override, e.g. POMOLIGHT_LIGHT_DRIVER
const EnvPrefix = "POMOLIGHT"

// Light drivers
const (
	DriverTerminal = "terminal"
	DriverMemory   = "memory"
)

// Config represents the full pomolight configuration
type Config struct {
	Version int           `yaml:"version" mapstructure:"version"`
	Light   LightConfig   `yaml:"light" mapstructure:"light"`
	UI      UIConfig      `yaml:"ui" mapstructure:"ui"`
	Timer   TimerConfig   `yaml:"timer" mapstructure:"timer"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

// LightConfig contains status light settings
type LightConfig struct {
	Brightness int    `yaml:"brightness" mapstructure:"brightness"`
	Driver     string `yaml:"driver" mapstructure:"driver"`
}

// UIConfig contains terminal UI settings
type UIConfig struct {
	FrameMs    int    `yaml:"frame_ms" mapstructure:"frame_ms"`
	ThemeWork  string `yaml:"theme_work" mapstructure:"theme_work"`
	ThemeBreak string `yaml:"theme_break" mapstructure:"theme_break"`
}

// TimerConfig contains session timer settings
type TimerConfig struct {
	AutoContinue bool `yaml:"auto_continue" mapstructure:"auto_continue"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
	File   string `yaml:"file" mapstructure:"file"`
}

// MetricsConfig contains the Prometheus exporter settings. An empty Addr
// disables the exporter.
type MetricsConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Light: LightConfig{
			Brightness: 50,
			Driver:     DriverTerminal,
		},
		UI: UIConfig{
			FrameMs:    16,
			ThemeWork:  "#E07A5F",
			ThemeBreak: "#3A5A7A",
		},
		Timer: TimerConfig{
			AutoContinue: false,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			File:   defaultLogFile(),
		},
	}
}

// Dir returns the default config directory
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "pomolight"), nil
}

// DefaultPath returns the default config file path
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func defaultLogFile() string {
	if state := os.Getenv("XDG_STATE_HOME"); state != "" {
		return filepath.Join(state, "pomolight", "pomolight.log")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "pomolight.log")
	}
	return filepath.Join(home, ".local", "state", "pomolight", "pomolight.log")
}

// NewViper returns a viper instance with defaults and environment overrides
// registered. Callers may bind flags to it before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()
	d := DefaultConfig()

	v.SetDefault("version", d.Version)
	v.SetDefault("light.brightness", d.Light.Brightness)
	v.SetDefault("light.driver", d.Light.Driver)
	v.SetDefault("ui.frame_ms", d.UI.FrameMs)
	v.SetDefault("ui.theme_work", d.UI.ThemeWork)
	v.SetDefault("ui.theme_break", d.UI.ThemeBreak)
	v.SetDefault("timer.auto_continue", d.Timer.AutoContinue)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("metrics.addr", d.Metrics.Addr)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load resolves configuration with priority:
// 1. Flags bound to v
// 2. POMOLIGHT_* environment variables
// 3. The config file at path, or the default path when empty (optional)
// 4. Defaults
func Load(v *viper.Viper, path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			settings, err := ParseVersioned(data)
			if err != nil {
				return nil, &domain.ConfigError{Op: "migrate", Path: path, Err: err}
			}
			if err := v.MergeConfigMap(settings); err != nil {
				return nil, &domain.ConfigError{Op: "read", Path: path, Err: err}
			}
		case errors.Is(err, os.ErrNotExist):
			// no file, defaults apply
		default:
			return nil, &domain.ConfigError{Op: "read", Path: path, Err: err}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &domain.ConfigError{Op: "decode", Path: path, Err: err}
	}
	cfg.Version = CurrentVersion

	if err := cfg.Validate(); err != nil {
		return nil, &domain.ConfigError{Op: "validate", Path: path, Err: err}
	}
	return &cfg, nil
}

// Validate checks values that cannot be corrected silently
func (c *Config) Validate() error {
	switch c.Light.Driver {
	case DriverTerminal, DriverMemory:
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownDriver, c.Light.Driver)
	}
	if c.Light.Brightness < 0 || c.Light.Brightness > 255 {
		return fmt.Errorf("light.brightness %d out of range 0-255", c.Light.Brightness)
	}
	if c.UI.FrameMs < 1 {
		return fmt.Errorf("ui.frame_ms must be positive, got %d", c.UI.FrameMs)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// ParseLevel maps a level name to its slog level
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: %q", domain.ErrInvalidLevel, name)
	}
	return level, nil
}

// Save writes cfg to path as YAML, creating the directory if needed
func Save(cfg *Config, path string) error {
	out := *cfg
	out.Version = CurrentVersion

	data, err := yaml.Marshal(&out)
	if err != nil {
		return &domain.ConfigError{Op: "write", Path: path, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &domain.ConfigError{Op: "write", Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &domain.ConfigError{Op: "write", Path: path, Err: err}
	}
	return nil
}
