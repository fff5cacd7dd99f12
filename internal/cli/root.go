// Package cli wires the cobra commands.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/riordanpawley/pomolight/internal/config"
)

// env holds what every command shares
type env struct {
	v       *viper.Viper
	cfgFile string
	version string
}

// load resolves the effective configuration
func (e *env) load() (*config.Config, error) {
	return config.Load(e.v, e.cfgFile)
}

// configPath is the file config commands read and write
func (e *env) configPath() (string, error) {
	if e.cfgFile != "" {
		return e.cfgFile, nil
	}
	return config.DefaultPath()
}

// NewRootCmd builds the command tree
func NewRootCmd(version string) *cobra.Command {
	e := &env{
		v:       config.NewViper(),
		version: version,
	}

	root := &cobra.Command{
		Use:   "pomolight",
		Short: "Pomodoro timer with a status light",
		Long: `pomolight runs a 25/5 minute work/break timer in the terminal and
mirrors the session on a single RGB status pixel: warm while working,
blue during breaks, and a colour blink when a period ends.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, e)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&e.cfgFile, "config", "", "Config file (default ~/.config/pomolight/config.yaml)")
	flags.String("driver", config.DriverTerminal, "Light driver: terminal or memory")
	flags.Int("brightness", 50, "Steady light brightness (0-255)")
	flags.Bool("auto-continue", false, "Start the next period automatically")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.String("log-file", "", "Log file, - for stderr")
	flags.String("metrics-addr", "", "Serve Prometheus metrics on this address")

	bindings := map[string]string{
		"light.driver":        "driver",
		"light.brightness":    "brightness",
		"timer.auto_continue": "auto-continue",
		"log.level":           "log-level",
		"log.file":            "log-file",
		"metrics.addr":        "metrics-addr",
	}
	for key, flag := range bindings {
		_ = e.v.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(
		newRunCmd(e),
		newSimulateCmd(e),
		newConfigCmd(e),
		newVersionCmd(e),
	)
	return root
}

func newVersionCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "pomolight %s\n", e.version)
			return err
		},
	}
}

// Execute is the main entry point called from main.go.
func Execute(version string) {
	if err := run(NewRootCmd(version), os.Args[1:], os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(root *cobra.Command, args []string, errOut io.Writer) error {
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return err
	}
	return nil
}
