package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/riordanpawley/pomolight/internal/config"
)

func newConfigCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or manage configuration",
		Long: `Show or manage pomolight configuration.

Running bare 'pomolight config' is the same as 'pomolight config show'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return configShowRun(cmd, e)
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return configInitRun(cmd, e, force)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite existing config file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration with sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			return configShowRun(cmd, e)
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}

func configInitRun(cmd *cobra.Command, e *env, force bool) error {
	path, err := e.configPath()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if _, err := os.Stat(path); err == nil {
		if !force {
			return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
		}
		color.New(color.FgYellow).Fprintln(out, "Overwriting existing config file")
	}

	cfg, err := e.load()
	if err != nil {
		return err
	}
	if err := config.Save(cfg, path); err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintf(out, "Config file created: %s\n", path)
	return nil
}

// configKeys lists the keys shown by config show, in display order
var configKeys = []string{
	"light.driver",
	"light.brightness",
	"ui.frame_ms",
	"ui.theme_work",
	"ui.theme_break",
	"timer.auto_continue",
	"log.level",
	"log.format",
	"log.file",
	"metrics.addr",
}

// flagFor maps config keys to the persistent flag overriding them
var flagFor = map[string]string{
	"light.driver":        "driver",
	"light.brightness":    "brightness",
	"timer.auto_continue": "auto-continue",
	"log.level":           "log-level",
	"log.file":            "log-file",
	"metrics.addr":        "metrics-addr",
}

func configShowRun(cmd *cobra.Command, e *env) error {
	path, err := e.configPath()
	if err != nil {
		return err
	}
	if _, err := e.load(); err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(out, "Config file: %s\n\n", path)
	} else {
		fmt.Fprintf(out, "Config file: (none)\n\n")
	}

	fileValues := readConfigFileValues(path)
	changed := func(key string) bool {
		name, ok := flagFor[key]
		if !ok {
			return false
		}
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}

	writeConfigTable(out, e, fileValues, changed)
	return nil
}

func writeConfigTable(out io.Writer, e *env, fileValues map[string]bool, changed func(string) bool) {
	dim := color.New(color.Faint)
	for _, key := range configKeys {
		source := detectSource(key, fileValues, changed)
		fmt.Fprintf(out, "  %-22s %v  %s\n", key, e.v.Get(key), dim.Sprint(source))
	}
}

// envVar returns the environment variable overriding key
func envVar(key string) string {
	return config.EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// detectSource determines where a config value is coming from
func detectSource(key string, fileValues map[string]bool, changed func(string) bool) string {
	if changed != nil && changed(key) {
		return "(flag)"
	}
	if name := envVar(key); os.Getenv(name) != "" {
		return fmt.Sprintf("(env: %s)", name)
	}
	if fileValues[key] {
		return "(file)"
	}
	return "(default)"
}

// readConfigFileValues returns the dotted keys present in the file after migration
func readConfigFileValues(path string) map[string]bool {
	result := make(map[string]bool)

	data, err := os.ReadFile(path)
	if err != nil {
		return result
	}
	var parsed map[string]any
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return result
	}
	if migrated, err := config.ParseVersioned(data); err == nil {
		parsed = migrated
	}

	flattenKeys("", parsed, result)
	return result
}

// flattenKeys recursively flattens a nested map to dot-notation keys
func flattenKeys(prefix string, m map[string]any, result map[string]bool) {
	for key, val := range m {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		if nested, ok := val.(map[string]any); ok {
			flattenKeys(full, nested, result)
			continue
		}
		result[full] = true
	}
}
