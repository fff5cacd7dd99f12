package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riordanpawley/pomolight/internal/domain"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// execute runs the command tree against an isolated config path
func execute(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd("test")

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--config", cfgPath, "--log-file="))

	err := root.Execute()
	return out.String(), err
}

func tempConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.yaml")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, tempConfig(t), "version")
	require.NoError(t, err)
	assert.Equal(t, "pomolight test\n", out)
}

func TestSimulate_PrintsTrace(t *testing.T) {
	out, err := execute(t, tempConfig(t), "simulate", "--seconds", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "00:00.000")
	assert.Contains(t, out, "press")
	assert.Contains(t, out, "started")
	assert.Contains(t, out, "summary: 0 completed, work")
	assert.Contains(t, out, "light work")
}

func TestSimulate_NoPress(t *testing.T) {
	out, err := execute(t, tempConfig(t), "simulate", "--seconds", "2", "--press-at", "100")
	require.NoError(t, err)

	assert.NotContains(t, out, "started")
	assert.Contains(t, out, "work 25:00 left, light idle")
}

func TestSimulate_UnknownDriver(t *testing.T) {
	_, err := execute(t, tempConfig(t), "simulate", "--driver", "neopixel")
	assert.ErrorIs(t, err, domain.ErrUnknownDriver)

	var cfgErr *domain.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "validate", cfgErr.Op)
}

func TestConfigInit_CreatesFile(t *testing.T) {
	path := tempConfig(t)

	out, err := execute(t, path, "config", "init", "--brightness", "90")
	require.NoError(t, err)
	assert.Contains(t, out, "Config file created")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version: 1")
	assert.Contains(t, string(data), "brightness: 90")
	assert.Contains(t, string(data), "driver: terminal")
}

func TestConfigInit_RefusesOverwrite(t *testing.T) {
	path := tempConfig(t)
	require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0644))

	_, err := execute(t, path, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "version: 1\n", string(data))
}

func TestConfigInit_Force(t *testing.T) {
	path := tempConfig(t)
	require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0644))

	out, err := execute(t, path, "config", "init", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Overwriting existing config file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "light:")
}

func TestConfigShow_Sources(t *testing.T) {
	path := tempConfig(t)
	require.NoError(t, os.WriteFile(path, []byte("light:\n  brightness: 80\n"), 0644))
	t.Setenv("POMOLIGHT_LOG_FORMAT", "json")

	out, err := execute(t, path, "config", "show", "--driver", "memory")
	require.NoError(t, err)

	assert.Contains(t, out, "Config file: "+path)

	tests := []struct {
		key    string
		value  string
		source string
	}{
		{"light.driver", "memory", `\(flag\)`},
		{"light.brightness", "80", `\(file\)`},
		{"log.format", "json", `\(env: POMOLIGHT_LOG_FORMAT\)`},
		{"ui.frame_ms", "16", `\(default\)`},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			pattern := `(?m)^\s+` + regexp.QuoteMeta(tt.key) + `\s+` + tt.value + `\s+` + tt.source + `$`
			assert.Regexp(t, pattern, out)
		})
	}
}

func TestConfigShow_NoFile(t *testing.T) {
	out, err := execute(t, tempConfig(t), "config")
	require.NoError(t, err)
	assert.Contains(t, out, "Config file: (none)")
	assert.Contains(t, out, "light.driver")
}

func TestLegacyFileKeysAreDetected(t *testing.T) {
	path := tempConfig(t)
	require.NoError(t, os.WriteFile(path, []byte("brightness: 70\n"), 0644))

	keys := readConfigFileValues(path)
	assert.True(t, keys["light.brightness"])
	assert.False(t, keys["brightness"])
}

func TestRun_PrintsError(t *testing.T) {
	var errOut bytes.Buffer
	err := run(NewRootCmd("test"), []string{"bogus-command"}, &errOut)
	require.Error(t, err)
	assert.Contains(t, errOut.String(), "Error:")
}
