package config_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/corrmap/builder"
	"github.com/katalvlaran/corrmap/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corrmap.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 250, cfg.Customers)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 512, cfg.CanvasPixels())
	assert.Equal(t, builder.DefaultParams(), cfg.Model)
}

func TestLoad_OverridesOnlyGivenKeys(t *testing.T) {
	t.Parallel()

	path := writeFile(t, `
customers: 40
output: out/heat.png
model:
  purchase_frequency:
    lambda: 5
  customer_lifetime_value:
    bounds: {min: 0, max: .inf}
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 40, cfg.Customers)
	assert.Equal(t, "out/heat.png", cfg.Output)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 5.0, cfg.Model.Frequency.Lambda)
	assert.True(t, math.IsInf(cfg.Model.Lifetime.Bounds.Max, 1))
	assert.Equal(t, builder.DefaultParams().Session, cfg.Model.Session)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "customrs: 10\n"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	cfg, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"negative customers", func(c *config.Config) { c.Customers = -1 }},
		{"zero dpi", func(c *config.Config) { c.DPI = 0 }},
		{"nan size", func(c *config.Config) { c.SizeInches = math.NaN() }},
		{"blank output", func(c *config.Config) { c.Output = "  " }},
		{"canvas rounds to zero", func(c *config.Config) { c.SizeInches = 0.001 }},
		{"canvas too large", func(c *config.Config) { c.SizeInches, c.DPI = 200, 600 }},
		{"infinite dpi", func(c *config.Config) { c.DPI = math.Inf(1) }},
		{"bad level", func(c *config.Config) { c.LogLevel = "loud" }},
		{"bad model", func(c *config.Config) { c.Model.Frequency.Lambda = 0 }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.Default()
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}

	zero := config.Default()
	zero.Customers = 0
	require.NoError(t, zero.Validate())

	tiny := config.Default()
	tiny.SizeInches, tiny.DPI = 1.0/64, 64
	require.NoError(t, tiny.Validate())
	assert.Equal(t, 1, tiny.CanvasPixels())
}

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug, "INFO": slog.LevelInfo, "": slog.LevelInfo,
		"Warning": slog.LevelWarn, "error": slog.LevelError,
	} {
		got, err := config.ParseLogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := config.ParseLogLevel("trace")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSetupLoggerWithWriters_Fanout(t *testing.T) {
	t.Parallel()

	var stderr, file bytes.Buffer
	logger := config.SetupLoggerWithWriters(&stderr, &file, slog.LevelInfo)
	logger.Debug("hidden")
	logger.Info("stage done", "stage", "generate", "rows", 250)

	assert.Contains(t, stderr.String(), "stage=generate")
	assert.NotContains(t, stderr.String(), "hidden")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(file.Bytes(), &rec))
	assert.Equal(t, "stage done", rec["msg"])
	assert.Equal(t, float64(250), rec["rows"])
}

func TestSetupLogger_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "run.log")
	var stderr bytes.Buffer
	logger, cleanup, err := config.SetupLogger(&stderr, path, slog.LevelInfo)
	require.NoError(t, err)
	logger.Warn("degenerate", "fields", "Loyalty_Score")
	require.NoError(t, cleanup())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{"))
	assert.Contains(t, stderr.String(), "level=WARN")

	_, _, err = config.SetupLogger(&stderr, filepath.Join(path, "nested"), slog.LevelInfo)
	require.Error(t, err)
}
