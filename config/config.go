// Package config holds run settings for corrmap: defaults, an optional YAML
// file, validation and logger setup.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/corrmap/builder"
	"github.com/katalvlaran/corrmap/heatmap"
)

// ErrInvalidConfig is returned by Load and Validate for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// MaxCanvasPixels caps the square output side (size_inches × dpi).
const MaxCanvasPixels = 8192

// Config holds all configuration values.
type Config struct {
	// Dataset
	Customers int   `yaml:"customers"`
	Seed      int64 `yaml:"seed"`

	// Output
	Output     string  `yaml:"output"`
	DPI        float64 `yaml:"dpi"`
	SizeInches float64 `yaml:"size_inches"`
	Title      string  `yaml:"title"`
	CSV        string  `yaml:"csv"`

	// Logging
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`

	// Engagement model overrides; unspecified keys keep their defaults.
	Model builder.Params `yaml:"model"`
}

// Default returns the stock run: 250 customers, seed 42, an 8 inch chart at
// 64 dpi written to chart.png.
func Default() Config {
	return Config{
		Customers:  250,
		Seed:       42,
		Output:     "chart.png",
		DPI:        64,
		SizeInches: 8,
		Title:      heatmap.DefaultTitle,
		LogLevel:   "info",
		Model:      builder.DefaultParams(),
	}
}

// Load reads a YAML file over Default(). Unknown keys are rejected so typos
// do not silently fall back to defaults. An empty file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	return cfg, nil
}

// Validate checks ranges before any work starts.
func (c *Config) Validate() error {
	switch {
	case c.Customers < 0:
		return fmt.Errorf("%w: customers=%d must be >= 0", ErrInvalidConfig, c.Customers)
	case !(c.DPI > 0):
		return fmt.Errorf("%w: dpi=%v must be > 0", ErrInvalidConfig, c.DPI)
	case !(c.SizeInches > 0):
		return fmt.Errorf("%w: size_inches=%v must be > 0", ErrInvalidConfig, c.SizeInches)
	case strings.TrimSpace(c.Output) == "":
		return fmt.Errorf("%w: output path is empty", ErrInvalidConfig)
	}
	// compare in float so huge or infinite products never reach int conversion
	if px := c.SizeInches * c.DPI; !(px >= 0.5) || px >= MaxCanvasPixels+0.5 {
		return fmt.Errorf("%w: size_inches×dpi=%v px must round into [1, %d]",
			ErrInvalidConfig, px, MaxCanvasPixels)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if err := c.Model.Validate(); err != nil {
		return fmt.Errorf("%w: model: %w", ErrInvalidConfig, err)
	}

	return nil
}

// CanvasPixels is the square output side in pixels. Meaningful only after
// Validate succeeded.
func (c *Config) CanvasPixels() int {
	return int(c.SizeInches*c.DPI + 0.5)
}

// ParseLogLevel maps debug/info/warn/error (any case) onto slog levels.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO", "":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: log_level=%q", ErrInvalidConfig, s)
	}
}
