// Package yaml loads amati configuration from layered YAML files.
package yaml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fwojciec/amati"
	"github.com/fwojciec/amati/analytic"
	"github.com/fwojciec/amati/lipgloss"
	"gopkg.in/yaml.v3"
)

// Config holds user-adjustable defaults. Command-line flags take precedence
// over every field.
type Config struct {
	Format    string          `yaml:"format"`
	LogLevel  string          `yaml:"log_level"`
	Analytics AnalyticsConfig `yaml:"analytics"`
	Text      TextConfig      `yaml:"text"`
	Guitar    GuitarConfig    `yaml:"guitar"`
}

// AnalyticsConfig toggles optional analytics.
type AnalyticsConfig struct {
	Reharmonization bool     `yaml:"reharmonization"`
	Views           []string `yaml:"views"` // SCALE analytics to run; empty = defaults
}

// TextConfig configures the text table strategy.
type TextConfig struct {
	Border       string `yaml:"border"`
	MaxCellWidth int    `yaml:"max_cell_width"`
	Color        bool   `yaml:"color"`
}

// GuitarConfig configures the guitar fretboard analytic.
type GuitarConfig struct {
	Frets  int      `yaml:"frets"`
	Tuning []string `yaml:"tuning"` // highest string first
}

// MaxFrets is the largest fret count Validate accepts.
const MaxFrets = 24

var logLevels = []string{"debug", "info", "warn", "error"}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Format:   "text",
		LogLevel: "warn",
		Text:     TextConfig{Border: "ascii"},
		Guitar: GuitarConfig{
			Frets:  12,
			Tuning: []string{"E", "B", "G", "D", "A", "E"},
		},
	}
}

// UserConfigPath returns the per-user config file location under home.
func UserConfigPath(home string) string {
	return filepath.Join(home, ".config", "amati", "config.yaml")
}

// Load layers configuration: defaults, then the user file (skipped when
// missing), then the explicit file (required when non-empty). The result is
// validated.
func Load(userPath, explicitPath string) (Config, error) {
	cfg := DefaultConfig()
	if userPath != "" {
		if err := cfg.MergeFile(userPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, err
		}
	}
	if explicitPath != "" {
		if err := cfg.MergeFile(explicitPath); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MergeFile overlays the keys present in the YAML file at path onto c.
// A missing file yields an error wrapping os.ErrNotExist.
func (c *Config) MergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	return c.Merge(data)
}

// Merge overlays the keys present in data onto c.
func (c *Config) Merge(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config: %w: %w", err, amati.ErrValidation)
	}
	return nil
}

// Validate checks every field that can be checked without a resolver.
func (c Config) Validate() error {
	if _, err := amati.ParseOutputFormat(c.Format); err != nil {
		return fmt.Errorf("config format: %w", err)
	}
	if !slices.Contains(logLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("config log_level must be one of %s, got %q: %w",
			strings.Join(logLevels, ", "), c.LogLevel, amati.ErrValidation)
	}
	for _, v := range c.Analytics.Views {
		if !slices.Contains(analytic.Views(), strings.ToLower(strings.TrimSpace(v))) {
			return fmt.Errorf("config analytics.views entries must be one of %s, got %q: %w",
				strings.Join(analytic.Views(), ", "), v, amati.ErrValidation)
		}
	}
	if !slices.Contains(lipgloss.Borders(), strings.ToLower(c.Text.Border)) {
		return fmt.Errorf("config text.border must be one of %s, got %q: %w",
			strings.Join(lipgloss.Borders(), ", "), c.Text.Border, amati.ErrValidation)
	}
	if c.Text.MaxCellWidth < 0 {
		return fmt.Errorf("config text.max_cell_width must be non-negative, got %d: %w",
			c.Text.MaxCellWidth, amati.ErrValidation)
	}
	if c.Guitar.Frets < 1 || c.Guitar.Frets > MaxFrets {
		return fmt.Errorf("config guitar.frets must be in [1, %d], got %d: %w",
			MaxFrets, c.Guitar.Frets, amati.ErrValidation)
	}
	if len(c.Guitar.Tuning) == 0 {
		return fmt.Errorf("config guitar.tuning must not be empty: %w", amati.ErrValidation)
	}
	return nil
}
