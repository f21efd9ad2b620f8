// Package config defines lesson configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Loading functions accept context.Context as the first parameter.
// - External errors are wrapped with this package's sentinel errors.
package config

import (
	"fmt"
	"slices"
)

// Output pacing presets.
const (
	SpeedFast   = "fast"
	SpeedNormal = "normal"
	SpeedSlow   = "slow"
)

// Explanation verbosity presets.
const (
	ExplainMinimal = "minimal"
	ExplainNormal  = "normal"
)

// Speeds lists the accepted speed values.
var Speeds = []string{SpeedFast, SpeedNormal, SpeedSlow}

// Explains lists the accepted explain values.
var Explains = []string{ExplainMinimal, ExplainNormal}

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Speed paces printed output: fast, normal, slow.
	Speed string `koanf:"speed"`

	// Explain controls the lesson introduction: minimal, normal.
	Explain string `koanf:"explain"`

	// AllowRomaji accepts romanized answers.
	AllowRomaji bool `koanf:"allow_romaji"`

	// Name is shown in the self-introduction prompt.
	Name string `koanf:"name"`

	// Color enables coloured feedback.
	Color bool `koanf:"color"`

	// MetricsFile, when set, receives the run's metrics in Prometheus text format.
	MetricsFile string `koanf:"metrics_file"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel: "warn",
		Speed:    SpeedNormal,
		Explain:  ExplainNormal,
		Color:    true,
	}
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if !slices.Contains(Speeds, c.Speed) {
		return fmt.Errorf("%w: speed must be one of %v, got %q", ErrInvalidConfig, Speeds, c.Speed)
	}
	if !slices.Contains(Explains, c.Explain) {
		return fmt.Errorf("%w: explain must be one of %v, got %q", ErrInvalidConfig, Explains, c.Explain)
	}
	return nil
}
