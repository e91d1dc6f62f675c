// Package config provides YAML-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains all configuration for HueMatch.
type Config struct {
	Round   RoundConfig   `yaml:"round"`
	Storage StorageConfig `yaml:"storage"`
}

// RoundConfig defines the timing and scoring of a round.
type RoundConfig struct {
	Ticks         int           `yaml:"ticks"`          // Countdown length in ticks
	TickInterval  time.Duration `yaml:"tick_interval"`  // Wall-clock length of one tick
	Options       int           `yaml:"options"`        // Swatches per round, target included
	Reward        int           `yaml:"reward"`         // Points per correct pick
	FeedbackDelay time.Duration `yaml:"feedback_delay"` // Pause after a pick
}

// StorageConfig selects where the best score lives.
type StorageConfig struct {
	Backend Backend `yaml:"backend"`
	Path    string  `yaml:"path"`
}

// Backend names a score storage implementation.
type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendFile   Backend = "file"
)

// MaxOptions is the largest supported swatch count (one digit key per swatch).
const MaxOptions = 9

// Validate checks that every value is usable.
func (c Config) Validate() error {
	var errs []error
	r := c.Round
	if r.Ticks <= 0 {
		errs = append(errs, fmt.Errorf("round.ticks must be positive, got %d", r.Ticks))
	}
	if r.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("round.tick_interval must be positive, got %s", r.TickInterval))
	}
	if r.Options < 1 || r.Options > MaxOptions {
		errs = append(errs, fmt.Errorf("round.options must be in [1, %d], got %d", MaxOptions, r.Options))
	}
	if r.Reward <= 0 {
		errs = append(errs, fmt.Errorf("round.reward must be positive, got %d", r.Reward))
	}
	if r.FeedbackDelay < 0 {
		errs = append(errs, fmt.Errorf("round.feedback_delay must not be negative, got %s", r.FeedbackDelay))
	}
	switch c.Storage.Backend {
	case BackendSQLite, BackendFile:
	default:
		errs = append(errs, fmt.Errorf("storage.backend must be %q or %q, got %q", BackendSQLite, BackendFile, c.Storage.Backend))
	}
	if c.Storage.Path == "" {
		errs = append(errs, errors.New("storage.path must not be empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// Duration returns the full countdown length.
func (r RoundConfig) Duration() time.Duration {
	return time.Duration(r.Ticks) * r.TickInterval
}
