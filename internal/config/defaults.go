package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/huematch.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Round: RoundConfig{
			Ticks:         5,
			TickInterval:  time.Second,
			Options:       3,
			Reward:        5,
			FeedbackDelay: time.Second,
		},
		Storage: StorageConfig{
			Backend: BackendSQLite,
			Path:    "~/.huematch/scores.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
