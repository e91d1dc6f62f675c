package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDefaultRound(t *testing.T) {
	r := Default().Round
	assert.Equal(t, 5, r.Ticks)
	assert.Equal(t, time.Second, r.TickInterval)
	assert.Equal(t, 3, r.Options)
	assert.Equal(t, 5, r.Reward)
	assert.Equal(t, time.Second, r.FeedbackDelay)
	assert.Equal(t, 5*time.Second, r.Duration())
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := `
round:
  ticks: 8
  tick_interval: 500ms
storage:
  backend: file
  path: /tmp/best.json
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Round.Ticks)
	assert.Equal(t, 500*time.Millisecond, cfg.Round.TickInterval)
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/best.json", cfg.Storage.Path)

	// Unset fields keep defaults
	assert.Equal(t, 3, cfg.Round.Options)
	assert.Equal(t, 5, cfg.Round.Reward)
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestLoadCustomPathMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("round: [1, 2"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "zero ticks", mutate: func(c *Config) { c.Round.Ticks = 0 }, wantErr: "round.ticks"},
		{name: "zero interval", mutate: func(c *Config) { c.Round.TickInterval = 0 }, wantErr: "round.tick_interval"},
		{name: "too many options", mutate: func(c *Config) { c.Round.Options = 10 }, wantErr: "round.options"},
		{name: "no options", mutate: func(c *Config) { c.Round.Options = 0 }, wantErr: "round.options"},
		{name: "negative reward", mutate: func(c *Config) { c.Round.Reward = -5 }, wantErr: "round.reward"},
		{name: "negative delay", mutate: func(c *Config) { c.Round.FeedbackDelay = -time.Second }, wantErr: "round.feedback_delay"},
		{name: "unknown backend", mutate: func(c *Config) { c.Storage.Backend = "redis" }, wantErr: "storage.backend"},
		{name: "empty path", mutate: func(c *Config) { c.Storage.Path = "" }, wantErr: "storage.path"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestMarshalUsesDurationStrings(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)
	out := string(data)
	assert.True(t, strings.Contains(out, "tick_interval: 1s"), out)
	assert.True(t, strings.Contains(out, "backend: sqlite"), out)
}

func TestExpandPath(t *testing.T) {
	p, err := ExpandPath("/abs/path.db")
	require.NoError(t, err)
	assert.Equal(t, "/abs/path.db", p)

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	p, err = ExpandPath("~/.huematch/scores.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".huematch", "scores.db"), p)
}
