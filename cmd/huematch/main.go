// huematch is a terminal color-matching reaction game.
//
// Usage:
//
//	huematch play     - Play in this terminal
//	huematch serve    - Start SSH server for remote play
//	huematch best     - Show the best score
//	huematch reset    - Clear the best score
//	huematch config   - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.huematch/configs, ./configs)
//	--db <path>         - Score storage path (overrides config)
//	--backend <name>    - Score storage backend: sqlite or file (overrides config)
//	--seed <value>      - Set RNG seed for reproducible rounds
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/huematch/internal/config"
	"github.com/vovakirdan/huematch/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagBackend  string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "huematch",
	Short: "HueMatch - Match colors against the clock",
	Long: `HueMatch shows a color block and a row of swatches. Pick the swatch
that matches before the timer runs out. Every correct pick scores points;
a wrong pick or a timeout ends the run. The best score is kept.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  best     - Show the best score
  reset    - Clear the best score
  config   - Print the effective configuration

Examples:
  huematch play
  huematch play --seed 42
  huematch serve --ssh :2222
  huematch best --backend file --db ~/.huematch/best.json`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to score storage (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Score storage backend: sqlite or file (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file and applies command line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagBackend != "" {
		cfg.Storage.Backend = config.Backend(flagBackend)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "huematch",
		Level:           level,
	}), nil
}

// openStore opens the configured score backend.
func openStore(cfg config.Config, logger *log.Logger) (storage.Backend, error) {
	return storage.OpenBackend(cfg.Storage, logger)
}
