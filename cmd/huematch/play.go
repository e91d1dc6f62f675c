package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/huematch/internal/config"
	"github.com/vovakirdan/huematch/internal/core"
	"github.com/vovakirdan/huematch/internal/game"
	"github.com/vovakirdan/huematch/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Enter/Space  - Start, pick highlighted swatch, play again
  1-9          - Pick a swatch directly
  Left/Right   - Move the highlight
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Logs are written to ~/.huematch/huematch.log while the game runs.

Examples:
  huematch play
  huematch play --seed 42
  huematch play --config ./my-huematch.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so log to a file
	logPath := filepath.Join(config.HomeDir(), "huematch.log")
	if mkErr := os.MkdirAll(filepath.Dir(logPath), 0o755); mkErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", mkErr)
		os.Exit(1)
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger, err := newLogger(logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early so the first frame is laid out correctly
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	// Open score storage
	var store game.ScoreStore
	backend, err := openStore(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open score storage: %v\n", err)
		logger.Warn("playing without score storage", "error", err)
		// Continue without storage - game still works
	} else {
		store = backend
	}

	runErr := tui.Run(cfg.Round, store, rt, logger)

	// Close store before potential exit
	if backend != nil {
		backend.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
