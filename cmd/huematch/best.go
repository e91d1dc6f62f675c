package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show the best score",
	Long: `Display the all-time best score and when it was achieved.

Examples:
  huematch best
  huematch best --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runBest,
}

func runBest(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := openStore(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening score storage: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	rec, ok := store.Load()
	if !ok {
		fmt.Println("No best score recorded yet.")
		fmt.Println()
		fmt.Println("Play 'huematch play' to set the first one!")
		return
	}

	fmt.Printf("Best score: %d\n", rec.Score)
	if date := rec.Date(); date != "" {
		fmt.Printf("Achieved on: %s\n", date)
	}
}
