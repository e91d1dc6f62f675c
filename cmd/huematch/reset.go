package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the best score",
	Long: `Delete the stored best score. The next finished game sets a new one.

Examples:
  huematch reset --yes`,
	Args: cobra.NoArgs,
	Run:  runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Confirm deleting the best score")
}

func runReset(_ *cobra.Command, _ []string) {
	if !flagYes {
		fmt.Fprintln(os.Stderr, "Error: refusing to clear the best score without --yes")
		os.Exit(1)
	}

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

	if err := store.Reset(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Best score cleared.")
}
