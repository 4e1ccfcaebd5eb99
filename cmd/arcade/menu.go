package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tinyarcade/internal/platform/tui"
	"github.com/vovakirdan/tinyarcade/internal/registry"
	"github.com/vovakirdan/tinyarcade/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Esc in a game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - High scores
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --difficulty hard
  arcade menu --db ./scores.db`,
	Run: runMenu,
}

var flagMenuDifficulty string

func init() {
	menuCmd.Flags().StringVar(&flagMenuDifficulty, "difficulty", "", "Difficulty preset for games that support it")
}

func runMenu(cmd *cobra.Command, _ []string) {
	s := mustSettings(cmd, nil)

	logger, closeLog, err := s.Logger("arcade", true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(s.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	runErr := tui.RunSession(store, runtimeConfig(s), tui.SessionOptions{
		Player: localPlayer(),
		Logger: logger,
		Game:   registry.Options{Difficulty: flagMenuDifficulty},
	})

	// Cleanup
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
