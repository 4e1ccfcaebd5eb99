package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tinyarcade/internal/platform/tui"
	"github.com/vovakirdan/tinyarcade/internal/registry"
	"github.com/vovakirdan/tinyarcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Space/W/Up   - Flap (Flappy), jump (Platformer), paddle up (Pong)
  S/Down       - Paddle down (Pong)
  A/D/Arrows   - Move (Platformer)
  P            - Pause / resume
  O            - Step one frame while paused
  R            - Restart
  Q/Ctrl+C     - Quit

Difficulty options (Flappy):
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play flappy
  arcade play flappy --difficulty hard
  arcade play flappy --config ./my-flappy.yaml
  arcade play platformer --level ./levels/tower.yaml
  arcade play pong --fps 30`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Path to a custom level YAML (platformer)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	s := mustSettings(cmd, nil)

	game, err := registry.CreateConfigured(gameID, registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		LevelPath:  flagLevel,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

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
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, runtimeConfig(s), tui.Options{
		Store:  store,
		Logger: logger,
		Player: localPlayer(),
	})

	// Close store and log before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
