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
	flagScoresLimit int
	flagScoresClear bool
	flagScoresStats bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top high scores for the specified game.
Without a game, opens the interactive scoreboard.

Examples:
  arcade scores
  arcade scores flappy
  arcade scores pong --limit 20
  arcade scores --stats
  arcade scores flappy --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the game")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show per-game statistics")
}

func runScores(cmd *cobra.Command, args []string) {
	s := mustSettings(cmd, nil)

	if len(args) == 1 && !registry.Exists(args[0]) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(s.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresStats:
		err = printStats(store)
	case len(args) == 0:
		cfg := runtimeConfig(s)
		_, err = tui.RunScoreboard(store, localPlayer(), cfg.ScreenW, cfg.ScreenH)
	case flagScoresClear:
		err = store.ClearScores(args[0])
		if err == nil {
			fmt.Printf("Cleared scores for %s.\n", args[0])
		}
	default:
		err = printScores(store, args[0])
	}

	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store, gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-12s  %-10s  %s\n", "----", "------", "-----", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-10d  %s\n", i+1, player, entry.Score, dateStr)
	}

	// Show high score
	fmt.Println()
	highScore, err := store.HighScore(gameID)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
	return nil
}

func printStats(store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No games played yet.")
		return nil
	}

	fmt.Printf("  %-12s  %-6s  %-6s  %-8s  %s\n", "Game", "Runs", "Best", "Average", "Last played")
	fmt.Printf("  %-12s  %-6s  %-6s  %-8s  %s\n", "----", "----", "----", "-------", "-----------")
	for _, g := range registry.List() {
		gs, ok := stats[g.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-12s  %-6d  %-6d  %-8.1f  %s\n",
			g.ID, gs.GamesCount, gs.HighScore, gs.AvgScore, gs.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
