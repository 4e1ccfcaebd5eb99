// arcade plays small canvas arcade games in the terminal.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores [game]     - Show high scores
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
//
// Settings may also come from ~/.arcade/arcade.toml or ARCADE_* variables.
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tinyarcade/internal/core"
	// Import games to register them
	_ "github.com/vovakirdan/tinyarcade/internal/games/flappy"
	_ "github.com/vovakirdan/tinyarcade/internal/games/platformer"
	_ "github.com/vovakirdan/tinyarcade/internal/games/pong"
	"github.com/vovakirdan/tinyarcade/internal/settings"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

// globalFlags maps setting keys to the persistent flags that override them.
var globalFlags = map[string]string{
	settings.KeyFPS:      "fps",
	settings.KeySeed:     "seed",
	settings.KeyDB:       "db",
	settings.KeyLogFile:  "log-file",
	settings.KeyLogLevel: "log-level",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Arcade - Flappy, Platformer and Pong in your terminal",
	Long: `Arcade plays small canvas games in the terminal: Flappy Bird,
a platformer and Pong.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  arcade list
  arcade play flappy
  arcade play pong --config ./pong.yaml
  arcade menu
  arcade serve --ssh :2222
  arcade scores flappy`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// mustSettings resolves settings for cmd from flags, environment and the
// config file. extra binds command-specific flags. Exits on error.
func mustSettings(cmd *cobra.Command, extra map[string]string) settings.Settings {
	v, err := settings.New("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	names := make(map[string]string, len(globalFlags)+len(extra))
	for k, f := range globalFlags {
		names[k] = f
	}
	for k, f := range extra {
		names[k] = f
	}
	if err := settings.BindFlags(v, cmd.Flags(), names); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	s, err := settings.Load(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return s
}

// runtimeConfig builds the runtime config for the local terminal.
func runtimeConfig(s settings.Settings) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = s.FPS
	cfg.Seed = s.Seed
	return cfg
}

// localPlayer names the local user in the score table.
func localPlayer() string {
	u, err := user.Current()
	if err != nil {
		return ""
	}
	return u.Username
}
