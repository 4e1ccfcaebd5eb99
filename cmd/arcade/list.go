package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tinyarcade/internal/config"
	"github.com/vovakirdan/tinyarcade/internal/core"
	"github.com/vovakirdan/tinyarcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long: `Shows every game registered in the arcade with its world size, the
clocks it runs on besides the frame clock, and the config file it would
load (user config, ./configs, or the built-in defaults).`,
	Run: runList,
}

// gameListing is one row of the list output.
type gameListing struct {
	ID     string
	Title  string
	World  string
	Clocks string
	Config string
}

func runList(cmd *cobra.Command, _ []string) {
	var rows []gameListing
	for _, info := range registry.List() {
		game, err := registry.CreateConfigured(info.ID, registry.Options{})
		if err != nil {
			// A broken user config still lists the game with its defaults.
			game, err = registry.Create(info.ID)
			if err != nil {
				continue
			}
		}
		rows = append(rows, describeGame(game, config.ConfigSource(info.ID)))
	}
	writeGameList(os.Stdout, rows)
}

func describeGame(game registry.Game, source string) gameListing {
	w, h := game.World()
	if source == "" {
		source = "built-in"
	}
	return gameListing{
		ID:     game.ID(),
		Title:  game.Title(),
		World:  fmt.Sprintf("%gx%g", w, h),
		Clocks: describeClocks(game.Clocks()),
		Config: source,
	}
}

// describeClocks renders clocks as "id rate", in Hz when the interval is
// a whole rate and as the interval otherwise.
func describeClocks(clocks []core.Clock) string {
	if len(clocks) == 0 {
		return "-"
	}
	parts := make([]string, len(clocks))
	for i, c := range clocks {
		hz := float64(time.Second) / float64(c.Interval)
		if c.Interval > 0 && math.Abs(hz-math.Round(hz)) < 0.01 {
			parts[i] = fmt.Sprintf("%s %dHz", c.ID, int(math.Round(hz)))
		} else {
			parts[i] = fmt.Sprintf("%s %s", c.ID, c.Interval)
		}
	}
	return strings.Join(parts, ", ")
}

func writeGameList(w io.Writer, rows []gameListing) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No games available.")
		return
	}

	header := gameListing{ID: "ID", Title: "Title", World: "World", Clocks: "Clocks", Config: "Config"}
	widths := [4]int{}
	for _, r := range append([]gameListing{header}, rows...) {
		for i, v := range []string{r.ID, r.Title, r.World, r.Clocks} {
			widths[i] = max(widths[i], len(v))
		}
	}
	line := func(r gameListing) {
		fmt.Fprintf(w, "  %-*s  %-*s  %-*s  %-*s  %s\n",
			widths[0], r.ID, widths[1], r.Title, widths[2], r.World, widths[3], r.Clocks, r.Config)
	}

	fmt.Fprintln(w, "Available games:")
	fmt.Fprintln(w)
	line(header)
	line(gameListing{ID: "--", Title: "-----", World: "-----", Clocks: "------", Config: "------"})
	for _, r := range rows {
		line(r)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'arcade play <id>' to play a game.")
}
