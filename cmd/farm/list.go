package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-farm/internal/registry"
	"github.com/vovakirdan/tui-farm/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available fields",
	Long:  `Shows a list of all game modes registered in the farm, with the number of recorded seasons and the best score of each.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	logger, closeLog := mustLogger()
	defer closeLog()

	var played map[string]*storage.GameStats
	if store := openStore(logger); store != nil {
		defer store.Close()
		all, err := store.GetAllGamesStats()
		if err != nil {
			logger.Warn("could not read game stats", "error", err)
		}
		played = all
	}

	writeGameList(os.Stdout, registry.List(), played)
}

// writeGameList prints the registered games. played may be nil.
func writeGameList(w io.Writer, games []registry.GameInfo, played map[string]*storage.GameStats) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No games available.")
		return
	}

	fmt.Fprintln(w, "Available games:")
	fmt.Fprintln(w)

	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Fprintf(w, "  %-*s  %-*s  %7s  %5s\n", maxIDLen, "ID", maxTitleLen, "Title", "Seasons", "Best")
	fmt.Fprintf(w, "  %-*s  %-*s  %7s  %5s\n", maxIDLen, "--", maxTitleLen, "-----", "-------", "----")
	for _, g := range games {
		seasons, best := 0, "-"
		if gs, ok := played[g.ID]; ok && gs.GamesCount > 0 {
			seasons = gs.GamesCount
			best = fmt.Sprint(gs.HighScore)
		}
		fmt.Fprintf(w, "  %-*s  %-*s  %7d  %5s\n", maxIDLen, g.ID, maxTitleLen, g.Title, seasons, best)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'farm play <id>' to play.")
}
