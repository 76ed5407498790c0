package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/vovakirdan/tui-farm/internal/registry"
	"github.com/vovakirdan/tui-farm/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresReset bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game, statistics over
every finished season and the harvest totals per crop.

Examples:
  farm scores farm
  farm scores farm_sandbox --limit 20
  farm scores farm --reset`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of top scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresReset, "reset", false, "Delete every recorded season and harvest of the game")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]
	requireGame(gameID)

	game, err := registry.Create(gameID, registry.Options{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresReset {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Scores cleared for %s.\n", game.Title())
		return
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'farm play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	all, err := store.AllScores(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	s := summarize(all)
	fmt.Println()
	fmt.Printf("Seasons: %d  Best: %.0f  Mean: %.1f  Median: %.0f  Std dev: %.1f\n",
		s.Count, s.Best, s.Mean, s.Median, s.StdDev)
	if gs, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Harvests: %d  Total score: %d  Last played: %s\n",
			gs.Harvests, gs.TotalScore, gs.LastPlayed.Local().Format("2006-01-02 15:04"))
	}

	totals, err := store.CropTotals(gameID)
	if err == nil && len(totals) > 0 {
		fmt.Println()
		fmt.Printf("  %-10s  %-8s  %s\n", "Crop", "Harvests", "Points")
		fmt.Printf("  %-10s  %-8s  %s\n", "----", "--------", "------")
		for _, t := range totals {
			fmt.Printf("  %-10s  %-8d  %d\n", t.Crop, t.Count, t.Points)
		}
	}
}

// scoreSummary describes the distribution of finished season scores.
type scoreSummary struct {
	Count  int
	Best   float64
	Mean   float64
	Median float64
	StdDev float64
}

func summarize(entries []storage.ScoreEntry) scoreSummary {
	if len(entries) == 0 {
		return scoreSummary{}
	}
	xs := make([]float64, len(entries))
	for i, e := range entries {
		xs[i] = float64(e.Score)
	}
	slices.Sort(xs)

	s := scoreSummary{
		Count:  len(xs),
		Best:   xs[len(xs)-1],
		Median: stat.Quantile(0.5, stat.Empirical, xs, nil),
	}
	s.Mean, s.StdDev = stat.MeanStdDev(xs, nil)
	if len(xs) == 1 {
		s.StdDev = 0
	}
	return s
}
