package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-farm/internal/config"
	"github.com/vovakirdan/tui-farm/internal/farm"
)

var flagStatsReset bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime statistics and achievements",
	Long: `Display the lifetime totals kept across every game: score, harvests,
plantings, harvests per crop and unlocked achievements.

Examples:
  farm stats
  farm stats --reset`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagStatsReset, "reset", false, "Wipe every lifetime statistic")
}

func runStats(_ *cobra.Command, _ []string) {
	logger, closeLog := mustLogger()
	defer closeLog()

	cfg, err := config.LoadFarm(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// A game that was never reset still exposes the lifetime statistics.
	stats := farm.NewWithConfig(farm.ModeSeason, cfg, gameOptions(logger, openPrefs(logger))).Stats()
	if flagStatsReset {
		if err := stats.ResetAll(); err != nil {
			fmt.Fprintf(os.Stderr, "Error resetting stats: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Lifetime statistics cleared.")
		return
	}

	fmt.Println("Lifetime Statistics")
	fmt.Println()
	fmt.Printf("  High score:     %d\n", stats.High())
	fmt.Printf("  Total score:    %d\n", stats.Total())
	fmt.Printf("  Total harvests: %d\n", stats.Harvests())
	fmt.Printf("  Total plants:   %d\n", stats.Plants())

	fmt.Println()
	fmt.Println("Harvests per crop:")
	for _, c := range cfg.Crops {
		fmt.Printf("  %-10s %d\n", c.Name, stats.CropHarvests(c.Name))
	}

	fmt.Println()
	fmt.Printf("Achievements (%d/%d):\n", len(stats.Unlocked()), len(stats.Achievements()))
	for _, a := range stats.Achievements() {
		mark := "[ ]"
		if stats.IsUnlocked(a.Name) {
			mark = "[x]"
		}
		fmt.Printf("  %s %-18s %s\n", mark, a.Name, a.Description)
	}
}
