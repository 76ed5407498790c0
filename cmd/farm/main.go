// farm is a terminal farming game: plant seeds, care for trees, harvest
// crops and keep the farmer fed and watered until the season ends.
//
// Usage:
//
//	farm list              - List available fields
//	farm play [game]       - Play a field (default: farm)
//	farm menu              - Start menu to pick a field interactively
//	farm serve             - Start SSH server for remote play
//	farm scores <game>     - Show high scores and score statistics
//	farm stats             - Show lifetime statistics and achievements
//	farm export <game>     - Export the harvest log as CSV
//	farm recipes [name]    - Show crafting recipes and items
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.farm/scores.db)
//	--config <path>       - Custom farm config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log <path>          - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-farm/internal/farm"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "farm",
	Short: "TUI Farm - Grow crops in your terminal",
	Long: `TUI Farm is a terminal farming game. Plant seeds on a grid of cells,
water and fertilize trees, harvest ripe food for points and keep your
farmer fed and watered until the season ends.

Available commands:
  list     - Show all available fields
  play     - Play a field directly
  menu     - Interactive field picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and statistics
  stats    - View lifetime statistics and achievements
  export   - Export the harvest log as CSV

Examples:
  farm play
  farm play farm_sandbox --difficulty easy
  farm menu
  farm serve --ssh :2222
  farm scores farm
  farm export farm --out harvests.csv`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.farm/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom farm config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(recipesCmd)
}
