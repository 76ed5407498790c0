package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-farm/internal/farm"
	"github.com/vovakirdan/tui-farm/internal/platform/tui"
	"github.com/vovakirdan/tui-farm/internal/registry"
	"github.com/vovakirdan/tui-farm/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a field",
	Long: `Start farming. Without an argument the season mode "farm" is played.

Controls:
  Arrows/WASD  - Move the cursor
  Enter/Space  - Interact: plant, harvest or pick up
  Tab, 1-9     - Seed menu, pick a seed
  Q            - Plant the selected seed
  E / R        - Water / fertilize
  I / C        - Inventory / crafting
  X            - Trash the selected item
  H            - How to play
  P            - Pause
  Esc          - Close a panel (leave after game over)
  Ctrl+R       - Restart (after game over)
  Ctrl+C       - Quit

Difficulty options:
  easy   - Slower thirst, faster growth
  normal - Config values
  hard   - Faster thirst, slower growth
  fixed  - No progression, constant sunlight

Examples:
  farm play
  farm play farm_sandbox
  farm play --difficulty hard
  farm play --config ./my-farm.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "farm"
	if len(args) == 1 {
		gameID = args[0]
	}
	requireGame(gameID)

	logger, closeLog := mustLogger()
	defer closeLog()

	store := openStore(logger)
	err := playGame(gameID, store, logger)
	if store != nil {
		store.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// playGame runs one game until the player quits or leaves it.
func playGame(gameID string, store *storage.Store, logger *log.Logger) error {
	game, err := registry.Create(gameID, gameOptions(logger, openPrefs(logger)))
	if err != nil {
		return err
	}

	_, runErr := tui.Run(game, store, runtimeConfig(), logger)

	// Lifetime totals of an unfinished season are kept too
	if fg, ok := game.(*farm.Game); ok {
		if err := fg.Stats().Save(); err != nil {
			logger.Error("save stats", "error", err)
		}
	}
	return runErr
}
