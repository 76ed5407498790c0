package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-farm/internal/storage"
)

var (
	flagExportOut   string
	flagExportKind  string
	flagExportLimit int
)

var exportCmd = &cobra.Command{
	Use:   "export <game>",
	Short: "Export the harvest log as CSV",
	Long: `Write recorded history for a game as CSV.

Kinds:
  harvests - one row per harvested crop, newest first (default)
  scores   - one row per finished season, best first
  crops    - harvest count and points per crop

Examples:
  farm export farm
  farm export farm --kind scores --out scores.csv
  farm export farm_sandbox --kind crops`,
	Args: cobra.ExactArgs(1),
	Run:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output file (default: stdout)")
	exportCmd.Flags().StringVar(&flagExportKind, "kind", "harvests", "What to export: harvests, scores, crops")
	exportCmd.Flags().IntVar(&flagExportLimit, "limit", 0, "Maximum number of harvest rows (0 = all)")
}

func runExport(_ *cobra.Command, args []string) {
	gameID := args[0]
	requireGame(gameID)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var out io.Writer = os.Stdout
	if flagExportOut != "" {
		f, err := os.Create(flagExportOut)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", flagExportOut, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if err := exportCSV(store, gameID, flagExportKind, flagExportLimit, out); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
		os.Exit(1)
	}
}

// exportCSV writes one kind of history for gameID to out.
func exportCSV(store *storage.Store, gameID, kind string, limit int, out io.Writer) error {
	var rows any
	switch kind {
	case "harvests":
		h, err := store.Harvests(gameID, limit)
		if err != nil {
			return err
		}
		rows = &h
	case "scores":
		s, err := store.AllScores(gameID)
		if err != nil {
			return err
		}
		rows = &s
	case "crops":
		c, err := store.CropTotals(gameID)
		if err != nil {
			return err
		}
		rows = &c
	default:
		return fmt.Errorf("unknown export kind %q (want harvests, scores or crops)", kind)
	}
	return gocsv.Marshal(rows, out)
}
