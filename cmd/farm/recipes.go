package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-farm/internal/config"
	"github.com/vovakirdan/tui-farm/internal/inventory"
)

var recipesCmd = &cobra.Command{
	Use:   "recipes [name]",
	Short: "Show crafting recipes and items",
	Long: `List every crafting recipe and item kind of the current config, or
show a single recipe by name. Misspelled names get a suggestion.

Examples:
  farm recipes
  farm recipes campfire
  farm recipes --config ./my_farm.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRecipes,
}

func runRecipes(_ *cobra.Command, args []string) {
	logger, closeLog := mustLogger()
	defer closeLog()

	cfg, err := config.LoadFarm(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	name := ""
	if len(args) == 1 {
		name = args[0]
	}
	if err := writeRecipes(os.Stdout, cfg, name, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// writeRecipes prints one recipe when name is set, otherwise the whole
// recipe book followed by the item catalog.
func writeRecipes(w io.Writer, cfg config.FarmConfig, name string, logger *log.Logger) error {
	crafter := inventory.NewCrafter(inventory.New(cfg.Inventory.Capacity, logger), cfg.Blueprints, logger)
	catalog := inventory.NewCatalog(cfg.Items...)

	if name != "" {
		bp, err := crafter.Lookup(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s (makes %d)\n", bp.Name, bp.Produces())
		if it, ok := catalog.Get(bp.Name); ok && it.Description != "" {
			fmt.Fprintf(w, "  %s\n", it.Description)
		}
		for _, r := range bp.Requirements {
			fmt.Fprintf(w, "  needs %d %s\n", r.Amount, r.Item)
		}
		return nil
	}

	fmt.Fprintln(w, "Recipes:")
	for _, bp := range crafter.Recipes() {
		fmt.Fprintf(w, "  %-10s %s\n", bp.Name, requirementList(bp))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Items:")
	for _, n := range catalog.Names() {
		it, _ := catalog.Get(n)
		line := fmt.Sprintf("  %-10s %s", n, it.Functionality)
		if it.Consumable && !it.Effects.IsZero() {
			e := it.Effects
			line += fmt.Sprintf(" (health %+g, calories %+g, hydration %+g)", e.Health, e.Calories, e.Hydration)
		}
		fmt.Fprintln(w, line)
	}
	return nil
}

func requirementList(bp inventory.Blueprint) string {
	parts := make([]string, len(bp.Requirements))
	for i, r := range bp.Requirements {
		parts[i] = fmt.Sprintf("%d %s", r.Amount, r.Item)
	}
	return strings.Join(parts, ", ")
}
