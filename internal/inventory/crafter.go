package inventory

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/log"
)

var (
	// ErrMissingMaterials is returned when a requirement is short.
	ErrMissingMaterials = errors.New("inventory: not enough materials")
	// ErrUnknownRecipe is returned by Lookup for names with no recipe.
	ErrUnknownRecipe = errors.New("inventory: unknown recipe")
)

// Crafter turns inventory materials into products using known recipes.
type Crafter struct {
	inv     *Inventory
	recipes []Blueprint
	logger  *log.Logger
}

// NewCrafter creates a crafter over inv. Invalid recipes are logged and
// skipped. logger may be nil.
func NewCrafter(inv *Inventory, recipes []Blueprint, logger *log.Logger) *Crafter {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Crafter{inv: inv, logger: logger}
	for _, bp := range recipes {
		if bp.Yield == 0 {
			bp.Yield = 1
		}
		if err := bp.Validate(); err != nil {
			logger.Error("recipe skipped", "err", err)
			continue
		}
		c.recipes = append(c.recipes, bp)
	}
	return c
}

// Recipes returns the known recipes in configuration order.
func (c *Crafter) Recipes() []Blueprint {
	out := make([]Blueprint, len(c.recipes))
	copy(out, c.recipes)
	return out
}

// Lookup finds a recipe by case-insensitive name. Unknown names return
// ErrUnknownRecipe, with the closest known name suggested when one is near.
func (c *Crafter) Lookup(name string) (Blueprint, error) {
	names := make([]string, 0, len(c.recipes))
	for _, bp := range c.recipes {
		if strings.EqualFold(bp.Name, name) {
			return bp, nil
		}
		names = append(names, bp.Name)
	}
	if s := closest(name, names); s != "" {
		return Blueprint{}, fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownRecipe, name, s)
	}
	return Blueprint{}, fmt.Errorf("%w: %q", ErrUnknownRecipe, name)
}

// CanCraft reports whether every requirement is held in full.
func (c *Crafter) CanCraft(bp Blueprint) bool {
	return c.shortfall(bp) == ""
}

func (c *Crafter) shortfall(bp Blueprint) string {
	for _, r := range bp.Totals() {
		if have := c.inv.Count(r.Item); have < r.Amount {
			return fmt.Sprintf("%s %d/%d", r.Item, have, r.Amount)
		}
	}
	return ""
}

// Craft consumes the recipe's materials and adds its product.
//
// A craft with missing materials fails with ErrMissingMaterials. A craft
// whose product would not fit even after the materials are removed fails
// with ErrInventoryFull. In both cases the inventory is left unchanged.
func (c *Crafter) Craft(bp Blueprint) error {
	if short := c.shortfall(bp); short != "" {
		c.logger.Info("craft rejected", "item", bp.Name, "short", short)
		return fmt.Errorf("%w: %s", ErrMissingMaterials, short)
	}
	if c.inv.Len()-bp.Consumes()+bp.Produces() > c.inv.Capacity() {
		c.logger.Info("craft rejected, no room for product", "item", bp.Name)
		return ErrInventoryFull
	}

	for _, r := range bp.Requirements {
		c.inv.Remove(r.Item, r.Amount)
	}
	for i := 0; i < bp.Produces(); i++ {
		if err := c.inv.Add(bp.Name); err != nil {
			return err
		}
	}
	c.logger.Info("crafted", "item", bp.Name)
	return nil
}

// Status returns one "3 Rock[2]" line per requirement.
func (c *Crafter) Status(bp Blueprint) []string {
	lines := make([]string, len(bp.Requirements))
	for i, r := range bp.Requirements {
		lines[i] = r.StatusLine(c.inv.Count(r.Item))
	}
	return lines
}

// closest returns the candidate nearest to name within a length-scaled
// edit distance, or "".
func closest(name string, candidates []string) string {
	needle := strings.ToLower(name)
	best, bestDist := "", -1
	for _, cand := range candidates {
		dist := levenshtein.ComputeDistance(needle, strings.ToLower(cand))
		if dist > distanceLimit(len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
