package inventory

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidBlueprint is returned by Validate for malformed recipes.
var ErrInvalidBlueprint = errors.New("inventory: invalid blueprint")

// Requirement is an amount of one material consumed by a craft.
type Requirement struct {
	Item   string `yaml:"item"`
	Amount int    `yaml:"amount"`
}

// Blueprint is a crafting recipe.
type Blueprint struct {
	Name         string        `yaml:"name"`
	Yield        int           `yaml:"yield"`
	Requirements []Requirement `yaml:"requirements"`
}

// Validate checks the recipe has a name and positive requirements.
func (bp Blueprint) Validate() error {
	if bp.Name == "" {
		return fmt.Errorf("%w: item name cannot be empty", ErrInvalidBlueprint)
	}
	if len(bp.Requirements) == 0 {
		return fmt.Errorf("%w: %s has no requirements", ErrInvalidBlueprint, bp.Name)
	}
	if bp.Yield < 0 {
		return fmt.Errorf("%w: %s has negative yield", ErrInvalidBlueprint, bp.Name)
	}
	seen := make(map[string]bool, len(bp.Requirements))
	for i, r := range bp.Requirements {
		if r.Item == "" {
			return fmt.Errorf("%w: %s requirement %d has no item", ErrInvalidBlueprint, bp.Name, i+1)
		}
		if r.Amount <= 0 {
			return fmt.Errorf("%w: %s requirement %s amount must be positive", ErrInvalidBlueprint, bp.Name, r.Item)
		}
		if seen[r.Item] {
			return fmt.Errorf("%w: %s lists %s more than once", ErrInvalidBlueprint, bp.Name, r.Item)
		}
		seen[r.Item] = true
	}
	return nil
}

// Totals returns the requirements with repeated items merged, in first
// appearance order.
func (bp Blueprint) Totals() []Requirement {
	out := make([]Requirement, 0, len(bp.Requirements))
	index := make(map[string]int, len(bp.Requirements))
	for _, r := range bp.Requirements {
		if i, ok := index[r.Item]; ok {
			out[i].Amount += r.Amount
			continue
		}
		index[r.Item] = len(out)
		out = append(out, r)
	}
	return out
}

// Produces returns how many items one craft yields.
func (bp Blueprint) Produces() int {
	if bp.Yield <= 0 {
		return 1
	}
	return bp.Yield
}

// Consumes returns the total number of material slots one craft frees.
func (bp Blueprint) Consumes() int {
	n := 0
	for _, r := range bp.Requirements {
		n += r.Amount
	}
	return n
}

// StatusLine renders a requirement as "3 Rock[2]" where 2 is the held count.
func (r Requirement) StatusLine(held int) string {
	return strconv.Itoa(r.Amount) + " " + r.Item + "[" + strconv.Itoa(held) + "]"
}
