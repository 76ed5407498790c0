// Package farm implements the farming game: a grid of cells holding growing
// food, a farmer who walks the field to plant and harvest, survival vitals,
// crafting, and lifetime statistics.
//
// Every stateful entity (cell, food, farmer) owns an fsm.Machine and is
// advanced once per tick by the Game.
package farm

import "github.com/vovakirdan/tui-farm/internal/fsm"

// State tags for every entity in the package.
const (
	StateFree fsm.StateID = iota + 1
	StatePlanted
	StateGrow
	StateRipe
	StateIdle
	StateWalk
	StatePlant
	StatePickup
)

// StateName returns a display name for a state tag.
func StateName(id fsm.StateID) string {
	switch id {
	case fsm.StateNone:
		return "None"
	case StateFree:
		return "Free"
	case StatePlanted:
		return "Planted"
	case StateGrow:
		return "Grow"
	case StateRipe:
		return "Ripe"
	case StateIdle:
		return "Idle"
	case StateWalk:
		return "Walk"
	case StatePlant:
		return "Plant"
	case StatePickup:
		return "Pickup"
	}
	return "Unknown"
}
