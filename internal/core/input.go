package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow - move cursor up
	ActionDown             // S, Down arrow - move cursor down
	ActionLeft             // A, Left arrow - move cursor left
	ActionRight            // D, Right arrow - move cursor right
	ActionConfirm          // Enter, Space - interact with the selected cell or entry
	ActionBack             // Escape - cancel/close the open panel
	ActionRestart          // Ctrl+R - restart game after game over
	ActionQuit             // Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause game
	ActionPlant            // Q - plant the selected seed
	ActionWater            // E - water the plant under the cursor
	ActionFertilize        // R - fertilize the plant under the cursor
	ActionInventory        // I - toggle inventory
	ActionCraft            // C - toggle crafting
	ActionHelp             // H - toggle instructions
	ActionSeedMenu         // Tab - toggle seed selection
	ActionTrash            // X - drop the selected inventory item into the trash
	ActionSlot1            // 1..9 - pick a seed slot
	ActionSlot2
	ActionSlot3
	ActionSlot4
	ActionSlot5
	ActionSlot6
	ActionSlot7
	ActionSlot8
	ActionSlot9
)

// SlotCount is the number of numbered slot actions.
const SlotCount = 9

// SlotAction returns the slot action for a zero-based index.
// Returns ActionNone when the index is out of range.
func SlotAction(index int) Action {
	if index < 0 || index >= SlotCount {
		return ActionNone
	}
	return ActionSlot1 + Action(index)
}

// SlotIndex returns the zero-based slot index of a slot action, or -1.
func (a Action) SlotIndex() int {
	if a < ActionSlot1 || a > ActionSlot9 {
		return -1
	}
	return int(a - ActionSlot1)
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionPlant:
		return "Plant"
	case ActionWater:
		return "Water"
	case ActionFertilize:
		return "Fertilize"
	case ActionInventory:
		return "Inventory"
	case ActionCraft:
		return "Craft"
	case ActionHelp:
		return "Help"
	case ActionSeedMenu:
		return "SeedMenu"
	case ActionTrash:
		return "Trash"
	}
	if idx := a.SlotIndex(); idx >= 0 {
		return "Slot" + string(rune('1'+idx))
	}
	return "Unknown"
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Slot returns the first slot index pressed this frame, or -1.
func (f InputFrame) Slot() int {
	for i := range SlotCount {
		if f.Has(SlotAction(i)) {
			return i
		}
	}
	return -1
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
