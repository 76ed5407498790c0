package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-farm/internal/core"
)

// KeyMap holds the in-game key bindings. It also implements help.KeyMap so
// the menu can show the controls.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Confirm    key.Binding
	Back       key.Binding
	Plant      key.Binding
	Water      key.Binding
	Fertilize  key.Binding
	Inventory  key.Binding
	Craft      key.Binding
	Help       key.Binding
	SeedMenu   key.Binding
	Trash      key.Binding
	Slots      key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default in-game bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "down")),
		Left:       key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "left")),
		Right:      key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "right")),
		Confirm:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "interact")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Plant:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "plant")),
		Water:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "water")),
		Fertilize:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "fertilize")),
		Inventory:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "inventory")),
		Craft:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "craft")),
		Help:       key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "how to play")),
		SeedMenu:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "seeds")),
		Trash:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "trash/clear")),
		Slots:      key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "pick seed")),
		Pause:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Restart:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "restart")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Plant, k.Water, k.Fertilize, k.SeedMenu, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Confirm, k.Back, k.SeedMenu, k.Slots},
		{k.Plant, k.Water, k.Fertilize},
		{k.Inventory, k.Craft, k.Trash, k.Help},
		{k.Pause, k.Restart, k.Screenshot, k.Quit},
	}
}

// MapKey translates a key message to a game action.
// Quit and Screenshot are platform concerns and map to ActionNone;
// callers check those bindings directly.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	bindings := []struct {
		b key.Binding
		a core.Action
	}{
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Confirm, core.ActionConfirm},
		{k.Back, core.ActionBack},
		{k.Plant, core.ActionPlant},
		{k.Water, core.ActionWater},
		{k.Fertilize, core.ActionFertilize},
		{k.Inventory, core.ActionInventory},
		{k.Craft, core.ActionCraft},
		{k.Help, core.ActionHelp},
		{k.SeedMenu, core.ActionSeedMenu},
		{k.Trash, core.ActionTrash},
		{k.Pause, core.ActionPause},
		{k.Restart, core.ActionRestart},
	}
	for _, e := range bindings {
		if key.Matches(msg, e.b) {
			return e.a
		}
	}
	if key.Matches(msg, k.Slots) {
		s := msg.String()
		return core.SlotAction(int(s[0] - '1'))
	}
	return core.ActionNone
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	if key.Matches(msg, k.Quit) {
		return true
	}
	if a := k.MapKey(msg); a != core.ActionNone {
		frame.Set(a)
	}
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
