package inventory

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
)

// DefaultCapacity is the stock number of inventory slots.
const DefaultCapacity = 21

var (
	// ErrInventoryFull is returned when every slot is taken.
	ErrInventoryFull = errors.New("inventory: full")
	// ErrNotInInventory is returned when the named item is not held.
	ErrNotInInventory = errors.New("inventory: item not held")
)

// Inventory is an ordered list of item names, one per slot.
type Inventory struct {
	capacity int
	items    []string
	logger   *log.Logger
}

// New creates an empty inventory. Non-positive capacities fall back to
// DefaultCapacity. logger may be nil.
func New(capacity int, logger *log.Logger) *Inventory {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Inventory{
		capacity: capacity,
		items:    make([]string, 0, capacity),
		logger:   logger,
	}
}

// Add puts one item into the next free slot.
func (inv *Inventory) Add(name string) error {
	if inv.IsFull() {
		inv.logger.Warn("inventory full, item rejected", "item", name)
		return ErrInventoryFull
	}
	inv.items = append(inv.items, name)
	inv.logger.Debug("item added", "item", name, "slots", len(inv.items))
	return nil
}

// Remove takes up to n items with the given name, scanning from the last
// slot backwards. It returns how many were removed.
func (inv *Inventory) Remove(name string, n int) int {
	removed := 0
	for i := len(inv.items) - 1; i >= 0 && removed < n; i-- {
		if inv.items[i] == name {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			removed++
		}
	}
	if removed > 0 {
		inv.logger.Debug("items removed", "item", name, "count", removed)
	}
	return removed
}

// Count returns how many slots hold the named item.
func (inv *Inventory) Count(name string) int {
	n := 0
	for _, it := range inv.items {
		if it == name {
			n++
		}
	}
	return n
}

// Has reports whether at least one of the named item is held.
func (inv *Inventory) Has(name string) bool {
	return inv.Count(name) > 0
}

// Items returns a copy of the slot contents in order.
func (inv *Inventory) Items() []string {
	out := make([]string, len(inv.items))
	copy(out, inv.items)
	return out
}

// Len returns the number of used slots.
func (inv *Inventory) Len() int { return len(inv.items) }

// Capacity returns the number of slots.
func (inv *Inventory) Capacity() int { return inv.capacity }

// Free returns the number of empty slots.
func (inv *Inventory) Free() int { return inv.capacity - len(inv.items) }

// IsFull reports whether every slot is taken.
func (inv *Inventory) IsFull() bool {
	return len(inv.items) >= inv.capacity
}

// Counts tallies held items by name.
func (inv *Inventory) Counts() map[string]int {
	out := make(map[string]int)
	for _, it := range inv.items {
		out[it]++
	}
	return out
}
