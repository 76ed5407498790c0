// Package inventory implements the player's slot inventory, crafting
// blueprints, consumables and the confirm-before-delete trash.
package inventory

import "sort"

// Effects are the vital changes applied when an item is consumed.
type Effects struct {
	Health    float64 `yaml:"health"`
	Calories  float64 `yaml:"calories"`
	Hydration float64 `yaml:"hydration"`
}

// IsZero reports whether the effects change nothing.
func (e Effects) IsZero() bool {
	return e.Health == 0 && e.Calories == 0 && e.Hydration == 0
}

// Item describes an item kind that can sit in an inventory slot.
type Item struct {
	Name          string  `yaml:"name"`
	Description   string  `yaml:"description"`
	Functionality string  `yaml:"functionality"`
	Glyph         string  `yaml:"glyph"`
	Trashable     bool    `yaml:"trashable"`
	Consumable    bool    `yaml:"consumable"`
	Effects       Effects `yaml:"effects"`
}

// Catalog indexes item kinds by name.
type Catalog struct {
	items map[string]Item
}

// NewCatalog builds a catalog. Later duplicates replace earlier ones.
func NewCatalog(items ...Item) *Catalog {
	c := &Catalog{items: make(map[string]Item, len(items))}
	for _, it := range items {
		c.items[it.Name] = it
	}
	return c
}

// Get returns the item kind with the given name.
func (c *Catalog) Get(name string) (Item, bool) {
	if c == nil {
		return Item{}, false
	}
	it, ok := c.items[name]
	return it, ok
}

// Names returns the sorted item names.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.items))
	for n := range c.items {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
