package inventory

import (
	"errors"
	"fmt"
)

// ErrNotConsumable is returned when eating an item that has no effects.
var ErrNotConsumable = errors.New("inventory: item not consumable")

// Consumer receives the effects of a consumed item.
type Consumer interface {
	ApplyEffects(Effects)
}

// Consume removes one of the named item and applies its effects to c.
func Consume(inv *Inventory, catalog *Catalog, name string, c Consumer) (Effects, error) {
	it, ok := catalog.Get(name)
	if !ok || !it.Consumable {
		return Effects{}, fmt.Errorf("%w: %s", ErrNotConsumable, name)
	}
	if inv.Remove(name, 1) == 0 {
		return Effects{}, fmt.Errorf("%w: %s", ErrNotInInventory, name)
	}
	c.ApplyEffects(it.Effects)
	return it.Effects, nil
}
