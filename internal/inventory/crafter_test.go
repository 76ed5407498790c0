package inventory

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func axe(t *testing.T) Blueprint {
	t.Helper()
	bp := Blueprint{Name: "Axe", Yield: 1, Requirements: []Requirement{{"Rock", 3}, {"Stick", 3}}}
	if err := bp.Validate(); err != nil {
		t.Fatal(err)
	}
	return bp
}

func TestCraftRejectedWhenShort(t *testing.T) {
	inv := New(DefaultCapacity, nil)
	fill(inv, "Rock", "Rock", "Stick", "Stick", "Stick")
	before := inv.Items()

	c := NewCrafter(inv, []Blueprint{axe(t)}, nil)
	err := c.Craft(axe(t))

	if !errors.Is(err, ErrMissingMaterials) {
		t.Fatalf("Craft = %v, expected ErrMissingMaterials", err)
	}
	if !reflect.DeepEqual(inv.Items(), before) {
		t.Errorf("inventory changed: %v, expected %v", inv.Items(), before)
	}
}

func TestCraftConsumesMaterials(t *testing.T) {
	inv := New(DefaultCapacity, nil)
	fill(inv, "Berry", "Rock", "Rock", "Rock", "Rock", "Stick", "Stick", "Stick")

	c := NewCrafter(inv, []Blueprint{axe(t)}, nil)
	if err := c.Craft(axe(t)); err != nil {
		t.Fatalf("Craft: %v", err)
	}

	if inv.Count("Axe") != 1 {
		t.Errorf("Axe count = %d, expected 1", inv.Count("Axe"))
	}
	if inv.Count("Rock") != 1 || inv.Count("Stick") != 0 {
		t.Errorf("materials left: Rock=%d Stick=%d", inv.Count("Rock"), inv.Count("Stick"))
	}
	if inv.Count("Berry") != 1 {
		t.Error("unrelated items must survive a craft")
	}
}

func TestCraftInFullInventory(t *testing.T) {
	inv := New(6, nil)
	fill(inv, "Rock", "Rock", "Rock", "Stick", "Stick", "Stick")

	c := NewCrafter(inv, []Blueprint{axe(t)}, nil)
	if err := c.Craft(axe(t)); err != nil {
		t.Fatalf("craft freeing its own slots should succeed: %v", err)
	}
	if !reflect.DeepEqual(inv.Items(), []string{"Axe"}) {
		t.Errorf("Items() = %v", inv.Items())
	}

	// A product bigger than the freed space is refused.
	big := Blueprint{Name: "Plank", Yield: 4, Requirements: []Requirement{{"Stick", 1}}}
	inv2 := New(3, nil)
	fill(inv2, "Stick", "Rock", "Rock")
	c2 := NewCrafter(inv2, []Blueprint{big}, nil)
	if err := c2.Craft(big); !errors.Is(err, ErrInventoryFull) {
		t.Fatalf("Craft = %v, expected ErrInventoryFull", err)
	}
	if inv2.Len() != 3 || inv2.Count("Stick") != 1 {
		t.Errorf("inventory changed on rejected craft: %v", inv2.Items())
	}
}

func TestCraftStatusLines(t *testing.T) {
	inv := New(DefaultCapacity, nil)
	fill(inv, "Rock", "Rock", "Stick")

	c := NewCrafter(inv, nil, nil)
	got := c.Status(axe(t))
	expected := []string{"3 Rock[2]", "3 Stick[1]"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Status() = %v, expected %v", got, expected)
	}
	if c.CanCraft(axe(t)) {
		t.Error("CanCraft should be false")
	}
}

func TestBlueprintValidation(t *testing.T) {
	tests := []struct {
		name string
		bp   string
		reqs []Requirement
	}{
		{"empty name", "", []Requirement{{"Rock", 1}}},
		{"no requirements", "Axe", nil},
		{"empty requirement item", "Axe", []Requirement{{"", 3}}},
		{"zero amount", "Axe", []Requirement{{"Rock", 0}}},
		{"repeated item", "Wall", []Requirement{{"Rock", 3}, {"Rock", 2}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bp := Blueprint{Name: tc.bp, Requirements: tc.reqs}
			if err := bp.Validate(); !errors.Is(err, ErrInvalidBlueprint) {
				t.Errorf("error = %v, expected ErrInvalidBlueprint", err)
			}
		})
	}
}

func TestCrafterSkipsInvalidRecipes(t *testing.T) {
	c := NewCrafter(New(1, nil), []Blueprint{
		{Name: "Axe", Requirements: []Requirement{{"Rock", 3}}},
		{Name: "", Requirements: []Requirement{{"Rock", 3}}},
	}, nil)
	if len(c.Recipes()) != 1 {
		t.Errorf("Recipes() = %v, expected only the valid one", c.Recipes())
	}
	if c.Recipes()[0].Produces() != 1 {
		t.Error("zero yield should default to one")
	}
}

func TestLookup(t *testing.T) {
	c := NewCrafter(New(1, nil), []Blueprint{
		{Name: "Axe", Requirements: []Requirement{{"Rock", 3}}},
		{Name: "Campfire", Requirements: []Requirement{{"Stick", 5}}},
	}, nil)

	if bp, err := c.Lookup("campfire"); err != nil || bp.Name != "Campfire" {
		t.Fatalf("Lookup(campfire) = %v, %v", bp, err)
	}

	_, err := c.Lookup("campfir")
	if !errors.Is(err, ErrUnknownRecipe) {
		t.Fatalf("error = %v, expected ErrUnknownRecipe", err)
	}
	if !strings.Contains(err.Error(), `did you mean "Campfire"`) {
		t.Errorf("expected suggestion, got %q", err.Error())
	}

	_, err = c.Lookup("spaceship")
	if err == nil || strings.Contains(err.Error(), "did you mean") {
		t.Errorf("far-off name should have no suggestion, got %v", err)
	}
}

func TestCraftSumsRepeatedRequirements(t *testing.T) {
	inv := New(DefaultCapacity, nil)
	fill(inv, "Rock", "Rock", "Rock", "Rock")
	wall := Blueprint{Name: "Wall", Requirements: []Requirement{{"Rock", 3}, {"Rock", 2}}}

	if got := wall.Totals(); !reflect.DeepEqual(got, []Requirement{{"Rock", 5}}) {
		t.Errorf("Totals() = %v", got)
	}

	c := NewCrafter(inv, nil, nil)
	if c.CanCraft(wall) {
		t.Error("CanCraft should be false with 4 of 5 Rock")
	}
	if err := c.Craft(wall); !errors.Is(err, ErrMissingMaterials) {
		t.Fatalf("Craft = %v, expected ErrMissingMaterials", err)
	}
	if !reflect.DeepEqual(inv.Items(), []string{"Rock", "Rock", "Rock", "Rock"}) {
		t.Errorf("inventory changed on rejected craft: %v", inv.Items())
	}
}
