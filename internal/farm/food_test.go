package farm

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-farm/internal/config"
	"github.com/vovakirdan/tui-farm/internal/growth"
)

func TestFoodTimedGrowth(t *testing.T) {
	food, err := testNursery().NewFood("Carrot")
	if err != nil {
		t.Fatal(err)
	}
	ripe := 0
	food.OnRipe = func(*Food) { ripe++ }

	if res := food.Interact(); res.Success || res.Message != "Food is not ready for harvest!" {
		t.Errorf("unripe Interact = %+v", res)
	}
	if food.Description() != "Carrot: Growing... 0%" {
		t.Errorf("Description = %q", food.Description())
	}

	for range 15 {
		food.Update(1)
	}
	if food.Description() != "Carrot: Growing... 50%" {
		t.Errorf("Description = %q", food.Description())
	}
	if rem := food.Remaining(); rem != 15 {
		t.Errorf("Remaining = %v, expected 15", rem)
	}

	for range 20 {
		food.Update(1)
	}
	if !food.IsRipe() || ripe != 1 {
		t.Fatalf("food should ripen exactly once, ripe=%v calls=%d", food.IsRipe(), ripe)
	}
	if food.Progress() != 1 {
		t.Errorf("Progress = %v, expected 1", food.Progress())
	}
	if food.Description() != "Carrot: Ready for harvest!" {
		t.Errorf("Description = %q", food.Description())
	}

	res := food.Interact()
	if !res.Success || res.Points != 15 || res.Message != "Harvested Carrot!" {
		t.Errorf("ripe Interact = %+v", res)
	}
}

func TestFoodForceCompleteGrowth(t *testing.T) {
	food, _ := testNursery().NewFood("Tree")
	ripe := 0
	food.OnRipe = func(*Food) { ripe++ }

	food.ForceCompleteGrowth()
	food.ForceCompleteGrowth()
	food.Update(1)

	if !food.IsRipe() || ripe != 1 {
		t.Errorf("ForceCompleteGrowth should ripen once, calls=%d", ripe)
	}
	if food.Points() != 50 {
		t.Errorf("Tree points = %d, expected 50", food.Points())
	}
}

func TestFoodCareOnlyForNurtured(t *testing.T) {
	n := testNursery()

	carrot, _ := n.NewFood("Carrot")
	if carrot.Water(0.3) || carrot.Fertilize(0.3) {
		t.Error("timed crops should ignore care")
	}
	if _, ok := carrot.Nurturer(); ok {
		t.Error("timed crops have no moisture")
	}

	tree, _ := n.NewFood("TreeA")
	nt, ok := tree.Nurturer()
	if !ok {
		t.Fatal("TreeA should be nurtured")
	}
	before := nt.Moisture()
	if !tree.Water(0.3) {
		t.Fatal("Water should apply to nurtured crops")
	}
	if nt.Moisture() <= before {
		t.Errorf("moisture should rise, %v -> %v", before, nt.Moisture())
	}
	tree.Water(5)
	if nt.Moisture() != 1 {
		t.Errorf("moisture should clamp at 1, got %v", nt.Moisture())
	}
	if tree.Remaining() != -1 {
		t.Error("nurtured crops have no fixed remaining time")
	}
}

func TestFoodNurturedStages(t *testing.T) {
	food, err := testNursery().NewFood("TreeA")
	if err != nil {
		t.Fatal(err)
	}
	var changes [][2]int
	food.OnStageChange = func(_ *Food, prev, next int) {
		changes = append(changes, [2]int{prev, next})
	}

	st, ok := food.Stage()
	if !ok || st.Name != "seed" {
		t.Fatalf("initial stage = %+v", st)
	}

	flashed := false
	for i := 0; i < 400 && !food.IsRipe(); i++ {
		food.Update(0.5)
		flashed = flashed || food.Flashing()
	}
	if !food.IsRipe() {
		t.Fatalf("TreeA should ripen within 200s, progress %v", food.Progress())
	}
	if st, _ := food.Stage(); st.Name != "mature" {
		t.Errorf("final stage = %q, expected mature", st.Name)
	}
	if len(changes) != 3 {
		t.Errorf("expected 3 stage changes, got %v", changes)
	}
	for i, ch := range changes {
		if ch[1] != ch[0]+1 {
			t.Errorf("change %d skipped a stage: %v", i, ch)
		}
	}
	if !flashed {
		t.Error("stage changes should flash the transition effect")
	}
}

func TestNurseryCatalog(t *testing.T) {
	n := testNursery()
	crops := n.Crops()
	if len(crops) != 7 {
		t.Fatalf("expected 7 crops, got %d", len(crops))
	}

	tests := []struct {
		name   string
		kind   growth.Kind
		points int
	}{
		{"Carrot", growth.KindTimed, 15},
		{"Grass", growth.KindTimed, 10},
		{"Tree", growth.KindTimed, 50},
		{"TreeD", growth.KindNurtured, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := n.Crop(tt.name)
			if !ok {
				t.Fatal("crop missing")
			}
			if c.Kind != tt.kind || c.Points != tt.points {
				t.Errorf("got kind %v points %d", c.Kind, c.Points)
			}
		})
	}

	if _, err := n.NewFood("Pumpkin"); !errors.Is(err, ErrUnknownCrop) {
		t.Errorf("expected ErrUnknownCrop, got %v", err)
	}
}

func TestNurseryDefaultsAndSkips(t *testing.T) {
	cfg := config.DefaultFarmConfig()
	cfg.Crops = []config.CropConfig{
		{Name: "Bean", Kind: "timed", Points: 5},
		{Name: "Ghost", Kind: "nurtured", Plant: "Missing", Points: 5},
	}
	n := NewNursery(cfg, nil, nil)

	if len(n.Crops()) != 1 {
		t.Fatalf("crop with a missing plant should be skipped, got %d crops", len(n.Crops()))
	}
	bean, _ := n.Crop("Bean")
	if bean.GrowTime != DefaultCropGrowTime {
		t.Errorf("GrowTime = %v, expected %v", bean.GrowTime, DefaultCropGrowTime)
	}
	if bean.Glyph != '?' {
		t.Errorf("Glyph = %q, expected '?'", bean.Glyph)
	}
}
