package farm

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-farm/internal/config"
	"github.com/vovakirdan/tui-farm/internal/fsm"
	"github.com/vovakirdan/tui-farm/internal/growth"
)

type pointSink struct {
	total int
	calls int
}

func (s *pointSink) AddPoints(n int) {
	s.total += n
	s.calls++
}

func testNursery() *Nursery {
	return NewNursery(config.DefaultFarmConfig(), growth.FixedLight(1), nil)
}

func advanceCell(c *Cell, seconds float64) {
	for range int(seconds) {
		c.Update(1)
	}
}

func TestCellPlantHarvestCycle(t *testing.T) {
	sink := &pointSink{}
	c := NewCell(0, 0, testNursery(), sink, nil)

	var states []string
	c.OnStateChanged = func(_ *Cell, id fsm.StateID) { states = append(states, StateName(id)) }
	planted, harvested := 0, 0
	c.OnPlanted = func(*Cell, *Food) { planted++ }
	var harvestedFood *Food
	c.OnHarvested = func(_ *Cell, f *Food, res HarvestResult) {
		harvested++
		harvestedFood = f
		if !res.Success || res.Points != 15 {
			t.Errorf("harvest result = %+v", res)
		}
	}

	if !c.IsFree() || c.StatusDescription() != "Empty - Ready for planting" {
		t.Fatalf("new cell should be free, got %s", c.StatusDescription())
	}

	if err := c.Plant("Carrot"); err != nil {
		t.Fatalf("Plant failed: %v", err)
	}
	if !c.IsPlanted() || c.Food() == nil || planted != 1 {
		t.Fatal("cell should be planted with food")
	}
	if c.StatusDescription() != "Growing..." {
		t.Errorf("status = %q, expected Growing...", c.StatusDescription())
	}

	advanceCell(c, 30)
	if !c.IsRipe() {
		t.Fatalf("carrot should be ripe after 30s, progress %v", c.Food().Progress())
	}
	if c.StatusDescription() != "Ready for harvest!" {
		t.Errorf("status = %q", c.StatusDescription())
	}

	food := c.Food()
	res, err := c.Harvest()
	if err != nil {
		t.Fatalf("Harvest failed: %v", err)
	}
	if res.Message != "Harvested Carrot!" {
		t.Errorf("message = %q", res.Message)
	}
	if sink.total != 15 || sink.calls != 1 {
		t.Errorf("sink got %d points in %d calls, expected 15 in 1", sink.total, sink.calls)
	}
	if !c.IsFree() || c.Food() != nil {
		t.Error("cell should be free after harvest")
	}
	if harvested != 1 || harvestedFood != food {
		t.Error("OnHarvested should receive the harvested food once")
	}

	expected := "Planted,Free"
	if got := strings.Join(states, ","); got != expected {
		t.Errorf("state changes = %s, expected %s", got, expected)
	}
}

func TestCellPlantOccupiedIsNoop(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	c := NewCell(1, 2, testNursery(), &pointSink{}, logger)

	if err := c.Plant("Grass"); err != nil {
		t.Fatal(err)
	}
	food := c.Food()

	err := c.Plant("Carrot")
	if !errors.Is(err, ErrCellOccupied) {
		t.Fatalf("expected ErrCellOccupied, got %v", err)
	}
	if c.Food() != food || food.Crop().Name != "Grass" {
		t.Error("occupied cell must keep its food")
	}
	if !strings.Contains(buf.String(), "Cannot plant in non-free cell!") {
		t.Errorf("expected a warning in the log, got %q", buf.String())
	}
}

func TestCellHarvestNotRipeIsNoop(t *testing.T) {
	sink := &pointSink{}
	c := NewCell(0, 0, testNursery(), sink, nil)

	if _, err := c.Harvest(); !errors.Is(err, ErrNotRipe) {
		t.Errorf("harvesting a free cell: expected ErrNotRipe, got %v", err)
	}

	if err := c.Plant("Tree"); err != nil {
		t.Fatal(err)
	}
	advanceCell(c, 60)

	res, err := c.Harvest()
	if !errors.Is(err, ErrNotRipe) {
		t.Fatalf("expected ErrNotRipe, got %v", err)
	}
	if res.Success || sink.calls != 0 {
		t.Error("a failed harvest must not award points")
	}
	if !c.IsPlanted() {
		t.Error("cell should still be planted")
	}
}

func TestCellScoreOncePerHarvest(t *testing.T) {
	sink := &pointSink{}
	c := NewCell(0, 0, testNursery(), sink, nil)

	for i := range 3 {
		if err := c.Plant("Carrot"); err != nil {
			t.Fatal(err)
		}
		c.Food().ForceCompleteGrowth()
		if _, err := c.Harvest(); err != nil {
			t.Fatalf("round %d: %v", i, err)
		}
		if _, err := c.Harvest(); !errors.Is(err, ErrNotRipe) {
			t.Fatalf("round %d: second harvest should fail", i)
		}
	}

	if sink.calls != 3 || sink.total != 45 {
		t.Errorf("expected 3 awards totalling 45, got %d totalling %d", sink.calls, sink.total)
	}
}

func TestCellUnknownCrop(t *testing.T) {
	c := NewCell(0, 0, testNursery(), nil, nil)
	if err := c.Plant("Pumpkin"); !errors.Is(err, ErrUnknownCrop) {
		t.Fatalf("expected ErrUnknownCrop, got %v", err)
	}
	if !c.IsFree() {
		t.Error("cell should stay free")
	}
}

func TestCellForceClear(t *testing.T) {
	c := NewCell(0, 0, testNursery(), nil, nil)
	c.Item = "Rock"
	c.ForceClear()
	if c.Item != "" || !c.IsFree() {
		t.Error("ForceClear should drop items")
	}

	if err := c.Plant("Carrot"); err != nil {
		t.Fatal(err)
	}
	c.ForceClear()
	if !c.IsFree() || c.Food() != nil {
		t.Error("ForceClear should discard food")
	}
	if err := c.Plant("Grass"); err != nil {
		t.Errorf("cleared cell should accept planting: %v", err)
	}
}

func TestFieldLayout(t *testing.T) {
	f := NewField(5, 4, testNursery(), nil, nil)
	n := 0
	f.Each(func(*Cell) { n++ })
	if n != 20 {
		t.Fatalf("expected 20 cells, got %d", n)
	}
	c := f.CellAt(3, 2)
	if c == nil || c.X != 3 || c.Y != 2 {
		t.Fatal("CellAt returned the wrong cell")
	}
	if f.CellAt(5, 0) != nil || f.CellAt(0, -1) != nil {
		t.Error("out of range lookups should return nil")
	}

	_ = f.CellAt(0, 0).Plant("Carrot")
	f.CellAt(1, 0).Item = "Rock"
	if n := len(f.FreeCells()); n != 18 {
		t.Errorf("FreeCells = %d, expected 18", n)
	}
	if f.Items() != 1 {
		t.Errorf("Items = %d, expected 1", f.Items())
	}

	f.Update(30)
	if !f.CellAt(0, 0).IsRipe() {
		t.Error("Update should grow planted cells")
	}

	f.Each(func(c *Cell) { c.ForceClear() })
	if len(f.FreeCells()) != 20 {
		t.Error("ForceClear should free every cell")
	}
}

func TestCellPlantAnnouncesFirstStage(t *testing.T) {
	c := NewCell(0, 0, testNursery(), &pointSink{}, nil)

	var changes [][2]int
	c.OnPlanted = func(_ *Cell, food *Food) {
		food.OnStageChange = func(_ *Food, prev, next int) {
			changes = append(changes, [2]int{prev, next})
		}
	}

	if err := c.Plant("TreeA"); err != nil {
		t.Fatal(err)
	}
	if len(changes) != 1 || changes[0] != [2]int{-1, 0} {
		t.Errorf("first stage should be announced once as -1 -> 0, got %v", changes)
	}
	if c.Food().Flashing() {
		t.Error("the first stage should not flash the transition effect")
	}

	// Timed crops have no stages to announce
	changes = nil
	timed := NewCell(1, 0, testNursery(), &pointSink{}, nil)
	timed.OnPlanted = c.OnPlanted
	if err := timed.Plant("Carrot"); err != nil {
		t.Fatal(err)
	}
	if len(changes) != 0 {
		t.Errorf("timed crop announced stages: %v", changes)
	}
}
