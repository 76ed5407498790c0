package farm

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-farm/internal/fsm"
)

var (
	// ErrCellOccupied is returned when planting into a non-free cell.
	ErrCellOccupied = errors.New("farm: cell is not free")
	// ErrNotRipe is returned when harvesting a cell whose food is not ripe.
	ErrNotRipe = errors.New("farm: food is not ripe")
)

// HarvestSink receives the points of every successful harvest.
type HarvestSink interface {
	AddPoints(n int)
}

// Cell is one plot of the field. It holds at most one food item and,
// while free, may hold a world item waiting to be picked up.
type Cell struct {
	X, Y int

	machine *fsm.Machine
	food    *Food
	factory FoodFactory
	sink    HarvestSink
	logger  *log.Logger

	// Item is a pickup lying on the cell, empty when none.
	Item string

	OnPlanted      func(c *Cell, food *Food)
	OnHarvested    func(c *Cell, food *Food, res HarvestResult)
	OnStateChanged func(c *Cell, state fsm.StateID)
}

// NewCell creates a free cell at (x, y).
func NewCell(x, y int, factory FoodFactory, sink HarvestSink, logger *log.Logger) *Cell {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Cell{
		X:       x,
		Y:       y,
		factory: factory,
		sink:    sink,
		logger:  logger,
		machine: fsm.New(fmt.Sprintf("cell(%d,%d)", x, y), fsm.WithLogger(logger)),
	}
	c.machine.Initialize(&freeState{cell: c})
	return c
}

type freeState struct {
	fsm.Nop
	cell *Cell
}

func (s *freeState) ID() fsm.StateID { return StateFree }

func (s *freeState) Enter() {
	s.cell.food = nil
	s.cell.changed(StateFree)
}

type plantedState struct {
	fsm.Nop
	cell *Cell
}

func (s *plantedState) ID() fsm.StateID { return StatePlanted }

func (s *plantedState) Enter() { s.cell.changed(StatePlanted) }

func (s *plantedState) Update(dt float64) {
	if s.cell.food != nil {
		s.cell.food.Update(dt)
	}
}

func (c *Cell) changed(id fsm.StateID) {
	if c.OnStateChanged != nil {
		c.OnStateChanged(c, id)
	}
}

// Plant puts a new food of the given crop into the cell.
// Planting into an occupied cell is a logged no-op.
func (c *Cell) Plant(crop string) error {
	if !c.IsFree() {
		c.logger.Warn("Cannot plant in non-free cell!", "x", c.X, "y", c.Y)
		return ErrCellOccupied
	}
	food, err := c.factory.NewFood(crop)
	if err != nil {
		c.logger.Error("planting failed", "x", c.X, "y", c.Y, "err", err)
		return err
	}
	c.food = food
	c.Item = ""
	c.machine.ChangeState(&plantedState{cell: c})
	c.logger.Info("planted", "crop", crop, "x", c.X, "y", c.Y)
	if c.OnPlanted != nil {
		c.OnPlanted(c, food)
	}
	food.announceStage()
	return nil
}

// Harvest collects ripe food, reports its points to the sink and frees the
// cell. Harvesting anything else is a logged no-op.
func (c *Cell) Harvest() (HarvestResult, error) {
	if !c.IsRipe() {
		c.logger.Warn("Cannot harvest non-ripe food!", "x", c.X, "y", c.Y)
		return HarvestResult{Message: "Not ready for harvest yet!"}, ErrNotRipe
	}
	food := c.food
	res := food.Interact()
	if c.sink != nil {
		c.sink.AddPoints(res.Points)
	}
	c.machine.ChangeState(&freeState{cell: c})
	c.logger.Info("harvested", "crop", food.Crop().Name, "points", res.Points, "x", c.X, "y", c.Y)
	if c.OnHarvested != nil {
		c.OnHarvested(c, food, res)
	}
	return res, nil
}

// ForceClear discards any food and frees the cell.
func (c *Cell) ForceClear() {
	c.Item = ""
	if c.IsFree() {
		c.food = nil
		return
	}
	c.machine.ChangeState(&freeState{cell: c})
}

// Update advances the cell and its food.
func (c *Cell) Update(dt float64) { c.machine.UpdateState(dt) }

// Food returns the planted food, or nil.
func (c *Cell) Food() *Food { return c.food }

// State returns the cell's state tag.
func (c *Cell) State() fsm.StateID { return c.machine.CurrentID() }

// IsFree reports whether the cell can be planted.
func (c *Cell) IsFree() bool { return c.machine.Is(StateFree) }

// IsPlanted reports whether the cell holds food.
func (c *Cell) IsPlanted() bool { return c.machine.Is(StatePlanted) }

// IsRipe reports whether the cell holds harvestable food.
func (c *Cell) IsRipe() bool { return c.IsPlanted() && c.food != nil && c.food.IsRipe() }

// StatusDescription returns the text shown when the cell is selected.
func (c *Cell) StatusDescription() string {
	switch {
	case c.IsFree() && c.Item != "":
		return c.Item + " lying here"
	case c.IsFree():
		return "Empty - Ready for planting"
	case c.food == nil:
		return "Planted"
	case c.food.IsRipe():
		return "Ready for harvest!"
	default:
		return "Growing..."
	}
}
