package farm

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-farm/internal/config"
	"github.com/vovakirdan/tui-farm/internal/core"
	"github.com/vovakirdan/tui-farm/internal/fsm"
)

// Task is the job the farmer is walking to do.
type Task int

const (
	TaskNone Task = iota
	TaskPlant
	TaskHarvest
	TaskCollect
)

func (t Task) String() string {
	switch t {
	case TaskPlant:
		return "Plant"
	case TaskHarvest:
		return "Harvest"
	case TaskCollect:
		return "Collect"
	}
	return "None"
}

// ErrNoItem is returned when collecting from a cell with nothing on it.
var ErrNoItem = errors.New("farm: nothing to pick up")

// Player is the farmer. It walks the grid one cell at a time and performs
// its task once the action timer of the Plant or Pickup state runs out.
type Player struct {
	machine *fsm.Machine
	logger  *log.Logger
	cfg     config.PlayerConfig

	pos    core.Point
	stride float64

	task   Task
	target *Cell
	seed   string

	actionElapsed  float64
	actionDuration float64

	// OnStep fires after every cell walked.
	OnStep func(pos core.Point)
	// OnCollect picks up the item lying on a cell.
	OnCollect func(c *Cell) error
	// OnTaskDone fires after a task was attempted. err is nil on success.
	OnTaskDone func(task Task, c *Cell, err error)
}

// NewPlayer creates an idle farmer at the configured start cell.
func NewPlayer(cfg config.PlayerConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Speed <= 0 {
		cfg.Speed = 4
	}
	p := &Player{
		cfg:     cfg,
		logger:  logger,
		pos:     core.Point{X: cfg.StartX, Y: cfg.StartY},
		machine: fsm.New("player", fsm.WithLogger(logger)),
	}
	p.machine.Initialize(&idleState{})
	return p
}

type idleState struct{ fsm.Nop }

func (idleState) ID() fsm.StateID { return StateIdle }

type walkState struct {
	fsm.Nop
	p *Player
}

func (s *walkState) ID() fsm.StateID { return StateWalk }

func (s *walkState) Enter() { s.p.stride = 0 }

func (s *walkState) Update(dt float64) {
	p := s.p
	p.stride += p.cfg.Speed * dt
	for p.stride >= 1 && !p.arrived() {
		p.stride--
		p.step()
	}
	if p.arrived() {
		p.beginAction()
	}
}

// actionState runs the farmer's action timer and then performs the task.
type actionState struct {
	fsm.Nop
	p        *Player
	id       fsm.StateID
	duration float64
}

func (s *actionState) ID() fsm.StateID { return s.id }

func (s *actionState) Enter() {
	s.p.actionElapsed = 0
	s.p.actionDuration = s.duration
}

func (s *actionState) Update(dt float64) {
	p := s.p
	p.actionElapsed += dt
	if p.actionElapsed >= p.actionDuration {
		p.finish()
	}
}

// Order assigns a task. Only an idle farmer accepts orders.
func (p *Player) Order(task Task, target *Cell, seed string) bool {
	if !p.IsIdle() || task == TaskNone || target == nil {
		return false
	}
	p.task = task
	p.target = target
	p.seed = seed
	p.logger.Debug("task ordered", "task", task, "x", target.X, "y", target.Y)
	p.machine.ChangeState(&walkState{p: p})
	return true
}

// Update advances the farmer by dt seconds.
func (p *Player) Update(dt float64) { p.machine.UpdateState(dt) }

func (p *Player) arrived() bool {
	return p.target == nil || (p.pos.X == p.target.X && p.pos.Y == p.target.Y)
}

func (p *Player) step() {
	switch {
	case p.pos.X < p.target.X:
		p.pos.X++
	case p.pos.X > p.target.X:
		p.pos.X--
	case p.pos.Y < p.target.Y:
		p.pos.Y++
	case p.pos.Y > p.target.Y:
		p.pos.Y--
	}
	if p.OnStep != nil {
		p.OnStep(p.pos)
	}
}

func (p *Player) beginAction() {
	if p.task == TaskPlant {
		p.machine.ChangeState(&actionState{p: p, id: StatePlant, duration: p.cfg.PlantDuration})
		return
	}
	p.machine.ChangeState(&actionState{p: p, id: StatePickup, duration: p.cfg.PickupDuration})
}

func (p *Player) finish() {
	task, cell := p.task, p.target
	var err error
	switch task {
	case TaskPlant:
		err = cell.Plant(p.seed)
	case TaskHarvest:
		_, err = cell.Harvest()
	case TaskCollect:
		switch {
		case cell.Item == "":
			err = ErrNoItem
		case p.OnCollect != nil:
			err = p.OnCollect(cell)
		}
	}
	p.task, p.target, p.seed = TaskNone, nil, ""
	p.machine.ChangeState(&idleState{})
	if err != nil {
		p.logger.Warn("task failed", "task", task, "err", err)
	}
	if p.OnTaskDone != nil {
		p.OnTaskDone(task, cell, err)
	}
}

// Position returns the farmer's cell coordinates.
func (p *Player) Position() core.Point { return p.pos }

// Task returns the current task.
func (p *Player) Task() Task { return p.task }

// Target returns the target cell, or nil.
func (p *Player) Target() *Cell { return p.target }

// State returns the farmer's state tag.
func (p *Player) State() fsm.StateID { return p.machine.CurrentID() }

// IsIdle reports whether the farmer accepts orders.
func (p *Player) IsIdle() bool { return p.machine.Is(StateIdle) }

// ActionProgress returns the Plant or Pickup timer progress, or 0.
func (p *Player) ActionProgress() float64 {
	if !p.machine.Is(StatePlant) && !p.machine.Is(StatePickup) {
		return 0
	}
	if p.actionDuration <= 0 {
		return 1
	}
	return core.Clamp01(p.actionElapsed / p.actionDuration)
}
