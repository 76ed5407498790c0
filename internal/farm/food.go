package farm

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-farm/internal/fsm"
	"github.com/vovakirdan/tui-farm/internal/growth"
)

// effectDuration is how long a stage transition flash stays visible.
const effectDuration = 0.5

// HarvestResult is the outcome of interacting with a food item.
type HarvestResult struct {
	Success bool
	Points  int
	Message string
}

// Food is a planted crop growing toward ripeness.
type Food struct {
	crop    Crop
	tracker *growth.Tracker
	machine *fsm.Machine
	logger  *log.Logger

	progress float64
	effect   float64

	// OnRipe fires once when growth completes.
	OnRipe func(*Food)
	// OnStageChange fires when a nurtured plant reaches a new stage.
	OnStageChange func(f *Food, prev, next int)
}

func newFood(crop Crop, tracker *growth.Tracker, logger *log.Logger) *Food {
	f := &Food{
		crop:    crop,
		tracker: tracker,
		machine: fsm.New("food:"+crop.Name, fsm.WithLogger(logger)),
		logger:  logger,
	}
	tracker.OnStageChange = f.stageChanged
	f.machine.Initialize(&growState{food: f})
	return f
}

// growState advances the progression until it completes.
type growState struct {
	fsm.Nop
	food *Food
}

func (s *growState) ID() fsm.StateID { return StateGrow }

func (s *growState) Update(dt float64) {
	f := s.food
	f.tracker.Advance(dt)
	f.progress = f.tracker.Progression().Progress()
	if f.tracker.Progression().Done() {
		f.machine.ChangeState(&ripeState{food: f})
	}
}

// ripeState is terminal until the food is harvested.
type ripeState struct {
	fsm.Nop
	food *Food
}

func (s *ripeState) ID() fsm.StateID { return StateRipe }

func (s *ripeState) Enter() {
	f := s.food
	f.progress = 1
	f.logger.Debug("food ripe", "crop", f.crop.Name)
	if f.OnRipe != nil {
		f.OnRipe(f)
	}
}

func (f *Food) stageChanged(prev, next int) {
	if f.tracker.TransitionEffect && prev >= 0 {
		f.effect = effectDuration
	}
	if f.OnStageChange != nil {
		f.OnStageChange(f, prev, next)
	}
}

// announceStage reports the starting stage of a staged crop through
// OnStageChange, with prev -1.
func (f *Food) announceStage() {
	if _, ok := f.tracker.Stage(); ok {
		f.tracker.Refresh()
	}
}

// Update advances the food by dt seconds.
func (f *Food) Update(dt float64) {
	if f.effect > 0 {
		f.effect -= dt
	}
	f.machine.UpdateState(dt)
}

// Interact harvests the food. It fails unless the food is ripe.
func (f *Food) Interact() HarvestResult {
	if !f.IsRipe() {
		return HarvestResult{Success: false, Message: "Food is not ready for harvest!"}
	}
	return HarvestResult{
		Success: true,
		Points:  f.crop.Points,
		Message: fmt.Sprintf("Harvested %s!", f.crop.Name),
	}
}

// ForceCompleteGrowth jumps straight to ripe.
func (f *Food) ForceCompleteGrowth() {
	if !f.IsGrowing() {
		return
	}
	f.tracker.Progression().Complete()
	f.tracker.Sync()
	f.machine.ChangeState(&ripeState{food: f})
}

// Water applies moisture. It reports false for crops that ignore care.
func (f *Food) Water(amount float64) bool {
	n, ok := f.Nurturer()
	if !ok {
		return false
	}
	n.ApplyWater(amount)
	return true
}

// Fertilize applies nutrients. It reports false for crops that ignore care.
func (f *Food) Fertilize(amount float64) bool {
	n, ok := f.Nurturer()
	if !ok {
		return false
	}
	n.ApplyFertilizer(amount)
	return true
}

// Nurturer exposes moisture and nutrients for nurtured crops.
func (f *Food) Nurturer() (growth.Nurturer, bool) {
	n, ok := f.tracker.Progression().(growth.Nurturer)
	return n, ok
}

// Description returns a one-line status such as "Carrot: Growing... 40%".
func (f *Food) Description() string {
	var state string
	switch {
	case f.IsRipe():
		state = "Ready for harvest!"
	case f.IsGrowing():
		state = fmt.Sprintf("Growing... %.0f%%", f.progress*100)
	default:
		state = "Seed planted"
	}
	return f.crop.Name + ": " + state
}

// Remaining returns the seconds left for timed crops, or -1.
func (f *Food) Remaining() float64 {
	if t, ok := f.tracker.Progression().(*growth.Timed); ok {
		return t.Remaining()
	}
	return -1
}

// Crop returns the crop this food grows into.
func (f *Food) Crop() Crop { return f.crop }

// Points returns the harvest value.
func (f *Food) Points() int { return f.crop.Points }

// Progress returns the last published growth progress in [0, 1].
func (f *Food) Progress() float64 { return f.progress }

// State returns the food's state tag.
func (f *Food) State() fsm.StateID { return f.machine.CurrentID() }

// IsRipe reports whether the food can be harvested.
func (f *Food) IsRipe() bool { return f.machine.Is(StateRipe) }

// IsGrowing reports whether the food is still growing.
func (f *Food) IsGrowing() bool { return f.machine.Is(StateGrow) }

// Stage returns the current growth stage for staged crops.
func (f *Food) Stage() (growth.Stage, bool) { return f.tracker.Stage() }

// StageScale returns the interpolated size of the current stage.
func (f *Food) StageScale() float64 { return f.tracker.StageScale() }

// Flashing reports whether a stage transition effect is showing.
func (f *Food) Flashing() bool { return f.effect > 0 }
