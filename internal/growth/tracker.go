package growth

// Tracker follows a progression through its stages and reports stage changes.
type Tracker struct {
	prog   Progression
	stages Stages
	index  int

	// OnStageChange fires after the stage index changes. prev is -1 on the
	// first refresh.
	OnStageChange func(prev, next int)
	// TransitionEffect marks stage changes that should flash an effect.
	TransitionEffect bool
}

// NewTracker creates a tracker. The initial stage is computed immediately;
// call Refresh after setting OnStageChange to announce it.
func NewTracker(p Progression, stages Stages) *Tracker {
	return &Tracker{
		prog:   p,
		stages: stages,
		index:  StageIndex(stages, p.Progress()),
	}
}

// Advance advances the progression and updates the stage.
// It reports whether the stage changed.
func (t *Tracker) Advance(dt float64) bool {
	t.prog.Advance(dt)
	return t.update(false)
}

// Refresh re-announces the current stage through OnStageChange.
func (t *Tracker) Refresh() {
	t.update(true)
}

// Sync recomputes the stage after the progression changed outside Advance.
func (t *Tracker) Sync() bool {
	return t.update(false)
}

func (t *Tracker) update(force bool) bool {
	next := StageIndex(t.stages, t.prog.Progress())
	if !force && next == t.index {
		return false
	}
	prev := t.index
	if force {
		prev = -1
	}
	t.index = next
	if t.OnStageChange != nil {
		t.OnStageChange(prev, next)
	}
	return true
}

// Stage returns the current stage. ok is false without stages.
func (t *Tracker) Stage() (Stage, bool) {
	if t.index < 0 || t.index >= len(t.stages) {
		return Stage{}, false
	}
	return t.stages[t.index], true
}

// StageScale returns the interpolated draw scale of the current stage.
func (t *Tracker) StageScale() float64 {
	return StageScale(t.stages, t.index, t.prog.Progress())
}

// Progression returns the tracked progression.
func (t *Tracker) Progression() Progression { return t.prog }
