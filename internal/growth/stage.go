package growth

import (
	"errors"
	"fmt"
)

var (
	// ErrNoStages is returned when a stage list is empty.
	ErrNoStages = errors.New("growth: no stages")
	// ErrThresholdRange is returned for a threshold outside [0, 1].
	ErrThresholdRange = errors.New("growth: threshold out of range")
	// ErrThresholdOrder is returned when thresholds decrease.
	ErrThresholdOrder = errors.New("growth: thresholds not ascending")
)

// Stage is a discrete phase of a growing plant keyed by a progress threshold.
// Scales describe how large the stage model is drawn while the plant moves
// from this threshold to the next.
type Stage struct {
	Name        string  `yaml:"name"`
	Threshold   float64 `yaml:"threshold"`
	FirstScale  float64 `yaml:"first_scale"`
	TargetScale float64 `yaml:"target_scale"`
	Glyph       string  `yaml:"glyph"`
}

// Stages is an ordered list of stages with non-decreasing thresholds.
type Stages []Stage

// Validate checks that the list is non-empty, in range and ascending.
func (s Stages) Validate() error {
	if len(s) == 0 {
		return ErrNoStages
	}
	for i, st := range s {
		if st.Threshold < 0 || st.Threshold > 1 {
			return fmt.Errorf("stage %d (%s): %w", i, st.Name, ErrThresholdRange)
		}
		if i > 0 && st.Threshold < s[i-1].Threshold {
			return fmt.Errorf("stage %d (%s): %w", i, st.Name, ErrThresholdOrder)
		}
	}
	return nil
}

// StageIndex returns the largest index whose threshold is <= progress.
// The scan stops at the first unmet threshold, so 0 is returned when no
// stage qualifies. Returns -1 for an empty list.
func StageIndex(stages Stages, progress float64) int {
	if len(stages) == 0 {
		return -1
	}
	idx := 0
	for i, st := range stages {
		if progress < st.Threshold {
			break
		}
		idx = i
	}
	return idx
}

// StageScale interpolates the draw scale of stage idx for the given progress.
// The scale moves from FirstScale at the stage threshold to TargetScale at
// the next stage threshold (or at 1 for the last stage).
func StageScale(stages Stages, idx int, progress float64) float64 {
	if idx < 0 || idx >= len(stages) {
		return 0
	}
	st := stages[idx]
	end := 1.0
	if idx+1 < len(stages) {
		end = stages[idx+1].Threshold
	}
	t := 0.0
	if end != st.Threshold {
		t = clamp01((progress - st.Threshold) / (end - st.Threshold))
	}
	return st.FirstScale + (st.TargetScale-st.FirstScale)*t
}
