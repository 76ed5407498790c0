package growth

import (
	"errors"
	"fmt"
)

// PlantDefinition describes a plant species grown with the nurtured model.
type PlantDefinition struct {
	Type              string  `yaml:"type"`
	BaseTotalGrowTime float64 `yaml:"base_total_grow_time"`
	Stages            Stages  `yaml:"stages"`
	TransitionEffect  bool    `yaml:"transition_effect"`
}

// Validate checks the definition is usable.
func (d PlantDefinition) Validate() error {
	if d.Type == "" {
		return errors.New("growth: plant definition without type")
	}
	if err := d.Stages.Validate(); err != nil {
		return fmt.Errorf("plant %s: %w", d.Type, err)
	}
	return nil
}

// GrowTime returns the base total grow time, falling back to DefaultGrowTime.
func (d PlantDefinition) GrowTime() float64 {
	if d.BaseTotalGrowTime <= 0 {
		return DefaultGrowTime
	}
	return d.BaseTotalGrowTime
}

// NewTracker builds a nurtured progression for this plant and a tracker
// following it through the definition's stages.
func (d PlantDefinition) NewTracker(p Params, moisture, nutrients float64, light LightSource) *Tracker {
	n := NewNurtured(d.GrowTime(), p, moisture, nutrients, light)
	t := NewTracker(n, d.Stages)
	t.TransitionEffect = d.TransitionEffect
	return t
}
