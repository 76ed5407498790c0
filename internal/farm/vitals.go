package farm

import (
	"github.com/vovakirdan/tui-farm/internal/config"
	"github.com/vovakirdan/tui-farm/internal/core"
	"github.com/vovakirdan/tui-farm/internal/inventory"
)

// Vitals tracks the farmer's health, calories and hydration.
// All values stay within [0, max].
type Vitals struct {
	cfg config.VitalsConfig

	health    float64
	calories  float64
	hydration float64

	thirst   float64
	distance float64
}

// NewVitals creates vitals filled to their maxima.
func NewVitals(cfg config.VitalsConfig) *Vitals {
	v := &Vitals{cfg: cfg}
	v.Reset()
	return v
}

// Reset refills every vital.
func (v *Vitals) Reset() {
	v.health = v.cfg.MaxHealth
	v.calories = v.cfg.MaxCalories
	v.hydration = v.cfg.MaxHydration
	v.thirst = 0
	v.distance = 0
}

// Advance runs the hydration timer and starvation damage for dt seconds.
// interval is the seconds per hydration point lost; non-positive uses the
// configured interval.
func (v *Vitals) Advance(dt, interval float64) {
	if !v.cfg.Enabled {
		return
	}
	if interval <= 0 {
		interval = v.cfg.HydrationInterval
	}
	if interval > 0 {
		v.thirst += dt
		for v.thirst >= interval {
			v.thirst -= interval
			v.SetHydration(v.hydration - 1)
		}
	}
	if v.calories <= 0 || v.hydration <= 0 {
		v.SetHealth(v.health - v.cfg.StarvationDamage*dt)
	}
}

// Travel records walked distance in cells.
func (v *Vitals) Travel(cells float64) {
	if !v.cfg.Enabled || v.cfg.DistancePerCalorie <= 0 {
		return
	}
	v.distance += cells
	for v.distance >= v.cfg.DistancePerCalorie {
		v.distance -= v.cfg.DistancePerCalorie
		v.SetCalories(v.calories - 1)
	}
}

// ApplyEffects adds consumed item effects.
func (v *Vitals) ApplyEffects(e inventory.Effects) {
	v.SetHealth(v.health + e.Health)
	v.SetCalories(v.calories + e.Calories)
	v.SetHydration(v.hydration + e.Hydration)
}

func (v *Vitals) SetHealth(x float64)    { v.health = core.ClampF(x, 0, v.cfg.MaxHealth) }
func (v *Vitals) SetCalories(x float64)  { v.calories = core.ClampF(x, 0, v.cfg.MaxCalories) }
func (v *Vitals) SetHydration(x float64) { v.hydration = core.ClampF(x, 0, v.cfg.MaxHydration) }

func (v *Vitals) Health() float64    { return v.health }
func (v *Vitals) Calories() float64  { return v.calories }
func (v *Vitals) Hydration() float64 { return v.hydration }

// Ratios returns each vital as a fraction of its maximum.
func (v *Vitals) Ratios() (health, calories, hydration float64) {
	return ratio(v.health, v.cfg.MaxHealth), ratio(v.calories, v.cfg.MaxCalories), ratio(v.hydration, v.cfg.MaxHydration)
}

// Enabled reports whether vitals drain over time.
func (v *Vitals) Enabled() bool { return v.cfg.Enabled }

// Dead reports whether health ran out.
func (v *Vitals) Dead() bool { return v.cfg.Enabled && v.health <= 0 }

func ratio(v, m float64) float64 {
	if m <= 0 {
		return 0
	}
	return v / m
}
