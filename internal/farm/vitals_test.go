package farm

import (
	"testing"

	"github.com/vovakirdan/tui-farm/internal/config"
	"github.com/vovakirdan/tui-farm/internal/inventory"
)

func testVitalsConfig() config.VitalsConfig {
	return config.VitalsConfig{
		Enabled:            true,
		MaxHealth:          100,
		MaxCalories:        100,
		MaxHydration:       100,
		HydrationInterval:  2,
		DistancePerCalorie: 5,
		StarvationDamage:   1,
	}
}

func TestVitalsHydrationTimer(t *testing.T) {
	v := NewVitals(testVitalsConfig())

	for range 10 {
		v.Advance(1, 0)
	}
	if v.Hydration() != 95 {
		t.Errorf("hydration = %v, expected 95 after 10s", v.Hydration())
	}

	v.Advance(3, 1)
	if v.Hydration() != 92 {
		t.Errorf("hydration = %v, expected 92 with a 1s interval", v.Hydration())
	}
}

func TestVitalsTravel(t *testing.T) {
	v := NewVitals(testVitalsConfig())
	v.Travel(12)
	if v.Calories() != 98 {
		t.Errorf("calories = %v, expected 98", v.Calories())
	}
	v.Travel(3)
	if v.Calories() != 97 {
		t.Errorf("leftover distance should carry over, calories = %v", v.Calories())
	}
}

func TestVitalsClamp(t *testing.T) {
	v := NewVitals(testVitalsConfig())
	v.SetCalories(95)
	v.ApplyEffects(inventory.Effects{Health: 50, Calories: 10, Hydration: -300})

	if v.Health() != 100 || v.Calories() != 100 || v.Hydration() != 0 {
		t.Errorf("got %v/%v/%v, expected 100/100/0", v.Health(), v.Calories(), v.Hydration())
	}

	v.SetHealth(-5)
	if v.Health() != 0 || !v.Dead() {
		t.Error("health should clamp at zero and the farmer be dead")
	}

	hp, cal, water := v.Ratios()
	if hp != 0 || cal != 1 || water != 0 {
		t.Errorf("Ratios = %v %v %v", hp, cal, water)
	}
}

func TestVitalsStarvation(t *testing.T) {
	v := NewVitals(testVitalsConfig())
	v.SetCalories(0)
	v.Advance(2, 1000)
	if v.Health() != 98 {
		t.Errorf("health = %v, expected 98 after 2s starving", v.Health())
	}
}

func TestVitalsDisabled(t *testing.T) {
	cfg := testVitalsConfig()
	cfg.Enabled = false
	v := NewVitals(cfg)
	v.Advance(100, 0)
	v.Travel(100)
	if v.Hydration() != 100 || v.Calories() != 100 {
		t.Error("disabled vitals must not drain")
	}
	v.SetHealth(0)
	if v.Dead() {
		t.Error("disabled vitals never kill")
	}
}
