// Package config provides YAML-based game configuration loading and
// difficulty management for the farm.
package config

import (
	"github.com/vovakirdan/tui-farm/internal/growth"
	"github.com/vovakirdan/tui-farm/internal/inventory"
)

// FarmConfig contains all configuration for the farm game.
type FarmConfig struct {
	Grid         GridConfig               `yaml:"grid"`
	Season       SeasonConfig             `yaml:"season"`
	Crops        []CropConfig             `yaml:"crops"`
	Plants       []growth.PlantDefinition `yaml:"plants"`
	Growth       growth.Params            `yaml:"growth"`
	Care         CareConfig               `yaml:"care"`
	Sun          SunConfig                `yaml:"sun"`
	Player       PlayerConfig             `yaml:"player"`
	Vitals       VitalsConfig             `yaml:"vitals"`
	Inventory    InventoryConfig          `yaml:"inventory"`
	Items        []inventory.Item         `yaml:"items"`
	Blueprints   []inventory.Blueprint    `yaml:"blueprints"`
	Pickups      PickupConfig             `yaml:"pickups"`
	Messages     MessageConfig            `yaml:"messages"`
	Achievements []AchievementConfig      `yaml:"achievements"`
	Difficulty   DifficultyConfig         `yaml:"difficulty"`
}

// GridConfig defines the field size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SeasonConfig defines how long a season lasts, in simulated seconds.
type SeasonConfig struct {
	Length float64 `yaml:"length"`
}

// CropConfig defines a plantable crop.
type CropConfig struct {
	Name     string  `yaml:"name"`
	Kind     string  `yaml:"kind"`      // "timed" or "nurtured"
	GrowTime float64 `yaml:"grow_time"` // seconds, timed crops only
	Points   int     `yaml:"points"`
	Plant    string  `yaml:"plant"` // plant definition type, nurtured crops only
	Color    string  `yaml:"color"`
	Glyph    string  `yaml:"glyph"`
	Yield    string  `yaml:"yield"` // inventory item granted on harvest
}

// CareConfig defines watering and fertilizing amounts.
type CareConfig struct {
	WaterAmount      float64 `yaml:"water_amount"`
	FertilizerAmount float64 `yaml:"fertilizer_amount"`
	InitialMoisture  float64 `yaml:"initial_moisture"`
	InitialNutrients float64 `yaml:"initial_nutrients"`
}

// SunConfig defines the day cycle light.
type SunConfig struct {
	MinIntensity   float64 `yaml:"min_intensity"`
	MaxIntensity   float64 `yaml:"max_intensity"`
	Speed          float64 `yaml:"speed"`
	Fixed          bool    `yaml:"fixed"`
	FixedIntensity float64 `yaml:"fixed_intensity"`
}

// PlayerConfig defines farmer movement and action timings.
type PlayerConfig struct {
	Speed          float64 `yaml:"speed"`           // cells per second
	PlantDuration  float64 `yaml:"plant_duration"`  // seconds
	PickupDuration float64 `yaml:"pickup_duration"` // seconds
	StartX         int     `yaml:"start_x"`
	StartY         int     `yaml:"start_y"`
}

// VitalsConfig defines health, calories and hydration.
type VitalsConfig struct {
	Enabled            bool    `yaml:"enabled"`
	MaxHealth          float64 `yaml:"max_health"`
	MaxCalories        float64 `yaml:"max_calories"`
	MaxHydration       float64 `yaml:"max_hydration"`
	HydrationInterval  float64 `yaml:"hydration_interval"`   // seconds per hydration point lost
	DistancePerCalorie float64 `yaml:"distance_per_calorie"` // cells walked per calorie lost
	StarvationDamage   float64 `yaml:"starvation_damage"`    // health lost per second at zero calories or hydration
}

// InventoryConfig defines the inventory and trash.
type InventoryConfig struct {
	Capacity     int      `yaml:"capacity"`
	TrashTimeout float64  `yaml:"trash_timeout"`
	StartItems   []string `yaml:"start_items"`
}

// PickupConfig defines world items that appear on empty cells.
type PickupConfig struct {
	Items      []string `yaml:"items"`
	Interval   float64  `yaml:"interval"` // seconds between spawns
	MaxOnField int      `yaml:"max_on_field"`
}

// MessageConfig defines on-screen message timing.
type MessageConfig struct {
	Duration             float64 `yaml:"duration"`
	InstructionsDuration float64 `yaml:"instructions_duration"`
	Welcome              string  `yaml:"welcome"`
}

// AchievementConfig defines one unlockable achievement.
type AchievementConfig struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Requirement int    `yaml:"requirement"`
	Type        string `yaml:"type"` // "total_harvests", "crop_harvests" or "total_score"
	Crop        string `yaml:"crop"` // crop_harvests only
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	ThirstMultiplier float64 `yaml:"thirst_multiplier"` // hydration loss speed-up at max difficulty
	PickupSlowdown   float64 `yaml:"pickup_slowdown"`   // pickup interval stretch at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. Unknown values are normal.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	}
	return DifficultyNormal
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Crop returns the crop with the given name.
func (c FarmConfig) Crop(name string) (CropConfig, bool) {
	for _, cr := range c.Crops {
		if cr.Name == name {
			return cr, true
		}
	}
	return CropConfig{}, false
}

// Plant returns the plant definition with the given type.
func (c FarmConfig) Plant(typ string) (growth.PlantDefinition, bool) {
	for _, p := range c.Plants {
		if p.Type == typ {
			return p, true
		}
	}
	return growth.PlantDefinition{}, false
}
