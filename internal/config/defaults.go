package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-farm/internal/growth"
	"github.com/vovakirdan/tui-farm/internal/inventory"
)

//go:embed defaults/farm.yaml
var defaultFarmYAML []byte

// DefaultFarmConfig returns the default farm configuration.
func DefaultFarmConfig() FarmConfig {
	return FarmConfig{
		Grid:   GridConfig{Width: 5, Height: 5},
		Season: SeasonConfig{Length: 600},
		Crops: []CropConfig{
			{Name: "Carrot", Kind: "timed", GrowTime: 30, Points: 15, Color: "orange", Glyph: "v", Yield: "Carrot"},
			{Name: "Grass", Kind: "timed", GrowTime: 45, Points: 10, Color: "green", Glyph: "w"},
			{Name: "Tree", Kind: "timed", GrowTime: 120, Points: 50, Color: "yellow", Glyph: "T", Yield: "Stick"},
			{Name: "TreeA", Kind: "nurtured", Plant: "TreeA", Points: 30, Color: "bright_green", Glyph: "A", Yield: "Stick"},
			{Name: "TreeB", Kind: "nurtured", Plant: "TreeB", Points: 40, Color: "bright_green", Glyph: "B", Yield: "Stick"},
			{Name: "TreeC", Kind: "nurtured", Plant: "TreeC", Points: 50, Color: "bright_green", Glyph: "C", Yield: "Stick"},
			{Name: "TreeD", Kind: "nurtured", Plant: "TreeD", Points: 60, Color: "bright_green", Glyph: "D", Yield: "Stick"},
		},
		Plants: []growth.PlantDefinition{
			{Type: "TreeA", BaseTotalGrowTime: 90, Stages: defaultTreeStages(), TransitionEffect: true},
			{Type: "TreeB", BaseTotalGrowTime: 120, Stages: defaultTreeStages(), TransitionEffect: true},
			{Type: "TreeC", BaseTotalGrowTime: 150, Stages: defaultTreeStages(), TransitionEffect: true},
			{Type: "TreeD", BaseTotalGrowTime: 180, Stages: defaultTreeStages(), TransitionEffect: true},
		},
		Growth: growth.DefaultParams(),
		Care: CareConfig{
			WaterAmount:      0.3,
			FertilizerAmount: 0.4,
			InitialMoisture:  0.5,
			InitialNutrients: 0.2,
		},
		Sun: SunConfig{
			MinIntensity:   0.1,
			MaxIntensity:   1.2,
			Speed:          0.2,
			FixedIntensity: 1.0,
		},
		Player: PlayerConfig{
			Speed:          4,
			PlantDuration:  1.5,
			PickupDuration: 1.0,
			StartX:         2,
			StartY:         2,
		},
		Vitals: VitalsConfig{
			Enabled:            true,
			MaxHealth:          100,
			MaxCalories:        100,
			MaxHydration:       100,
			HydrationInterval:  2,
			DistancePerCalorie: 5,
			StarvationDamage:   1,
		},
		Inventory: InventoryConfig{
			Capacity:     inventory.DefaultCapacity,
			TrashTimeout: inventory.DefaultConfirmTimeout,
		},
		Items: []inventory.Item{
			{Name: "Rock", Description: "A small grey rock", Functionality: "Crafting material", Glyph: "o", Trashable: true},
			{Name: "Stick", Description: "A dry stick", Functionality: "Crafting material", Glyph: "/", Trashable: true},
			{Name: "Berry", Description: "A handful of wild berries", Functionality: "Food", Glyph: "*", Trashable: true, Consumable: true,
				Effects: inventory.Effects{Health: 2, Calories: 10, Hydration: 15}},
			{Name: "Carrot", Description: "A fresh carrot", Functionality: "Food", Glyph: "v", Trashable: true, Consumable: true,
				Effects: inventory.Effects{Health: 5, Calories: 20, Hydration: 5}},
			{Name: "Axe", Description: "A sturdy axe", Functionality: "Tool", Glyph: "P"},
			{Name: "Campfire", Description: "A ring of stones and sticks", Functionality: "Camp", Glyph: "&"},
		},
		Blueprints: []inventory.Blueprint{
			{Name: "Axe", Yield: 1, Requirements: []inventory.Requirement{{Item: "Rock", Amount: 3}, {Item: "Stick", Amount: 3}}},
			{Name: "Campfire", Yield: 1, Requirements: []inventory.Requirement{{Item: "Stick", Amount: 5}, {Item: "Rock", Amount: 2}}},
		},
		Pickups: PickupConfig{
			Items:      []string{"Rock", "Stick", "Berry"},
			Interval:   20,
			MaxOnField: 4,
		},
		Messages: MessageConfig{
			Duration:             3,
			InstructionsDuration: 15,
			Welcome:              "Welcome to the farm! Press Enter on a cell to plant or harvest.",
		},
		Achievements: []AchievementConfig{
			{Name: "First Harvest", Description: "Harvest your first crop", Requirement: 1, Type: "total_harvests"},
			{Name: "Farming Beginner", Description: "Harvest 10 crops", Requirement: 10, Type: "total_harvests"},
			{Name: "Farming Expert", Description: "Harvest 50 crops", Requirement: 50, Type: "total_harvests"},
			{Name: "Carrot Master", Description: "Harvest 20 carrots", Requirement: 20, Type: "crop_harvests", Crop: "Carrot"},
			{Name: "Tree Farmer", Description: "Harvest 5 trees", Requirement: 5, Type: "crop_harvests", Crop: "Tree"},
			{Name: "High Scorer", Description: "Reach 1000 points", Requirement: 1000, Type: "total_score"},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 600,
			},
			Scaling: ScalingConfig{
				ThirstMultiplier: 1.0,
				PickupSlowdown:   1.0,
			},
		},
	}
}

func defaultTreeStages() growth.Stages {
	return growth.Stages{
		{Name: "seed", Threshold: 0, FirstScale: 0, TargetScale: 0.3, Glyph: "."},
		{Name: "sprout", Threshold: 0.3, FirstScale: 0.3, TargetScale: 0.6, Glyph: ","},
		{Name: "young", Threshold: 0.7, FirstScale: 0.6, TargetScale: 0.9, Glyph: "t"},
		{Name: "mature", Threshold: 1, FirstScale: 1, TargetScale: 1, Glyph: "T"},
	}
}
