package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-farm/internal/growth"
)

// LoadFarm loads the farm configuration.
// Search order: customPath -> ~/.farm/configs/farm.yaml -> ./configs/farm.yaml -> embedded default
func LoadFarm(customPath string) (FarmConfig, error) {
	var cfg FarmConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("farm.yaml"); userCfgPath != "" {
		if c, ok := readValid(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := readValid(filepath.Join("configs", "farm.yaml")); ok {
		return c, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultFarmYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultFarmConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readValid reads and validates a config file, reporting false on any failure.
func readValid(path string) (FarmConfig, bool) {
	var cfg FarmConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".farm", "configs", filename)
}

// Validate checks the parts of the config the game cannot run without.
func (c FarmConfig) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if len(c.Crops) == 0 {
		return errors.New("no crops configured")
	}
	for _, p := range c.Plants {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	seen := make(map[string]bool, len(c.Crops))
	for _, cr := range c.Crops {
		if cr.Name == "" {
			return errors.New("crop without name")
		}
		if seen[cr.Name] {
			return fmt.Errorf("duplicate crop %s", cr.Name)
		}
		seen[cr.Name] = true
		if growth.ParseKind(cr.Kind) == growth.KindNurtured {
			if _, ok := c.Plant(cr.Plant); !ok {
				return fmt.Errorf("crop %s references unknown plant %q", cr.Name, cr.Plant)
			}
		}
	}
	return nil
}

// ApplyFarmPreset modifies the config based on a difficulty preset.
func ApplyFarmPreset(cfg *FarmConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		cfg.Sun.Fixed = true
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust growth and survival pressure based on difficulty
	switch preset {
	case DifficultyEasy:
		scaleGrowth(cfg, 0.75)
		cfg.Growth.MoistureDecay *= 0.5
		cfg.Growth.NutrientDecay *= 0.5
		cfg.Season.Length *= 1.5
		cfg.Vitals.HydrationInterval *= 1.5
	case DifficultyHard:
		scaleGrowth(cfg, 1.25)
		cfg.Growth.MoistureDecay *= 1.5
		cfg.Growth.NutrientDecay *= 1.5
		cfg.Season.Length *= 0.75
		cfg.Vitals.HydrationInterval *= 0.75
	}
}

func scaleGrowth(cfg *FarmConfig, f float64) {
	for i := range cfg.Crops {
		cfg.Crops[i].GrowTime *= f
	}
	for i := range cfg.Plants {
		cfg.Plants[i].BaseTotalGrowTime *= f
	}
}
