package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name looked up in the search directories.
const FileName = "recycle.yaml"

// LoadRecycle loads Recycle Run configuration.
// Search order: customPath -> ~/.arcade/configs/recycle.yaml -> ./configs/recycle.yaml -> embedded default
// Files are decoded over the defaults, so a partial file only overrides what it names.
func LoadRecycle(customPath string) (RecycleConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return DefaultRecycleConfig(), err
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := decode(data)
		if err != nil {
			continue
		}
		if err := cfg.Validate(); err != nil {
			return DefaultRecycleConfig(), fmt.Errorf("config: %s: %w", path, err)
		}
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := decode(defaultRecycleYAML)
	if err != nil {
		return DefaultRecycleConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads, decodes and validates a single configuration file.
func LoadFile(path string) (RecycleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RecycleConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := decode(data)
	if err != nil {
		return RecycleConfig{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return RecycleConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func decode(data []byte) (RecycleConfig, error) {
	cfg := DefaultRecycleConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func (c RecycleConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyRecyclePreset modifies the config based on a difficulty preset.
func ApplyRecyclePreset(cfg *RecycleConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Physics.ForgivenessTicks = 8
		cfg.Difficulty.HazardCounts = []IntSpan{{1, 2}, {2, 3}, {3, 4}}
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Physics.ForgivenessTicks = 3
		cfg.Difficulty.BaseQuota = 5
		cfg.Difficulty.HazardCounts = []IntSpan{{3, 4}, {4, 5}, {5, 6}}
	}
}

// Validate reports every problem in the configuration at once.
func (c RecycleConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world: size must be positive, got %vx%v", c.World.Width, c.World.Height)
	check(c.World.EntitySize > 0, "world: entity_size must be positive")
	check(c.World.MinX < c.World.MaxX, "world: min_x %v must be below max_x %v", c.World.MinX, c.World.MaxX)

	check(c.Physics.TickSeconds > 0, "physics: tick_seconds must be positive")
	check(c.Physics.Gravity >= 0, "physics: gravity must not be negative")
	check(c.Physics.LandingTolerance > 0, "physics: landing_tolerance must be positive")
	check(c.Physics.ForgivenessTicks >= 0, "physics: forgiveness_ticks must not be negative")
	check(c.Physics.Forgiveness == ForgivenessDecay || c.Physics.Forgiveness == ForgivenessSingleUse,
		"physics: forgiveness must be %q or %q, got %q", ForgivenessDecay, ForgivenessSingleUse, c.Physics.Forgiveness)

	check(c.Player.Lives > 0, "player: lives must be positive")
	check(c.Player.Speed > 0, "player: speed must be positive")
	check(c.Player.JumpPower > 0, "player: jump_power must be positive")

	check(len(c.Platforms) > 0, "platforms: at least one platform is required")
	for i, p := range c.Platforms {
		check(p.W > 0 && p.H > 0, "platforms[%d]: size must be positive", i)
	}

	checkSpan := func(name string, s IntSpan) {
		check(s.Min <= s.Max, "%s: min %d exceeds max %d", name, s.Min, s.Max)
	}
	checkSpan("moving_platforms.speed", c.Movers.Speed)
	checkSpan("hazards.barrel_speed", c.Hazards.BarrelSpeed)
	checkSpan("hazards.acid_speed", c.Hazards.AcidSpeed)
	checkSpan("hazards.range", c.Hazards.Range)
	checkSpan("hazards.relocation.speed", c.Hazards.Relocation.Speed)

	for _, tier := range c.Hazards.Tiers {
		check(tier.MovingChance >= 0 && tier.MovingChance <= 100,
			"hazards.tiers[%s]: moving_chance must be within 0..100", tier.Name)
	}

	check(c.Recyclables.Attempts > 0, "recyclables: attempts must be positive")

	check(c.Difficulty.BaseQuota >= 0, "difficulty: base_quota must not be negative")
	check(c.Difficulty.WinLevel >= 0, "difficulty: win_level must not be negative")
	check(len(c.Difficulty.HazardCounts) > 0, "difficulty: hazard_counts must not be empty")
	for i, s := range c.Difficulty.HazardCounts {
		checkSpan(fmt.Sprintf("difficulty.hazard_counts[%d]", i), s)
		check(s.Min >= 0, "difficulty.hazard_counts[%d]: min must not be negative", i)
	}

	return errors.Join(errs...)
}
