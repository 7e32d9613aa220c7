// Package config provides YAML-based game configuration loading and
// difficulty management for Recycle Run.
package config

// RecycleConfig contains all configuration for a Recycle Run session.
type RecycleConfig struct {
	World       WorldConfig      `yaml:"world"`
	Physics     PhysicsConfig    `yaml:"physics"`
	Player      PlayerConfig     `yaml:"player"`
	Platforms   []PlatformSpec   `yaml:"platforms"`
	Movers      MoverConfig      `yaml:"moving_platforms"`
	Hazards     HazardConfig     `yaml:"hazards"`
	Recyclables RecyclableConfig `yaml:"recyclables"`
	Goal        GoalConfig       `yaml:"goal"`
	Scoring     ScoringConfig    `yaml:"scoring"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// Point is a world position.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Box is an axis-aligned rectangle given by its edges.
type Box struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
}

// IntSpan is an inclusive integer range.
type IntSpan struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// WorldConfig defines the playfield.
type WorldConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	EntitySize float64 `yaml:"entity_size"` // Player, hazards, items and the goal are square
	SafeZone   Box     `yaml:"safe_zone"`   // Hazards never spawn or rest here
	MinX       float64 `yaml:"min_x"`       // Clamp for oscillation bounds
	MaxX       float64 `yaml:"max_x"`
	FallLimit  float64 `yaml:"fall_limit"`  // Player y beyond this costs a life
	LeftLimit  float64 `yaml:"left_limit"`  // Player x below this costs a life
	RightLimit float64 `yaml:"right_limit"` // Player x beyond this costs a life
}

// PhysicsConfig defines the fixed-step integrator.
type PhysicsConfig struct {
	TickSeconds      float64 `yaml:"tick_seconds"`
	Gravity          float64 `yaml:"gravity"`
	LandingTolerance float64 `yaml:"landing_tolerance"`
	RiderFactor      float64 `yaml:"rider_factor"`
	ForgivenessTicks int     `yaml:"forgiveness_ticks"`
	Forgiveness      string  `yaml:"forgiveness"` // "decay" or "single_use"
}

// Forgiveness modes.
const (
	ForgivenessDecay     = "decay"
	ForgivenessSingleUse = "single_use"
)

// PlayerConfig defines the player's starting stats and respawn rule.
type PlayerConfig struct {
	Lives     int         `yaml:"lives"`
	Speed     float64     `yaml:"speed"`
	JumpPower float64     `yaml:"jump_power"`
	Respawn   RespawnRule `yaml:"respawn"`
}

// RespawnRule picks the platform the player returns to after damage.
type RespawnRule struct {
	MinWidth float64 `yaml:"min_width"`
	MinY     float64 `yaml:"min_y"`
	Fallback Point   `yaml:"fallback"`
}

// PlatformSpec describes one platform of the layout, positioned by its center.
type PlatformSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	W      float64 `yaml:"w"`
	H      float64 `yaml:"h"`
	Moving bool    `yaml:"moving"`
}

// MoverConfig defines moving platform oscillation.
type MoverConfig struct {
	Speed IntSpan `yaml:"speed"`
	Range float64 `yaml:"range"`
}

// HazardConfig defines hazard placement and movement.
type HazardConfig struct {
	Tiers       []HazardTier   `yaml:"tiers"`
	Margin      float64        `yaml:"margin"` // Exclusion half-size around other hazards
	BarrelSpeed IntSpan        `yaml:"barrel_speed"`
	AcidSpeed   IntSpan        `yaml:"acid_speed"`
	Range       IntSpan        `yaml:"range"`
	AvoidMargin float64        `yaml:"avoid_margin"`
	Relocation  RelocationRule `yaml:"relocation"`
}

// HazardTier groups candidate positions sharing a moving chance.
type HazardTier struct {
	Name         string  `yaml:"name"`
	MovingChance int     `yaml:"moving_chance"` // Percent
	Positions    []Point `yaml:"positions"`
}

// RelocationRule defines how a hazard moves after it hurts the player.
type RelocationRule struct {
	Range float64 `yaml:"range"`
	Speed IntSpan `yaml:"speed"`
}

// RecyclableConfig defines item placement.
type RecyclableConfig struct {
	Margin      float64 `yaml:"margin"` // Exclusion half-size kept free of hazards
	MinWidth    float64 `yaml:"min_platform_width"`
	MinX        float64 `yaml:"min_x"`
	MaxX        float64 `yaml:"max_x"`
	MaxY        float64 `yaml:"max_y"`
	Inset       int     `yaml:"inset"`
	Attempts    int     `yaml:"attempts"`
	MinDistance float64 `yaml:"min_hazard_distance"`
}

// GoalConfig defines where the recycling bin appears.
type GoalConfig struct {
	MinWidth     float64 `yaml:"min_width"`
	MinHeight    float64 `yaml:"min_height"`
	PreferAboveY float64 `yaml:"prefer_above_y"`
	Fallback     Point   `yaml:"fallback"`
}

// ScoringConfig defines points and the level completion bonus.
type ScoringConfig struct {
	PerItem    int `yaml:"per_item"`
	LifeBonus  int `yaml:"life_bonus"`
	ClearBonus int `yaml:"clear_bonus"` // Awarded when no hazards remain
	LevelBonus int `yaml:"level_bonus"`
}

// DifficultyConfig defines the progression between levels.
type DifficultyConfig struct {
	Enabled      bool      `yaml:"enabled"` // false keeps every level at level 1 values
	BaseQuota    int       `yaml:"base_quota"`
	SpeedStep    float64   `yaml:"speed_step"`
	JumpStep     float64   `yaml:"jump_step"`
	WinLevel     int       `yaml:"win_level"` // 0 = endless
	HazardCounts []IntSpan `yaml:"hazard_counts"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	}
	return "", false
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
