package config

import (
	_ "embed"
)

//go:embed defaults/recycle.yaml
var defaultRecycleYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultRecycleYAML
}

// DefaultRecycleConfig returns the default Recycle Run configuration.
// It mirrors defaults/recycle.yaml and is used if the embedded file cannot be parsed.
func DefaultRecycleConfig() RecycleConfig {
	return RecycleConfig{
		World: WorldConfig{
			Width:      160,
			Height:     120,
			EntitySize: 16,
			SafeZone:   Box{Left: 45, Top: 110, Right: 115, Bottom: 125},
			MinX:       20,
			MaxX:       140,
			FallLimit:  130,
			LeftLimit:  -10,
			RightLimit: 170,
		},
		Physics: PhysicsConfig{
			TickSeconds:      1.0 / 60,
			Gravity:          400,
			LandingTolerance: 8,
			RiderFactor:      0.1,
			ForgivenessTicks: 5,
			Forgiveness:      ForgivenessDecay,
		},
		Player: PlayerConfig{
			Lives:     3,
			Speed:     100,
			JumpPower: 200,
			Respawn: RespawnRule{
				MinWidth: 50,
				MinY:     100,
				Fallback: Point{X: 80, Y: 30},
			},
		},
		Platforms: []PlatformSpec{
			{X: 80, Y: 120, W: 80, H: 8},
			{X: 50, Y: 90, W: 40, H: 6, Moving: true},
			{X: 110, Y: 70, W: 40, H: 6, Moving: true},
			{X: 80, Y: 50, W: 30, H: 4, Moving: true},
			{X: 30, Y: 110, W: 20, H: 3},
			{X: 130, Y: 100, W: 20, H: 3},
		},
		Movers: MoverConfig{
			Speed: IntSpan{Min: 15, Max: 25},
			Range: 20,
		},
		Hazards: HazardConfig{
			Tiers: []HazardTier{
				{Name: "ground", MovingChance: 60, Positions: []Point{{25, 115}, {135, 115}, {30, 115}, {130, 115}}},
				{Name: "mid", MovingChance: 70, Positions: []Point{{50, 105}, {110, 105}, {60, 95}, {100, 95}}},
				{Name: "upper", MovingChance: 80, Positions: []Point{{70, 75}, {90, 75}, {65, 65}, {95, 65}}},
			},
			Margin:      20,
			BarrelSpeed: IntSpan{Min: 20, Max: 30},
			AcidSpeed:   IntSpan{Min: 30, Max: 45},
			Range:       IntSpan{Min: 20, Max: 35},
			AvoidMargin: 5,
			Relocation: RelocationRule{
				Range: 25,
				Speed: IntSpan{Min: 25, Max: 40},
			},
		},
		Recyclables: RecyclableConfig{
			Margin:      15,
			MinWidth:    15,
			MinX:        15,
			MaxX:        145,
			MaxY:        115,
			Inset:       8,
			Attempts:    10,
			MinDistance: 20,
		},
		Goal: GoalConfig{
			MinWidth:     20,
			MinHeight:    3,
			PreferAboveY: 80,
			Fallback:     Point{X: 80, Y: 60},
		},
		Scoring: ScoringConfig{
			PerItem:    10,
			LifeBonus:  50,
			ClearBonus: 100,
			LevelBonus: 25,
		},
		Difficulty: DifficultyConfig{
			Enabled:   true,
			BaseQuota: 4,
			SpeedStep: 10,
			JumpStep:  10,
			WinLevel:  3,
			HazardCounts: []IntSpan{
				{Min: 2, Max: 3},
				{Min: 3, Max: 4},
				{Min: 4, Max: 5},
			},
		},
	}
}
