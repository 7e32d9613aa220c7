package config

// DifficultyManager derives per-level parameters from the difficulty config.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// effective maps a level to the level whose parameters apply.
func (d *DifficultyManager) effective(level int) int {
	if level < 1 || !d.cfg.Enabled {
		return 1
	}
	return level
}

// Quota returns the number of recyclables needed to unlock the goal.
// The first level asks for the base quota, level n after that for base+n.
func (d *DifficultyManager) Quota(level int) int {
	if lvl := d.effective(level); lvl > 1 {
		return d.cfg.BaseQuota + lvl
	}
	return d.cfg.BaseQuota
}

// HazardCount returns the inclusive range the hazard count is drawn from.
// Levels past the end of the table reuse its last entry.
func (d *DifficultyManager) HazardCount(level int) IntSpan {
	if len(d.cfg.HazardCounts) == 0 {
		return IntSpan{}
	}
	i := d.effective(level) - 1
	if i >= len(d.cfg.HazardCounts) {
		i = len(d.cfg.HazardCounts) - 1
	}
	return d.cfg.HazardCounts[i]
}

// SpeedStep returns how much player speed grows per completed level.
func (d *DifficultyManager) SpeedStep() float64 {
	if !d.cfg.Enabled {
		return 0
	}
	return d.cfg.SpeedStep
}

// JumpStep returns how much jump power grows per completed level.
func (d *DifficultyManager) JumpStep() float64 {
	if !d.cfg.Enabled {
		return 0
	}
	return d.cfg.JumpStep
}

// IsVictory reports whether reaching level ends the campaign.
// A zero win level never ends it.
func (d *DifficultyManager) IsVictory(level int) bool {
	return d.cfg.WinLevel > 0 && level > d.cfg.WinLevel
}

// WinLevel returns the last level of the campaign, or 0 when endless.
func (d *DifficultyManager) WinLevel() int {
	return d.cfg.WinLevel
}
