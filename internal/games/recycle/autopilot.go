package recycle

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/recycle-run/internal/config"
	"github.com/vovakirdan/recycle-run/internal/core"
	"github.com/vovakirdan/recycle-run/internal/games/recycle/world"
)

// Autopilot tuning, in world units.
const (
	arriveSlack   = 2.0  // Close enough horizontally to stop running
	climbReach    = 40.0 // Jump for targets above within this horizontal range
	climbMin      = 4.0  // Targets less than this far above need no jump
	hazardLook    = 24.0 // How far ahead a hazard triggers a jump
	hopPercent    = 2    // Chance of a random hop to get unstuck
	ticksPerLevel = 3600 // Default tick budget per campaign level
)

// Autopilot plays the game by steering toward the closest recyclable, or
// the bin once it opens, and jumping over hazards in the way.
// It tracks the target like a CPU paddle tracks the ball: greedy and imperfect.
type Autopilot struct {
	rng world.Random
}

// NewAutopilot creates an autopilot with its own seeded randomness.
func NewAutopilot(seed int64) *Autopilot {
	return &Autopilot{rng: world.NewRandom(seed)}
}

// Next decides the input for the coming tick.
func (a *Autopilot) Next(w *world.World) world.Input {
	s := w.State()
	switch {
	case s.IsLevelComplete:
		return world.Input{Acknowledge: true}
	case s.IsGameOver || s.IsWon:
		return world.Input{}
	}

	p := w.PlayerEntity()
	var in world.Input

	if target, ok := a.target(w, p.Pos); ok {
		dx := target.X - p.Pos.X
		switch {
		case dx > arriveSlack:
			in.Move = 1
		case dx < -arriveSlack:
			in.Move = -1
		}
		// Smaller y is higher up
		if p.Pos.Y-target.Y > climbMin && math.Abs(dx) < climbReach {
			in.Jump = true
		}
	}

	if a.hazardAhead(w, p.Pos, in.Move) {
		in.Jump = true
	}
	if !in.Jump && a.rng.PercentChance(hopPercent) {
		in.Jump = true
	}
	return in
}

// target picks the open bin, or else the nearest recyclable.
func (a *Autopilot) target(w *world.World, from core.Vec) (core.Vec, bool) {
	best := core.Vec{}
	bestDist := math.Inf(1)
	for _, e := range w.Entities() {
		switch e.Category {
		case world.CategoryGoal:
			return e.Pos, true
		case world.CategoryRecyclable:
			if d := from.Dist(e.Pos); d < bestDist {
				best, bestDist = e.Pos, d
			}
		}
	}
	return best, !math.IsInf(bestDist, 1)
}

// hazardAhead reports a hazard at roughly the player's height in the
// direction of travel.
func (a *Autopilot) hazardAhead(w *world.World, from core.Vec, dir int) bool {
	if dir == 0 {
		return false
	}
	for _, e := range w.Entities() {
		if e.Category != world.CategoryHazard {
			continue
		}
		dx := (e.Pos.X - from.X) * float64(dir)
		if dx > 0 && dx < hazardLook && math.Abs(e.Pos.Y-from.Y) < hazardLook/2 {
			return true
		}
	}
	return false
}

// SimOptions configures a headless run.
type SimOptions struct {
	Seed     int64
	MaxTicks int // Zero picks a budget from the campaign length
	Logger   *log.Logger
}

// SimResult summarizes a headless run.
type SimResult struct {
	Seed      int64
	Ticks     uint64
	Level     int
	Score     int
	Lives     int
	Collected int // Recyclables collected over the whole run
	Cleared   int // Levels completed
	Hits      int // Lives lost
	Jumps     int
	Won       bool
	GameOver  bool
	TimedOut  bool
}

// Simulate plays one run with the autopilot until it ends or the tick
// budget runs out. The same config and seed always give the same result.
func Simulate(cfg config.RecycleConfig, opts SimOptions) SimResult {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	maxTicks := opts.MaxTicks
	if maxTicks <= 0 {
		levels := cfg.Difficulty.WinLevel
		if levels <= 0 {
			levels = 10
		}
		maxTicks = levels * ticksPerLevel
	}

	h := newHUD(core.DefaultTickRate, logger)
	w := world.New(cfg, world.Options{Host: h, Seed: opts.Seed, Logger: logger})
	pilot := NewAutopilot(opts.Seed)

	for i := 0; i < maxTicks; i++ {
		s := w.State()
		if s.IsGameOver || s.IsWon {
			break
		}
		w.Step(pilot.Next(w))
		h.tick()
	}

	s := w.State()
	res := SimResult{
		Seed:      opts.Seed,
		Ticks:     w.Tick(),
		Level:     s.Level,
		Score:     s.RunningScore(),
		Lives:     s.Lives,
		Collected: h.cues[world.CueCollect],
		Cleared:   h.cues[world.CueLevelUp],
		Hits:      h.cues[world.CueHurt],
		Jumps:     h.cues[world.CueJump],
		Won:       s.IsWon,
		GameOver:  s.IsGameOver,
	}
	res.TimedOut = !res.Won && !res.GameOver
	logger.Info("simulation finished", "seed", res.Seed, "ticks", res.Ticks, "level", res.Level,
		"score", res.Score, "won", res.Won)
	return res
}
