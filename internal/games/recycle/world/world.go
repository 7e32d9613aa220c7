// Package world is the Recycle Run simulation: a single-screen platformer
// level where the player collects recyclables, dodges hazards and carries the
// haul to a recycling bin. It has no terminal or rendering dependencies; the
// host drives it one fixed tick at a time and receives notifications through
// the Host interface.
//
// World is not safe for concurrent use.
package world

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/recycle-run/internal/config"
	"github.com/vovakirdan/recycle-run/internal/core"
)

// LevelState is the progress of the current run.
type LevelState struct {
	Level                int
	RecyclablesNeeded    int
	RecyclablesCollected int
	Score                int // Points earned in the current level
	TotalScore           int // Points banked by completed levels, bonuses included
	LastBonus            int
	Lives                int
	PlayerSpeed          float64
	JumpPower            float64
	GoalState            GoalState
	IsLevelComplete      bool
	IsGameOver           bool
	IsWon                bool
}

// Terminal reports whether the level accepts no more play.
func (s LevelState) Terminal() bool {
	return s.IsLevelComplete || s.IsGameOver || s.IsWon
}

// RunningScore is the banked score plus the current level's score.
// A completed level is already banked.
func (s LevelState) RunningScore() int {
	if s.IsLevelComplete || s.IsWon {
		return s.TotalScore
	}
	return s.TotalScore + s.Score
}

// PlayerState is the player's movement state.
type PlayerState struct {
	Grounded        bool
	CurrentPlatform EntityID // Weak reference; zero when airborne
	JumpForgiveness int
}

// Input is one tick of player intent.
type Input struct {
	Move        int // -1 left, 0 idle, 1 right
	Jump        bool
	Acknowledge bool
}

// Options configures a World. Zero fields get no-op or seeded defaults.
type Options struct {
	Host   Host
	Random Random
	Logger *log.Logger
	Seed   int64 // Used when Random is nil
}

// World owns every entity and the level state.
type World struct {
	cfg     config.RecycleConfig
	pending *config.RecycleConfig
	diff    *config.DifficultyManager

	host Host
	rng  Random
	log  *log.Logger

	reg    *Registry
	player *Entity
	ps     PlayerState
	state  LevelState

	tick    uint64
	damaged bool // Out-of-bounds damage already applied this tick
	queue   []overlapEvent
}

// New creates a world at level 1 with the static layout and the player in place.
func New(cfg config.RecycleConfig, opts Options) *World {
	w := &World{
		cfg:  cfg,
		diff: config.NewDifficultyManager(cfg.Difficulty),
		host: opts.Host,
		rng:  opts.Random,
		log:  opts.Logger,
		reg:  NewRegistry(),
	}
	if w.host == nil {
		w.host = NopHost{}
	}
	if w.rng == nil {
		w.rng = NewRandom(opts.Seed)
	}
	if w.log == nil {
		w.log = log.New(io.Discard)
	}

	w.state = LevelState{
		Level:             1,
		RecyclablesNeeded: w.diff.Quota(1),
		Lives:             cfg.Player.Lives,
		PlayerSpeed:       cfg.Player.Speed,
		JumpPower:         cfg.Player.JumpPower,
		GoalState:         GoalLocked,
	}

	for _, p := range cfg.Platforms {
		if p.Moving {
			continue
		}
		e := w.spawn(CategoryStaticPlatform, core.V(p.X, p.Y), p.W, p.H)
		e.Platform = &PlatformData{StartX: p.X}
	}
	size := cfg.World.EntitySize
	w.player = w.spawn(CategoryPlayer, core.V(cfg.World.Width/2, cfg.World.Height/2), size, size)

	w.buildLevel()
	w.host.ShowMessage(levelBanner(w.state))
	return w
}

// State returns a copy of the level state.
func (w *World) State() LevelState {
	return w.state
}

// Player returns a copy of the player's movement state.
func (w *World) Player() PlayerState {
	return w.ps
}

// PlayerEntity returns a copy of the player entity.
func (w *World) PlayerEntity() Entity {
	return *w.player
}

// Entities returns copies of every live entity in spawn order.
func (w *World) Entities() []Entity {
	all := w.reg.All()
	out := make([]Entity, len(all))
	for i, e := range all {
		out[i] = *e
	}
	return out
}

// Count returns the number of live entities of a category.
func (w *World) Count(cat Category) int {
	return w.reg.Count(cat)
}

// Tick returns the number of ticks simulated.
func (w *World) Tick() uint64 {
	return w.tick
}

// Config returns the configuration the current level was built with.
func (w *World) Config() config.RecycleConfig {
	return w.cfg
}

// SetPendingConfig schedules a configuration for the next level build.
// The current level keeps running with the old values.
func (w *World) SetPendingConfig(cfg config.RecycleConfig) {
	w.pending = &cfg
}

// Step applies one tick of input, advances the simulation and resolves
// every overlap the tick produced.
func (w *World) Step(in Input) {
	if in.Acknowledge {
		w.OnAcknowledgeCompletion()
	}
	w.OnMoveInput(in.Move)
	if in.Jump {
		w.OnJumpInput()
	}
	w.OnTick()
	w.detectOverlaps()
	w.dispatch()
}

// OnTick runs oscillation, player physics and the bounds check.
func (w *World) OnTick() {
	if w.state.Terminal() {
		return
	}
	w.tick++
	w.damaged = false

	w.oscillate()
	w.integratePlayer()
	w.checkBounds()
}

func (w *World) spawn(cat Category, pos core.Vec, width, height float64) *Entity {
	e := w.reg.Spawn(cat, pos, width, height)
	w.host.EntitySpawned(e)
	return e
}

func (w *World) destroy(id EntityID) {
	if e, ok := w.reg.Destroy(id); ok {
		w.host.EntityDestroyed(id, e.Category)
	}
}

func (w *World) destroyAll(cat Category) {
	for _, e := range w.reg.ByCategory(cat) {
		w.destroy(e.ID)
	}
}

func (w *World) safeZone() core.Rect {
	z := w.cfg.World.SafeZone
	return core.NewRect(z.Left, z.Top, z.Right, z.Bottom)
}

func (w *World) halfSize() float64 {
	return w.cfg.World.EntitySize / 2
}
