// Package recycle adapts the Recycle Run world to the registry.Game
// interface: it maps platform actions to world input, keeps the HUD state
// the world reports and draws the level into a core.Screen.
package recycle

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/recycle-run/internal/config"
	"github.com/vovakirdan/recycle-run/internal/core"
	"github.com/vovakirdan/recycle-run/internal/games/recycle/world"
	"github.com/vovakirdan/recycle-run/internal/registry"
)

// GameMode represents the campaign style.
type GameMode int

const (
	ModeCampaign GameMode = iota // Win after the configured final level
	ModeEndless                  // Levels keep coming until the last life is lost
)

func (m GameMode) summary() string {
	if m == ModeEndless {
		return "No final level; play until the last life is gone"
	}
	return "Clear every level to fill the bin"
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// watchConfig enables hot reload of configPath
var watchConfig bool

var logger *log.Logger

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(name string) {
	if p, ok := config.ParsePreset(name); ok && name != "" {
		difficultyPreset = p
		return
	}
	difficultyPreset = ""
}

// SetWatchConfig makes new games reload the custom config file when it
// changes. Reloaded values apply from the next level.
func SetWatchConfig(enabled bool) {
	watchConfig = enabled
}

// SetLogger sets the logger handed to new worlds.
func SetLogger(l *log.Logger) {
	logger = l
}

// Game implements registry.Game for Recycle Run.
type Game struct {
	mode    GameMode
	runtime core.RuntimeConfig
	cfg     config.RecycleConfig

	world   *world.World
	hud     *hud
	paused  bool
	watcher *config.Watcher
	preset  config.DifficultyPreset // Overrides difficultyPreset when set

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a campaign game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates an endless game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "recycle_endless"
	}
	return "recycle"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Recycle Run (Endless)"
	}
	return "Recycle Run"
}

// Reset initializes or restarts the run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRecycle(configPath)
	if err != nil {
		g.logger().Warn("using default config", "path", configPath, "err", err)
		cfg = config.DefaultRecycleConfig()
	}
	g.cfg = g.prepare(cfg)

	g.minScreenW = 40
	g.minScreenH = 16
	g.Resize(runtime.ScreenW, runtime.ScreenH)

	g.paused = false
	g.hud = newHUD(runtime.TickRate, g.logger())
	g.world = world.New(g.cfg, world.Options{
		Host:   g.hud,
		Seed:   runtime.Seed,
		Logger: g.logger(),
	})

	g.startWatcher()
}

// Resize adapts to a new terminal size without restarting the run.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH
}

// SetDifficulty picks a preset for this game only, as the SSH menu does
// per session. Unknown names fall back to the CLI preset. Applies on Reset.
func (g *Game) SetDifficulty(name string) {
	g.preset = ""
	if p, ok := config.ParsePreset(name); ok && name != "" {
		g.preset = p
	}
}

// EffectiveConfig loads the configuration a new game of the mode would
// use, CLI preset included. On a load error it returns the prepared
// defaults along with the error.
func EffectiveConfig(mode GameMode) (config.RecycleConfig, error) {
	cfg, err := config.LoadRecycle(configPath)
	if err != nil {
		cfg = config.DefaultRecycleConfig()
	}
	g := Game{mode: mode}
	return g.prepare(cfg), err
}

// prepare applies the preset and the mode to a loaded config.
func (g *Game) prepare(cfg config.RecycleConfig) config.RecycleConfig {
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	if preset != "" {
		config.ApplyRecyclePreset(&cfg, preset)
	}
	if g.mode == ModeEndless {
		cfg.Difficulty.WinLevel = 0
	}
	return cfg
}

func (g *Game) logger() *log.Logger {
	if logger == nil {
		return log.Default()
	}
	return logger
}

func (g *Game) startWatcher() {
	if g.watcher != nil {
		_ = g.watcher.Close()
		g.watcher = nil
	}
	if !watchConfig || configPath == "" {
		return
	}
	w, err := config.Watch(configPath)
	if err != nil {
		g.logger().Warn("config hot reload disabled", "path", configPath, "err", err)
		return
	}
	g.watcher = w
}

// pollConfig hands a reloaded config to the world without blocking.
func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case cfg, ok := <-g.watcher.Updates:
		if !ok {
			g.watcher = nil
			return
		}
		g.world.SetPendingConfig(g.prepare(cfg))
		g.hud.ShowMessage("Config reloaded, applies next level")
		g.logger().Info("config reloaded", "path", g.watcher.Path())
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.logger().Warn("config reload failed", "err", err)
		}
	default:
	}
}

// Close stops the config watcher if one is running.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	err := g.watcher.Close()
	g.watcher = nil
	return err
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}
	s := g.world.State()

	// Handle restart
	if in.Has(core.ActionRestart) && (s.IsGameOver || s.IsWon) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !s.Terminal() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.pollConfig()
	g.world.Step(g.input(in, s))
	g.hud.tick()

	return core.StepResult{State: g.State()}
}

// input maps platform actions to world intent. While a completed level
// waits, jump and confirm acknowledge it and never reach the physics.
func (g *Game) input(in core.InputFrame, s world.LevelState) world.Input {
	wi := world.Input{Move: in.Direction()}
	pressed := in.Has(core.ActionJump) || in.Has(core.ActionConfirm)
	if s.IsLevelComplete {
		wi.Acknowledge = pressed
		return wi
	}
	wi.Jump = in.Has(core.ActionJump)
	return wi
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	s := g.world.State()
	return core.GameState{
		Score:    s.RunningScore(),
		Level:    s.Level,
		Lives:    s.Lives,
		GameOver: s.IsGameOver || s.IsWon,
		Won:      s.IsWon,
		Paused:   g.paused,
	}
}

// World exposes the simulation for headless drivers.
func (g *Game) World() *world.World {
	return g.world
}

func init() {
	for _, g := range []*Game{New(), NewEndless()} {
		mode := g.mode
		registry.Register(registry.Mode{
			ID:      g.ID(),
			Title:   g.Title(),
			Summary: mode.summary(),
			Order:   int(mode),
			New:     func() registry.Game { return &Game{mode: mode} },
		})
	}
}
