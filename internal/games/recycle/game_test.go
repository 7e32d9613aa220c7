package recycle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/recycle-run/internal/config"
	"github.com/vovakirdan/recycle-run/internal/core"
	"github.com/vovakirdan/recycle-run/internal/games/recycle/world"
	"github.com/vovakirdan/recycle-run/internal/registry"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  30,
	TickRate: 60,
	Seed:     12345,
}

// isolate hides user and local config files and restores CLI settings.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	SetLogger(log.New(os.Stderr))
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
		SetWatchConfig(false)
		SetLogger(nil)
	})
}

func newGame(t *testing.T) *Game {
	t.Helper()
	isolate(t)
	g := New()
	g.Reset(testRuntime)
	t.Cleanup(func() { _ = g.Close() })
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// completeLevel collects every recyclable and walks into the bin.
func completeLevel(g *Game) {
	for _, e := range g.world.Entities() {
		if e.Category == world.CategoryRecyclable {
			g.world.OnOverlapRecyclable(e.ID)
		}
	}
	g.world.OnOverlapGoal()
}

// loseAllLives runs the player into hazards until the run ends.
func loseAllLives(g *Game) {
	for i := 0; i < 10 && !g.world.State().IsGameOver; i++ {
		for _, e := range g.world.Entities() {
			if e.Category == world.CategoryHazard {
				g.world.OnOverlapHazard(e.ID)
				break
			}
		}
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"recycle", "recycle_endless"} {
		if !registry.Exists(id) {
			t.Errorf("mode %q not registered", id)
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	isolate(t)

	inputs := make([]core.InputFrame, 900)
	for i := range inputs {
		switch {
		case i%120 < 50:
			inputs[i] = frame(core.ActionRight)
		case i%120 < 90:
			inputs[i] = frame(core.ActionLeft)
		default:
			inputs[i] = frame()
		}
		if i%45 == 0 {
			inputs[i].Set(core.ActionJump)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(testRuntime)
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Tick != snap2.Tick || snap1.Total != snap2.Total {
		t.Errorf("Determinism failed: tick/total %d/%d vs %d/%d", snap1.Tick, snap1.Total, snap2.Tick, snap2.Total)
	}
}

func TestSnapshotHashTracksState(t *testing.T) {
	g := newGame(t)
	before := g.Snapshot()

	g.Step(frame(core.ActionRight))
	after := g.Snapshot()

	if before.Hash() == after.Hash() {
		t.Error("hash should change after a tick")
	}
	if after.EntityCount != len(after.EntityData)/entityFields {
		t.Errorf("entity count %d does not match data", after.EntityCount)
	}
}

func TestGameReset(t *testing.T) {
	g := newGame(t)
	for i := 0; i < 50; i++ {
		g.Step(frame(core.ActionRight, core.ActionJump))
	}
	g.Step(frame(core.ActionPause))

	g.Reset(testRuntime)

	s := g.State()
	if s.Score != 0 || s.Level != 1 || s.Lives != 3 || s.Paused || s.GameOver {
		t.Errorf("Reset should start a fresh run, got %+v", s)
	}
	if g.world.Tick() != 0 {
		t.Errorf("Reset should clear the tick count, got %d", g.world.Tick())
	}
}

func TestPauseToggle(t *testing.T) {
	g := newGame(t)

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("pause should be set")
	}
	tick := g.world.Tick()
	for i := 0; i < 10; i++ {
		g.Step(frame(core.ActionRight))
	}
	if g.world.Tick() != tick {
		t.Error("paused game should not advance")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused || g.world.Tick() != tick+1 {
		t.Error("second pause should resume and step")
	}
}

func TestJumpAcknowledgesCompletedLevel(t *testing.T) {
	g := newGame(t)
	completeLevel(g)
	if !g.world.State().IsLevelComplete {
		t.Fatal("level should be complete")
	}
	jumps := g.hud.cues[world.CueJump]

	g.Step(frame(core.ActionJump))

	s := g.world.State()
	if s.Level != 2 || s.IsLevelComplete {
		t.Fatalf("level=%d complete=%v, expected level 2 in play", s.Level, s.IsLevelComplete)
	}
	if g.hud.cues[world.CueJump] != jumps {
		t.Error("the acknowledging press must not also jump")
	}
	if g.State().Level != 2 {
		t.Errorf("platform state level = %d", g.State().Level)
	}
}

func TestConfirmAcknowledgesCompletedLevel(t *testing.T) {
	g := newGame(t)
	completeLevel(g)

	g.Step(frame(core.ActionConfirm))

	if g.world.State().Level != 2 {
		t.Error("confirm should acknowledge the completed level")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newGame(t)

	g.Step(frame(core.ActionRestart))
	if g.world.Tick() != 1 {
		t.Fatal("restart during play should be ignored")
	}

	loseAllLives(g)
	if !g.State().GameOver {
		t.Fatal("run should be over")
	}
	if g.hud.flashTicks == 0 {
		t.Error("game over should flash the player")
	}

	g.Step(frame(core.ActionRestart))
	s := g.State()
	if s.GameOver || s.Lives != 3 || g.world.Tick() != 0 {
		t.Errorf("restart should start a new run, got %+v", s)
	}
}

func TestEndlessMode(t *testing.T) {
	isolate(t)
	g := NewEndless()
	g.Reset(testRuntime)

	if g.ID() != "recycle_endless" || g.Title() != "Recycle Run (Endless)" {
		t.Errorf("id/title = %q/%q", g.ID(), g.Title())
	}
	if g.world.Config().Difficulty.WinLevel != 0 {
		t.Error("endless mode should have no final level")
	}
	for i := 0; i < 4; i++ {
		completeLevel(g)
		g.Step(frame(core.ActionJump))
	}
	if g.State().Won || g.State().Level != 5 {
		t.Errorf("state = %+v, expected level 5 still in play", g.State())
	}
}

func TestCampaignVictory(t *testing.T) {
	g := newGame(t)
	for i := 0; i < 3; i++ {
		completeLevel(g)
		g.Step(frame(core.ActionJump))
	}
	s := g.State()
	if !s.Won || !s.GameOver {
		t.Fatalf("state = %+v, expected a won run", s)
	}
	if s.Score != g.world.State().TotalScore {
		t.Errorf("score = %d, expected banked total %d", s.Score, g.world.State().TotalScore)
	}
}

func TestDifficultyPreset(t *testing.T) {
	isolate(t)

	SetDifficultyPreset("hard")
	g := New()
	g.Reset(testRuntime)
	if g.State().Lives != 2 {
		t.Errorf("hard preset lives = %d, expected 2", g.State().Lives)
	}

	SetDifficultyPreset("brutal")
	if difficultyPreset != "" {
		t.Errorf("unknown preset should clear, got %q", difficultyPreset)
	}
}

func TestPerGameDifficulty(t *testing.T) {
	isolate(t)
	SetDifficultyPreset("hard")

	g := New()
	g.SetDifficulty("easy")
	g.Reset(testRuntime)
	if g.State().Lives != 5 {
		t.Errorf("per-game easy lives = %d, expected 5", g.State().Lives)
	}

	other := New()
	other.Reset(testRuntime)
	if other.State().Lives != 2 {
		t.Errorf("other game should keep the CLI preset, lives = %d", other.State().Lives)
	}

	g.SetDifficulty("")
	g.Reset(testRuntime)
	if g.State().Lives != 2 {
		t.Errorf("cleared override should fall back to the CLI preset, lives = %d", g.State().Lives)
	}
}

func TestCustomConfigPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("player:\n  lives: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	SetConfigPath(path)
	g := New()
	g.Reset(testRuntime)
	if g.State().Lives != 7 {
		t.Errorf("lives = %d, expected 7 from %s", g.State().Lives, path)
	}

	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	g.Reset(testRuntime)
	if g.State().Lives != 3 {
		t.Errorf("missing config should fall back to defaults, lives = %d", g.State().Lives)
	}
}

func TestHotReloadAppliesNextLevel(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "recycle.yaml")
	if err := os.WriteFile(path, []byte("scoring:\n  per_item: 10\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	SetWatchConfig(true)

	g := New()
	g.Reset(testRuntime)
	t.Cleanup(func() { _ = g.Close() })
	if g.watcher == nil {
		t.Fatal("watcher should be running")
	}

	if err := os.WriteFile(path, []byte("scoring:\n  per_item: 25\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for g.hud.message != "Config reloaded, applies next level" {
		if time.Now().After(deadline) {
			t.Fatal("reload never reached the game")
		}
		g.Step(frame())
		time.Sleep(10 * time.Millisecond)
	}
	if g.world.Config().Scoring.PerItem != 10 {
		t.Fatal("reload must not change the running level")
	}

	completeLevel(g)
	g.Step(frame(core.ActionConfirm))
	if g.world.Config().Scoring.PerItem != 25 {
		t.Errorf("per_item = %d after the next level, expected 25", g.world.Config().Scoring.PerItem)
	}

	if err := g.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
	if g.watcher != nil {
		t.Error("Close should drop the watcher")
	}
}

func TestHUDMessageExpires(t *testing.T) {
	h := newHUD(60, log.New(os.Stderr))
	h.ShowMessage("hello")
	for i := 0; i < messageSeconds*60-1; i++ {
		h.tick()
	}
	if h.message != "hello" {
		t.Fatal("message expired early")
	}
	h.tick()
	if h.message != "" {
		t.Error("message should expire")
	}
}

func TestRender(t *testing.T) {
	g := newGame(t)
	screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)

	g.Render(screen)

	hud := screen.Row(0)
	for _, want := range []string{"Score: 0", "Lives: 3", "Recycled: 0/4", "Level: 1/3"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
	out := screen.String()
	for _, r := range []rune{PlayerChar, StaticPlatformChar, MovingPlatformChar} {
		if !strings.ContainsRune(out, r) {
			t.Errorf("screen has no %q", r)
		}
	}
	if !strings.Contains(screen.Row(testRuntime.ScreenH-1), "Level 1! Collect 4 recyclables") {
		t.Errorf("message line = %q", screen.Row(testRuntime.ScreenH-1))
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newGame(t)
	screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)

	g.Step(frame(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}
	g.Step(frame(core.ActionPause))

	completeLevel(g)
	g.Render(screen)
	if !strings.Contains(screen.String(), "LEVEL 1 COMPLETE") {
		t.Error("completion overlay missing")
	}
	if !strings.ContainsRune(screen.String(), GoalChar) {
		t.Error("unlocked bin should be drawn")
	}
}

func TestRenderTooSmall(t *testing.T) {
	isolate(t)
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 30, ScreenH: 10, TickRate: 60, Seed: 1})
	screen := core.NewScreen(30, 10)

	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("small window should show a warning")
	}
	g.Step(frame(core.ActionRight))
	if g.world.Tick() != 0 {
		t.Error("small window should not simulate")
	}
}

func TestResizeKeepsRun(t *testing.T) {
	g := newGame(t)
	for range 30 {
		g.Step(frame(core.ActionRight))
	}
	tick := g.world.Tick()

	g.Resize(30, 10)
	g.Step(frame())
	if g.world.Tick() != tick {
		t.Error("shrunk window should pause the simulation")
	}

	g.Resize(100, 40)
	g.Step(frame())
	if g.world.Tick() != tick+1 {
		t.Errorf("tick = %d after growing back, expected %d", g.world.Tick(), tick+1)
	}
}

func TestSetDifficultyPresetNames(t *testing.T) {
	isolate(t)
	tests := []struct {
		name string
		want config.DifficultyPreset
	}{
		{"easy", config.DifficultyEasy},
		{"normal", config.DifficultyNormal},
		{"hard", config.DifficultyHard},
		{"fixed", config.DifficultyFixed},
		{"", ""},
		{"nightmare", ""},
	}
	for _, tc := range tests {
		SetDifficultyPreset(tc.name)
		if difficultyPreset != tc.want {
			t.Errorf("SetDifficultyPreset(%q) = %q, expected %q", tc.name, difficultyPreset, tc.want)
		}
	}
}

func TestEffectiveConfig(t *testing.T) {
	isolate(t)
	SetDifficultyPreset("easy")

	cfg, err := EffectiveConfig(ModeCampaign)
	if err != nil {
		t.Fatalf("EffectiveConfig() failed: %v", err)
	}
	if cfg.Player.Lives != 5 || cfg.Difficulty.WinLevel != 3 {
		t.Errorf("campaign config: lives %d, win level %d", cfg.Player.Lives, cfg.Difficulty.WinLevel)
	}

	endless, _ := EffectiveConfig(ModeEndless)
	if endless.Difficulty.WinLevel != 0 {
		t.Errorf("endless win level = %d, expected 0", endless.Difficulty.WinLevel)
	}

	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	fallback, err := EffectiveConfig(ModeCampaign)
	if err == nil {
		t.Error("missing config file should be reported")
	}
	if fallback.Player.Lives != 5 {
		t.Errorf("fallback should still carry the preset, lives = %d", fallback.Player.Lives)
	}
}
