package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/recycle-run/internal/core"
	"github.com/vovakirdan/recycle-run/internal/storage"
)

// fakeGame records the frames it is stepped with.
type fakeGame struct {
	state   core.GameState
	inputs  []core.InputFrame
	resets  int
	resized [2]int
	closed  int
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{Lives: 3, Level: 1}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "fake game")
}

func (g *fakeGame) State() core.GameState { return g.state }

func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func (g *fakeGame) Close() error {
	g.closed++
	return nil
}

func (g *fakeGame) last() core.InputFrame {
	return g.inputs[len(g.inputs)-1]
}

var testConfig = core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 42}

func newTestModel(g *fakeGame, store *storage.Store) Model {
	return NewModel(g, store, testConfig, log.New(io.Discard))
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = send(t, m, TickMsg(time.Now()))
	return m
}

func TestModelHeldDirection(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	m, _ = send(t, m, keyMsg("right"))
	for range 12 {
		m = tick(t, m)
	}

	held := 0
	for _, in := range g.inputs {
		if in.Has(core.ActionRight) {
			held++
		}
	}
	if held != m.hold.span {
		t.Errorf("right held for %d ticks, expected %d", held, m.hold.span)
	}
	if g.last().Direction() != 0 {
		t.Error("direction should be released after the hold expires")
	}
}

func TestModelOneShotActions(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	m, _ = send(t, m, keyMsg(" "))
	m = tick(t, m)
	if !g.last().Has(core.ActionJump) {
		t.Error("space should jump on the next tick")
	}

	m = tick(t, m)
	if g.last().Has(core.ActionJump) {
		t.Error("jump should only last one tick")
	}

	m, _ = send(t, m, keyMsg("enter"))
	tick(t, m)
	if !g.last().Has(core.ActionConfirm) {
		t.Error("enter should confirm")
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	m, _ = send(t, m, keyMsg("r"))
	m = tick(t, m)
	if g.last().Has(core.ActionRestart) || g.resets != 0 {
		t.Error("restart should be ignored while playing")
	}

	g.state.GameOver = true
	m = tick(t, m)
	seed := m.config.Seed

	m, _ = send(t, m, keyMsg("r"))
	m = tick(t, m)
	if g.resets != 1 {
		t.Fatalf("resets = %d after restart, expected 1", g.resets)
	}
	if m.gameState.GameOver {
		t.Error("state should be fresh after restart")
	}
	if m.config.Seed == seed {
		t.Error("restart should pick a new seed")
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &fakeGame{}
	m := newTestModel(g, store)

	m = tick(t, m)
	g.state = core.GameState{Score: 480, Level: 4, GameOver: true, Won: true}
	for range 3 {
		m = tick(t, m)
	}

	runs, err := store.TopRuns("fake", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(runs))
	}
	r := runs[0]
	if r.Score != 480 || r.Level != 4 || !r.Won || r.Seed != testConfig.Seed {
		t.Errorf("saved run = %+v", r)
	}
	if !m.runSaved {
		t.Error("model should remember the run was saved")
	}
}

func TestModelBackPauses(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	m, _ = send(t, m, keyMsg("esc"))
	m = tick(t, m)
	if !g.last().Has(core.ActionPause) {
		t.Error("esc should pause a running game")
	}
	if !m.gameState.Paused {
		t.Fatal("game should report paused")
	}

	m, _ = send(t, m, keyMsg("esc"))
	if m.BackToMenu() {
		t.Error("standalone game has no menu to go back to")
	}
}

func TestModelBackToMenu(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)
	m.menuOnBack = true

	m, _ = send(t, m, keyMsg("esc"))
	m = tick(t, m)
	if m.BackToMenu() {
		t.Fatal("first esc should only pause")
	}

	m, _ = send(t, m, keyMsg("esc"))
	if !m.BackToMenu() {
		t.Error("esc while paused should leave to the menu")
	}
	if g.closed != 1 {
		t.Errorf("game closed %d times, expected 1", g.closed)
	}
}

func TestModelQuitClosesGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	m, cmd := send(t, m, keyMsg("q"))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if g.closed != 1 {
		t.Errorf("game closed %d times, expected 1", g.closed)
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if g.resized != [2]int{100, 40} {
		t.Errorf("resized = %v", g.resized)
	}
	if g.resets != 0 {
		t.Error("resize should not restart a game that can follow it")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	if !strings.Contains(m.View(), "fake game") {
		t.Error("view should contain the rendered game")
	}
}
