package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/recycle-run/internal/config"
	"github.com/vovakirdan/recycle-run/internal/storage"

	// Register the game modes the menu lists
	_ "github.com/vovakirdan/recycle-run/internal/games/recycle"
)

func menuSend(t *testing.T, m MenuModel, keys ...string) (MenuModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(MenuModel)
	}
	return m, cmd
}

func TestMenuListsModes(t *testing.T) {
	m := NewMenuModel(testConfig)
	view := m.View()
	for _, title := range []string{"Recycle Run", "Recycle Run (Endless)", "R E C Y C L E", "Clear every level"} {
		if !strings.Contains(view, title) {
			t.Errorf("menu should show %q", title)
		}
	}
}

func TestMenuSelectModeAndDifficulty(t *testing.T) {
	m := NewMenuModel(testConfig)

	m, _ = menuSend(t, m, "down", "enter")
	if m.Selected() != nil {
		t.Fatal("mode choice should lead to the difficulty picker")
	}
	if !strings.Contains(m.View(), "select difficulty") {
		t.Error("difficulty picker should be shown")
	}

	m, cmd := menuSend(t, m, "down", "enter")
	if cmd == nil {
		t.Error("final choice should close the menu")
	}
	sel := m.Selected()
	if sel == nil || sel.GameID != "recycle_endless" {
		t.Fatalf("selected = %+v, expected recycle_endless", sel)
	}
	if m.Difficulty() != config.DifficultyEasy {
		t.Errorf("difficulty = %q, expected easy", m.Difficulty())
	}
}

func TestMenuBackFromDifficulty(t *testing.T) {
	m := NewMenuModel(testConfig)

	m, _ = menuSend(t, m, "enter", "esc")
	if m.inDifficulty {
		t.Error("esc should return to the mode list")
	}
	m, _ = menuSend(t, m, "enter", "enter")
	if m.Selected() == nil || m.Selected().GameID != "recycle" {
		t.Errorf("selected = %+v, expected recycle", m.Selected())
	}
	if m.Difficulty() != config.DifficultyNormal {
		t.Errorf("default difficulty = %q, expected normal", m.Difficulty())
	}
}

func TestMenuCursorBounds(t *testing.T) {
	m := NewMenuModel(testConfig)

	m, _ = menuSend(t, m, "up", "up")
	if m.cursor != 0 {
		t.Errorf("cursor = %d, expected 0", m.cursor)
	}
	m, _ = menuSend(t, m, "down", "down", "down", "down")
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, expected %d", m.cursor, len(m.items)-1)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m, cmd := menuSend(t, NewMenuModel(testConfig), "tab")
	if !m.WantsScoreboard() || cmd == nil {
		t.Error("tab should open the scoreboard")
	}

	m, _ = menuSend(t, NewMenuModel(testConfig), "q")
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q should quit")
	}
}

func TestMenuResize(t *testing.T) {
	m := NewMenuModel(testConfig)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	m = next.(MenuModel)
	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 50 {
		t.Errorf("config = %+v after resize", cfg)
	}
}

func TestScoreboardShowsRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(storage.RunResult{Mode: "recycle", Score: 750, Level: 4, Won: true, Duration: 3 * time.Minute})
	store.SaveRun(storage.RunResult{Mode: "recycle", Score: 90, Level: 1})
	store.SaveRun(storage.RunResult{Mode: "recycle_endless", Score: 1200, Level: 7})

	sb := NewScoreboardModel(store, 120, 30)
	if len(sb.runs) != 2 {
		t.Fatalf("campaign runs = %d, expected 2", len(sb.runs))
	}
	view := sb.View()
	for _, want := range []string{"HIGH SCORES - Recycle Run", "750", "Won", "Runs: 2"} {
		if !strings.Contains(view, want) {
			t.Errorf("scoreboard should show %q", want)
		}
	}

	next, _ := sb.Update(keyMsg("tab"))
	sb = next.(ScoreboardModel)
	if len(sb.runs) != 1 || sb.runs[0].Score != 1200 {
		t.Errorf("endless runs = %+v", sb.runs)
	}

	next, _ = sb.Update(keyMsg("esc"))
	sb = next.(ScoreboardModel)
	if !sb.IsGoingBack() {
		t.Error("esc should go back")
	}
}

func TestScoreboardRecentOrderAndSeed(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(storage.RunResult{Mode: "recycle", Score: 900, Level: 3, Seed: 4242})
	store.SaveRun(storage.RunResult{Mode: "recycle", Score: 50, Level: 1, Seed: 77})

	sb := NewScoreboardModel(store, 70, 30)
	view := sb.View()
	if !strings.Contains(view, "recyclerun play recycle --seed 4242") {
		t.Errorf("best run's seed should be offered for replay:\n%s", view)
	}
	if !strings.Contains(view, "< Recycle Run >") {
		t.Error("narrow scoreboard should show the mode switcher")
	}

	next, _ := sb.Update(keyMsg("o"))
	sb = next.(ScoreboardModel)
	if sb.runs[0].Score != 50 {
		t.Errorf("recent order first run = %+v, expected the last one saved", sb.runs[0])
	}
	if !strings.Contains(sb.View(), "RECENT RUNS - Recycle Run") {
		t.Error("title should follow the order")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	sb := NewScoreboardModel(nil, 60, 20)
	if !strings.Contains(sb.View(), "No runs recorded yet") {
		t.Error("empty scoreboard should say so")
	}
}

func sessionSend(t *testing.T, s SessionModel, msgs ...tea.Msg) SessionModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := s.Update(msg)
		s = next.(SessionModel)
	}
	return s
}

func TestSessionFlow(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	s := NewSessionModel(nil, testConfig, log.New(io.Discard))

	s = sessionSend(t, s, keyMsg("tab"))
	if s.screen != screenScores {
		t.Fatal("tab should show the scoreboard")
	}
	s = sessionSend(t, s, keyMsg("esc"))
	if s.screen != screenMenu || s.quitting {
		t.Fatal("esc should return to the menu without ending the session")
	}

	s = sessionSend(t, s, keyMsg("enter"), keyMsg("down"), keyMsg("down"), keyMsg("enter"))
	if s.screen != screenGame || s.gameModel == nil {
		t.Fatal("menu choice should start a game")
	}
	if s.gameModel.game.ID() != "recycle" {
		t.Errorf("game = %s, expected recycle", s.gameModel.game.ID())
	}
	if lives := s.gameModel.game.State().Lives; lives != 2 {
		t.Errorf("hard difficulty lives = %d, expected 2", lives)
	}

	s = sessionSend(t, s, keyMsg("esc"), TickMsg(time.Now()))
	if !s.gameModel.gameState.Paused {
		t.Fatal("esc should pause the game")
	}
	s = sessionSend(t, s, keyMsg("esc"))
	if s.screen != screenMenu || s.gameModel != nil {
		t.Error("esc while paused should return to the menu")
	}
	if !strings.Contains(s.View(), "Recycle Run") {
		t.Error("menu should be shown again")
	}

	s = sessionSend(t, s, keyMsg("q"))
	if !s.quitting {
		t.Error("q in the menu should end the session")
	}
}
