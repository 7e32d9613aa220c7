package world

import (
	"testing"

	"github.com/vovakirdan/recycle-run/internal/config"
	"github.com/vovakirdan/recycle-run/internal/core"
)

func TestQuotaUnlocksGoalOnce(t *testing.T) {
	w, rec := newTestWorld(t, 1)
	quiet(w)
	if w.state.RecyclablesNeeded != 4 {
		t.Fatalf("level 1 quota = %d, expected 4", w.state.RecyclablesNeeded)
	}

	var items []*Entity
	for i := 0; i < 6; i++ {
		items = append(items, addRecyclable(w, core.V(float64(30+15*i), 40)))
	}

	for i := 0; i < 3; i++ {
		w.OnOverlapRecyclable(items[i].ID)
	}
	if w.state.GoalState != GoalLocked || w.Count(CategoryGoal) != 0 {
		t.Fatal("goal must stay locked with 3 of 4 collected")
	}

	w.OnOverlapGoal()
	if got := rec.lastMessage(); got != "Need 1 more recyclable!" {
		t.Errorf("message = %q", got)
	}
	if w.state.IsLevelComplete || w.state.GoalState != GoalLocked {
		t.Error("reaching a locked goal must not change state")
	}

	w.OnOverlapRecyclable(items[3].ID)
	if w.state.GoalState != GoalUnlocked {
		t.Fatal("fourth item should unlock the goal")
	}
	if w.Count(CategoryGoal) != 1 || rec.count(CueUnlock) != 1 {
		t.Fatalf("goal count %d, unlock cues %d; expected 1 and 1", w.Count(CategoryGoal), rec.count(CueUnlock))
	}

	// Extra collections after the quota never unlock again.
	w.OnOverlapRecyclable(items[4].ID)
	w.OnOverlapRecyclable(items[5].ID)
	if w.Count(CategoryGoal) != 1 || rec.count(CueUnlock) != 1 {
		t.Errorf("goal count %d, unlock cues %d after extra items", w.Count(CategoryGoal), rec.count(CueUnlock))
	}
	if w.state.RecyclablesCollected != 6 || w.state.Score != 60 {
		t.Errorf("collected/score = %d/%d, expected 6/60", w.state.RecyclablesCollected, w.state.Score)
	}
}

func TestCollectedNeverDecreases(t *testing.T) {
	w, _ := newTestWorld(t, 9)
	prev := 0
	for i := 0; i < 3000 && !w.state.Terminal(); i++ {
		in := Input{Move: []int{-1, 0, 1}[i/90%3], Jump: i%37 == 0}
		w.Step(in)
		if w.state.RecyclablesCollected < prev {
			t.Fatalf("tick %d: collected dropped from %d to %d", i, prev, w.state.RecyclablesCollected)
		}
		prev = w.state.RecyclablesCollected
	}
}

func TestCollectUnknownOrStaleID(t *testing.T) {
	w, rec := newTestWorld(t, 1)
	quiet(w)
	item := addRecyclable(w, core.V(40, 40))
	w.OnOverlapRecyclable(item.ID)

	cues := len(rec.cues)
	w.OnOverlapRecyclable(item.ID)
	w.OnOverlapRecyclable(0)
	w.OnOverlapRecyclable(w.player.ID)

	if w.state.RecyclablesCollected != 1 || len(rec.cues) != cues {
		t.Error("stale or foreign ids must be ignored")
	}
}

func TestMissingMessage(t *testing.T) {
	tests := []struct {
		missing int
		want    string
	}{
		{1, "Need 1 more recyclable!"},
		{2, "Need 2 more recyclables"},
		{5, "Need 5 more recyclables"},
	}
	for _, tc := range tests {
		if got := missingMessage(tc.missing); got != tc.want {
			t.Errorf("missingMessage(%d) = %q, expected %q", tc.missing, got, tc.want)
		}
	}
}

func TestGoalPlacement(t *testing.T) {
	tests := []struct {
		name      string
		platforms []config.PlatformSpec
		mutate    func(*config.GoalConfig)
		want      core.Vec
	}{
		{
			name: "highest sturdy ledge when none is above the preferred height",
			want: core.V(130, 100-1.5-8),
		},
		{
			name: "first ledge above the preferred height",
			platforms: []config.PlatformSpec{
				{X: 80, Y: 120, W: 80, H: 8},
				{X: 40, Y: 100, W: 30, H: 4},
				{X: 120, Y: 70, W: 24, H: 4},
				{X: 60, Y: 60, W: 24, H: 4},
			},
			want: core.V(120, 68-8),
		},
		{
			name: "thin ledges are skipped",
			platforms: []config.PlatformSpec{
				{X: 80, Y: 120, W: 80, H: 8},
				{X: 40, Y: 60, W: 30, H: 2},
			},
			want: core.V(80, 116-8),
		},
		{
			name:   "fallback",
			mutate: func(g *config.GoalConfig) { g.MinWidth = 1000 },
			want:   core.V(80, 60),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, _ := newTestWorld(t, 1, func(c *config.RecycleConfig) {
				if tc.platforms != nil {
					c.Platforms = tc.platforms
				}
				if tc.mutate != nil {
					tc.mutate(&c.Goal)
				}
			})
			if got := w.goalPosition(); got != tc.want {
				t.Errorf("goalPosition() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestGoalOverlapCompletesUnlockedLevel(t *testing.T) {
	w, rec := newTestWorld(t, 1)
	w.state.RecyclablesCollected = w.state.RecyclablesNeeded
	w.checkUnlock()

	w.OnOverlapGoal()
	if !w.state.IsLevelComplete {
		t.Fatal("unlocked goal should complete the level")
	}
	levelUps := rec.count(CueLevelUp)
	total := w.state.TotalScore

	w.OnOverlapGoal()
	w.OnOverlapGoal()
	if rec.count(CueLevelUp) != levelUps || w.state.TotalScore != total {
		t.Error("completion must not trigger twice")
	}
}

func TestZeroQuotaUnlocksImmediately(t *testing.T) {
	w, _ := newTestWorld(t, 1, func(c *config.RecycleConfig) {
		c.Difficulty.BaseQuota = 0
	})
	if w.state.GoalState != GoalUnlocked || w.Count(CategoryGoal) != 1 {
		t.Error("a level with nothing to collect starts unlocked")
	}
}
