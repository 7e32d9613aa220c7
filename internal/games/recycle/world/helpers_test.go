package world

import (
	"testing"

	"github.com/vovakirdan/recycle-run/internal/config"
	"github.com/vovakirdan/recycle-run/internal/core"
)

// recorder captures host notifications.
type recorder struct {
	NopHost
	cues      []Cue
	messages  []string
	lives     []int
	scores    []int
	spawned   int
	destroyed int
}

func (r *recorder) EntitySpawned(*Entity) { r.spawned++ }
func (r *recorder) EntityDestroyed(EntityID, Category) { r.destroyed++ }
func (r *recorder) PlayCue(c Cue) { r.cues = append(r.cues, c) }
func (r *recorder) ShowMessage(text string) { r.messages = append(r.messages, text) }
func (r *recorder) SetLifeDisplay(n int) { r.lives = append(r.lives, n) }
func (r *recorder) SetScoreDisplay(n int) { r.scores = append(r.scores, n) }

func (r *recorder) count(c Cue) int {
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

func (r *recorder) lastMessage() string {
	if len(r.messages) == 0 {
		return ""
	}
	return r.messages[len(r.messages)-1]
}

// scripted replays fixed random results, then defers to a seeded source.
// Scripted integers are clamped into the requested range.
type scripted struct {
	ints    []int
	chances []bool
	rest    Random
}

func (s *scripted) IntRange(lo, hi int) int {
	if len(s.ints) == 0 {
		return s.rest.IntRange(lo, hi)
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return core.Clamp(v, lo, hi)
}

func (s *scripted) PercentChance(p int) bool {
	if len(s.chances) == 0 {
		return s.rest.PercentChance(p)
	}
	v := s.chances[0]
	s.chances = s.chances[1:]
	return v
}

func newTestWorld(t *testing.T, seed int64, mutate ...func(*config.RecycleConfig)) (*World, *recorder) {
	t.Helper()
	cfg := config.DefaultRecycleConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	rec := &recorder{}
	return New(cfg, Options{Host: rec, Seed: seed}), rec
}

// quiet removes hazards and recyclables so a test can place its own.
func quiet(w *World) {
	w.destroyAll(CategoryHazard)
	w.destroyAll(CategoryRecyclable)
}

func addHazard(w *World, pos core.Vec) *Entity {
	size := w.cfg.World.EntitySize
	e := w.spawn(CategoryHazard, pos, size, size)
	e.Hazard = &HazardData{CanRelocate: true, Original: pos, StartX: pos.X, AvoidZone: w.safeZone()}
	return e
}

func addRecyclable(w *World, pos core.Vec) *Entity {
	size := w.cfg.World.EntitySize
	e := w.spawn(CategoryRecyclable, pos, size, size)
	e.Recyclable = &RecyclableData{Kind: Paper}
	return e
}

// finishLevel unlocks the goal and walks into it.
func finishLevel(w *World) {
	w.state.RecyclablesCollected = w.state.RecyclablesNeeded
	w.checkUnlock()
	w.OnOverlapGoal()
}

// groundSpawn is where the default layout respawns the player.
var groundSpawn = core.V(80, 108)
