package world

import (
	"math/rand"
)

// Cue names a sound or visual effect the host may play.
type Cue int

const (
	CueJump Cue = iota
	CueCollect
	CueUnlock
	CueHurt
	CueGameOver
	CueLevelUp
	CueVictory
)

func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueCollect:
		return "collect"
	case CueUnlock:
		return "unlock"
	case CueHurt:
		return "hurt"
	case CueGameOver:
		return "game-over"
	case CueLevelUp:
		return "level-up"
	case CueVictory:
		return "victory"
	}
	return "unknown"
}

// Host is the presentation side of the world. The world never draws, plays
// sound or frames the camera itself; it reports through these calls.
type Host interface {
	EntitySpawned(e *Entity)
	EntityDestroyed(id EntityID, cat Category)
	PlayCue(c Cue)
	ShowMessage(text string)
	SetLifeDisplay(lives int)
	SetScoreDisplay(score int)
	CenterCamera(x, y float64)
}

// NopHost ignores every notification.
type NopHost struct{}

func (NopHost) EntitySpawned(*Entity) {}
func (NopHost) EntityDestroyed(EntityID, Category) {}
func (NopHost) PlayCue(Cue) {}
func (NopHost) ShowMessage(string) {}
func (NopHost) SetLifeDisplay(int) {}
func (NopHost) SetScoreDisplay(int) {}
func (NopHost) CenterCamera(float64, float64) {}

// Random is the source of every random decision in the world.
type Random interface {
	// IntRange returns a uniform integer in [lo, hi].
	IntRange(lo, hi int) int
	// PercentChance returns true with probability p/100.
	PercentChance(p int) bool
}

type seeded struct {
	rng *rand.Rand
}

// NewRandom returns a deterministic Random for the seed.
func NewRandom(seed int64) Random {
	return &seeded{rng: rand.New(rand.NewSource(seed))}
}

func (s *seeded) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

func (s *seeded) PercentChance(p int) bool {
	return s.rng.Intn(100) < p
}
