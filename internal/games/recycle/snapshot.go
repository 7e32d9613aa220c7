package recycle

import (
	"math"

	"github.com/vovakirdan/recycle-run/internal/games/recycle/world"
)

// entityFields is the number of ints stored per entity in EntityData.
const entityFields = 6

// Snapshot contains the observable run state for replay comparison and
// determinism tests. Positions are stored in hundredths of a world unit.
type Snapshot struct {
	Tick      uint64
	Level     int
	Lives     int
	Score     int
	Total     int
	Collected int
	Needed    int
	GoalState int
	Complete  bool
	GameOver  bool
	Won       bool

	PlayerX     int
	PlayerY     int
	Grounded    bool
	Forgiveness int

	// Each entity is 6 ints: Category, X, Y, VX, Kind, ID
	EntityCount int
	EntityData  []int
}

// Snapshot returns the current run state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.world.State()
	ps := g.world.Player()
	p := g.world.PlayerEntity()

	entities := g.world.Entities()
	data := make([]int, len(entities)*entityFields)
	for i, e := range entities {
		idx := i * entityFields
		data[idx] = int(e.Category)
		data[idx+1] = fixed(e.Pos.X)
		data[idx+2] = fixed(e.Pos.Y)
		data[idx+3] = fixed(e.Vel.X)
		data[idx+4] = kindOf(e)
		data[idx+5] = int(e.ID) //#nosec G115 -- ids are compared, never converted back
	}

	return Snapshot{
		Tick:      g.world.Tick(),
		Level:     s.Level,
		Lives:     s.Lives,
		Score:     s.Score,
		Total:     s.TotalScore,
		Collected: s.RecyclablesCollected,
		Needed:    s.RecyclablesNeeded,
		GoalState: int(s.GoalState),
		Complete:  s.IsLevelComplete,
		GameOver:  s.IsGameOver,
		Won:       s.IsWon,

		PlayerX:     fixed(p.Pos.X),
		PlayerY:     fixed(p.Pos.Y),
		Grounded:    ps.Grounded,
		Forgiveness: ps.JumpForgiveness,

		EntityCount: len(entities),
		EntityData:  data,
	}
}

func fixed(v float64) int {
	return int(math.Round(v * 100))
}

func kindOf(e world.Entity) int {
	switch {
	case e.Hazard != nil:
		return int(e.Hazard.Kind)
	case e.Recyclable != nil:
		return int(e.Recyclable.Kind)
	case e.Platform != nil && e.Platform.Moving:
		return 1
	}
	return 0
}

func boolInt(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Level)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Total)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Collected)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Needed)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.GoalState)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Forgiveness) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EntityCount) //#nosec G115 -- hash computation
	h = h*31 + boolInt(snap.Complete)
	h = h*31 + boolInt(snap.GameOver)
	h = h*31 + boolInt(snap.Won)
	h = h*31 + boolInt(snap.Grounded)

	for _, v := range snap.EntityData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
