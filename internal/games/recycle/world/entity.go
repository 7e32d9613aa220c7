package world

import (
	"strconv"

	"github.com/vovakirdan/recycle-run/internal/core"
)

// EntityID identifies a live entity. The low 32 bits index a registry slot,
// the high 32 bits hold the slot generation, so ids of destroyed entities
// never resolve again. The zero value means "no entity".
type EntityID uint64

const indexBits = 32

func makeID(index, gen uint32) EntityID {
	return EntityID(uint64(gen)<<indexBits | uint64(index))
}

func (id EntityID) index() uint32 {
	return uint32(id)
}

func (id EntityID) generation() uint32 {
	return uint32(uint64(id) >> indexBits)
}

// Valid reports whether the id could refer to an entity.
func (id EntityID) Valid() bool {
	return id != 0
}

func (id EntityID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Category tags every entity.
type Category int

const (
	CategoryPlayer Category = iota
	CategoryStaticPlatform
	CategoryMovingPlatform
	CategoryHazard
	CategoryRecyclable
	CategoryGoal
)

func (c Category) String() string {
	switch c {
	case CategoryPlayer:
		return "player"
	case CategoryStaticPlatform:
		return "static-platform"
	case CategoryMovingPlatform:
		return "moving-platform"
	case CategoryHazard:
		return "hazard"
	case CategoryRecyclable:
		return "recyclable"
	case CategoryGoal:
		return "goal"
	}
	return "unknown"
}

// Entity is a positioned box in the world. Pos is the center.
// Exactly one side record matching the category is set for platforms,
// hazards, recyclables and the goal; the player keeps its data in PlayerState.
type Entity struct {
	ID       EntityID
	Category Category
	Pos      core.Vec
	Vel      core.Vec
	W, H     float64

	Platform   *PlatformData
	Hazard     *HazardData
	Recyclable *RecyclableData
	Goal       *GoalData
}

// Bounds returns the entity's bounding box.
func (e *Entity) Bounds() core.Rect {
	return core.RectAround(e.Pos, e.W, e.H)
}

// Top returns the y of the upper edge.
func (e *Entity) Top() float64 {
	return e.Pos.Y - e.H/2
}

// Bottom returns the y of the lower edge.
func (e *Entity) Bottom() float64 {
	return e.Pos.Y + e.H/2
}

// PlatformData is attached to both platform categories.
type PlatformData struct {
	Moving bool
	MinX   float64
	MaxX   float64
	StartX float64
}

// HazardKind selects hazard art and speed.
type HazardKind int

const (
	ChemicalBarrel HazardKind = iota
	BatteryAcid
)

func (k HazardKind) String() string {
	if k == BatteryAcid {
		return "battery-acid"
	}
	return "chemical-barrel"
}

// HazardData is attached to hazards.
type HazardData struct {
	Kind        HazardKind
	CanRelocate bool
	Original    core.Vec
	Moving      bool
	MinX        float64
	MaxX        float64
	StartX      float64
	AvoidZone   core.Rect
}

// RecyclableKind selects item art.
type RecyclableKind int

const (
	PlasticBottle RecyclableKind = iota
	GlassJar
	Paper
	recyclableKinds
)

func (k RecyclableKind) String() string {
	switch k {
	case GlassJar:
		return "glass-jar"
	case Paper:
		return "paper"
	}
	return "plastic-bottle"
}

// RecyclableData is attached to recyclables.
type RecyclableData struct {
	Kind RecyclableKind
}

// GoalState is the lock state of the recycling bin.
type GoalState int

const (
	GoalLocked GoalState = iota
	GoalUnlocked
)

func (s GoalState) String() string {
	if s == GoalUnlocked {
		return "unlocked"
	}
	return "locked"
}

// GoalData is attached to the goal.
type GoalData struct {
	State GoalState
}

type slot struct {
	gen    uint32
	entity *Entity
}

// Registry owns every live entity.
// Iteration follows spawn order so simulation results are reproducible.
type Registry struct {
	slots []slot
	free  []uint32
	live  []EntityID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	// Slot 0 is reserved so no live id is ever zero.
	return &Registry{slots: make([]slot, 1, 32)}
}

// Spawn creates an entity of the given category centered on pos.
func (r *Registry) Spawn(cat Category, pos core.Vec, w, h float64) *Entity {
	var index uint32
	if n := len(r.free); n > 0 {
		index = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		index = uint32(len(r.slots))
		r.slots = append(r.slots, slot{})
	}

	s := &r.slots[index]
	s.gen++
	e := &Entity{
		ID:       makeID(index, s.gen),
		Category: cat,
		Pos:      pos,
		W:        w,
		H:        h,
	}
	s.entity = e
	r.live = append(r.live, e.ID)
	return e
}

// Get resolves an id. Stale and zero ids report false.
func (r *Registry) Get(id EntityID) (*Entity, bool) {
	i := id.index()
	if i == 0 || int(i) >= len(r.slots) {
		return nil, false
	}
	s := r.slots[i]
	if s.entity == nil || s.gen != id.generation() {
		return nil, false
	}
	return s.entity, true
}

// Alive reports whether id refers to a live entity.
func (r *Registry) Alive(id EntityID) bool {
	_, ok := r.Get(id)
	return ok
}

// Destroy removes an entity. It returns false if the id was stale.
func (r *Registry) Destroy(id EntityID) (*Entity, bool) {
	e, ok := r.Get(id)
	if !ok {
		return nil, false
	}
	i := id.index()
	r.slots[i].entity = nil
	r.free = append(r.free, i)
	for k, lid := range r.live {
		if lid == id {
			r.live = append(r.live[:k], r.live[k+1:]...)
			break
		}
	}
	return e, true
}

// ByCategory returns the live entities of a category in spawn order.
func (r *Registry) ByCategory(cat Category) []*Entity {
	var out []*Entity
	for _, id := range r.live {
		e, _ := r.Get(id)
		if e.Category == cat {
			out = append(out, e)
		}
	}
	return out
}

// Count returns the number of live entities of a category.
func (r *Registry) Count(cat Category) int {
	n := 0
	for _, id := range r.live {
		if e, _ := r.Get(id); e.Category == cat {
			n++
		}
	}
	return n
}

// All returns every live entity in spawn order.
func (r *Registry) All() []*Entity {
	out := make([]*Entity, 0, len(r.live))
	for _, id := range r.live {
		e, _ := r.Get(id)
		out = append(out, e)
	}
	return out
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	return len(r.live)
}
