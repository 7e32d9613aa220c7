package world

import (
	"math"

	"github.com/vovakirdan/recycle-run/internal/config"
	"github.com/vovakirdan/recycle-run/internal/core"
)

// candidate is a position hazards may occupy.
type candidate struct {
	pos          core.Vec
	movingChance int
}

func (w *World) candidates() []candidate {
	var out []candidate
	for _, tier := range w.cfg.Hazards.Tiers {
		for _, p := range tier.Positions {
			out = append(out, candidate{pos: core.V(p.X, p.Y), movingChance: tier.MovingChance})
		}
	}
	return out
}

// zonesAround returns an exclusion rectangle around every entity of a category.
func (w *World) zonesAround(cat Category, margin float64, skip EntityID) []core.Rect {
	var zones []core.Rect
	for _, e := range w.reg.ByCategory(cat) {
		if e.ID == skip {
			continue
		}
		zones = append(zones, core.Margin(e.Pos, margin))
	}
	return zones
}

// freeOf filters candidates that fall strictly inside any zone.
func freeOf(cands []candidate, zones []core.Rect) []candidate {
	var out []candidate
next:
	for _, c := range cands {
		for _, z := range zones {
			if z.ContainsStrict(c.pos) {
				continue next
			}
		}
		out = append(out, c)
	}
	return out
}

// placeHazards spawns the level's hazards on distinct candidate positions.
func (w *World) placeHazards() {
	zones := append([]core.Rect{w.safeZone()}, w.zonesAround(CategoryRecyclable, w.cfg.Recyclables.Margin, 0)...)
	valid := freeOf(w.candidates(), zones)

	span := w.diff.HazardCount(w.state.Level)
	n := core.Clamp(w.rng.IntRange(span.Min, span.Max), 0, len(valid))
	for i := 0; i < n; i++ {
		k := w.rng.IntRange(0, len(valid)-1)
		c := valid[k]
		valid = append(valid[:k], valid[k+1:]...)
		w.spawnHazard(c)
	}
	w.log.Debug("hazards placed", "level", w.state.Level, "count", n)
}

func (w *World) spawnHazard(c candidate) *Entity {
	size := w.cfg.World.EntitySize
	kind := ChemicalBarrel
	if w.rng.PercentChance(50) {
		kind = BatteryAcid
	}

	e := w.spawn(CategoryHazard, c.pos, size, size)
	e.Hazard = &HazardData{
		Kind:        kind,
		CanRelocate: true,
		Original:    c.pos,
		StartX:      c.pos.X,
		AvoidZone:   w.safeZone(),
	}

	if w.rng.PercentChance(c.movingChance) {
		reach := float64(w.rng.IntRange(w.cfg.Hazards.Range.Min, w.cfg.Hazards.Range.Max))
		w.setPatrol(e, reach, w.hazardSpeed(kind))
	}
	return e
}

func (w *World) hazardSpeed(kind HazardKind) config.IntSpan {
	if kind == BatteryAcid {
		return w.cfg.Hazards.AcidSpeed
	}
	return w.cfg.Hazards.BarrelSpeed
}

// setPatrol makes a hazard oscillate reach units around its position.
func (w *World) setPatrol(e *Entity, reach float64, speed config.IntSpan) {
	d := e.Hazard
	d.Moving = true
	d.StartX = e.Pos.X
	d.MinX = math.Max(w.cfg.World.MinX, e.Pos.X-reach)
	d.MaxX = math.Min(w.cfg.World.MaxX, e.Pos.X+reach)
	e.Vel.X = w.signedSpeed(speed)
}

func (w *World) signedSpeed(span config.IntSpan) float64 {
	v := float64(w.rng.IntRange(span.Min, span.Max))
	if w.rng.PercentChance(50) {
		v = -v
	}
	return v
}

// eligiblePlatforms returns platforms wide enough to hold an item inside the playable band.
func (w *World) eligiblePlatforms() []*Entity {
	rc := w.cfg.Recyclables
	var out []*Entity
	for _, cat := range [...]Category{CategoryStaticPlatform, CategoryMovingPlatform} {
		for _, p := range w.reg.ByCategory(cat) {
			if p.W > rc.MinWidth && p.Pos.X > rc.MinX && p.Pos.X < rc.MaxX && p.Pos.Y < rc.MaxY {
				out = append(out, p)
			}
		}
	}
	return out
}

// placeRecyclables spawns the level quota on top of eligible platforms,
// keeping clear of hazards where the attempt budget allows.
func (w *World) placeRecyclables() {
	platforms := w.eligiblePlatforms()
	if len(platforms) == 0 {
		w.log.Warn("no platform can hold recyclables", "level", w.state.Level)
		return
	}

	rc := w.cfg.Recyclables
	size := w.cfg.World.EntitySize
	hazards := w.reg.ByCategory(CategoryHazard)

	for i := 0; i < w.state.RecyclablesNeeded; i++ {
		plat := platforms[w.rng.IntRange(0, len(platforms)-1)]
		bounds := plat.Bounds()
		lo := int(math.Ceil(bounds.Left)) + rc.Inset
		hi := int(math.Floor(bounds.Right)) - rc.Inset

		var pos core.Vec
		placed := false
		for attempt := 0; attempt < rc.Attempts; attempt++ {
			pos = core.V(float64(w.rng.IntRange(lo, hi)), plat.Top()-size/2)
			if clearOf(pos, hazards, rc.MinDistance) {
				placed = true
				break
			}
		}
		if !placed {
			w.log.Warn("recyclable placed near a hazard", "level", w.state.Level, "x", pos.X, "y", pos.Y)
		}

		e := w.spawn(CategoryRecyclable, pos, size, size)
		e.Recyclable = &RecyclableData{Kind: RecyclableKind(w.rng.IntRange(0, int(recyclableKinds)-1))}
	}
}

func clearOf(pos core.Vec, hazards []*Entity, dist float64) bool {
	for _, h := range hazards {
		if pos.Dist(h.Pos) <= dist {
			return false
		}
	}
	return true
}

// relocate moves a hazard that just hurt the player to a fresh candidate.
// With no candidate left the hazard is removed. It reports whether the
// hazard survived.
func (w *World) relocate(e *Entity) bool {
	d := e.Hazard
	zones := []core.Rect{w.safeZone()}
	zones = append(zones, w.zonesAround(CategoryRecyclable, w.cfg.Recyclables.Margin, 0)...)
	zones = append(zones, w.zonesAround(CategoryHazard, w.cfg.Hazards.Margin, e.ID)...)

	var valid []candidate
	for _, c := range freeOf(w.candidates(), zones) {
		if c.pos != d.Original {
			valid = append(valid, c)
		}
	}
	if len(valid) == 0 {
		w.log.Warn("no room to relocate hazard, removing it", "hazard", e.ID, "x", e.Pos.X, "y", e.Pos.Y)
		w.destroy(e.ID)
		return false
	}

	c := valid[w.rng.IntRange(0, len(valid)-1)]
	e.Pos = c.pos
	e.Vel = core.Vec{}
	if d.Moving {
		w.setPatrol(e, w.cfg.Hazards.Relocation.Range, w.cfg.Hazards.Relocation.Speed)
	}
	w.log.Debug("hazard relocated", "hazard", e.ID, "x", c.pos.X, "y", c.pos.Y)
	return true
}
