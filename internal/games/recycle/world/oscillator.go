package world

import (
	"math"
)

// oscillate moves every moving platform and moving hazard one tick.
func (w *World) oscillate() {
	dt := w.cfg.Physics.TickSeconds

	for _, e := range w.reg.ByCategory(CategoryMovingPlatform) {
		d := e.Platform
		e.Pos.X += e.Vel.X * dt
		bounce(e, d.MinX, d.MaxX)
	}

	for _, e := range w.reg.ByCategory(CategoryHazard) {
		d := e.Hazard
		if !d.Moving {
			continue
		}
		e.Pos.X += e.Vel.X * dt
		bounce(e, d.MinX, d.MaxX)
		w.avoid(e)
	}
}

// bounce points the velocity back into [min, max] once a bound is reached.
func bounce(e *Entity, min, max float64) {
	switch {
	case e.Pos.X <= min:
		e.Vel.X = math.Abs(e.Vel.X)
	case e.Pos.X >= max:
		e.Vel.X = -math.Abs(e.Vel.X)
	}
}

// avoid pushes a hazard whose x drifted into its avoid zone out through
// the nearer side edge and sends it away from the zone. Only the
// horizontal extent counts: a hazard patrolling a higher tier above the
// respawn point is still pushed out.
func (w *World) avoid(e *Entity) {
	zone := e.Hazard.AvoidZone
	if !zone.SpansX(e.Pos.X) {
		return
	}
	margin := w.cfg.Hazards.AvoidMargin
	if e.Pos.X-zone.Left < zone.Right-e.Pos.X {
		e.Pos.X = zone.Left - margin
		e.Vel.X = -math.Abs(e.Vel.X)
	} else {
		e.Pos.X = zone.Right + margin
		e.Vel.X = math.Abs(e.Vel.X)
	}
}
