package world

import (
	"testing"

	"github.com/vovakirdan/recycle-run/internal/core"
)

func TestBounceReversesAtBounds(t *testing.T) {
	tests := []struct {
		name  string
		x, vx float64
		want  float64
	}{
		{"past max moving out", 71, 20, -20},
		{"at max", 70, 20, -20},
		{"past min moving out", 29, -20, 20},
		{"past max already returning", 71, -20, -20},
		{"inside", 50, 20, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := &Entity{Pos: core.V(tc.x, 0), Vel: core.V(tc.vx, 0)}
			bounce(e, 30, 70)
			if e.Vel.X != tc.want {
				t.Errorf("vx = %v, expected %v", e.Vel.X, tc.want)
			}
		})
	}
}

func TestMoversStayWithinBounds(t *testing.T) {
	w, _ := newTestWorld(t, 3)
	quiet(w)
	dt := w.cfg.Physics.TickSeconds

	movers := w.reg.ByCategory(CategoryMovingPlatform)
	if len(movers) != 3 {
		t.Fatalf("got %d moving platforms, expected 3", len(movers))
	}
	for i := 0; i < 2000; i++ {
		w.oscillate()
		for _, m := range movers {
			slack := abs(m.Vel.X) * dt
			if m.Pos.X < m.Platform.MinX-slack || m.Pos.X > m.Platform.MaxX+slack {
				t.Fatalf("tick %d: mover at %v left [%v, %v]", i, m.Pos.X, m.Platform.MinX, m.Platform.MaxX)
			}
		}
	}
}

func TestMoverBoundsClampToWorld(t *testing.T) {
	w, _ := newTestWorld(t, 1)
	for _, m := range w.reg.ByCategory(CategoryMovingPlatform) {
		if m.Platform.MinX < w.cfg.World.MinX || m.Platform.MaxX > w.cfg.World.MaxX {
			t.Errorf("mover bounds [%v, %v] exceed world clamp", m.Platform.MinX, m.Platform.MaxX)
		}
		speed := abs(m.Vel.X)
		if speed < float64(w.cfg.Movers.Speed.Min) || speed > float64(w.cfg.Movers.Speed.Max) {
			t.Errorf("mover speed %v outside configured range", speed)
		}
	}
}

func TestHazardAvoidZone(t *testing.T) {
	w, _ := newTestWorld(t, 1)
	quiet(w)
	margin := w.cfg.Hazards.AvoidMargin

	tests := []struct {
		name   string
		x, vx  float64
		wantX  float64
		wantVX float64
	}{
		{"near left edge", 60, 30, 45 - margin, -30},
		{"near right edge", 100, -30, 115 + margin, 30},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := addHazard(w, core.V(tc.x, 115))
			h.Vel.X = tc.vx

			w.avoid(h)

			if h.Pos.X != tc.wantX || h.Vel.X != tc.wantVX {
				t.Errorf("pos/vel = %v/%v, expected %v/%v", h.Pos.X, h.Vel.X, tc.wantX, tc.wantVX)
			}
		})
	}
}

func TestHazardAboveAvoidZoneIsPushedOut(t *testing.T) {
	w, _ := newTestWorld(t, 1)
	quiet(w)
	margin := w.cfg.Hazards.AvoidMargin

	h := addHazard(w, core.V(80, 95))
	h.Vel.X = 30
	w.avoid(h)

	if h.Pos.X != 115+margin || h.Vel.X != 30 {
		t.Errorf("pos/vel = %v/%v, expected %v/30", h.Pos.X, h.Vel.X, 115+margin)
	}
	if h.Pos.Y != 95 {
		t.Errorf("y = %v, the push is horizontal only", h.Pos.Y)
	}
}

func TestHazardBesideAvoidZoneIsLeftAlone(t *testing.T) {
	w, _ := newTestWorld(t, 1)
	quiet(w)

	h := addHazard(w, core.V(30, 95))
	h.Vel.X = 30
	w.avoid(h)

	if h.Pos.X != 30 || h.Vel.X != 30 {
		t.Error("hazard left of the zone must not be pushed")
	}
}

func TestMovingHazardNeverRestsInSafeZone(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		w, _ := newTestWorld(t, seed)
		zone := w.safeZone()
		for i := 0; i < 600; i++ {
			w.oscillate()
			for _, h := range w.reg.ByCategory(CategoryHazard) {
				if h.Hazard.Moving && zone.SpansX(h.Pos.X) {
					t.Fatalf("seed %d tick %d: moving hazard %v over safe zone at %v", seed, i, h.ID, h.Pos)
				}
				if zone.ContainsStrict(h.Pos) {
					t.Fatalf("seed %d tick %d: hazard %v inside safe zone at %v", seed, i, h.ID, h.Pos)
				}
			}
		}
	}
}

func TestMidTierMoverKeepsRespawnClear(t *testing.T) {
	w, _ := newTestWorld(t, 1)
	quiet(w)
	zone := w.safeZone()

	h := addHazard(w, core.V(50, 105))
	h.Hazard.Moving = true
	h.Hazard.MinX, h.Hazard.MaxX = 20, 85
	h.Vel.X = 30

	w.respawn()
	for i := 0; i < 200; i++ {
		w.oscillate()
		if zone.SpansX(h.Pos.X) {
			t.Fatalf("tick %d: hazard at x=%v patrols over the safe zone", i, h.Pos.X)
		}
		if w.player.Bounds().Intersects(h.Bounds()) {
			t.Fatalf("tick %d: hazard at %v overlaps the respawned player at %v", i, h.Pos, w.player.Pos)
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
