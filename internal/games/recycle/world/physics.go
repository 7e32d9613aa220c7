package world

import (
	"math"

	"github.com/vovakirdan/recycle-run/internal/config"
	"github.com/vovakirdan/recycle-run/internal/core"
)

// integratePlayer applies gravity, moves the player and resolves landings.
func (w *World) integratePlayer() {
	phys := w.cfg.Physics
	dt := phys.TickSeconds
	p := w.player
	wasGrounded := w.ps.Grounded

	// Airborne ticks use up the jump window.
	if phys.Forgiveness == config.ForgivenessDecay && !w.ps.Grounded && w.ps.JumpForgiveness > 0 {
		w.ps.JumpForgiveness--
	}

	p.Vel.Y += phys.Gravity * dt
	p.Pos.X += p.Vel.X * dt
	p.Pos.Y += p.Vel.Y * dt

	if w.land() {
		w.ride()
		return
	}
	if wasGrounded {
		// Walked off a ledge.
		w.ps.Grounded = false
		w.ps.CurrentPlatform = 0
		w.ps.JumpForgiveness = phys.ForgivenessTicks
	}
}

// land snaps the player onto the first platform it is falling onto.
func (w *World) land() bool {
	p := w.player
	if p.Vel.Y < 0 {
		return false
	}
	box := p.Bounds()
	for _, cat := range [...]Category{CategoryStaticPlatform, CategoryMovingPlatform} {
		for _, plat := range w.reg.ByCategory(cat) {
			if !box.Intersects(plat.Bounds()) {
				continue
			}
			if math.Abs(p.Bottom()-plat.Top()) >= w.cfg.Physics.LandingTolerance {
				continue
			}
			p.Pos.Y = plat.Top() - p.H/2
			p.Vel.Y = 0
			w.ps.Grounded = true
			w.ps.CurrentPlatform = plat.ID
			w.ps.JumpForgiveness = w.cfg.Physics.ForgivenessTicks
			return true
		}
	}
	return false
}

// ride carries a grounded player along with a moving platform.
func (w *World) ride() {
	if !w.ps.CurrentPlatform.Valid() {
		return
	}
	plat, ok := w.reg.Get(w.ps.CurrentPlatform)
	if !ok {
		w.ps.CurrentPlatform = 0
		return
	}
	if plat.Platform != nil && plat.Platform.Moving {
		w.player.Pos.X += w.cfg.Physics.RiderFactor * plat.Vel.X
	}
}

// OnJumpInput launches the player if it stands on a platform or is still
// inside the jump window. It reports whether the jump happened.
func (w *World) OnJumpInput() bool {
	if w.state.Terminal() {
		return false
	}
	if !w.ps.Grounded && w.ps.JumpForgiveness <= 0 {
		return false
	}
	w.player.Vel.Y = -w.state.JumpPower
	w.ps.Grounded = false
	w.ps.CurrentPlatform = 0
	w.ps.JumpForgiveness = 0
	w.host.PlayCue(CueJump)
	return true
}

// OnMoveInput sets horizontal velocity from a direction; zero stops.
func (w *World) OnMoveInput(dir int) {
	if w.state.Terminal() {
		return
	}
	w.player.Vel.X = float64(core.Sign(dir)) * w.state.PlayerSpeed
}
