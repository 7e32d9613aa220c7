package world

import (
	"fmt"

	"github.com/vovakirdan/recycle-run/internal/core"
)

// OnOverlapHazard hurts the player, then moves the hazard elsewhere
// (or removes it when it cannot relocate).
func (w *World) OnOverlapHazard(id EntityID) {
	if w.state.Terminal() {
		return
	}
	e, ok := w.reg.Get(id)
	if !ok || e.Category != CategoryHazard {
		return
	}

	w.log.Debug("hit by hazard", "hazard", id, "kind", e.Hazard.Kind)
	if e.Hazard.CanRelocate {
		w.relocate(e)
	} else {
		w.destroy(id)
	}
	w.damage()
}

// checkBounds costs a life when the player leaves the playfield, once per tick.
func (w *World) checkBounds() {
	if w.damaged || w.state.Terminal() {
		return
	}
	wc := w.cfg.World
	p := w.player.Pos
	if p.Y > wc.FallLimit || p.X < wc.LeftLimit || p.X > wc.RightLimit {
		w.damaged = true
		w.log.Debug("player left the playfield", "x", p.X, "y", p.Y)
		w.damage()
	}
}

// damage takes one life, respawns the player and ends the run at zero lives.
func (w *World) damage() {
	w.state.Lives = max(0, w.state.Lives-1)
	w.host.PlayCue(CueHurt)
	w.host.SetLifeDisplay(w.state.Lives)
	w.respawn()

	if w.state.Lives <= 0 {
		w.gameOver()
	}
}

// respawn puts the player on top of the first wide low static platform.
func (w *World) respawn() {
	rule := w.cfg.Player.Respawn
	pos := core.V(rule.Fallback.X, rule.Fallback.Y)
	found := false
	for _, p := range w.reg.ByCategory(CategoryStaticPlatform) {
		if p.W > rule.MinWidth && p.Pos.Y > rule.MinY {
			pos = core.V(p.Pos.X, p.Top()-w.player.H/2)
			found = true
			break
		}
	}
	if !found {
		w.log.Debug("no respawn platform, using fallback", "x", pos.X, "y", pos.Y)
	}

	w.player.Pos = pos
	w.player.Vel = core.Vec{}
	w.ps = PlayerState{
		Grounded:        true,
		JumpForgiveness: w.cfg.Physics.ForgivenessTicks,
	}
}

func (w *World) gameOver() {
	if w.state.IsGameOver {
		return
	}
	w.state.IsGameOver = true
	w.player.Vel = core.Vec{}
	w.host.PlayCue(CueGameOver)
	w.host.ShowMessage(fmt.Sprintf("Game Over! Final Score: %d, Items Recycled: %d",
		w.state.RunningScore(), w.state.RecyclablesCollected))
	w.log.Info("game over", "level", w.state.Level, "score", w.state.RunningScore())
}

// completeLevel banks the level score and bonus, then waits for acknowledgement.
func (w *World) completeLevel() {
	if w.state.Terminal() {
		return
	}
	w.state.IsLevelComplete = true

	sc := w.cfg.Scoring
	bonus := w.state.Lives*sc.LifeBonus + w.state.Level*sc.LevelBonus
	hazardFree := w.reg.Count(CategoryHazard) == 0
	if hazardFree {
		bonus += sc.ClearBonus
	}
	w.state.LastBonus = bonus
	w.state.TotalScore += w.state.Score + bonus

	w.host.PlayCue(CueLevelUp)
	w.host.SetScoreDisplay(w.state.TotalScore)
	w.host.ShowMessage(w.completionSummary(hazardFree))
	w.log.Info("level complete", "level", w.state.Level, "bonus", bonus, "total", w.state.TotalScore)
}

func (w *World) completionSummary(hazardFree bool) string {
	s := w.state
	msg := fmt.Sprintf("Level %d Complete! Recycled %d/%d, Score %d, Bonus %d",
		s.Level, s.RecyclablesCollected, s.RecyclablesNeeded, s.Score, s.LastBonus)
	if hazardFree {
		msg += " (hazard clear)"
	}
	return msg + fmt.Sprintf(", Total %d. Press jump to continue", s.TotalScore)
}
