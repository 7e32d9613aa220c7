package world

import (
	"fmt"
	"math"

	"github.com/vovakirdan/recycle-run/internal/config"
	"github.com/vovakirdan/recycle-run/internal/core"
)

// OnAcknowledgeCompletion moves on from a completed level: either the
// campaign is won or the next, harder level is built.
func (w *World) OnAcknowledgeCompletion() {
	if !w.state.IsLevelComplete {
		return
	}
	w.state.Level++
	w.state.IsLevelComplete = false

	if w.diff.IsVictory(w.state.Level) {
		w.state.IsWon = true
		w.player.Vel = core.Vec{}
		w.host.PlayCue(CueVictory)
		w.host.ShowMessage(fmt.Sprintf("Congratulations! All %d levels recycled. Final Score: %d",
			w.diff.WinLevel(), w.state.TotalScore))
		w.log.Info("campaign won", "score", w.state.TotalScore)
		return
	}

	w.applyPending()

	s := &w.state
	s.RecyclablesNeeded = w.diff.Quota(s.Level)
	s.PlayerSpeed += w.diff.SpeedStep()
	s.JumpPower += w.diff.JumpStep()
	s.RecyclablesCollected = 0
	s.Score = 0
	s.GoalState = GoalLocked
	s.IsGameOver = false

	w.teardown()
	w.buildLevel()
	w.host.ShowMessage(levelBanner(w.state))
	w.log.Info("level started", "level", s.Level, "quota", s.RecyclablesNeeded)
}

// applyPending swaps in a reloaded configuration between levels.
// The static layout was built once and stays.
func (w *World) applyPending() {
	if w.pending == nil {
		return
	}
	w.cfg = *w.pending
	w.pending = nil
	w.diff = config.NewDifficultyManager(w.cfg.Difficulty)
	w.log.Info("configuration reloaded", "level", w.state.Level)
}

// teardown removes everything a level build creates.
func (w *World) teardown() {
	w.destroyAll(CategoryRecyclable)
	w.destroyAll(CategoryHazard)
	w.destroyAll(CategoryGoal)
	w.destroyAll(CategoryMovingPlatform)
	w.queue = w.queue[:0]
}

// buildLevel creates moving platforms, places the player, hazards and
// recyclables, in that order.
func (w *World) buildLevel() {
	w.spawnMovers()
	w.respawn()
	w.placeHazards()
	w.placeRecyclables()
	w.checkUnlock()

	w.host.SetLifeDisplay(w.state.Lives)
	w.host.SetScoreDisplay(w.state.RunningScore())
	w.host.CenterCamera(w.cfg.World.Width/2, w.cfg.World.Height/2)
}

func (w *World) spawnMovers() {
	mc := w.cfg.Movers
	for _, p := range w.cfg.Platforms {
		if !p.Moving {
			continue
		}
		e := w.spawn(CategoryMovingPlatform, core.V(p.X, p.Y), p.W, p.H)
		e.Platform = &PlatformData{
			Moving: true,
			StartX: p.X,
			MinX:   math.Max(w.cfg.World.MinX, p.X-mc.Range),
			MaxX:   math.Min(w.cfg.World.MaxX, p.X+mc.Range),
		}
		e.Vel.X = w.signedSpeed(mc.Speed)
	}
}

func levelBanner(s LevelState) string {
	return fmt.Sprintf("Level %d! Collect %d recyclables", s.Level, s.RecyclablesNeeded)
}
