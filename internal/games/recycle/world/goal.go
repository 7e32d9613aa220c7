package world

import (
	"fmt"

	"github.com/vovakirdan/recycle-run/internal/core"
)

// OnOverlapRecyclable collects a recyclable and unlocks the goal once the
// quota is met.
func (w *World) OnOverlapRecyclable(id EntityID) {
	if w.state.Terminal() {
		return
	}
	e, ok := w.reg.Get(id)
	if !ok || e.Category != CategoryRecyclable {
		return
	}

	w.destroy(id)
	w.state.RecyclablesCollected++
	w.state.Score = w.state.RecyclablesCollected * w.cfg.Scoring.PerItem
	w.host.PlayCue(CueCollect)
	w.host.SetScoreDisplay(w.state.RunningScore())

	w.checkUnlock()
}

// checkUnlock is the single Locked -> Unlocked edge.
func (w *World) checkUnlock() {
	if w.state.GoalState != GoalLocked || w.state.RecyclablesCollected < w.state.RecyclablesNeeded {
		return
	}
	w.state.GoalState = GoalUnlocked
	w.spawnGoal()
	w.host.PlayCue(CueUnlock)
	w.host.ShowMessage("Recycling bin unlocked! Bring it home.")
	w.log.Debug("goal unlocked", "level", w.state.Level, "collected", w.state.RecyclablesCollected)
}

func (w *World) spawnGoal() {
	size := w.cfg.World.EntitySize
	e := w.spawn(CategoryGoal, w.goalPosition(), size, size)
	e.Goal = &GoalData{State: GoalUnlocked}
}

// goalPosition picks the first sturdy static platform above the preferred
// height, else the highest sturdy one, else the configured fallback.
func (w *World) goalPosition() core.Vec {
	gc := w.cfg.Goal
	var best *Entity
	for _, p := range w.reg.ByCategory(CategoryStaticPlatform) {
		if p.W < gc.MinWidth || p.H < gc.MinHeight {
			continue
		}
		if p.Pos.Y < gc.PreferAboveY {
			best = p
			break
		}
		if best == nil || p.Pos.Y < best.Pos.Y {
			best = p
		}
	}
	if best == nil {
		w.log.Debug("no platform for the goal, using fallback")
		return core.V(gc.Fallback.X, gc.Fallback.Y)
	}
	return core.V(best.Pos.X, best.Top()-w.halfSize())
}

// OnOverlapGoal completes the level when the bin is unlocked and otherwise
// tells the player how many items are missing.
func (w *World) OnOverlapGoal() {
	if w.state.Terminal() {
		return
	}
	if w.state.GoalState == GoalLocked {
		w.host.ShowMessage(missingMessage(w.state.RecyclablesNeeded - w.state.RecyclablesCollected))
		return
	}
	w.completeLevel()
}

func missingMessage(missing int) string {
	if missing == 1 {
		return "Need 1 more recyclable!"
	}
	return fmt.Sprintf("Need %d more recyclables", missing)
}
