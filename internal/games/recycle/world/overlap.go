package world

// overlapEvent records that the player touched an entity during a tick.
type overlapEvent struct {
	cat Category
	id  EntityID
}

// detectOverlaps queues an event for every hazard, recyclable and goal the
// player box intersects, hazards first.
func (w *World) detectOverlaps() {
	if w.state.Terminal() {
		return
	}
	box := w.player.Bounds()
	for _, cat := range [...]Category{CategoryHazard, CategoryRecyclable, CategoryGoal} {
		for _, e := range w.reg.ByCategory(cat) {
			if box.Intersects(e.Bounds()) {
				w.queue = append(w.queue, overlapEvent{cat: cat, id: e.ID})
			}
		}
	}
}

// dispatch drains the queue. Each handler runs to completion before the
// next event is looked at; events whose overlap an earlier handler undid
// (the player respawned, the entity is gone) are dropped.
func (w *World) dispatch() {
	for len(w.queue) > 0 {
		ev := w.queue[0]
		w.queue = w.queue[1:]

		e, ok := w.reg.Get(ev.id)
		if !ok || !w.player.Bounds().Intersects(e.Bounds()) {
			continue
		}

		switch ev.cat {
		case CategoryHazard:
			w.OnOverlapHazard(ev.id)
		case CategoryRecyclable:
			w.OnOverlapRecyclable(ev.id)
		case CategoryGoal:
			w.OnOverlapGoal()
		}
	}
	w.queue = w.queue[:0]
}
