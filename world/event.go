package world

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/featherwake/ecs"
)

type eventState struct {
	mural ecs.Entity
	fired bool
}

// EventFired reports whether the one-shot world event has run.
func (w *World) EventFired() bool { return w.event.fired }

// Mural is the handle of the event's scenery sprite.
func (w *World) Mural() ecs.Entity { return w.event.mural }

// checkEvent swaps the mural once the configured time has passed since the
// world was built.
func (w *World) checkEvent() {
	if w.event.fired || w.now-w.start < w.cfg.Event.After.Milliseconds() {
		return
	}
	w.event.fired = true

	at := cp.Vector{X: w.cfg.Event.X, Y: w.cfg.Event.Y}
	if old, ok := w.scenery.Get(w.event.mural); ok {
		at = cp.Vector{X: old.Rect.X, Y: old.Rect.Y}
		w.kill(w.event.mural)
	}
	e, err := w.spawnScenery(w.cfg.Event.To, at)
	if err != nil {
		w.fail(err)
		return
	}
	w.event.mural = e
	w.log.Info("world event fired", "at_ms", w.now-w.start, "clip", w.cfg.Event.To)
}
