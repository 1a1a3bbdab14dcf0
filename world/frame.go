package world

import (
	"time"

	"github.com/milk9111/featherwake/actor"
)

// Update advances one frame: every visible entity updates, enemies think,
// attacks resolve, the world event is checked, and killed entities are swept.
// It returns the first asset failure raised while spawning effects.
func (w *World) Update(in actor.Input) error {
	started := time.Now()
	w.now = w.clock.Ticks()
	w.stats = FrameStats{}

	w.updateVisible(in)
	w.think()
	w.resolveAttacks()
	w.checkEvent()
	w.stats.Removed = w.sweep()

	w.metrics.ObserveFrame(time.Since(started))

	err := w.err
	w.err = nil
	return err
}

func (w *World) updateVisible(in actor.Input) {
	for _, e := range sorted(w.visible.Members()) {
		if w.isDead(e) {
			continue
		}
		switch w.Kind(e) {
		case KindPlayer:
			w.player.Update(in, w.now, w.grid)
		case KindEnemy:
			w.Enemy(e).Update(w.now, w.grid)
		case KindWeapon:
			w.Weapon(e).Follow(w.player.Center(), w.player.Facing())
		case KindParticle:
			if w.Particle(e).Update() {
				w.kill(e)
			}
		default:
			continue
		}
		w.stats.Updated++
	}
}

func (w *World) think() {
	target := w.player.Center()
	for _, e := range w.Enemies() {
		if w.isDead(e) {
			continue
		}
		w.Enemy(e).Think(target)
	}
}
