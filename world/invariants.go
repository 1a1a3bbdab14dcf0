package world

import (
	"errors"

	"github.com/milk9111/featherwake/ecs"
	"github.com/milk9111/featherwake/gameerr"
)

// CheckInvariants reports every violated world invariant. It is meant for
// tests and debug builds; a non-nil result is a programming defect.
func (w *World) CheckInvariants() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, gameerr.Invariantf(format, args...))
	}

	p := w.player
	if !p.Health.InBounds() {
		add("player health %v outside [0, %v]", p.Health.Current, p.Health.Max)
	}
	if !p.Energy.InBounds() {
		add("player energy %v outside [0, %v]", p.Energy.Current, p.Energy.Max)
	}
	if !p.Vulnerable() && w.now-p.HitAt() >= p.Invulnerability() {
		add("player invulnerable %dms after hit, window %dms", w.now-p.HitAt(), p.Invulnerability())
	}

	for _, e := range w.Enemies() {
		en := w.Enemy(e)
		if en.Dead() {
			add("enemy %s dead but still stored", e)
			continue
		}
		if !en.Health.InBounds() {
			add("enemy %s health %v outside [0, %v]", e, en.Health.Current, en.Health.Max)
		}
		if !en.Vulnerable() && w.now-en.HitAt() >= en.Invincibility() {
			add("enemy %s invulnerable %dms after hit, window %dms", e, w.now-en.HitAt(), en.Invincibility())
		}
	}

	for _, g := range []*ecs.Group{w.visible, w.obstacles, w.attackable, w.attacks} {
		for _, e := range g.Members() {
			if !w.reg.Alive(e) {
				add("%s holds dead handle %s", g.Name(), e)
				continue
			}
			if w.Kind(e) == KindNone {
				add("%s holds untyped handle %s", g.Name(), e)
			}
		}
	}
	if w.grid.Len() != w.obstacles.Len() {
		add("grid indexes %d boxes for %d obstacles", w.grid.Len(), w.obstacles.Len())
	}
	if len(w.killed) > 0 {
		add("%d entities marked but not swept", len(w.killed))
	}
	return errors.Join(errs...)
}

