package world

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/featherwake/common"
	"github.com/milk9111/featherwake/content"
	"github.com/milk9111/featherwake/ecs"
)

// striker is the attack side of a collision: a weapon swing or a harmful
// particle.
type striker interface {
	Strike(target uint64) bool
}

// resolveAttacks tests each live attack hitbox once against the attackable
// set. Grass is cut; enemies take damage. Each spawn damages a target at most
// once.
func (w *World) resolveAttacks() {
	targets := sorted(w.attackable.Members())
	for _, a := range sorted(w.attacks.Members()) {
		if w.isDead(a) {
			continue
		}
		box, dmg, s, ok := w.attackInfo(a)
		if !ok {
			continue
		}
		w.stats.AttackChecks++

		for _, t := range targets {
			if w.isDead(t) {
				continue
			}
			rect, ok := w.targetRect(t)
			if !ok || !box.Intersects(rect) {
				continue
			}
			if !s.Strike(uint64(t)) {
				continue
			}
			w.hit(t, rect, dmg)
		}
	}
}

func (w *World) attackInfo(a ecs.Entity) (common.Rect, float64, striker, bool) {
	switch w.Kind(a) {
	case KindWeapon:
		wp := w.Weapon(a)
		if wp == nil {
			return common.Rect{}, 0, nil, false
		}
		// A swing spawned during this frame's player update missed the
		// visible pass and still sits where the player started.
		wp.Follow(w.player.Center(), w.player.Facing())
		return wp.Rect, w.player.DamageWith(wp.Kind), wp, true
	case KindParticle:
		p := w.Particle(a)
		if p == nil {
			return common.Rect{}, 0, nil, false
		}
		return p.Rect, p.Damage, p, true
	default:
		return common.Rect{}, 0, nil, false
	}
}

func (w *World) targetRect(t ecs.Entity) (common.Rect, bool) {
	switch w.Kind(t) {
	case KindTile:
		tile, ok := w.tiles.Get(t)
		return tile.Body.Rect, ok
	case KindEnemy:
		en := w.Enemy(t)
		if en == nil {
			return common.Rect{}, false
		}
		return en.Body.Rect, true
	default:
		return common.Rect{}, false
	}
}

func (w *World) hit(t ecs.Entity, rect common.Rect, dmg float64) {
	switch w.Kind(t) {
	case KindTile:
		w.caster.Leaves(rect.Center())
		w.metrics.GrassCut()
		w.kill(t)
	case KindEnemy:
		if w.Enemy(t).ApplyDamage(dmg, w.player.Center(), w.now) {
			w.metrics.EnemyDamaged(dmg)
		}
	}
}

// damagePlayer applies an enemy strike behind the player's own vulnerability
// gate and shows the attack's particle on the player.
func (w *World) damagePlayer(amount float64, attackKind string) {
	if !w.player.Damage(amount, w.now) {
		return
	}
	w.metrics.PlayerDamaged(amount)
	w.Spawn(attackKind, w.player.Center(), 0)
	if w.player.Defeated() {
		w.log.Info("player defeated")
	}
}

func (w *World) enemyDied(e ecs.Entity, pos cp.Vector, species content.Species) {
	effectClip := w.table.Enemy(species).DeathEffect
	if en := w.Enemy(e); en != nil {
		effectClip = en.Template().DeathEffect
	}
	w.Spawn(effectClip, pos, 0)
	w.metrics.EnemyKilled(species.String())
	w.log.Debug("enemy died", "entity", e.String(), "species", species.String())
	w.kill(e)
}
