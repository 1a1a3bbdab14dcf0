package world

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/featherwake/actor"
	"github.com/milk9111/featherwake/ai"
	"github.com/milk9111/featherwake/common"
	"github.com/milk9111/featherwake/content"
	"github.com/milk9111/featherwake/ecs"
	"github.com/milk9111/featherwake/effect"
)

func (w *World) spawnPlayer(at cp.Vector) error {
	clip, err := w.cache.Get(actor.PlayerClip(actor.FacingDown))
	if err != nil {
		return err
	}
	f := clip.At(0)
	rect := common.RectAt(at.X, at.Y, float64(f.W), float64(f.H))

	e := w.create(KindPlayer)
	w.player = actor.NewPlayer(rect, w.table, clip.Len(), actor.PlayerHooks{
		CreateAttack:  w.createAttack,
		DestroyAttack: w.destroyAttack,
		CastSpell:     w.castSpell,
	})
	w.playerID = e
	w.visible.Add(e)
	return nil
}

func (w *World) spawnEnemy(species content.Species, at cp.Vector) (ecs.Entity, error) {
	var frames actor.StatusFrames
	for _, st := range []ai.Status{ai.Idle, ai.Move, ai.Attack} {
		clip, err := w.cache.Get(actor.EnemyClip(species, st))
		if err != nil {
			return 0, err
		}
		frames[st] = clip.Len()
	}
	idle, _ := w.cache.Get(actor.EnemyClip(species, ai.Idle))
	f := idle.At(0)
	rect := common.RectAt(at.X, at.Y, float64(f.W), float64(f.H))

	e := w.create(KindEnemy)
	tmpl := w.table.Enemy(species)
	en := actor.NewEnemy(species, tmpl, rect, frames, actor.EnemyHooks{
		DamagePlayer: w.damagePlayer,
		Death: func(pos cp.Vector, s content.Species) {
			w.enemyDied(e, pos, s)
		},
	})
	w.enemies.Set(e, en)
	w.visible.Add(e)
	w.attackable.Add(e)
	return e, nil
}

func (w *World) spawnScenery(clipName string, topLeft cp.Vector) (ecs.Entity, error) {
	clip, err := w.cache.Get(clipName)
	if err != nil {
		return 0, err
	}
	f := clip.At(0)
	e := w.create(KindScenery)
	w.scenery.Set(e, Scenery{
		Rect: common.RectAt(topLeft.X, topLeft.Y, float64(f.W), float64(f.H)),
		Clip: clip.Name,
	})
	w.visible.Add(e)
	return e, nil
}

// Spawn places a particle centered on at. A positive damage makes it an
// attack hitbox as well. Clip failures are kept and returned from Update.
func (w *World) Spawn(clipName string, at cp.Vector, damage float64) {
	clip, err := w.cache.Get(clipName)
	if err != nil {
		w.fail(err)
		return
	}
	p := effect.NewParticle(clip, at)
	p.Damage = damage

	e := w.create(KindParticle)
	w.particles.Set(e, p)
	w.visible.Add(e)
	if p.Harmful() {
		w.attacks.Add(e)
	}
}

func (w *World) createAttack() {
	if w.attack.Valid() {
		w.kill(w.attack)
	}
	kind := w.player.Weapon()
	clip, err := w.cache.Get(effect.WeaponClip(kind))
	if err != nil {
		w.fail(err)
		return
	}
	e := w.create(KindWeapon)
	w.weapons.Set(e, effect.NewWeapon(kind, clip, w.player.Center(), w.player.Facing()))
	w.visible.Add(e)
	w.attacks.Add(e)
	w.attack = e
}

func (w *World) destroyAttack() {
	if w.attack.Valid() {
		w.kill(w.attack)
	}
	w.attack = 0
}

func (w *World) castSpell(spell content.SpellKind, strength, cost float64) {
	if w.caster.Cast(spell, w.player, strength, cost) {
		w.metrics.SpellCast(spell.String())
		w.log.Debug("spell cast", "spell", spell.String(), "strength", strength, "cost", cost)
	}
}

// kill marks e for removal at the end of the frame. Marked entities are
// skipped by every later pass.
func (w *World) kill(e ecs.Entity) {
	if !w.reg.Alive(e) || w.dead[e] {
		return
	}
	w.dead[e] = true
	w.killed = append(w.killed, e)
}

func (w *World) isDead(e ecs.Entity) bool {
	return w.dead[e] || !w.reg.Alive(e)
}

// sweep removes every marked entity from all sets and frees its handle.
func (w *World) sweep() int {
	n := len(w.killed)
	for _, e := range w.killed {
		w.visible.Remove(e)
		w.obstacles.Remove(e)
		w.attackable.Remove(e)
		w.attacks.Remove(e)
		w.grid.Remove(uint64(e))

		w.kinds.Remove(e)
		w.tiles.Remove(e)
		w.enemies.Remove(e)
		w.weapons.Remove(e)
		w.particles.Remove(e)
		w.scenery.Remove(e)

		if e == w.attack {
			w.attack = 0
		}
		w.reg.Destroy(e)
		delete(w.dead, e)
	}
	w.killed = w.killed[:0]
	return n
}

func (w *World) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}
