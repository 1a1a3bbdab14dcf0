package effect

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/featherwake/content"
)

// FlameBursts is the number of fire particles one flame cast emits.
const FlameBursts = 5

// HealLift raises the heal effect above the caster's center.
const HealLift = 60

// Target is the caster-facing view of an actor.
type Target interface {
	SpendEnergy(cost float64) bool
	RestoreHealth(amount float64)
	Center() cp.Vector
	FacingVector() cp.Vector
}

// Spawner creates effects in the world. Damage above zero makes the particle
// an attack hitbox.
type Spawner interface {
	Spawn(clip string, at cp.Vector, damage float64)
}

// Caster performs spells on behalf of a target.
type Caster struct {
	spawner Spawner
	roller  Roller
	tile    float64
}

func NewCaster(spawner Spawner, roller Roller, tile float64) *Caster {
	if roller == nil {
		roller = DefaultRoller
	}
	return &Caster{spawner: spawner, roller: roller, tile: tile}
}

// Cast dispatches a spell. strength is already combined with the caster's
// magic stat; for flame it is the damage per particle.
func (c *Caster) Cast(spell content.SpellKind, t Target, strength, cost float64) bool {
	switch spell {
	case content.Heal:
		return c.Heal(t, strength, cost)
	case content.Flame:
		return c.Flame(t, cost, strength)
	default:
		return false
	}
}

// Heal spends cost and restores strength health, spawning an aura at the
// target and a heal effect above it. Insufficient energy is a no-op.
func (c *Caster) Heal(t Target, strength, cost float64) bool {
	if !t.SpendEnergy(cost) {
		return false
	}
	t.RestoreHealth(strength)
	center := t.Center()
	c.spawner.Spawn(ClipAura, center, 0)
	c.spawner.Spawn(ClipHeal, center.Add(cp.Vector{Y: -HealLift}), 0)
	return true
}

// Flame spends cost and emits bursts one tile apart along the target's
// facing, each jittered on the perpendicular axis by up to a third of a tile.
func (c *Caster) Flame(t Target, cost, damage float64) bool {
	if !t.SpendEnergy(cost) {
		return false
	}
	dir := t.FacingVector()
	perp := cp.Vector{X: -dir.Y, Y: dir.X}
	center := t.Center()
	spread := int(c.tile / 3)
	for i := 1; i <= FlameBursts; i++ {
		jitter := float64(Between(c.roller, -spread, spread))
		at := center.Add(dir.Mult(float64(i) * c.tile)).Add(perp.Mult(jitter))
		c.spawner.Spawn(ClipFlame, at, damage)
	}
	return true
}

// Leaves spawns 3 to 6 leaf particles one tile above a cut grass tile's center
// and returns how many it spawned.
func (c *Caster) Leaves(center cp.Vector) int {
	n := Between(c.roller, 3, 6)
	at := center.Add(cp.Vector{Y: -c.tile})
	for i := 0; i < n; i++ {
		clip := LeafClips[Between(c.roller, 0, len(LeafClips)-1)]
		c.spawner.Spawn(clip, at, 0)
	}
	return n
}
