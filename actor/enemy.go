package actor

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/featherwake/ai"
	"github.com/milk9111/featherwake/common"
	"github.com/milk9111/featherwake/component"
	"github.com/milk9111/featherwake/content"
	"github.com/milk9111/featherwake/physics"
)

const EnemyHitboxInflate = -10

// EnemyHooks report enemy actions to the world.
type EnemyHooks struct {
	DamagePlayer func(amount float64, attackKind string)
	Death        func(pos cp.Vector, species content.Species)
}

// StatusFrames holds clip lengths indexed by ai.Status.
type StatusFrames [3]int

type Enemy struct {
	Body   physics.Body
	Anim   component.Animator
	Health component.Pool

	species content.Species
	tmpl    content.SpeciesTemplate
	frames  StatusFrames

	status   ai.Status
	struck   bool
	attackCD component.Cooldown

	vuln      component.Vulnerability
	knockback cp.Vector
	dead      bool

	hooks EnemyHooks
}

func NewEnemy(species content.Species, tmpl content.SpeciesTemplate, rect common.Rect, frames StatusFrames, hooks EnemyHooks) *Enemy {
	return &Enemy{
		Body:     physics.NewBody(rect, 0, EnemyHitboxInflate),
		Anim:     component.NewAnimator(component.DefaultAnimationSpeed),
		Health:   component.NewPool(tmpl.Health, 1),
		species:  species,
		tmpl:     tmpl,
		frames:   frames,
		status:   ai.Idle,
		attackCD: component.NewCooldown(tmpl.AttackCooldown),
		vuln:     component.NewVulnerability(tmpl.Invincibility),
		hooks:    hooks,
	}
}

// Think is the AI pass: pick a status from the distance to the player and
// steer accordingly. Entering Attack restarts the clip and strikes once; the
// next strike waits for the clip to finish and the cooldown to elapse.
func (e *Enemy) Think(player cp.Vector) {
	if e.dead {
		return
	}
	dist, toward := ai.Sense(e.Body.Center(), player)
	next := ai.Select(dist, e.tmpl.AttackRadius, e.tmpl.NoticeRadius, e.attackCD.Ready())
	if next == ai.Attack && e.status != ai.Attack {
		e.Anim.Reset()
		e.struck = false
	}
	e.status = next

	if next == ai.Attack && !e.struck {
		e.struck = true
		if e.hooks.DamagePlayer != nil {
			e.hooks.DamagePlayer(e.tmpl.Damage, e.tmpl.AttackKind)
		}
	}
	e.Body.Direction = ai.Steer(next, toward)
}

// Update moves, animates and polls timers. While invulnerable the enemy is
// pushed along its knockback direction at its resistance speed.
func (e *Enemy) Update(now int64, obstacles physics.Obstacles) {
	if e.dead {
		return
	}
	if !e.vuln.Vulnerable() {
		e.Body.Direction = e.knockback
		e.Body.Move(e.tmpl.Resistance, obstacles)
	} else {
		e.Body.Move(e.tmpl.Speed, obstacles)
	}

	if e.Anim.Advance(e.frames[e.status]) && e.status == ai.Attack {
		e.attackCD.Start(now)
	}

	e.attackCD.Tick(now)
	e.vuln.Tick(now)
	e.checkDeath()
}

// ApplyDamage deducts amount when the enemy is vulnerable and points its
// knockback away from source. Health is not clamped, so overkill shows as a
// negative value. It reports whether the hit landed.
func (e *Enemy) ApplyDamage(amount float64, source cp.Vector, now int64) bool {
	if e.dead || !e.vuln.Hit(now) {
		return false
	}
	_, toward := ai.Sense(e.Body.Center(), source)
	e.knockback = toward.Neg()
	e.Health.Deduct(amount)
	e.checkDeath()
	return true
}

func (e *Enemy) checkDeath() {
	if e.dead || e.Health.Current > 0 {
		return
	}
	e.dead = true
	if e.hooks.Death != nil {
		e.hooks.Death(e.Body.Center(), e.species)
	}
}

func (e *Enemy) Center() cp.Vector { return e.Body.Center() }

func (e *Enemy) Dead() bool { return e.dead }

func (e *Enemy) Species() content.Species { return e.species }

func (e *Enemy) Template() content.SpeciesTemplate { return e.tmpl }

func (e *Enemy) Status() ai.Status { return e.status }

func (e *Enemy) CanAttack() bool { return e.attackCD.Ready() }

func (e *Enemy) Vulnerable() bool { return e.vuln.Vulnerable() }

func (e *Enemy) HitAt() int64 { return e.vuln.HitAt() }

func (e *Enemy) Invincibility() int64 { return e.vuln.Window }

func (e *Enemy) Knockback() cp.Vector { return e.knockback }

func (e *Enemy) Clip() string {
	return EnemyClip(e.species, e.status)
}

func (e *Enemy) Frame() int {
	return e.Anim.Frame(e.frames[e.status])
}

func (e *Enemy) Alpha(now int64) uint8 {
	return component.FlashAlpha(now, e.vuln.Vulnerable())
}

// EnemyClip names the clip for a species in a status, e.g. "squid_attack".
func EnemyClip(s content.Species, status ai.Status) string {
	return s.String() + "_" + status.String()
}
