package actor

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/featherwake/common"
	"github.com/milk9111/featherwake/component"
	"github.com/milk9111/featherwake/content"
	"github.com/milk9111/featherwake/physics"
)

// PlayerHitboxInflate shrinks the player's hitbox vertically.
const PlayerHitboxInflate = -26

// Input is one frame of player intent. The renderer fills it from the
// keyboard; tests fill it directly.
type Input struct {
	Up, Down, Left, Right bool

	Attack       bool
	Cast         bool
	SwitchWeapon bool
	SwitchSpell  bool
}

// PlayerHooks let the world react to player actions without the player
// knowing about world sets.
type PlayerHooks struct {
	CreateAttack  func()
	DestroyAttack func()
	CastSpell     func(spell content.SpellKind, strength, cost float64)
}

type Player struct {
	Body   physics.Body
	Anim   component.Animator
	Health component.Pool
	Energy component.Pool

	stats  content.PlayerTemplate
	table  *content.Table
	frames int

	vuln   component.Vulnerability
	facing Facing

	weapon content.WeaponKind
	spell  content.SpellKind

	attack       component.Cooldown
	weaponSwitch component.Cooldown
	spellSwitch  component.Cooldown

	hooks PlayerHooks
}

// NewPlayer places a player with its visual rect at rect. frames is the
// length of each facing's walk clip.
func NewPlayer(rect common.Rect, table *content.Table, frames int, hooks PlayerHooks) *Player {
	if table == nil {
		table = content.Default()
	}
	stats := table.Player
	return &Player{
		Body:         physics.NewBody(rect, 0, PlayerHitboxInflate),
		Anim:         component.NewAnimator(component.DefaultAnimationSpeed),
		Health:       component.NewPool(stats.Health, stats.StartHealth),
		Energy:       component.NewPool(stats.Energy, stats.StartEnergy),
		stats:        stats,
		table:        table,
		frames:       frames,
		vuln:         component.NewVulnerability(stats.Invulnerability),
		facing:       FacingDown,
		weaponSwitch: component.NewCooldown(stats.SwitchCooldown),
		spellSwitch:  component.NewCooldown(stats.SwitchCooldown),
		hooks:        hooks,
	}
}

// SetTable swaps the template table used for weapon and spell lookups.
func (p *Player) SetTable(t *content.Table) {
	if t != nil {
		p.table = t
	}
}

// Update runs one tick: input, cooldowns, facing, animation, movement, then
// energy regeneration.
func (p *Player) Update(in Input, now int64, obstacles physics.Obstacles) {
	p.input(in, now)
	p.cooldowns(now)
	p.facing = facingOf(p.Body.Direction, p.facing)
	if p.Body.Direction.Length() != 0 {
		p.Anim.Advance(p.frames)
	}
	p.Body.Move(p.stats.Speed, obstacles)
	p.Energy.Add(p.stats.Regen * p.stats.Magic)
}

func (p *Player) input(in Input, now int64) {
	var dir cp.Vector
	switch {
	case in.Up:
		dir.Y = -1
	case in.Down:
		dir.Y = 1
	}
	switch {
	case in.Right:
		dir.X = 1
	case in.Left:
		dir.X = -1
	}
	p.Body.Direction = dir

	if in.Attack && !p.Attacking() {
		p.startAttack(now)
		if p.hooks.CreateAttack != nil {
			p.hooks.CreateAttack()
		}
	}
	if in.Cast && !p.Attacking() {
		p.startAttack(now)
		spell := p.table.Spell(p.spell)
		if p.hooks.CastSpell != nil {
			p.hooks.CastSpell(p.spell, spell.Strength+p.stats.Magic, spell.Cost)
		}
	}

	if in.SwitchWeapon && p.weaponSwitch.Ready() {
		p.weaponSwitch.Start(now)
		p.weapon = p.weapon.Next()
	}
	if in.SwitchSpell && p.spellSwitch.Ready() {
		p.spellSwitch.Start(now)
		p.spell = p.spell.Next()
	}
}

// startAttack opens the attack window, which covers both the base attack
// cooldown and the equipped weapon's own.
func (p *Player) startAttack(now int64) {
	window := p.stats.AttackCooldown + p.table.Weapon(p.weapon).Cooldown
	p.attack.StartFor(now, window)
}

func (p *Player) cooldowns(now int64) {
	if p.attack.Tick(now) && p.hooks.DestroyAttack != nil {
		p.hooks.DestroyAttack()
	}
	p.weaponSwitch.Tick(now)
	p.spellSwitch.Tick(now)
	p.vuln.Tick(now)
}

// Damage applies an enemy hit behind the player's vulnerability gate. It
// reports whether health changed.
func (p *Player) Damage(amount float64, now int64) bool {
	if !p.vuln.Hit(now) {
		return false
	}
	p.Health.Add(-amount)
	return true
}

func (p *Player) Defeated() bool {
	return p.Health.Empty()
}

// SpendEnergy deducts cost when the player can afford it.
func (p *Player) SpendEnergy(cost float64) bool {
	return p.Energy.Spend(cost)
}

func (p *Player) RestoreHealth(amount float64) {
	p.Health.Add(amount)
}

func (p *Player) Center() cp.Vector {
	return p.Body.Center()
}

func (p *Player) FacingVector() cp.Vector {
	return p.facing.Vector()
}

func (p *Player) Facing() Facing { return p.facing }

func (p *Player) Attacking() bool { return p.attack.Running() }

func (p *Player) Weapon() content.WeaponKind { return p.weapon }

func (p *Player) Spell() content.SpellKind { return p.spell }

func (p *Player) CanSwitchWeapon() bool { return p.weaponSwitch.Ready() }

func (p *Player) CanSwitchSpell() bool { return p.spellSwitch.Ready() }

func (p *Player) Vulnerable() bool { return p.vuln.Vulnerable() }

func (p *Player) HitAt() int64 { return p.vuln.HitAt() }

func (p *Player) Invulnerability() int64 { return p.vuln.Window }

// WeaponDamage is the base attack stat plus the equipped weapon's damage.
func (p *Player) WeaponDamage() float64 {
	return p.DamageWith(p.weapon)
}

// DamageWith is the base attack stat plus k's damage. A swing keeps the
// weapon it started with even if the player switches mid-swing.
func (p *Player) DamageWith(k content.WeaponKind) float64 {
	return p.stats.Attack + p.table.Weapon(k).Damage
}

// MagicDamage is the magic stat plus the given spell's strength.
func (p *Player) MagicDamage(spell content.SpellKind) float64 {
	return p.stats.Magic + p.table.Spell(spell).Strength
}

// Clip names the walk clip for the current facing.
func (p *Player) Clip() string {
	return PlayerClip(p.facing)
}

func (p *Player) Frame() int {
	return p.Anim.Frame(p.frames)
}

func (p *Player) Alpha(now int64) uint8 {
	return component.FlashAlpha(now, p.vuln.Vulnerable())
}

func PlayerClip(f Facing) string {
	return "player_" + f.String()
}
