package world

import "github.com/milk9111/featherwake/content"

// HUD is the read-only state the interface draws.
type HUD struct {
	Health, MaxHealth float64
	Energy, MaxEnergy float64

	Weapon content.WeaponKind
	Spell  content.SpellKind

	// WeaponSwitched and SpellSwitched are true while the switch cooldown
	// that follows a change is still running.
	WeaponSwitched bool
	SpellSwitched  bool

	Defeated bool
}

func (w *World) HUD() HUD {
	p := w.player
	return HUD{
		Health:         p.Health.Current,
		MaxHealth:      p.Health.Max,
		Energy:         p.Energy.Current,
		MaxEnergy:      p.Energy.Max,
		Weapon:         p.Weapon(),
		Spell:          p.Spell(),
		WeaponSwitched: !p.CanSwitchWeapon(),
		SpellSwitched:  !p.CanSwitchSpell(),
		Defeated:       p.Defeated(),
	}
}
