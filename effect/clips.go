package effect

import "github.com/milk9111/featherwake/content"

const (
	ClipAura  = "aura"
	ClipHeal  = "heal"
	ClipFlame = "flame"
)

// LeafClips are the rustle variants spawned when grass is cut.
var LeafClips = []string{"leaf1", "leaf2", "leaf3", "leaf4", "leaf5", "leaf6"}

func WeaponClip(k content.WeaponKind) string {
	return "weapon_" + k.String()
}

// Clips lists every effect clip used for the given template table, including
// each species' attack and death effects.
func Clips(t *content.Table) []string {
	seen := map[string]bool{}
	var out []string
	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	add(ClipAura)
	add(ClipHeal)
	add(ClipFlame)
	for _, leaf := range LeafClips {
		add(leaf)
	}
	for _, w := range content.AllWeapons() {
		add(WeaponClip(w))
	}
	for _, s := range content.AllSpecies() {
		tmpl := t.Enemy(s)
		add(tmpl.AttackKind)
		add(tmpl.DeathEffect)
	}
	return out
}
