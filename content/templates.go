package content

// PlayerTemplate is the player's stat block and timing windows.
type PlayerTemplate struct {
	Health float64 `yaml:"health"`
	Energy float64 `yaml:"energy"`
	Attack float64 `yaml:"attack"`
	Magic  float64 `yaml:"magic"`
	Speed  float64 `yaml:"speed"`

	// StartHealth and StartEnergy are fractions of the maximum.
	StartHealth float64 `yaml:"start_health"`
	StartEnergy float64 `yaml:"start_energy"`

	AttackCooldown  int64 `yaml:"attack_cooldown"`
	SwitchCooldown  int64 `yaml:"switch_cooldown"`
	Invulnerability int64 `yaml:"invulnerability"`

	// Regen is the energy gained per tick for each point of Magic.
	Regen float64 `yaml:"regen"`
}

// SpeciesTemplate is the static stat block for one enemy kind.
type SpeciesTemplate struct {
	Name           string  `yaml:"name"`
	Health         float64 `yaml:"health"`
	Exp            int     `yaml:"exp"`
	Damage         float64 `yaml:"damage"`
	AttackKind     string  `yaml:"attack_kind"`
	Speed          float64 `yaml:"speed"`
	Resistance     float64 `yaml:"resistance"`
	AttackRadius   float64 `yaml:"attack_radius"`
	NoticeRadius   float64 `yaml:"notice_radius"`
	AttackCooldown int64   `yaml:"attack_cooldown"`
	Invincibility  int64   `yaml:"invincibility"`
	DeathEffect    string  `yaml:"death_effect"`
}

type WeaponTemplate struct {
	Name     string  `yaml:"name"`
	Cooldown int64   `yaml:"cooldown"`
	Damage   float64 `yaml:"damage"`
}

type SpellTemplate struct {
	Name     string  `yaml:"name"`
	Strength float64 `yaml:"strength"`
	Cost     float64 `yaml:"cost"`
}

// Table holds every template, indexed by its enum. It is resolved once at
// load and read-only afterwards; a reload produces a new Table.
type Table struct {
	Player PlayerTemplate

	species [speciesCount]SpeciesTemplate
	weapons [weaponCount]WeaponTemplate
	spells  [spellCount]SpellTemplate
}

// Default returns the built-in table.
func Default() *Table {
	return &Table{
		Player: PlayerTemplate{
			Health:          100,
			Energy:          60,
			Attack:          10,
			Magic:           4,
			Speed:           5,
			StartHealth:     0.5,
			StartEnergy:     0.8,
			AttackCooldown:  400,
			SwitchCooldown:  200,
			Invulnerability: 500,
			Regen:           0.01,
		},
		species: [speciesCount]SpeciesTemplate{
			Squid: {
				Name: "squid", Health: 50, Exp: 100, Damage: 20, AttackKind: "slash",
				Speed: 3, Resistance: 3, AttackRadius: 80, NoticeRadius: 360,
				AttackCooldown: 400, Invincibility: 300, DeathEffect: "squid",
			},
			Raccoon: {
				Name: "raccoon", Health: 3000, Exp: 100, Damage: 80, AttackKind: "slash",
				Speed: 3, Resistance: 3, AttackRadius: 80, NoticeRadius: 360,
				AttackCooldown: 400, Invincibility: 300, DeathEffect: "raccoon",
			},
		},
		weapons: [weaponCount]WeaponTemplate{
			Knife: {Name: "knife", Cooldown: 100, Damage: 15},
			Axe:   {Name: "axe", Cooldown: 100, Damage: 25},
		},
		spells: [spellCount]SpellTemplate{
			Flame: {Name: "flame", Strength: 5, Cost: 30},
			Heal:  {Name: "heal", Strength: 20, Cost: 10},
		},
	}
}

// Enemy returns the template for a species. Unknown species get the zero
// template.
func (t *Table) Enemy(s Species) SpeciesTemplate {
	if t == nil || !s.Valid() {
		return SpeciesTemplate{}
	}
	return t.species[s]
}

func (t *Table) Weapon(w WeaponKind) WeaponTemplate {
	if t == nil || !w.Valid() {
		return WeaponTemplate{}
	}
	return t.weapons[w]
}

func (t *Table) Spell(s SpellKind) SpellTemplate {
	if t == nil || !s.Valid() {
		return SpellTemplate{}
	}
	return t.spells[s]
}
