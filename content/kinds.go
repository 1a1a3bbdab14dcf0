package content

// Species is the closed set of enemy kinds.
type Species int

const (
	Squid Species = iota
	Raccoon

	speciesCount
)

var speciesNames = [speciesCount]string{
	Squid:   "squid",
	Raccoon: "raccoon",
}

func (s Species) String() string {
	if s < 0 || s >= speciesCount {
		return "unknown"
	}
	return speciesNames[s]
}

func (s Species) Valid() bool {
	return s >= 0 && s < speciesCount
}

func ParseSpecies(name string) (Species, bool) {
	for i, n := range speciesNames {
		if n == name {
			return Species(i), true
		}
	}
	return 0, false
}

// AllSpecies lists every species in enum order.
func AllSpecies() []Species {
	out := make([]Species, speciesCount)
	for i := range out {
		out[i] = Species(i)
	}
	return out
}

// WeaponKind is the closed set of melee weapons the player can equip.
type WeaponKind int

const (
	Knife WeaponKind = iota
	Axe

	weaponCount
)

var weaponNames = [weaponCount]string{
	Knife: "knife",
	Axe:   "axe",
}

func (w WeaponKind) String() string {
	if w < 0 || w >= weaponCount {
		return "unknown"
	}
	return weaponNames[w]
}

func (w WeaponKind) Valid() bool {
	return w >= 0 && w < weaponCount
}

// Next cycles to the following weapon, wrapping to the first.
func (w WeaponKind) Next() WeaponKind {
	return (w + 1) % weaponCount
}

func ParseWeapon(name string) (WeaponKind, bool) {
	for i, n := range weaponNames {
		if n == name {
			return WeaponKind(i), true
		}
	}
	return 0, false
}

func AllWeapons() []WeaponKind {
	out := make([]WeaponKind, weaponCount)
	for i := range out {
		out[i] = WeaponKind(i)
	}
	return out
}

// SpellKind is the closed set of spells.
type SpellKind int

const (
	Flame SpellKind = iota
	Heal

	spellCount
)

var spellNames = [spellCount]string{
	Flame: "flame",
	Heal:  "heal",
}

func (s SpellKind) String() string {
	if s < 0 || s >= spellCount {
		return "unknown"
	}
	return spellNames[s]
}

func (s SpellKind) Valid() bool {
	return s >= 0 && s < spellCount
}

func (s SpellKind) Next() SpellKind {
	return (s + 1) % spellCount
}

func ParseSpell(name string) (SpellKind, bool) {
	for i, n := range spellNames {
		if n == name {
			return SpellKind(i), true
		}
	}
	return 0, false
}

func AllSpells() []SpellKind {
	out := make([]SpellKind, spellCount)
	for i := range out {
		out[i] = SpellKind(i)
	}
	return out
}
