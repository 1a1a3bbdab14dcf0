package content

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/milk9111/featherwake/gameerr"
	"gopkg.in/yaml.v3"
)

// FileName is the template file looked up in a content directory.
const FileName = "templates.yaml"

//go:embed data/*.yaml
var DataFS embed.FS

type tableFile struct {
	Player  *PlayerTemplate   `yaml:"player"`
	Species []SpeciesTemplate `yaml:"species"`
	Weapons []WeaponTemplate  `yaml:"weapons"`
	Spells  []SpellTemplate   `yaml:"spells"`
}

// Load reads templates.yaml from dir, falling back to the embedded copy when
// dir is empty or has no such file.
func Load(dir string) (*Table, error) {
	data, err := read(dir)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func read(dir string) ([]byte, error) {
	if dir != "" {
		data, err := os.ReadFile(filepath.Join(dir, FileName))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, gameerr.Wrap(gameerr.CodeConfiguration, err, "content: read %s", dir)
		}
	}
	data, err := DataFS.ReadFile("data/" + FileName)
	if err != nil {
		return nil, gameerr.Wrap(gameerr.CodeConfiguration, err, "content: read embedded %s", FileName)
	}
	return data, nil
}

// Parse decodes a template document over the defaults. Entries are matched to
// their enum by name; an unknown name is a configuration error.
func Parse(data []byte) (*Table, error) {
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, gameerr.Wrap(gameerr.CodeConfiguration, err, "content: unmarshal")
	}

	t := Default()
	if file.Player != nil {
		t.Player = *file.Player
	}
	for _, s := range file.Species {
		kind, ok := ParseSpecies(s.Name)
		if !ok {
			return nil, gameerr.Configurationf("content: unknown species %q", s.Name)
		}
		t.species[kind] = s
	}
	for _, w := range file.Weapons {
		kind, ok := ParseWeapon(w.Name)
		if !ok {
			return nil, gameerr.Configurationf("content: unknown weapon %q", w.Name)
		}
		t.weapons[kind] = w
	}
	for _, s := range file.Spells {
		kind, ok := ParseSpell(s.Name)
		if !ok {
			return nil, gameerr.Configurationf("content: unknown spell %q", s.Name)
		}
		t.spells[kind] = s
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate rejects stat blocks the simulation cannot run with.
func (t *Table) Validate() error {
	p := t.Player
	if p.Health <= 0 || p.Energy <= 0 {
		return gameerr.Configurationf("content: player pools must be positive")
	}
	if p.StartHealth < 0 || p.StartHealth > 1 || p.StartEnergy < 0 || p.StartEnergy > 1 {
		return gameerr.Configurationf("content: player start fractions must be in [0, 1]")
	}
	if p.Speed < 0 || p.AttackCooldown < 0 || p.SwitchCooldown < 0 || p.Invulnerability < 0 {
		return gameerr.Configurationf("content: player speed and timings must not be negative")
	}
	for i, s := range t.species {
		if s.Health <= 0 {
			return gameerr.Configurationf("content: species %s: health must be positive", Species(i))
		}
		if s.AttackKind == "" || s.DeathEffect == "" {
			return gameerr.Configurationf("content: species %s: attack_kind and death_effect are required", Species(i))
		}
		if s.AttackRadius < 0 || s.NoticeRadius < s.AttackRadius {
			return gameerr.Configurationf("content: species %s: notice_radius must cover attack_radius", Species(i))
		}
		if s.AttackCooldown < 0 || s.Invincibility < 0 {
			return gameerr.Configurationf("content: species %s: timings must not be negative", Species(i))
		}
	}
	for i, w := range t.weapons {
		if w.Cooldown < 0 || w.Damage < 0 {
			return gameerr.Configurationf("content: weapon %s: cooldown and damage must not be negative", WeaponKind(i))
		}
	}
	for i, s := range t.spells {
		if s.Cost < 0 || s.Strength < 0 {
			return gameerr.Configurationf("content: spell %s: cost and strength must not be negative", SpellKind(i))
		}
	}
	return nil
}
