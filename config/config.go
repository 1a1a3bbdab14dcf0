// Package config holds the runtime knobs that are not gameplay stats: display
// size, tile scale, spawn codes, scenery clips and the scripted world event.
package config

import (
	"os"
	"time"

	"github.com/milk9111/featherwake/common"
	"github.com/milk9111/featherwake/content"
	"github.com/milk9111/featherwake/gameerr"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable consulted when no path is given.
const EnvPath = "FEATHERWAKE_CONFIG"

type Config struct {
	Display  DisplayConfig `yaml:"display"`
	TileSize float64       `yaml:"tile_size"`
	Spawns   SpawnConfig   `yaml:"spawns"`
	Clips    ClipConfig    `yaml:"clips"`
	Event    EventConfig   `yaml:"event"`
	Debug    bool          `yaml:"debug"`
}

type DisplayConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	FPS    int    `yaml:"fps"`
	Title  string `yaml:"title"`
}

// SpawnConfig maps entity layer codes to what they spawn.
type SpawnConfig struct {
	Player  int `yaml:"player"`
	Squid   int `yaml:"squid"`
	Raccoon int `yaml:"raccoon"`
}

// ClipConfig names the clips used for map scenery.
type ClipConfig struct {
	Floor   string `yaml:"floor"`
	Grass   string `yaml:"grass"`
	Objects string `yaml:"objects"`
}

// EventConfig describes the one-shot world event: after After has elapsed the
// scenery at (X, Y) switches from the From clip to the To clip.
type EventConfig struct {
	After time.Duration `yaml:"after"`
	X     float64       `yaml:"x"`
	Y     float64       `yaml:"y"`
	From  string        `yaml:"from"`
	To    string        `yaml:"to"`
}

func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:  common.BaseWidth,
			Height: common.BaseHeight,
			FPS:    common.TargetFPS,
			Title:  "featherwake",
		},
		TileSize: common.TileSize,
		Spawns: SpawnConfig{
			Player:  394,
			Squid:   393,
			Raccoon: 392,
		},
		Clips: ClipConfig{
			Floor:   "floor",
			Grass:   "grass",
			Objects: "objects",
		},
		Event: EventConfig{
			After: 9 * time.Minute,
			X:     2873,
			Y:     2709,
			From:  "mural_before",
			To:    "mural_after",
		},
	}
}

// Load reads a YAML file over the defaults. An empty path falls back to the
// FEATHERWAKE_CONFIG environment variable, then to the defaults alone.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvPath)
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, gameerr.Wrap(gameerr.CodeConfiguration, err, "config: read %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, gameerr.Wrap(gameerr.CodeConfiguration, err, "config: unmarshal %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return gameerr.Configurationf("config: display size must be positive")
	}
	if c.Display.FPS <= 0 {
		return gameerr.Configurationf("config: fps must be positive")
	}
	if c.TileSize <= 0 {
		return gameerr.Configurationf("config: tile_size must be positive")
	}
	s := c.Spawns
	if s.Player == s.Squid || s.Player == s.Raccoon || s.Squid == s.Raccoon {
		return gameerr.Configurationf("config: spawn codes must be distinct")
	}
	if c.Clips.Floor == "" || c.Clips.Grass == "" || c.Clips.Objects == "" {
		return gameerr.Configurationf("config: floor, grass and objects clips are required")
	}
	if c.Event.After < 0 {
		return gameerr.Configurationf("config: event.after must not be negative")
	}
	if c.Event.From == "" || c.Event.To == "" {
		return gameerr.Configurationf("config: event clips are required")
	}
	return nil
}

// SpawnKind is what an entity layer code places.
type SpawnKind int

const (
	SpawnUnknown SpawnKind = iota
	SpawnPlayer
	SpawnEnemy
)

// Resolve maps an entity layer code to a spawn kind and, for enemies, their
// species.
func (s SpawnConfig) Resolve(code int) (SpawnKind, content.Species) {
	switch code {
	case s.Player:
		return SpawnPlayer, 0
	case s.Squid:
		return SpawnEnemy, content.Squid
	case s.Raccoon:
		return SpawnEnemy, content.Raccoon
	default:
		return SpawnUnknown, 0
	}
}
