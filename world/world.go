// Package world owns every entity and drives the frame: it builds the map
// from a layout, routes combat between actors, fires the scripted world event
// and exposes a read-only view for drawing and the HUD.
package world

import (
	"log/slog"
	"sort"

	"github.com/milk9111/featherwake/actor"
	"github.com/milk9111/featherwake/asset"
	"github.com/milk9111/featherwake/clock"
	"github.com/milk9111/featherwake/common"
	"github.com/milk9111/featherwake/config"
	"github.com/milk9111/featherwake/content"
	"github.com/milk9111/featherwake/ecs"
	"github.com/milk9111/featherwake/effect"
	"github.com/milk9111/featherwake/levels"
	"github.com/milk9111/featherwake/metrics"
	"github.com/milk9111/featherwake/physics"
)

// Kind tags what an entity handle refers to.
type Kind int

const (
	KindNone Kind = iota
	KindPlayer
	KindEnemy
	KindTile
	KindWeapon
	KindParticle
	KindScenery
)

type TileKind int

const (
	TileBoundary TileKind = iota
	TileGrass
	TileObject
)

// Tile is a static map cell. Only grass is ever removed.
type Tile struct {
	Kind  TileKind
	Body  physics.Body
	Clip  string
	Frame int
}

// Scenery is a visible-only sprite.
type Scenery struct {
	Rect common.Rect
	Clip string
}

// Options configure Build. Zero fields get defaults, except Layout and Assets
// which are required.
type Options struct {
	Config  *config.Config
	Content *content.Table
	Layout  *levels.Layout
	Assets  asset.Source
	Clock   clock.Clock
	Roller  effect.Roller
	Metrics *metrics.Collector
	Logger  *slog.Logger
}

// FrameStats describe the last Update.
type FrameStats struct {
	Updated      int
	AttackChecks int
	Removed      int
}

type World struct {
	cfg     *config.Config
	layout  *levels.Layout
	table   *content.Table
	cache   *asset.Cache
	clock   clock.Clock
	roller  effect.Roller
	caster  *effect.Caster
	metrics *metrics.Collector
	log     *slog.Logger

	reg       *ecs.Registry
	kinds     *ecs.SparseSet[Kind]
	tiles     *ecs.SparseSet[Tile]
	enemies   *ecs.SparseSet[*actor.Enemy]
	weapons   *ecs.SparseSet[*effect.Weapon]
	particles *ecs.SparseSet[*effect.Particle]
	scenery   *ecs.SparseSet[Scenery]

	visible    *ecs.Group
	obstacles  *ecs.Group
	attackable *ecs.Group
	attacks    *ecs.Group
	grid       *physics.Grid

	player   *actor.Player
	playerID ecs.Entity
	attack   ecs.Entity

	killed []ecs.Entity
	dead   map[ecs.Entity]bool

	start int64
	now   int64
	event eventState
	stats FrameStats
	err   error
}

func newWorld(opts Options) *World {
	w := &World{
		cfg:        opts.Config,
		layout:     opts.Layout,
		table:      opts.Content,
		cache:      asset.NewCache(opts.Assets),
		clock:      opts.Clock,
		roller:     opts.Roller,
		metrics:    opts.Metrics,
		log:        opts.Logger,
		reg:        ecs.NewRegistry(),
		kinds:      ecs.NewSparseSet[Kind](),
		tiles:      ecs.NewSparseSet[Tile](),
		enemies:    ecs.NewSparseSet[*actor.Enemy](),
		weapons:    ecs.NewSparseSet[*effect.Weapon](),
		particles:  ecs.NewSparseSet[*effect.Particle](),
		scenery:    ecs.NewSparseSet[Scenery](),
		visible:    ecs.NewGroup("visible"),
		obstacles:  ecs.NewGroup("obstacles"),
		attackable: ecs.NewGroup("attackable"),
		attacks:    ecs.NewGroup("attacks"),
		grid:       physics.NewGrid(),
		dead:       make(map[ecs.Entity]bool),
	}
	if w.cfg == nil {
		w.cfg = config.Default()
	}
	if w.table == nil {
		w.table = content.Default()
	}
	if w.clock == nil {
		w.clock = clock.NewReal()
	}
	if w.roller == nil {
		w.roller = effect.DefaultRoller
	}
	if w.log == nil {
		w.log = slog.Default()
	}
	w.caster = effect.NewCaster(w, w.roller, w.cfg.TileSize)
	return w
}

func (w *World) Player() *actor.Player { return w.player }

func (w *World) PlayerEntity() ecs.Entity { return w.playerID }

// Defeated reports whether the player's health has run out.
func (w *World) Defeated() bool { return w.player != nil && w.player.Defeated() }

func (w *World) Visible() *ecs.Group    { return w.visible }
func (w *World) Obstacles() *ecs.Group  { return w.obstacles }
func (w *World) Attackable() *ecs.Group { return w.attackable }
func (w *World) Attacks() *ecs.Group    { return w.attacks }

func (w *World) Alive(e ecs.Entity) bool { return w.reg.Alive(e) }

func (w *World) Kind(e ecs.Entity) Kind {
	k, _ := w.kinds.Get(e)
	return k
}

func (w *World) Tile(e ecs.Entity) (Tile, bool) { return w.tiles.Get(e) }

func (w *World) Enemy(e ecs.Entity) *actor.Enemy {
	en, _ := w.enemies.Get(e)
	return en
}

func (w *World) Particle(e ecs.Entity) *effect.Particle {
	p, _ := w.particles.Get(e)
	return p
}

func (w *World) Weapon(e ecs.Entity) *effect.Weapon {
	wp, _ := w.weapons.Get(e)
	return wp
}

func (w *World) ScenerySprite(e ecs.Entity) (Scenery, bool) { return w.scenery.Get(e) }

// CurrentAttack is the live weapon handle, or the zero Entity.
func (w *World) CurrentAttack() ecs.Entity { return w.attack }

// Enemies lists live enemy handles in handle order.
func (w *World) Enemies() []ecs.Entity {
	return sorted(w.enemies.Snapshot())
}

// Particles lists live particle handles in handle order.
func (w *World) Particles() []ecs.Entity {
	return sorted(w.particles.Snapshot())
}

func (w *World) LastFrame() FrameStats { return w.stats }

// Grid exposes the obstacle index.
func (w *World) Grid() *physics.Grid { return w.grid }

func (w *World) Now() int64 { return w.now }

// SetContent swaps the template table. Later spawns and the player's weapon
// and spell lookups use it; live enemies keep their stats.
func (w *World) SetContent(t *content.Table) {
	if t == nil {
		return
	}
	w.table = t
	if w.player != nil {
		w.player.SetTable(t)
	}
}

func sorted(es []ecs.Entity) []ecs.Entity {
	sort.Slice(es, func(i, j int) bool { return es[i] < es[j] })
	return es
}
