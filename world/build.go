package world

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/featherwake/actor"
	"github.com/milk9111/featherwake/ai"
	"github.com/milk9111/featherwake/common"
	"github.com/milk9111/featherwake/config"
	"github.com/milk9111/featherwake/content"
	"github.com/milk9111/featherwake/ecs"
	"github.com/milk9111/featherwake/effect"
	"github.com/milk9111/featherwake/gameerr"
	"github.com/milk9111/featherwake/physics"
)

// TileHitboxInflate shrinks static tiles' hitboxes vertically.
const TileHitboxInflate = -10

// Build constructs a world from a layout. Any missing clip or malformed
// layout aborts construction.
func Build(opts Options) (*World, error) {
	if opts.Layout == nil {
		return nil, gameerr.Configurationf("world: no layout")
	}
	if opts.Assets == nil {
		return nil, gameerr.AssetMissingf("world: no asset source")
	}
	w := newWorld(opts)
	if err := w.cfg.Validate(); err != nil {
		return nil, err
	}
	if err := w.preload(); err != nil {
		return nil, err
	}

	w.start = w.clock.Ticks()
	w.now = w.start

	if err := w.buildTiles(); err != nil {
		return nil, err
	}
	if err := w.buildEntities(); err != nil {
		return nil, err
	}
	if err := w.buildEvent(); err != nil {
		return nil, err
	}

	w.log.Info("world built",
		"tiles", w.tiles.Len(),
		"enemies", w.enemies.Len(),
		"obstacles", w.obstacles.Len(),
		"visible", w.visible.Len(),
	)
	return w, nil
}

// clipNames lists every clip the world can ask for.
func (w *World) clipNames() []string {
	names := []string{
		w.cfg.Clips.Floor,
		w.cfg.Clips.Grass,
		w.cfg.Clips.Objects,
		w.cfg.Event.From,
		w.cfg.Event.To,
	}
	for _, f := range []actor.Facing{actor.FacingDown, actor.FacingUp, actor.FacingLeft, actor.FacingRight} {
		names = append(names, actor.PlayerClip(f))
	}
	for _, s := range content.AllSpecies() {
		for _, st := range []ai.Status{ai.Idle, ai.Move, ai.Attack} {
			names = append(names, actor.EnemyClip(s, st))
		}
	}
	return append(names, effect.Clips(w.table)...)
}

func (w *World) preload() error {
	if err := w.cache.Preload(w.clipNames()...); err != nil {
		return gameerr.Wrap(gameerr.CodeAssetMissing, err, "world: preload")
	}
	return nil
}

func (w *World) create(kind Kind) ecs.Entity {
	e := w.reg.Create()
	w.kinds.Set(e, kind)
	return e
}

func (w *World) cellOrigin(row, col int) (float64, float64) {
	return float64(col) * w.cfg.TileSize, float64(row) * w.cfg.TileSize
}

func (w *World) addTile(t Tile) ecs.Entity {
	e := w.create(KindTile)
	w.tiles.Set(e, t)
	w.obstacles.Add(e)
	w.grid.Add(uint64(e), t.Body.Hitbox)
	if t.Kind != TileBoundary {
		w.visible.Add(e)
	}
	if t.Kind == TileGrass {
		w.attackable.Add(e)
	}
	return e
}

func (w *World) buildTiles() error {
	layout := w.layout
	size := w.cfg.TileSize

	layout.Boundary.Each(func(row, col, _ int) {
		x, y := w.cellOrigin(row, col)
		w.addTile(Tile{
			Kind: TileBoundary,
			Body: physics.NewBody(common.RectAt(x, y, size, size), 0, TileHitboxInflate),
		})
	})

	grass, err := w.cache.Get(w.cfg.Clips.Grass)
	if err != nil {
		return err
	}
	layout.Grass.Each(func(row, col, _ int) {
		x, y := w.cellOrigin(row, col)
		w.addTile(Tile{
			Kind:  TileGrass,
			Body:  physics.NewBody(common.RectAt(x, y, size, size), 0, TileHitboxInflate),
			Clip:  grass.Name,
			Frame: effect.Between(w.roller, 0, grass.Len()-1),
		})
	})

	objects, err := w.cache.Get(w.cfg.Clips.Objects)
	if err != nil {
		return err
	}
	var bad error
	layout.Objects.Each(func(row, col, code int) {
		if bad != nil {
			return
		}
		if code < 0 || code >= objects.Len() {
			bad = gameerr.Configurationf("world: object code %d at row %d col %d has no frame", code, row, col)
			return
		}
		x, y := w.cellOrigin(row, col)
		f := objects.At(code)
		// tall scenery stands on its cell, so it is raised one tile
		rect := common.RectAt(x, y-size, float64(f.W), float64(f.H))
		w.addTile(Tile{
			Kind:  TileObject,
			Body:  physics.NewBody(rect, 0, TileHitboxInflate),
			Clip:  objects.Name,
			Frame: code,
		})
	})
	return bad
}

func (w *World) buildEntities() error {
	var (
		players int
		spawn   cp.Vector
		bad     error
	)
	w.layout.Entities.Each(func(row, col, code int) {
		if bad != nil {
			return
		}
		x, y := w.cellOrigin(row, col)
		kind, species := w.cfg.Spawns.Resolve(code)
		switch kind {
		case config.SpawnPlayer:
			players++
			spawn = cp.Vector{X: x, Y: y}
		case config.SpawnEnemy:
			if _, err := w.spawnEnemy(species, cp.Vector{X: x, Y: y}); err != nil {
				bad = err
			}
		default:
			bad = gameerr.Configurationf("world: unknown spawn code %d at row %d col %d", code, row, col)
		}
	})
	if bad != nil {
		return bad
	}
	if players != 1 {
		return gameerr.Configurationf("world: layout has %d player spawns, want 1", players)
	}
	return w.spawnPlayer(spawn)
}

func (w *World) buildEvent() error {
	e, err := w.spawnScenery(w.cfg.Event.From, cp.Vector{X: w.cfg.Event.X, Y: w.cfg.Event.Y})
	if err != nil {
		return err
	}
	w.event = eventState{mural: e}
	return nil
}
