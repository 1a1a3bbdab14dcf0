package world

import (
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/featherwake/common"
	"github.com/milk9111/featherwake/component"
	"github.com/milk9111/featherwake/ecs"
)

// Sprite is one entry of the draw list, already in screen coordinates.
type Sprite struct {
	Entity ecs.Entity
	Clip   string
	Frame  int
	X, Y   float64
	Alpha  uint8

	depth float64
}

// DrawList is everything the renderer needs for one frame: the floor first,
// then sprites back to front.
type DrawList struct {
	Offset  cp.Vector
	Floor   Sprite
	Sprites []Sprite
}

// CameraOffset centers the view on the player.
func (w *World) CameraOffset() cp.Vector {
	half := cp.Vector{X: float64(w.cfg.Display.Width) / 2, Y: float64(w.cfg.Display.Height) / 2}
	return w.player.Center().Sub(half)
}

// DrawList orders visible entities by the vertical center of their visual
// rect so lower sprites overlap higher ones. Ties keep handle order.
func (w *World) DrawList() DrawList {
	offset := w.CameraOffset()
	dl := DrawList{
		Offset: offset,
		Floor: Sprite{
			Clip:  w.cfg.Clips.Floor,
			X:     -offset.X,
			Y:     -offset.Y,
			Alpha: component.AlphaOpaque,
		},
	}

	for _, e := range sorted(w.visible.Members()) {
		s, ok := w.sprite(e)
		if !ok {
			continue
		}
		s.Entity = e
		s.X -= offset.X
		s.Y -= offset.Y
		dl.Sprites = append(dl.Sprites, s)
	}
	sort.SliceStable(dl.Sprites, func(i, j int) bool {
		return dl.Sprites[i].depth < dl.Sprites[j].depth
	})
	return dl
}

func (w *World) sprite(e ecs.Entity) (Sprite, bool) {
	opaque := component.AlphaOpaque
	at := func(r common.Rect, clip string, frame int, alpha uint8) (Sprite, bool) {
		return Sprite{Clip: clip, Frame: frame, X: r.X, Y: r.Y, Alpha: alpha, depth: r.Center().Y}, true
	}
	switch w.Kind(e) {
	case KindPlayer:
		return at(w.player.Body.Rect, w.player.Clip(), w.player.Frame(), w.player.Alpha(w.now))
	case KindEnemy:
		en := w.Enemy(e)
		return at(en.Body.Rect, en.Clip(), en.Frame(), en.Alpha(w.now))
	case KindTile:
		t, _ := w.tiles.Get(e)
		return at(t.Body.Rect, t.Clip, t.Frame, opaque)
	case KindWeapon:
		wp := w.Weapon(e)
		return at(wp.Rect, wp.Clip(), wp.Frame(), opaque)
	case KindParticle:
		p := w.Particle(e)
		return at(p.Rect, p.Clip(), p.Frame(), opaque)
	case KindScenery:
		s, _ := w.scenery.Get(e)
		return at(s.Rect, s.Clip, 0, opaque)
	default:
		return Sprite{}, false
	}
}
