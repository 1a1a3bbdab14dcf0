package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/featherwake/common"
)

type axis int

const (
	horizontal axis = iota
	vertical
)

// Body is the spatial part of every entity: a visual rect, a smaller hitbox
// used for physics and contact, and a facing/movement direction.
type Body struct {
	Rect      common.Rect
	Hitbox    common.Rect
	Direction cp.Vector
}

// NewBody builds a body whose hitbox is rect inflated by (dw, dh) around the
// same center.
func NewBody(rect common.Rect, dw, dh float64) Body {
	return Body{Rect: rect, Hitbox: rect.Inflate(dw, dh)}
}

func (b *Body) Center() cp.Vector {
	return b.Rect.Center()
}

// Move advances the hitbox by speed along Direction, resolving X before Y so
// a diagonal step can never cut a corner, then recenters the visual rect.
// A non-zero Direction is normalized first; obstacles may be nil.
func (b *Body) Move(speed float64, obstacles Obstacles) {
	if b.Direction.Length() != 0 {
		b.Direction = b.Direction.Normalize()
	}

	b.Hitbox.X += b.Direction.X * speed
	b.collide(horizontal, obstacles)
	b.Hitbox.Y += b.Direction.Y * speed
	b.collide(vertical, obstacles)

	b.Rect = b.Rect.WithCenter(b.Hitbox.Center())
}

func (b *Body) collide(ax axis, obstacles Obstacles) {
	if obstacles == nil {
		return
	}
	for _, box := range obstacles.Overlapping(b.Hitbox) {
		// earlier clamps may already have cleared this one
		if !box.Intersects(b.Hitbox) {
			continue
		}
		switch ax {
		case horizontal:
			if b.Direction.X > 0 {
				b.Hitbox.SetRight(box.Left())
			}
			if b.Direction.X < 0 {
				b.Hitbox.SetLeft(box.Right())
			}
		case vertical:
			if b.Direction.Y > 0 {
				b.Hitbox.SetBottom(box.Top())
			}
			if b.Direction.Y < 0 {
				b.Hitbox.SetTop(box.Bottom())
			}
		}
	}
}

// Place moves the body so its hitbox is centered on c.
func (b *Body) Place(c cp.Vector) {
	b.Hitbox = b.Hitbox.WithCenter(c)
	b.Rect = b.Rect.WithCenter(c)
}
