package effect

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/featherwake/actor"
	"github.com/milk9111/featherwake/asset"
	"github.com/milk9111/featherwake/common"
	"github.com/milk9111/featherwake/component"
	"github.com/milk9111/featherwake/content"
)

// weaponOffsets place the weapon relative to the owner's center.
var weaponOffsets = map[actor.Facing]cp.Vector{
	actor.FacingLeft:  {X: -16, Y: -12},
	actor.FacingRight: {X: 32, Y: -16},
	actor.FacingDown:  {X: 16, Y: -32},
	actor.FacingUp:    {X: 0, Y: 0},
}

// weaponFrames maps a facing to its frame in a weapon clip, which is ordered
// left, right, down, up.
var weaponFrames = map[actor.Facing]int{
	actor.FacingLeft:  0,
	actor.FacingRight: 1,
	actor.FacingDown:  2,
	actor.FacingUp:    3,
}

// Weapon is the transient hitbox of one attack press. Its clip is resolved
// once at spawn and it remembers every target it has already struck.
type Weapon struct {
	Kind content.WeaponKind
	Rect common.Rect

	clip   asset.Clip
	facing actor.Facing
	hits   component.HitMemory
}

func NewWeapon(kind content.WeaponKind, clip asset.Clip, owner cp.Vector, facing actor.Facing) *Weapon {
	w := &Weapon{Kind: kind, clip: clip}
	w.Follow(owner, facing)
	return w
}

// Follow re-anchors the weapon on its owner for the owner's current facing.
func (w *Weapon) Follow(owner cp.Vector, facing actor.Facing) {
	w.facing = facing
	f := w.clip.At(w.Frame())
	w.Rect = common.RectCentered(owner.Add(weaponOffsets[facing]), float64(f.W), float64(f.H))
}

func (w *Weapon) Facing() actor.Facing { return w.facing }

func (w *Weapon) Clip() string { return w.clip.Name }

func (w *Weapon) Frame() int { return weaponFrames[w.facing] }

// Strike records target and reports whether this swing may damage it.
func (w *Weapon) Strike(target uint64) bool {
	return w.hits.Mark(target)
}
