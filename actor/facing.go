package actor

import "github.com/jakecoffman/cp"

// Facing is the cardinal direction an actor last moved in.
type Facing int

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

func (f Facing) String() string {
	switch f {
	case FacingUp:
		return "up"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "down"
	}
}

// Vector is the unit cardinal vector for the facing, y pointing down.
func (f Facing) Vector() cp.Vector {
	switch f {
	case FacingUp:
		return cp.Vector{X: 0, Y: -1}
	case FacingLeft:
		return cp.Vector{X: -1, Y: 0}
	case FacingRight:
		return cp.Vector{X: 1, Y: 0}
	default:
		return cp.Vector{X: 0, Y: 1}
	}
}

// facingOf derives a facing from a movement direction. Vertical movement wins
// over horizontal; a zero direction keeps the current facing.
func facingOf(dir cp.Vector, current Facing) Facing {
	switch {
	case dir.Y < 0:
		return FacingUp
	case dir.Y > 0:
		return FacingDown
	case dir.X < 0:
		return FacingLeft
	case dir.X > 0:
		return FacingRight
	default:
		return current
	}
}
