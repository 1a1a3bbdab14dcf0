// Package ai selects enemy behavior from distance to the player. Everything
// here is a pure function of its inputs.
package ai

import "github.com/jakecoffman/cp"

type Status int

const (
	Idle Status = iota
	Move
	Attack
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Move:
		return "move"
	case Attack:
		return "attack"
	default:
		return "unknown"
	}
}

// Sense returns the Euclidean distance from one point to another and the unit
// direction toward it. Coincident points yield a zero direction.
func Sense(from, to cp.Vector) (float64, cp.Vector) {
	delta := to.Sub(from)
	dist := delta.Length()
	if dist == 0 {
		return 0, cp.Vector{}
	}
	return dist, delta.Mult(1 / dist)
}

// Select picks a status from distance. Attack wins only while the attack is
// off cooldown; otherwise the notice radius decides between Move and Idle.
func Select(distance, attackRadius, noticeRadius float64, canAttack bool) Status {
	switch {
	case distance <= attackRadius && canAttack:
		return Attack
	case distance <= noticeRadius:
		return Move
	default:
		return Idle
	}
}

// Steer returns the movement direction for a status. Only Move drifts.
func Steer(status Status, toward cp.Vector) cp.Vector {
	if status == Move {
		return toward
	}
	return cp.Vector{}
}
