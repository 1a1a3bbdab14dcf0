package effect

import "github.com/KirkDiggler/rpg-toolkit/dice"

// Roller produces a uniform value in [1, size]. dice.Roller satisfies it.
type Roller interface {
	Roll(size int) (int, error)
}

// DefaultRoller is the toolkit's crypto-backed roller.
var DefaultRoller Roller = dice.DefaultRoller

// Between returns a value in [lo, hi]. A failed or missing roller yields lo.
func Between(r Roller, lo, hi int) int {
	if hi <= lo || r == nil {
		return lo
	}
	n, err := r.Roll(hi - lo + 1)
	if err != nil {
		return lo
	}
	return lo + n - 1
}
