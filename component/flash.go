package component

import "math"

const (
	AlphaOpaque    uint8 = 255
	AlphaInvisible uint8 = 0
)

// FlashAlpha is the hit-flash opacity. While invulnerable the sprite blinks
// in square-wave bands given by the sign of sin(now).
func FlashAlpha(now int64, vulnerable bool) uint8 {
	if vulnerable {
		return AlphaOpaque
	}
	if math.Sin(float64(now)) >= 0 {
		return AlphaOpaque
	}
	return AlphaInvisible
}
