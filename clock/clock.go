// Package clock provides the millisecond time source the simulation samples
// for cooldowns and invincibility windows.
package clock

import "time"

// Clock returns monotonic milliseconds since an arbitrary epoch.
type Clock interface {
	Ticks() int64
}

// Real measures time elapsed since it was created. It reads the monotonic
// clock, so wall-clock adjustments never move it backwards.
type Real struct {
	start time.Time
}

func NewReal() *Real {
	return &Real{start: time.Now()}
}

func (c *Real) Ticks() int64 {
	return time.Since(c.start).Milliseconds()
}

// Manual is a clock driven by hand, used by tests and replays.
type Manual struct {
	now int64
}

func NewManual(start int64) *Manual {
	return &Manual{now: start}
}

func (c *Manual) Ticks() int64 {
	return c.now
}

// Advance moves the clock forward by ms milliseconds. Negative values are ignored.
func (c *Manual) Advance(ms int64) {
	if ms > 0 {
		c.now += ms
	}
}

func (c *Manual) Set(ms int64) {
	c.now = ms
}
