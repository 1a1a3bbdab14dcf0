package component

// Vulnerability gates damage behind an invincibility window measured in
// milliseconds from the last accepted hit.
type Vulnerability struct {
	Window int64

	hitAt        int64
	invulnerable bool
}

func NewVulnerability(window int64) Vulnerability {
	return Vulnerability{Window: window}
}

func (v *Vulnerability) Vulnerable() bool {
	return v != nil && !v.invulnerable
}

// Hit accepts a hit at now if the holder is vulnerable and opens the window.
func (v *Vulnerability) Hit(now int64) bool {
	if v == nil || v.invulnerable {
		return false
	}
	v.invulnerable = true
	v.hitAt = now
	return true
}

// Tick closes the window once it has fully elapsed.
func (v *Vulnerability) Tick(now int64) {
	if v == nil || !v.invulnerable {
		return
	}
	if now-v.hitAt >= v.Window {
		v.invulnerable = false
	}
}

// HitAt is the timestamp of the last accepted hit.
func (v *Vulnerability) HitAt() int64 {
	if v == nil {
		return 0
	}
	return v.hitAt
}
