package component

// Pool is a bounded resource such as health or energy.
type Pool struct {
	Current float64
	Max     float64
}

// NewPool creates a pool with the given max, filled to fraction of it.
func NewPool(max, fraction float64) Pool {
	if max <= 0 {
		max = 1
	}
	p := Pool{Max: max}
	p.Set(max * fraction)
	return p
}

// Add changes Current by amount and clamps to [0, Max].
func (p *Pool) Add(amount float64) {
	if p == nil {
		return
	}
	p.Set(p.Current + amount)
}

// Set assigns Current clamped to [0, Max].
func (p *Pool) Set(v float64) {
	if p == nil {
		return
	}
	switch {
	case v < 0:
		v = 0
	case v > p.Max:
		v = p.Max
	}
	p.Current = v
}

// Spend deducts cost if the pool can cover it. It reports whether it did.
func (p *Pool) Spend(cost float64) bool {
	if p == nil || cost < 0 || p.Current < cost {
		return false
	}
	p.Current -= cost
	return true
}

// Deduct subtracts amount without clamping. Enemy health uses it so lethal
// overkill stays observable until the death sweep.
func (p *Pool) Deduct(amount float64) {
	if p == nil {
		return
	}
	p.Current -= amount
}

// Ratio returns Current/Max for bar rendering.
func (p Pool) Ratio() float64 {
	if p.Max <= 0 {
		return 0
	}
	return p.Current / p.Max
}

// InBounds reports 0 <= Current <= Max.
func (p Pool) InBounds() bool {
	return p.Current >= 0 && p.Current <= p.Max
}

func (p Pool) Empty() bool {
	return p.Current <= 0
}
