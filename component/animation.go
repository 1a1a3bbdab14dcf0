package component

// DefaultAnimationSpeed is the frame advance per tick shared by actors and
// particles.
const DefaultAnimationSpeed = 0.15

// Animator drives a clip index with sub-integer accumulation. The displayed
// frame is the floor of the accumulated index.
type Animator struct {
	Speed float64
	index float64
}

func NewAnimator(speed float64) Animator {
	return Animator{Speed: speed}
}

// Advance steps a looping clip of length frames. It returns true when the
// clip wrapped back to frame 0 on this step.
func (a *Animator) Advance(length int) bool {
	if a == nil || length <= 0 {
		return false
	}
	a.index += a.Speed
	if a.index >= float64(length) {
		a.index = 0
		return true
	}
	return false
}

// Play steps a one-shot clip. It returns true once the clip is exhausted.
func (a *Animator) Play(length int) bool {
	if a == nil {
		return true
	}
	a.index += a.Speed
	return int(a.index) >= length
}

// Frame returns the display frame for a clip of length frames, clamped so a
// clip switch never indexes past the end.
func (a *Animator) Frame(length int) int {
	if a == nil || length <= 0 {
		return 0
	}
	f := int(a.index)
	if f >= length {
		f = length - 1
	}
	if f < 0 {
		f = 0
	}
	return f
}

func (a *Animator) Reset() {
	if a != nil {
		a.index = 0
	}
}

// Index exposes the raw accumulated index.
func (a *Animator) Index() float64 {
	if a == nil {
		return 0
	}
	return a.index
}
