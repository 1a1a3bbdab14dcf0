package effect

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/featherwake/asset"
	"github.com/milk9111/featherwake/common"
	"github.com/milk9111/featherwake/component"
)

// Particle is a timed animation. It never collides; a particle with Damage
// set also acts as an attack hitbox until it expires.
type Particle struct {
	Rect   common.Rect
	Anim   component.Animator
	Damage float64

	clip asset.Clip
	done bool
	hits component.HitMemory
}

// NewParticle centers the clip's first frame on at.
func NewParticle(clip asset.Clip, at cp.Vector) *Particle {
	f := clip.At(0)
	return &Particle{
		Rect: common.RectCentered(at, float64(f.W), float64(f.H)),
		Anim: component.NewAnimator(component.DefaultAnimationSpeed),
		clip: clip,
	}
}

// Update advances one tick and reports whether the clip is exhausted.
func (p *Particle) Update() bool {
	if p.done {
		return true
	}
	p.done = p.Anim.Play(p.clip.Len())
	return p.done
}

func (p *Particle) Done() bool { return p.done }

func (p *Particle) Clip() string { return p.clip.Name }

func (p *Particle) Frame() int { return p.Anim.Frame(p.clip.Len()) }

func (p *Particle) Harmful() bool { return p.Damage > 0 }

func (p *Particle) Strike(target uint64) bool {
	return p.hits.Mark(target)
}
