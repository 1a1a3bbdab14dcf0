package common

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

func TestRectIntersects(t *testing.T) {
	base := RectAt(0, 0, 10, 10)
	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", RectAt(5, 5, 10, 10), true},
		{"contained", RectAt(2, 2, 2, 2), true},
		{"touching_right_edge", RectAt(10, 0, 10, 10), false},
		{"touching_bottom_edge", RectAt(0, 10, 10, 10), false},
		{"apart", RectAt(20, 20, 1, 1), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, base.Intersects(c.other))
			assert.Equal(t, c.want, c.other.Intersects(base))
		})
	}
}

func TestRectEdgesAndCenter(t *testing.T) {
	r := RectAt(0, 0, 64, 64)
	r.SetRight(100)
	assert.Equal(t, 36.0, r.Left())
	r.SetBottom(50)
	assert.Equal(t, -14.0, r.Top())

	moved := r.WithCenter(cp.Vector{X: 32, Y: 32})
	assert.Equal(t, cp.Vector{X: 32, Y: 32}, moved.Center())
	assert.Equal(t, r.Width, moved.Width)
}

func TestRectInflateKeepsCenter(t *testing.T) {
	r := RectAt(10, 10, 64, 64)
	hit := r.Inflate(0, -10)
	assert.Equal(t, r.Center(), hit.Center())
	assert.Equal(t, 54.0, hit.Height)
	assert.Equal(t, 15.0, hit.Top())
}

func TestRectBB(t *testing.T) {
	bb := RectAt(10, 20, 64, 32).BB()
	assert.Equal(t, 10.0, bb.L)
	assert.Equal(t, 20.0, bb.B)
	assert.Equal(t, 74.0, bb.R)
	assert.Equal(t, 52.0, bb.T)
	assert.True(t, bb.Contains(RectAt(12, 22, 8, 8).BB()))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 1))
	assert.Equal(t, 1.0, Clamp(2, 0, 1))
	assert.Equal(t, 0.25, Clamp(0.25, 0, 1))
}
