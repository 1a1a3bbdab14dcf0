package render

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/featherwake/asset"
	"golang.org/x/image/colornames"
)

// defaultFrameCounts covers clips whose frame count carries meaning: object
// codes index the objects clip and grass variants are picked at random.
var defaultFrameCounts = map[string]int{
	"objects":      21,
	"grass":        3,
	"floor":        1,
	"mural_before": 1,
	"mural_after":  1,
}

// clipColors is matched by prefix, longest first.
var clipColors = []struct {
	prefix string
	color  color.RGBA
}{
	{"player", colornames.Royalblue},
	{"squid", colornames.Mediumpurple},
	{"raccoon", colornames.Saddlebrown},
	{"grass", colornames.Forestgreen},
	{"objects", colornames.Slategray},
	{"floor", colornames.Darkolivegreen},
	{"mural", colornames.Peru},
	{"weapon", colornames.Silver},
	{"flame", colornames.Orangered},
	{"heal", colornames.Gold},
	{"aura", colornames.Khaki},
	{"leaf", colornames.Yellowgreen},
	{"slash", colornames.White},
}

// Placeholder draws flat colored frames so the game runs without art.
type Placeholder struct {
	// Tile is the edge of a default frame.
	Tile int
	// Sizes overrides frame size per clip, e.g. the floor spans the map.
	Sizes map[string][2]int
	// Counts overrides frame count per clip.
	Counts map[string]int
}

func NewPlaceholder(tile int) *Placeholder {
	return &Placeholder{
		Tile:   tile,
		Sizes:  map[string][2]int{"objects": {tile, tile * 2}, "mural_before": {tile * 3, tile * 3}, "mural_after": {tile * 3, tile * 3}},
		Counts: map[string]int{},
	}
}

func (p *Placeholder) Clip(name string) (asset.Clip, error) {
	w, h := p.frameSize(name)
	n := p.frameCount(name)
	base := ClipColor(name)

	clip := asset.Clip{Name: name, Frames: make([]asset.Frame, n)}
	for i := range clip.Frames {
		img := ebiten.NewImage(w, h)
		img.Fill(shade(base, i, n))
		clip.Frames[i] = asset.Frame{W: w, H: h, Image: img}
	}
	return clip, nil
}

func (p *Placeholder) frameSize(name string) (int, int) {
	if s, ok := p.Sizes[name]; ok && s[0] > 0 && s[1] > 0 {
		return s[0], s[1]
	}
	if p.Tile <= 0 {
		return 64, 64
	}
	return p.Tile, p.Tile
}

func (p *Placeholder) frameCount(name string) int {
	if n, ok := p.Counts[name]; ok && n > 0 {
		return n
	}
	if n, ok := defaultFrameCounts[name]; ok {
		return n
	}
	return 4
}

// ClipColor picks the placeholder color for a clip name.
func ClipColor(name string) color.RGBA {
	best, bestLen := colornames.Magenta, 0
	for _, c := range clipColors {
		if strings.HasPrefix(name, c.prefix) && len(c.prefix) > bestLen {
			best, bestLen = c.color, len(c.prefix)
		}
	}
	return best
}

// shade darkens later frames a little so animation is visible.
func shade(c color.RGBA, i, n int) color.RGBA {
	if n <= 1 {
		return c
	}
	f := 1 - 0.3*float64(i)/float64(n-1)
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
