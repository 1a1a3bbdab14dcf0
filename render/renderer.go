package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/featherwake/asset"
	"github.com/milk9111/featherwake/component"
	"github.com/milk9111/featherwake/world"
	"golang.org/x/image/font/basicfont"
)

// Renderer draws draw lists and the HUD. It never mutates the world.
type Renderer struct {
	clips *asset.Cache
	face  text.Face
	debug bool
}

// NewRenderer draws from clips, normally the cache the world was built with,
// so each clip is decoded once.
func NewRenderer(clips *asset.Cache, debug bool) *Renderer {
	return &Renderer{
		clips: clips,
		face:  text.NewGoXFace(basicfont.Face7x13),
		debug: debug,
	}
}

// Draw paints the floor, then every sprite in list order, then the HUD.
func (r *Renderer) Draw(screen *ebiten.Image, dl world.DrawList, hud world.HUD) {
	r.drawSprite(screen, dl.Floor)
	for _, s := range dl.Sprites {
		r.drawSprite(screen, s)
	}
	r.drawHUD(screen, hud)

	if r.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f  sprites: %d  camera: %.0f,%.0f",
			ebiten.ActualFPS(), len(dl.Sprites), dl.Offset.X, dl.Offset.Y))
	}
}

func (r *Renderer) drawSprite(screen *ebiten.Image, s world.Sprite) {
	img := r.frame(s.Clip, s.Frame)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(s.X, s.Y)
	if s.Alpha < component.AlphaOpaque {
		op.ColorScale.ScaleAlpha(float32(s.Alpha) / float32(component.AlphaOpaque))
	}
	screen.DrawImage(img, op)
}

// frame resolves a clip frame to an image. Clips the world never preloaded,
// or frames without an ebiten image, draw nothing.
func (r *Renderer) frame(clip string, i int) *ebiten.Image {
	c, err := r.clips.Get(clip)
	if err != nil {
		return nil
	}
	img, _ := c.At(i).Image.(*ebiten.Image)
	return img
}
