package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/featherwake/common"
	"github.com/milk9111/featherwake/effect"
	"github.com/milk9111/featherwake/world"
	"golang.org/x/image/colornames"
)

const (
	barHeight      = 20
	healthBarWidth = 200
	energyBarWidth = 140
	itemBoxSize    = 80
	borderWidth    = 3
)

var (
	uiBackground   = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	uiBorder       = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
	uiBorderActive = colornames.Gold
	uiText         = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	healthColor    = colornames.Red
	energyColor    = colornames.Blue
)

type box struct {
	X, Y, W, H float32
}

func (b box) center() (float64, float64) {
	return float64(b.X + b.W/2), float64(b.Y + b.H/2)
}

// hudLayout places the bars top-left and the item boxes bottom-left of a
// screen of the given height.
type hudLayout struct {
	health, energy box
	weapon, spell  box
}

func layoutHUD(height int) hudLayout {
	h := float32(height)
	return hudLayout{
		health: box{X: 10, Y: 10, W: healthBarWidth, H: barHeight},
		energy: box{X: 10, Y: 34, W: energyBarWidth, H: barHeight},
		weapon: box{X: 30, Y: h - 90, W: itemBoxSize, H: itemBoxSize},
		spell:  box{X: 105, Y: h - 85, W: itemBoxSize, H: itemBoxSize},
	}
}

// fillBox is the filled part of a bar for current out of max.
func fillBox(b box, current, max float64) box {
	ratio := 0.0
	if max > 0 {
		ratio = common.Clamp(current/max, 0, 1)
	}
	b.W = float32(float64(b.W) * ratio)
	return b
}

func (r *Renderer) drawHUD(screen *ebiten.Image, hud world.HUD) {
	l := layoutHUD(screen.Bounds().Dy())

	drawBar(screen, l.health, hud.Health, hud.MaxHealth, healthColor)
	drawBar(screen, l.energy, hud.Energy, hud.MaxEnergy, energyColor)

	r.drawItem(screen, l.weapon, hud.WeaponSwitched, effect.WeaponClip(hud.Weapon), hud.Weapon.String())
	r.drawItem(screen, l.spell, hud.SpellSwitched, hud.Spell.String(), hud.Spell.String())

	if hud.Defeated {
		b := screen.Bounds()
		vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.RGBA{A: 160}, false)
		r.drawText(screen, "defeated", float64(b.Dx())/2, float64(b.Dy())/2, uiText)
	}
}

func drawBar(screen *ebiten.Image, b box, current, max float64, c color.Color) {
	vector.FillRect(screen, b.X, b.Y, b.W, b.H, uiBackground, false)
	f := fillBox(b, current, max)
	vector.FillRect(screen, f.X, f.Y, f.W, f.H, c, false)
	vector.StrokeRect(screen, b.X, b.Y, b.W, b.H, borderWidth, uiBorder, false)
}

// drawItem shows a selection box with the item's first frame centered in it.
// The border turns gold while the switch cooldown runs.
func (r *Renderer) drawItem(screen *ebiten.Image, b box, switched bool, clip, label string) {
	vector.FillRect(screen, b.X, b.Y, b.W, b.H, uiBackground, false)
	border := color.Color(uiBorder)
	if switched {
		border = uiBorderActive
	}
	vector.StrokeRect(screen, b.X, b.Y, b.W, b.H, borderWidth, border, false)

	cx, cy := b.center()
	if img := r.frame(clip, 0); img != nil {
		size := img.Bounds().Size()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(cx-float64(size.X)/2, cy-float64(size.Y)/2)
		screen.DrawImage(img, op)
	}
	r.drawText(screen, label, cx, float64(b.Y+b.H)-8, uiText)
}

func (r *Renderer) drawText(screen *ebiten.Image, s string, cx, cy float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, r.face, op)
}
