package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/featherwake/actor"
)

const stickDeadzone = 0.2

// KeyState reports whether a key is held.
type KeyState func(ebiten.Key) bool

// ReadInput maps held keys onto a frame of player intent. Actions are
// level-triggered; the player's cooldowns keep a held key from repeating.
func ReadInput(pressed KeyState) actor.Input {
	down := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if pressed(k) {
				return true
			}
		}
		return false
	}
	return actor.Input{
		Up:           down(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:         down(ebiten.KeyS, ebiten.KeyArrowDown),
		Left:         down(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right:        down(ebiten.KeyD, ebiten.KeyArrowRight),
		Attack:       down(ebiten.KeyE),
		Cast:         down(ebiten.KeyQ),
		SwitchWeapon: down(ebiten.KeyR),
		SwitchSpell:  down(ebiten.KeyTab),
	}
}

// StickInput turns a left stick position into directions.
func StickInput(in actor.Input, x, y float64) actor.Input {
	if math.Hypot(x, y) <= stickDeadzone {
		return in
	}
	in.Left = in.Left || x < -stickDeadzone
	in.Right = in.Right || x > stickDeadzone
	in.Up = in.Up || y < -stickDeadzone
	in.Down = in.Down || y > stickDeadzone
	return in
}

// PollInput reads the keyboard and the first standard gamepad.
func PollInput() actor.Input {
	in := ReadInput(ebiten.IsKeyPressed)

	gamepads := ebiten.AppendGamepadIDs(nil)
	if len(gamepads) == 0 {
		return in
	}
	id := gamepads[0]
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return in
	}
	in = StickInput(in,
		ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
		ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
	)
	held := func(b ebiten.StandardGamepadButton) bool { return ebiten.IsStandardGamepadButtonPressed(id, b) }
	in.Attack = in.Attack || held(ebiten.StandardGamepadButtonRightBottom)
	in.Cast = in.Cast || held(ebiten.StandardGamepadButtonRightRight)
	in.SwitchWeapon = in.SwitchWeapon || held(ebiten.StandardGamepadButtonFrontTopRight)
	in.SwitchSpell = in.SwitchSpell || held(ebiten.StandardGamepadButtonFrontTopLeft)
	return in
}

// PausePressed reports a fresh press of Escape or P.
func PausePressed(justPressed KeyState) bool {
	return justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyP)
}
