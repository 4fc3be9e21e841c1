// Package input reads the keyboard and standard gamepads through ebiten.
package input

import (
	cfg "github.com/automoto/doomerang-monster/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// AxisBinding maps a pair of keys and a stick axis onto one raw axis.
type AxisBinding struct {
	Negative []ebiten.Key
	Positive []ebiten.Key
	Stick    ebiten.StandardGamepadAxis
	Invert   bool // stick reports the opposite sign of the axis
}

// ActionBinding represents the keys and buttons bound to an action
type ActionBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

var AxisBindings = [cfg.AxisCount]AxisBinding{
	cfg.AxisHorizontal: {
		Negative: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
		Positive: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
		Stick:    ebiten.StandardGamepadAxisLeftStickHorizontal,
	},
	cfg.AxisVertical: {
		Negative: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
		Positive: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
		Stick:    ebiten.StandardGamepadAxisLeftStickVertical,
		// Stick up is negative in the standard layout
		Invert: true,
	},
}

var ActionBindings = map[cfg.ActionID]ActionBinding{
	cfg.ActionJump: {
		Keys: []ebiten.Key{ebiten.KeySpace},
		// A / Cross button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightBottom,
		},
	},
}

// Device is an InputSource over the live keyboard and every connected
// standard-layout gamepad. Keys give -1, 0 or 1; a stick past the deadzone
// overrides the keys with its own value.
type Device struct {
	gamepadIDs []ebiten.GamepadID
}

func NewDevice() *Device {
	return &Device{}
}

func (d *Device) Axis(id cfg.AxisID) float64 {
	if id < 0 || id >= cfg.AxisCount {
		return 0
	}
	binding := AxisBindings[id]

	value := 0.0
	if anyKeyPressed(binding.Positive) {
		value++
	}
	if anyKeyPressed(binding.Negative) {
		value--
	}

	d.gamepadIDs = ebiten.AppendGamepadIDs(d.gamepadIDs[:0])
	for _, gpID := range d.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		stick := ebiten.StandardGamepadAxisValue(gpID, binding.Stick)
		if binding.Invert {
			stick = -stick
		}
		if stick > cfg.Input.AnalogDeadzone || stick < -cfg.Input.AnalogDeadzone {
			value = stick
		}
	}
	return value
}

func (d *Device) Pressed(id cfg.ActionID) bool {
	binding, ok := ActionBindings[id]
	if !ok {
		return false
	}
	if anyKeyPressed(binding.Keys) {
		return true
	}

	d.gamepadIDs = ebiten.AppendGamepadIDs(d.gamepadIDs[:0])
	for _, gpID := range d.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}

func anyKeyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
