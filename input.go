package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/cosmicheat/common"
	"github.com/milk9111/cosmicheat/ecs/component"
)

const stickDeadzone = 0.2

var keyBindings = map[component.Action][]ebiten.Key{
	component.ActionUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
	component.ActionDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
	component.ActionLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	component.ActionRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	component.ActionShoot: {ebiten.KeySpace},
	component.ActionPause: {ebiten.KeyP, ebiten.KeyEscape},
	component.ActionQuit:  {ebiten.KeyQ},
}

var padBindings = map[component.Action][]ebiten.StandardGamepadButton{
	component.ActionUp:    {ebiten.StandardGamepadButtonLeftTop},
	component.ActionDown:  {ebiten.StandardGamepadButtonLeftBottom},
	component.ActionLeft:  {ebiten.StandardGamepadButtonLeftLeft},
	component.ActionRight: {ebiten.StandardGamepadButtonLeftRight},
	component.ActionShoot: {ebiten.StandardGamepadButtonRightBottom, ebiten.StandardGamepadButtonFrontBottomRight},
	component.ActionPause: {ebiten.StandardGamepadButtonCenterRight},
	component.ActionQuit:  {ebiten.StandardGamepadButtonCenterLeft},
}

// Input polls the keyboard and the first standard gamepad into the snapshot
// the engine consumes.
type Input struct {
	last component.Input
	pads []ebiten.GamepadID
}

func NewInput() *Input {
	return &Input{}
}

// Poll reads this frame's devices. extra adds actions pressed through the UI.
func (i *Input) Poll(extra component.ActionSet) component.Input {
	var held component.ActionSet
	for action, keys := range keyBindings {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				held = held.With(action)
				break
			}
		}
	}

	var stickX, stickY float64
	i.pads = ebiten.AppendGamepadIDs(i.pads[:0])
	if len(i.pads) > 0 {
		id := i.pads[0]
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			for action, buttons := range padBindings {
				for _, b := range buttons {
					if ebiten.IsStandardGamepadButtonPressed(id, b) {
						held = held.With(action)
						break
					}
				}
			}
			stickX = deadzone(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal))
			stickY = deadzone(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical))
		}
	}

	mx, my := moveAxes(held)
	if stickX != 0 {
		mx = stickX
	}
	if stickY != 0 {
		my = stickY
	}

	next := i.last.Advance(held, common.Clamp(mx, -1, 1), common.Clamp(my, -1, 1))
	next.Pressed |= extra
	i.last = next
	return next
}

// moveAxes turns directional actions into -1, 0 or 1 per axis. Opposite
// directions cancel.
func moveAxes(held component.ActionSet) (float64, float64) {
	var x, y float64
	if held.Has(component.ActionLeft) {
		x--
	}
	if held.Has(component.ActionRight) {
		x++
	}
	if held.Has(component.ActionUp) {
		y--
	}
	if held.Has(component.ActionDown) {
		y++
	}
	return x, y
}

func deadzone(v float64) float64 {
	if math.Abs(v) < stickDeadzone {
		return 0
	}
	return v
}
