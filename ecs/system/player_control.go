package system

import (
	"math"

	"github.com/milk9111/cosmicheat/common"
	"github.com/milk9111/cosmicheat/ecs"
	"github.com/milk9111/cosmicheat/ecs/component"
)

// PlayerControlSystem moves the ship by the input vector and keeps it on
// screen. Each axis moves by a whole number of pixels.
type PlayerControlSystem struct{}

func NewPlayerControlSystem() *PlayerControlSystem {
	return &PlayerControlSystem{}
}

func (s *PlayerControlSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	in := currentInput(w)
	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Player, t *component.Transform) {
		dx := common.Clamp(in.MoveX, -1, 1)
		dy := common.Clamp(in.MoveY, -1, 1)

		if dx != 0 {
			t.X = common.Clamp(t.X+math.Trunc(dx*p.Speed), 0, common.ArenaWidth-t.Width)
		}
		if dy != 0 {
			t.Y = common.Clamp(t.Y+math.Trunc(dy*p.Speed), 0, common.ArenaHeight-t.Height)
		}

		switch {
		case dx < 0:
			p.Facing = component.FacingLeft
		case dx > 0:
			p.Facing = component.FacingRight
		default:
			p.Facing = component.FacingNone
		}
	})
}
