package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/cosmicheat/common"
	"github.com/milk9111/cosmicheat/ecs"
	"github.com/milk9111/cosmicheat/ecs/component"
	"github.com/milk9111/cosmicheat/prefabs"
)

// PlayerSpawn is the top-left corner the player starts from: centered
// horizontally, resting on the bottom edge.
func PlayerSpawn(spec prefabs.PlayerSpec) cp.Vector {
	return cp.Vector{X: common.ArenaWidth/2 - spec.Width/2, Y: common.ArenaHeight - spec.Height}
}

func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec) (ecs.Entity, error) {
	pos := PlayerSpawn(spec)
	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X: pos.X, Y: pos.Y, Width: spec.Width, Height: spec.Height,
	}); err != nil {
		return abandon(w, e, fmt.Errorf("player: add transform: %w", err))
	}
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{Speed: spec.Speed}); err != nil {
		return abandon(w, e, fmt.Errorf("player: add player: %w", err))
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Key: "player", Layer: component.LayerPlayer}); err != nil {
		return abandon(w, e, fmt.Errorf("player: add sprite: %w", err))
	}

	return e, nil
}
