package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/cosmicheat/ecs"
	"github.com/milk9111/cosmicheat/ecs/component"
	"github.com/milk9111/cosmicheat/prefabs"
)

const (
	ExplosionSmall = "explosion1"
	ExplosionLarge = "explosion2"
	ExplosionKill  = "explosion3"
)

func NewExplosion(w *ecs.World, key string, spec prefabs.ExplosionSpec, center cp.Vector, frameTicks int) (ecs.Entity, error) {
	if spec.Frames <= 0 {
		return 0, fmt.Errorf("explosion: %s has no frames", key)
	}
	if frameTicks <= 0 {
		frameTicks = 1
	}

	e := ecs.CreateEntity(w)

	tr := &component.Transform{Width: spec.Width, Height: spec.Height}
	tr.SetCenter(center)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), tr); err != nil {
		return abandon(w, e, fmt.Errorf("explosion: add transform: %w", err))
	}
	if err := ecs.Add(w, e, component.ExplosionComponent.Kind(), &component.Explosion{Key: key, Frames: spec.Frames, FrameTicks: frameTicks}); err != nil {
		return abandon(w, e, fmt.Errorf("explosion: add explosion: %w", err))
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Key: key, Layer: component.LayerExplosion}); err != nil {
		return abandon(w, e, fmt.Errorf("explosion: add sprite: %w", err))
	}

	return e, nil
}
