package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/cosmicheat/ecs"
	"github.com/milk9111/cosmicheat/ecs/component"
	"github.com/milk9111/cosmicheat/prefabs"
)

// NewCharger places an Enemy2 centered on center. dirX is the sign of its
// initial sideways heading.
func NewCharger(w *ecs.World, spec prefabs.ChargerSpec, center cp.Vector, dirX float64, variant int) (ecs.Entity, error) {
	if dirX >= 0 {
		dirX = 1
	} else {
		dirX = -1
	}

	e := ecs.CreateEntity(w)

	tr := &component.Transform{Width: spec.Width, Height: spec.Height}
	tr.SetCenter(center)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), tr); err != nil {
		return abandon(w, e, fmt.Errorf("charger: add transform: %w", err))
	}
	if err := ecs.Add(w, e, component.MotionComponent.Kind(), &component.Motion{Dir: cp.Vector{X: dirX}, Speed: spec.Speed, BaseSpeed: spec.Speed}); err != nil {
		return abandon(w, e, fmt.Errorf("charger: add motion: %w", err))
	}
	if err := ecs.Add(w, e, component.ChargerComponent.Kind(), &component.Charger{}); err != nil {
		return abandon(w, e, fmt.Errorf("charger: add charger: %w", err))
	}
	if err := ecs.Add(w, e, component.CombatStatsComponent.Kind(), statsFromSpec(spec.Stats)); err != nil {
		return abandon(w, e, fmt.Errorf("charger: add stats: %w", err))
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Key: "enemy2", Variant: variant, Layer: component.LayerCharger}); err != nil {
		return abandon(w, e, fmt.Errorf("charger: add sprite: %w", err))
	}

	return e, nil
}
