package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/cosmicheat/ecs"
	"github.com/milk9111/cosmicheat/ecs/component"
	"github.com/milk9111/cosmicheat/prefabs"
)

func PickupSpecFor(t *prefabs.Tuning, kind component.PickupKind) (prefabs.PickupSpec, error) {
	switch kind {
	case component.BulletRefill:
		return t.Pickups.BulletRefill, nil
	case component.HealthRefill:
		return t.Pickups.HealthRefill, nil
	case component.DoubleRefill:
		return t.Pickups.DoubleRefill, nil
	case component.ExtraScore:
		return t.Pickups.ExtraScore, nil
	}
	return prefabs.PickupSpec{}, fmt.Errorf("%w: pickup %d", prefabs.ErrUnknownKind, kind)
}

// NewPickup drops a falling pickup centered on center.
func NewPickup(w *ecs.World, kind component.PickupKind, spec prefabs.PickupSpec, center cp.Vector) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	tr := &component.Transform{Width: spec.Width, Height: spec.Height}
	tr.SetCenter(center)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), tr); err != nil {
		return abandon(w, e, fmt.Errorf("pickup: add transform: %w", err))
	}
	if err := ecs.Add(w, e, component.MotionComponent.Kind(), &component.Motion{Dir: cp.Vector{Y: 1}, Speed: spec.Speed, BaseSpeed: spec.Speed}); err != nil {
		return abandon(w, e, fmt.Errorf("pickup: add motion: %w", err))
	}
	if err := ecs.Add(w, e, component.PickupComponent.Kind(), &component.Pickup{
		Kind:          kind,
		HealthRestore: spec.HealthRestore,
		AmmoRestore:   spec.AmmoRestore,
		ScoreBonus:    spec.ScoreBonus,
	}); err != nil {
		return abandon(w, e, fmt.Errorf("pickup: add pickup: %w", err))
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Key: kind.String(), Layer: component.LayerPickup}); err != nil {
		return abandon(w, e, fmt.Errorf("pickup: add sprite: %w", err))
	}

	return e, nil
}
