package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/cosmicheat/ecs"
	"github.com/milk9111/cosmicheat/ecs/component"
	"github.com/milk9111/cosmicheat/prefabs"
)

// HazardSpecFor picks the tuning entry for kind.
func HazardSpecFor(t *prefabs.Tuning, kind component.HazardKind) (prefabs.HazardSpec, error) {
	switch kind {
	case component.HazardMeteor:
		return t.Hazards.Meteor, nil
	case component.HazardMeteor2:
		return t.Hazards.Meteor2, nil
	case component.HazardBlackHole:
		return t.Hazards.BlackHole, nil
	}
	return prefabs.HazardSpec{}, fmt.Errorf("%w: hazard %d", prefabs.ErrUnknownKind, kind)
}

// NewHazard places a meteor or black hole with its top-left corner at pos.
// Diagonal meteors drift down and right, the rest fall straight down.
func NewHazard(w *ecs.World, kind component.HazardKind, spec prefabs.HazardSpec, pos cp.Vector, variant int) (ecs.Entity, error) {
	dir := cp.Vector{Y: 1}
	layer := component.LayerMeteor
	switch kind {
	case component.HazardMeteor:
		dir = cp.Vector{X: 1, Y: 1}.Normalize()
	case component.HazardBlackHole:
		layer = component.LayerBlackHole
	}

	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X: pos.X, Y: pos.Y, Width: spec.Width, Height: spec.Height,
	}); err != nil {
		return abandon(w, e, fmt.Errorf("hazard: add transform: %w", err))
	}
	if err := ecs.Add(w, e, component.MotionComponent.Kind(), &component.Motion{Dir: dir, Speed: spec.Speed, BaseSpeed: spec.Speed}); err != nil {
		return abandon(w, e, fmt.Errorf("hazard: add motion: %w", err))
	}
	if err := ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{Kind: kind, Spin: spec.Spin}); err != nil {
		return abandon(w, e, fmt.Errorf("hazard: add hazard: %w", err))
	}
	if err := ecs.Add(w, e, component.CombatStatsComponent.Kind(), statsFromSpec(spec.Stats)); err != nil {
		return abandon(w, e, fmt.Errorf("hazard: add stats: %w", err))
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Key: kind.String(), Variant: variant, Layer: layer}); err != nil {
		return abandon(w, e, fmt.Errorf("hazard: add sprite: %w", err))
	}

	return e, nil
}
