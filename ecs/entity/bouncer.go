package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/cosmicheat/common"
	"github.com/milk9111/cosmicheat/ecs"
	"github.com/milk9111/cosmicheat/ecs/component"
	"github.com/milk9111/cosmicheat/prefabs"
)

// BouncerHeadings are the diagonal directions a bouncer may start with.
var BouncerHeadings = []cp.Vector{{X: -1, Y: -1}, {X: -1, Y: 1}, {X: 1, Y: -1}, {X: 1, Y: 1}}

// NewBouncer places an Enemy1 centered on center, heading along dir.
func NewBouncer(w *ecs.World, spec prefabs.BouncerSpec, center, dir cp.Vector, variant int) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	tr := &component.Transform{Width: spec.Width, Height: spec.Height}
	tr.SetCenter(center)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), tr); err != nil {
		return abandon(w, e, fmt.Errorf("bouncer: add transform: %w", err))
	}
	heading, _ := common.Unit(dir)
	if err := ecs.Add(w, e, component.MotionComponent.Kind(), &component.Motion{Dir: heading, Speed: spec.Speed, BaseSpeed: spec.Speed}); err != nil {
		return abandon(w, e, fmt.Errorf("bouncer: add motion: %w", err))
	}
	if err := ecs.Add(w, e, component.BouncerComponent.Kind(), &component.Bouncer{}); err != nil {
		return abandon(w, e, fmt.Errorf("bouncer: add bouncer: %w", err))
	}
	if err := ecs.Add(w, e, component.CombatStatsComponent.Kind(), statsFromSpec(spec.Stats)); err != nil {
		return abandon(w, e, fmt.Errorf("bouncer: add stats: %w", err))
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Key: "enemy1", Variant: variant, Layer: component.LayerBouncer}); err != nil {
		return abandon(w, e, fmt.Errorf("bouncer: add sprite: %w", err))
	}

	return e, nil
}
