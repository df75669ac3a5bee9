package entity

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/cosmicheat/common"
	"github.com/milk9111/cosmicheat/ecs"
	"github.com/milk9111/cosmicheat/ecs/component"
	"github.com/milk9111/cosmicheat/prefabs"
)

// SideHeadings are the two directions of a side-to-side patrol.
var SideHeadings = []cp.Vector{{X: -1}, {X: 1}}

// CompassHeadings are the eight directions of an 8-way patrol.
var CompassHeadings = []cp.Vector{
	{X: -1}, {X: 1}, {Y: -1}, {Y: 1},
	{X: -1, Y: -1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: 1, Y: 1},
}

// NewBoss places the boss for slot centered on center. Its hit points are
// not part of the entity; they live in the session's BossRegistry.
func NewBoss(w *ecs.World, slot int, spec prefabs.BossSpec, center, dir cp.Vector) (ecs.Entity, error) {
	if slot < 0 || slot >= component.BossSlots {
		return 0, fmt.Errorf("boss: slot %d out of range", slot)
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return 0, fmt.Errorf("boss: %s has no size", spec.Name)
	}

	heading, ok := common.Unit(dir)
	if !ok {
		heading = cp.Vector{X: 1}
	}
	chase := spec.Speed
	if common.IsDiagonal(heading) {
		chase = spec.Speed / math.Sqrt2
	}

	e := ecs.CreateEntity(w)

	tr := &component.Transform{Width: spec.Width, Height: spec.Height}
	tr.SetCenter(center)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), tr); err != nil {
		return abandon(w, e, fmt.Errorf("boss: add transform: %w", err))
	}
	if err := ecs.Add(w, e, component.MotionComponent.Kind(), &component.Motion{Dir: heading, Speed: spec.Speed, BaseSpeed: spec.Speed}); err != nil {
		return abandon(w, e, fmt.Errorf("boss: add motion: %w", err))
	}
	if err := ecs.Add(w, e, component.BossComponent.Kind(), &component.Boss{Slot: slot, ChaseSpeed: chase}); err != nil {
		return abandon(w, e, fmt.Errorf("boss: add boss: %w", err))
	}
	if err := ecs.Add(w, e, component.CombatStatsComponent.Kind(), statsFromSpec(spec.Stats)); err != nil {
		return abandon(w, e, fmt.Errorf("boss: add stats: %w", err))
	}
	layer, _ := component.BossLayer(slot)
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Key: spec.Name, Layer: layer}); err != nil {
		return abandon(w, e, fmt.Errorf("boss: add sprite: %w", err))
	}

	return e, nil
}
