package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/cosmicheat/common"
	"github.com/milk9111/cosmicheat/ecs"
	"github.com/milk9111/cosmicheat/ecs/component"
	"github.com/milk9111/cosmicheat/prefabs"
)

const muzzleGap = 10

// Shot describes a projectile about to be fired. Muzzle is the point on the
// shooter it leaves from: the top edge center for the player, the bottom
// edge center for everything firing downward.
type Shot struct {
	Kind   component.BulletKind
	Owner  component.OwnerKind
	Slot   int
	Source ecs.Entity
	Muzzle cp.Vector
	Dir    cp.Vector
	Damage int
	Homing bool
	Layer  int
}

func NewBullet(w *ecs.World, spec prefabs.BulletSpec, shot Shot) (ecs.Entity, error) {
	tr := &component.Transform{Width: spec.Width, Height: spec.Height}
	tr.X = shot.Muzzle.X - spec.Width/2
	if shot.Owner == component.OwnerPlayer {
		tr.Y = shot.Muzzle.Y - muzzleGap - spec.Height
	} else {
		tr.Y = shot.Muzzle.Y + muzzleGap - spec.Height
	}

	dir, ok := common.Unit(shot.Dir)
	if !ok {
		dir = cp.Vector{Y: 1}
	}
	if shot.Homing {
		tr.Angle = common.Heading(dir)
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), tr); err != nil {
		return abandon(w, e, fmt.Errorf("bullet: add transform: %w", err))
	}
	if err := ecs.Add(w, e, component.MotionComponent.Kind(), &component.Motion{Dir: dir, Speed: spec.Speed, BaseSpeed: spec.Speed}); err != nil {
		return abandon(w, e, fmt.Errorf("bullet: add motion: %w", err))
	}
	if err := ecs.Add(w, e, component.BulletComponent.Kind(), &component.Bullet{
		Kind:   shot.Kind,
		Owner:  shot.Owner,
		Slot:   shot.Slot,
		Source: uint64(shot.Source),
		Damage: shot.Damage,
		Homing: shot.Homing,
	}); err != nil {
		return abandon(w, e, fmt.Errorf("bullet: add bullet: %w", err))
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Key: shot.Kind.SpriteKey(), Layer: shot.Layer}); err != nil {
		return abandon(w, e, fmt.Errorf("bullet: add sprite: %w", err))
	}
	return e, nil
}
