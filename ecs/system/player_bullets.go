package system

import (
	"github.com/milk9111/cosmicheat/ecs"
	"github.com/milk9111/cosmicheat/ecs/component"
)

// spentLine is the top edge a player bullet has to reach to be retired.
const spentLine = 1

// PlayerBulletSystem flies player bullets upward after the resolution pass
// and retires the ones that reach the top of the arena. Retired bullets
// count toward BulletsSpent; no ammo comes back.
type PlayerBulletSystem struct{}

func NewPlayerBulletSystem() *PlayerBulletSystem {
	return &PlayerBulletSystem{}
}

func (s *PlayerBulletSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	res := resources(w)
	ecs.ForEach3(w, component.BulletComponent.Kind(), component.MotionComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, b *component.Bullet, m *component.Motion, t *component.Transform) {
		if b.Owner != component.OwnerPlayer {
			return
		}
		t.Translate(m.Step())
		if t.Y <= spentLine || outsideArena(t.Rect(), 0) {
			ecs.QueueDestroy(w, e)
			if res != nil {
				res.BulletsSpent++
			}
		}
	})
}
