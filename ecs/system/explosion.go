package system

import (
	"github.com/milk9111/cosmicheat/ecs"
	"github.com/milk9111/cosmicheat/ecs/component"
)

// ExplosionSystem steps explosion animations and removes them after their
// last frame.
type ExplosionSystem struct{}

func NewExplosionSystem() *ExplosionSystem {
	return &ExplosionSystem{}
}

func (s *ExplosionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.ExplosionComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, ex *component.Explosion, sprite *component.Sprite) {
		ex.Tick++
		if ex.Tick < ex.FrameTicks {
			return
		}
		ex.Tick = 0
		ex.Frame++
		if ex.Frame >= ex.Frames {
			ecs.QueueDestroy(w, e)
			return
		}
		sprite.Variant = ex.Frame
	})
}
