package system

import (
	"github.com/milk9111/cosmicheat/common"
	"github.com/milk9111/cosmicheat/ecs"
	"github.com/milk9111/cosmicheat/ecs/component"
	"github.com/milk9111/cosmicheat/ecs/entity"
)

// bulletFilter selects one hostile bullet collection: every charger bullet,
// or the bullets of a single boss slot.
type bulletFilter struct {
	owner component.OwnerKind
	slot  int
}

func (f bulletFilter) match(b *component.Bullet) bool {
	if b.Owner != f.owner {
		return false
	}
	return f.owner != component.OwnerBoss || b.Slot == f.slot
}

// advanceBullets flies the collection and retires bullets that left the arena.
func advanceBullets(w *ecs.World, f bulletFilter) {
	ecs.ForEach3(w, component.BulletComponent.Kind(), component.MotionComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, b *component.Bullet, m *component.Motion, t *component.Transform) {
		if !f.match(b) {
			return
		}
		t.Translate(m.Step())
		if outsideArena(t.Rect(), 0) {
			ecs.QueueDestroy(w, e)
		}
	})
}

// bulletHits destroys every bullet of the collection touching the player
// and returns the life lost.
func (env *Env) bulletHits(w *ecs.World, f bulletFilter, player common.Rect) int {
	lost := 0
	ecs.ForEach2(w, component.BulletComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, b *component.Bullet, t *component.Transform) {
		if !f.match(b) || !t.Rect().Overlaps(player) {
			return
		}
		lost += b.Damage
		env.explode(w, entity.ExplosionKill, player.Center())
		ecs.QueueDestroy(w, e)
		emit(w, component.CueDamage)
	})
	return lost
}
