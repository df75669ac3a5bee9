package system

import (
	"github.com/milk9111/cosmicheat/common"
	"github.com/milk9111/cosmicheat/ecs"
	"github.com/milk9111/cosmicheat/ecs/component"
)

// PickupStage drops pickups, collects the ones touching the player and
// speeds up the rest as the score climbs.
type PickupStage struct {
	env *Env
}

func NewPickupStage(env *Env) *PickupStage {
	return &PickupStage{env: env}
}

func (s *PickupStage) Resolve(w *ecs.World) component.Delta {
	var d component.Delta
	if s == nil || w == nil {
		return d
	}

	player, hasPlayer := playerBox(w)
	points := score(w)
	limit := s.env.Tuning.Rules.RestoreCap

	ecs.ForEach3(w, component.PickupComponent.Kind(), component.MotionComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Pickup, m *component.Motion, t *component.Transform) {
		t.Translate(m.Step())
		if t.Y > common.ArenaHeight {
			ecs.QueueDestroy(w, e)
			return
		}

		if hasPlayer && t.Rect().Overlaps(player) {
			if p.HealthRestore > 0 {
				d.Life = min(d.Life+p.HealthRestore, limit)
			}
			if p.AmmoRestore > 0 {
				d.Ammo = min(d.Ammo+p.AmmoRestore, limit)
			}
			d.Score += p.ScoreBonus
			ecs.QueueDestroy(w, e)
			emit(w, component.CuePickup)
			return
		}

		m.Speed = s.env.Tuning.TierSpeed(points, m.BaseSpeed)
	})

	return d
}
