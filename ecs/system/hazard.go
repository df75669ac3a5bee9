package system

import (
	"math"

	"github.com/milk9111/cosmicheat/common"
	"github.com/milk9111/cosmicheat/ecs"
	"github.com/milk9111/cosmicheat/ecs/component"
	"github.com/milk9111/cosmicheat/ecs/entity"
)

// Off-screen margins past which hazards are retired.
const (
	meteorExit  = 50
	fallingExit = 300
)

func forEachHazard(w *ecs.World, kind component.HazardKind, fn func(ecs.Entity, *component.Hazard, *component.Motion, *component.Transform, *component.CombatStats)) {
	ecs.ForEach4(w, component.HazardComponent.Kind(), component.MotionComponent.Kind(), component.TransformComponent.Kind(), component.CombatStatsComponent.Kind(),
		func(e ecs.Entity, h *component.Hazard, m *component.Motion, t *component.Transform, stats *component.CombatStats) {
			if h.Kind != kind {
				return
			}
			fn(e, h, m, t, stats)
		})
}

// advanceHazard moves and spins a hazard and reports whether it is still
// on its way through the arena.
func advanceHazard(w *ecs.World, e ecs.Entity, h *component.Hazard, m *component.Motion, t *component.Transform) bool {
	t.Translate(m.Step())
	t.Angle = math.Mod(t.Angle+h.Spin+360, 360)

	gone := false
	switch h.Kind {
	case component.HazardMeteor:
		gone = t.Bottom() >= common.ArenaHeight+meteorExit || t.Right() >= common.ArenaWidth+meteorExit
	default:
		gone = t.Bottom() >= common.ArenaHeight+fallingExit
	}
	if gone {
		ecs.QueueDestroy(w, e)
		return false
	}
	return true
}

// HazardStage resolves one meteor group. A meteor that hits the player
// explodes on contact; otherwise any player bullets touching it die with
// it. Survivors pick up the score tier speed.
type HazardStage struct {
	env  *Env
	kind component.HazardKind
}

func NewHazardStage(env *Env, kind component.HazardKind) *HazardStage {
	return &HazardStage{env: env, kind: kind}
}

func (s *HazardStage) Resolve(w *ecs.World) component.Delta {
	var d component.Delta
	if s == nil || w == nil {
		return d
	}

	player, hasPlayer := playerBox(w)
	points := score(w)

	forEachHazard(w, s.kind, func(e ecs.Entity, h *component.Hazard, m *component.Motion, t *component.Transform, stats *component.CombatStats) {
		if !advanceHazard(w, e, h, m, t) {
			return
		}
		box := t.Rect()
		center := box.Center()

		if hasPlayer && box.Overlaps(player) {
			d.Life -= stats.ContactDamage
			d.Score += stats.ScoreOnContact
			s.env.explode(w, entity.ExplosionSmall, center)
			ecs.QueueDestroy(w, e)
			emit(w, component.CueExplosion)
			return
		}

		if consumePlayerBullets(w, box) > 0 {
			ecs.QueueDestroy(w, e)
			d.Score += stats.ScoreOnKill
			s.env.explode(w, entity.ExplosionSmall, center)
			emit(w, component.CueExplosion)
			s.env.drop(w, component.DoubleRefill, stats.DropChance, center)
			s.env.logf("sim: %s destroyed by bullet", h.Kind)
			return
		}

		m.Speed = s.env.Tuning.TierSpeed(points, m.BaseSpeed)
	})

	return d
}
