package system

import (
	"github.com/milk9111/cosmicheat/ecs"
	"github.com/milk9111/cosmicheat/ecs/component"
)

// BlackHoleStage drains one point of life for every frame a black hole
// overlaps the player. Black holes only leave by falling off screen.
type BlackHoleStage struct {
	env *Env
}

func NewBlackHoleStage(env *Env) *BlackHoleStage {
	return &BlackHoleStage{env: env}
}

func (s *BlackHoleStage) Resolve(w *ecs.World) component.Delta {
	var d component.Delta
	if s == nil || w == nil {
		return d
	}

	player, hasPlayer := playerBox(w)
	points := score(w)

	forEachHazard(w, component.HazardBlackHole, func(e ecs.Entity, h *component.Hazard, m *component.Motion, t *component.Transform, stats *component.CombatStats) {
		if !advanceHazard(w, e, h, m, t) {
			return
		}
		if hasPlayer && t.Rect().Overlaps(player) {
			d.Life -= stats.ContactDamage
			emit(w, component.CueBlackHole)
		}
		m.Speed = s.env.Tuning.TierSpeed(points, m.BaseSpeed)
	})

	return d
}
