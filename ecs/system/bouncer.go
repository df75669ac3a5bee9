package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/cosmicheat/common"
	"github.com/milk9111/cosmicheat/ecs"
	"github.com/milk9111/cosmicheat/ecs/component"
	"github.com/milk9111/cosmicheat/ecs/entity"
)

// Inward headings a bouncer may take after touching each wall.
var (
	offLeftWall   = []cp.Vector{{X: 1}, {Y: -1}, {Y: 1}, {X: 1, Y: -1}, {X: 1, Y: 1}}
	offRightWall  = []cp.Vector{{X: -1}, {Y: -1}, {Y: 1}, {X: -1, Y: -1}, {X: -1, Y: 1}}
	offTopWall    = []cp.Vector{{X: 1}, {X: -1}, {Y: 1}, {X: 1, Y: 1}, {X: -1, Y: 1}}
	offBottomWall = []cp.Vector{{X: 1}, {X: -1}, {Y: -1}, {X: 1, Y: -1}, {X: -1, Y: -1}}
)

// BouncerStage moves every Enemy1, separates overlapping pairs and then
// resolves collisions. All movement finishes before the first collision
// test.
type BouncerStage struct {
	env *Env
}

func NewBouncerStage(env *Env) *BouncerStage {
	return &BouncerStage{env: env}
}

func (s *BouncerStage) redirect(m *component.Motion, options []cp.Vector) {
	if dir, ok := common.Unit(common.Pick(s.env.Dice, options)); ok {
		m.Dir = dir
	}
}

func (s *BouncerStage) advance(t *component.Transform, m *component.Motion) {
	margin := s.env.Tuning.Rules.BouncerMargin
	t.Translate(m.Step())

	if t.X < margin {
		t.X = margin
		s.redirect(m, offLeftWall)
	} else if t.Right() > common.ArenaWidth-margin {
		t.X = common.ArenaWidth - margin - t.Width
		s.redirect(m, offRightWall)
	}

	if t.Y < margin {
		t.Y = margin
		s.redirect(m, offTopWall)
	} else if t.Bottom() > common.ArenaHeight-margin {
		t.Y = common.ArenaHeight - margin - t.Height
		s.redirect(m, offBottomWall)
	}
}

func (s *BouncerStage) Resolve(w *ecs.World) component.Delta {
	var d component.Delta
	if s == nil || w == nil {
		return d
	}

	var bodies []separationBody
	ecs.ForEach3(w, component.BouncerComponent.Kind(), component.MotionComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Bouncer, m *component.Motion, t *component.Transform) {
		s.advance(t, m)
		bodies = append(bodies, separationBody{e: e, t: t, m: m, movable: true})
	})
	separateAll(bodies, s.env.Tuning.Rules.SeparationForce)

	player, hasPlayer := playerBox(w)
	ecs.ForEach3(w, component.BouncerComponent.Kind(), component.TransformComponent.Kind(), component.CombatStatsComponent.Kind(), func(e ecs.Entity, _ *component.Bouncer, t *component.Transform, stats *component.CombatStats) {
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

		if consumePlayerBullets(w, box) == 0 {
			return
		}
		ecs.QueueDestroy(w, e)
		d.Score += stats.ScoreOnKill
		s.env.explode(w, entity.ExplosionSmall, center)
		emit(w, component.CueExplosion)

		s.env.drop(w, component.BulletRefill, stats.DropChance, center)
		if common.Roll(s.env.Dice, stats.HealthDropChance) {
			s.env.spawnPickup(w, component.HealthRefill, cp.Vector{
				X: float64(common.Between(s.env.Dice, 50, common.ArenaWidth-30)),
				Y: float64(common.Between(s.env.Dice, -common.ArenaHeight, -30)),
			})
		}
	})

	return d
}
