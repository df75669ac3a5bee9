package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/cosmicheat/common"
	"github.com/milk9111/cosmicheat/ecs"
	"github.com/milk9111/cosmicheat/ecs/component"
	"github.com/milk9111/cosmicheat/ecs/entity"
)

// ChargerStage runs every Enemy2: a sideways patrol that drops bullets on a
// timer until the shot cap, then a chase at the player that never ends.
type ChargerStage struct {
	env *Env
}

func NewChargerStage(env *Env) *ChargerStage {
	return &ChargerStage{env: env}
}

func (s *ChargerStage) patrol(w *ecs.World, e ecs.Entity, c *component.Charger, m *component.Motion, t *component.Transform) {
	spec := s.env.Tuning.Charger
	side := s.env.Tuning.Rules.SideMargin

	t.X += m.Dir.X * m.Speed
	t.Y = math.Max(t.Y, s.env.Tuning.Rules.BouncerMargin)

	if t.X < side {
		t.X = side
		m.Dir = cp.Vector{X: 1}
	} else if t.Right() > common.ArenaWidth-side {
		t.X = common.ArenaWidth - side - t.Width
		m.Dir = cp.Vector{X: -1}
	}

	c.ShootTimer++
	if c.ShootTimer < spec.ShootEvery {
		return
	}
	c.ShootTimer = 0
	c.ShotsFired++

	_, err := entity.NewBullet(w, s.env.Tuning.Bullets.Charger, entity.Shot{
		Kind:   component.ChargerBullet,
		Owner:  component.OwnerCharger,
		Source: e,
		Muzzle: cp.Vector{X: t.X + t.Width/2, Y: t.Bottom()},
		Dir:    cp.Vector{Y: 1},
		Damage: s.env.Tuning.Bullets.Charger.Damage,
		Layer:  component.LayerChargerBullet,
	})
	if err != nil {
		s.env.logf("sim: %v", err)
		return
	}
	emit(w, component.CueChargerShoot)
}

func (s *ChargerStage) chase(m *component.Motion, t *component.Transform, target cp.Vector) {
	m.Speed = s.env.Tuning.Charger.ChaseSpeed
	m.Dir = common.Toward(t.Center(), target, m.Dir)
	t.Translate(m.Step())
}

func (s *ChargerStage) Resolve(w *ecs.World) component.Delta {
	var d component.Delta
	if s == nil || w == nil {
		return d
	}

	player, hasPlayer := playerBox(w)
	target := player.Center()

	var bodies []separationBody
	ecs.ForEach3(w, component.ChargerComponent.Kind(), component.MotionComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, c *component.Charger, m *component.Motion, t *component.Transform) {
		if !c.Chasing && c.ShotsFired >= s.env.Tuning.Charger.ShotCap {
			c.Chasing = true
			s.env.logf("sim: charger %v starts chasing", e)
		}
		if c.Chasing {
			if hasPlayer {
				s.chase(m, t, target)
			}
		} else {
			s.patrol(w, e, c, m, t)
		}
		bodies = append(bodies, separationBody{e: e, t: t, m: m, movable: !c.Chasing})
	})
	separateAll(bodies, s.env.Tuning.Rules.SeparationForce)

	chargerShots := bulletFilter{owner: component.OwnerCharger}
	advanceBullets(w, chargerShots)

	ecs.ForEach3(w, component.ChargerComponent.Kind(), component.TransformComponent.Kind(), component.CombatStatsComponent.Kind(), func(e ecs.Entity, _ *component.Charger, t *component.Transform, stats *component.CombatStats) {
		box := t.Rect()
		center := box.Center()

		if hasPlayer && box.Overlaps(player) {
			d.Life -= stats.ContactDamage
			d.Score += stats.ScoreOnContact
			s.env.explode(w, entity.ExplosionLarge, center)
			ecs.QueueDestroy(w, e)
			emit(w, component.CueExplosion)
			return
		}

		if consumePlayerBullets(w, box) == 0 {
			return
		}
		ecs.QueueDestroy(w, e)
		d.Score += stats.ScoreOnKill
		s.env.explode(w, entity.ExplosionLarge, center)
		emit(w, component.CueExplosion)
		s.env.drop(w, component.DoubleRefill, stats.DropChance, center)
	})

	if hasPlayer {
		d.Life -= s.env.bulletHits(w, chargerShots, player)
	}

	return d
}
