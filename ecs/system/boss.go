package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/cosmicheat/common"
	"github.com/milk9111/cosmicheat/ecs"
	"github.com/milk9111/cosmicheat/ecs/component"
	"github.com/milk9111/cosmicheat/ecs/entity"
	"github.com/milk9111/cosmicheat/prefabs"
)

const wobbleRate = 0.01

var bossBulletKinds = [component.BossSlots]component.BulletKind{
	component.Boss1Bullet, component.Boss2Bullet, component.Boss3Bullet,
}

// BossStage runs the boss of one slot and that slot's bullets. The boss
// patrols and fires until its shot cap, then chases the player for good.
// Its hit points live in the BossRegistry; this stage is the only place
// that drains them.
type BossStage struct {
	env  *Env
	slot int
}

func NewBossStage(env *Env, slot int) *BossStage {
	return &BossStage{env: env, slot: slot}
}

func (s *BossStage) spec() (prefabs.BossSpec, bool) {
	if s.slot < 0 || s.slot >= component.BossSlots || s.slot >= len(s.env.Tuning.Bosses) {
		return prefabs.BossSpec{}, false
	}
	return s.env.Tuning.Bosses[s.slot], true
}

func (s *BossStage) Resolve(w *ecs.World) component.Delta {
	var d component.Delta
	if s == nil || w == nil {
		return d
	}
	spec, ok := s.spec()
	if !ok {
		return d
	}

	player, hasPlayer := playerBox(w)
	target := player.Center()
	ms := common.FramesToMillis(frame(w))

	forEachBoss(w, s.slot, func(e ecs.Entity, b *component.Boss, m *component.Motion, t *component.Transform, _ *component.CombatStats) {
		s.advance(w, e, spec, b, m, t, target, hasPlayer, ms)
	})

	shots := bulletFilter{owner: component.OwnerBoss, slot: s.slot}
	advanceBullets(w, shots)

	reg := registry(w)
	forEachBoss(w, s.slot, func(e ecs.Entity, _ *component.Boss, _ *component.Motion, t *component.Transform, stats *component.CombatStats) {
		box := t.Rect()
		center := box.Center()

		if hasPlayer && box.Overlaps(player) {
			d.Life -= stats.ContactDamage
			s.env.explode(w, entity.ExplosionLarge, center)
			emit(w, component.CueDamage)
		}

		if reg == nil {
			return
		}
		// Every overlapping bullet is spent; damage stops once the boss dies.
		for _, bullet := range overlappingPlayerBullets(w, box) {
			ecs.QueueDestroy(w, bullet)
			if ecs.IsQueued(w, e) {
				continue
			}
			s.env.explode(w, entity.ExplosionLarge, center)

			hp, _ := reg.Damage(s.slot, stats.HPPerBullet)
			if hp > 0 {
				continue
			}

			ecs.QueueDestroy(w, e)
			d.Score += stats.ScoreOnKill
			s.env.explode(w, entity.ExplosionKill, center)
			emit(w, component.CueExplosion)
			s.env.drop(w, component.DoubleRefill, stats.DropChance, center)
			s.env.logf("sim: %s destroyed", spec.Name)
		}
	})

	if hasPlayer {
		d.Life -= s.env.bulletHits(w, shots, player)
	}

	return d
}

func forEachBoss(w *ecs.World, slot int, fn func(ecs.Entity, *component.Boss, *component.Motion, *component.Transform, *component.CombatStats)) {
	ecs.ForEach4(w, component.BossComponent.Kind(), component.MotionComponent.Kind(), component.TransformComponent.Kind(), component.CombatStatsComponent.Kind(),
		func(e ecs.Entity, b *component.Boss, m *component.Motion, t *component.Transform, stats *component.CombatStats) {
			if b.Slot != slot {
				return
			}
			fn(e, b, m, t, stats)
		})
}

func (s *BossStage) advance(w *ecs.World, e ecs.Entity, spec prefabs.BossSpec, b *component.Boss, m *component.Motion, t *component.Transform, target cp.Vector, hasPlayer bool, ms float64) {
	wobble := spec.Wobble * math.Sin(ms*wobbleRate)
	t.Translate(cp.Vector{X: wobble, Y: wobble})

	if b.Phase == component.BossPatrol && b.ShotsFired >= spec.ShotCap {
		b.Phase = component.BossChase
		s.env.logf("sim: %s enters %s phase", spec.Name, b.Phase)
	}

	switch b.Phase {
	case component.BossPatrol:
		if spec.EightWay {
			s.patrolCompass(spec, b, m, t)
		} else {
			s.patrolSideways(spec, m, t)
		}
		b.ShootTimer++
		if b.ShootTimer >= spec.ShootEvery {
			b.ShootTimer = 0
			b.ShotsFired++
			s.fire(w, e, spec, t, target)
		}
	case component.BossChase:
		speed := spec.ChaseSpeed
		if speed <= 0 {
			speed = b.ChaseSpeed
		}
		if hasPlayer {
			m.Speed = speed
			m.Dir = common.Toward(t.Center(), target, m.Dir)
			t.Translate(m.Step())
		}
	}

	if spec.TeleportEvery > 0 {
		b.TeleportTimer++
		if b.TeleportTimer >= spec.TeleportEvery {
			b.TeleportTimer = 0
			t.SetCenter(cp.Vector{
				X: float64(common.Between(s.env.Dice, 50, common.ArenaWidth-50)),
				Y: float64(common.Between(s.env.Dice, 100, common.ArenaHeight-100)),
			})
		}
	}
}

// patrolSideways slides along x, bouncing off the side margins, and never
// lets the boss rise above the top margin.
func (s *BossStage) patrolSideways(spec prefabs.BossSpec, m *component.Motion, t *component.Transform) {
	rules := s.env.Tuning.Rules

	m.Speed = spec.Speed
	t.X += m.Dir.X * m.Speed
	t.Y = math.Max(t.Y, rules.TopMargin)

	if t.X < rules.SideMargin {
		t.X = rules.SideMargin
		m.Dir = cp.Vector{X: 1}
	} else if t.Right() > common.ArenaWidth-rules.SideMargin {
		t.X = common.ArenaWidth - rules.SideMargin - t.Width
		m.Dir = cp.Vector{X: -1}
	}
}

// patrolCompass moves along one of eight headings. At most one wall is
// handled per frame; the crossed axis flips inward and an idle axis is set
// so the boss leaves the wall diagonally.
func (s *BossStage) patrolCompass(spec prefabs.BossSpec, b *component.Boss, m *component.Motion, t *component.Transform) {
	rules := s.env.Tuning.Rules

	m.Speed = spec.Speed
	b.ChaseSpeed = spec.Speed
	if common.IsDiagonal(m.Dir) {
		b.ChaseSpeed = spec.Speed / math.Sqrt2
	}
	t.Translate(m.Step())

	sx, sy := common.Sign(m.Dir.X), common.Sign(m.Dir.Y)
	switch {
	case t.X < rules.SideMargin:
		t.X = rules.SideMargin
		sx = 1
		if sy == 0 {
			sy = 1
		}
	case t.Right() > common.ArenaWidth-rules.SideMargin:
		t.X = common.ArenaWidth - rules.SideMargin - t.Width
		sx = -1
		if sy == 0 {
			sy = 1
		}
	case t.Y < rules.TopMargin:
		t.Y = rules.TopMargin
		sy = 1
		if sx == 0 {
			sx = 1
		}
	case t.Bottom() > common.ArenaHeight-rules.SideMargin:
		t.Y = common.ArenaHeight - rules.SideMargin - t.Height
		sy = -1
		if sx == 0 {
			sx = 1
		}
	}

	if dir, ok := common.Unit(cp.Vector{X: sx, Y: sy}); ok {
		m.Dir = dir
	}
}

func (s *BossStage) fire(w *ecs.World, e ecs.Entity, spec prefabs.BossSpec, t *component.Transform, target cp.Vector) {
	bspec, err := s.env.Tuning.Bullets.ByName(spec.Bullet)
	if err != nil {
		s.env.logf("sim: %s: %v", spec.Name, err)
		return
	}

	_, layer := component.BossLayer(s.slot)
	muzzle := cp.Vector{X: t.X + t.Width/2, Y: t.Bottom()}
	shot := entity.Shot{
		Kind:   bossBulletKinds[s.slot],
		Owner:  component.OwnerBoss,
		Slot:   s.slot,
		Source: e,
		Damage: bspec.Damage,
		Layer:  layer,
	}

	var shots []entity.Shot
	switch spec.Pattern {
	case prefabs.PatternFan:
		for _, offset := range []float64{-spec.FanSpread, spec.FanSpread, 0} {
			fan := shot
			fan.Muzzle = muzzle.Add(cp.Vector{X: offset})
			fan.Dir = cp.Vector{Y: 1}
			shots = append(shots, fan)
		}
	case prefabs.PatternHoming:
		shot.Muzzle = muzzle
		shot.Dir = common.Toward(t.Center(), target, cp.Vector{Y: 1})
		shot.Homing = true
		shots = append(shots, shot)
	}

	for _, sh := range shots {
		if _, err := entity.NewBullet(w, bspec, sh); err != nil {
			s.env.logf("sim: %v", err)
			return
		}
	}
	if len(shots) > 0 {
		emit(w, component.CueBossShoot)
	}
}
