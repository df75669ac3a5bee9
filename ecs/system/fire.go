package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/cosmicheat/common"
	"github.com/milk9111/cosmicheat/ecs"
	"github.com/milk9111/cosmicheat/ecs/component"
	"github.com/milk9111/cosmicheat/ecs/entity"
)

// FireSystem spawns a player bullet while shoot is held, ammo remains and
// the cooldown has elapsed. Each shot costs one round.
type FireSystem struct {
	env *Env
}

func NewFireSystem(env *Env) *FireSystem {
	return &FireSystem{env: env}
}

func (s *FireSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	in := currentInput(w)
	res := resources(w)
	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Player, t *component.Transform) {
		if p.FireCooldown > 0 {
			p.FireCooldown--
		}
		if !in.Holding(component.ActionShoot) || res == nil || res.Ammo <= 0 || p.FireCooldown > 0 {
			return
		}

		_, err := entity.NewBullet(w, s.env.Tuning.Bullets.Player, entity.Shot{
			Kind:   component.PlayerBullet,
			Owner:  component.OwnerPlayer,
			Source: e,
			Muzzle: cp.Vector{X: t.X + t.Width/2, Y: t.Y},
			Dir:    cp.Vector{Y: -1},
			Layer:  component.LayerPlayerBullet,
		})
		if err != nil {
			s.env.logf("sim: %v", err)
			return
		}

		res.Ammo--
		p.FireCooldown = common.MillisToFrames(s.env.Tuning.Player.ShootDelayMs)
		emit(w, component.CueShoot)
	})
}
