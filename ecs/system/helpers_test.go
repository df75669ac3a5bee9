package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/cosmicheat/ecs"
	"github.com/milk9111/cosmicheat/ecs/component"
	"github.com/milk9111/cosmicheat/ecs/entity"
	"github.com/milk9111/cosmicheat/prefabs"
)

// stubDice answers Intn from script and afterwards with n-1, which makes
// every Roll with a positive chance fail. With zero set it always answers 0.
type stubDice struct {
	script []int
	zero   bool
}

func (d *stubDice) Intn(n int) int {
	if d.zero {
		return 0
	}
	if len(d.script) > 0 {
		v := d.script[0]
		d.script = d.script[1:]
		if v >= n {
			v = n - 1
		}
		return v
	}
	return n - 1
}

func (d *stubDice) Float64() float64 { return 0.5 }

type fixture struct {
	t      *testing.T
	w      *ecs.World
	env    *Env
	dice   *stubDice
	player ecs.Entity
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	tuning, err := prefabs.DefaultTuning()
	if err != nil {
		t.Fatalf("load tuning: %v", err)
	}
	w := ecs.NewWorld()
	if _, err := entity.NewSession(w, tuning, 0); err != nil {
		t.Fatalf("session: %v", err)
	}
	player, err := entity.NewPlayer(w, tuning.Player)
	if err != nil {
		t.Fatalf("player: %v", err)
	}
	dice := &stubDice{}
	return &fixture{t: t, w: w, env: NewEnv(tuning, dice), dice: dice, player: player}
}

func (f *fixture) transform(e ecs.Entity) *component.Transform {
	f.t.Helper()
	tr, ok := ecs.Get(f.w, e, component.TransformComponent.Kind())
	if !ok {
		f.t.Fatalf("%v has no transform", e)
	}
	return tr
}

func (f *fixture) motion(e ecs.Entity) *component.Motion {
	f.t.Helper()
	m, ok := ecs.Get(f.w, e, component.MotionComponent.Kind())
	if !ok {
		f.t.Fatalf("%v has no motion", e)
	}
	return m
}

func (f *fixture) resources() *component.Resources {
	f.t.Helper()
	r := resources(f.w)
	if r == nil {
		f.t.Fatalf("no resources in world")
	}
	return r
}

func (f *fixture) registry() *component.BossRegistry {
	f.t.Helper()
	r := registry(f.w)
	if r == nil {
		f.t.Fatalf("no boss registry in world")
	}
	return r
}

func (f *fixture) playerCenter() cp.Vector {
	return f.transform(f.player).Center()
}

// playerBullet fires a bullet whose box is centered on at.
func (f *fixture) playerBullet(at cp.Vector) ecs.Entity {
	f.t.Helper()
	spec := f.env.Tuning.Bullets.Player
	e, err := entity.NewBullet(f.w, spec, entity.Shot{
		Kind:   component.PlayerBullet,
		Owner:  component.OwnerPlayer,
		Muzzle: cp.Vector{X: at.X, Y: at.Y + spec.Height/2 + 10},
		Dir:    cp.Vector{Y: -1},
		Layer:  component.LayerPlayerBullet,
	})
	if err != nil {
		f.t.Fatalf("bullet: %v", err)
	}
	return e
}

func (f *fixture) cues() []component.Cue {
	var out []component.Cue
	for _, ev := range f.w.Events().Drain() {
		if cue, ok := ev.Data.(component.Cue); ok {
			out = append(out, cue)
		}
	}
	return out
}

func hasCue(cues []component.Cue, want component.Cue) bool {
	for _, c := range cues {
		if c == want {
			return true
		}
	}
	return false
}
