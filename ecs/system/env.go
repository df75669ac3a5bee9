package system

import (
	"io"
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/cosmicheat/common"
	"github.com/milk9111/cosmicheat/ecs"
	"github.com/milk9111/cosmicheat/ecs/component"
	"github.com/milk9111/cosmicheat/ecs/entity"
	"github.com/milk9111/cosmicheat/prefabs"
)

// Env is what every gameplay system reads besides the world itself. Systems
// hold a pointer to one shared Env, so swapping Tuning on reload reaches all
// of them at once.
type Env struct {
	Tuning *prefabs.Tuning
	Dice   common.Dice
	Logger *log.Logger
}

func NewEnv(t *prefabs.Tuning, dice common.Dice) *Env {
	return &Env{Tuning: t, Dice: dice, Logger: log.New(io.Discard, "", 0)}
}

func (env *Env) logf(format string, args ...any) {
	if env == nil || env.Logger == nil {
		return
	}
	env.Logger.Printf(format, args...)
}

func resources(w *ecs.World) *component.Resources {
	e, ok := ecs.First(w, component.ResourcesComponent.Kind())
	if !ok {
		return nil
	}
	r, _ := ecs.Get(w, e, component.ResourcesComponent.Kind())
	return r
}

func registry(w *ecs.World) *component.BossRegistry {
	e, ok := ecs.First(w, component.BossRegistryComponent.Kind())
	if !ok {
		return nil
	}
	r, _ := ecs.Get(w, e, component.BossRegistryComponent.Kind())
	return r
}

func currentInput(w *ecs.World) component.Input {
	e, ok := ecs.First(w, component.InputComponent.Kind())
	if !ok {
		return component.Input{}
	}
	in, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		return component.Input{}
	}
	return *in
}

func frame(w *ecs.World) int {
	e, ok := ecs.First(w, component.ClockComponent.Kind())
	if !ok {
		return 0
	}
	c, ok := ecs.Get(w, e, component.ClockComponent.Kind())
	if !ok {
		return 0
	}
	return c.Frame
}

func score(w *ecs.World) int {
	if r := resources(w); r != nil {
		return r.Score
	}
	return 0
}

// playerBox returns the player's collision rect.
func playerBox(w *ecs.World) (common.Rect, bool) {
	e, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return common.Rect{}, false
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return common.Rect{}, false
	}
	return t.Rect(), true
}

func emit(w *ecs.World, cue component.Cue) {
	w.Events().Push(ecs.Event{Type: ecs.EventAudioCue, Data: cue})
}

func (env *Env) explode(w *ecs.World, key string, at cp.Vector) {
	spec, ok := env.Tuning.Explosions[key]
	if !ok {
		return
	}
	if _, err := entity.NewExplosion(w, key, spec, at, env.Tuning.Rules.ExplosionFrameTicks); err != nil {
		env.logf("sim: %v", err)
	}
}

// drop rolls a 1-in-(chance+1) trial and spawns the pickup at center on success.
func (env *Env) drop(w *ecs.World, kind component.PickupKind, chance int, center cp.Vector) {
	if !common.Roll(env.Dice, chance) {
		return
	}
	env.spawnPickup(w, kind, center)
}

func (env *Env) spawnPickup(w *ecs.World, kind component.PickupKind, center cp.Vector) {
	spec, err := entity.PickupSpecFor(env.Tuning, kind)
	if err != nil {
		env.logf("sim: %v", err)
		return
	}
	if _, err := entity.NewPickup(w, kind, spec, center); err != nil {
		env.logf("sim: %v", err)
		return
	}
	env.logf("sim: drop %s at (%.0f, %.0f)", kind, center.X, center.Y)
}

// overlappingPlayerBullets lists live player bullets overlapping box, oldest
// first.
func overlappingPlayerBullets(w *ecs.World, box common.Rect) []ecs.Entity {
	var hits []ecs.Entity
	ecs.ForEach2(w, component.BulletComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, b *component.Bullet, t *component.Transform) {
		if b.Owner == component.OwnerPlayer && t.Rect().Overlaps(box) {
			hits = append(hits, e)
		}
	})
	return hits
}

// consumePlayerBullets destroys every player bullet overlapping box and
// returns how many there were.
func consumePlayerBullets(w *ecs.World, box common.Rect) int {
	hits := overlappingPlayerBullets(w, box)
	for _, e := range hits {
		ecs.QueueDestroy(w, e)
	}
	return len(hits)
}

// outsideArena reports whether r has fully left the visible arena by at
// least slack pixels on any side.
func outsideArena(r common.Rect, slack float64) bool {
	return r.Y > common.ArenaHeight+slack || r.Bottom() < -slack ||
		r.X > common.ArenaWidth+slack || r.Right() < -slack
}
