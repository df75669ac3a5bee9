package system

import (
	"github.com/milk9111/cosmicheat/ecs"
	"github.com/milk9111/cosmicheat/ecs/component"
)

// Stage is one step of the collision and resolution pass. A stage advances
// its own entities, resolves their collisions and reports what the frame
// owes the player. Stages never touch Resources directly.
type Stage interface {
	Resolve(w *ecs.World) component.Delta
}

// Pipeline runs its stages in order, sums their deltas and applies the
// total to the session pools once.
type Pipeline struct {
	stages []Stage
	last   component.Delta
}

func NewPipeline(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

// NewResolutionPipeline builds the fixed stage order: pickups, black holes,
// diagonal meteors, vertical meteors, bouncers, chargers, then each boss
// slot.
func NewResolutionPipeline(env *Env) *Pipeline {
	p := NewPipeline(
		NewPickupStage(env),
		NewBlackHoleStage(env),
		NewHazardStage(env, component.HazardMeteor),
		NewHazardStage(env, component.HazardMeteor2),
		NewBouncerStage(env),
		NewChargerStage(env),
	)
	for slot := 0; slot < component.BossSlots; slot++ {
		p.stages = append(p.stages, NewBossStage(env, slot))
	}
	return p
}

func (p *Pipeline) Update(w *ecs.World) {
	if p == nil || w == nil {
		return
	}

	var total component.Delta
	for _, stage := range p.stages {
		total = total.Add(stage.Resolve(w))
	}
	p.last = total

	if res := resources(w); res != nil {
		res.Apply(total)
	}
}

// Last returns the delta applied by the most recent Update.
func (p *Pipeline) Last() component.Delta {
	return p.last
}

func (p *Pipeline) Stages() []Stage {
	return append([]Stage(nil), p.stages...)
}
