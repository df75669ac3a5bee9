package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/cosmicheat/common"
	"github.com/milk9111/cosmicheat/ecs"
	"github.com/milk9111/cosmicheat/ecs/component"
	"github.com/milk9111/cosmicheat/ecs/entity"
	"github.com/milk9111/cosmicheat/prefabs"
)

// SpawnDirector runs one round of independent spawn trials per frame. Each
// kind has a gate expression checked first and a 1-in-(N+1) roll after it.
// Bosses skip the roll: each spawns once, the first frame the score reaches
// its threshold.
type SpawnDirector struct {
	env *Env

	compiledFrom *prefabs.Tuning
	gates        map[string]*prefabs.Gate
}

func NewSpawnDirector(env *Env) *SpawnDirector {
	return &SpawnDirector{env: env}
}

func (s *SpawnDirector) compileGates() {
	t := s.env.Tuning
	if s.compiledFrom == t && s.gates != nil {
		return
	}

	table := map[string]prefabs.SpawnSpec{
		"bouncer":     t.Spawns.Bouncer,
		"charger":     t.Spawns.Charger,
		"extra_score": t.Spawns.ExtraScore,
		"meteor":      t.Spawns.Meteor,
		"meteor2":     t.Spawns.Meteor2,
		"black_hole":  t.Spawns.BlackHole,
	}
	s.gates = make(map[string]*prefabs.Gate, len(table))
	for name, spec := range table {
		gate, err := prefabs.CompileGate(spec.Gate)
		if err != nil {
			// A broken gate keeps its kind from spawning until the next reload.
			s.env.logf("sim: spawn %s: %v", name, err)
			continue
		}
		s.gates[name] = gate
	}
	s.compiledFrom = t
}

func (s *SpawnDirector) trial(name string, spec prefabs.SpawnSpec, points, live int) bool {
	gate, ok := s.gates[name]
	if !ok {
		return false
	}
	open, err := gate.Open(points, live)
	if err != nil {
		s.env.logf("sim: spawn %s: %v", name, err)
		return false
	}
	return open && common.Roll(s.env.Dice, spec.Chance)
}

func (s *SpawnDirector) between(lo, hi int) float64 {
	return float64(common.Between(s.env.Dice, lo, hi))
}

func (s *SpawnDirector) variant(n int) int {
	return common.Between(s.env.Dice, 0, n-1)
}

func (s *SpawnDirector) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	s.compileGates()

	t := s.env.Tuning
	dice := s.env.Dice
	points := score(w)
	const W, H = common.ArenaWidth, common.ArenaHeight

	if s.trial("bouncer", t.Spawns.Bouncer, points, ecs.Count(w, component.BouncerComponent.Kind())) {
		center := cp.Vector{X: s.between(100, W-50), Y: s.between(-H, -50)}
		s.spawned("bouncer")(entity.NewBouncer(w, t.Bouncer, center, common.Pick(dice, entity.BouncerHeadings), s.variant(entity.BouncerVariants)))
	}

	if s.trial("charger", t.Spawns.Charger, points, ecs.Count(w, component.ChargerComponent.Kind())) {
		center := cp.Vector{X: s.between(200, W-100), Y: s.between(-H, -100)}
		dir := common.Pick(dice, entity.SideHeadings)
		s.spawned("charger")(entity.NewCharger(w, t.Charger, center, dir.X, s.variant(entity.ChargerVariants)))
	}

	s.spawnBosses(w, points)

	if s.trial("extra_score", t.Spawns.ExtraScore, points, countPickups(w, component.ExtraScore)) {
		spec := t.Pickups.ExtraScore
		pos := cp.Vector{X: s.between(50, W-50), Y: s.between(-H, -50-int(spec.Height))}
		center := pos.Add(cp.Vector{X: spec.Width / 2, Y: spec.Height / 2})
		s.spawned("extra_score")(entity.NewPickup(w, component.ExtraScore, spec, center))
	}

	if s.trial("meteor", t.Spawns.Meteor, points, countHazards(w, component.HazardMeteor)) {
		pos := cp.Vector{X: s.between(0, 50), Y: s.between(0, 50)}
		s.spawned("meteor")(entity.NewHazard(w, component.HazardMeteor, t.Hazards.Meteor, pos, s.variant(entity.MeteorVariants)))
	}

	if s.trial("meteor2", t.Spawns.Meteor2, points, countHazards(w, component.HazardMeteor2)) {
		spec := t.Hazards.Meteor2
		pos := cp.Vector{X: s.between(100, W-50), Y: s.between(-H, -50-int(spec.Height))}
		s.spawned("meteor2")(entity.NewHazard(w, component.HazardMeteor2, spec, pos, s.variant(entity.MeteorVariants)))
	}

	if s.trial("black_hole", t.Spawns.BlackHole, points, countHazards(w, component.HazardBlackHole)) {
		spec := t.Hazards.BlackHole
		pos := cp.Vector{X: s.between(100, W-50), Y: s.between(-H, -50-int(spec.Height))}
		s.spawned("black_hole")(entity.NewHazard(w, component.HazardBlackHole, spec, pos, s.variant(entity.BlackHoleVariants)))
	}
}

func (s *SpawnDirector) spawnBosses(w *ecs.World, points int) {
	reg := registry(w)
	if reg == nil {
		return
	}

	for slot, spec := range s.env.Tuning.Bosses {
		if slot >= component.BossSlots || points < spec.Threshold || reg.Spawned(slot) {
			continue
		}

		headings := entity.SideHeadings
		if spec.EightWay {
			headings = entity.CompassHeadings
		}
		center := cp.Vector{X: s.between(200, common.ArenaWidth-100), Y: s.between(-common.ArenaHeight, -100)}
		if _, err := entity.NewBoss(w, slot, spec, center, common.Pick(s.env.Dice, headings)); err != nil {
			s.env.logf("sim: spawn %s: %v", spec.Name, err)
			continue
		}
		reg.MarkSpawned(slot)
		emit(w, component.CueWarning)
		s.env.logf("sim: spawn %s at score %d", spec.Name, points)
	}
}

// spawned adapts a builder result into a log line.
func (s *SpawnDirector) spawned(name string) func(ecs.Entity, error) {
	return func(e ecs.Entity, err error) {
		if err != nil {
			s.env.logf("sim: spawn %s: %v", name, err)
			return
		}
		s.env.logf("sim: spawn %s %v", name, e)
	}
}

func countHazards(w *ecs.World, kind component.HazardKind) int {
	n := 0
	ecs.ForEach(w, component.HazardComponent.Kind(), func(_ ecs.Entity, h *component.Hazard) {
		if h.Kind == kind {
			n++
		}
	})
	return n
}

func countPickups(w *ecs.World, kind component.PickupKind) int {
	n := 0
	ecs.ForEach(w, component.PickupComponent.Kind(), func(_ ecs.Entity, p *component.Pickup) {
		if p.Kind == kind {
			n++
		}
	})
	return n
}
