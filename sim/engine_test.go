package sim

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/cosmicheat/ecs"
	"github.com/milk9111/cosmicheat/ecs/component"
	"github.com/milk9111/cosmicheat/ecs/entity"
	"github.com/milk9111/cosmicheat/prefabs"
)

// quietDice fails every spawn roll so tests control the arena.
type quietDice struct{}

func (quietDice) Intn(n int) int   { return n - 1 }
func (quietDice) Float64() float64 { return 0.5 }

type recordingAudio struct {
	cues []component.Cue
}

func (a *recordingAudio) Play(cue component.Cue) {
	a.cues = append(a.cues, cue)
}

func (a *recordingAudio) heard(want component.Cue) bool {
	for _, c := range a.cues {
		if c == want {
			return true
		}
	}
	return false
}

func newTestEngine(t *testing.T) (*Engine, *recordingAudio) {
	t.Helper()
	tuning, err := prefabs.DefaultTuning()
	if err != nil {
		t.Fatalf("load tuning: %v", err)
	}
	audio := &recordingAudio{}
	e, err := NewEngine(tuning, quietDice{}, audio)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return e, audio
}

func pools(t *testing.T, e *Engine) *component.Resources {
	t.Helper()
	ent, ok := ecs.First(e.World(), component.ResourcesComponent.Kind())
	if !ok {
		t.Fatalf("no resources")
	}
	r, _ := ecs.Get(e.World(), ent, component.ResourcesComponent.Kind())
	return r
}

func clock(t *testing.T, e *Engine) int {
	t.Helper()
	ent, ok := ecs.First(e.World(), component.ClockComponent.Kind())
	if !ok {
		t.Fatalf("no clock")
	}
	c, _ := ecs.Get(e.World(), ent, component.ClockComponent.Kind())
	return c.Frame
}

func press(a component.Action) component.Input {
	return component.Input{Pressed: component.ActionSet(0).With(a), Held: component.ActionSet(0).With(a)}
}

func TestNewEngineRequiresTuning(t *testing.T) {
	if _, err := NewEngine(nil, quietDice{}, nil); err != ErrNoTuning {
		t.Fatalf("expected ErrNoTuning, got %v", err)
	}
}

func TestNewEngineStartsPlaying(t *testing.T) {
	e, _ := newTestEngine(t)
	if e.State() != Playing {
		t.Fatalf("expected playing, got %s", e.State())
	}
	res := e.Resources()
	if res.Life != 200 || res.Ammo != 200 || res.Score != 0 {
		t.Fatalf("unexpected starting pools %+v", res)
	}
	if n := ecs.Count(e.World(), component.PlayerComponent.Kind()); n != 1 {
		t.Fatalf("expected one player, got %d", n)
	}
}

func TestStepCollectsPickup(t *testing.T) {
	e, audio := newTestEngine(t)
	pools(t, e).Life = 100
	spec := e.Tuning().Pickups.HealthRefill
	if _, err := entity.NewPickup(e.World(), component.HealthRefill, spec, cp.Vector{X: 500, Y: 750}); err != nil {
		t.Fatal(err)
	}

	e.Step(component.Input{})

	if got := e.Resources().Life; got != 150 {
		t.Fatalf("expected life 150 after pickup, got %d", got)
	}
	if n := ecs.Count(e.World(), component.PickupComponent.Kind()); n != 0 {
		t.Fatalf("pickup survived collection")
	}
	if !audio.heard(component.CuePickup) {
		t.Fatalf("pickup cue not dispatched")
	}
}

func TestDeathEndsRunOnNextStep(t *testing.T) {
	e, audio := newTestEngine(t)
	pools(t, e).Life = 10

	spec := e.Tuning().Hazards.Meteor
	spec.Stats.ContactDamage = 50
	if _, err := entity.NewHazard(e.World(), component.HazardMeteor, spec, cp.Vector{X: 460, Y: 710}, 0); err != nil {
		t.Fatal(err)
	}

	e.Step(component.Input{})
	res := e.Resources()
	if res.Life != 0 {
		t.Fatalf("expected life clamped to 0, got %d", res.Life)
	}
	if res.Score != 50 {
		t.Fatalf("expected contact score 50, got %d", res.Score)
	}
	if e.State() != Playing {
		t.Fatalf("death is only noticed on the next step, got %s", e.State())
	}

	e.Step(component.Input{})
	if e.State() != GameOver {
		t.Fatalf("expected game over, got %s", e.State())
	}
	if final := e.FinalResources(); final.Score != 50 || final.Life != 0 {
		t.Fatalf("unexpected final pools %+v", final)
	}
	if !audio.heard(component.CueGameOver) {
		t.Fatalf("game over cue not dispatched")
	}
}

func TestGameOverSummaryThenReset(t *testing.T) {
	e, _ := newTestEngine(t)
	res := pools(t, e)
	res.Score = 1234
	res.HiScore = 1234
	res.Life = 0

	e.Step(component.Input{})
	if e.State() != GameOver {
		t.Fatalf("expected game over, got %s", e.State())
	}
	frozen := clock(t, e)

	summary := e.Tuning().Rules.SummaryFrames
	for i := 0; i < summary-1; i++ {
		e.Step(component.Input{})
	}
	if e.State() != GameOver {
		t.Fatalf("summary ended early")
	}
	if clock(t, e) != frozen {
		t.Fatalf("simulation ran during the summary")
	}

	e.Step(component.Input{})
	if e.State() != Playing {
		t.Fatalf("expected a new run after the summary, got %s", e.State())
	}
	got := e.Resources()
	if got.Life != 200 || got.Ammo != 200 || got.Score != 0 {
		t.Fatalf("pools not reset: %+v", got)
	}
	if got.HiScore != 1234 {
		t.Fatalf("hi-score lost on reset: %d", got.HiScore)
	}
	if n := ecs.Count(e.World(), component.PlayerComponent.Kind()); n != 1 {
		t.Fatalf("expected one player after reset, got %d", n)
	}
}

func TestResetClearsBossSlots(t *testing.T) {
	e, _ := newTestEngine(t)
	w := e.World()
	ent, _ := ecs.First(w, component.BossRegistryComponent.Kind())
	reg, _ := ecs.Get(w, ent, component.BossRegistryComponent.Kind())
	reg.MarkSpawned(0)
	reg.Damage(0, 100)

	if err := e.Reset(); err != nil {
		t.Fatal(err)
	}

	if reg.Spawned(0) {
		t.Fatalf("spawn flag survived reset")
	}
	if hp, _ := reg.Health(0); hp != 150 {
		t.Fatalf("expected boss1 health 150, got %d", hp)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	e, _ := newTestEngine(t)

	e.Step(component.Input{})
	before := clock(t, e)

	e.Step(press(component.ActionPause))
	if e.State() != Paused {
		t.Fatalf("expected paused, got %s", e.State())
	}
	for i := 0; i < 5; i++ {
		e.Step(component.Input{MoveX: 1})
	}
	if clock(t, e) != before {
		t.Fatalf("clock moved while paused")
	}

	e.Step(press(component.ActionPause))
	if e.State() != Playing {
		t.Fatalf("expected playing after second toggle, got %s", e.State())
	}
	if clock(t, e) != before+1 {
		t.Fatalf("expected the unpause frame to run")
	}
}

func TestQuit(t *testing.T) {
	e, _ := newTestEngine(t)
	before := clock(t, e)

	e.Step(press(component.ActionQuit))

	if !e.Quit() {
		t.Fatalf("quit not reported")
	}
	if clock(t, e) != before {
		t.Fatalf("quit frame advanced the simulation")
	}
}

func TestShootCueReachesAudio(t *testing.T) {
	e, audio := newTestEngine(t)

	e.Step(component.Input{Held: component.ActionSet(0).With(component.ActionShoot)})

	if !audio.heard(component.CueShoot) {
		t.Fatalf("shoot cue not dispatched, got %v", audio.cues)
	}
	if got := e.Resources().Ammo; got != 199 {
		t.Fatalf("expected ammo 199, got %d", got)
	}
}

func TestSetTuningReachesSystems(t *testing.T) {
	e, _ := newTestEngine(t)
	next, err := prefabs.DefaultTuning()
	if err != nil {
		t.Fatal(err)
	}
	next.Player.ShootDelayMs = 0

	e.SetTuning(next)
	if e.Tuning() != next {
		t.Fatalf("tuning not swapped")
	}
	e.SetTuning(nil)
	if e.Tuning() != next {
		t.Fatalf("nil tuning replaced the current one")
	}
}
