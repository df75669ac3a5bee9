// Package sim owns one game session: the ECS world, the per-frame system
// order and the PLAYING / PAUSED / GAME_OVER state machine around it.
package sim

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/milk9111/cosmicheat/common"
	"github.com/milk9111/cosmicheat/ecs"
	"github.com/milk9111/cosmicheat/ecs/component"
	"github.com/milk9111/cosmicheat/ecs/entity"
	"github.com/milk9111/cosmicheat/ecs/system"
	"github.com/milk9111/cosmicheat/prefabs"
)

var ErrNoTuning = errors.New("sim: tuning is required")

type State int

const (
	Playing State = iota
	Paused
	GameOver
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case GameOver:
		return "game_over"
	}
	return "unknown"
}

// Audio receives fire-and-forget sound cues. Implementations must not block
// and should do nothing when no output device is available.
type Audio interface {
	Play(cue component.Cue)
}

type silentAudio struct{}

func (silentAudio) Play(component.Cue) {}

// Engine advances a session one fixed step at a time. It is not safe for
// concurrent use; renderers read World between steps.
type Engine struct {
	world *ecs.World
	env   *system.Env
	audio Audio

	// before runs ahead of the death check, pipeline and after behind it.
	before   *ecs.Scheduler
	pipeline *system.Pipeline
	after    *ecs.Scheduler

	state   State
	summary int
	final   component.Resources
	quit    bool
}

// NewEngine builds a session ready to play. A nil dice falls back to a
// time-seeded source and a nil audio to silence.
func NewEngine(t *prefabs.Tuning, dice common.Dice, audio Audio) (*Engine, error) {
	if t == nil {
		return nil, ErrNoTuning
	}
	if dice == nil {
		dice = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if audio == nil {
		audio = silentAudio{}
	}

	env := system.NewEnv(t, dice)
	e := &Engine{
		world: ecs.NewWorld(),
		env:   env,
		audio: audio,
		before: ecs.NewScheduler(
			system.NewPlayerControlSystem(),
			system.NewFireSystem(env),
			system.NewBackdropSystem(),
			system.NewSpawnDirector(env),
		),
		pipeline: system.NewResolutionPipeline(env),
		after: ecs.NewScheduler(
			system.NewPlayerBulletSystem(),
			system.NewExplosionSystem(),
		),
	}
	if err := e.populate(0); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Engine) populate(hiScore int) error {
	if _, err := entity.NewSession(e.world, e.env.Tuning, hiScore); err != nil {
		return fmt.Errorf("sim: %w", err)
	}
	if _, err := entity.NewPlayer(e.world, e.env.Tuning.Player); err != nil {
		return fmt.Errorf("sim: %w", err)
	}
	return nil
}

func (e *Engine) World() *ecs.World { return e.world }

func (e *Engine) State() State { return e.state }

// Quit reports whether the quit action has been seen.
func (e *Engine) Quit() bool { return e.quit }

func (e *Engine) Tuning() *prefabs.Tuning { return e.env.Tuning }

// SetTuning swaps the tuning used from the next step on. Entities already
// alive keep the stats they were built with.
func (e *Engine) SetTuning(t *prefabs.Tuning) {
	if t == nil {
		return
	}
	e.env.Tuning = t
}

func (e *Engine) SetLogger(l *log.Logger) {
	if l != nil {
		e.env.Logger = l
	}
}

// Resources returns a copy of the session pools.
func (e *Engine) Resources() component.Resources {
	if r := e.resources(); r != nil {
		return *r
	}
	return component.Resources{}
}

// FinalResources are the pools at the moment the last run ended.
func (e *Engine) FinalResources() component.Resources { return e.final }

// SummaryFrames is how long the game over summary keeps showing.
func (e *Engine) SummaryFrames() int { return e.summary }

func (e *Engine) resources() *component.Resources {
	ent, ok := ecs.First(e.world, component.ResourcesComponent.Kind())
	if !ok {
		return nil
	}
	r, _ := ecs.Get(e.world, ent, component.ResourcesComponent.Kind())
	return r
}

func (e *Engine) setState(s State) {
	if e.state == s {
		return
	}
	e.env.Logger.Printf("sim: state %s -> %s", e.state, s)
	e.state = s
}

// Step advances the session by one frame of input.
func (e *Engine) Step(in component.Input) {
	e.setInput(in)

	if in.JustPressed(component.ActionQuit) {
		e.quit = true
		return
	}

	if in.JustPressed(component.ActionPause) {
		switch e.state {
		case Playing:
			e.setState(Paused)
		case Paused:
			e.setState(Playing)
		}
	}

	switch e.state {
	case Paused:
		return
	case GameOver:
		e.summary--
		if e.summary <= 0 {
			if err := e.Reset(); err != nil {
				e.env.Logger.Printf("sim: reset: %v", err)
				return
			}
		}
		return
	}

	e.tick()
	e.dispatch()
}

func (e *Engine) tick() {
	w := e.world
	if ent, ok := ecs.First(w, component.ClockComponent.Kind()); ok {
		if c, ok := ecs.Get(w, ent, component.ClockComponent.Kind()); ok {
			c.Frame++
		}
	}

	e.before.Update(w)

	if res := e.resources(); res != nil && res.Dead() {
		e.final = *res
		e.summary = e.env.Tuning.Rules.SummaryFrames
		e.setState(GameOver)
		w.Events().Push(ecs.Event{Type: ecs.EventAudioCue, Data: component.CueGameOver})
		ecs.FlushDestroyed(w)
		return
	}

	e.pipeline.Update(w)
	e.after.Update(w)
	ecs.FlushDestroyed(w)
}

// Reset empties the arena and starts a new run: pools back to full, boss
// slots restored and the player on its spawn point. The hi-score carries
// over.
func (e *Engine) Reset() error {
	w := e.world
	session, ok := ecs.First(w, component.ResourcesComponent.Kind())
	if !ok {
		ecs.Clear(w)
		if err := e.populate(0); err != nil {
			return err
		}
		e.summary = 0
		e.setState(Playing)
		return nil
	}

	for _, ent := range ecs.Entities(w) {
		if ent != session {
			ecs.DestroyEntity(w, ent)
		}
	}
	ecs.FlushDestroyed(w)
	w.Events().Drain()

	if res, ok := ecs.Get(w, session, component.ResourcesComponent.Kind()); ok {
		res.Reset()
	}
	if reg, ok := ecs.Get(w, session, component.BossRegistryComponent.Kind()); ok {
		reg.Reset()
	}
	if bg, ok := ecs.Get(w, session, component.BackdropComponent.Kind()); ok {
		*bg = component.Backdrop{Y: -common.ArenaHeight}
	}
	if c, ok := ecs.Get(w, session, component.ClockComponent.Kind()); ok {
		c.Frame = 0
	}
	if _, err := entity.NewPlayer(w, e.env.Tuning.Player); err != nil {
		return fmt.Errorf("sim: %w", err)
	}

	e.summary = 0
	e.setState(Playing)
	return nil
}

func (e *Engine) setInput(in component.Input) {
	ent, ok := ecs.First(e.world, component.InputComponent.Kind())
	if !ok {
		return
	}
	if cur, ok := ecs.Get(e.world, ent, component.InputComponent.Kind()); ok {
		*cur = in
	}
}

func (e *Engine) dispatch() {
	for _, ev := range e.world.Events().Drain() {
		if ev.Type != ecs.EventAudioCue {
			continue
		}
		if cue, ok := ev.Data.(component.Cue); ok {
			e.audio.Play(cue)
		}
	}
}
