package main

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/cosmicheat/assets"
	"github.com/milk9111/cosmicheat/common"
	"github.com/milk9111/cosmicheat/ecs/render"
	"github.com/milk9111/cosmicheat/prefabs"
	"github.com/milk9111/cosmicheat/sim"
)

// Config is what main parses from the command line.
type Config struct {
	TuningPath string
	Watch      bool
	Debug      bool
	Mute       bool
}

type Game struct {
	cfg    Config
	engine *sim.Engine
	input  *Input
	audio  *assets.Audio

	renderer *render.Renderer
	hud      *render.HUD
	overlay  *Overlay

	watcher *prefabs.Watcher
}

func NewGame(cfg Config) (*Game, error) {
	tuning, err := prefabs.LoadTuningFile(cfg.TuningPath)
	if err != nil {
		log.Printf("%v; using built-in tuning", err)
		if tuning, err = prefabs.DefaultTuning(); err != nil {
			return nil, err
		}
	}

	palette, err := prefabs.LoadPalette()
	if err != nil {
		log.Printf("%v; using fallback colors", err)
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.Debug {
		logger = log.New(os.Stderr, "", log.Ltime|log.Lmicroseconds)
	}

	audio := assets.NewAudio(cfg.Mute)
	engine, err := sim.NewEngine(tuning, nil, audio)
	if err != nil {
		return nil, err
	}
	engine.SetLogger(logger)

	images := assets.NewProvider(nil, tuning, palette)
	images.SetLogger(logger)
	hud := render.NewHUD(images, palette)

	var hudColors prefabs.HUDPalette
	if palette != nil {
		hudColors = palette.HUD
	}

	g := &Game{
		cfg:      cfg,
		engine:   engine,
		input:    NewInput(),
		audio:    audio,
		renderer: render.NewRenderer(images, palette),
		hud:      hud,
		overlay:  NewOverlay(hud.Face(), hudColors),
	}

	if cfg.Watch {
		dir := prefabs.Dir
		if cfg.TuningPath != "" {
			dir = filepath.Dir(cfg.TuningPath)
		}
		w, err := prefabs.NewWatcher(dir)
		if err != nil {
			log.Printf("prefabs: watch %s: %v", dir, err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) Update() error {
	g.reload()

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.audio.SetMuted(!g.audio.Muted())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	in := g.input.Poll(g.overlay.Requested())
	g.engine.Step(in)
	if g.engine.Quit() {
		return ebiten.Termination
	}
	g.overlay.Update(g.engine.State(), g.engine.FinalResources())
	return nil
}

// reload swaps in a fresh tuning for every changed tuning file the watcher
// reported. Bad files are logged and the current tuning kept.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if !g.isTuningFile(name) {
				continue
			}
			t, err := prefabs.LoadTuningFile(g.cfg.TuningPath)
			if err != nil {
				log.Printf("prefabs: reload %s: %v", name, err)
				continue
			}
			g.engine.SetTuning(t)
			log.Printf("prefabs: reloaded %s", name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefabs: watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) isTuningFile(name string) bool {
	want := g.cfg.TuningPath
	if want == "" {
		want = filepath.Join(prefabs.Dir, prefabs.TuningFile)
	}
	a, errA := filepath.Abs(name)
	b, errB := filepath.Abs(want)
	if errA != nil || errB != nil {
		return filepath.Base(name) == filepath.Base(want)
	}
	return a == b
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	state := g.engine.State()
	if state != sim.GameOver {
		g.renderer.Draw(g.engine.World(), screen)
		g.hud.Draw(screen, g.engine.Resources())
	}
	g.overlay.Draw(screen, state)

	if g.cfg.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  TPS: %.2f  %s", ebiten.ActualFPS(), ebiten.ActualTPS(), state), 10, common.ArenaHeight-20)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.ArenaWidth, common.ArenaHeight
}
