// Command cosmicheat-term plays Cosmic Heat in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/cosmicheat/common"
	"github.com/milk9111/cosmicheat/prefabs"
	"github.com/milk9111/cosmicheat/sim"
)

type game struct {
	screen tcell.Screen
	engine *sim.Engine
	keys   *keyTracker
	view   *view
	audio  *speakerAudio
	done   chan struct{}
}

func newGame(tuningPath string, mute bool, logger *log.Logger) (*game, error) {
	tuning, err := prefabs.LoadTuningFile(tuningPath)
	if err != nil {
		return nil, err
	}
	palette, err := prefabs.LoadPalette()
	if err != nil {
		logger.Printf("%v; using fallback colors", err)
	}

	audio := newSpeakerAudio(mute)
	engine, err := sim.NewEngine(tuning, nil, audio)
	if err != nil {
		audio.Close()
		return nil, err
	}
	engine.SetLogger(logger)

	screen, err := tcell.NewScreen()
	if err != nil {
		audio.Close()
		return nil, err
	}
	if err := screen.Init(); err != nil {
		audio.Close()
		return nil, err
	}
	screen.HideCursor()

	return &game{
		screen: screen,
		engine: engine,
		keys:   newKeyTracker(holdWindow),
		view:   &view{screen: screen, palette: palette},
		audio:  audio,
		done:   make(chan struct{}),
	}, nil
}

func (g *game) run() {
	ticker := time.NewTicker(time.Second / common.TPS)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	go pumpEvents(g.screen, events, g.done)

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if a, ok := actionFor(ev); ok {
					g.keys.press(a, ev.When())
				}
			case *tcell.EventResize:
				g.screen.Sync()
			}
		case now := <-ticker.C:
			g.engine.Step(g.keys.snapshot(now))
			if g.engine.Quit() {
				return
			}
			g.view.draw(g.engine)
		}
	}
}

// pumpEvents forwards screen events until the screen is finalized or done
// is closed. events is closed on the way out.
func pumpEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (g *game) close() {
	close(g.done)
	g.audio.Close()
	g.screen.Fini()
}

func main() {
	tuningPath := flag.String("tuning", "", "tuning YAML file (default: prefabs/tuning.yaml, then the built-in copy)")
	mute := flag.Bool("mute", false, "disable sound")
	logPath := flag.String("log", "", "write debug lines to this file")
	flag.Parse()

	logger := log.New(io.Discard, "", 0)
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = log.New(f, "", log.Ltime|log.Lmicroseconds)
		log.SetOutput(f)
	} else {
		// The screen owns stdout and stderr while the game runs.
		log.SetOutput(io.Discard)
	}

	g, err := newGame(*tuningPath, *mute, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer g.close()

	g.run()
}
