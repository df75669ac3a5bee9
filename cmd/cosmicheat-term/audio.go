package main

import (
	"log"
	"time"

	"github.com/gopxl/beep/speaker"
	"github.com/milk9111/cosmicheat/assets/sfx"
	"github.com/milk9111/cosmicheat/ecs/component"
)

// speakerAudio plays cues through the system speaker. Without a device it
// stays silent.
type speakerAudio struct {
	ready bool
}

func newSpeakerAudio(mute bool) *speakerAudio {
	a := &speakerAudio{}
	if mute {
		return a
	}
	if err := speaker.Init(sfx.SampleRate, sfx.SampleRate.N(time.Second/10)); err != nil {
		log.Printf("audio: %v", err)
		return a
	}
	a.ready = true
	return a
}

func (a *speakerAudio) Play(cue component.Cue) {
	if !a.ready {
		return
	}
	s, err := sfx.Streamer(cue, sfx.SampleRate)
	if err != nil {
		log.Printf("audio: %v", err)
		return
	}
	speaker.Play(s)
}

func (a *speakerAudio) Close() {
	if a.ready {
		speaker.Close()
		a.ready = false
	}
}
