package assets

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/cosmicheat/assets/sfx"
	"github.com/milk9111/cosmicheat/ecs/component"
)

// cueVoices is how many copies of one cue may overlap.
const cueVoices = 4

// Audio plays cues through ebiten's audio context. A muted Audio, or one
// whose cues failed to synthesize, plays nothing.
type Audio struct {
	ctx    *audio.Context
	voices map[component.Cue][]*audio.Player
	next   map[component.Cue]int
	muted  bool
}

// NewAudio prepares a player pool for every cue. Only one audio context may
// exist per process, so call it once.
func NewAudio(mute bool) *Audio {
	a := &Audio{
		voices: make(map[component.Cue][]*audio.Player),
		next:   make(map[component.Cue]int),
		muted:  mute,
	}
	if mute {
		return a
	}

	a.ctx = audio.NewContext(int(sfx.SampleRate))
	for _, cue := range component.Cues {
		pcm, err := sfx.PCM(cue)
		if err != nil {
			log.Printf("audio: %v", err)
			continue
		}
		for i := 0; i < cueVoices; i++ {
			a.voices[cue] = append(a.voices[cue], a.ctx.NewPlayerFromBytes(pcm))
		}
	}
	return a
}

func (a *Audio) SetMuted(m bool) { a.muted = m }

func (a *Audio) Muted() bool { return a.muted }

// Play starts cue on the next idle voice, stealing the oldest one when all
// are busy.
func (a *Audio) Play(cue component.Cue) {
	if a == nil || a.muted {
		return
	}
	voices := a.voices[cue]
	if len(voices) == 0 {
		return
	}

	start := a.next[cue]
	pick := start
	for i := range voices {
		j := (start + i) % len(voices)
		if !voices[j].IsPlaying() {
			pick = j
			break
		}
	}
	a.next[cue] = (pick + 1) % len(voices)

	p := voices[pick]
	if err := p.Rewind(); err != nil {
		log.Printf("audio: rewind %s: %v", cue, err)
		return
	}
	p.Play()
}
