// Package sfx synthesizes the game's sound cues with beep, so both the
// window and terminal front ends can play them without sample files.
package sfx

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/milk9111/cosmicheat/ecs/component"
)

// SampleRate is the rate every cue is synthesized at.
const SampleRate = beep.SampleRate(44100)

type tone struct {
	freq     float64
	duration time.Duration
	noise    bool
}

type cueRecipe struct {
	tones  []tone
	volume float64
}

var cueRecipes = map[component.Cue]cueRecipe{
	component.CueShoot:        {tones: []tone{{freq: 880, duration: 40 * time.Millisecond}}, volume: 0.25},
	component.CueChargerShoot: {tones: []tone{{freq: 440, duration: 60 * time.Millisecond}}, volume: 0.2},
	component.CueBossShoot:    {tones: []tone{{freq: 220, duration: 90 * time.Millisecond}}, volume: 0.25},
	component.CueExplosion:    {tones: []tone{{duration: 220 * time.Millisecond, noise: true}}, volume: 0.35},
	component.CueDamage:       {tones: []tone{{freq: 160, duration: 80 * time.Millisecond}, {duration: 60 * time.Millisecond, noise: true}}, volume: 0.3},
	component.CuePickup:       {tones: []tone{{freq: 988, duration: 60 * time.Millisecond}, {freq: 1319, duration: 120 * time.Millisecond}}, volume: 0.25},
	component.CueBlackHole:    {tones: []tone{{freq: 60, duration: 120 * time.Millisecond}}, volume: 0.3},
	component.CueWarning: {tones: []tone{
		{freq: 660, duration: 150 * time.Millisecond},
		{freq: 440, duration: 150 * time.Millisecond},
		{freq: 660, duration: 150 * time.Millisecond},
		{freq: 440, duration: 150 * time.Millisecond},
	}, volume: 0.3},
	component.CueGameOver: {tones: []tone{
		{freq: 392, duration: 250 * time.Millisecond},
		{freq: 330, duration: 250 * time.Millisecond},
		{freq: 262, duration: 500 * time.Millisecond},
	}, volume: 0.3},
}

// Streamer synthesizes a fresh, finite stream for cue.
func Streamer(cue component.Cue, rate beep.SampleRate) (beep.Streamer, error) {
	recipe, ok := cueRecipes[cue]
	if !ok {
		return nil, fmt.Errorf("sfx: unknown cue %q", cue)
	}

	parts := make([]beep.Streamer, 0, len(recipe.tones))
	for _, t := range recipe.tones {
		var src beep.Streamer
		if t.noise {
			src = noise(rand.New(rand.NewSource(int64(len(cue)))))
		} else {
			sine, err := generators.SineTone(rate, t.freq)
			if err != nil {
				return nil, fmt.Errorf("sfx: cue %s: %w", cue, err)
			}
			src = sine
		}
		parts = append(parts, decay(beep.Take(rate.N(t.duration), src), rate.N(t.duration)))
	}

	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   math.Log2(recipe.volume),
	}, nil
}

// PCM renders cue as 16-bit little-endian stereo at SampleRate, the
// format ebiten's audio context plays.
func PCM(cue component.Cue) ([]byte, error) {
	s, err := Streamer(cue, SampleRate)
	if err != nil {
		return nil, err
	}

	format := beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}
	var out []byte
	buf := make([][2]float64, 512)
	frame := make([]byte, format.Width())
	for {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			format.EncodeSigned(frame, sample)
			out = append(out, frame...)
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("sfx: cue %s: %w", cue, err)
	}
	return out, nil
}

func noise(rng *rand.Rand) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := rng.Float64()*2 - 1
			samples[i][0], samples[i][1] = v, v
		}
		return len(samples), true
	})
}

// decay fades s linearly to silence over total samples.
func decay(s beep.Streamer, total int) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			k := 1 - float64(pos)/float64(max(total, 1))
			samples[i][0] *= k
			samples[i][1] *= k
			pos++
		}
		return n, ok
	})
}
