package sfx

import (
	"testing"

	"github.com/milk9111/cosmicheat/ecs/component"
)

func TestEveryCueSynthesizes(t *testing.T) {
	for _, cue := range component.Cues {
		pcm, err := PCM(cue)
		if err != nil {
			t.Fatalf("%s: %v", cue, err)
		}
		if len(pcm) == 0 || len(pcm)%4 != 0 {
			t.Fatalf("%s: expected whole 16-bit stereo frames, got %d bytes", cue, len(pcm))
		}
	}
}

func TestCueLength(t *testing.T) {
	pcm, err := PCM(component.CueShoot)
	if err != nil {
		t.Fatal(err)
	}
	// 40ms at 44100Hz, four bytes per frame.
	if want := SampleRate.N(cueRecipes[component.CueShoot].tones[0].duration) * 4; len(pcm) != want {
		t.Fatalf("expected %d bytes, got %d", want, len(pcm))
	}
}

func TestUnknownCue(t *testing.T) {
	if _, err := Streamer(component.Cue("nope"), SampleRate); err == nil {
		t.Fatalf("expected an error for an unknown cue")
	}
}
