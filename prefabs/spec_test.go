package prefabs

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultTuningLoads(t *testing.T) {
	tun, err := DefaultTuning()
	if err != nil {
		t.Fatalf("DefaultTuning: %v", err)
	}

	if len(tun.Bosses) != 3 {
		t.Fatalf("expected 3 bosses, got %d", len(tun.Bosses))
	}
	wantHealth := []int{150, 150, 200}
	wantThreshold := []int{5000, 10000, 15000}
	for i, b := range tun.Bosses {
		if b.MaxHealth != wantHealth[i] {
			t.Errorf("boss %d max health = %d, want %d", i, b.MaxHealth, wantHealth[i])
		}
		if b.Threshold != wantThreshold[i] {
			t.Errorf("boss %d threshold = %d, want %d", i, b.Threshold, wantThreshold[i])
		}
		if b.Stats.BulletDamage != 20 {
			t.Errorf("boss %d bullet damage = %d, want 20", i, b.Stats.BulletDamage)
		}
	}
	if tun.Spawns.Bouncer.Chance != 120 || tun.Spawns.BlackHole.Chance != 500 {
		t.Fatalf("unexpected spawn chances: %+v", tun.Spawns)
	}
	if tun.Charger.Stats.BulletDamage != 10 {
		t.Fatalf("charger bullet damage = %d", tun.Charger.Stats.BulletDamage)
	}
}

func TestTierSpeed(t *testing.T) {
	tun, err := DefaultTuning()
	if err != nil {
		t.Fatalf("DefaultTuning: %v", err)
	}

	cases := []struct {
		score int
		want  float64
	}{
		{0, 2},
		{2999, 2},
		{3000, 4},
		{9999, 4},
		{10000, 6},
		{15000, 8},
		{20000, 10},
		{99999, 10},
	}
	for _, c := range cases {
		if got := tun.TierSpeed(c.score, 2); got != c.want {
			t.Errorf("TierSpeed(%d) = %v, want %v", c.score, got, c.want)
		}
	}
}

func TestTierSpeedSortsUnorderedTable(t *testing.T) {
	tun, err := DefaultTuning()
	if err != nil {
		t.Fatalf("DefaultTuning: %v", err)
	}
	tun.SpeedTiers = []SpeedTierSpec{{Score: 3000, Speed: 4}, {Score: 20000, Speed: 10}}
	sorted, err := tun.finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if got := sorted.TierSpeed(25000, 1); got != 10 {
		t.Fatalf("expected highest tier to win, got %v", got)
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	tun, err := DefaultTuning()
	if err != nil {
		t.Fatalf("DefaultTuning: %v", err)
	}
	tun.Player.Speed = 0
	tun.Bosses[1].Pattern = "spiral"
	tun.Bosses = tun.Bosses[:2]
	tun.Pickups.HealthRefill.HealthRestore = -50

	err = tun.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{"player.speed", "expected 3 entries", "spiral", "pickups.health_refill"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q missing %q", msg, want)
		}
	}
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind in %v", err)
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: "'#ff8000'", want: color.NRGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}},
		{in: "'#10203040'", want: color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
		{in: "'#123'", wantErr: true},
		{in: "[1, 2]", wantErr: true},
	}
	for _, c := range cases {
		var out struct {
			C YAMLColor `yaml:"c"`
		}
		err := yaml.Unmarshal([]byte("c: "+c.in), &out)
		if c.wantErr {
			if err == nil {
				t.Errorf("%s: expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: %v", c.in, err)
		}
		if out.C.Color != c.want {
			t.Errorf("%s: got %v, want %v", c.in, out.C.Color, c.want)
		}
	}
}

func TestPaletteLoads(t *testing.T) {
	p, err := LoadPalette()
	if err != nil {
		t.Fatalf("LoadPalette: %v", err)
	}
	if len(p.Backgrounds) != 4 {
		t.Fatalf("expected one background per tier, got %d", len(p.Backgrounds))
	}
	if got := p.Sprite("health_refill"); got != (color.NRGBA{R: 0x98, G: 0xfb, B: 0x98, A: 0xff}) {
		t.Fatalf("unexpected health refill color %v", got)
	}
	if got := p.Sprite("no_such_key"); got != color.White {
		t.Fatalf("missing key should fall back to white, got %v", got)
	}
	if p.Background(99) != p.Backgrounds[3].Color {
		t.Fatalf("tier past the end should clamp to the last background")
	}
	var unset YAMLColor
	if unset.Or(color.Black) != color.Black {
		t.Fatalf("unset color should use the fallback")
	}
}

func TestLoadTuningFile(t *testing.T) {
	data, err := PrefabsFS.ReadFile(TuningFile)
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	tun, err := LoadTuningFile(path)
	if err != nil {
		t.Fatalf("LoadTuningFile: %v", err)
	}
	if len(tun.Bosses) != 3 {
		t.Fatalf("expected 3 bosses, got %d", len(tun.Bosses))
	}

	if _, err := LoadTuningFile(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected a not-exist error, got %v", err)
	}
}
