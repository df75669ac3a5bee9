package component

import (
	"testing"

	"github.com/milk9111/cosmicheat/common"
)

func TestBossRegistrySlotsAreIndependent(t *testing.T) {
	r := NewBossRegistry([BossSlots]int{150, 150, 200})

	if hp, ok := r.Damage(0, 5); !ok || hp != 145 {
		t.Fatalf("Damage(0, 5) = %d, %v", hp, ok)
	}
	for slot, want := range []int{145, 150, 200} {
		if hp, _ := r.Health(slot); hp != want {
			t.Fatalf("slot %d: expected %d, got %d", slot, want, hp)
		}
	}

	if _, ok := r.Damage(BossSlots, 5); ok {
		t.Fatalf("out of range slot accepted damage")
	}
	if _, ok := r.Health(-1); ok {
		t.Fatalf("negative slot reported health")
	}
}

func TestBossRegistrySpawnFlag(t *testing.T) {
	r := NewBossRegistry([BossSlots]int{150, 150, 200})

	if !r.MarkSpawned(1) {
		t.Fatalf("first MarkSpawned should succeed")
	}
	if r.MarkSpawned(1) {
		t.Fatalf("second MarkSpawned should report false")
	}
	if !r.Spawned(1) || r.Spawned(0) {
		t.Fatalf("spawn flags leaked between slots")
	}

	r.Damage(1, 200)
	r.Reset()
	if r.Spawned(1) {
		t.Fatalf("Reset kept a spawn flag")
	}
	if hp, _ := r.Health(1); hp != 150 {
		t.Fatalf("Reset did not restore health: %d", hp)
	}
}

func TestBossBar(t *testing.T) {
	r := NewBossRegistry([BossSlots]int{150, 150, 200})
	boss := common.Rect{X: 300, Y: 200, Width: 200, Height: 200}

	bar := r.BarRect(0, boss)
	if bar.Width != 150 || bar.Center().X != 400 {
		t.Fatalf("bar not centered over the boss: %+v", bar)
	}
	if got := bar.Center().Y; got != 195 {
		t.Fatalf("expected bar centered 5px above the boss, got %v", got)
	}

	tests := []struct {
		damage int
		fill   float64
	}{
		{0, 150},
		{50, 100},
		{200, 0},
	}
	for _, tc := range tests {
		r.Reset()
		r.Damage(0, tc.damage)
		if got := r.BarFill(0); got != tc.fill {
			t.Fatalf("damage %d: expected fill %v, got %v", tc.damage, tc.fill, got)
		}
	}
}

func TestResourcesApply(t *testing.T) {
	tests := []struct {
		name  string
		start Resources
		delta Delta
		want  Resources
	}{
		{
			name:  "clamps_to_pool_max",
			start: Resources{Life: 190, Ammo: 195},
			delta: Delta{Life: 50, Ammo: 50},
			want:  Resources{Life: 200, Ammo: 200},
		},
		{
			name:  "clamps_life_at_zero",
			start: Resources{Life: 10, Ammo: 5},
			delta: Delta{Life: -50, Score: 50},
			want:  Resources{Life: 0, Ammo: 5, Score: 50, HiScore: 50},
		},
		{
			name:  "score_never_drops",
			start: Resources{Life: 100, Score: 300, HiScore: 900},
			delta: Delta{Score: -100},
			want:  Resources{Life: 100, Score: 300, HiScore: 900},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := tc.start
			r.Apply(tc.delta)
			if r != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, r)
			}
		})
	}
}

func TestResourcesReset(t *testing.T) {
	r := Resources{Life: 0, Ammo: 3, Score: 700, HiScore: 900, BulletsSpent: 12}
	r.Reset()
	if r.Life != common.MaxPool || r.Ammo != common.MaxPool || r.Score != 0 || r.BulletsSpent != 0 {
		t.Fatalf("unexpected pools after reset: %+v", r)
	}
	if r.HiScore != 900 {
		t.Fatalf("hi-score lost: %d", r.HiScore)
	}
	if !(&Resources{}).Dead() {
		t.Fatalf("zero life should be dead")
	}
}
