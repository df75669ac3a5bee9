package render

import (
	"testing"

	"github.com/milk9111/cosmicheat/ecs"
	"github.com/milk9111/cosmicheat/ecs/component"
)

func addSprite(t *testing.T, w *ecs.World, layer int, withTransform bool) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Key: "x", Layer: layer}); err != nil {
		t.Fatal(err)
	}
	if withTransform {
		if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Width: 10, Height: 10}); err != nil {
			t.Fatal(err)
		}
	}
	return e
}

func TestDrawOrder(t *testing.T) {
	w := ecs.NewWorld()
	bullet := addSprite(t, w, component.LayerPlayerBullet, true)
	firstMeteor := addSprite(t, w, component.LayerMeteor, true)
	addSprite(t, w, component.LayerPickup, false)
	player := addSprite(t, w, component.LayerPlayer, true)
	secondMeteor := addSprite(t, w, component.LayerMeteor, true)
	pickup := addSprite(t, w, component.LayerPickup, true)

	got := drawOrder(w)
	want := []ecs.Entity{pickup, firstMeteor, secondMeteor, player, bullet}
	if len(got) != len(want) {
		t.Fatalf("expected %d entities, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestDrawOrderSkipsQueued(t *testing.T) {
	w := ecs.NewWorld()
	keep := addSprite(t, w, component.LayerMeteor, true)
	gone := addSprite(t, w, component.LayerMeteor, true)
	ecs.QueueDestroy(w, gone)

	got := drawOrder(w)
	if len(got) != 1 || got[0] != keep {
		t.Fatalf("expected only %v, got %v", keep, got)
	}
}

func TestBossLayersInterleave(t *testing.T) {
	prev := component.LayerCharger
	for slot := 0; slot < component.BossSlots; slot++ {
		boss, bullets := component.BossLayer(slot)
		if bullets <= prev || boss != bullets+1 {
			t.Fatalf("slot %d: layers %d/%d out of order after %d", slot, boss, bullets, prev)
		}
		prev = boss
	}
	if prev >= component.LayerPlayer {
		t.Fatalf("bosses must draw below the player")
	}
}

func TestPlayerKey(t *testing.T) {
	tests := []struct {
		f    component.Facing
		want string
	}{
		{component.FacingNone, "player"},
		{component.FacingLeft, "player_left"},
		{component.FacingRight, "player_right"},
	}
	for _, tc := range tests {
		if got := playerKey("player", tc.f); got != tc.want {
			t.Fatalf("playerKey(%v) = %q, want %q", tc.f, got, tc.want)
		}
	}
}

func TestPoolBarWidth(t *testing.T) {
	tests := []struct {
		value int
		want  float64
	}{
		{200, 165},
		{100, 82.5},
		{0, 0},
		{-5, 0},
		{250, 165},
	}
	for _, tc := range tests {
		if got := poolBarWidth(tc.value, 200, 165); got != tc.want {
			t.Fatalf("poolBarWidth(%d) = %v, want %v", tc.value, got, tc.want)
		}
	}
	if got := poolBarWidth(10, 0, 165); got != 0 {
		t.Fatalf("expected 0 for an empty pool, got %v", got)
	}
}
