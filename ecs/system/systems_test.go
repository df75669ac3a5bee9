package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/cosmicheat/common"
	"github.com/milk9111/cosmicheat/ecs"
	"github.com/milk9111/cosmicheat/ecs/component"
	"github.com/milk9111/cosmicheat/ecs/entity"
)

func (f *fixture) input(in component.Input) {
	f.t.Helper()
	e, ok := ecs.First(f.w, component.InputComponent.Kind())
	if !ok {
		f.t.Fatalf("no input component")
	}
	cur, _ := ecs.Get(f.w, e, component.InputComponent.Kind())
	*cur = in
}

func (f *fixture) playerBullets() int {
	n := 0
	ecs.ForEach(f.w, component.BulletComponent.Kind(), func(_ ecs.Entity, b *component.Bullet) {
		if b.Owner == component.OwnerPlayer {
			n++
		}
	})
	return n
}

func TestPlayerControl(t *testing.T) {
	tests := []struct {
		name   string
		startX float64
		move   float64
		wantX  float64
		facing component.Facing
	}{
		{"right", 450, 1, 460, component.FacingRight},
		{"left", 450, -1, 440, component.FacingLeft},
		{"partial_stick_truncates", 450, -0.55, 445, component.FacingLeft},
		{"clamp_right_edge", 895, 1, 900, component.FacingRight},
		{"clamp_left_edge", 4, -1, 0, component.FacingLeft},
		{"idle", 450, 0, 450, component.FacingNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.transform(f.player).X = tc.startX
			f.input(component.Input{MoveX: tc.move, MoveY: 1})

			NewPlayerControlSystem().Update(f.w)

			tr := f.transform(f.player)
			if tr.X != tc.wantX {
				t.Fatalf("expected x=%v, got %v", tc.wantX, tr.X)
			}
			if tr.Y != common.ArenaHeight-tr.Height {
				t.Fatalf("player left the bottom edge: y=%v", tr.Y)
			}
			p, _ := ecs.Get(f.w, f.player, component.PlayerComponent.Kind())
			if p.Facing != tc.facing {
				t.Fatalf("expected facing %v, got %v", tc.facing, p.Facing)
			}
		})
	}
}

func TestFireWithoutAmmo(t *testing.T) {
	f := newFixture(t)
	f.resources().Ammo = 0
	f.input(component.Input{Held: component.ActionSet(0).With(component.ActionShoot)})

	fire := NewFireSystem(f.env)
	for i := 0; i < 30; i++ {
		fire.Update(f.w)
	}

	if n := f.playerBullets(); n != 0 {
		t.Fatalf("fired %d bullets with no ammo", n)
	}
	if f.resources().Ammo != 0 {
		t.Fatalf("ammo went negative: %d", f.resources().Ammo)
	}
}

func TestFireCooldown(t *testing.T) {
	f := newFixture(t)
	f.resources().Ammo = 5
	f.input(component.Input{Held: component.ActionSet(0).With(component.ActionShoot)})

	fire := NewFireSystem(f.env)
	fire.Update(f.w)
	if n := f.playerBullets(); n != 1 {
		t.Fatalf("expected one bullet on the first frame, got %d", n)
	}
	if f.resources().Ammo != 4 {
		t.Fatalf("expected ammo 4, got %d", f.resources().Ammo)
	}
	if !hasCue(f.cues(), component.CueShoot) {
		t.Fatalf("expected a shoot cue")
	}

	// 250ms is 15 frames at 60 fps.
	for i := 0; i < 14; i++ {
		fire.Update(f.w)
	}
	if n := f.playerBullets(); n != 1 {
		t.Fatalf("fired during cooldown: %d bullets", n)
	}
	fire.Update(f.w)
	if n := f.playerBullets(); n != 2 {
		t.Fatalf("expected a second bullet once the cooldown ran out, got %d", n)
	}
}

func TestFireMuzzle(t *testing.T) {
	f := newFixture(t)
	f.input(component.Input{Held: component.ActionSet(0).With(component.ActionShoot)})

	NewFireSystem(f.env).Update(f.w)

	e, ok := ecs.First(f.w, component.BulletComponent.Kind())
	if !ok {
		t.Fatalf("no bullet fired")
	}
	tr := f.transform(e)
	spec := f.env.Tuning.Bullets.Player
	if c := tr.Center(); c.X != 500 {
		t.Fatalf("bullet not centered on the ship: %v", c)
	}
	if tr.Bottom() != 700-10 {
		t.Fatalf("expected bullet bottom 10px above the ship, got %v", tr.Bottom())
	}
	if tr.Height != spec.Height {
		t.Fatalf("bullet size not taken from tuning")
	}
}

func TestPlayerBulletsRetireAtTop(t *testing.T) {
	f := newFixture(t)
	spent := f.playerBullet(cp.Vector{X: 300, Y: 20})
	flying := f.playerBullet(cp.Vector{X: 300, Y: 400})

	NewPlayerBulletSystem().Update(f.w)

	if !ecs.IsQueued(f.w, spent) {
		t.Fatalf("bullet at the top edge should be retired")
	}
	if ecs.IsQueued(f.w, flying) {
		t.Fatalf("bullet mid-arena retired early")
	}
	if got := f.transform(flying).Center().Y; got != 390 {
		t.Fatalf("expected bullet to climb to 390, got %v", got)
	}
	res := f.resources()
	if res.BulletsSpent != 1 || res.Ammo != 200 {
		t.Fatalf("expected one spent bullet and no ammo refund, got spent %d ammo %d", res.BulletsSpent, res.Ammo)
	}
}

func TestExplosionLifetime(t *testing.T) {
	f := newFixture(t)
	spec := f.env.Tuning.Explosions[entity.ExplosionSmall]
	ticks := f.env.Tuning.Rules.ExplosionFrameTicks
	e, err := entity.NewExplosion(f.w, entity.ExplosionSmall, spec, cp.Vector{X: 100, Y: 100}, ticks)
	if err != nil {
		t.Fatal(err)
	}

	sys := NewExplosionSystem()
	last := spec.Frames*ticks - 1
	for i := 0; i < last; i++ {
		sys.Update(f.w)
	}
	if ecs.IsQueued(f.w, e) {
		t.Fatalf("explosion removed before its last frame")
	}
	sprite, _ := ecs.Get(f.w, e, component.SpriteComponent.Kind())
	if sprite.Variant != spec.Frames-1 {
		t.Fatalf("expected last frame %d, got %d", spec.Frames-1, sprite.Variant)
	}

	sys.Update(f.w)
	if !ecs.IsQueued(f.w, e) {
		t.Fatalf("explosion outlived its animation")
	}
}

func TestBackdrop(t *testing.T) {
	f := newFixture(t)
	e, _ := ecs.First(f.w, component.BackdropComponent.Kind())
	bg, _ := ecs.Get(f.w, e, component.BackdropComponent.Kind())
	sys := NewBackdropSystem()

	sys.Update(f.w)
	if bg.Y != -799 || bg.Tier != 0 {
		t.Fatalf("expected slow scroll on tier 0, got %+v", *bg)
	}

	f.resources().Score = 4000
	sys.Update(f.w)
	if bg.Y != -797 || bg.Tier != 1 {
		t.Fatalf("expected fast scroll on tier 1, got %+v", *bg)
	}

	f.resources().Score = 2000
	sys.Update(f.w)
	if bg.Tier != 1 {
		t.Fatalf("first upgrade should stick, got tier %d", bg.Tier)
	}

	f.resources().Score = 0
	sys.Update(f.w)
	if bg.Tier != 0 || bg.Upgraded {
		t.Fatalf("a zero score should drop back to the first tier, got %+v", *bg)
	}

	f.resources().Score = 10000
	sys.Update(f.w)
	if bg.Tier != 2 {
		t.Fatalf("expected tier 2, got %d", bg.Tier)
	}

	f.resources().Score = 16000
	bg.Y = -2
	sys.Update(f.w)
	if bg.Tier != 3 || bg.Y != -common.ArenaHeight {
		t.Fatalf("expected tier 3 and a wrap, got %+v", *bg)
	}
}

func countBosses(w *ecs.World) int {
	return ecs.Count(w, component.BossComponent.Kind())
}

func countCue(cues []component.Cue, want component.Cue) int {
	n := 0
	for _, c := range cues {
		if c == want {
			n++
		}
	}
	return n
}

func TestSpawnBossOnce(t *testing.T) {
	tests := []struct {
		score  int
		bosses int
	}{
		{0, 0},
		{4999, 0},
		{5000, 1},
		{12000, 2},
		{15000, 3},
	}

	for _, tc := range tests {
		f := newFixture(t)
		f.resources().Score = tc.score
		director := NewSpawnDirector(f.env)

		director.Update(f.w)
		director.Update(f.w)

		if n := countBosses(f.w); n != tc.bosses {
			t.Fatalf("score %d: expected %d bosses, got %d", tc.score, tc.bosses, n)
		}
		if n := countCue(f.cues(), component.CueWarning); n != tc.bosses {
			t.Fatalf("score %d: expected %d warning cues, got %d", tc.score, tc.bosses, n)
		}
		if tc.bosses > 0 {
			if hp, _ := f.registry().Health(0); hp != 150 {
				t.Fatalf("score %d: boss1 health %d, want 150", tc.score, hp)
			}
		}
	}
}

func TestSpawnBossNotAgainAfterKill(t *testing.T) {
	f := newFixture(t)
	f.resources().Score = 5000
	director := NewSpawnDirector(f.env)

	director.Update(f.w)
	e, ok := ecs.First(f.w, component.BossComponent.Kind())
	if !ok {
		t.Fatalf("boss1 did not spawn")
	}
	ecs.DestroyEntity(f.w, e)

	director.Update(f.w)
	if n := countBosses(f.w); n != 0 {
		t.Fatalf("boss1 respawned within the same run")
	}
}

func TestSpawnBossRetriesAfterFailedBuild(t *testing.T) {
	f := newFixture(t)
	f.resources().Score = 5000
	width := f.env.Tuning.Bosses[0].Width
	f.env.Tuning.Bosses[0].Width = 0
	director := NewSpawnDirector(f.env)

	director.Update(f.w)
	if n := countBosses(f.w); n != 0 {
		t.Fatalf("boss without a size spawned")
	}
	if f.registry().Spawned(0) {
		t.Fatalf("failed build must not use up the boss")
	}
	if n := countCue(f.cues(), component.CueWarning); n != 0 {
		t.Fatalf("expected no warning cue, got %d", n)
	}

	f.env.Tuning.Bosses[0].Width = width
	director.Update(f.w)
	if n := countBosses(f.w); n != 1 || !f.registry().Spawned(0) {
		t.Fatalf("boss1 should spawn once its spec is valid, got %d", n)
	}
}

func TestSpawnRolls(t *testing.T) {
	f := newFixture(t)
	// Bouncer trial succeeds, every later roll fails.
	f.dice.script = []int{0}
	director := NewSpawnDirector(f.env)

	director.Update(f.w)

	if n := ecs.Count(f.w, component.BouncerComponent.Kind()); n != 1 {
		t.Fatalf("expected one bouncer, got %d", n)
	}
	if n := ecs.Count(f.w, component.HazardComponent.Kind()); n != 0 {
		t.Fatalf("gated hazards spawned at score 0: %d", n)
	}
	if n := ecs.Count(f.w, component.ChargerComponent.Kind()); n != 0 {
		t.Fatalf("charger spawned below its gate")
	}
}

func TestSpawnGates(t *testing.T) {
	tests := []struct {
		name       string
		score      int
		frames     int
		chargers   int
		meteors    int
		blackHoles int
	}{
		{name: "below_everything", score: 1000, frames: 1, chargers: 0, meteors: 0, blackHoles: 0},
		{name: "black_hole_opens", score: 1001, frames: 1, chargers: 0, meteors: 0, blackHoles: 1},
		{name: "charger_cap", score: 3000, frames: 5, chargers: 2, meteors: 0, blackHoles: 5},
		{name: "meteor_opens", score: 3001, frames: 1, chargers: 1, meteors: 1, blackHoles: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.dice.zero = true
			f.resources().Score = tc.score
			director := NewSpawnDirector(f.env)

			for i := 0; i < tc.frames; i++ {
				director.Update(f.w)
			}

			if n := ecs.Count(f.w, component.ChargerComponent.Kind()); n != tc.chargers {
				t.Fatalf("expected %d chargers, got %d", tc.chargers, n)
			}
			if n := countHazards(f.w, component.HazardMeteor); n != tc.meteors {
				t.Fatalf("expected %d meteors, got %d", tc.meteors, n)
			}
			if n := countHazards(f.w, component.HazardBlackHole); n != tc.blackHoles {
				t.Fatalf("expected %d black holes, got %d", tc.blackHoles, n)
			}
		})
	}
}

func TestSpawnBrokenGateKeepsKindClosed(t *testing.T) {
	f := newFixture(t)
	f.env.Tuning.Spawns.Bouncer.Gate = "score >="
	f.dice.script = []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	NewSpawnDirector(f.env).Update(f.w)

	if n := ecs.Count(f.w, component.BouncerComponent.Kind()); n != 0 {
		t.Fatalf("bouncer spawned through a broken gate")
	}
}
