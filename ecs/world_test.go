package ecs

import (
	"testing"

	"github.com/milk9111/cosmicheat/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"destroy_middle", 3, 1},
		{"no_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if got := len(Entities(w)); got != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, got)
			}
			if c.destroyIndex < 0 {
				return
			}
			e := ents[c.destroyIndex]
			if !DestroyEntity(w, e) {
				t.Fatalf("DestroyEntity(%v) = false for a live entity", e)
			}
			if IsAlive(w, e) {
				t.Fatalf("%v still alive after destroy", e)
			}
			if DestroyEntity(w, e) {
				t.Fatalf("second DestroyEntity(%v) should report false", e)
			}
		})
	}
}

func TestRecycledSlotIsNewEntity(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()

	old := CreateEntity(w)
	if err := Add(w, old, kind, intPtr(7)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected slot %d to be reused, got %d", old.id(), fresh.id())
	}
	if fresh == old {
		t.Fatalf("recycled entity must carry a new generation")
	}
	if _, ok := Get(w, old, kind); ok {
		t.Fatalf("stale handle still resolves a component")
	}
	if Has(w, fresh, kind) {
		t.Fatalf("fresh entity inherited a component from the previous owner")
	}
}

func TestAddGetRemove(t *testing.T) {
	w := NewWorld()
	score := component.NewComponent[int]()
	e := CreateEntity(w)

	tests := []struct {
		name  string
		run   func() error
		check func(t *testing.T)
	}{
		{
			name: "add",
			run:  func() error { return Add(w, e, score.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e, score.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
		},
		{
			name: "overwrite",
			run:  func() error { return Add(w, e, score.Kind(), intPtr(20)) },
			check: func(t *testing.T) {
				if v, _ := Get(w, e, score.Kind()); v == nil || *v != 20 {
					t.Fatalf("expected overwrite to 20, got %v", v)
				}
			},
		},
		{
			name: "remove",
			run: func() error {
				if !Remove(w, e, score.Kind()) {
					t.Fatalf("Remove reported nothing removed")
				}
				return nil
			},
			check: func(t *testing.T) {
				if Has(w, e, score.Kind()) {
					t.Fatalf("component still present after Remove")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.run(); err != nil {
				t.Fatalf("run failed: %v", err)
			}
			tc.check(t)
		})
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()

	dead := CreateEntity(w)
	DestroyEntity(w, dead)
	if err := Add(w, dead, kind, intPtr(1)); err != ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}

	e := CreateEntity(w)
	if err := Add(w, e, kind, nil); err != ErrNilComponent {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}

	var zero component.ComponentKind[int]
	if err := Add(w, e, zero, intPtr(1)); err != component.ErrInvalidComponentKind {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
}

func TestQueryCreationOrder(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()

	var want []Entity
	for i := 0; i < 4; i++ {
		e := CreateEntity(w)
		want = append(want, e)
	}
	// Add in reverse so the dense array order differs from creation order.
	for i := len(want) - 1; i >= 0; i-- {
		if err := Add(w, want[i], kind, intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}

	got := Query(w, kind)
	if len(got) != len(want) {
		t.Fatalf("expected %d entities, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if first, ok := First(w, kind); !ok || first != want[0] {
		t.Fatalf("First = %v, %v; want %v", first, ok, want[0])
	}
}

func TestQueueDestroy(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()

	a := CreateEntity(w)
	b := CreateEntity(w)
	for _, e := range []Entity{a, b} {
		if err := Add(w, e, kind, intPtr(1)); err != nil {
			t.Fatal(err)
		}
	}

	if !QueueDestroy(w, a) {
		t.Fatalf("QueueDestroy(a) = false")
	}
	if QueueDestroy(w, a) {
		t.Fatalf("queueing twice should report false")
	}
	if !IsAlive(w, a) || !IsQueued(w, a) {
		t.Fatalf("queued entity should stay alive until flush")
	}
	if n := Count(w, kind); n != 1 {
		t.Fatalf("queued entity still visible to queries: count %d", n)
	}

	if n := FlushDestroyed(w); n != 1 {
		t.Fatalf("FlushDestroyed removed %d, want 1", n)
	}
	if IsAlive(w, a) || IsQueued(w, a) {
		t.Fatalf("entity survived flush")
	}
	if !IsAlive(w, b) {
		t.Fatalf("unqueued entity destroyed by flush")
	}
}

func TestForEachSkipsEntitiesQueuedMidPass(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()

	a := CreateEntity(w)
	b := CreateEntity(w)
	c := CreateEntity(w)
	for _, e := range []Entity{a, b, c} {
		if err := Add(w, e, kind, intPtr(0)); err != nil {
			t.Fatal(err)
		}
	}

	var seen []Entity
	ForEach(w, kind, func(e Entity, _ *int) {
		seen = append(seen, e)
		if e == a {
			QueueDestroy(w, b)
		}
	})
	if len(seen) != 2 || seen[0] != a || seen[1] != c {
		t.Fatalf("expected [a c], got %v", seen)
	}
}

func TestForEachIntersections(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[int]()
	kc := component.NewComponentKind[int]()
	kd := component.NewComponentKind[int]()

	partial := CreateEntity(w)
	full := CreateEntity(w)
	dead := CreateEntity(w)

	add := func(e Entity, kinds ...component.ComponentKind[int]) {
		for _, k := range kinds {
			if err := Add(w, e, k, intPtr(1)); err != nil {
				t.Fatal(err)
			}
		}
	}
	add(partial, ka, kb)
	add(full, ka, kb, kc, kd)
	add(dead, ka, kb, kc, kd)
	DestroyEntity(w, dead)

	tests := []struct {
		name string
		run  func() []Entity
		want []Entity
	}{
		{
			name: "pair",
			run: func() (res []Entity) {
				ForEach2(w, ka, kb, func(e Entity, _, _ *int) { res = append(res, e) })
				return res
			},
			want: []Entity{partial, full},
		},
		{
			name: "triple",
			run: func() (res []Entity) {
				ForEach3(w, ka, kb, kc, func(e Entity, _, _, _ *int) { res = append(res, e) })
				return res
			},
			want: []Entity{full},
		},
		{
			name: "quad",
			run: func() (res []Entity) {
				ForEach4(w, ka, kb, kc, kd, func(e Entity, _, _, _, _ *int) { res = append(res, e) })
				return res
			},
			want: []Entity{full},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.run()
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("expected %v, got %v", tc.want, got)
				}
			}
		})
	}
}

func TestClearDropsEverything(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()
	for i := 0; i < 3; i++ {
		e := CreateEntity(w)
		if err := Add(w, e, kind, intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}
	w.Events().Push(Event{Type: EventAudioCue})

	Clear(w)

	if n := len(Entities(w)); n != 0 {
		t.Fatalf("expected empty world, got %d entities", n)
	}
	if n := Count(w, kind); n != 0 {
		t.Fatalf("component store still yields %d entities", n)
	}
	if w.Events().Len() != 0 {
		t.Fatalf("events survived Clear")
	}
}
