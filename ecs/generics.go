package ecs

import "github.com/milk9111/cosmicheat/ecs/component"

var (
	ErrEntityNotAlive = component.ErrEntityNotAlive
	ErrNilComponent   = component.ErrNilComponent
)

func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes e and all of its components immediately.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.destroy(e)
}

func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities lists every live entity, including ones queued for destruction.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// QueueDestroy hides e from every later query this frame. The entity keeps
// its components until FlushDestroyed runs.
func QueueDestroy(w *World, e Entity) bool {
	if w == nil || !w.visible(e) {
		return false
	}
	w.queued[e] = struct{}{}
	w.queue = append(w.queue, e)
	return true
}

// IsQueued reports whether e is waiting to be destroyed.
func IsQueued(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	_, ok := w.queued[e]
	return ok
}

// FlushDestroyed destroys every queued entity and returns how many were removed.
func FlushDestroyed(w *World) int {
	if w == nil {
		return 0
	}
	n := 0
	for _, e := range w.queue {
		if w.destroy(e) {
			n++
		}
	}
	w.queue = w.queue[:0]
	clear(w.queued)
	return n
}

// Clear destroys every entity in the world and drops pending events.
func Clear(w *World) {
	if w == nil {
		return
	}
	for _, e := range w.entities.all() {
		w.destroy(e)
	}
	w.queue = w.queue[:0]
	clear(w.queued)
	w.events.Drain()
}

func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if w == nil || !w.entities.isAlive(e) {
		return ErrEntityNotAlive
	}
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return ErrNilComponent
	}
	w.store(kind.ID(), true).set(e, value)
	return nil
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	s := w.store(kind.ID(), false)
	if s == nil {
		return nil, false
	}
	v, ok := s.get(e)
	if !ok {
		return nil, false
	}
	typed, ok := v.(*T)
	return typed, ok
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	_, ok := Get(w, e, kind)
	return ok
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	s := w.store(kind.ID(), false)
	if s == nil {
		return false
	}
	return s.remove(e)
}

// Query returns the visible entities carrying kind, oldest first.
func Query[T any](w *World, kind component.ComponentKind[T]) []Entity {
	return w.match(kind.ID())
}

// Count returns how many visible entities carry kind.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	return len(w.match(kind.ID()))
}

// First returns the oldest visible entity carrying kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	ents := w.match(kind.ID())
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// ForEach visits entities in creation order. Entities queued for destruction
// by an earlier callback in the same pass are skipped.
func ForEach[A any](w *World, ka component.ComponentKind[A], fn func(Entity, *A)) {
	for _, e := range w.match(ka.ID()) {
		if !w.visible(e) {
			continue
		}
		a, ok := Get(w, e, ka)
		if !ok {
			continue
		}
		fn(e, a)
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	for _, e := range w.match(ka.ID(), kb.ID()) {
		if !w.visible(e) {
			continue
		}
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		if !okA || !okB {
			continue
		}
		fn(e, a, b)
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	for _, e := range w.match(ka.ID(), kb.ID(), kc.ID()) {
		if !w.visible(e) {
			continue
		}
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		c, okC := Get(w, e, kc)
		if !okA || !okB || !okC {
			continue
		}
		fn(e, a, b, c)
	}
}

func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	for _, e := range w.match(ka.ID(), kb.ID(), kc.ID(), kd.ID()) {
		if !w.visible(e) {
			continue
		}
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		c, okC := Get(w, e, kc)
		d, okD := Get(w, e, kd)
		if !okA || !okB || !okC || !okD {
			continue
		}
		fn(e, a, b, c, d)
	}
}
