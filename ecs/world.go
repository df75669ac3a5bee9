package ecs

import (
	"sort"

	"github.com/milk9111/cosmicheat/ecs/component"
)

// World owns entities, their component stores and the frame event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*sparseSet
	events   EventQueue

	queued map[Entity]struct{}
	queue  []Entity
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores: make(map[component.ComponentID]*sparseSet),
		queued: make(map[Entity]struct{}),
	}
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id component.ComponentID, create bool) *sparseSet {
	s, ok := w.stores[id]
	if !ok && create {
		s = &sparseSet{}
		w.stores[id] = s
	}
	return s
}

func (w *World) destroy(e Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.dropSlot(e)
	}
	delete(w.queued, e)
	return true
}

// visible reports whether queries should still yield e.
func (w *World) visible(e Entity) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	_, pending := w.queued[e]
	return !pending
}

// match returns visible entities holding every listed component, ordered by
// creation.
func (w *World) match(ids ...component.ComponentID) []Entity {
	if w == nil || len(ids) == 0 {
		return nil
	}

	sets := make([]*sparseSet, 0, len(ids))
	for _, id := range ids {
		s := w.store(id, false)
		if s == nil || s.len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}

	smallest := sets[0]
	for _, s := range sets[1:] {
		if s.len() < smallest.len() {
			smallest = s
		}
	}

	out := make([]Entity, 0, smallest.len())
	for _, e := range smallest.dense {
		if !w.visible(e) {
			continue
		}
		all := true
		for _, s := range sets {
			if s != smallest && !s.has(e) {
				all = false
				break
			}
		}
		if all {
			out = append(out, e)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return w.entities.order(out[i]) < w.entities.order(out[j])
	})
	return out
}
