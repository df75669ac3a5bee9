package ecs

// entityStore hands out entity slots, recycles freed ones with a bumped
// generation, and remembers creation order so queries iterate
// deterministically even after slot reuse.
type entityStore struct {
	gens  []generation
	alive []bool
	born  []uint64
	free  []entityID
	seq   uint64
	count int
}

func (s *entityStore) create() Entity {
	var id entityID
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.gens = append(s.gens, 0)
		s.alive = append(s.alive, false)
		s.born = append(s.born, 0)
		id = entityID(len(s.gens))
	}

	idx := id - 1
	s.gens[idx]++
	s.alive[idx] = true
	s.seq++
	s.born[idx] = s.seq
	s.count++
	return makeEntity(id, s.gens[idx])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	idx := e.id() - 1
	s.alive[idx] = false
	s.free = append(s.free, e.id())
	s.count--
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gens) {
		return false
	}
	idx := id - 1
	return s.alive[idx] && s.gens[idx] == e.generation()
}

// order returns the creation sequence of a live entity.
func (s *entityStore) order(e Entity) uint64 {
	if !s.isAlive(e) {
		return 0
	}
	return s.born[e.id()-1]
}

func (s *entityStore) all() []Entity {
	out := make([]Entity, 0, s.count)
	for i := range s.gens {
		if s.alive[i] {
			out = append(out, makeEntity(entityID(i+1), s.gens[i]))
		}
	}
	return out
}
