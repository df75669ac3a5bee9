package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/cosmicheat/common"
	"github.com/milk9111/cosmicheat/ecs"
	"github.com/milk9111/cosmicheat/ecs/component"
)

type separationBody struct {
	e       ecs.Entity
	t       *component.Transform
	m       *component.Motion
	movable bool
}

// separatePair pushes two overlapping bodies apart along the line between
// their centers and mirrors their headings across it. It returns the
// displacement applied to b; a receives the exact negation. Coincident
// centers have no defined normal, so the pair is left alone.
func separatePair(a, b separationBody, force float64) (cp.Vector, bool) {
	if !a.movable && !b.movable {
		return cp.Vector{}, false
	}
	if !a.t.Rect().Overlaps(b.t.Rect()) {
		return cp.Vector{}, false
	}

	between := b.t.Center().Sub(a.t.Center())
	dist := between.Length()
	n, ok := common.Unit(between)
	if !ok {
		return cp.Vector{}, false
	}

	for _, body := range []separationBody{a, b} {
		if !body.movable {
			continue
		}
		if dir, ok := common.Unit(common.Reflect(body.m.Dir, n)); ok {
			body.m.Dir = dir
		}
	}

	reach := a.t.Width/2 + b.t.Width/2
	mag := 0.0
	if reach > 0 {
		mag = math.Max(0, 1-dist/reach) * force
	}
	push := n.Mult(mag)

	if a.movable {
		a.t.Translate(push.Neg())
	}
	if b.movable {
		b.t.Translate(push)
	}
	return push, true
}

// separateAll runs separatePair over every unordered pair once, oldest
// entity first.
func separateAll(bodies []separationBody, force float64) {
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			separatePair(bodies[i], bodies[j], force)
		}
	}
}
