package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Unit normalizes v. The zero vector has no direction, so ok is false and
// the zero vector is returned instead of cp's NaN.
func Unit(v cp.Vector) (cp.Vector, bool) {
	l := v.Length()
	if l == 0 || math.IsNaN(l) {
		return cp.Vector{}, false
	}
	return v.Mult(1 / l), true
}

// Reflect mirrors d across the unit normal n: d - 2(d·n)n.
func Reflect(d, n cp.Vector) cp.Vector {
	return d.Sub(n.Mult(2 * d.Dot(n)))
}

// Toward returns the unit vector from 'from' to 'to', or fallback when the
// points coincide.
func Toward(from, to, fallback cp.Vector) cp.Vector {
	if u, ok := Unit(to.Sub(from)); ok {
		return u
	}
	return fallback
}

// Heading is the angle of v in degrees, screen-space.
func Heading(v cp.Vector) float64 {
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}

// IsDiagonal reports whether both components of an 8-way direction are set.
func IsDiagonal(v cp.Vector) bool {
	return v.X != 0 && v.Y != 0
}
