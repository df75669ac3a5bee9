package common

// Dice is the randomness source used by gameplay code. *rand.Rand satisfies it.
type Dice interface {
	Intn(n int) int
	Float64() float64
}

// Roll runs a 1-in-(n+1) trial: a uniform draw from [0, n] compared to zero.
// A non-positive n always succeeds.
func Roll(d Dice, n int) bool {
	if n <= 0 {
		return true
	}
	if d == nil {
		return false
	}
	return d.Intn(n+1) == 0
}

// Between returns a uniform integer in [lo, hi]. Reversed bounds are swapped.
func Between(d Dice, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	if d == nil || hi == lo {
		return lo
	}
	return lo + d.Intn(hi-lo+1)
}

// Pick returns a uniform element of options, or the zero value if empty.
func Pick[T any](d Dice, options []T) T {
	var zero T
	if len(options) == 0 {
		return zero
	}
	if d == nil {
		return options[0]
	}
	return options[d.Intn(len(options))]
}
