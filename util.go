package seg2

import "math"

const Epsilon = 1e-6

// To compensate for imprecision in floats, equality between computed
// coordinates is tolerance based. Note that the exact-equality predicates
// (IsVertical, IsHorizontal, segment equality) deliberately do not use this.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Clamp limits v to the range [lo, hi].
func Clamp(lo, hi, v float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RoundToInt rounds to the nearest integer. Ties round half away from zero:
// RoundToInt(0.5) == 1 and RoundToInt(-0.5) == -1. This matters to callers
// snapping coordinates to a pixel grid, so it is part of the contract.
func RoundToInt(v float64) int {
	return int(math.Round(v))
}

// Often we want to treat an array as a circular buffer. This gives the
// modular index given length n, but unlike the raw modulo operator, it only
// gives positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// IsPowerOfTwo reports whether v is an exact power of two. Zero and negative
// values are not.
func IsPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}

// NextPowerOfTwo returns the smallest power of two that is >= v.
func NextPowerOfTwo(v int) int {
	n := 1
	for n < v {
		n <<= 1
	}
	return n
}
