// Package mathx holds small generic numeric helpers shared across the
// damage, player-state and energy-scheduling math so each package does not
// reimplement clamp/min/max/abs/rounding boilerplate.
package mathx

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Clamp restricts v to the inclusive range [lo, hi]. If lo > hi the two are
// swapped so callers never need to pre-sort bounds derived from signed
// deltas (e.g. speed offsets).
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if lo > hi {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Max returns the greater of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Min returns the lesser of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Abs returns the absolute value of v.
func Abs[T constraints.Signed | constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// RoundHalfEven rounds v to the nearest integer, breaking exact .5 ties
// toward the nearest even integer (banker's rounding). Used by the
// projection package's cone-shape damage falloff so results are
// reproducible regardless of platform rounding mode (spec.md §9).
func RoundHalfEven(v float64) int {
	floor := int64(math.Floor(v))
	frac := v - float64(floor)
	switch {
	case frac < 0.5:
		return int(floor)
	case frac > 0.5:
		return int(floor + 1)
	default:
		if floor%2 == 0 {
			return int(floor)
		}
		return int(floor + 1)
	}
}
