package mathutil

import (
	"golang.org/x/exp/constraints"
)

// RoundDiv returns a/b rounded to the nearest integer, with halves rounded
// away from zero.
func RoundDiv[T constraints.Integer](a, b T) T {
	q, r := a/b, a%b
	if r < 0 {
		r = -r
	}
	absB := b
	if absB < 0 {
		absB = -absB
	}
	if r < absB-r {
		return q
	}
	if (a < 0) != (b < 0) {
		return q - 1
	}
	return q + 1
}
