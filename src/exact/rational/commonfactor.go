package rational

import (
	"golang.org/x/exp/constraints"
)

// Abs returns the absolute value of v. For unsigned types this is the
// identity and the result type is never widened.
func Abs[T constraints.Integer](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// GCD finds the greatest common divisor of a and b by Euclid's algorithm.
// The result is non-negative regardless of input signs; GCD(a, 0) == Abs(a).
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return Abs(a)
}

// LCM finds the least common multiple of a and b. Either input being zero
// yields zero. The intermediate a/g*b must fit in T; that is the caller's
// bargain with their chosen integer width.
func LCM[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	return Abs(a / GCD(a, b) * b)
}
