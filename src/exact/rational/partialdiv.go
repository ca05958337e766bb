package rational

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// PartialDivision is a fraction after cancelling the gcd of its two halves:
// Partial over Divisor. Divisor == 1 means the division came out whole; any
// other value is the leftover that could not be divided away. Every operation
// on Rat that can lose precision detects it through this one mechanism.
type PartialDivision[T constraints.Signed] struct {
	Partial T
	Divisor T
}

// Exact reports whether the division left no remainder behind.
func (p PartialDivision[T]) Exact() bool {
	return p.Divisor == 1
}

// Full finishes the division, truncating toward zero.
func (p PartialDivision[T]) Full() T {
	return p.Partial / p.Divisor
}

func (p PartialDivision[T]) String() string {
	return fmt.Sprintf("%d/%d", p.Partial, p.Divisor)
}

// PartialDivide cancels the gcd out of top/bottom. A negative bottom is
// folded into top first, so Divisor is always positive and Exact is a
// reliable test for every sign combination. A zero bottom panics natively;
// guarding integer domain errors is not this package's business.
func PartialDivide[T constraints.Signed](top, bottom T) PartialDivision[T] {
	if bottom < 0 {
		top, bottom = -top, -bottom
	}
	g := GCD(top, bottom)
	return PartialDivision[T]{Partial: top / g, Divisor: bottom / g}
}

// PartialDivideProduct divides the product of tops by bottom, cancelling
// each factor against the running divisor before it is multiplied in. The
// cancel-as-you-go order keeps intermediates as small as the inputs allow;
// it is the overflow-protected path used by Rat construction, multiplication
// and division.
func PartialDivideProduct[T constraints.Signed](tops []T, bottom T) PartialDivision[T] {
	ret := PartialDivision[T]{Partial: 1, Divisor: bottom}
	for _, top := range tops {
		cur := PartialDivide(top, ret.Divisor)
		cur.Partial *= ret.Partial
		ret = cur
	}
	return ret
}

// PartialDivideProductFast multiplies tops out before cancelling once.
// Cheaper than PartialDivideProduct by one gcd per factor, but the full
// product must fit in T. Use it where the operands are known to be small.
func PartialDivideProductFast[T constraints.Signed](tops []T, bottom T) PartialDivision[T] {
	product := T(1)
	for _, top := range tops {
		product *= top
	}
	return PartialDivide(product, bottom)
}
