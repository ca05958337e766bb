// Package rational implements a fixed-denominator rational number type for
// geometry that cannot afford floating point: every value of one
// instantiation is a single integer numerator over a denominator fixed at
// the type level. Addition, subtraction and integer scaling cost the same as
// the underlying integer ops; multiplication and division cancel common
// factors before dividing and report, through UnrepresentableError, exactly
// how much too small the chosen denominator was.
//
// Pick a composite denominator wide enough for the values the application
// needs (the motivating use is voxel/lattice work, where something like
// 2^4*3^3*5^4*7*11*13 covers every fraction that matters), run the test
// suite accumulating fix factors, and scale the constant until nothing
// truncates.
package rational

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Denom pins a denominator to a type. Implement it on an empty struct:
//
//	type Twelfths struct{}
//	func (Twelfths) Den() int64 { return 12 }
//
// Two Rat instantiations with different markers are different types and do
// not mix without an explicit Convert; the marker itself occupies no storage.
// Den must be a positive constant; a marker whose Den varies between calls
// breaks every invariant this package has.
type Denom[T constraints.Signed] interface {
	Den() T
}

// Rat is a rational number with the denominator of D and value semantics.
// The zero value is 0. Values are not kept in lowest terms; Simplified
// produces a reduced copy on request and never writes back.
type Rat[T constraints.Signed, D Denom[T]] struct {
	num T
}

func den[T constraints.Signed, D Denom[T]]() T {
	var d D
	return d.Den()
}

// typeName renders the instantiation for diagnostics, e.g. "Rat[int64, 12]".
func typeName[T constraints.Signed, D Denom[T]]() string {
	var zero T
	return fmt.Sprintf("Rat[%T, %d]", zero, den[T, D]())
}

// FromInt returns v as a rational. v*Den must fit in T; this is a documented
// precondition, not a checked one.
func FromInt[T constraints.Signed, D Denom[T]](v T) Rat[T, D] {
	return Rat[T, D]{num: v * den[T, D]()}
}

// FromRatio rescales num/denom onto the fixed denominator. When the rescaled
// numerator would not be whole the result is a *UnrepresentableError[T] and
// the zero value.
func FromRatio[T constraints.Signed, D Denom[T]](num, denom T) (Rat[T, D], error) {
	d := den[T, D]()
	if denom == d {
		return Rat[T, D]{num: num}, nil
	}
	pd := PartialDivideProduct([]T{num, d}, denom)
	if !pd.Exact() {
		return Rat[T, D]{}, NewUnrepresentableError(
			fmt.Sprintf("inexact construction of a %s from %d/%d", typeName[T, D](), num, denom),
			pd.Partial, pd.Divisor)
	}
	return Rat[T, D]{num: pd.Full()}, nil
}

// FromRatioTrunc is FromRatio with the approximate policy: an inexact ratio
// truncates toward zero instead of failing.
func FromRatioTrunc[T constraints.Signed, D Denom[T]](num, denom T) Rat[T, D] {
	d := den[T, D]()
	if denom == d {
		return Rat[T, D]{num: num}
	}
	return Rat[T, D]{num: PartialDivideProduct([]T{num, d}, denom).Full()}
}

// FromFloat returns the nearest representable rational to v, rounding halves
// away from zero (math.Round). Float conversion is approximate by nature, so
// there is no erroring variant; a v of large magnitude may exceed the
// resolution of float64 before it exceeds T.
func FromFloat[T constraints.Signed, D Denom[T]](v float64) Rat[T, D] {
	return Rat[T, D]{num: T(math.Round(v * float64(den[T, D]())))}
}

// Convert rescales a rational onto another instantiation: a different
// integer width, denominator, or both. The cancellation arithmetic runs in
// int64, so narrowing conversions succeed whenever the rescaled numerator
// fits the target; an inexact conversion reports *UnrepresentableError[int64].
func Convert[T2 constraints.Signed, D2 Denom[T2], T constraints.Signed, D Denom[T]](o Rat[T, D]) (Rat[T2, D2], error) {
	pd := PartialDivideProduct([]int64{int64(o.Num()), int64(den[T2, D2]())}, int64(o.Den()))
	if !pd.Exact() {
		return Rat[T2, D2]{}, NewUnrepresentableError(
			fmt.Sprintf("inexact conversion of %s to %s", o, typeName[T2, D2]()),
			pd.Partial, pd.Divisor)
	}
	return Rat[T2, D2]{num: T2(pd.Full())}, nil
}

// ConvertTrunc is Convert with the approximate policy.
func ConvertTrunc[T2 constraints.Signed, D2 Denom[T2], T constraints.Signed, D Denom[T]](o Rat[T, D]) Rat[T2, D2] {
	pd := PartialDivideProduct([]int64{int64(o.Num()), int64(den[T2, D2]())}, int64(o.Den()))
	return Rat[T2, D2]{num: T2(pd.Full())}
}

// Num returns the raw numerator.
func (r Rat[T, D]) Num() T {
	return r.num
}

// Den returns the fixed denominator shared by every value of this type.
func (r Rat[T, D]) Den() T {
	return den[T, D]()
}

// Float64 is the lossy reading of the value. It is a named method rather
// than anything implicit: a float is not an adequate stand-in for a rational,
// or this package would not exist.
func (r Rat[T, D]) Float64() float64 {
	return float64(r.num) / float64(den[T, D]())
}

// Simplified returns the value as a numerator/denominator pair with their
// gcd cancelled out. The receiver is unchanged; the fixed-denominator
// representation cannot absorb the reduction.
func (r Rat[T, D]) Simplified() (num, denom T) {
	pd := PartialDivide(r.num, den[T, D]())
	return pd.Partial, pd.Divisor
}

// String renders the exact unsimplified fraction, "numerator/Den".
func (r Rat[T, D]) String() string {
	return fmt.Sprintf("%d/%d", r.num, den[T, D]())
}

// Inc returns r plus one whole unit.
func (r Rat[T, D]) Inc() Rat[T, D] {
	return Rat[T, D]{num: r.num + den[T, D]()}
}

// Dec returns r minus one whole unit.
func (r Rat[T, D]) Dec() Rat[T, D] {
	return Rat[T, D]{num: r.num - den[T, D]()}
}

func (r Rat[T, D]) Neg() Rat[T, D] {
	return Rat[T, D]{num: -r.num}
}

func (r Rat[T, D]) Abs() Rat[T, D] {
	return Rat[T, D]{num: Abs(r.num)}
}

// One returns the multiplicative identity of the instantiation.
func (r Rat[T, D]) One() Rat[T, D] {
	return Rat[T, D]{num: den[T, D]()}
}

// Add is exact: same denominator, numerators sum.
func (r Rat[T, D]) Add(o Rat[T, D]) Rat[T, D] {
	return Rat[T, D]{num: r.num + o.num}
}

func (r Rat[T, D]) Sub(o Rat[T, D]) Rat[T, D] {
	return Rat[T, D]{num: r.num - o.num}
}

// AddInt is exact and commutative with FromInt(n).Add(r).
func (r Rat[T, D]) AddInt(n T) Rat[T, D] {
	return Rat[T, D]{num: r.num + n*den[T, D]()}
}

func (r Rat[T, D]) SubInt(n T) Rat[T, D] {
	return Rat[T, D]{num: r.num - n*den[T, D]()}
}

// SubFrom returns n - r, the integer-on-the-left subtraction.
func (r Rat[T, D]) SubFrom(n T) Rat[T, D] {
	return Rat[T, D]{num: n*den[T, D]() - r.num}
}

// MulInt scales by a bare integer. No denominator is crossed, so the result
// is exact by construction.
func (r Rat[T, D]) MulInt(n T) Rat[T, D] {
	return Rat[T, D]{num: r.num * n}
}

// Mul multiplies two rationals, cancelling common factors between the
// numerator product and the denominator before any multiplication happens.
// An inexact product is a *UnrepresentableError[T].
func (r Rat[T, D]) Mul(o Rat[T, D]) (Rat[T, D], error) {
	pd := PartialDivideProduct([]T{r.num, o.num}, den[T, D]())
	if !pd.Exact() {
		return Rat[T, D]{}, r.inexact("*", o.String(), pd)
	}
	return Rat[T, D]{num: pd.Full()}, nil
}

// MulTrunc is Mul with the approximate policy.
func (r Rat[T, D]) MulTrunc(o Rat[T, D]) Rat[T, D] {
	return Rat[T, D]{num: PartialDivideProduct([]T{r.num, o.num}, den[T, D]()).Full()}
}

// Div divides two rationals with the same cancellation and error semantics
// as Mul. A zero divisor panics natively.
func (r Rat[T, D]) Div(o Rat[T, D]) (Rat[T, D], error) {
	pd := PartialDivideProduct([]T{r.num, den[T, D]()}, o.num)
	if !pd.Exact() {
		return Rat[T, D]{}, r.inexact("/", o.String(), pd)
	}
	return Rat[T, D]{num: pd.Full()}, nil
}

// DivTrunc is Div with the approximate policy.
func (r Rat[T, D]) DivTrunc(o Rat[T, D]) Rat[T, D] {
	return Rat[T, D]{num: PartialDivideProduct([]T{r.num, den[T, D]()}, o.num).Full()}
}

// DivInt divides by a bare integer.
func (r Rat[T, D]) DivInt(n T) (Rat[T, D], error) {
	pd := PartialDivide(r.num, n)
	if !pd.Exact() {
		return Rat[T, D]{}, r.inexact("/", fmt.Sprint(n), pd)
	}
	return Rat[T, D]{num: pd.Full()}, nil
}

// DivIntTrunc is DivInt with the approximate policy.
func (r Rat[T, D]) DivIntTrunc(n T) Rat[T, D] {
	return Rat[T, D]{num: PartialDivide(r.num, n).Full()}
}

// DivFrom returns n / r, the integer-on-the-left division. The integer is
// promoted by one factor of Den to the rational's scale and the division
// contributes the other, hence the doubled denominator in the cancellation.
func (r Rat[T, D]) DivFrom(n T) (Rat[T, D], error) {
	d := den[T, D]()
	pd := PartialDivideProduct([]T{n, d, d}, r.num)
	if !pd.Exact() {
		var zero T
		return Rat[T, D]{}, NewUnrepresentableError(
			fmt.Sprintf("inexact operation (%d / %s) -> Rat[%T, %d]", n, r, zero, d),
			pd.Partial, pd.Divisor)
	}
	return Rat[T, D]{num: pd.Full()}, nil
}

// DivFromTrunc is DivFrom with the approximate policy.
func (r Rat[T, D]) DivFromTrunc(n T) Rat[T, D] {
	d := den[T, D]()
	return Rat[T, D]{num: PartialDivideProduct([]T{n, d, d}, r.num).Full()}
}

// Mod returns the remainder of the numerators. Exact by construction.
func (r Rat[T, D]) Mod(o Rat[T, D]) Rat[T, D] {
	return Rat[T, D]{num: r.num % o.num}
}

func (r Rat[T, D]) inexact(op, operand string, pd PartialDivision[T]) *UnrepresentableError[T] {
	return NewUnrepresentableError(
		fmt.Sprintf("inexact operation (%s %s %s) -> %s", r, op, operand, typeName[T, D]()),
		pd.Partial, pd.Divisor)
}

// Cmp compares two rationals of the same instantiation: -1, 0 or 1.
func (r Rat[T, D]) Cmp(o Rat[T, D]) int {
	switch {
	case r.num < o.num:
		return -1
	case r.num > o.num:
		return 1
	}
	return 0
}

func (r Rat[T, D]) Equal(o Rat[T, D]) bool {
	return r.num == o.num
}

func (r Rat[T, D]) Less(o Rat[T, D]) bool {
	return r.num < o.num
}

// CmpInt compares r against a bare integer without risking overflow. With
// q, rem := num/Den, num%Den (both truncated toward zero, |rem| < Den,
// sign(rem) == sign(num)), the order of num and n*Den is the order of q and
// n, except on a quotient tie where it is the sign of rem. No multiplication
// is performed, so no width is ever exceeded.
func (r Rat[T, D]) CmpInt(n T) int {
	d := den[T, D]()
	q, rem := r.num/d, r.num%d
	switch {
	case q < n:
		return -1
	case q > n:
		return 1
	case rem > 0:
		return 1
	case rem < 0:
		return -1
	}
	return 0
}

// CmpIntFast is the unguarded comparison: one multiply, no division, and the
// caller's promise that n*Den fits in T.
func (r Rat[T, D]) CmpIntFast(n T) int {
	scaled := n * den[T, D]()
	switch {
	case r.num < scaled:
		return -1
	case r.num > scaled:
		return 1
	}
	return 0
}

func (r Rat[T, D]) EqualInt(n T) bool {
	return r.CmpInt(n) == 0
}

func (r Rat[T, D]) LessInt(n T) bool {
	return r.CmpInt(n) < 0
}
