package rational

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// UnrepresentableError reports that an operation's true result is not a
// whole number of 1/Den units at the fixed denominator in play. It carries
// the partial division that failed, which is enough to compute the smallest
// factor the denominator would need to be scaled by for the same operation
// to come out exact. Match it with errors.As:
//
//	var inexact *rational.UnrepresentableError[int64]
//	if errors.As(err, &inexact) {
//		factor = inexact.AccumulateFixFactor(factor)
//	}
//
// Accumulating across a whole test run, then asserting the accumulator is
// still 1, is the intended way to prove a chosen denominator sufficient; a
// failing assertion hands back the exact multiplier to bake into the next
// build. The accumulator belongs to the caller and is not safe to share
// across goroutines without locking.
type UnrepresentableError[T constraints.Signed] struct {
	msg     string
	partial T
	divisor T
}

// NewUnrepresentableError wraps the numerator and leftover divisor of a
// failed partial division. Argument order matters: partial is the value that
// was to be divided, divisor is what it could not be divided by.
func NewUnrepresentableError[T constraints.Signed](msg string, partial, divisor T) *UnrepresentableError[T] {
	return &UnrepresentableError[T]{msg: msg, partial: partial, divisor: divisor}
}

func (e *UnrepresentableError[T]) Error() string {
	return fmt.Sprintf("%s: %d/%d truncates (fix factor %d)",
		e.msg, e.partial, e.divisor, e.MinimumFixFactor())
}

// Partial returns the numerator left after cancellation.
func (e *UnrepresentableError[T]) Partial() T {
	return e.partial
}

// RemainingDivisor returns the divisor that would not cancel away.
func (e *UnrepresentableError[T]) RemainingDivisor() T {
	return e.divisor
}

// MinimumFixFactor returns the smallest positive integer the fixed
// denominator must be multiplied by for the failed operation to be exact.
func (e *UnrepresentableError[T]) MinimumFixFactor() T {
	return e.divisor / GCD(e.partial, e.divisor)
}

// AccumulateFixFactor folds this error's fix factor into a running
// accumulation and returns the new value. A non-positive running value is
// normalized to 1 first, so a zero-valued accumulator works from the start.
func (e *UnrepresentableError[T]) AccumulateFixFactor(running T) T {
	if running <= 0 {
		running = 1
	}
	return LCM(running, e.MinimumFixFactor())
}
