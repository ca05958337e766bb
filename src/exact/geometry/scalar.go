// Package geometry provides fixed-size geometric value types — points,
// homogeneous vectors, directions and affine matrices — over any exact
// scalar. The intended scalar is rational.Rat, but anything satisfying
// Scalar works, including plain integers via the Int adapter.
package geometry

import "fmt"

// Scalar is what a type must do to serve as a coordinate. Mul returns an
// error because exact scalars may refuse a product they cannot represent;
// adapters for closed types return nil unconditionally. Implementations must
// be value types whose zero value means zero, and One must work on the zero
// value.
type Scalar[S any] interface {
	Add(S) S
	Sub(S) S
	Mul(S) (S, error)
	Equal(S) bool
	Less(S) bool
	One() S
	fmt.Stringer
}

// Int adapts a native integer to the Scalar interface. Integer arithmetic is
// always "exact" here in the sense that nothing is detected: overflow wraps
// the way int64 wraps.
type Int int64

func (n Int) Add(o Int) Int { return n + o }

func (n Int) Sub(o Int) Int { return n - o }

func (n Int) Mul(o Int) (Int, error) { return n * o, nil }

func (n Int) Equal(o Int) bool { return n == o }

func (n Int) Less(o Int) bool { return n < o }

func (n Int) One() Int { return 1 }

func (n Int) String() string { return fmt.Sprintf("%d", int64(n)) }
