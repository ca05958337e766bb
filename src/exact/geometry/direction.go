package geometry

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"lattice/src/exact/rational"
)

// Direction is a direction in 3-space stored as the smallest integer ratio
// of its axis proportions. It fills the role unit vectors play elsewhere:
// in a purely rational geometry almost no direction admits a unit-length
// representative, so no length guarantee is made — only that the stored
// ratio is fully reduced and therefore unique per direction. The zero value
// is the null direction.
type Direction[T constraints.Signed] struct {
	p [3]T
}

// NewDirection builds the direction through (x, y, z), reduced by the
// component gcd. Signs are preserved; the all-zero input stays null.
func NewDirection[T constraints.Signed](x, y, z T) Direction[T] {
	d := Direction[T]{p: [3]T{x, y, z}}
	d.normalize()
	return d
}

// DirectionFromRat builds the direction whose axis proportions match the
// given rational coordinates, cleared to integers by the lcm of their
// simplified denominators.
func DirectionFromRat[T constraints.Signed, D rational.Denom[T]](x, y, z rational.Rat[T, D]) Direction[T] {
	nx, dx := x.Simplified()
	ny, dy := y.Simplified()
	nz, dz := z.Simplified()

	l := rational.LCM(rational.LCM(dx, dy), dz)
	return NewDirection(nx*(l/dx), ny*(l/dy), nz*(l/dz))
}

func (d *Direction[T]) normalize() {
	g := rational.GCD(rational.GCD(d.p[0], d.p[1]), d.p[2])
	if g == 0 {
		return
	}
	for i := range d.p {
		d.p[i] /= g
	}
}

// Components returns the reduced axis proportions.
func (d Direction[T]) Components() [3]T {
	return d.p
}

// At returns the proportion along axis i. Out of range panics.
func (d Direction[T]) At(i int) T {
	return d.p[i]
}

// FirstNonZeroAxis returns the index of the first axis the direction has any
// extent along, or 3 for the null direction.
func (d Direction[T]) FirstNonZeroAxis() int {
	for i, v := range d.p {
		if v != 0 {
			return i
		}
	}
	return len(d.p)
}

func (d Direction[T]) Neg() Direction[T] {
	return Direction[T]{p: [3]T{-d.p[0], -d.p[1], -d.p[2]}}
}

// Equal relies on the representation invariant: reduced ratios are unique,
// so component equality is direction equality.
func (d Direction[T]) Equal(o Direction[T]) bool {
	return d.p == o.p
}

// Less orders directions lexicographically by component. Only useful where
// some arbitrary total order is required, such as sorted containers.
func (d Direction[T]) Less(o Direction[T]) bool {
	for i := range d.p {
		if d.p[i] != o.p[i] {
			return d.p[i] < o.p[i]
		}
	}
	return false
}

func (d Direction[T]) String() string {
	return fmt.Sprintf("<%d, %d, %d>", d.p[0], d.p[1], d.p[2])
}

// MutualOrthogonal finds one of the two directions orthogonal to both
// inputs, by cross product; opposite selects the other. Degenerate inputs
// (parallel or null) produce the null direction.
func MutualOrthogonal[T constraints.Signed](a, b Direction[T], opposite bool) Direction[T] {
	x := a.p[1]*b.p[2] - a.p[2]*b.p[1]
	y := a.p[2]*b.p[0] - a.p[0]*b.p[2]
	z := a.p[0]*b.p[1] - a.p[1]*b.p[0]
	if opposite {
		x, y, z = -x, -y, -z
	}
	return NewDirection(x, y, z)
}
