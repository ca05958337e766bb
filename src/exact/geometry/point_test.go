package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"lattice/src/exact/rational"
)

type twelfths struct{}

func (twelfths) Den() int64 { return 12 }

type rat12 = rational.Rat[int64, twelfths]

var (
	_ Scalar[Int]   = Int(0)
	_ Scalar[rat12] = rat12{}
)

func must[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}
	return v
}

func r12(num, den int64) rat12 {
	return must(rational.FromRatio[int64, twelfths](num, den))
}

func ip(x, y, z int64) Point[Int] {
	return NewPoint(Int(x), Int(y), Int(z))
}

func TestPointAddSub(t *testing.T) {
	a := ip(1, 2, 3)
	b := ip(4, 5, 6)

	require.True(t, a.Add(b).Equal(ip(5, 7, 9)))
	require.True(t, b.Sub(a).Equal(ip(3, 3, 3)))
	require.True(t, a.Sub(a).IsZero())

	// Exact rational coordinates behave the same way.
	p := NewPoint(r12(1, 2), r12(1, 3), r12(1, 4))
	q := p.Add(p)
	require.True(t, q.Equal(NewPoint(r12(1, 1), r12(2, 3), r12(1, 2))))
}

func TestPointScale(t *testing.T) {
	a := ip(1, 2, 3)
	require.True(t, must(a.Scale(3)).Equal(ip(3, 6, 9)))

	p := NewPoint(r12(1, 2), r12(1, 3), r12(1, 4))
	scaled := must(p.Scale(rational.FromInt[int64, twelfths](2)))
	require.True(t, scaled.Equal(NewPoint(r12(1, 1), r12(2, 3), r12(1, 2))))
}

func TestPointScaleInexact(t *testing.T) {
	// 1/3 * 1/3 is a ninth, which twelfths cannot hold; the first refused
	// coordinate surfaces as the scale error.
	p := NewPoint(r12(1, 3), r12(1, 3), r12(1, 3))

	_, err := p.Scale(r12(1, 3))
	var inexact *rational.UnrepresentableError[int64]
	require.ErrorAs(t, err, &inexact)
	require.Equal(t, int64(3), inexact.MinimumFixFactor())
}

func TestPointDot(t *testing.T) {
	a := ip(1, 2, 3)
	b := ip(4, 5, 6)

	got := must(a.Dot(b))
	require.True(t, got.Equal(Int(32)))
	require.True(t, must(b.Dot(a)).Equal(got))

	// Orthogonal axes dot to zero.
	var zero Int
	require.True(t, must(ip(1, 0, 0).Dot(ip(0, 1, 0))).Equal(zero))
}

func TestPointCross(t *testing.T) {
	x := ip(1, 0, 0)
	y := ip(0, 1, 0)
	z := ip(0, 0, 1)

	require.True(t, must(x.Cross(y)).Equal(z))
	require.True(t, must(y.Cross(z)).Equal(x))
	require.True(t, must(z.Cross(x)).Equal(y))

	// Anticommutative.
	a := ip(2, 3, 5)
	b := ip(7, 11, 13)
	ab := must(a.Cross(b))
	ba := must(b.Cross(a))
	require.True(t, ab.Add(ba).IsZero())

	// Parallel inputs vanish.
	require.True(t, must(a.Cross(a)).IsZero())

	// A cross product is orthogonal to both factors.
	var zero Int
	require.True(t, must(ab.Dot(a)).Equal(zero))
	require.True(t, must(ab.Dot(b)).Equal(zero))
}

func TestPointString(t *testing.T) {
	require.Equal(t, "(1, 2, 3)", ip(1, 2, 3).String())
	require.Equal(t, "(6/12, 4/12, 3/12)",
		NewPoint(r12(1, 2), r12(1, 3), r12(1, 4)).String())
}

func TestPointHomogeneousLift(t *testing.T) {
	a := ip(1, 2, 3)

	pos := a.AsPoint()
	require.True(t, pos.W.Equal(Int(1)))
	require.True(t, pos.XYZ().Equal(a))

	vec := a.AsVector()
	var zero Int
	require.True(t, vec.W.Equal(zero))
	require.True(t, vec.XYZ().Equal(a))
}

func TestVec4Arithmetic(t *testing.T) {
	v := Vec4[Int]{X: 1, Y: 2, Z: 3, W: 1}
	u := Vec4[Int]{X: 4, Y: 5, Z: 6, W: 0}

	require.True(t, v.Add(u).Equal(Vec4[Int]{X: 5, Y: 7, Z: 9, W: 1}))
	require.True(t, v.Sub(u).Equal(Vec4[Int]{X: -3, Y: -3, Z: -3, W: 1}))

	// W participates in the homogeneous dot.
	require.True(t, must(v.Dot(v)).Equal(Int(1+4+9+1)))
}

func TestVec4At(t *testing.T) {
	v := Vec4[Int]{X: 1, Y: 2, Z: 3, W: 4}
	for i := 0; i < 4; i++ {
		require.True(t, v.At(i).Equal(Int(i+1)))
	}
	require.Panics(t, func() { v.At(4) })
	require.Panics(t, func() { v.At(-1) })
}
