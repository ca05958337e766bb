package geometry

import "fmt"

// Point is a point (or free vector) in 3-space. The zero value is the
// origin. Operations that multiply scalars pass through the scalar's own
// exactness reporting; everything else is exact by construction.
type Point[S Scalar[S]] struct {
	X, Y, Z S
}

func NewPoint[S Scalar[S]](x, y, z S) Point[S] {
	return Point[S]{X: x, Y: y, Z: z}
}

func (p Point[S]) Add(q Point[S]) Point[S] {
	return Point[S]{X: p.X.Add(q.X), Y: p.Y.Add(q.Y), Z: p.Z.Add(q.Z)}
}

func (p Point[S]) Sub(q Point[S]) Point[S] {
	return Point[S]{X: p.X.Sub(q.X), Y: p.Y.Sub(q.Y), Z: p.Z.Sub(q.Z)}
}

// Scale multiplies every coordinate by s. Commutative with the scalar's own
// Mul by construction.
func (p Point[S]) Scale(s S) (Point[S], error) {
	x, err := p.X.Mul(s)
	if err != nil {
		return Point[S]{}, err
	}
	y, err := p.Y.Mul(s)
	if err != nil {
		return Point[S]{}, err
	}
	z, err := p.Z.Mul(s)
	if err != nil {
		return Point[S]{}, err
	}
	return Point[S]{X: x, Y: y, Z: z}, nil
}

// Dot is the scalar product.
func (p Point[S]) Dot(q Point[S]) (S, error) {
	var zero S
	xx, err := p.X.Mul(q.X)
	if err != nil {
		return zero, err
	}
	yy, err := p.Y.Mul(q.Y)
	if err != nil {
		return zero, err
	}
	zz, err := p.Z.Mul(q.Z)
	if err != nil {
		return zero, err
	}
	return xx.Add(yy).Add(zz), nil
}

// Cross is the vector product, right-hand rule.
func (p Point[S]) Cross(q Point[S]) (Point[S], error) {
	x, err := mulSub(p.Y, q.Z, p.Z, q.Y)
	if err != nil {
		return Point[S]{}, err
	}
	y, err := mulSub(p.Z, q.X, p.X, q.Z)
	if err != nil {
		return Point[S]{}, err
	}
	z, err := mulSub(p.X, q.Y, p.Y, q.X)
	if err != nil {
		return Point[S]{}, err
	}
	return Point[S]{X: x, Y: y, Z: z}, nil
}

// mulSub computes a*b - c*d.
func mulSub[S Scalar[S]](a, b, c, d S) (S, error) {
	var zero S
	ab, err := a.Mul(b)
	if err != nil {
		return zero, err
	}
	cd, err := c.Mul(d)
	if err != nil {
		return zero, err
	}
	return ab.Sub(cd), nil
}

func (p Point[S]) Equal(q Point[S]) bool {
	return p.X.Equal(q.X) && p.Y.Equal(q.Y) && p.Z.Equal(q.Z)
}

func (p Point[S]) IsZero() bool {
	var zero S
	return p.X.Equal(zero) && p.Y.Equal(zero) && p.Z.Equal(zero)
}

func (p Point[S]) String() string {
	return fmt.Sprintf("(%s, %s, %s)", p.X, p.Y, p.Z)
}

// AsPoint lifts to homogeneous coordinates as a position (W = 1), the form
// affine matrices translate.
func (p Point[S]) AsPoint() Vec4[S] {
	var zero S
	return Vec4[S]{X: p.X, Y: p.Y, Z: p.Z, W: zero.One()}
}

// AsVector lifts to homogeneous coordinates as a displacement (W = 0),
// immune to translation.
func (p Point[S]) AsVector() Vec4[S] {
	return Vec4[S]{X: p.X, Y: p.Y, Z: p.Z}
}

// Vec4 is a homogeneous 4-vector, the row/column currency of Matrix.
type Vec4[S Scalar[S]] struct {
	X, Y, Z, W S
}

func (v Vec4[S]) Add(u Vec4[S]) Vec4[S] {
	return Vec4[S]{X: v.X.Add(u.X), Y: v.Y.Add(u.Y), Z: v.Z.Add(u.Z), W: v.W.Add(u.W)}
}

func (v Vec4[S]) Sub(u Vec4[S]) Vec4[S] {
	return Vec4[S]{X: v.X.Sub(u.X), Y: v.Y.Sub(u.Y), Z: v.Z.Sub(u.Z), W: v.W.Sub(u.W)}
}

func (v Vec4[S]) Dot(u Vec4[S]) (S, error) {
	var zero S
	sum := zero
	for i := 0; i < 4; i++ {
		prod, err := v.At(i).Mul(u.At(i))
		if err != nil {
			return zero, err
		}
		sum = sum.Add(prod)
	}
	return sum, nil
}

func (v Vec4[S]) Equal(u Vec4[S]) bool {
	return v.X.Equal(u.X) && v.Y.Equal(u.Y) && v.Z.Equal(u.Z) && v.W.Equal(u.W)
}

// At returns component i in X, Y, Z, W order. Out of range panics.
func (v Vec4[S]) At(i int) S {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic("geometry: Vec4 index out of range")
}

func (v *Vec4[S]) setAt(i int, s S) {
	switch i {
	case 0:
		v.X = s
	case 1:
		v.Y = s
	case 2:
		v.Z = s
	case 3:
		v.W = s
	default:
		panic("geometry: Vec4 index out of range")
	}
}

// XYZ projects back to 3-space by dropping W.
func (v Vec4[S]) XYZ() Point[S] {
	return Point[S]{X: v.X, Y: v.Y, Z: v.Z}
}

func (v Vec4[S]) String() string {
	return fmt.Sprintf("(%s, %s, %s, %s)", v.X, v.Y, v.Z, v.W)
}
