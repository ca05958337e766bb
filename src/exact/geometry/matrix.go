package geometry

import "strings"

// Matrix is a 4x4 matrix over an exact scalar, stored as an array of
// columns. With rational members arbitrary rotation is off the table; the
// intended diet is quarter-turn rotations, reflections, scalings and
// translations of homogeneous points.
type Matrix[S Scalar[S]] struct {
	cols [4]Vec4[S]
}

// Identity returns the identity matrix.
func Identity[S Scalar[S]]() Matrix[S] {
	var zero S
	one := zero.One()
	var m Matrix[S]
	for i := 0; i < 4; i++ {
		m.cols[i].setAt(i, one)
	}
	return m
}

// FromColumns assembles a matrix from its columns.
func FromColumns[S Scalar[S]](c0, c1, c2, c3 Vec4[S]) Matrix[S] {
	return Matrix[S]{cols: [4]Vec4[S]{c0, c1, c2, c3}}
}

// Translation returns the affine matrix moving points by d. Vectors
// (W = 0) pass through unchanged.
func Translation[S Scalar[S]](d Point[S]) Matrix[S] {
	m := Identity[S]()
	var zero S
	m.cols[3] = Vec4[S]{X: d.X, Y: d.Y, Z: d.Z, W: zero.One()}
	return m
}

// Scaling returns the matrix scaling all three axes by f.
func Scaling[S Scalar[S]](f S) Matrix[S] {
	var zero S
	var m Matrix[S]
	for i := 0; i < 3; i++ {
		m.cols[i].setAt(i, f)
	}
	m.cols[3].W = zero.One()
	return m
}

// Column returns column i. Out of range panics.
func (m Matrix[S]) Column(i int) Vec4[S] {
	return m.cols[i]
}

// Row returns row i. Out of range panics.
func (m Matrix[S]) Row(i int) Vec4[S] {
	return Vec4[S]{
		X: m.cols[0].At(i),
		Y: m.cols[1].At(i),
		Z: m.cols[2].At(i),
		W: m.cols[3].At(i),
	}
}

// SetColumn replaces column i, returning the modified matrix.
func (m Matrix[S]) SetColumn(i int, v Vec4[S]) Matrix[S] {
	m.cols[i] = v
	return m
}

// SetRow replaces row i, returning the modified matrix.
func (m Matrix[S]) SetRow(i int, v Vec4[S]) Matrix[S] {
	for j := 0; j < 4; j++ {
		m.cols[j].setAt(i, v.At(j))
	}
	return m
}

// Mul returns m*n, each entry a row-by-column dot product. The first entry
// the scalar type refuses aborts the product.
func (m Matrix[S]) Mul(n Matrix[S]) (Matrix[S], error) {
	var out Matrix[S]
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			s, err := m.Row(i).Dot(n.cols[j])
			if err != nil {
				return Matrix[S]{}, err
			}
			out.cols[j].setAt(i, s)
		}
	}
	return out, nil
}

// Apply transforms a homogeneous vector.
func (m Matrix[S]) Apply(v Vec4[S]) (Vec4[S], error) {
	var out Vec4[S]
	for i := 0; i < 4; i++ {
		s, err := m.Row(i).Dot(v)
		if err != nil {
			return Vec4[S]{}, err
		}
		out.setAt(i, s)
	}
	return out, nil
}

// ApplyPoint transforms a 3-space point through the affine matrix, lifting
// to W = 1 and dropping W afterwards.
func (m Matrix[S]) ApplyPoint(p Point[S]) (Point[S], error) {
	v, err := m.Apply(p.AsPoint())
	if err != nil {
		return Point[S]{}, err
	}
	return v.XYZ(), nil
}

func (m Matrix[S]) Equal(n Matrix[S]) bool {
	for i := range m.cols {
		if !m.cols[i].Equal(n.cols[i]) {
			return false
		}
	}
	return true
}

func (m Matrix[S]) String() string {
	var b strings.Builder
	for i := 0; i < 4; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(m.Row(i).String())
	}
	return b.String()
}
