package vecmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Mat3 is a 3x3 matrix; Mrc is the entry in row r, column c.
type Mat3 struct {
	M11, M12, M13 float64
	M21, M22, M23 float64
	M31, M32, M33 float64
}

var Mat3Identity = Mat3{
	M11: 1, M12: 0, M13: 0,
	M21: 0, M22: 1, M23: 0,
	M31: 0, M32: 0, M33: 1,
}

// Mat3FromSlice fills the matrix row by row from exactly nine values.
func Mat3FromSlice(s []float64) (Mat3, error) {
	if len(s) != 9 {
		return Mat3{}, errorf("mat3 needs 9 values, got %d", len(s))
	}
	return Mat3{
		M11: s[0], M12: s[1], M13: s[2],
		M21: s[3], M22: s[4], M23: s[5],
		M31: s[6], M32: s[7], M33: s[8],
	}, nil
}

// Mat3FromCols uses c1, c2 and c3 as the matrix columns.
func Mat3FromCols(c1, c2, c3 Vec3) Mat3 {
	return Mat3{
		M11: c1.X, M12: c2.X, M13: c3.X,
		M21: c1.Y, M22: c2.Y, M23: c3.Y,
		M31: c1.Z, M32: c2.Z, M33: c3.Z,
	}
}

// Mat3From accepts either one numeric sequence of nine values or three Vec3
// columns.
func Mat3From(args ...any) (Mat3, error) {
	switch len(args) {
	case 1:
		if s, ok := toFloats(args[0]); ok {
			return Mat3FromSlice(s)
		}
	case 3:
		c1, ok1 := args[0].(Vec3)
		c2, ok2 := args[1].(Vec3)
		c3, ok3 := args[2].(Vec3)
		if ok1 && ok2 && ok3 {
			return Mat3FromCols(c1, c2, c3), nil
		}
	}
	return Mat3{}, errorf("cannot build mat3 from %v", args)
}

// IsMat3 reports whether a exposes all nine named entries.
func IsMat3(a any) bool {
	switch m := a.(type) {
	case Mat3, mgl64.Mat3:
		return true
	case *Mat3:
		return m != nil
	case map[string]float64:
		return hasKeys(m,
			"m11", "m12", "m13",
			"m21", "m22", "m23",
			"m31", "m32", "m33")
	}
	return false
}

func (m Mat3) R1() Vec3 { return Vec3{m.M11, m.M12, m.M13} }
func (m Mat3) R2() Vec3 { return Vec3{m.M21, m.M22, m.M23} }
func (m Mat3) R3() Vec3 { return Vec3{m.M31, m.M32, m.M33} }
func (m Mat3) C1() Vec3 { return Vec3{m.M11, m.M21, m.M31} }
func (m Mat3) C2() Vec3 { return Vec3{m.M12, m.M22, m.M32} }
func (m Mat3) C3() Vec3 { return Vec3{m.M13, m.M23, m.M33} }

// Mul returns the matrix product m·t.
func (m Mat3) Mul(t Mat3) Mat3 {
	r1, r2, r3 := m.R1(), m.R2(), m.R3()
	c1, c2, c3 := t.C1(), t.C2(), t.C3()
	return Mat3{
		M11: r1.Dot(c1), M12: r1.Dot(c2), M13: r1.Dot(c3),
		M21: r2.Dot(c1), M22: r2.Dot(c2), M23: r2.Dot(c3),
		M31: r3.Dot(c1), M32: r3.Dot(c2), M33: r3.Dot(c3),
	}
}

// MulVec returns m·v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{m.R1().Dot(v), m.R2().Dot(v), m.R3().Dot(v)}
}

func (m Mat3) MulScalar(s float64) Mat3 {
	return Mat3{
		M11: m.M11 * s, M12: m.M12 * s, M13: m.M13 * s,
		M21: m.M21 * s, M22: m.M22 * s, M23: m.M23 * s,
		M31: m.M31 * s, M32: m.M32 * s, M33: m.M33 * s,
	}
}

func (m Mat3) Trace() float64 {
	return m.M11 + m.M22 + m.M33
}

// Determinant uses the rule of Sarrus.
func (m Mat3) Determinant() float64 {
	return m.M11*m.M22*m.M33 + m.M21*m.M32*m.M13 + m.M31*m.M12*m.M23 -
		m.M13*m.M22*m.M31 - m.M23*m.M32*m.M11 - m.M33*m.M12*m.M21
}

func (m Mat3) Transpose() Mat3 {
	return Mat3{
		M11: m.M11, M12: m.M21, M13: m.M31,
		M21: m.M12, M22: m.M22, M23: m.M32,
		M31: m.M13, M32: m.M23, M33: m.M33,
	}
}

func (m Mat3) Cofactor() Mat3 {
	return Mat3{
		M11: m.M22*m.M33 - m.M23*m.M32,
		M12: m.M23*m.M31 - m.M21*m.M33,
		M13: m.M21*m.M32 - m.M22*m.M31,
		M21: m.M13*m.M32 - m.M12*m.M33,
		M22: m.M11*m.M33 - m.M13*m.M31,
		M23: m.M12*m.M31 - m.M11*m.M32,
		M31: m.M12*m.M23 - m.M13*m.M22,
		M32: m.M13*m.M21 - m.M11*m.M23,
		M33: m.M11*m.M22 - m.M12*m.M21,
	}
}

// Adjugate is the transposed cofactor matrix.
func (m Mat3) Adjugate() Mat3 {
	return m.Cofactor().Transpose()
}

// Inverse returns ErrNotInvertible when the determinant is exactly zero.
func (m Mat3) Inverse() (Mat3, error) {
	det := m.Determinant()
	if det == 0 {
		return Mat3{}, ErrNotInvertible
	}
	return m.Adjugate().MulScalar(1 / det), nil
}

// BuildTNB builds an orthonormal frame around the unit normal n and returns
// it as the columns (tangent, normal, binormal). A vertical normal takes the
// east axis as tangent.
func BuildTNB(n Vec3) Mat3 {
	t := Vec3East
	if math.Abs(n.Y) != 1 {
		t = Vec3{n.Z, 0, -n.X}.Normalize()
	}
	b := n.Cross(t)
	return Mat3FromCols(t, n, b)
}
