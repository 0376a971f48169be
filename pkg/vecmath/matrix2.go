package vecmath

import "github.com/go-gl/mathgl/mgl64"

// Mat2 is a 2x2 matrix; Mrc is the entry in row r, column c.
type Mat2 struct {
	M11, M12 float64
	M21, M22 float64
}

var Mat2Identity = Mat2{
	M11: 1, M12: 0,
	M21: 0, M22: 1,
}

// Mat2FromSlice fills the matrix row by row from exactly four values.
func Mat2FromSlice(s []float64) (Mat2, error) {
	if len(s) != 4 {
		return Mat2{}, errorf("mat2 needs 4 values, got %d", len(s))
	}
	return Mat2{
		M11: s[0], M12: s[1],
		M21: s[2], M22: s[3],
	}, nil
}

// Mat2FromCols uses c1 and c2 as the matrix columns.
func Mat2FromCols(c1, c2 Vec2) Mat2 {
	return Mat2{
		M11: c1.X, M12: c2.X,
		M21: c1.Y, M22: c2.Y,
	}
}

// Mat2From accepts either one numeric sequence of four values or two Vec2
// columns.
func Mat2From(args ...any) (Mat2, error) {
	switch len(args) {
	case 1:
		if s, ok := toFloats(args[0]); ok {
			return Mat2FromSlice(s)
		}
	case 2:
		c1, ok1 := args[0].(Vec2)
		c2, ok2 := args[1].(Vec2)
		if ok1 && ok2 {
			return Mat2FromCols(c1, c2), nil
		}
	}
	return Mat2{}, errorf("cannot build mat2 from %v", args)
}

// IsMat2 reports whether a exposes all four named entries.
func IsMat2(a any) bool {
	switch m := a.(type) {
	case Mat2, mgl64.Mat2:
		return true
	case *Mat2:
		return m != nil
	case map[string]float64:
		return hasKeys(m, "m11", "m12", "m21", "m22")
	}
	return false
}

func (m Mat2) R1() Vec2 { return Vec2{m.M11, m.M12} }
func (m Mat2) R2() Vec2 { return Vec2{m.M21, m.M22} }
func (m Mat2) C1() Vec2 { return Vec2{m.M11, m.M21} }
func (m Mat2) C2() Vec2 { return Vec2{m.M12, m.M22} }

// Mul returns the matrix product m·t.
func (m Mat2) Mul(t Mat2) Mat2 {
	r1, r2 := m.R1(), m.R2()
	c1, c2 := t.C1(), t.C2()
	return Mat2{
		M11: r1.Dot(c1), M12: r1.Dot(c2),
		M21: r2.Dot(c1), M22: r2.Dot(c2),
	}
}

// MulVec returns m·v.
func (m Mat2) MulVec(v Vec2) Vec2 {
	return Vec2{m.R1().Dot(v), m.R2().Dot(v)}
}

func (m Mat2) MulScalar(s float64) Mat2 {
	return Mat2{
		M11: m.M11 * s, M12: m.M12 * s,
		M21: m.M21 * s, M22: m.M22 * s,
	}
}

func (m Mat2) Trace() float64 {
	return m.M11 + m.M22
}

func (m Mat2) Determinant() float64 {
	return m.M11*m.M22 - m.M12*m.M21
}

func (m Mat2) Transpose() Mat2 {
	return Mat2{
		M11: m.M11, M12: m.M21,
		M21: m.M12, M22: m.M22,
	}
}

func (m Mat2) Cofactor() Mat2 {
	return Mat2{
		M11: m.M22, M12: -m.M21,
		M21: -m.M12, M22: m.M11,
	}
}

// Adjugate is the transposed cofactor matrix.
func (m Mat2) Adjugate() Mat2 {
	return Mat2{
		M11: m.M22, M12: -m.M12,
		M21: -m.M21, M22: m.M11,
	}
}

// Inverse returns ErrNotInvertible when the determinant is exactly zero.
func (m Mat2) Inverse() (Mat2, error) {
	det := m.Determinant()
	if det == 0 {
		return Mat2{}, ErrNotInvertible
	}
	return m.Adjugate().MulScalar(1 / det), nil
}
