package vecmath

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Conversions to and from mathgl. mathgl matrices are stored column-major,
// so the index of row r, column c is c*N + r.

func (v Vec2) Mgl() mgl64.Vec2 {
	return mgl64.Vec2{v.X, v.Y}
}

func Vec2FromMgl(v mgl64.Vec2) Vec2 {
	return Vec2{v[0], v[1]}
}

func (v Vec3) Mgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func Vec3FromMgl(v mgl64.Vec3) Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// Mgl32 narrows v to the float32 vectors used by renderers.
func (v Vec3) Mgl32() mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

func Vec3FromMgl32(v mgl32.Vec3) Vec3 {
	return Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

func (m Mat2) Mgl() mgl64.Mat2 {
	return mgl64.Mat2{
		m.M11, m.M21,
		m.M12, m.M22,
	}
}

func Mat2FromMgl(m mgl64.Mat2) Mat2 {
	return Mat2{
		M11: m[0], M12: m[2],
		M21: m[1], M22: m[3],
	}
}

func (m Mat3) Mgl() mgl64.Mat3 {
	return mgl64.Mat3{
		m.M11, m.M21, m.M31,
		m.M12, m.M22, m.M32,
		m.M13, m.M23, m.M33,
	}
}

func Mat3FromMgl(m mgl64.Mat3) Mat3 {
	return Mat3{
		M11: m[0], M12: m[3], M13: m[6],
		M21: m[1], M22: m[4], M23: m[7],
		M31: m[2], M32: m[5], M33: m[8],
	}
}
