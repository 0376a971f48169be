package vecmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a 3-component vector. In world space +Y is up, -Z is north and
// +X is east.
type Vec3 struct {
	X, Y, Z float64
}

// RGB is a color triple with components nominally in [0, 1].
type RGB struct {
	Red, Green, Blue float64
}

var (
	Vec3Zero  = Vec3{0, 0, 0}
	Vec3One   = Vec3{1, 1, 1}
	Vec3Up    = Vec3{0, 1, 0}
	Vec3Down  = Vec3{0, -1, 0}
	Vec3North = Vec3{0, 0, -1}
	Vec3South = Vec3{0, 0, 1}
	Vec3East  = Vec3{1, 0, 0}
	Vec3West  = Vec3{-1, 0, 0}

	// Standard basis.
	Vec3X = Vec3East
	Vec3Y = Vec3Up
	Vec3Z = Vec3South
)

// NewVec3 builds a vector from scalars. Missing trailing components copy x,
// so NewVec3(5) is {5, 5, 5} and NewVec3(1, 2) is {1, 2, 1}.
func NewVec3(x float64, rest ...float64) Vec3 {
	v := Vec3{x, x, x}
	if len(rest) > 0 {
		v.Y = rest[0]
	}
	if len(rest) > 1 {
		v.Z = rest[1]
	}
	return v
}

// Vec3FromSlice takes the first three entries of s.
func Vec3FromSlice(s []float64) (Vec3, error) {
	if len(s) < 3 {
		return Vec3{}, errorf("vec3 needs at least 3 values, got %d", len(s))
	}
	return Vec3{s[0], s[1], s[2]}, nil
}

// Vec3From accepts either a single numeric sequence of length >= 3 or one
// to three numeric scalars. Any other shape is rejected with
// ErrInvalidConstruction.
func Vec3From(args ...any) (Vec3, error) {
	if len(args) == 1 {
		if s, ok := toFloats(args[0]); ok {
			return Vec3FromSlice(s)
		}
	}
	if len(args) >= 1 && len(args) <= 3 {
		if fs, ok := scalars(args); ok {
			return NewVec3(fs[0], fs[1:]...), nil
		}
	}
	return Vec3{}, errorf("cannot build vec3 from %v", args)
}

// IsVec3 reports whether a exposes x, y and z components.
func IsVec3(a any) bool {
	switch v := a.(type) {
	case Vec3:
		return true
	case *Vec3:
		return v != nil
	case mgl64.Vec3, mgl64.Vec4:
		return true
	case map[string]float64:
		return hasKeys(v, "x", "y", "z")
	}
	return false
}

// Vec3FromVectorXZ lifts a horizontal pair onto the y = 0 plane.
func Vec3FromVectorXZ(v VectorXZ) Vec3 {
	return Vec3{v.X, 0, v.Z}
}

// ToVectorXZ drops the y component.
func (v Vec3) ToVectorXZ() VectorXZ {
	return VectorXZ{X: v.X, Z: v.Z}
}

func Vec3FromRGB(c RGB) Vec3 {
	return Vec3{c.Red, c.Green, c.Blue}
}

func (v Vec3) ToRGB() RGB {
	return RGB{Red: v.X, Green: v.Y, Blue: v.Z}
}

// ToRotation converts a unit direction into a rotation pair in degrees:
// X is the pitch and Y the yaw, both negated to match the entity rotation
// convention where looking up is a negative pitch.
func (v Vec3) ToRotation() Vec2 {
	return Vec2{
		X: -degrees(math.Asin(v.Y)),
		Y: -degrees(math.Atan2(v.X, v.Z)),
	}
}

func (v Vec3) ToArray() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// String renders the components separated by a single space. ParseVec3
// reverses it exactly.
func (v Vec3) String() string {
	return formatComponents(v.X, v.Y, v.Z)
}

// ParseVec3 reads three whitespace separated numbers. Tokens past the third
// are ignored.
func ParseVec3(s string) (Vec3, error) {
	cs, err := parseComponents(s, 3)
	if err != nil {
		return Vec3{}, err
	}
	return Vec3{cs[0], cs[1], cs[2]}, nil
}

func (v Vec3) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

func (v Vec3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

func (v Vec3) IsInf() bool {
	return !v.IsFinite()
}

// Any reports whether at least one component is nonzero.
func (v Vec3) Any() bool {
	return v.X != 0 || v.Y != 0 || v.Z != 0
}

// All reports whether every component is nonzero.
func (v Vec3) All() bool {
	return v.X != 0 && v.Y != 0 && v.Z != 0
}

// GreaterThan compares per component, yielding 1 where v > u and 0 elsewhere.
func (v Vec3) GreaterThan(u Vec3) Vec3 {
	return Vec3{bool2f(v.X > u.X), bool2f(v.Y > u.Y), bool2f(v.Z > u.Z)}
}

func (v Vec3) LessThan(u Vec3) Vec3 {
	return Vec3{bool2f(v.X < u.X), bool2f(v.Y < u.Y), bool2f(v.Z < u.Z)}
}

func (v Vec3) GreaterEqual(u Vec3) Vec3 {
	return Vec3{bool2f(v.X >= u.X), bool2f(v.Y >= u.Y), bool2f(v.Z >= u.Z)}
}

func (v Vec3) LessEqual(u Vec3) Vec3 {
	return Vec3{bool2f(v.X <= u.X), bool2f(v.Y <= u.Y), bool2f(v.Z <= u.Z)}
}

// Equal reports exact equality of every component.
func (v Vec3) Equal(u Vec3) bool {
	return v.X == u.X && v.Y == u.Y && v.Z == u.Z
}

// Map applies f to each component.
func (v Vec3) Map(f func(float64) float64) Vec3 {
	return Vec3{f(v.X), f(v.Y), f(v.Z)}
}

func (v Vec3) zip(u Vec3, f func(a, b float64) float64) Vec3 {
	return Vec3{f(v.X, u.X), f(v.Y, u.Y), f(v.Z, u.Z)}
}

func (v Vec3) Min(u Vec3) Vec3 { return v.zip(u, math.Min) }
func (v Vec3) Max(u Vec3) Vec3 { return v.zip(u, math.Max) }

// Clamp limits each component to [lo, hi] of the matching bound components.
func (v Vec3) Clamp(lo, hi Vec3) Vec3 {
	return Vec3{clamp(v.X, lo.X, hi.X), clamp(v.Y, lo.Y, hi.Y), clamp(v.Z, lo.Z, hi.Z)}
}

// Saturate clamps each component to [0, 1].
func (v Vec3) Saturate() Vec3 {
	return v.Clamp(Vec3Zero, Vec3One)
}

func (v Vec3) Sign() Vec3  { return v.Map(sign) }
func (v Vec3) Floor() Vec3 { return v.Map(math.Floor) }
func (v Vec3) Ceil() Vec3  { return v.Map(math.Ceil) }
func (v Vec3) Frac() Vec3  { return v.Map(frac) }

// Round rounds half to even.
func (v Vec3) Round() Vec3 { return v.Map(math.RoundToEven) }

// Mod is the floating-point remainder; its sign follows v.
func (v Vec3) Mod(u Vec3) Vec3 { return v.zip(u, math.Mod) }

func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }
func (v Vec3) Abs() Vec3 { return v.Map(math.Abs) }

// Add returns v plus every vector in vs, folded left to right.
func (v Vec3) Add(vs ...Vec3) Vec3 {
	for _, u := range vs {
		v = Vec3{v.X + u.X, v.Y + u.Y, v.Z + u.Z}
	}
	return v
}

// Sub returns v minus every vector in vs, folded left to right.
func (v Vec3) Sub(vs ...Vec3) Vec3 {
	for _, u := range vs {
		v = Vec3{v.X - u.X, v.Y - u.Y, v.Z - u.Z}
	}
	return v
}

// Mul multiplies component-wise.
func (v Vec3) Mul(u Vec3) Vec3 {
	return Vec3{v.X * u.X, v.Y * u.Y, v.Z * u.Z}
}

func (v Vec3) MulScalar(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Div divides component-wise.
func (v Vec3) Div(u Vec3) Vec3 {
	return Vec3{v.X / u.X, v.Y / u.Y, v.Z / u.Z}
}

func (v Vec3) DivScalar(s float64) Vec3 {
	return Vec3{v.X / s, v.Y / s, v.Z / s}
}

func (v Vec3) Sqrt() Vec3  { return v.Map(math.Sqrt) }
func (v Vec3) Exp() Vec3   { return v.Map(math.Exp) }
func (v Vec3) Exp2() Vec3  { return v.Map(exp2) }
func (v Vec3) Log() Vec3   { return v.Map(math.Log) }
func (v Vec3) Log2() Vec3  { return v.Map(math.Log2) }
func (v Vec3) Log10() Vec3 { return v.Map(math.Log10) }

// Pow raises each component to the matching component of p.
func (v Vec3) Pow(p Vec3) Vec3 { return v.zip(p, math.Pow) }

func (v Vec3) PowScalar(p float64) Vec3 {
	return Vec3{math.Pow(v.X, p), math.Pow(v.Y, p), math.Pow(v.Z, p)}
}

func (v Vec3) Sin() Vec3   { return v.Map(math.Sin) }
func (v Vec3) Asin() Vec3  { return v.Map(math.Asin) }
func (v Vec3) Sinh() Vec3  { return v.Map(math.Sinh) }
func (v Vec3) Asinh() Vec3 { return v.Map(math.Asinh) }
func (v Vec3) Cos() Vec3   { return v.Map(math.Cos) }
func (v Vec3) Acos() Vec3  { return v.Map(math.Acos) }
func (v Vec3) Cosh() Vec3  { return v.Map(math.Cosh) }
func (v Vec3) Acosh() Vec3 { return v.Map(math.Acosh) }
func (v Vec3) Tan() Vec3   { return v.Map(math.Tan) }
func (v Vec3) Atan() Vec3  { return v.Map(math.Atan) }
func (v Vec3) Tanh() Vec3  { return v.Map(math.Tanh) }
func (v Vec3) Atanh() Vec3 { return v.Map(math.Atanh) }

// Above offsets v upward by s blocks, 1 when s is omitted. The other
// directional helpers behave the same way along their axis.
func (v Vec3) Above(s ...float64) Vec3 { return v.Add(Vec3Up.MulScalar(scale(s))) }
func (v Vec3) Below(s ...float64) Vec3 { return v.Add(Vec3Down.MulScalar(scale(s))) }
func (v Vec3) North(s ...float64) Vec3 { return v.Add(Vec3North.MulScalar(scale(s))) }
func (v Vec3) South(s ...float64) Vec3 { return v.Add(Vec3South.MulScalar(scale(s))) }
func (v Vec3) East(s ...float64) Vec3  { return v.Add(Vec3East.MulScalar(scale(s))) }
func (v Vec3) West(s ...float64) Vec3  { return v.Add(Vec3West.MulScalar(scale(s))) }

// Offset moves v by s blocks toward d.
func (v Vec3) Offset(d Direction, s float64) Vec3 {
	return v.Add(d.Vec3().MulScalar(s))
}

func scale(s []float64) float64 {
	if len(s) == 0 {
		return 1
	}
	return s[0]
}

func (v Vec3) Dot(u Vec3) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

func (v Vec3) Cross(u Vec3) Vec3 {
	return Vec3{
		X: v.Y*u.Z - v.Z*u.Y,
		Y: v.Z*u.X - v.X*u.Z,
		Z: v.X*u.Y - v.Y*u.X,
	}
}

func (v Vec3) Len() float64 {
	return math.Hypot(math.Hypot(v.X, v.Y), v.Z)
}

// Normalize divides by the length. The zero vector yields NaN components.
func (v Vec3) Normalize() Vec3 {
	return v.DivScalar(v.Len())
}

func (v Vec3) Distance(u Vec3) float64 {
	return v.Sub(u).Len()
}

// Project returns the projection of v onto u.
func (v Vec3) Project(u Vec3) Vec3 {
	return u.MulScalar(v.Dot(u) / u.Dot(u))
}

// Reject returns the part of v orthogonal to u.
func (v Vec3) Reject(u Vec3) Vec3 {
	return v.Sub(v.Project(u))
}

// Reflect mirrors the incident vector v about the normal n.
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Sub(n.MulScalar(2 * n.Dot(v)))
}

// Refract bends the incident vector v through a surface with normal n and
// refractive index ratio eta. Total internal reflection yields NaN.
func (v Vec3) Refract(n Vec3, eta float64) Vec3 {
	cosi := -v.Dot(n)
	sin2t := eta * eta * (1 - cosi*cosi)
	cost := math.Sqrt(1 - sin2t)
	return v.MulScalar(eta).Add(n.MulScalar(eta*cosi - cost))
}

// Lerp interpolates linearly; t == 0 and t == 1 return the endpoints exactly.
func (v Vec3) Lerp(u Vec3, t float64) Vec3 {
	switch t {
	case 0:
		return v
	case 1:
		return u
	}
	return Vec3{
		X: v.X + t*(u.X-v.X),
		Y: v.Y + t*(u.Y-v.Y),
		Z: v.Z + t*(u.Z-v.Z),
	}
}

// Slerp interpolates along the arc between unit vectors v and u.
// Opposite vectors divide by zero.
func (v Vec3) Slerp(u Vec3, t float64) Vec3 {
	switch t {
	case 0:
		return v
	case 1:
		return u
	}
	cost := v.Dot(u)
	theta := math.Acos(cost)
	sint := math.Sqrt(1 - cost*cost)
	tv := math.Sin((1-t)*theta) / sint
	tu := math.Sin(t*theta) / sint
	return v.MulScalar(tv).Add(u.MulScalar(tu))
}

// Rotate turns v about the unit axis k by angle radians (Rodrigues):
// the part parallel to k is kept, the perpendicular part is rotated.
func (v Vec3) Rotate(k Vec3, angle float64) Vec3 {
	cost, sint := math.Cos(angle), math.Sin(angle)
	par := k.MulScalar(v.Dot(k))
	per := v.Sub(par)
	kxv := k.Cross(v)
	return par.Add(per.MulScalar(cost).Add(kxv.MulScalar(sint)))
}
