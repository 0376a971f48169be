package vecmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is a 2-component vector.
type Vec2 struct {
	X, Y float64
}

// VectorXZ is a horizontal-plane pair used for world positions that ignore height.
type VectorXZ struct {
	X, Z float64
}

var (
	Vec2Zero  = Vec2{0, 0}
	Vec2One   = Vec2{1, 1}
	Vec2Up    = Vec2{0, 1}
	Vec2Down  = Vec2{0, -1}
	Vec2Left  = Vec2{-1, 0}
	Vec2Right = Vec2{1, 0}

	// Standard basis.
	Vec2X = Vec2Right
	Vec2Y = Vec2Up
)

// NewVec2 builds a vector from scalars. A missing y copies x, so NewVec2(5)
// is {5, 5}.
func NewVec2(x float64, rest ...float64) Vec2 {
	v := Vec2{x, x}
	if len(rest) > 0 {
		v.Y = rest[0]
	}
	return v
}

// Vec2FromSlice takes the first two entries of s.
func Vec2FromSlice(s []float64) (Vec2, error) {
	if len(s) < 2 {
		return Vec2{}, errorf("vec2 needs at least 2 values, got %d", len(s))
	}
	return Vec2{s[0], s[1]}, nil
}

// Vec2From accepts either a single numeric sequence of length >= 2 or one
// or two numeric scalars. Any other shape is rejected with
// ErrInvalidConstruction.
func Vec2From(args ...any) (Vec2, error) {
	if len(args) == 1 {
		if s, ok := toFloats(args[0]); ok {
			return Vec2FromSlice(s)
		}
	}
	if len(args) >= 1 && len(args) <= 2 {
		if fs, ok := scalars(args); ok {
			return NewVec2(fs[0], fs[1:]...), nil
		}
	}
	return Vec2{}, errorf("cannot build vec2 from %v", args)
}

// IsVec2 reports whether a exposes x and y components.
func IsVec2(a any) bool {
	switch v := a.(type) {
	case Vec2, Vec3:
		return true
	case *Vec2:
		return v != nil
	case *Vec3:
		return v != nil
	case mgl64.Vec2, mgl64.Vec3, mgl64.Vec4:
		return true
	case map[string]float64:
		return hasKeys(v, "x", "y")
	}
	return false
}

// Vec2FromVectorXZ maps the horizontal pair (x, z) onto (x, y).
func Vec2FromVectorXZ(v VectorXZ) Vec2 {
	return Vec2{v.X, v.Z}
}

// ToVectorXZ maps (x, y) onto the horizontal pair (x, z).
func (v Vec2) ToVectorXZ() VectorXZ {
	return VectorXZ{X: v.X, Z: v.Y}
}

func (v Vec2) ToArray() [2]float64 {
	return [2]float64{v.X, v.Y}
}

// String renders the components separated by a single space. ParseVec2
// reverses it exactly.
func (v Vec2) String() string {
	return formatComponents(v.X, v.Y)
}

// ParseVec2 reads two whitespace separated numbers. Tokens past the second
// are ignored.
func ParseVec2(s string) (Vec2, error) {
	cs, err := parseComponents(s, 2)
	if err != nil {
		return Vec2{}, err
	}
	return Vec2{cs[0], cs[1]}, nil
}

func (v Vec2) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}

func (v Vec2) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

func (v Vec2) IsInf() bool {
	return !v.IsFinite()
}

// Any reports whether at least one component is nonzero.
func (v Vec2) Any() bool {
	return v.X != 0 || v.Y != 0
}

// All reports whether every component is nonzero.
func (v Vec2) All() bool {
	return v.X != 0 && v.Y != 0
}

// GreaterThan compares per component, yielding 1 where v > u and 0 elsewhere.
func (v Vec2) GreaterThan(u Vec2) Vec2 {
	return Vec2{bool2f(v.X > u.X), bool2f(v.Y > u.Y)}
}

func (v Vec2) LessThan(u Vec2) Vec2 {
	return Vec2{bool2f(v.X < u.X), bool2f(v.Y < u.Y)}
}

func (v Vec2) GreaterEqual(u Vec2) Vec2 {
	return Vec2{bool2f(v.X >= u.X), bool2f(v.Y >= u.Y)}
}

func (v Vec2) LessEqual(u Vec2) Vec2 {
	return Vec2{bool2f(v.X <= u.X), bool2f(v.Y <= u.Y)}
}

// Equal reports exact equality of every component.
func (v Vec2) Equal(u Vec2) bool {
	return v.X == u.X && v.Y == u.Y
}

// Map applies f to each component.
func (v Vec2) Map(f func(float64) float64) Vec2 {
	return Vec2{f(v.X), f(v.Y)}
}

func (v Vec2) zip(u Vec2, f func(a, b float64) float64) Vec2 {
	return Vec2{f(v.X, u.X), f(v.Y, u.Y)}
}

func (v Vec2) Min(u Vec2) Vec2 { return v.zip(u, math.Min) }
func (v Vec2) Max(u Vec2) Vec2 { return v.zip(u, math.Max) }

// Clamp limits each component to [lo, hi] of the matching bound components.
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return Vec2{clamp(v.X, lo.X, hi.X), clamp(v.Y, lo.Y, hi.Y)}
}

// Saturate clamps each component to [0, 1].
func (v Vec2) Saturate() Vec2 {
	return v.Clamp(Vec2Zero, Vec2One)
}

func (v Vec2) Sign() Vec2  { return v.Map(sign) }
func (v Vec2) Floor() Vec2 { return v.Map(math.Floor) }
func (v Vec2) Ceil() Vec2  { return v.Map(math.Ceil) }
func (v Vec2) Frac() Vec2  { return v.Map(frac) }

// Round rounds half to even.
func (v Vec2) Round() Vec2 { return v.Map(math.RoundToEven) }

// Mod is the floating-point remainder; its sign follows v.
func (v Vec2) Mod(u Vec2) Vec2 { return v.zip(u, math.Mod) }

func (v Vec2) Neg() Vec2 { return Vec2{-v.X, -v.Y} }
func (v Vec2) Abs() Vec2 { return v.Map(math.Abs) }

// Add returns v plus every vector in vs, folded left to right.
func (v Vec2) Add(vs ...Vec2) Vec2 {
	for _, u := range vs {
		v = Vec2{v.X + u.X, v.Y + u.Y}
	}
	return v
}

// Sub returns v minus every vector in vs, folded left to right.
func (v Vec2) Sub(vs ...Vec2) Vec2 {
	for _, u := range vs {
		v = Vec2{v.X - u.X, v.Y - u.Y}
	}
	return v
}

// Mul multiplies component-wise.
func (v Vec2) Mul(u Vec2) Vec2 {
	return Vec2{v.X * u.X, v.Y * u.Y}
}

func (v Vec2) MulScalar(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Div divides component-wise.
func (v Vec2) Div(u Vec2) Vec2 {
	return Vec2{v.X / u.X, v.Y / u.Y}
}

func (v Vec2) DivScalar(s float64) Vec2 {
	return Vec2{v.X / s, v.Y / s}
}

func (v Vec2) Sqrt() Vec2  { return v.Map(math.Sqrt) }
func (v Vec2) Exp() Vec2   { return v.Map(math.Exp) }
func (v Vec2) Exp2() Vec2  { return v.Map(exp2) }
func (v Vec2) Log() Vec2   { return v.Map(math.Log) }
func (v Vec2) Log2() Vec2  { return v.Map(math.Log2) }
func (v Vec2) Log10() Vec2 { return v.Map(math.Log10) }

// Pow raises each component to the matching component of p.
func (v Vec2) Pow(p Vec2) Vec2 { return v.zip(p, math.Pow) }

func (v Vec2) PowScalar(p float64) Vec2 {
	return Vec2{math.Pow(v.X, p), math.Pow(v.Y, p)}
}

func (v Vec2) Sin() Vec2   { return v.Map(math.Sin) }
func (v Vec2) Asin() Vec2  { return v.Map(math.Asin) }
func (v Vec2) Sinh() Vec2  { return v.Map(math.Sinh) }
func (v Vec2) Asinh() Vec2 { return v.Map(math.Asinh) }
func (v Vec2) Cos() Vec2   { return v.Map(math.Cos) }
func (v Vec2) Acos() Vec2  { return v.Map(math.Acos) }
func (v Vec2) Cosh() Vec2  { return v.Map(math.Cosh) }
func (v Vec2) Acosh() Vec2 { return v.Map(math.Acosh) }
func (v Vec2) Tan() Vec2   { return v.Map(math.Tan) }
func (v Vec2) Atan() Vec2  { return v.Map(math.Atan) }
func (v Vec2) Tanh() Vec2  { return v.Map(math.Tanh) }
func (v Vec2) Atanh() Vec2 { return v.Map(math.Atanh) }

func (v Vec2) Dot(u Vec2) float64 {
	return v.X*u.X + v.Y*u.Y
}

// Wedge is the 2D cross product, the signed area spanned by v and u.
func (v Vec2) Wedge(u Vec2) float64 {
	return v.X*u.Y - v.Y*u.X
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize divides by the length. The zero vector yields NaN components.
func (v Vec2) Normalize() Vec2 {
	return v.DivScalar(v.Len())
}

func (v Vec2) Distance(u Vec2) float64 {
	return v.Sub(u).Len()
}

// Project returns the projection of v onto u.
func (v Vec2) Project(u Vec2) Vec2 {
	return u.MulScalar(v.Dot(u) / u.Dot(u))
}

// Reject returns the part of v orthogonal to u.
func (v Vec2) Reject(u Vec2) Vec2 {
	return v.Sub(v.Project(u))
}

// Reflect mirrors the incident vector v about the normal n.
func (v Vec2) Reflect(n Vec2) Vec2 {
	return v.Sub(n.MulScalar(2 * n.Dot(v)))
}

// Refract bends the incident vector v through a surface with normal n and
// refractive index ratio eta. Total internal reflection yields NaN.
func (v Vec2) Refract(n Vec2, eta float64) Vec2 {
	cosi := -v.Dot(n)
	sin2t := eta * eta * (1 - cosi*cosi)
	cost := math.Sqrt(1 - sin2t)
	return v.MulScalar(eta).Add(n.MulScalar(eta*cosi - cost))
}

// Lerp interpolates linearly; t == 0 and t == 1 return the endpoints exactly.
func (v Vec2) Lerp(u Vec2, t float64) Vec2 {
	switch t {
	case 0:
		return v
	case 1:
		return u
	}
	return Vec2{v.X + t*(u.X-v.X), v.Y + t*(u.Y-v.Y)}
}

// Slerp interpolates along the arc between unit vectors v and u.
// Opposite vectors divide by zero.
func (v Vec2) Slerp(u Vec2, t float64) Vec2 {
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

// Rotate turns v counterclockwise by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	cost, sint := math.Cos(angle), math.Sin(angle)
	rot := Mat2{
		M11: cost, M12: -sint,
		M21: sint, M22: cost,
	}
	return rot.MulVec(v)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
