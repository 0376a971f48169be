package vecmath_test

import (
	"math"
	"testing"

	"nethermath/pkg/vecmath"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func assertVec2(t *testing.T, want, got vecmath.Vec2) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, "x of %v", got)
	assert.InDelta(t, want.Y, got.Y, eps, "y of %v", got)
}

func TestVec2From(t *testing.T) {
	tests := []struct {
		name string
		args []any
		want vecmath.Vec2
	}{
		{"single scalar broadcasts", []any{5}, vecmath.Vec2{X: 5, Y: 5}},
		{"two scalars", []any{1.5, -2}, vecmath.Vec2{X: 1.5, Y: -2}},
		{"float32 scalar", []any{float32(0.5)}, vecmath.Vec2{X: 0.5, Y: 0.5}},
		{"slice takes first two", []any{[]float64{3, 4, 5}}, vecmath.Vec2{X: 3, Y: 4}},
		{"int slice", []any{[]int{7, 8}}, vecmath.Vec2{X: 7, Y: 8}},
		{"array", []any{[2]float64{9, 10}}, vecmath.Vec2{X: 9, Y: 10}},
		{"mixed any slice", []any{[]any{1, 2.5}}, vecmath.Vec2{X: 1, Y: 2.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := vecmath.Vec2From(tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVec2FromRejectsBadInput(t *testing.T) {
	bad := [][]any{
		{"bad"},
		{},
		{[]float64{1}},
		{1, 2, 3},
		{1, "2"},
		{[]any{1, "x"}},
		{vecmath.Vec2{X: 1, Y: 2}},
	}
	for _, args := range bad {
		_, err := vecmath.Vec2From(args...)
		assert.ErrorIs(t, err, vecmath.ErrInvalidConstruction, "args %v", args)
	}
}

func TestNewVec2(t *testing.T) {
	assert.Equal(t, vecmath.Vec2{X: 5, Y: 5}, vecmath.NewVec2(5))
	assert.Equal(t, vecmath.Vec2{X: 1, Y: 2}, vecmath.NewVec2(1, 2))
}

func TestIsVec2(t *testing.T) {
	var nilVec *vecmath.Vec2
	assert.True(t, vecmath.IsVec2(vecmath.Vec2{}))
	assert.True(t, vecmath.IsVec2(&vecmath.Vec2{}))
	assert.True(t, vecmath.IsVec2(vecmath.Vec3{}))
	assert.True(t, vecmath.IsVec2(mgl64.Vec2{1, 2}))
	assert.True(t, vecmath.IsVec2(map[string]float64{"x": 1, "y": 2}))
	assert.False(t, vecmath.IsVec2(map[string]float64{"x": 1}))
	assert.False(t, vecmath.IsVec2(nilVec))
	assert.False(t, vecmath.IsVec2("1 2"))
	assert.False(t, vecmath.IsVec2(nil))
}

func TestVec2StringRoundTrip(t *testing.T) {
	vs := []vecmath.Vec2{
		{X: 0, Y: 0},
		{X: 1, Y: -2},
		{X: 0.1, Y: 1.0 / 3},
		{X: 1e21, Y: -1e-12},
		{X: math.MaxFloat64, Y: math.SmallestNonzeroFloat64},
		{X: math.Inf(1), Y: math.Inf(-1)},
	}
	for _, v := range vs {
		got, err := vecmath.ParseVec2(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got, "round trip of %q", v.String())
	}

	assert.Equal(t, "1 -2.5", vecmath.Vec2{X: 1, Y: -2.5}.String())

	nan, err := vecmath.ParseVec2(vecmath.Vec2{X: math.NaN(), Y: 1}.String())
	require.NoError(t, err)
	assert.True(t, nan.IsNaN())
}

func TestParseVec2(t *testing.T) {
	v, err := vecmath.ParseVec2("  3\t4  9 ")
	require.NoError(t, err)
	assert.Equal(t, vecmath.Vec2{X: 3, Y: 4}, v)

	_, err = vecmath.ParseVec2("3")
	assert.ErrorIs(t, err, vecmath.ErrInvalidConstruction)
	_, err = vecmath.ParseVec2("3 four")
	assert.ErrorIs(t, err, vecmath.ErrInvalidConstruction)
}

func TestVec2Predicates(t *testing.T) {
	nan := vecmath.Vec2{X: math.NaN(), Y: 0}
	inf := vecmath.Vec2{X: 1, Y: math.Inf(1)}
	fin := vecmath.Vec2{X: 1, Y: 0}

	assert.True(t, nan.IsNaN())
	assert.False(t, fin.IsNaN())
	assert.True(t, fin.IsFinite())
	assert.False(t, inf.IsFinite())
	assert.True(t, inf.IsInf())
	assert.True(t, nan.IsInf(), "NaN is not finite")
	assert.True(t, fin.Any())
	assert.False(t, fin.All())
	assert.False(t, vecmath.Vec2Zero.Any())
	assert.True(t, vecmath.Vec2One.All())
}

func TestVec2Comparisons(t *testing.T) {
	u := vecmath.Vec2{X: 1, Y: 5}
	v := vecmath.Vec2{X: 1, Y: 3}

	assert.Equal(t, vecmath.Vec2{X: 0, Y: 1}, u.GreaterThan(v))
	assert.Equal(t, vecmath.Vec2{X: 0, Y: 0}, u.LessThan(v))
	assert.Equal(t, vecmath.Vec2{X: 1, Y: 1}, u.GreaterEqual(v))
	assert.Equal(t, vecmath.Vec2{X: 1, Y: 0}, u.LessEqual(v))
	assert.False(t, u.Equal(v))
	assert.True(t, u.Equal(vecmath.Vec2{X: 1, Y: 5}))
}

func TestVec2Componentwise(t *testing.T) {
	v := vecmath.Vec2{X: -1.5, Y: 2.5}

	assert.Equal(t, vecmath.Vec2{X: -1.5, Y: 0}, v.Min(vecmath.Vec2Zero))
	assert.Equal(t, vecmath.Vec2{X: 0, Y: 2.5}, v.Max(vecmath.Vec2Zero))
	assert.Equal(t, vecmath.Vec2{X: -1, Y: 1}, v.Clamp(vecmath.NewVec2(-1), vecmath.NewVec2(1)))
	assert.Equal(t, vecmath.Vec2{X: 0, Y: 1}, v.Saturate())
	assert.Equal(t, vecmath.Vec2{X: -1, Y: 1}, v.Sign())
	assert.Equal(t, vecmath.Vec2{X: -2, Y: 2}, v.Floor())
	assert.Equal(t, vecmath.Vec2{X: -1, Y: 3}, v.Ceil())
	assert.Equal(t, vecmath.Vec2{X: 0.5, Y: 0.5}, v.Frac())
	assert.Equal(t, vecmath.Vec2{X: -2, Y: 2}, v.Round(), "half to even")
	assert.Equal(t, vecmath.Vec2{X: 1.5, Y: -2.5}, v.Neg())
	assert.Equal(t, vecmath.Vec2{X: 1.5, Y: 2.5}, v.Abs())
	assert.Equal(t, vecmath.Vec2{X: -1, Y: 1}, vecmath.Vec2{X: -7, Y: 7}.Mod(vecmath.NewVec2(3)))

	z := vecmath.Vec2{X: 0, Y: math.NaN()}.Sign()
	assert.Equal(t, 0.0, z.X)
	assert.True(t, math.IsNaN(z.Y))
}

func TestVec2Arithmetic(t *testing.T) {
	a := vecmath.Vec2{X: 1, Y: 2}
	b := vecmath.Vec2{X: 3, Y: 4}
	c := vecmath.Vec2{X: 10, Y: 20}

	assert.Equal(t, a, a.Add())
	assert.Equal(t, vecmath.Vec2{X: 14, Y: 26}, a.Add(b, c))
	assert.Equal(t, vecmath.Vec2{X: 6, Y: 14}, c.Sub(a, b))
	assert.Equal(t, vecmath.Vec2{X: 3, Y: 8}, a.Mul(b))
	assert.Equal(t, vecmath.Vec2{X: 2, Y: 4}, a.MulScalar(2))
	assert.Equal(t, vecmath.Vec2{X: 5, Y: 5}, c.Div(vecmath.Vec2{X: 2, Y: 4}))
	assert.Equal(t, vecmath.Vec2{X: 5, Y: 10}, c.DivScalar(2))
}

func TestVec2Transcendental(t *testing.T) {
	v := vecmath.Vec2{X: 4, Y: 0.5}

	assertVec2(t, vecmath.Vec2{X: 2, Y: math.Sqrt(0.5)}, v.Sqrt())
	assertVec2(t, vecmath.Vec2{X: 16, Y: math.Sqrt2}, v.Exp2())
	assertVec2(t, vecmath.Vec2{X: math.Exp(4), Y: math.Exp(0.5)}, v.Exp())
	assertVec2(t, vecmath.Vec2{X: 2, Y: -1}, v.Log2())
	assertVec2(t, vecmath.Vec2{X: math.Log(4), Y: math.Log(0.5)}, v.Log())
	assertVec2(t, vecmath.Vec2{X: math.Log10(4), Y: math.Log10(0.5)}, v.Log10())
	assertVec2(t, vecmath.Vec2{X: 64, Y: 0.125}, v.PowScalar(3))
	assertVec2(t, vecmath.Vec2{X: 2, Y: 0.25}, v.Pow(vecmath.Vec2{X: 0.5, Y: 2}))
	assert.Equal(t, vecmath.Vec2{X: 8, Y: 1}, v.Map(func(f float64) float64 { return f * 2 }))

	angles := vecmath.Vec2{X: 0, Y: math.Pi / 2}
	assertVec2(t, vecmath.Vec2{X: 0, Y: 1}, angles.Sin())
	assertVec2(t, vecmath.Vec2{X: 1, Y: 0}, angles.Cos())
	assertVec2(t, angles, angles.Sin().Asin())
	assertVec2(t, vecmath.Vec2{X: math.Pi / 2, Y: 0}, vecmath.Vec2{X: 0, Y: 1}.Acos())
	assertVec2(t, vecmath.Vec2{X: 0, Y: 1}, vecmath.Vec2{X: 0, Y: math.Pi / 4}.Tan())
	assertVec2(t, vecmath.Vec2{X: 0, Y: math.Pi / 4}, vecmath.Vec2{X: 0, Y: 1}.Atan())
	assertVec2(t, vecmath.Vec2{X: 1, Y: 2}, vecmath.Vec2{X: 1, Y: 2}.Sinh().Asinh())
	assertVec2(t, vecmath.Vec2{X: 1, Y: 2}, vecmath.Vec2{X: 1, Y: 2}.Cosh().Acosh())
	assertVec2(t, vecmath.Vec2{X: 0.25, Y: -0.5}, vecmath.Vec2{X: 0.25, Y: -0.5}.Tanh().Atanh())

	out := vecmath.Vec2{X: 2, Y: -1}.Log()
	assert.True(t, math.IsNaN(out.Y), "log of a negative is NaN, not an error")
	assert.True(t, vecmath.Vec2{X: 2, Y: 0}.Asin().IsNaN())
}

func TestVec2Geometry(t *testing.T) {
	u := vecmath.Vec2{X: 3, Y: 4}
	v := vecmath.Vec2{X: 1, Y: 0}

	assert.Equal(t, 3.0, u.Dot(v))
	assert.Equal(t, -4.0, u.Wedge(v))
	assert.Equal(t, 5.0, u.Len())
	assertVec2(t, vecmath.Vec2{X: 0.6, Y: 0.8}, u.Normalize())
	assert.InDelta(t, math.Sqrt(20), u.Distance(v), eps)
	assert.Equal(t, vecmath.Vec2{X: 3, Y: 0}, u.Project(v))
	assert.Equal(t, vecmath.Vec2{X: 0, Y: 4}, u.Reject(v))
	assert.Equal(t, vecmath.Vec2{X: 1, Y: 1}, vecmath.Vec2{X: 1, Y: -1}.Reflect(vecmath.Vec2Up))

	n := vecmath.Vec2Zero.Normalize()
	assert.True(t, n.IsNaN(), "zero vector normalizes to NaN")
}

func TestVec2RejectIsOrthogonal(t *testing.T) {
	pairs := [][2]vecmath.Vec2{
		{{X: 3, Y: 4}, {X: 1, Y: 2}},
		{{X: -7, Y: 0.5}, {X: 2, Y: -9}},
		{{X: 1e3, Y: 1e-3}, {X: 0.1, Y: 0.1}},
	}
	for _, p := range pairs {
		u, v := p[0], p[1]
		r := u.Reject(v)
		assert.InDelta(t, 0, r.Dot(v), 1e-6)
		assert.InDelta(t, u.Dot(u)-u.Dot(u.Project(v)), u.Dot(r), 1e-6)
	}
}

func TestVec2Refract(t *testing.T) {
	i := vecmath.Vec2{X: 1, Y: -1}.Normalize()

	straight := i.Refract(vecmath.Vec2Up, 1)
	assertVec2(t, i, straight)

	tir := i.Refract(vecmath.Vec2Up, 2)
	assert.True(t, tir.IsNaN(), "total internal reflection yields NaN")
}

func TestVec2Lerp(t *testing.T) {
	u := vecmath.Vec2{X: 0.1, Y: 0.7}
	v := vecmath.Vec2{X: 0.3, Y: -0.2}

	assert.Equal(t, u, u.Lerp(v, 0))
	assert.Equal(t, v, u.Lerp(v, 1))
	assertVec2(t, vecmath.Vec2{X: 0.2, Y: 0.25}, u.Lerp(v, 0.5))
}

func TestVec2Slerp(t *testing.T) {
	u := vecmath.Vec2Right
	v := vecmath.Vec2Up

	assert.Equal(t, u, u.Slerp(v, 0))
	assert.Equal(t, v, u.Slerp(v, 1))
	half := u.Slerp(v, 0.5)
	assertVec2(t, vecmath.Vec2{X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2}, half)
	assert.InDelta(t, 1, half.Len(), eps)

	opposite := u.Slerp(vecmath.Vec2Left, 0.5)
	assert.False(t, opposite.IsFinite(), "anti-parallel slerp divides by zero")
}

func TestVec2Rotate(t *testing.T) {
	assertVec2(t, vecmath.Vec2Up, vecmath.Vec2Right.Rotate(math.Pi/2))
	assertVec2(t, vecmath.Vec2Left, vecmath.Vec2Right.Rotate(math.Pi))
	assertVec2(t, vecmath.Vec2{X: 2, Y: 1}, vecmath.Vec2{X: 2, Y: 1}.Rotate(2*math.Pi))
}

func TestVec2VectorXZ(t *testing.T) {
	xz := vecmath.VectorXZ{X: 4, Z: -2}
	v := vecmath.Vec2FromVectorXZ(xz)

	assert.Equal(t, vecmath.Vec2{X: 4, Y: -2}, v)
	assert.Equal(t, xz, v.ToVectorXZ())
	assert.Equal(t, [2]float64{4, -2}, v.ToArray())
}
