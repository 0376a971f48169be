// Package randvec samples points and directions from common geometric
// distributions. Every sampler draws from the global math/rand source and
// keeps no state between calls; the y axis is the zenith for all 3D samplers.
package randvec

import (
	"math"
	"math/rand"

	"nethermath/pkg/vecmath"
)

// uniform returns a value in [0, 1). Tests replace it to pin samples.
var uniform = rand.Float64

// Random2 packs two independent uniform samples.
func Random2() vecmath.Vec2 {
	return vecmath.Vec2{X: uniform(), Y: uniform()}
}

// Random3 packs three independent uniform samples.
func Random3() vecmath.Vec3 {
	return vecmath.Vec3{X: uniform(), Y: uniform(), Z: uniform()}
}

// Circle returns a uniform point on the unit circle.
func Circle() vecmath.Vec2 {
	phi := uniform() * math.Pi * 2
	return vecmath.Vec2{X: math.Cos(phi), Y: math.Sin(phi)}
}

// Disk returns a point uniformly distributed over the area of the unit disk.
func Disk() vecmath.Vec2 {
	r := Random2()
	phi := r.X * math.Pi * 2
	radius := math.Sqrt(r.Y)
	return vecmath.Vec2{X: radius * math.Cos(phi), Y: radius * math.Sin(phi)}
}

// Sphere returns a uniform point on the unit sphere.
func Sphere() vecmath.Vec3 {
	r := Random2()
	sint := 2 * math.Sqrt(r.Y*(1-r.Y))
	return ring(r.X, sint, 1-2*r.Y)
}

// Hemisphere returns a uniform point on the upper unit hemisphere.
func Hemisphere() vecmath.Vec3 {
	r := Random2()
	sint := math.Sqrt(r.Y * (2 - r.Y))
	return ring(r.X, sint, 1-r.Y)
}

// CosHemisphere returns a point on the upper unit hemisphere with density
// proportional to the cosine of the angle from the zenith.
func CosHemisphere() vecmath.Vec3 {
	r := Random2()
	return ring(r.X, math.Sqrt(r.Y), math.Sqrt(1-r.Y))
}

// Cap returns a uniform point on the spherical cap within maxAngle radians
// of the zenith.
func Cap(maxAngle float64) vecmath.Vec3 {
	r := Random2()
	u := r.Y * (1 - math.Cos(maxAngle))
	sint := math.Sqrt(u * (2 - u))
	return ring(r.X, sint, 1-u)
}

// ring places a point at height y on the circle of radius sint, at the
// azimuth given by the uniform sample s.
func ring(s, sint, y float64) vecmath.Vec3 {
	phi := s * math.Pi * 2
	return vecmath.Vec3{
		X: math.Cos(phi) * sint,
		Y: y,
		Z: math.Sin(phi) * sint,
	}
}
