package plot

import (
	"math"

	"nethermath/pkg/vecmath"
)

// Summary describes a batch of 3D samples.
type Summary struct {
	Count   int
	MeanLen float64
	MinY    float64
	MaxY    float64
}

func Summarize(pts []vecmath.Vec3) Summary {
	if len(pts) == 0 {
		return Summary{}
	}
	s := Summary{Count: len(pts), MinY: math.Inf(1), MaxY: math.Inf(-1)}
	var total float64
	for _, p := range pts {
		total += p.Len()
		s.MinY = math.Min(s.MinY, p.Y)
		s.MaxY = math.Max(s.MaxY, p.Y)
	}
	s.MeanLen = total / float64(len(pts))
	return s
}

// Lift embeds 2D samples in the xy plane so they can be summarized.
func Lift(pts []vecmath.Vec2) []vecmath.Vec3 {
	out := make([]vecmath.Vec3, len(pts))
	for i, p := range pts {
		out[i] = vecmath.Vec3{X: p.X, Y: p.Y}
	}
	return out
}
