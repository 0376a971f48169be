package physics

import (
	"math"

	"nethermath/internal/profiling"
	"nethermath/pkg/vecmath"
)

// StepSize is the distance the ray advances per sample.
const StepSize = 0.02

// RaycastResult stores the result of a raycast operation
type RaycastResult struct {
	HitPosition      [3]int
	AdjacentPosition [3]int
	Distance         float64
	Hit              bool
	// Face is the side of the hit block the ray entered through.
	Face vecmath.Direction
}

// Raycast marches from start along direction in fixed steps and stops at the
// first solid cell at least minDist away. direction should be normalized.
func Raycast(start, direction vecmath.Vec3, minDist, maxDist float64, q BlockQuery) RaycastResult {
	defer profiling.Track("physics.Raycast")()
	steps := int(maxDist / StepSize)

	lastEmpty := Cell(start)
	result := RaycastResult{Hit: false}

	for i := 0; i <= steps; i++ {
		dist := float64(i) * StepSize
		cell := Cell(start.Add(direction.MulScalar(dist)))

		if dist >= minDist && q.IsSolid(cell[0], cell[1], cell[2]) {
			result.HitPosition = cell
			result.Distance = dist
			result.Hit = true
			result.Face, result.AdjacentPosition = entryFace(cell, lastEmpty, start, direction)
			return result
		}

		lastEmpty = cell
	}

	return result
}

// entryFace picks the face of hit the ray entered through and the empty cell
// across it. When the ray started inside hit, the face opposing the ray is
// used instead. A step that crossed several boundaries at once is resolved
// to the boundary crossed last.
func entryFace(hit, prev [3]int, start, direction vecmath.Vec3) (vecmath.Direction, [3]int) {
	if hit == prev {
		face := direction.Neg().ToDirection()
		return face, Neighbor(hit, face)
	}
	step := CellOrigin(prev).Sub(CellOrigin(hit))
	if axesChanged(hit, prev) == 1 {
		return step.ToDirection(), prev
	}
	face := lastCrossed(hit, step, start, direction)
	return face, Neighbor(hit, face)
}

func axesChanged(a, b [3]int) int {
	n := 0
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}

// lastCrossed returns the face of hit whose plane the ray reaches last among
// the axes in step. Ties go to x, then y, then z.
func lastCrossed(hit [3]int, step, start, direction vecmath.Vec3) vecmath.Direction {
	s, o, d := step.ToArray(), start.ToArray(), direction.ToArray()
	best, bestT := -1, math.Inf(-1)
	for a := range s {
		if s[a] == 0 {
			continue
		}
		plane := float64(hit[a])
		if s[a] > 0 {
			plane++
		}
		if t := (plane - o[a]) / d[a]; t > bestT {
			best, bestT = a, t
		}
	}
	if best < 0 {
		return step.ToDirection()
	}
	var axis [3]float64
	axis[best] = s[best]
	return vecmath.Vec3{X: axis[0], Y: axis[1], Z: axis[2]}.ToDirection()
}
