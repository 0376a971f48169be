package physics_test

import (
	"testing"

	"nethermath/pkg/physics"
	"nethermath/pkg/vecmath"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaycast(t *testing.T) {
	w := physics.NewBlockSet([3]int{5, 0, 0})
	start := vecmath.Vec3{X: 0.5, Y: 0.5, Z: 0.5}

	// Ray enters the west face of (5,0,0) once x reaches 5.
	result := physics.Raycast(start, vecmath.Vec3East, 0.1, 10, w)
	require.True(t, result.Hit)
	assert.Equal(t, [3]int{5, 0, 0}, result.HitPosition)
	assert.Equal(t, [3]int{4, 0, 0}, result.AdjacentPosition)
	assert.Equal(t, vecmath.West, result.Face)
	assert.InDelta(t, 4.5, result.Distance, physics.StepSize+1e-9)

	short := physics.Raycast(start, vecmath.Vec3East, 0.1, 4, w)
	assert.False(t, short.Hit, "block is beyond maxDist")

	wrong := physics.Raycast(start, vecmath.Vec3Up, 0.1, 10, w)
	assert.False(t, wrong.Hit)

	w.Set(2, 2, 2)
	diag := physics.Raycast(start, vecmath.Vec3{X: 1, Y: 1, Z: 1}.Normalize(), 0.1, 10, w)
	require.True(t, diag.Hit)
	assert.Equal(t, [3]int{2, 2, 2}, diag.HitPosition)
	assert.True(t, diag.Face.Valid())

	w.Clear(2, 2, 2)
	again := physics.Raycast(start, vecmath.Vec3{X: 1, Y: 1, Z: 1}.Normalize(), 0.1, 10, w)
	assert.False(t, again.Hit)
}

func TestRaycastFaces(t *testing.T) {
	cases := []struct {
		name     string
		block    [3]int
		start    vecmath.Vec3
		dir      vecmath.Vec3
		face     vecmath.Direction
		adjacent [3]int
	}{
		{"looking down", [3]int{0, 1, 0}, vecmath.Vec3{X: 0.5, Y: 3.5, Z: 0.5}, vecmath.Vec3Down, vecmath.Up, [3]int{0, 2, 0}},
		{"looking up", [3]int{0, 4, 0}, vecmath.Vec3{X: 0.5, Y: 1.5, Z: 0.5}, vecmath.Vec3Up, vecmath.Down, [3]int{0, 3, 0}},
		{"looking north", [3]int{0, 0, -3}, vecmath.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, vecmath.Vec3North, vecmath.South, [3]int{0, 0, -2}},
		{"looking south", [3]int{0, 0, 2}, vecmath.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, vecmath.Vec3South, vecmath.North, [3]int{0, 0, 1}},
		{"looking west", [3]int{-2, 0, 0}, vecmath.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, vecmath.Vec3West, vecmath.East, [3]int{-1, 0, 0}},
		// Both boundaries are crossed in the same step; x and y tie, so x wins.
		{"diagonal through an edge", [3]int{1, 1, 0}, vecmath.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, vecmath.Vec3{X: 1, Y: 1}.Normalize(), vecmath.West, [3]int{0, 1, 0}},
		// x is crossed just before y within one step, so the ray enters from below.
		{"diagonal entering from below", [3]int{1, 1, 0}, vecmath.Vec3{X: 0.505, Y: 0.5, Z: 0.5}, vecmath.Vec3{X: 1, Y: 1}.Normalize(), vecmath.Down, [3]int{1, 0, 0}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := physics.Raycast(c.start, c.dir, 0.1, 5, physics.NewBlockSet(c.block))
			require.True(t, r.Hit)
			assert.Equal(t, c.block, r.HitPosition)
			assert.Equal(t, c.face, r.Face)
			assert.Equal(t, c.adjacent, r.AdjacentPosition)
			assert.Equal(t, c.adjacent, physics.Neighbor(r.HitPosition, r.Face))
		})
	}
}

func TestRaycastStartingInsideBlock(t *testing.T) {
	w := physics.NewBlockSet([3]int{0, 0, 0})
	r := physics.Raycast(vecmath.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, vecmath.Vec3East, 0, 3, w)
	require.True(t, r.Hit)
	assert.Equal(t, 0.0, r.Distance)
	assert.Equal(t, [3]int{0, 0, 0}, r.HitPosition)
	assert.Equal(t, vecmath.West, r.Face)
	assert.Equal(t, [3]int{-1, 0, 0}, r.AdjacentPosition)
}

func TestRaycastSkipsBlocksBeforeMinDist(t *testing.T) {
	w := physics.NewBlockSet([3]int{1, 0, 0}, [3]int{3, 0, 0})
	r := physics.Raycast(vecmath.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, vecmath.Vec3East, 2, 5, w)
	require.True(t, r.Hit)
	assert.Equal(t, [3]int{3, 0, 0}, r.HitPosition)
	assert.Equal(t, [3]int{2, 0, 0}, r.AdjacentPosition)
}

func TestCellUsesFloor(t *testing.T) {
	assert.Equal(t, [3]int{0, 0, 0}, physics.Cell(vecmath.Vec3{X: 0.99, Y: 0, Z: 0.5}))
	assert.Equal(t, [3]int{-1, -1, -1}, physics.Cell(vecmath.Vec3{X: -0.01, Y: -1, Z: -0.5}))
	assert.Equal(t, vecmath.Vec3{X: 2, Y: -3, Z: 4}, physics.CellOrigin([3]int{2, -3, 4}))
}

func BenchmarkRaycast(b *testing.B) {
	w := physics.NewBlockSet()
	// Build a simple wall
	for x := 0; x < 16; x++ {
		for y := 0; y < 16; y++ {
			w.Set(x, y, 5)
		}
	}
	start := vecmath.Vec3{X: 0.5, Y: 8.5, Z: 0.5}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = physics.Raycast(start, vecmath.Vec3South, 0.1, 10.0, w)
	}
}
