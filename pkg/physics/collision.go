package physics

import (
	"math"

	"nethermath/pkg/vecmath"
)

// PlayerHalfWidth is half the horizontal extent of a player's bounding box.
const PlayerHalfWidth = 0.3

// Collides reports whether a player box standing at pos (feet centre) with
// the given height overlaps any solid block.
func Collides(pos vecmath.Vec3, height float64, q BlockQuery) bool {
	minX := int(math.Floor(pos.X - PlayerHalfWidth))
	maxX := int(math.Floor(pos.X + PlayerHalfWidth))
	minY := int(math.Floor(pos.Y))
	maxY := int(math.Floor(pos.Y + height))
	minZ := int(math.Floor(pos.Z - PlayerHalfWidth))
	maxZ := int(math.Floor(pos.Z + PlayerHalfWidth))

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				if !q.IsSolid(x, y, z) {
					continue
				}
				bx, by, bz := float64(x), float64(y), float64(z)
				if pos.X-PlayerHalfWidth < bx+1 && pos.X+PlayerHalfWidth > bx &&
					pos.Y < by+1 && pos.Y+height > by &&
					pos.Z-PlayerHalfWidth < bz+1 && pos.Z+PlayerHalfWidth > bz {
					return true
				}
			}
		}
	}
	return false
}

// GroundLevel returns the top of the highest solid block under a player box
// centred on (x, z), scanning down from fromY to floorY inclusive.
func GroundLevel(x, z, fromY float64, floorY int, q BlockQuery) (float64, bool) {
	minX := int(math.Floor(x - PlayerHalfWidth))
	maxX := int(math.Floor(x + PlayerHalfWidth))
	minZ := int(math.Floor(z - PlayerHalfWidth))
	maxZ := int(math.Floor(z + PlayerHalfWidth))

	ground, found := math.Inf(-1), false
	for bx := minX; bx <= maxX; bx++ {
		for bz := minZ; bz <= maxZ; bz++ {
			for by := int(math.Floor(fromY)); by >= floorY; by-- {
				if q.IsSolid(bx, by, bz) {
					if top := float64(by) + 1; top > ground {
						ground = top
					}
					found = true
					break
				}
			}
		}
	}
	return ground, found
}
