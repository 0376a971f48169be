package physics

import "nethermath/pkg/vecmath"

// BlockQuery answers whether the unit block cell at (x, y, z) is solid.
// Cell (x, y, z) spans [x, x+1) on each axis.
type BlockQuery interface {
	IsSolid(x, y, z int) bool
}

// BlockSet is a sparse set of solid cells.
type BlockSet map[[3]int]struct{}

func NewBlockSet(cells ...[3]int) BlockSet {
	s := make(BlockSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

func (s BlockSet) Set(x, y, z int) {
	s[[3]int{x, y, z}] = struct{}{}
}

func (s BlockSet) Clear(x, y, z int) {
	delete(s, [3]int{x, y, z})
}

func (s BlockSet) IsSolid(x, y, z int) bool {
	_, ok := s[[3]int{x, y, z}]
	return ok
}

// Cell returns the block cell containing p.
func Cell(p vecmath.Vec3) [3]int {
	f := p.Floor()
	return [3]int{int(f.X), int(f.Y), int(f.Z)}
}

// CellOrigin returns the minimum corner of cell c.
func CellOrigin(c [3]int) vecmath.Vec3 {
	return vecmath.Vec3{X: float64(c[0]), Y: float64(c[1]), Z: float64(c[2])}
}

// Neighbor returns the cell next to c across face d.
func Neighbor(c [3]int, d vecmath.Direction) [3]int {
	return Cell(CellOrigin(c).Offset(d, 1))
}
