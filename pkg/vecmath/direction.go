package vecmath

import (
	"math"
	"strings"
)

// Direction identifies one of the six axis-aligned block faces.
type Direction int

const (
	Up Direction = iota
	Down
	North
	South
	East
	West
)

var (
	// Directions lists every face in declaration order.
	Directions = []Direction{Up, Down, North, South, East, West}

	// HorizontalDirections lists the four side neighbors of a block.
	HorizontalDirections = []Direction{North, South, East, West}
)

var directionNames = [...]string{
	Up:    "up",
	Down:  "down",
	North: "north",
	South: "south",
	East:  "east",
	West:  "west",
}

// String returns the lowercase block-face name.
func (d Direction) String() string {
	if d.Valid() {
		return directionNames[d]
	}
	return "unknown"
}

func (d Direction) Valid() bool {
	return d >= Up && d <= West
}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return d
}

// Vec3 returns the unit vector of d, or the zero vector for an invalid d.
func (d Direction) Vec3() Vec3 {
	switch d {
	case Up:
		return Vec3Up
	case Down:
		return Vec3Down
	case North:
		return Vec3North
	case South:
		return Vec3South
	case East:
		return Vec3East
	case West:
		return Vec3West
	}
	return Vec3Zero
}

// ParseDirection matches a face name case-insensitively.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d, n := range directionNames {
		if n == name {
			return Direction(d), nil
		}
	}
	return 0, errorf("%q is not a block face", s)
}

func Vec3FromDirection(d Direction) Vec3 {
	return d.Vec3()
}

// Vec3FromBlockFace converts a face name such as "down" to its unit vector.
func Vec3FromBlockFace(face string) (Vec3, error) {
	d, err := ParseDirection(face)
	if err != nil {
		return Vec3{}, err
	}
	return d.Vec3(), nil
}

// ToDirection picks the axis with the largest magnitude. Ties go to x, then
// y, then z; a non-negative component selects the positive face.
func (v Vec3) ToDirection() Direction {
	a := v.Abs()
	m := math.Max(a.X, math.Max(a.Y, a.Z))
	switch {
	case m == a.X:
		if v.X >= 0 {
			return East
		}
		return West
	case m == a.Y:
		if v.Y >= 0 {
			return Up
		}
		return Down
	default:
		if v.Z >= 0 {
			return South
		}
		return North
	}
}

func (v Vec3) ToBlockFace() string {
	return v.ToDirection().String()
}
