// Package vecmath implements 2D/3D vectors and 2x2/3x3 matrices over float64.
//
// All types are plain comparable structs passed by value; every operation
// returns a new value and never mutates its receiver or arguments.
// Out-of-domain input (normalizing a zero vector, acos outside [-1, 1],
// slerp between opposite vectors) propagates NaN or Inf instead of failing.
//
// Directions follow the block-game convention: +Y is up, -Z is north and
// +X is east.
package vecmath
