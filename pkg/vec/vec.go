// Package vec holds the small set of 2D vector helpers the shape SDFs are
// written in terms of. Vectors are gonum r2.Vec values; every helper is a
// pure function returning a new value.
package vec

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Fixed 30° rotation constants used by the vertical hexagon SDF.
const (
	cos30 = 0.86602540378
	sin30 = 0.5
)

// New is shorthand for r2.Vec{X: x, Y: y}.
func New(x, y float64) r2.Vec {
	return r2.Vec{X: x, Y: y}
}

// Abs returns v with both components made non-negative.
func Abs(v r2.Vec) r2.Vec {
	return r2.Vec{X: math.Abs(v.X), Y: math.Abs(v.Y)}
}

// Length returns the Euclidean length of v.
func Length(v r2.Vec) float64 {
	return r2.Norm(v)
}

// MaxScalar clamps each component of v from below at s.
func MaxScalar(v r2.Vec, s float64) r2.Vec {
	return r2.Vec{X: math.Max(v.X, s), Y: math.Max(v.Y, s)}
}

// Dot returns the dot product of a and b.
func Dot(a, b r2.Vec) float64 {
	return r2.Dot(a, b)
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RotateDegrees rotates v counter-clockwise about the origin.
func RotateDegrees(v r2.Vec, degrees float64) r2.Vec {
	if degrees == 0 {
		return v
	}
	return r2.Rotate(v, Deg2Rad(degrees), r2.Vec{})
}

// RotateAbout rotates p counter-clockwise about pivot.
func RotateAbout(p, pivot r2.Vec, degrees float64) r2.Vec {
	if degrees == 0 {
		return p
	}
	return r2.Rotate(p, Deg2Rad(degrees), pivot)
}

// Rotate30 rotates v counter-clockwise by 30° using fixed constants.
func Rotate30(v r2.Vec) r2.Vec {
	return r2.Vec{
		X: v.X*cos30 - v.Y*sin30,
		Y: v.X*sin30 + v.Y*cos30,
	}
}
