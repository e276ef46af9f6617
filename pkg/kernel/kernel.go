// Package kernel defines the abstract 2D field kernel interface.
// Implementations lift shapes into signed distance fields and compose
// them with boolean and rigid-motion operators. The abstraction allows
// swapping backends without changing the rest of the system.
package kernel

import (
	"github.com/chazu/planar/pkg/shape"
	"gonum.org/v1/gonum/spatial/r2"
)

// Field is an opaque handle to a kernel signed distance field.
// Implementations wrap their internal representation.
type Field interface {
	// Evaluate returns the signed distance at p.
	Evaluate(p r2.Vec) float64
	// Bounds returns the axis-aligned bounding box.
	Bounds() (min, max r2.Vec)
}

// Kernel is the abstract field kernel interface.
type Kernel interface {
	// Primitives
	Lift(s shape.Shape) (Field, error)

	// Boolean operations on distance fields
	Union(a, b Field) Field
	Difference(a, b Field) Field
	Intersection(a, b Field) Field

	// Transforms
	Translate(f Field, x, y float64) Field
	Rotate(f Field, degrees float64) Field // counter-clockwise about the origin
}
