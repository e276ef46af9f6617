// Package shape defines the 2D primitives (circle, rectangle, hexagon) and
// the Shape capability they share: area, perimeter and signed distance.
//
// All shapes are immutable, comparable value types. Constructors accept any
// parameters; out-of-domain values (negative radius, non-positive
// dimensions) yield formally computed but meaningless results. Call
// Validate, or construct through Build, to reject them explicitly.
package shape

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Kind tags the closed set of shape variants.
type Kind int

const (
	KindCircle Kind = iota
	KindRectangle
	KindHexagon
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindRectangle:
		return "rectangle"
	case KindHexagon:
		return "hexagon"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Shape is the capability every primitive exposes.
//
// SDF returns the signed distance from p to the shape boundary: negative
// strictly inside, zero on the boundary, positive outside.
type Shape interface {
	Area() float64
	Perimeter() float64
	SDF(p r2.Vec) float64
	Kind() Kind

	shape() // marker method restricting implementations to this package
}

// Bounded is implemented by shapes that know their axis-aligned extent.
type Bounded interface {
	Bounds() (min, max r2.Vec)
}

// Compile-time checks.
var (
	_ Shape   = Circle{}
	_ Shape   = Rectangle{}
	_ Shape   = Hexagon{}
	_ Bounded = Circle{}
	_ Bounded = Rectangle{}
	_ Bounded = Hexagon{}
)
