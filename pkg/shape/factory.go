package shape

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// CircleShape returns a circle as a Shape handle.
func CircleShape(center r2.Vec, radius float64) Shape {
	return NewCircle(center, radius)
}

// RectangleShape returns a rectangle as a Shape handle.
func RectangleShape(center, dimensions r2.Vec, rotationAngleInDegrees float64, roundFactors RoundFactors) Shape {
	return NewRectangle(center, dimensions, rotationAngleInDegrees, roundFactors)
}

// HexagonShape returns a hexagon as a Shape handle.
func HexagonShape(center r2.Vec, circumradius float64, orientation Orientation) Shape {
	return NewHexagon(center, circumradius, orientation)
}

// Spec is a flat parameter record for any shape variant. Fields that do
// not apply to Kind are ignored.
type Spec struct {
	Kind        Kind
	Center      r2.Vec
	Radius      float64 // circle radius, hexagon circumradius
	Dimensions  r2.Vec  // rectangle width and height
	Rotation    float64 // rectangle rotation in degrees
	Round       RoundFactors
	Orientation Orientation
}

// Build constructs the shape described by spec and validates it.
func Build(spec Spec) (Shape, error) {
	var s Shape
	switch spec.Kind {
	case KindCircle:
		s = NewCircle(spec.Center, spec.Radius)
	case KindRectangle:
		s = NewRectangle(spec.Center, spec.Dimensions, spec.Rotation, spec.Round)
	case KindHexagon:
		s = NewHexagon(spec.Center, spec.Radius, spec.Orientation)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, spec.Kind)
	}
	if err := Validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

// SpecOf returns the parameter record that rebuilds s.
func SpecOf(s Shape) Spec {
	switch v := s.(type) {
	case Circle:
		return Spec{Kind: KindCircle, Center: v.center, Radius: v.radius}
	case Rectangle:
		return Spec{
			Kind:       KindRectangle,
			Center:     v.center,
			Dimensions: v.dimensions,
			Rotation:   v.rotationAngleInDegrees,
			Round:      v.roundFactors,
		}
	case Hexagon:
		return Spec{
			Kind:        KindHexagon,
			Center:      v.center,
			Radius:      v.circumradius,
			Orientation: v.orientation,
		}
	}
	return Spec{Kind: -1}
}
