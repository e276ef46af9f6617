package shape

import (
	"math"

	"github.com/chazu/planar/pkg/vec"
	"gonum.org/v1/gonum/spatial/r2"
)

// Circle is a disc given by center and radius.
type Circle struct {
	center r2.Vec
	radius float64
}

// NewCircle returns a circle. A zero radius is a valid point circle.
func NewCircle(center r2.Vec, radius float64) Circle {
	return Circle{center: center, radius: radius}
}

func (Circle) shape() {}

// Kind returns KindCircle.
func (Circle) Kind() Kind { return KindCircle }

func (c Circle) Center() r2.Vec  { return c.center }
func (c Circle) Radius() float64 { return c.radius }

// Diameter returns twice the radius.
func (c Circle) Diameter() float64 {
	return c.radius * 2
}

// Area returns π·r².
func (c Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}

// Circumference returns 2π·r.
func (c Circle) Circumference() float64 {
	return 2 * math.Pi * c.radius
}

// Perimeter is the circumference.
func (c Circle) Perimeter() float64 {
	return c.Circumference()
}

// SDF returns |p - center| - radius.
func (c Circle) SDF(p r2.Vec) float64 {
	return vec.Length(r2.Sub(p, c.center)) - c.radius
}

// Bounds returns the square enclosing the circle.
func (c Circle) Bounds() (min, max r2.Vec) {
	r := r2.Vec{X: c.radius, Y: c.radius}
	return r2.Sub(c.center, r), r2.Add(c.center, r)
}
