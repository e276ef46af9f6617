package shape

import (
	"fmt"
	"math"

	"github.com/chazu/planar/pkg/vec"
	"gonum.org/v1/gonum/spatial/r2"
)

// sqrt3 is carried to seven decimals; published hexagon values
// (inradius 8.660254 for circumradius 10) depend on it.
const sqrt3 = 1.7320508

// Orientation selects how a hexagon sits on the plane.
type Orientation int

const (
	// Horizontal hexagons are pointy-top: vertical edges left and right.
	Horizontal Orientation = iota
	// Vertical hexagons are flat-top: horizontal edges top and bottom.
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// ParseOrientation accepts "horizontal" or "vertical".
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrientation, s)
}

// Hexagon is a regular hexagon given by center and circumradius.
type Hexagon struct {
	center       r2.Vec
	circumradius float64
	orientation  Orientation
}

// NewHexagon returns a hexagon.
func NewHexagon(center r2.Vec, circumradius float64, orientation Orientation) Hexagon {
	return Hexagon{center: center, circumradius: circumradius, orientation: orientation}
}

func (Hexagon) shape() {}

// Kind returns KindHexagon.
func (Hexagon) Kind() Kind { return KindHexagon }

func (h Hexagon) Center() r2.Vec           { return h.center }
func (h Hexagon) Orientation() Orientation { return h.orientation }
func (h Hexagon) Circumradius() float64    { return h.circumradius }
func (h Hexagon) SideLength() float64      { return h.circumradius }
func (h Hexagon) MaximalDiameter() float64 { return h.circumradius * 2 }
func (h Hexagon) MinimalDiameter() float64 { return h.Inradius() * 2 }
func (h Hexagon) Apothem() float64         { return h.Inradius() }

// Inradius is the radius of the inscribed circle, (√3/2)·R.
func (h Hexagon) Inradius() float64 {
	return (sqrt3 / 2) * h.circumradius
}

// Area returns 2·r²·√3 for inradius r, which is (3√3/2)·R².
func (h Hexagon) Area() float64 {
	r := h.Inradius()
	return 2 * r * r * sqrt3
}

// Perimeter returns 6·R.
func (h Hexagon) Perimeter() float64 {
	return 6 * h.circumradius
}

// SDF folds p into one sixth of the plane and measures against the
// nearest edge line: the slanted edge through dot(q, s), the straight one
// through q.X.
func (h Hexagon) SDF(p r2.Vec) float64 {
	t := r2.Sub(p, h.center)
	if h.orientation == Vertical {
		t = vec.Rotate30(t)
	}

	s := r2.Scale(0.5, r2.Vec{X: 1, Y: sqrt3})
	q := vec.Abs(t)

	return math.Max(vec.Dot(q, s), q.X) - h.Inradius()
}

// Bounds returns the axis-aligned box touching the hexagon.
func (h Hexagon) Bounds() (min, max r2.Vec) {
	ext := r2.Vec{X: h.Inradius(), Y: h.circumradius}
	if h.orientation == Vertical {
		ext = r2.Vec{X: h.circumradius, Y: h.Inradius()}
	}
	return r2.Sub(h.center, ext), r2.Add(h.center, ext)
}
