package shape

import (
	"math"

	"github.com/chazu/planar/pkg/vec"
	"gonum.org/v1/gonum/spatial/r2"
)

// RoundFactors holds the corner radius of each rectangle corner. Corners
// are named in the rectangle's local frame, before rotation.
type RoundFactors struct {
	TopLeft     float64
	TopRight    float64
	BottomLeft  float64
	BottomRight float64
}

// NewRoundFactors returns per-corner round factors.
func NewRoundFactors(topLeft, topRight, bottomLeft, bottomRight float64) RoundFactors {
	return RoundFactors{
		TopLeft:     topLeft,
		TopRight:    topRight,
		BottomLeft:  bottomLeft,
		BottomRight: bottomRight,
	}
}

// NewUniformRoundFactors rounds all four corners by r.
func NewUniformRoundFactors(r float64) RoundFactors {
	return RoundFactors{TopLeft: r, TopRight: r, BottomLeft: r, BottomRight: r}
}

// Mean returns the average corner radius.
func (rf RoundFactors) Mean() float64 {
	return (rf.TopLeft + rf.TopRight + rf.BottomLeft + rf.BottomRight) / 4
}

// MeanSquare returns the average of the squared corner radii.
func (rf RoundFactors) MeanSquare() float64 {
	return (rf.TopLeft*rf.TopLeft +
		rf.TopRight*rf.TopRight +
		rf.BottomLeft*rf.BottomLeft +
		rf.BottomRight*rf.BottomRight) / 4
}

// Max returns the largest corner radius.
func (rf RoundFactors) Max() float64 {
	return math.Max(math.Max(rf.TopLeft, rf.TopRight), math.Max(rf.BottomLeft, rf.BottomRight))
}

// Min returns the smallest corner radius.
func (rf RoundFactors) Min() float64 {
	return math.Min(math.Min(rf.TopLeft, rf.TopRight), math.Min(rf.BottomLeft, rf.BottomRight))
}

// forQuadrant picks the corner radius for a point in the local frame.
// Zero coordinates resolve toward the top and right.
func (rf RoundFactors) forQuadrant(p r2.Vec) float64 {
	switch {
	case p.X >= 0 && p.Y >= 0:
		return rf.TopRight
	case p.X >= 0:
		return rf.BottomRight
	case p.Y >= 0:
		return rf.TopLeft
	default:
		return rf.BottomLeft
	}
}

// Rectangle is a box given by its center and full dimensions, optionally
// rotated about its center and with each corner rounded independently.
type Rectangle struct {
	center                 r2.Vec
	dimensions             r2.Vec
	rotationAngleInDegrees float64
	roundFactors           RoundFactors
}

// NewRectangle returns a rectangle. Rotation is counter-clockwise in
// degrees; pass 0 and RoundFactors{} for a plain axis-aligned box.
func NewRectangle(center, dimensions r2.Vec, rotationAngleInDegrees float64, roundFactors RoundFactors) Rectangle {
	return Rectangle{
		center:                 center,
		dimensions:             dimensions,
		rotationAngleInDegrees: rotationAngleInDegrees,
		roundFactors:           roundFactors,
	}
}

func (Rectangle) shape() {}

// Kind returns KindRectangle.
func (Rectangle) Kind() Kind { return KindRectangle }

func (r Rectangle) Center() r2.Vec                  { return r.center }
func (r Rectangle) Dimensions() r2.Vec              { return r.dimensions }
func (r Rectangle) Width() float64                  { return r.dimensions.X }
func (r Rectangle) Height() float64                 { return r.dimensions.Y }
func (r Rectangle) RotationAngleInDegrees() float64 { return r.rotationAngleInDegrees }
func (r Rectangle) RoundFactors() RoundFactors      { return r.roundFactors }

// HalfExtents returns half the dimensions.
func (r Rectangle) HalfExtents() r2.Vec {
	return r2.Scale(0.5, r.dimensions)
}

// TopLeft returns the top-left corner in world coordinates.
func (r Rectangle) TopLeft() r2.Vec {
	return r.corner(-1, 1)
}

// TopRight returns the top-right corner in world coordinates.
func (r Rectangle) TopRight() r2.Vec {
	return r.corner(1, 1)
}

// BottomLeft returns the bottom-left corner in world coordinates.
func (r Rectangle) BottomLeft() r2.Vec {
	return r.corner(-1, -1)
}

// BottomRight returns the bottom-right corner in world coordinates.
func (r Rectangle) BottomRight() r2.Vec {
	return r.corner(1, -1)
}

func (r Rectangle) corner(sx, sy float64) r2.Vec {
	half := r.HalfExtents()
	p := r2.Vec{X: r.center.X + sx*half.X, Y: r.center.Y + sy*half.Y}
	return vec.RotateAbout(p, r.center, r.rotationAngleInDegrees)
}

// Area approximates each rounded corner as a quarter circle of the mean
// squared radius. It is exact when all four radii are equal.
func (r Rectangle) Area() float64 {
	rSquared := r.roundFactors.MeanSquare()
	return r.dimensions.X*r.dimensions.Y - 4*rSquared + math.Pi*rSquared
}

// Perimeter shortens the straight edges and adds circular arcs using the
// mean corner radius.
func (r Rectangle) Perimeter() float64 {
	rMean := r.roundFactors.Mean()
	return (r.dimensions.X+r.dimensions.Y)*2 - 8*rMean + 2*math.Pi*rMean
}

// SDF returns the signed distance from p to the rectangle boundary.
func (r Rectangle) SDF(p r2.Vec) float64 {
	local := vec.RotateDegrees(r2.Sub(p, r.center), -r.rotationAngleInDegrees)

	round := r.roundFactors.forQuadrant(local)

	d := r2.Add(r2.Sub(vec.Abs(local), r.HalfExtents()), r2.Vec{X: round, Y: round})

	return vec.Length(vec.MaxScalar(d, 0)) + math.Min(math.Max(d.X, d.Y), 0) - round
}

// Bounds returns the axis-aligned box around the rotated corners.
func (r Rectangle) Bounds() (min, max r2.Vec) {
	corners := [4]r2.Vec{r.TopLeft(), r.TopRight(), r.BottomLeft(), r.BottomRight()}
	min, max = corners[0], corners[0]
	for _, c := range corners[1:] {
		min = r2.Vec{X: math.Min(min.X, c.X), Y: math.Min(min.Y, c.Y)}
		max = r2.Vec{X: math.Max(max.X, c.X), Y: math.Max(max.Y, c.Y)}
	}
	return min, max
}
