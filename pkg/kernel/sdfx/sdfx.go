// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library.
package sdfx

import (
	"errors"
	"fmt"

	"github.com/chazu/planar/pkg/kernel"
	"github.com/chazu/planar/pkg/shape"
	"github.com/chazu/planar/pkg/vec"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Compile-time interface checks.
var (
	_ kernel.Kernel = (*SdfxKernel)(nil)
	_ sdf.SDF2      = (*shapeSDF2)(nil)
)

// ErrUnbounded is returned by Lift for shapes that cannot report bounds.
var ErrUnbounded = errors.New("sdfx: shape has no bounding box")

// shapeSDF2 adapts a shape to sdf.SDF2 by evaluating the shape's own
// distance function.
type shapeSDF2 struct {
	s  shape.Shape
	bb sdf.Box2
}

// Evaluate returns the shape's signed distance at p.
func (s *shapeSDF2) Evaluate(p v2.Vec) float64 {
	return s.s.SDF(toR2(p))
}

// BoundingBox returns the shape's bounds.
func (s *shapeSDF2) BoundingBox() sdf.Box2 {
	return s.bb
}

// sdfxField wraps an sdf.SDF2 to implement kernel.Field.
type sdfxField struct {
	s sdf.SDF2
}

// Evaluate returns the field value at p.
func (f *sdfxField) Evaluate(p r2.Vec) float64 {
	return f.s.Evaluate(toV2(p))
}

// Bounds returns the axis-aligned bounding box.
func (f *sdfxField) Bounds() (min, max r2.Vec) {
	bb := f.s.BoundingBox()
	return toR2(bb.Min), toR2(bb.Max)
}

// SdfxKernel implements kernel.Kernel using sdfx.
type SdfxKernel struct{}

// New returns a new SdfxKernel.
func New() *SdfxKernel {
	return &SdfxKernel{}
}

// SDF2 exposes the sdfx representation of a field produced by this
// kernel, for callers that want to hand it to sdfx directly.
func SDF2(f kernel.Field) sdf.SDF2 {
	return unwrap(f)
}

// unwrap extracts the underlying sdf.SDF2 from a kernel.Field.
func unwrap(f kernel.Field) sdf.SDF2 {
	return f.(*sdfxField).s
}

// wrap creates a kernel.Field from an sdf.SDF2.
func wrap(s sdf.SDF2) kernel.Field {
	return &sdfxField{s: s}
}

func toV2(p r2.Vec) v2.Vec { return v2.Vec{X: p.X, Y: p.Y} }
func toR2(p v2.Vec) r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

// Lift wraps a validated shape as a field.
func (k *SdfxKernel) Lift(s shape.Shape) (kernel.Field, error) {
	if s == nil {
		return nil, fmt.Errorf("sdfx: lift: nil shape")
	}
	b, ok := s.(shape.Bounded)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnbounded, s.Kind())
	}
	if err := shape.Validate(s); err != nil {
		return nil, fmt.Errorf("sdfx: lift %s: %w", s.Kind(), err)
	}
	min, max := b.Bounds()
	return wrap(&shapeSDF2{
		s:  s,
		bb: sdf.Box2{Min: toV2(min), Max: toV2(max)},
	}), nil
}

// Union returns the union of two fields.
func (k *SdfxKernel) Union(a, b kernel.Field) kernel.Field {
	return wrap(sdf.Union2D(unwrap(a), unwrap(b)))
}

// Difference returns the difference a - b.
func (k *SdfxKernel) Difference(a, b kernel.Field) kernel.Field {
	return wrap(sdf.Difference2D(unwrap(a), unwrap(b)))
}

// Intersection returns the intersection of two fields.
func (k *SdfxKernel) Intersection(a, b kernel.Field) kernel.Field {
	return wrap(sdf.Intersect2D(unwrap(a), unwrap(b)))
}

// Translate moves a field by (x, y).
func (k *SdfxKernel) Translate(f kernel.Field, x, y float64) kernel.Field {
	m := sdf.Translate2d(v2.Vec{X: x, Y: y})
	return wrap(sdf.Transform2D(unwrap(f), m))
}

// Rotate rotates a field counter-clockwise about the origin.
func (k *SdfxKernel) Rotate(f kernel.Field, degrees float64) kernel.Field {
	m := sdf.Rotate2d(vec.Deg2Rad(degrees))
	return wrap(sdf.Transform2D(unwrap(f), m))
}
