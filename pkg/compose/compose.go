// Package compose walks a scene and produces kernel fields: one per entry,
// or a single field folding every entry in scene order.
package compose

import (
	"fmt"

	"github.com/chazu/planar/pkg/kernel"
	"github.com/chazu/planar/pkg/scene"
)

// Part is the placed field of one scene entry.
type Part struct {
	Name  string
	Op    scene.Op
	Field kernel.Field
}

// Fields lifts every entry in scene order and applies its placement.
// It never mutates the scene.
func Fields(sc *scene.Scene, k kernel.Kernel) ([]Part, error) {
	if sc == nil {
		return nil, nil
	}

	parts := make([]Part, 0, sc.Len())
	for _, e := range sc.Shapes() {
		f, err := place(k, e)
		if err != nil {
			return nil, err
		}
		parts = append(parts, Part{Name: e.Name, Op: e.Op, Field: f})
	}
	return parts, nil
}

// place lifts an entry and applies rotation first, then translation.
func place(k kernel.Kernel, e *scene.Entry) (kernel.Field, error) {
	f, err := k.Lift(e.Shape)
	if err != nil {
		return nil, fmt.Errorf("compose: shape %q (%s): %w", e.Name, e.ID.Short(), err)
	}

	p := e.Placement
	if p.Rotation != 0 {
		f = k.Rotate(f, p.Rotation)
	}
	if p.Offset.X != 0 || p.Offset.Y != 0 {
		f = k.Translate(f, p.Offset.X, p.Offset.Y)
	}
	return f, nil
}

// Scene folds every entry into one field. The first entry seeds the
// result; each later entry is combined with it by the entry's op. An
// empty scene yields a nil field and no error.
func Scene(sc *scene.Scene, k kernel.Kernel) (kernel.Field, error) {
	parts, err := Fields(sc, k)
	if err != nil {
		return nil, err
	}
	if len(parts) == 0 {
		return nil, nil
	}

	acc := parts[0].Field
	for _, p := range parts[1:] {
		switch p.Op {
		case scene.OpUnion:
			acc = k.Union(acc, p.Field)
		case scene.OpDifference:
			acc = k.Difference(acc, p.Field)
		case scene.OpIntersection:
			acc = k.Intersection(acc, p.Field)
		default:
			return nil, fmt.Errorf("compose: shape %q has unknown op %v", p.Name, p.Op)
		}
	}
	return acc, nil
}
