package main

import (
	"context"

	"github.com/chazu/planar/pkg/compose"
	"github.com/chazu/planar/pkg/engine"
	"github.com/chazu/planar/pkg/kernel"
	"github.com/chazu/planar/pkg/kernel/sdfx"
	"github.com/chazu/planar/pkg/scene"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/spatial/r2"
)

// App ties the script engine to the field kernel. It evaluates a shape
// script and reports per-shape measurements and distances.
type App struct {
	engine *engine.Engine
	kernel kernel.Kernel
}

// Query selects what Evaluate measures beyond area and perimeter.
type Query struct {
	Points []r2.Vec // distance probes
	Raster int      // side of an N×N raster of the composed scene; 0 skips it
}

// PointData is a JSON-serializable point.
type PointData struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ShapeData describes one scene entry.
type ShapeData struct {
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	Op        string    `json:"op"`
	Area      float64   `json:"area"`
	Perimeter float64   `json:"perimeter"`
	Min       PointData `json:"min"`
	Max       PointData `json:"max"`
	Distances []float64 `json:"distances"` // one per query point, placement applied
}

// RasterData is a row-major sample of the composed scene over its bounds.
type RasterData struct {
	Columns int       `json:"columns"`
	Rows    int       `json:"rows"`
	Min     float64   `json:"min"`
	Max     float64   `json:"max"`
	Values  []float64 `json:"values"`
}

// EvalErrorData is a JSON-serializable error or warning.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// EvalResult is the full report for one script.
type EvalResult struct {
	Shapes    []ShapeData     `json:"shapes"`
	Points    []PointData     `json:"points"`
	Distances []float64       `json:"distances"` // composed scene, one per point
	Raster    *RasterData     `json:"raster,omitempty"`
	Errors    []EvalErrorData `json:"errors"`
	Warnings  []EvalErrorData `json:"warnings"`
}

// NewApp creates a new App with an engine and the sdfx kernel.
func NewApp(opts ...engine.Option) *App {
	return &App{
		engine: engine.NewEngine(opts...),
		kernel: sdfx.New(),
	}
}

func toPointData(p r2.Vec) PointData {
	return PointData{X: p.X, Y: p.Y}
}

// Evaluate runs source and measures the resulting scene.
func (a *App) Evaluate(ctx context.Context, source string, q Query) EvalResult {
	log := engine.Logger()
	result := EvalResult{
		Shapes:    []ShapeData{},
		Points:    lo.Map(q.Points, func(p r2.Vec, _ int) PointData { return toPointData(p) }),
		Distances: []float64{},
		Errors:    []EvalErrorData{},
		Warnings:  []EvalErrorData{},
	}

	// Step 1: Evaluate the Lisp source into a scene.
	sc, evalErrs, err := a.engine.EvaluateContext(ctx, source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		log.Error("evaluate fatal error", "err", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}

	// Step 2: Convert eval errors to the report format.
	if len(evalErrs) > 0 {
		result.Errors = lo.Map(evalErrs, func(e engine.EvalError, _ int) EvalErrorData {
			return EvalErrorData{Line: e.Line, Col: e.Col, Message: e.Message}
		})
		return result
	}

	// Step 3: Validate the scene; warnings are reported alongside results.
	vr := scene.ValidateAll(sc)
	result.Warnings = append(result.Warnings, lo.Map(vr.Warnings, func(w scene.ValidationWarning, _ int) EvalErrorData {
		return EvalErrorData{Message: w.Message}
	})...)
	if !vr.OK() {
		result.Errors = append(result.Errors, lo.Map(vr.Errors, func(e scene.ValidationError, _ int) EvalErrorData {
			return EvalErrorData{Message: e.Error()}
		})...)
		return result
	}

	// Step 4: Lift every shape and measure it.
	parts, err := compose.Fields(sc, a.kernel)
	if err != nil {
		log.Error("compose error", "err", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: "compose failed: " + err.Error()})
		return result
	}
	for _, p := range parts {
		s := sc.MustLookup(p.Name).Shape
		min, max := p.Field.Bounds()
		result.Shapes = append(result.Shapes, ShapeData{
			Name:      p.Name,
			Kind:      s.Kind().String(),
			Op:        p.Op.String(),
			Area:      s.Area(),
			Perimeter: s.Perimeter(),
			Min:       toPointData(min),
			Max:       toPointData(max),
			Distances: evaluateAll(p.Field, q.Points),
		})
	}

	// Step 5: Compose the whole scene.
	field, err := compose.Scene(sc, a.kernel)
	if err != nil {
		log.Error("compose error", "err", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: "compose failed: " + err.Error()})
		return result
	}
	if field == nil {
		return result
	}
	result.Distances = evaluateAll(field, q.Points)

	if q.Raster > 0 {
		g := kernel.Raster(field, q.Raster, q.Raster)
		result.Raster = &RasterData{
			Columns: g.Columns(),
			Rows:    g.Rows(),
			Min:     g.Min(),
			Max:     g.Max(),
			Values:  g.Values(),
		}
	}

	return result
}

func evaluateAll(f kernel.Field, points []r2.Vec) []float64 {
	return lo.Map(points, func(p r2.Vec, _ int) float64 {
		return f.Evaluate(p)
	})
}
