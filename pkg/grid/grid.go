// Package grid holds rectangular grids of float64 samples, typically
// signed distances taken from a shape at integer lattice points.
package grid

import (
	"github.com/chazu/planar/pkg/shape"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

// Grid is a columns × rows matrix of values addressed by (column, row) or
// by row-major index. A Grid is not safe for concurrent mutation.
type Grid struct {
	columns int
	rows    int
	data    *mat.Dense
}

// New returns a zero-filled grid. It panics if either size is below one.
func New(columns, rows int) *Grid {
	if columns < 1 || rows < 1 {
		panic("grid: columns and rows must be greater than zero")
	}
	return &Grid{
		columns: columns,
		rows:    rows,
		data:    mat.NewDense(rows, columns, nil),
	}
}

func (g *Grid) Columns() int { return g.columns }
func (g *Grid) Rows() int    { return g.rows }

// Len returns columns × rows.
func (g *Grid) Len() int { return g.columns * g.rows }

// Value returns the value at (column, row).
func (g *Grid) Value(column, row int) float64 {
	return g.data.At(row, column)
}

// SetValue stores v at (column, row).
func (g *Grid) SetValue(column, row int, v float64) {
	g.data.Set(row, column, v)
}

// ValueAt returns the value at row-major index row·columns + column.
func (g *Grid) ValueAt(index int) float64 {
	return g.data.At(index/g.columns, index%g.columns)
}

// SetValueAt stores v at the row-major index.
func (g *Grid) SetValueAt(index int, v float64) {
	g.data.Set(index/g.columns, index%g.columns, v)
}

// Values returns a row-major copy of the grid contents.
func (g *Grid) Values() []float64 {
	out := make([]float64, 0, g.Len())
	for r := 0; r < g.rows; r++ {
		out = append(out, g.data.RawRowView(r)...)
	}
	return out
}

// Min returns the smallest value in the grid.
func (g *Grid) Min() float64 {
	return floats.Min(g.Values())
}

// Max returns the largest value in the grid.
func (g *Grid) Max() float64 {
	return floats.Max(g.Values())
}

// Sample evaluates s at every integer lattice point: cell (c, r) holds
// s.SDF((c, r)).
func Sample(s shape.Shape, columns, rows int) *Grid {
	g := New(columns, rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < columns; c++ {
			g.SetValue(c, r, s.SDF(r2.Vec{X: float64(c), Y: float64(r)}))
		}
	}
	return g
}
