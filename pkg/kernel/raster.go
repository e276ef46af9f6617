package kernel

import (
	"github.com/chazu/planar/pkg/grid"
	"gonum.org/v1/gonum/spatial/r2"
)

// Raster samples f on a columns × rows lattice spanning its bounds.
// Cell (c, r) holds f at min + (c·dx, r·dy); the last column and row land
// on max. A single column or row samples min only.
func Raster(f Field, columns, rows int) *grid.Grid {
	g := grid.New(columns, rows)
	min, max := f.Bounds()

	step := func(lo, hi float64, n int) float64 {
		if n < 2 {
			return 0
		}
		return (hi - lo) / float64(n-1)
	}
	dx := step(min.X, max.X, columns)
	dy := step(min.Y, max.Y, rows)

	for r := 0; r < rows; r++ {
		for c := 0; c < columns; c++ {
			p := r2.Vec{X: min.X + float64(c)*dx, Y: min.Y + float64(r)*dy}
			g.SetValue(c, r, f.Evaluate(p))
		}
	}
	return g
}
