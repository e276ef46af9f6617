package shape

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func square20(rotation float64, rf RoundFactors) Rectangle {
	return NewRectangle(r2.Vec{X: 10, Y: 10}, r2.Vec{X: 20, Y: 20}, rotation, rf)
}

func TestRectangle_SDF(t *testing.T) {
	points := []r2.Vec{
		{X: 10, Y: 10},
		{X: 10, Y: 8},
		{X: 5, Y: 5},
		{X: 10, Y: 0},
		{X: 0, Y: 10},
		{X: 0, Y: 0},
		{X: 10, Y: -10},
		{X: -2, Y: -2},
	}

	tests := []struct {
		name string
		rect Rectangle
		want []float64
	}{
		{
			name: "axis aligned",
			rect: square20(0, RoundFactors{}),
			want: []float64{-10, -8, -5, 0, 0, 0, 10, 2.8284271247461903},
		},
		{
			name: "rotated 45",
			rect: square20(45, RoundFactors{}),
			want: []float64{
				-10,
				-8.585786437626904,
				-2.9289321881345245,
				-2.9289321881345245,
				-2.9289321881345245,
				4.142135623730951,
				5.857864376269049,
				6.970562748477143,
			},
		},
		{
			name: "rounded 2",
			rect: square20(0, NewUniformRoundFactors(2)),
			want: []float64{-10, -8, -5, 0, 0, 0.8284271247461903, 10, 3.6568542494923806},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, p := range points {
				if got := tt.rect.SDF(p); !approx(got, tt.want[i], tol) {
					t.Errorf("SDF(%v) = %v, want %v", p, got, tt.want[i])
				}
			}
		})
	}
}

func TestRectangle_Measures(t *testing.T) {
	plain := square20(0, RoundFactors{})
	if got := plain.Area(); !approx(got, 400, tol) {
		t.Errorf("Area = %v, want 400", got)
	}
	if got := plain.Perimeter(); !approx(got, 80, tol) {
		t.Errorf("Perimeter = %v, want 80", got)
	}

	rounded := square20(0, NewUniformRoundFactors(2))
	if got := rounded.Area(); !approx(got, 396.5663706143592, tol) {
		t.Errorf("rounded Area = %v, want 396.5663706143592", got)
	}
	if got := rounded.Perimeter(); !approx(got, 76.56637061435917, tol) {
		t.Errorf("rounded Perimeter = %v, want 76.56637061435917", got)
	}

	// Rotation never changes the measures.
	rotated := square20(33, RoundFactors{})
	if rotated.Area() != plain.Area() || rotated.Perimeter() != plain.Perimeter() {
		t.Error("rotation changed area or perimeter")
	}
}

func TestRectangle_Corners(t *testing.T) {
	r := square20(0, RoundFactors{})

	tests := []struct {
		name string
		got  r2.Vec
		want r2.Vec
	}{
		{"top-left", r.TopLeft(), r2.Vec{X: 0, Y: 20}},
		{"top-right", r.TopRight(), r2.Vec{X: 20, Y: 20}},
		{"bottom-left", r.BottomLeft(), r2.Vec{X: 0, Y: 0}},
		{"bottom-right", r.BottomRight(), r2.Vec{X: 20, Y: 0}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestRectangle_RotatedCornersFollowRotation(t *testing.T) {
	r := square20(45, RoundFactors{})
	half := 10 * math.Sqrt2

	tests := []struct {
		name string
		got  r2.Vec
		want r2.Vec
	}{
		{"top-left", r.TopLeft(), r2.Vec{X: 10 - half, Y: 10}},
		{"top-right", r.TopRight(), r2.Vec{X: 10, Y: 10 + half}},
		{"bottom-left", r.BottomLeft(), r2.Vec{X: 10, Y: 10 - half}},
		{"bottom-right", r.BottomRight(), r2.Vec{X: 10 + half, Y: 10}},
	}
	for _, tt := range tests {
		if !approx(tt.got.X, tt.want.X, 1e-9) || !approx(tt.got.Y, tt.want.Y, 1e-9) {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
		// Every corner lies on the boundary.
		if d := r.SDF(tt.got); !approx(d, 0, 1e-9) {
			t.Errorf("SDF(%s) = %v, want 0", tt.name, d)
		}
	}
}

func TestRectangle_PerCornerRounding(t *testing.T) {
	// Only the top-right corner is rounded.
	r := NewRectangle(r2.Vec{}, r2.Vec{X: 4, Y: 4}, 0, NewRoundFactors(0, 1, 0, 0))

	if got := r.SDF(r2.Vec{X: 2, Y: 2}); !approx(got, math.Sqrt2-1, tol) {
		t.Errorf("rounded corner SDF = %v, want %v", got, math.Sqrt2-1)
	}
	if got := r.SDF(r2.Vec{X: -2, Y: -2}); !approx(got, 0, tol) {
		t.Errorf("sharp corner SDF = %v, want 0", got)
	}
}

func TestRectangle_GridCells(t *testing.T) {
	r := NewRectangle(r2.Vec{X: 1, Y: 1}, r2.Vec{X: 1, Y: 1}, 0, RoundFactors{})
	want := [3][3]float64{
		{0.7071067811865476, 0.5, 0.7071067811865476},
		{0.5, -0.5, 0.5},
		{0.7071067811865476, 0.5, 0.7071067811865476},
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			got := r.SDF(r2.Vec{X: float64(col), Y: float64(row)})
			if !approx(got, want[row][col], tol) {
				t.Errorf("SDF(%d,%d) = %v, want %v", col, row, got, want[row][col])
			}
		}
	}
}

func TestRectangle_Bounds(t *testing.T) {
	min, max := square20(0, RoundFactors{}).Bounds()
	if min != (r2.Vec{}) || max != (r2.Vec{X: 20, Y: 20}) {
		t.Errorf("Bounds = %v %v", min, max)
	}

	min, max = square20(90, RoundFactors{}).Bounds()
	if !approx(min.X, 0, 1e-9) || !approx(max.Y, 20, 1e-9) {
		t.Errorf("rotated Bounds = %v %v", min, max)
	}
}

func TestRoundFactors_Stats(t *testing.T) {
	rf := NewRoundFactors(1, 2, 3, 4)
	if rf.Mean() != 2.5 {
		t.Errorf("Mean = %v, want 2.5", rf.Mean())
	}
	if rf.MeanSquare() != 7.5 {
		t.Errorf("MeanSquare = %v, want 7.5", rf.MeanSquare())
	}
	if rf.Max() != 4 || rf.Min() != 1 {
		t.Errorf("Max/Min = %v/%v, want 4/1", rf.Max(), rf.Min())
	}
}

func TestRectangle_RotatedNonSquare(t *testing.T) {
	// 20×10 rotated 30° counterclockwise about the origin.
	r := NewRectangle(r2.Vec{}, r2.Vec{X: 20, Y: 10}, 30, RoundFactors{})

	tests := []struct {
		name string
		p    r2.Vec
		want float64
	}{
		{"center", r2.Vec{}, -5},
		// local (10, 5)
		{"top-right corner", r2.Vec{X: 6.160254037844387, Y: 9.330127018922193}, 0},
		// local (3, 5), on the upper long edge
		{"long edge", r2.Vec{X: 0.09807621135331601, Y: 5.830127018922193}, 0},
		// local (0, 7), two units above the long edge
		{"above long edge", r2.Vec{X: -3.5, Y: 6.0621778264910704}, 2},
		// local (12, 0), two units past the short edge
		{"past short edge", r2.Vec{X: 10.392304845413264, Y: 6}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.SDF(tt.p); !approx(got, tt.want, 1e-9) {
				t.Errorf("SDF(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}

	tr := r.TopRight()
	if !approx(tr.X, 6.160254037844387, 1e-9) || !approx(tr.Y, 9.330127018922193, 1e-9) {
		t.Errorf("TopRight = %v", tr)
	}
	if d := r.SDF(tr); !approx(d, 0, 1e-9) {
		t.Errorf("SDF(TopRight) = %v, want 0", d)
	}
}

func TestRectangle_CenterIsHalfShortSide(t *testing.T) {
	tests := []struct {
		name string
		rect Rectangle
		want float64
	}{
		{"wide", NewRectangle(r2.Vec{}, r2.Vec{X: 20, Y: 10}, 30, RoundFactors{}), -5},
		{"tall", NewRectangle(r2.Vec{X: 3, Y: -2}, r2.Vec{X: 6, Y: 14}, 75, RoundFactors{}), -3},
		{"rounded", NewRectangle(r2.Vec{X: -1, Y: 4}, r2.Vec{X: 8, Y: 30}, 120, NewUniformRoundFactors(2)), -4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.SDF(tt.rect.Center()); !approx(got, tt.want, 1e-9) {
				t.Errorf("SDF(center) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectangle_AxisPointsResolveTopRight(t *testing.T) {
	// Corner radii exceed the half extent on one side so the chosen corner
	// shows in the distance along the local axes.
	tests := []struct {
		name string
		rect Rectangle
		p    r2.Vec
		want float64
	}{
		{
			name: "x zero below uses bottom-right",
			rect: NewRectangle(r2.Vec{}, r2.Vec{X: 4, Y: 10}, 0, NewRoundFactors(0, 0, 3, 1)),
			p:    r2.Vec{X: 0, Y: -6},
			want: 1,
		},
		{
			name: "y zero left uses top-left",
			rect: NewRectangle(r2.Vec{}, r2.Vec{X: 10, Y: 4}, 0, NewRoundFactors(1, 0, 3, 0)),
			p:    r2.Vec{X: -6, Y: 0},
			want: 1,
		},
		{
			name: "origin uses top-right",
			rect: NewRectangle(r2.Vec{}, r2.Vec{X: 4, Y: 4}, 0, NewRoundFactors(0, 3, 0, 0)),
			p:    r2.Vec{},
			want: math.Sqrt2 - 3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.SDF(tt.p); !approx(got, tt.want, 1e-9) {
				t.Errorf("SDF(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}
