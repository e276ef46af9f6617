package vec

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

const tol = 1e-12

func near(a, b r2.Vec) bool {
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol
}

func TestAbs(t *testing.T) {
	tests := []struct {
		name string
		in   r2.Vec
		want r2.Vec
	}{
		{"positive", New(1, 2), New(1, 2)},
		{"negative", New(-1, -2), New(1, 2)},
		{"mixed", New(-3, 4), New(3, 4)},
		{"zero", New(0, 0), New(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Abs(tt.in); got != tt.want {
				t.Errorf("Abs(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLengthAndDot(t *testing.T) {
	if got := Length(New(3, 4)); got != 5 {
		t.Errorf("Length(3,4) = %v, want 5", got)
	}
	if got := Dot(New(1, 2), New(3, 4)); got != 11 {
		t.Errorf("Dot = %v, want 11", got)
	}
}

func TestMaxScalar(t *testing.T) {
	got := MaxScalar(New(-1, 2), 0)
	if got != New(0, 2) {
		t.Errorf("MaxScalar = %v, want (0, 2)", got)
	}
}

func TestRotateDegrees(t *testing.T) {
	tests := []struct {
		name    string
		in      r2.Vec
		degrees float64
		want    r2.Vec
	}{
		{"zero is identity", New(1, 2), 0, New(1, 2)},
		{"quarter turn", New(1, 0), 90, New(0, 1)},
		{"half turn", New(1, 0), 180, New(-1, 0)},
		{"negative quarter turn", New(1, 0), -90, New(0, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RotateDegrees(tt.in, tt.degrees); !near(got, tt.want) {
				t.Errorf("RotateDegrees(%v, %v) = %v, want %v", tt.in, tt.degrees, got, tt.want)
			}
		})
	}
}

func TestRotateAbout(t *testing.T) {
	got := RotateAbout(New(2, 1), New(1, 1), 90)
	if !near(got, New(1, 2)) {
		t.Errorf("RotateAbout = %v, want (1, 2)", got)
	}
}

func TestRotate30(t *testing.T) {
	got := Rotate30(New(0, -10))
	want := New(5, -8.6602540378)
	if !near(got, want) {
		t.Errorf("Rotate30 = %v, want %v", got, want)
	}

	// Agrees with the generic rotation to the precision of the constants.
	generic := RotateDegrees(New(3, 7), 30)
	fixed := Rotate30(New(3, 7))
	if math.Abs(generic.X-fixed.X) > 1e-9 || math.Abs(generic.Y-fixed.Y) > 1e-9 {
		t.Errorf("Rotate30 = %v, generic = %v", fixed, generic)
	}
}
