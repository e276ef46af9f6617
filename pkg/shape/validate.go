package shape

import (
	"errors"
	"fmt"
)

// Sentinel validation errors. Validate wraps them with the offending value.
var (
	ErrNegativeRadius       = errors.New("radius is negative")
	ErrNonPositiveDimension = errors.New("dimension must be positive")
	ErrNegativeRoundFactor  = errors.New("round factor is negative")
	ErrUnknownOrientation   = errors.New("unknown hexagon orientation")
	ErrUnknownKind          = errors.New("unknown shape kind")
)

// Validate reports parameters outside the circle's geometric domain.
// NaN is never in range.
func (c Circle) Validate() error {
	if !(c.radius >= 0) {
		return fmt.Errorf("circle: %w: %g", ErrNegativeRadius, c.radius)
	}
	return nil
}

// Validate reports parameters outside the rectangle's geometric domain.
// Round factors larger than the half extents are legal here; the scene
// reports them as warnings.
func (r Rectangle) Validate() error {
	var errs []error
	if !(r.dimensions.X > 0) {
		errs = append(errs, fmt.Errorf("rectangle: width: %w: %g", ErrNonPositiveDimension, r.dimensions.X))
	}
	if !(r.dimensions.Y > 0) {
		errs = append(errs, fmt.Errorf("rectangle: height: %w: %g", ErrNonPositiveDimension, r.dimensions.Y))
	}
	corners := []struct {
		name  string
		value float64
	}{
		{"top-left", r.roundFactors.TopLeft},
		{"top-right", r.roundFactors.TopRight},
		{"bottom-left", r.roundFactors.BottomLeft},
		{"bottom-right", r.roundFactors.BottomRight},
	}
	for _, c := range corners {
		if !(c.value >= 0) {
			errs = append(errs, fmt.Errorf("rectangle: %s: %w: %g", c.name, ErrNegativeRoundFactor, c.value))
		}
	}
	return errors.Join(errs...)
}

// Validate reports parameters outside the hexagon's geometric domain.
func (h Hexagon) Validate() error {
	var errs []error
	if !(h.circumradius >= 0) {
		errs = append(errs, fmt.Errorf("hexagon: %w: %g", ErrNegativeRadius, h.circumradius))
	}
	if h.orientation != Horizontal && h.orientation != Vertical {
		errs = append(errs, fmt.Errorf("hexagon: %w: %d", ErrUnknownOrientation, int(h.orientation)))
	}
	return errors.Join(errs...)
}

// Validate dispatches to the variant's own Validate.
func Validate(s Shape) error {
	switch v := s.(type) {
	case Circle:
		return v.Validate()
	case Rectangle:
		return v.Validate()
	case Hexagon:
		return v.Validate()
	}
	return fmt.Errorf("%w: %T", ErrUnknownKind, s)
}
