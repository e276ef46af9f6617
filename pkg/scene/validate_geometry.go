package scene

import (
	"fmt"
	"math"

	"github.com/chazu/planar/pkg/shape"
)

// ---------------------------------------------------------------------------
// Tier 2: Geometric validation (errors + warnings)
// ---------------------------------------------------------------------------

// validateGeometry reports every shape whose parameters fall outside its
// geometric domain as errors, and suspicious but computable ones as
// warnings.
func validateGeometry(sc *Scene) ([]ValidationError, []ValidationWarning) {
	var errs []ValidationError
	var warnings []ValidationWarning

	for _, e := range sc.Shapes() {
		if e.Shape == nil {
			continue // reported by Tier 1
		}
		for _, err := range splitJoined(shape.Validate(e.Shape)) {
			errs = append(errs, ValidationError{
				EntryID:  e.ID,
				Message:  fmt.Sprintf("%s: %v", e.Name, err),
				Severity: SeverityError,
			})
		}
		warnings = append(warnings, geometryWarnings(e)...)
	}

	return errs, warnings
}

// splitJoined flattens an errors.Join result into its parts.
func splitJoined(err error) []error {
	if err == nil {
		return nil
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}

func geometryWarnings(e *Entry) []ValidationWarning {
	var warnings []ValidationWarning

	switch s := e.Shape.(type) {
	case shape.Rectangle:
		half := s.HalfExtents()
		limit := math.Min(half.X, half.Y)
		if limit > 0 && s.RoundFactors().Max() > limit {
			warnings = append(warnings, ValidationWarning{
				EntryID: e.ID,
				Message: fmt.Sprintf("%s: round factor %.4f exceeds half extent %.4f", e.Name, s.RoundFactors().Max(), limit),
			})
		}
	case shape.Circle:
		if s.Radius() == 0 {
			warnings = append(warnings, ValidationWarning{
				EntryID: e.ID,
				Message: fmt.Sprintf("%s: circle has zero radius", e.Name),
			})
		}
	case shape.Hexagon:
		if s.Circumradius() == 0 {
			warnings = append(warnings, ValidationWarning{
				EntryID: e.ID,
				Message: fmt.Sprintf("%s: hexagon has zero circumradius", e.Name),
			})
		}
	}

	return warnings
}
