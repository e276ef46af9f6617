package scene

import "fmt"

// ValidationSeverity indicates whether a finding blocks use of the scene
// or is merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // blocks use
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding.
type ValidationError struct {
	EntryID  EntryID // zero if scene-level
	Message  string
	Severity ValidationSeverity
}

func (e ValidationError) Error() string {
	if e.EntryID.IsZero() {
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("[%s] shape %s: %s", e.Severity, e.EntryID.Short(), e.Message)
}

// ValidationWarning describes a non-blocking finding.
type ValidationWarning struct {
	EntryID EntryID
	Message string
}

// ValidationResult bundles errors and warnings from every tier.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// OK reports whether the result carries no errors.
func (r ValidationResult) OK() bool {
	return len(r.Errors) == 0
}

// Validate runs the Tier 1 structural checks and returns every finding.
// It never mutates the scene.
func Validate(sc *Scene) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateEntries(sc)...)
	errs = append(errs, validateNames(sc)...)
	errs = append(errs, validateOrder(sc)...)
	return errs
}

// ValidateAll runs the structural and geometric tiers and separates
// errors from warnings.
func ValidateAll(sc *Scene) ValidationResult {
	var result ValidationResult
	for _, e := range Validate(sc) {
		if e.Severity == SeverityWarning {
			result.Warnings = append(result.Warnings, ValidationWarning{
				EntryID: e.EntryID,
				Message: e.Message,
			})
		} else {
			result.Errors = append(result.Errors, e)
		}
	}

	geoErrs, geoWarnings := validateGeometry(sc)
	result.Errors = append(result.Errors, geoErrs...)
	result.Warnings = append(result.Warnings, geoWarnings...)

	return result
}

// validateEntries checks that each entry is keyed by its own
// name-derived ID and carries a shape and a known op.
func validateEntries(sc *Scene) []ValidationError {
	var errs []ValidationError
	for id, e := range sc.Entries {
		if e.ID != id {
			errs = append(errs, ValidationError{
				EntryID:  id,
				Message:  fmt.Sprintf("entry stored under %s but has id %s", id.Short(), e.ID.Short()),
				Severity: SeverityError,
			})
		}
		if e.Name == "" {
			errs = append(errs, ValidationError{
				EntryID:  id,
				Message:  "entry has an empty name",
				Severity: SeverityError,
			})
		} else if NewEntryID(e.Name) != e.ID {
			errs = append(errs, ValidationError{
				EntryID:  id,
				Message:  fmt.Sprintf("id does not match name %q", e.Name),
				Severity: SeverityError,
			})
		}
		if e.Shape == nil {
			errs = append(errs, ValidationError{
				EntryID:  id,
				Message:  fmt.Sprintf("entry %q has no shape", e.Name),
				Severity: SeverityError,
			})
		}
		if e.Op < OpUnion || e.Op > OpIntersection {
			errs = append(errs, ValidationError{
				EntryID:  id,
				Message:  fmt.Sprintf("entry %q has unknown op %s", e.Name, e.Op),
				Severity: SeverityError,
			})
		}
	}
	return errs
}

// validateNames checks that NameIndex and the entries agree.
func validateNames(sc *Scene) []ValidationError {
	var errs []ValidationError

	for name, id := range sc.NameIndex {
		e, ok := sc.Entries[id]
		if !ok {
			errs = append(errs, ValidationError{
				Message:  fmt.Sprintf("name index entry %q references non-existent shape %s", name, id.Short()),
				Severity: SeverityError,
			})
			continue
		}
		if e.Name != name {
			errs = append(errs, ValidationError{
				EntryID:  id,
				Message:  fmt.Sprintf("name index entry %q points at shape named %q", name, e.Name),
				Severity: SeverityError,
			})
		}
	}

	for id, e := range sc.Entries {
		if e.Name == "" {
			continue
		}
		if indexed, ok := sc.NameIndex[e.Name]; !ok || indexed != id {
			errs = append(errs, ValidationError{
				EntryID:  id,
				Message:  fmt.Sprintf("shape %q is missing from the name index", e.Name),
				Severity: SeverityError,
			})
		}
	}

	return errs
}

// validateOrder checks that Order lists every entry exactly once.
func validateOrder(sc *Scene) []ValidationError {
	var errs []ValidationError

	seen := make(map[EntryID]bool, len(sc.Order))
	for _, id := range sc.Order {
		if seen[id] {
			errs = append(errs, ValidationError{
				EntryID:  id,
				Message:  "shape appears more than once in the scene order",
				Severity: SeverityError,
			})
			continue
		}
		seen[id] = true
		if _, ok := sc.Entries[id]; !ok {
			errs = append(errs, ValidationError{
				Message:  fmt.Sprintf("order references non-existent shape %s", id.Short()),
				Severity: SeverityError,
			})
		}
	}

	for id, e := range sc.Entries {
		if !seen[id] {
			errs = append(errs, ValidationError{
				EntryID:  id,
				Message:  fmt.Sprintf("shape %q is not in the scene order", e.Name),
				Severity: SeverityWarning,
			})
		}
	}

	return errs
}
