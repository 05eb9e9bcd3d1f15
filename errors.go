package outline

import "errors"

// Sentinel errors for dimension validation.
var (
	// ErrNonFinite is returned when a dimension is NaN or infinite.
	ErrNonFinite = errors.New("outline: dimension is not finite")

	// ErrNegative is returned when a dimension is negative.
	ErrNegative = errors.New("outline: dimension is negative")

	// ErrGeometry is returned when dimensions are finite and non-negative
	// but do not describe a drawable notched outline.
	ErrGeometry = errors.New("outline: inconsistent dimensions")
)

// DimensionError describes a single invalid dimension.
type DimensionError struct {
	Field  string  // Width, Height, LabelWidth or Radius
	Value  float64 // offending value
	Limit  float64 // bound that was violated, 0 when not applicable
	Reason string
	Err    error // one of the sentinel errors above
}

func (e *DimensionError) Error() string {
	return "outline: " + e.Field + " " + e.Reason
}

// Unwrap returns the sentinel error, so errors.Is matches it.
func (e *DimensionError) Unwrap() error {
	return e.Err
}
