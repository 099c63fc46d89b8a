package geoconv

import (
	"fmt"
	"math"
)

// ErrorCode identifies the class of a conversion or validation failure.
type ErrorCode int

// Error codes
const (
	// ErrInvalidEllipsoid indicates a non-positive semi-major axis or a
	// flattening outside [0, 1).
	ErrInvalidEllipsoid ErrorCode = iota + 1
	// ErrLatitudeOutOfRange indicates a latitude outside [-π/2, π/2].
	ErrLatitudeOutOfRange
	// ErrNonFiniteValue indicates a NaN or infinite constructor input.
	ErrNonFiniteValue
	// ErrDegenerateInput indicates an ECEF point at the center of the
	// ellipsoid, which has no defined latitude or longitude.
	ErrDegenerateInput
	// ErrDidNotConverge indicates the inverse transform exhausted its
	// iteration cap before meeting tolerance.
	ErrDidNotConverge
)

func (c ErrorCode) String() string {
	switch c {
	case ErrInvalidEllipsoid:
		return "invalid ellipsoid"
	case ErrLatitudeOutOfRange:
		return "latitude out of range"
	case ErrNonFiniteValue:
		return "non-finite value"
	case ErrDegenerateInput:
		return "degenerate input"
	case ErrDidNotConverge:
		return "did not converge"
	}
	return fmt.Sprintf("unknown error code %d", int(c))
}

// Error is a conversion or validation failure. Field and Value carry the
// offending input where one exists.
type Error struct {
	Code  ErrorCode
	Field string
	Value float64
}

func (e *Error) Error() string {
	switch e.Code {
	case ErrDegenerateInput:
		return "degenerate input: point at the ellipsoid center has no geodetic coordinate"
	case ErrDidNotConverge:
		return fmt.Sprintf("did not converge: latitude iteration stopped at %v rad after %d iterations",
			e.Value, maxInverseIterations)
	}
	return fmt.Sprintf("%s: %s = %v", e.Code, e.Field, e.Value)
}

// Is reports whether target is an *Error with the same code, so callers can
// match failure classes with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
