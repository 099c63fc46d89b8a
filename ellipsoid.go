package geoconv

// Ellipsoid is a reference ellipsoid described by its semi-major axis in
// meters and its flattening. It is immutable once constructed and cheap to
// copy; derived constants are computed once at construction.
type Ellipsoid struct {
	semiMajorAxis float64
	flattening    float64
	eccSquared    float64
}

// NewEllipsoid constructs a reference ellipsoid from the semi-major axis in
// meters and the flattening.
func NewEllipsoid(semiMajorAxis, flattening float64) (Ellipsoid, error) {
	if !isFinite(semiMajorAxis) {
		return Ellipsoid{}, &Error{Code: ErrNonFiniteValue, Field: "semiMajorAxis", Value: semiMajorAxis}
	}
	if !isFinite(flattening) {
		return Ellipsoid{}, &Error{Code: ErrNonFiniteValue, Field: "flattening", Value: flattening}
	}
	if semiMajorAxis <= 0 {
		return Ellipsoid{}, &Error{Code: ErrInvalidEllipsoid, Field: "semiMajorAxis", Value: semiMajorAxis}
	}
	if flattening < 0 || flattening >= 1 {
		return Ellipsoid{}, &Error{Code: ErrInvalidEllipsoid, Field: "flattening", Value: flattening}
	}
	return Ellipsoid{
		semiMajorAxis: semiMajorAxis,
		flattening:    flattening,
		eccSquared:    flattening * (2 - flattening),
	}, nil
}

// SemiMajorAxis returns the equatorial radius in meters.
func (e Ellipsoid) SemiMajorAxis() float64 { return e.semiMajorAxis }

// SemiMinorAxis returns the polar radius in meters.
func (e Ellipsoid) SemiMinorAxis() float64 { return e.semiMajorAxis * (1 - e.flattening) }

// Flattening returns the ellipsoid flattening (a-b)/a.
func (e Ellipsoid) Flattening() float64 { return e.flattening }

// EccentricitySquared returns the first eccentricity squared, f*(2-f).
func (e Ellipsoid) EccentricitySquared() float64 { return e.eccSquared }
