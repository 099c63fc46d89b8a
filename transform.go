package geoconv

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

// inverseTolerance is the convergence tolerance of the latitude iteration in
// radians; 1e-12 rad is well under a millimeter on the ellipsoid surface.
const inverseTolerance = 1e-12

// maxInverseIterations bounds the latitude iteration. Points with a defined
// geodetic coordinate converge in a handful of iterations; exhausting the cap
// is surfaced as ErrDidNotConverge rather than returning the last iterate.
const maxInverseIterations = 20

// ToEcef converts the geodetic coordinate to an ECEF coordinate. The
// conversion is closed form and cannot fail for a valid Coordinate.
func (c Coordinate) ToEcef() Ecef {
	a := c.ell.SemiMajorAxis()
	e2 := c.ell.EccentricitySquared()

	sinLat, cosLat := math.Sincos(c.lat.Radians())
	sinLng, cosLng := math.Sincos(c.lng.Radians())

	// prime-vertical radius of curvature
	n := a / math.Sqrt(1-e2*sinLat*sinLat)

	return Ecef{r3.Vector{
		X: (n + c.altitude) * cosLat * cosLng,
		Y: (n + c.altitude) * cosLat * sinLng,
		Z: (n*(1-e2) + c.altitude) * sinLat,
	}}
}

// ToCoordinate converts the ECEF point to a geodetic coordinate on the given
// ellipsoid. Longitude has a direct solution; latitude and altitude are
// mutually dependent and solved by a bounded fixed-point iteration. The point
// at the exact center of the ellipsoid has no geodetic coordinate and is
// rejected with ErrDegenerateInput.
func (e Ecef) ToCoordinate(ell Ellipsoid) (Coordinate, error) {
	lat, lng, alt, _, err := ecefToGeodetic(e.v.X, e.v.Y, e.v.Z, ell)
	if err != nil {
		return Coordinate{}, err
	}
	// the constructor re-checks the result so that non-finite intermediates
	// from a degenerate ellipsoid surface as an error
	return NewCoordinate(s1.Angle(lat), s1.Angle(lng), alt, ell)
}

// ecefToGeodetic solves the inverse transform, returning latitude and
// longitude in radians, altitude in meters, and the number of iterations the
// latitude solution took.
func ecefToGeodetic(x, y, z float64, ell Ellipsoid) (lat, lng, alt float64, iterations int, err error) {
	p := math.Hypot(x, y)
	if p == 0 && z == 0 {
		return 0, 0, 0, 0, &Error{Code: ErrDegenerateInput}
	}

	a := ell.SemiMajorAxis()
	e2 := ell.EccentricitySquared()

	lng = math.Atan2(y, x)

	// geocentric approximation as the initial latitude estimate
	lat = math.Atan2(z, p*(1-ell.Flattening()))

	for iterations = 1; iterations <= maxInverseIterations; iterations++ {
		sinLat := math.Sin(lat)
		n := a / math.Sqrt(1-e2*sinLat*sinLat)
		next := math.Atan2(z+e2*n*sinLat, p)
		delta := math.Abs(next - lat)
		lat = next
		if delta < inverseTolerance {
			return lat, lng, altitudeAt(lat, p, z, ell), iterations, nil
		}
	}
	return 0, 0, 0, maxInverseIterations, &Error{Code: ErrDidNotConverge, Field: "latitude", Value: lat}
}

// altitudeAt computes the height above the ellipsoid for a converged
// latitude. Both forms are exact identities; divide by whichever of cos and
// sin is larger so precision does not collapse near the poles or the equator.
func altitudeAt(lat, p, z float64, ell Ellipsoid) float64 {
	sinLat, cosLat := math.Sincos(lat)
	e2 := ell.EccentricitySquared()
	n := ell.SemiMajorAxis() / math.Sqrt(1-e2*sinLat*sinLat)
	if cosLat >= math.Abs(sinLat) {
		return p/cosLat - n
	}
	return z/sinLat - n*(1-e2)
}
