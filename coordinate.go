package geoconv

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Coordinate is a geodetic coordinate: latitude, longitude and altitude in
// meters above the surface of a reference ellipsoid. It is an immutable value
// type; equality with == is exact floating-point comparison, callers needing
// approximate equality must apply their own epsilon.
type Coordinate struct {
	lat, lng s1.Angle
	altitude float64
	ell      Ellipsoid
}

// NewCoordinate constructs a Coordinate on the given ellipsoid. Latitude
// outside [-π/2, π/2] is rejected, longitude is wrapped into (-π, π], and
// altitude may be negative (below the ellipsoid surface) but must be finite.
func NewCoordinate(lat, lng s1.Angle, altitude float64, ell Ellipsoid) (Coordinate, error) {
	if !isFinite(lat.Radians()) {
		return Coordinate{}, &Error{Code: ErrNonFiniteValue, Field: "latitude", Value: lat.Radians()}
	}
	if !isFinite(lng.Radians()) {
		return Coordinate{}, &Error{Code: ErrNonFiniteValue, Field: "longitude", Value: lng.Radians()}
	}
	if !isFinite(altitude) {
		return Coordinate{}, &Error{Code: ErrNonFiniteValue, Field: "altitude", Value: altitude}
	}
	if math.Abs(lat.Radians()) > math.Pi/2 {
		return Coordinate{}, &Error{Code: ErrLatitudeOutOfRange, Field: "latitude", Value: lat.Radians()}
	}
	return Coordinate{
		lat:      lat,
		lng:      wrapLongitude(lng),
		altitude: altitude,
		ell:      ell,
	}, nil
}

// NewCoordinateFromDegrees constructs a Coordinate from a latitude and
// longitude in degrees and an altitude in meters.
func NewCoordinateFromDegrees(latDeg, lngDeg, altitude float64, ell Ellipsoid) (Coordinate, error) {
	ll := s2.LatLngFromDegrees(latDeg, lngDeg)
	return NewCoordinate(ll.Lat, ll.Lng, altitude, ell)
}

// NewCoordinateFromLatLng constructs a Coordinate from an s2.LatLng and an
// altitude in meters.
func NewCoordinateFromLatLng(ll s2.LatLng, altitude float64, ell Ellipsoid) (Coordinate, error) {
	return NewCoordinate(ll.Lat, ll.Lng, altitude, ell)
}

// wrapLongitude maps any finite longitude onto (-π, π].
func wrapLongitude(lng s1.Angle) s1.Angle {
	r := math.Remainder(lng.Radians(), 2*math.Pi)
	if r <= -math.Pi {
		r += 2 * math.Pi
	}
	return s1.Angle(r)
}

// Latitude returns the geodetic latitude.
func (c Coordinate) Latitude() s1.Angle { return c.lat }

// Longitude returns the longitude, wrapped into (-π, π].
func (c Coordinate) Longitude() s1.Angle { return c.lng }

// Altitude returns the height above the ellipsoid surface in meters.
func (c Coordinate) Altitude() float64 { return c.altitude }

// Ellipsoid returns the reference ellipsoid the coordinate is expressed on.
func (c Coordinate) Ellipsoid() Ellipsoid { return c.ell }

// LatLng returns the latitude and longitude as an s2.LatLng.
func (c Coordinate) LatLng() s2.LatLng {
	return s2.LatLng{Lat: c.lat, Lng: c.lng}
}

// GeocentricLatitude returns the geocentric latitude, the angle between the
// equatorial plane and the line from the ellipsoid center through the point
// on the surface below the coordinate. It is equal to the geodetic latitude
// at the equator and the poles and smaller in magnitude everywhere else.
func (c Coordinate) GeocentricLatitude() s1.Angle {
	return s1.Angle(math.Atan((1 - c.ell.EccentricitySquared()) * math.Tan(c.lat.Radians())))
}
