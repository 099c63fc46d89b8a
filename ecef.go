package geoconv

import (
	"github.com/golang/geo/r3"
)

// Ecef is an earth-centered, earth-fixed Cartesian coordinate in meters. The
// x axis passes through the prime meridian at the equator, the y axis through
// 90° east at the equator, and the z axis through the north pole. Any finite
// point is representable, including points with no geodetic meaning; those
// are rejected by the inverse transform, not by construction.
type Ecef struct {
	v r3.Vector
}

// NewEcef constructs an Ecef from x, y and z components in meters.
func NewEcef(x, y, z float64) (Ecef, error) {
	if !isFinite(x) {
		return Ecef{}, &Error{Code: ErrNonFiniteValue, Field: "x", Value: x}
	}
	if !isFinite(y) {
		return Ecef{}, &Error{Code: ErrNonFiniteValue, Field: "y", Value: y}
	}
	if !isFinite(z) {
		return Ecef{}, &Error{Code: ErrNonFiniteValue, Field: "z", Value: z}
	}
	return Ecef{r3.Vector{X: x, Y: y, Z: z}}, nil
}

// NewEcefFromVector constructs an Ecef from an r3.Vector in meters.
func NewEcefFromVector(v r3.Vector) (Ecef, error) {
	return NewEcef(v.X, v.Y, v.Z)
}

// X returns the x component in meters.
func (e Ecef) X() float64 { return e.v.X }

// Y returns the y component in meters.
func (e Ecef) Y() float64 { return e.v.Y }

// Z returns the z component in meters.
func (e Ecef) Z() float64 { return e.v.Z }

// Vector returns the point as an r3.Vector.
func (e Ecef) Vector() r3.Vector { return e.v }

// Distance returns the straight-line distance to other in meters.
func (e Ecef) Distance(other Ecef) float64 { return e.v.Distance(other.v) }

// Sub returns the component-wise difference e - other.
func (e Ecef) Sub(other Ecef) Ecef { return Ecef{e.v.Sub(other.v)} }

// Cross returns the cross product of the two points taken as vectors from
// the ellipsoid center.
func (e Ecef) Cross(other Ecef) Ecef { return Ecef{e.v.Cross(other.v)} }

// Norm returns the distance from the ellipsoid center in meters.
func (e Ecef) Norm() float64 { return e.v.Norm() }

// Norm2 returns the squared distance from the ellipsoid center.
func (e Ecef) Norm2() float64 { return e.v.Norm2() }

// ApproxEqual reports whether the two points are within epsilon meters of
// each other.
func (e Ecef) ApproxEqual(other Ecef, epsilon float64) bool {
	return e.Distance(other) < epsilon
}

// Collinear reports whether every point lies within epsilon meters of a
// single straight line. Fewer than three points, or points that all lie
// within epsilon of the first, are trivially collinear.
func Collinear(points []Ecef, epsilon float64) bool {
	if len(points) < 3 {
		return true
	}
	p0 := points[0].v
	epsilon2 := epsilon * epsilon

	// direction of the candidate line: the first point far enough from p0
	var dir r3.Vector
	found := false
	for _, p := range points[1:] {
		d := p.v.Sub(p0)
		if d.Norm2() > epsilon2 {
			dir = d
			found = true
			break
		}
	}
	if !found {
		return true
	}

	dirNorm2 := dir.Norm2()
	for _, p := range points[1:] {
		d := p.v.Sub(p0)
		// squared distance from the line through p0 along dir
		if d.Cross(dir).Norm2()/dirNorm2 > epsilon2 {
			return false
		}
	}
	return true
}
