package geoconv_test

import (
	"math"
	"testing"

	"github.com/geomodels/geoconv"
)

func TestNewEllipsoidRejectsInvalid(t *testing.T) {
	tests := []struct {
		name          string
		semiMajorAxis float64
		flattening    float64
		code          geoconv.ErrorCode
	}{
		{"negative semi-major axis", -1.0, 0.1, geoconv.ErrInvalidEllipsoid},
		{"zero semi-major axis", 0, 0.1, geoconv.ErrInvalidEllipsoid},
		{"flattening of one", 1.0, 1.0, geoconv.ErrInvalidEllipsoid},
		{"flattening above one", 6378137, 1.5, geoconv.ErrInvalidEllipsoid},
		{"negative flattening", 6378137, -0.1, geoconv.ErrInvalidEllipsoid},
		{"NaN semi-major axis", math.NaN(), 0.1, geoconv.ErrNonFiniteValue},
		{"infinite semi-major axis", math.Inf(1), 0.1, geoconv.ErrNonFiniteValue},
		{"NaN flattening", 6378137, math.NaN(), geoconv.ErrNonFiniteValue},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := geoconv.NewEllipsoid(tc.semiMajorAxis, tc.flattening)
			expectCode(t, err, tc.code)
		})
	}
}

func TestEllipsoidDerivedConstants(t *testing.T) {
	const e2 = 0.0066943799901413165
	if got := geoconv.WGS84.EccentricitySquared(); math.Abs(got-e2) > 1e-15 {
		t.Fatalf("expected WGS84 eccentricity squared %v, got %v", e2, got)
	}
	const b = 6356752.314245179
	if got := geoconv.WGS84.SemiMinorAxis(); math.Abs(got-b) > 1e-6 {
		t.Fatalf("expected WGS84 semi-minor axis %v, got %v", b, got)
	}
}

func TestSphereHasZeroEccentricity(t *testing.T) {
	sphere, err := geoconv.NewEllipsoid(6371000, 0)
	if err != nil {
		t.Fatalf("error creating spherical ellipsoid: %s", err)
	}
	if sphere.EccentricitySquared() != 0 {
		t.Fatalf("expected zero eccentricity for a sphere, got %v", sphere.EccentricitySquared())
	}
	if sphere.SemiMinorAxis() != sphere.SemiMajorAxis() {
		t.Fatalf("expected equal axes for a sphere, got %v and %v",
			sphere.SemiMinorAxis(), sphere.SemiMajorAxis())
	}
}

func TestNamedEllipsoids(t *testing.T) {
	if geoconv.WGS84.SemiMajorAxis() != 6378137 {
		t.Fatalf("expected WGS84 semi-major axis 6378137, got %v", geoconv.WGS84.SemiMajorAxis())
	}
	if geoconv.WGS84.Flattening() != 1/298.257223563 {
		t.Fatalf("expected WGS84 flattening 1/298.257223563, got %v", geoconv.WGS84.Flattening())
	}
	if geoconv.GRS80.Flattening() != 1/298.257222101 {
		t.Fatalf("expected GRS80 flattening 1/298.257222101, got %v", geoconv.GRS80.Flattening())
	}
	if geoconv.International1924.SemiMajorAxis() != 6378388 {
		t.Fatalf("expected International 1924 semi-major axis 6378388, got %v",
			geoconv.International1924.SemiMajorAxis())
	}
	if geoconv.International1924.Flattening() != 1.0/297 {
		t.Fatalf("expected International 1924 flattening 1/297, got %v",
			geoconv.International1924.Flattening())
	}
}
