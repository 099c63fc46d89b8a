package geoconv

import "fmt"

// WGS84 is the World Geodetic System 1984 reference ellipsoid, the datum
// used by GPS.
var WGS84 Ellipsoid

// GRS80 is the Geodetic Reference System 1980 reference ellipsoid.
var GRS80 Ellipsoid

// International1924 is the International 1924 (Hayford) reference ellipsoid.
var International1924 Ellipsoid

func init() {
	var err error
	WGS84, err = NewEllipsoid(6378137, 1/298.257223563)
	if err != nil {
		panic(fmt.Sprintf("error constructing WGS84 ellipsoid: %s", err))
	}
	GRS80, err = NewEllipsoid(6378137, 1/298.257222101)
	if err != nil {
		panic(fmt.Sprintf("error constructing GRS80 ellipsoid: %s", err))
	}
	International1924, err = NewEllipsoid(6378388, 1.0/297)
	if err != nil {
		panic(fmt.Sprintf("error constructing International 1924 ellipsoid: %s", err))
	}
}
