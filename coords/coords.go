// Package coords converts 3-vectors between cartesian and spherical
// representations.
//
// The spherical representation is (r, latitude, longitude) with angles in
// degrees. Latitude is geographic latitude (90° at the +Z pole), not
// colatitude, in both conversion directions. Longitude is in (-180°, 180°].
// At the origin (r = 0) latitude and longitude are undefined and both
// conversions return zeros there.
package coords

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownRepresentation is returned when a representation name or value is
// not recognized.
var ErrUnknownRepresentation = errors.New("unknown representation")

const (
	deg2rad = math.Pi / 180.0
	rad2deg = 180.0 / math.Pi
)

// Representation identifies how a 3-vector's components are to be read.
type Representation int

const (
	// Cartesian components are (x, y, z).
	Cartesian Representation = iota
	// Spherical components are (r, latitude_deg, longitude_deg).
	Spherical
)

func (r Representation) String() string {
	switch r {
	case Cartesian:
		return "car"
	case Spherical:
		return "sph"
	default:
		return fmt.Sprintf("Unknown(%d)", int(r))
	}
}

// Valid reports whether r is a known representation.
func (r Representation) Valid() bool {
	return r == Cartesian || r == Spherical
}

// ParseRepresentation returns the representation with the given short name,
// "car" or "sph".
func ParseRepresentation(name string) (Representation, error) {
	switch name {
	case "car":
		return Cartesian, nil
	case "sph":
		return Spherical, nil
	default:
		return Representation(-1), fmt.Errorf("%w: %q", ErrUnknownRepresentation, name)
	}
}

// CartesianToSpherical converts (x, y, z) to (r, latitude, longitude) with
// angles in degrees. Returns (0, 0, 0) for the zero vector.
func CartesianToSpherical(x, y, z float64) (r, lat, lon float64) {
	r = math.Sqrt(x*x + y*y + z*z)
	if r == 0 {
		return 0, 0, 0
	}
	lat = 90.0 - rad2deg*math.Acos(z/r)
	lon = rad2deg*math.Atan2(y, x)
	return r, lat, lon
}

// SphericalToCartesian converts (r, latitude, longitude), angles in degrees,
// to (x, y, z).
func SphericalToCartesian(r, lat, lon float64) (x, y, z float64) {
	x = r * math.Cos(deg2rad*lon) * math.Cos(deg2rad*lat)
	y = r * math.Sin(deg2rad*lon) * math.Cos(deg2rad*lat)
	z = r * math.Sin(deg2rad*lat)
	return x, y, z
}

// ToCartesianRows converts each (r, lat, lon) row to (x, y, z) in place.
func ToCartesianRows(rows [][3]float64) {
	for i := range rows {
		rows[i][0], rows[i][1], rows[i][2] = SphericalToCartesian(rows[i][0], rows[i][1], rows[i][2])
	}
}

// ToSphericalRows converts each (x, y, z) row to (r, lat, lon) in place.
func ToSphericalRows(rows [][3]float64) {
	for i := range rows {
		rows[i][0], rows[i][1], rows[i][2] = CartesianToSpherical(rows[i][0], rows[i][1], rows[i][2])
	}
}
