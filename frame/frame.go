// Package frame defines the geomagnetic and heliospheric reference frames
// supported by hxform and the frame-pair codes understood by the rotation
// backends.
package frame

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned when a frame name or value is not one of the
// supported reference frames.
var ErrUnsupported = errors.New("unsupported frame")

// Frame identifies a 3-D reference coordinate system.
type Frame int

const (
	// MAG is the geomagnetic dipole frame.
	MAG Frame = iota
	// GEI is the geocentric equatorial inertial frame.
	GEI
	// GEO is the geographic (Earth-fixed) frame.
	GEO
	// GSE is the geocentric solar ecliptic frame.
	GSE
	// GSM is the geocentric solar magnetospheric frame.
	GSM
	// SM is the solar magnetic frame.
	SM
)

// All lists every supported frame.
var All = []Frame{MAG, GEI, GEO, GSE, GSM, SM}

func (f Frame) String() string {
	switch f {
	case MAG:
		return "MAG"
	case GEI:
		return "GEI"
	case GEO:
		return "GEO"
	case GSE:
		return "GSE"
	case GSM:
		return "GSM"
	case SM:
		return "SM"
	default:
		return fmt.Sprintf("Unknown(%d)", int(f))
	}
}

// Valid reports whether f is one of the supported frames.
func (f Frame) Valid() bool {
	return f >= MAG && f <= SM
}

// Parse returns the frame with the given name (e.g. "GSM").
func Parse(name string) (Frame, error) {
	switch name {
	case "MAG":
		return MAG, nil
	case "GEI":
		return GEI, nil
	case "GEO":
		return GEO, nil
	case "GSE":
		return GSE, nil
	case "GSM":
		return GSM, nil
	case "SM":
		return SM, nil
	default:
		return Frame(-1), fmt.Errorf("%w: %q", ErrUnsupported, name)
	}
}

// TransformCode builds the frame-pair code passed to a rotation backend,
// e.g. "GSMtoMAG". Identity pairs are valid codes.
func TransformCode(from, to Frame) (string, error) {
	if !from.Valid() {
		return "", fmt.Errorf("%w: %v", ErrUnsupported, from)
	}
	if !to.Valid() {
		return "", fmt.Errorf("%w: %v", ErrUnsupported, to)
	}
	return from.String() + "to" + to.String(), nil
}
