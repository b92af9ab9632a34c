//go:build !cgo

package geopack

import (
	"github.com/hupe1980/hxform/backend"
	"github.com/hupe1980/hxform/epoch"
)

func init() {
	backend.Register(unavailable{})
}

// unavailable stands in for the Fortran binding in builds without cgo so
// selecting geopack fails loudly at call time instead of at link time.
type unavailable struct{}

func (unavailable) Name() string { return backend.Geopack08DP }

func (unavailable) Transform([][3]float64, string, []epoch.Encoded, int) ([][3]float64, error) {
	return nil, &backend.UnavailableError{
		Backend: backend.Geopack08DP,
		Reason:  "built without cgo; the geopack_08_dp Fortran library is not linked",
	}
}
