//go:build !cgo

package cxform

import (
	"github.com/hupe1980/hxform/backend"
	"github.com/hupe1980/hxform/epoch"
)

func init() {
	backend.Register(unavailable{})
}

// unavailable stands in for the C binding in builds without cgo so selecting
// cxform fails loudly at call time instead of at link time.
type unavailable struct{}

func (unavailable) Name() string { return backend.CXForm }

func (unavailable) Transform([][3]float64, string, []epoch.Encoded, int) ([][3]float64, error) {
	return nil, &backend.UnavailableError{
		Backend: backend.CXForm,
		Reason:  "built without cgo; the CXFORM C library is not linked",
	}
}
