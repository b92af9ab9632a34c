//go:build cgo

// Package geopack binds the Fortran geopack_08_dp library (double-precision
// Geopack-2008 with IGRF coefficients) as a rotation backend.
//
// The Fortran side owns all of the physics; this package only marshals
// batches across the call boundary. geopack_08_dp keeps its IGRF state in
// common blocks, so this backend is NOT safe for concurrent use.
package geopack

/*
#cgo LDFLAGS: -lgeopack_08_dp -lgfortran

// Batched transform entry point from the geopack_08_dp wrapper library.
// v is nv rows of 3 doubles, dtime is nt rows of 5 ints
// [year, doy, hour, min, sec], out receives outsize rows of 3 doubles.
// ierr is set nonzero when trans is not a recognized frame-pair code.
// trans_len is the hidden Fortran character-length argument.
extern void transform_(double *v, int *nv, char *trans, int *dtime, int *nt,
                       int *outsize, double *out, int *ierr, long trans_len);
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/hupe1980/hxform/backend"
	"github.com/hupe1980/hxform/epoch"
)

func init() {
	backend.Register(&geopack{})
}

type geopack struct{}

func (g *geopack) Name() string { return backend.Geopack08DP }

func (g *geopack) Transform(vs [][3]float64, code string, epochs []epoch.Encoded, outsize int) ([][3]float64, error) {
	flatV := make([]float64, 3*len(vs))
	for i, v := range vs {
		copy(flatV[3*i:], v[:])
	}

	flatT := make([]int32, 5*len(epochs))
	for i, e := range epochs {
		for j, field := range e {
			flatT[5*i+j] = int32(field)
		}
	}

	trans := []byte(code)
	out := make([]float64, 3*outsize)

	nv := C.int(len(vs))
	nt := C.int(len(epochs))
	osz := C.int(outsize)
	var ierr C.int

	C.transform_(
		(*C.double)(unsafe.Pointer(&flatV[0])),
		&nv,
		(*C.char)(unsafe.Pointer(&trans[0])),
		(*C.int)(unsafe.Pointer(&flatT[0])),
		&nt,
		&osz,
		(*C.double)(unsafe.Pointer(&out[0])),
		&ierr,
		C.long(len(trans)),
	)
	if ierr != 0 {
		return nil, fmt.Errorf("geopack_08_dp transform %q failed with code %d", code, int(ierr))
	}

	rows := make([][3]float64, outsize)
	for i := range rows {
		copy(rows[i][:], out[3*i:3*i+3])
	}
	return rows, nil
}
