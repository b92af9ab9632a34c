//go:build cgo

// Package cxform binds the C CXFORM library as a rotation backend.
//
// CXFORM converts one vector per call, so this package performs the batch
// broadcast loop itself. The library uses no global state and is safe for
// concurrent use.
package cxform

/*
#cgo LDFLAGS: -lcxform

#include <stdlib.h>

typedef double Vec[3];

// One-shot conversion between two named frames at ephemeris time et.
// Returns nonzero when either frame name is not recognized.
extern int cxform(const char *from, const char *to, const double et, Vec v_in, Vec v_out);

// Ephemeris seconds (TT seconds from J2000) for a calendar instant.
extern long date2es(int yyyy, int mm, int dd, int hh, int mm2, int ss);
*/
import "C"

import (
	"fmt"
	"strings"
	"time"
	"unsafe"

	"github.com/hupe1980/hxform/backend"
	"github.com/hupe1980/hxform/epoch"
)

func init() {
	backend.Register(&cx{})
}

type cx struct{}

func (c *cx) Name() string { return backend.CXForm }

func (c *cx) Transform(vs [][3]float64, code string, epochs []epoch.Encoded, outsize int) ([][3]float64, error) {
	from, to, ok := strings.Cut(code, "to")
	if !ok {
		return nil, fmt.Errorf("cxform: malformed transform code %q", code)
	}
	cFrom := C.CString(from)
	cTo := C.CString(to)
	defer C.free(unsafe.Pointer(cFrom))
	defer C.free(unsafe.Pointer(cTo))

	out := make([][3]float64, outsize)
	for i := range out {
		v := vs[0]
		if len(vs) > 1 {
			v = vs[i]
		}
		e := epochs[0]
		if len(epochs) > 1 {
			e = epochs[i]
		}

		// CXFORM wants a calendar date; recover month/day from day-of-year.
		d := time.Date(e[0], time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, e[1]-1)
		et := C.date2es(C.int(e[0]), C.int(d.Month()), C.int(d.Day()), C.int(e[2]), C.int(e[3]), C.int(e[4]))

		var in, res C.Vec
		in[0], in[1], in[2] = C.double(v[0]), C.double(v[1]), C.double(v[2])
		if rc := C.cxform(cFrom, cTo, C.double(et), &in[0], &res[0]); rc != 0 {
			return nil, fmt.Errorf("cxform %s to %s failed with code %d", from, to, int(rc))
		}
		out[i] = [3]float64{float64(res[0]), float64(res[1]), float64(res[2])}
	}
	return out, nil
}
