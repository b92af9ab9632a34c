package hxform

import (
	"errors"

	"github.com/hupe1980/hxform/backend"
	_ "github.com/hupe1980/hxform/backend/cxform"  // register cxform
	_ "github.com/hupe1980/hxform/backend/geopack" // register geopack_08_dp
	"github.com/hupe1980/hxform/coords"
	"github.com/hupe1980/hxform/epoch"
	"github.com/hupe1980/hxform/frame"
	"github.com/hupe1980/hxform/internal/shape"
)

// Vector is a 3-vector, read as (x, y, z) in the cartesian representation or
// (r, latitude_deg, longitude_deg) in the spherical one.
type Vector = [3]float64

// Time is a calendar timestamp [year, month, day, hour, minute, second, ...].
// At least three fields are required; missing trailing fields default to
// zero and fields beyond the seventh are ignored.
type Time = []int

// Transform converts a single vector between reference frames at a single
// epoch. See TransformBatch for the batched form.
func Transform(v Vector, t Time, from, to frame.Frame, opts ...Option) (Vector, error) {
	out, err := TransformBatch([]Vector{v}, []Time{t}, from, to, opts...)
	if err != nil {
		return Vector{}, err
	}
	return out[0], nil
}

// TransformBatch converts a batch of vectors between reference frames at a
// batch of epochs.
//
// A side of length 1 is broadcast across the other: one vector at N epochs
// or N vectors at one epoch both yield N output vectors. If both sides have
// length > 1 their lengths must match. The output always has
// max(len(vs), len(ts)) rows.
func TransformBatch(vs []Vector, ts []Time, from, to frame.Frame, opts ...Option) ([]Vector, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	code, err := frame.TransformCode(from, to)
	if err != nil {
		return nil, translateError(err)
	}
	if !o.reprIn.Valid() || !o.reprOut.Valid() {
		return nil, translateError(coords.ErrUnknownRepresentation)
	}

	n, ok := shape.Resolve(len(vs), len(ts))
	if !ok {
		if len(vs) == 0 || len(ts) == 0 {
			return nil, translateError(epoch.ErrInvalidTime)
		}
		return nil, &ErrShapeMismatch{Nv: len(vs), Nt: len(ts)}
	}

	// Each epoch row is encoded independently; a 2-D time batch is never
	// reduced to its first row.
	encs := make([]epoch.Encoded, len(ts))
	for i, t := range ts {
		enc, err := epoch.ToDayOfYear(t)
		if err != nil {
			return nil, translateError(err)
		}
		encs[i] = enc
	}

	// Backends operate on cartesian vectors only.
	work := make([]Vector, len(vs))
	copy(work, vs)
	if o.reprIn == coords.Spherical {
		coords.ToCartesianRows(work)
	}

	be, err := backend.Lookup(o.backend)
	if err != nil {
		return nil, translateError(err)
	}

	var out []Vector
	if from == to {
		// Identity rotations never reach the native routine.
		out = shape.BroadcastRows(work, n)
	} else {
		out, err = be.Transform(work, code, encs, n)
		if err != nil {
			var ua *backend.UnavailableError
			if errors.As(err, &ua) {
				err = translateError(err)
			} else {
				err = &ErrBackend{Backend: o.backend, cause: err}
			}
			o.logger.LogTransform(code, o.backend, len(vs), len(ts), n, err)
			return nil, err
		}
	}

	if o.reprOut == coords.Spherical {
		coords.ToSphericalRows(out)
	}

	o.logger.LogTransform(code, o.backend, len(vs), len(ts), n, nil)
	return out, nil
}

// HoursToHMS converts universal time in fractional hours into integer
// (hour, minute, second). A result of exactly 24h is reported as (0, 0, 0)
// unless keep24 is set. See epoch.HoursToHMS.
func HoursToHMS(ut float64, keep24 bool) (hour, minute, second int, err error) {
	hour, minute, second, err = epoch.HoursToHMS(ut, keep24)
	return hour, minute, second, translateError(err)
}
