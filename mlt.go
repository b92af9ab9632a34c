package hxform

import (
	"math"

	"github.com/hupe1980/hxform/epoch"
	"github.com/hupe1980/hxform/frame"
	"github.com/hupe1980/hxform/internal/shape"
)

// MagToMLT computes magnetic local time (hours, [0, 24)) for a magnetic
// longitude in degrees at the given epoch.
//
// Uses equation 93 in Laundal and Richmond, 2016 (10.1007/s11214-016-0275-y):
// the subsolar point's magnetic longitude is found by rotating the GSM unit
// vector (1, 0, 0) into MAG, and the MLT is the wrapped phase difference
// mapped onto 24 hours.
func MagToMLT(lon float64, t Time, opts ...Option) (float64, error) {
	out, err := MagToMLTBatch([]float64{lon}, []Time{t}, opts...)
	if err != nil {
		return 0, err
	}
	return out[0], nil
}

// MagToMLTBatch is MagToMLT over batches of longitudes and epochs, with the
// same broadcasting rules as TransformBatch.
func MagToMLTBatch(lons []float64, ts []Time, opts ...Option) ([]float64, error) {
	phis := make([]float64, len(lons))
	for i, lon := range lons {
		phis[i] = lon * math.Pi / 180.0
	}
	return mltFromPhis(phis, ts, opts)
}

// MagVectorToMLT computes magnetic local time for a cartesian MAG position;
// only the vector's longitude atan2(y, x) enters the result.
func MagVectorToMLT(v Vector, t Time, opts ...Option) (float64, error) {
	out, err := MagVectorToMLTBatch([]Vector{v}, []Time{t}, opts...)
	if err != nil {
		return 0, err
	}
	return out[0], nil
}

// MagVectorToMLTBatch is MagVectorToMLT over batches of positions and
// epochs, with the same broadcasting rules as TransformBatch.
func MagVectorToMLTBatch(vs []Vector, ts []Time, opts ...Option) ([]float64, error) {
	phis := make([]float64, len(vs))
	for i, v := range vs {
		phis[i] = math.Atan2(v[1], v[0])
	}
	return mltFromPhis(phis, ts, opts)
}

func mltFromPhis(phis []float64, ts []Time, opts []Option) ([]float64, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	n, ok := shape.Resolve(len(phis), len(ts))
	if !ok {
		if len(phis) > 0 && len(ts) > 0 {
			return nil, &ErrShapeMismatch{Nv: len(phis), Nt: len(ts)}
		}
		return nil, translateError(epoch.ErrInvalidTime)
	}

	// One batched backend call finds the subsolar point in MAG at every
	// requested epoch.
	subsolar, err := TransformBatch([]Vector{{1, 0, 0}}, ts, frame.GSM, frame.MAG, WithBackend(o.backend), WithLogger(o.logger))
	if err != nil {
		o.logger.LogMLT(n, o.backend, err)
		return nil, err
	}

	phis = shape.BroadcastFloats(phis, n)
	subsolar = shape.BroadcastRows(subsolar, n)

	out := make([]float64, n)
	for i := range out {
		phiSub := math.Atan2(subsolar[i][1], subsolar[i][0])

		// Both phases lie in (-pi, pi], so one wrap pass suffices.
		delta := phis[i] - phiSub
		if delta > math.Pi {
			delta -= 2 * math.Pi
		} else if delta <= -math.Pi {
			delta += 2 * math.Pi
		}

		mlt := 12.0 + delta*24.0/(2.0*math.Pi)
		if mlt >= 24 {
			mlt -= 24
		}
		out[i] = mlt
	}

	o.logger.LogMLT(n, o.backend, nil)
	return out, nil
}
