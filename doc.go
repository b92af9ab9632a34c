// Package hxform converts 3-vectors between heliophysical and geomagnetic
// reference frames (MAG, GEI, GEO, GSE, GSM, SM) and derives magnetic local
// time from magnetic longitude.
//
// The rotation matrices themselves come from external native libraries — the
// Fortran geopack_08_dp library and the C CXFORM library — reached through
// the backend package and treated as black boxes. This package supplies the
// batching, broadcasting, representation conversion and dispatch around
// them.
//
// # Quick Start
//
// Transform one vector at one epoch:
//
//	v, err := hxform.Transform(
//	    hxform.Vector{0, 0, 1},
//	    hxform.Time{2000, 1, 1, 0, 0, 0},
//	    frame.GSM, frame.GSE,
//	)
//
// Batched calls broadcast a single vector or a single epoch across the
// other side:
//
//	// One vector at two epochs: two output vectors.
//	out, err := hxform.TransformBatch(
//	    []hxform.Vector{{0, 0, 1}},
//	    []hxform.Time{{2000, 1, 1}, {2000, 1, 2}},
//	    frame.GSM, frame.GSE,
//	)
//
// Every ordered frame pair also has a shorthand:
//
//	out, err := hxform.GSMtoGSE(vs, ts)
//
// Spherical input or output (r, latitude, longitude, degrees):
//
//	out, err := hxform.Transform(v, t, frame.GEO, frame.MAG,
//	    hxform.WithReprIn(coords.Spherical),
//	    hxform.WithReprOut(coords.Spherical),
//	)
//
// Magnetic local time from a MAG longitude:
//
//	mlt, err := hxform.MagToMLT(0, hxform.Time{2000, 1, 1, 0, 0, 0})
//
// # Backends
//
// Two interchangeable native backends are supported, selected by name with
// WithBackend: backend.Geopack08DP (default) and backend.CXForm. Both
// require cgo and their native library at link time; without them the call
// fails with ErrBackendUnavailable. Whether a backend may be called
// concurrently depends on the native library and is documented per backend
// package.
package hxform
