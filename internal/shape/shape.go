// Package shape implements the batch-size resolution and row-broadcasting
// rules shared by the transform pipeline.
package shape

// Resolve returns the output batch length for a vector batch of length nv
// and an epoch batch of length nt. A side of length 1 is broadcast to the
// other side's length. Both sides longer than 1 must match; ok is false
// otherwise. Zero-length batches never resolve.
func Resolve(nv, nt int) (n int, ok bool) {
	if nv < 1 || nt < 1 {
		return 0, false
	}
	if nv > 1 && nt > 1 && nv != nt {
		return 0, false
	}
	if nv > nt {
		return nv, true
	}
	return nt, true
}

// BroadcastRows returns rows stretched to length n. A single row is repeated
// n times; otherwise rows is returned as-is (len(rows) must already be n).
func BroadcastRows(rows [][3]float64, n int) [][3]float64 {
	if len(rows) == n {
		return rows
	}
	out := make([][3]float64, n)
	for i := range out {
		out[i] = rows[0]
	}
	return out
}

// BroadcastFloats is BroadcastRows for scalar-per-row values.
func BroadcastFloats(vals []float64, n int) []float64 {
	if len(vals) == n {
		return vals
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = vals[0]
	}
	return out
}
