// Package testutil provides deterministic helpers for hxform tests: a
// seedable RNG and an in-memory rotation backend that stands in for the
// native libraries.
package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/hxform/epoch"
)

// StaticName is the registry name used for the Static test backend.
const StaticName = "static"

// Call records one invocation of Static.Transform.
type Call struct {
	Vs      [][3]float64
	Code    string
	Epochs  []epoch.Encoded
	Outsize int
}

// Static is a Backend for tests. It rotates each vector about the Z axis by
// a fixed per-code angle plus an optional per-epoch term, and records every
// call so tests can assert on the dispatch boundary.
type Static struct {
	// AngleByCode maps a frame-pair code (e.g. "GSMtoMAG") to a rotation
	// angle in radians. Missing codes rotate by zero.
	AngleByCode map[string]float64

	// TimeScale adds TimeScale*doy radians per row, making distinct epochs
	// produce distinct outputs.
	TimeScale float64

	// Err, when set, is returned by every Transform call.
	Err error

	Calls []Call
}

func (s *Static) Name() string { return StaticName }

func (s *Static) Transform(vs [][3]float64, code string, epochs []epoch.Encoded, outsize int) ([][3]float64, error) {
	s.Calls = append(s.Calls, Call{Vs: vs, Code: code, Epochs: epochs, Outsize: outsize})
	if s.Err != nil {
		return nil, s.Err
	}

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

		theta := s.AngleByCode[code] + s.TimeScale*float64(e[1])
		sin, cos := math.Sincos(theta)
		out[i] = [3]float64{
			v[0]*cos - v[1]*sin,
			v[0]*sin + v[1]*cos,
			v[2],
		}
	}
	return out, nil
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
// Locks only once per call (preferred over calling Float64 in a loop).
func (r *RNG) FillUniformRange(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*(maxVal-minVal)
	}
}

// Vectors3 generates num random 3-vectors with components in [minVal, maxVal).
func (r *RNG) Vectors3(num int, minVal, maxVal float64) [][3]float64 {
	vs := make([][3]float64, num)
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range vs {
		for j := range vs[i] {
			vs[i][j] = minVal + r.rand.Float64()*(maxVal-minVal)
		}
	}
	return vs
}
