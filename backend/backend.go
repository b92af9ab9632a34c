// Package backend defines the contract for the external native rotation
// routines and a registry for selecting one by name.
//
// The rotation math itself (IGRF coefficients, dipole tilt) lives entirely
// in the native libraries the concrete backends bind to; Go code treats them
// as black boxes behind the Backend interface.
package backend

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hupe1980/hxform/epoch"
)

// Geopack08DP is the name of the Fortran geopack_08_dp backend (default).
const Geopack08DP = "geopack_08_dp"

// CXForm is the name of the C CXFORM backend.
const CXForm = "cxform"

// Default is the backend used when no explicit backend is selected.
const Default = Geopack08DP

// ErrUnknown is returned by Lookup for a name no backend registered under.
var ErrUnknown = errors.New("unknown backend")

// UnavailableError is returned at call time by a backend whose native
// library was not compiled in.
//
// The backends are optional native dependencies; a build without them still
// compiles, but using one must fail loudly rather than produce garbage.
type UnavailableError struct {
	Backend string
	Reason  string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("backend %s unavailable: %s", e.Backend, e.Reason)
}

// Backend is a batched native frame-rotation routine.
//
// Transform rotates the cartesian rows vs through the frame-pair code
// (e.g. "GSMtoMAG") at the given encoded epochs, returning outsize rows.
// A side of length 1 is broadcast across the output; otherwise its length
// must equal outsize. Implementations carry no call-to-call state; whether
// one is safe for concurrent use depends on the native library it binds and
// is documented per implementation.
type Backend interface {
	Name() string
	Transform(vs [][3]float64, code string, epochs []epoch.Encoded, outsize int) ([][3]float64, error)
}

var (
	mu       sync.RWMutex
	registry = map[string]Backend{}
)

// Register makes b selectable by its name, replacing any previous
// registration. Concrete backends register themselves from package init.
func Register(b Backend) {
	mu.Lock()
	defer mu.Unlock()
	registry[b.Name()] = b
}

// Lookup returns the backend registered under name.
func Lookup(name string) (Backend, error) {
	mu.RLock()
	defer mu.RUnlock()
	b, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return b, nil
}

// Names returns the registered backend names (unordered).
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
