package hxform

import (
	"errors"
	"fmt"

	"github.com/hupe1980/hxform/backend"
	"github.com/hupe1980/hxform/coords"
	"github.com/hupe1980/hxform/epoch"
	"github.com/hupe1980/hxform/frame"
)

var (
	// ErrInvalidInput is returned for malformed time tuples, invalid
	// calendar dates, out-of-range UT values and bad representation flags.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFrame is returned when a frame is not one of
	// MAG, GEI, GEO, GSE, GSM, SM.
	ErrUnsupportedFrame = errors.New("unsupported frame")

	// ErrUnsupportedBackend is returned when no backend is registered under
	// the requested name.
	ErrUnsupportedBackend = errors.New("unsupported backend")

	// ErrBackendUnavailable is returned when the requested backend exists
	// but its native library was not compiled in.
	ErrBackendUnavailable = errors.New("backend unavailable")
)

// ErrShapeMismatch indicates that the vector batch and the epoch batch are
// both multi-row with differing lengths.
type ErrShapeMismatch struct {
	Nv int
	Nt int
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("shape mismatch: %d vectors vs %d times (one side must have length 1)", e.Nv, e.Nt)
}

// ErrBackend indicates that a native backend invocation failed.
//
// The underlying error can be accessed via errors.Unwrap.
type ErrBackend struct {
	Backend string
	cause   error
}

func (e *ErrBackend) Error() string {
	return fmt.Sprintf("backend %s: %v", e.Backend, e.cause)
}

func (e *ErrBackend) Unwrap() error { return e.cause }

// translateError maps subpackage errors onto the public taxonomy.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, frame.ErrUnsupported) {
		return fmt.Errorf("%w: %w", ErrUnsupportedFrame, err)
	}
	if errors.Is(err, backend.ErrUnknown) {
		return fmt.Errorf("%w: %w", ErrUnsupportedBackend, err)
	}
	var ua *backend.UnavailableError
	if errors.As(err, &ua) {
		return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}
	if errors.Is(err, epoch.ErrInvalidTime) || errors.Is(err, epoch.ErrUTRange) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if errors.Is(err, coords.ErrUnknownRepresentation) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return err
}
