package hxform

import (
	"github.com/hupe1980/hxform/backend"
	"github.com/hupe1980/hxform/coords"
)

type options struct {
	backend string
	reprIn  coords.Representation
	reprOut coords.Representation
	logger  *Logger
}

func defaultOptions() options {
	return options{
		backend: backend.Default,
		reprIn:  coords.Cartesian,
		reprOut: coords.Cartesian,
		logger:  NoopLogger(),
	}
}

// Option configures a transform or MLT call.
type Option func(*options)

// WithBackend selects the rotation backend by registry name,
// e.g. backend.Geopack08DP or backend.CXForm.
func WithBackend(name string) Option {
	return func(o *options) {
		o.backend = name
	}
}

// WithReprIn sets the representation the input vectors are given in.
// Default is cartesian.
func WithReprIn(r coords.Representation) Option {
	return func(o *options) {
		o.reprIn = r
	}
}

// WithReprOut sets the representation the output vectors are returned in.
// Default is cartesian.
func WithReprOut(r coords.Representation) Option {
	return func(o *options) {
		o.reprOut = r
	}
}

// WithLogger installs a logger for diagnostic output. The core logs nothing
// by default.
//
// If nil is passed, the no-op logger is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
