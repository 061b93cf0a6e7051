// SPDX-License-Identifier: MIT

package nlsys

import (
	"io"
	"log/slog"
)

// DefaultMaxIterations bounds Newton.
const DefaultMaxIterations = 100

const panicMaxIterations = "nlsys: WithMaxIterations: n must be > 0"

// Option configures Newton.
type Option func(*Options)

// Options holds the effective configuration.
type Options struct {
	maxIterations int
	logger        *slog.Logger
}

// WithMaxIterations sets the iteration budget. Panics if n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterations)
	}

	return func(o *Options) { o.maxIterations = n }
}

// WithLogger receives one Debug record per Newton step. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		maxIterations: DefaultMaxIterations,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
