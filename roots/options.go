// SPDX-License-Identifier: MIT

package roots

import (
	"io"
	"log/slog"
)

const (
	// DefaultMaxIterations bounds every method.
	DefaultMaxIterations = 1000

	// DefaultGridCells is the number of cells used to sample [a, b] when
	// counting sign changes and estimating the contraction factor.
	DefaultGridCells = 1000
)

const (
	panicMaxIterations = "roots: WithMaxIterations: n must be > 0"
	panicGridCells     = "roots: WithGridCells: n must be >= 1"
)

// Option configures Check and Solve.
type Option func(*Options)

// Options holds the effective configuration.
type Options struct {
	maxIterations int
	gridCells     int
	logger        *slog.Logger
}

// WithMaxIterations sets the iteration budget. Panics if n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterations)
	}

	return func(o *Options) { o.maxIterations = n }
}

// WithGridCells sets the sampling resolution of interval checks. Panics if n < 1.
func WithGridCells(n int) Option {
	if n < 1 {
		panic(panicGridCells)
	}

	return func(o *Options) { o.gridCells = n }
}

// WithLogger receives one Debug record per iteration. Nil is ignored.
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
		gridCells:     DefaultGridCells,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
