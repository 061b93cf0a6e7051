// SPDX-License-Identifier: MIT

package ode

import (
	"io"
	"log/slog"
)

const (
	// DefaultMaxRefinements bounds the number of step doublings in Solve.
	DefaultMaxRefinements = 20

	// DefaultMaxCorrectorPasses bounds Milne's corrector per grid point.
	DefaultMaxCorrectorPasses = 100

	// MaxSteps is the largest step count Solve will double into.
	MaxSteps = 1 << 22
)

const (
	panicMaxRefinements = "ode: WithMaxRefinements: n must be >= 0"
	panicCorrector      = "ode: WithMaxCorrectorPasses: n must be > 0"
)

// Option configures Integrate and Solve.
type Option func(*Options)

// Options holds the effective configuration.
type Options struct {
	maxRefinements int
	maxCorrector   int
	exactError     bool
	logger         *slog.Logger
}

// WithMaxRefinements sets the doubling budget of Solve. Panics if n < 0.
func WithMaxRefinements(n int) Option {
	if n < 0 {
		panic(panicMaxRefinements)
	}

	return func(o *Options) { o.maxRefinements = n }
}

// WithMaxCorrectorPasses sets Milne's corrector pass limit. Panics if n <= 0.
func WithMaxCorrectorPasses(n int) Option {
	if n <= 0 {
		panic(panicCorrector)
	}

	return func(o *Options) { o.maxCorrector = n }
}

// WithExactError makes Solve measure every method against the exact
// solution (max |y_exact − y| over the grid) instead of Richardson.
func WithExactError() Option {
	return func(o *Options) { o.exactError = true }
}

// WithLogger receives refinement progress (Debug) and budget warnings (Warn).
// Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		maxRefinements: DefaultMaxRefinements,
		maxCorrector:   DefaultMaxCorrectorPasses,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
