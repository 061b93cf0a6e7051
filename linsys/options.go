// SPDX-License-Identifier: MIT

package linsys

import (
	"io"
	"log/slog"
)

const (
	// DefaultMaxIterations is 0: no cap, iterate until tolerance or divergence.
	DefaultMaxIterations = 0

	// DefaultKeepHistory records every iterate in Result.History.
	DefaultKeepHistory = true
)

const panicMaxIterationsInvalid = "linsys: WithMaxIterations: n must be >= 0"

// Option configures Solve.
type Option func(*Options)

// Options holds the effective Solve configuration.
type Options struct {
	maxIterations int
	keepHistory   bool
	logger        *slog.Logger
}

// WithMaxIterations caps the number of Jacobi sweeps; 0 removes the cap.
// Panics on negative n (programmer error).
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIterations = n }
}

// WithHistory toggles per-iteration recording. Disable it for unbounded runs
// on slowly converging systems to keep memory flat.
func WithHistory(keep bool) Option {
	return func(o *Options) { o.keepHistory = keep }
}

// WithLogger routes progress (Debug) and dominance warnings (Warn) to l.
// A nil logger keeps the default discard logger.
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
		keepHistory:   DefaultKeepHistory,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
