// SPDX-License-Identifier: MIT

package interp

// DefaultSpacingTolerance is the relative deviation from the first step
// accepted as uniform spacing.
const DefaultSpacingTolerance = 1e-9

const panicSpacingTolerance = "interp: WithSpacingTolerance: tol must be > 0"

// Option configures Build.
type Option func(*Options)

// Options holds the effective configuration.
type Options struct {
	checkSpacing bool
	spacingTol   float64
}

// WithoutSpacingCheck lets finite-difference kinds accept non-uniform nodes.
// The result is then only meaningful for (near) uniform tables.
func WithoutSpacingCheck() Option {
	return func(o *Options) { o.checkSpacing = false }
}

// WithSpacingTolerance overrides DefaultSpacingTolerance. Panics if tol <= 0.
func WithSpacingTolerance(tol float64) Option {
	if !(tol > 0) {
		panic(panicSpacingTolerance)
	}

	return func(o *Options) { o.spacingTol = tol }
}

func gatherOptions(opts ...Option) Options {
	o := Options{checkSpacing: true, spacingTol: DefaultSpacingTolerance}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
