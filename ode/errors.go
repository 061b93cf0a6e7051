// SPDX-License-Identifier: MIT

package ode

import (
	"errors"
	"fmt"
)

var (
	// ErrNilFunc indicates a Problem or call without f.
	ErrNilFunc = errors.New("ode: right-hand side is nil")

	// ErrUnknownMethod indicates a Method outside the closed set.
	ErrUnknownMethod = errors.New("ode: unknown method")

	// ErrBadInterval indicates x_end <= x0 or non-finite bounds.
	ErrBadInterval = errors.New("ode: interval must satisfy x0 < x_end")

	// ErrBadSteps indicates an initial step count below 2.
	ErrBadSteps = errors.New("ode: step count must be at least 2")

	// ErrBadTolerance indicates a non-positive or non-finite ε.
	ErrBadTolerance = errors.New("ode: tolerance must be a positive finite number")

	// ErrShortGrid indicates a grid with fewer than two points.
	ErrShortGrid = errors.New("ode: grid needs at least two points")

	// ErrDomain indicates an interval outside the equation's domain
	// (e.g. ln x with x <= 0).
	ErrDomain = errors.New("ode: interval outside the equation domain")

	// ErrNonFinite indicates overflow, division by zero or a domain error
	// during integration.
	ErrNonFinite = errors.New("ode: non-finite value")

	// ErrCorrectorDiverged indicates Milne's corrector did not settle within
	// the pass limit.
	ErrCorrectorDiverged = errors.New("ode: milne corrector did not converge")

	// ErrNoExact indicates an exact-solution error estimate was requested for
	// a problem without one.
	ErrNoExact = errors.New("ode: problem has no exact solution")
)

func odeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
