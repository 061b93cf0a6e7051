// SPDX-License-Identifier: MIT

package roots

import (
	"errors"
	"fmt"
)

var (
	// ErrNilFunction indicates an Equation without F.
	ErrNilFunction = errors.New("roots: equation function is nil")

	// ErrUnknownMethod indicates a Method outside the closed set.
	ErrUnknownMethod = errors.New("roots: unknown method")

	// ErrBadInterval indicates left >= right or non-finite bounds.
	ErrBadInterval = errors.New("roots: interval must satisfy left < right")

	// ErrBadTolerance indicates a non-positive or non-finite tolerance.
	ErrBadTolerance = errors.New("roots: tolerance must be a positive finite number")

	// ErrNoSignChange indicates f(a)·f(b) > 0: the interval does not bracket a root.
	ErrNoSignChange = errors.New("roots: f(a) and f(b) have the same sign")

	// ErrMultipleRoots indicates more than one sign change inside [a, b]
	// (the function is not monotonic on the interval).
	ErrMultipleRoots = errors.New("roots: interval contains more than one root")

	// ErrNotContracting indicates max|φ'(x)| >= 1 on the interval, so simple
	// iteration is not guaranteed to converge.
	ErrNotContracting = errors.New("roots: iteration function is not a contraction")

	// ErrZeroDerivative indicates f'(x) = 0 at a Newton iterate.
	ErrZeroDerivative = errors.New("roots: derivative is zero")

	// ErrNonFinite indicates NaN or ±Inf, typically a domain error of f.
	ErrNonFinite = errors.New("roots: non-finite value")

	// ErrNoConvergence indicates the iteration budget was exhausted.
	ErrNoConvergence = errors.New("roots: no convergence within iteration budget")

	// ErrBadInput indicates malformed textual input.
	ErrBadInput = errors.New("roots: malformed input")
)

// rootsErrorf tags err with the method or operation that detected it.
func rootsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
