// SPDX-License-Identifier: MIT

package nlsys

import (
	"errors"
	"fmt"
)

var (
	// ErrNilSystem indicates a System without F or J.
	ErrNilSystem = errors.New("nlsys: system function or jacobian is nil")

	// ErrDimension indicates mismatched lengths of x0, F(x) or J(x).
	ErrDimension = errors.New("nlsys: dimension mismatch")

	// ErrBadTolerance indicates a non-positive or non-finite ε.
	ErrBadTolerance = errors.New("nlsys: tolerance must be a positive finite number")

	// ErrSingularJacobian indicates J(x) cannot be inverted at the current iterate.
	ErrSingularJacobian = errors.New("nlsys: jacobian is singular")

	// ErrNonFinite indicates NaN or ±Inf in F, J or the iterate.
	ErrNonFinite = errors.New("nlsys: non-finite value")

	// ErrNoConvergence indicates the iteration budget was exhausted.
	ErrNoConvergence = errors.New("nlsys: newton method did not converge")
)

func nlsysErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
