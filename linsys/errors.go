// SPDX-License-Identifier: MIT

package linsys

import (
	"errors"
	"fmt"
)

var (
	// ErrBadDimension indicates n outside 1..MaxDimension or mismatched A/b sizes.
	ErrBadDimension = errors.New("linsys: dimension must be in 1..20 with len(b) == n")

	// ErrBadTolerance indicates a non-positive or non-finite tolerance.
	ErrBadTolerance = errors.New("linsys: tolerance must be a positive finite number")

	// ErrZeroDiagonal indicates a zero diagonal entry after reordering; the
	// Jacobi update divides by a_ii, so the method is inapplicable.
	ErrZeroDiagonal = errors.New("linsys: zero diagonal entry, method inapplicable")

	// ErrDiverged indicates the iterate became NaN or ±Inf.
	ErrDiverged = errors.New("linsys: iteration diverged")

	// ErrMaxIterations indicates the bounded variant ran out of iterations.
	// The accompanying Result holds the last iterate.
	ErrMaxIterations = errors.New("linsys: iteration limit reached before tolerance")

	// ErrBadInput indicates malformed textual input (file or console rows).
	ErrBadInput = errors.New("linsys: malformed input")
)

// linsysErrorf wraps err with an operation tag, preserving it for errors.Is.
func linsysErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
