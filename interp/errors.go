// SPDX-License-Identifier: MIT

package interp

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch indicates len(X) != len(Y).
	ErrLengthMismatch = errors.New("interp: x and y must have equal length")

	// ErrTooFewNodes indicates fewer than two nodes.
	ErrTooFewNodes = errors.New("interp: at least two nodes are required")

	// ErrDuplicateNodes indicates two nodes share the same x.
	ErrDuplicateNodes = errors.New("interp: interpolation nodes must be distinct")

	// ErrUnsortedNodes indicates x is not strictly increasing.
	ErrUnsortedNodes = errors.New("interp: interpolation nodes must be sorted by x")

	// ErrNonUniform indicates unequal spacing for a finite-difference kind.
	ErrNonUniform = errors.New("interp: nodes are not uniformly spaced")

	// ErrNodeParity indicates a node count the central formula cannot use:
	// Stirling needs an odd count, Bessel an even one.
	ErrNodeParity = errors.New("interp: node count has the wrong parity for this formula")

	// ErrUnknownKind indicates a Kind outside the closed set.
	ErrUnknownKind = errors.New("interp: unknown polynomial kind")

	// ErrNonFinite indicates NaN or ±Inf among the nodes.
	ErrNonFinite = errors.New("interp: non-finite node value")

	// ErrBadInterval indicates x0 >= xn when sampling a function.
	ErrBadInterval = errors.New("interp: interval must satisfy x0 < xn")

	// ErrBadInput indicates malformed textual input.
	ErrBadInput = errors.New("interp: malformed input")
)

func interpErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
