// SPDX-License-Identifier: MIT

package interp

import (
	"math"
)

// Nodes is an interpolation table of parallel x and y sequences.
type Nodes struct {
	X []float64
	Y []float64
}

// Len returns the number of nodes.
func (n Nodes) Len() int { return len(n.X) }

// Span returns the first and last x.
func (n Nodes) Span() (lo, hi float64) { return n.X[0], n.X[len(n.X)-1] }

// Clone returns an independent copy.
func (n Nodes) Clone() Nodes {
	return Nodes{X: append([]float64(nil), n.X...), Y: append([]float64(nil), n.Y...)}
}

// Validate checks the table invariants in this order: equal lengths, at
// least two nodes, finite values, distinct x, strictly increasing x.
func (n Nodes) Validate() error {
	const tag = "Validate"
	if len(n.X) != len(n.Y) {
		return interpErrorf(tag, ErrLengthMismatch)
	}
	if len(n.X) < 2 {
		return interpErrorf(tag, ErrTooFewNodes)
	}
	seen := make(map[float64]struct{}, len(n.X))
	for i, x := range n.X {
		if !finite(x) || !finite(n.Y[i]) {
			return interpErrorf(tag, ErrNonFinite)
		}
		if _, dup := seen[x]; dup {
			return interpErrorf(tag, ErrDuplicateNodes)
		}
		seen[x] = struct{}{}
	}
	for i := 1; i < len(n.X); i++ {
		if n.X[i] < n.X[i-1] {
			return interpErrorf(tag, ErrUnsortedNodes)
		}
	}

	return nil
}

// Step returns the spacing h = x_1 − x_0 and reports whether every step
// equals h within relTol·|h|.
func (n Nodes) Step(relTol float64) (float64, bool) {
	h := n.X[1] - n.X[0]
	for i := 2; i < len(n.X); i++ {
		if math.Abs(n.X[i]-n.X[i-1]-h) > relTol*math.Abs(h) {
			return h, false
		}
	}

	return h, true
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
