// SPDX-License-Identifier: MIT

package interp

import (
	"fmt"
	"math"
)

// Function is a named scalar function used to generate node tables.
type Function struct {
	Label string
	F     func(x float64) float64
}

// Functions returns the predefined generators in menu order.
func Functions() []Function {
	return []Function{
		{Label: "sin(x)", F: math.Sin},
		{Label: "sqrt(x)", F: math.Sqrt},
		{Label: "x^5", F: func(x float64) float64 { return math.Pow(x, 5) }},
		{Label: "2*x^2 - 5*x", F: func(x float64) float64 { return 2*x*x - 5*x }},
	}
}

// Sample tabulates f at n uniformly spaced nodes x_i = x0 + i·(xn − x0)/(n − 1).
//
// Errors:
//   - ErrTooFewNodes (n < 2), ErrBadInterval (x0 >= xn), ErrNonFinite when
//     f is undefined at a node (e.g. sqrt of a negative x).
func Sample(f Function, n int, x0, xn float64) (Nodes, error) {
	const tag = "Sample"
	if n < 2 {
		return Nodes{}, interpErrorf(tag, ErrTooFewNodes)
	}
	if !finite(x0) || !finite(xn) || !(x0 < xn) {
		return Nodes{}, interpErrorf(tag, ErrBadInterval)
	}
	h := (xn - x0) / float64(n-1)
	nodes := Nodes{X: make([]float64, n), Y: make([]float64, n)}
	for i := 0; i < n; i++ {
		x := x0 + h*float64(i)
		y := f.F(x)
		if !finite(y) {
			return Nodes{}, interpErrorf(tag, fmt.Errorf("%s at x = %g: %w", f.Label, x, ErrNonFinite))
		}
		nodes.X[i], nodes.Y[i] = x, y
	}

	return nodes, nil
}
