// SPDX-License-Identifier: MIT

package roots

import (
	"fmt"
	"math"
)

// Check validates p for method m without iterating.
// MAIN DESCRIPTION:
//   - Bisection, Chord: left < right, finite f at both ends, f(a)·f(b) ≤ 0 and
//     at most one sign change on a grid of DefaultGridCells cells.
//   - SimpleIteration: the bracket checks plus q = max|1 + λ·f'(x)| < 1.
//   - Newton: finite f(x0) and f'(x0) ≠ 0.
//
// Errors:
//   - ErrNilFunction, ErrUnknownMethod, ErrBadTolerance, ErrBadInterval,
//     ErrNonFinite, ErrNoSignChange, ErrMultipleRoots, ErrNotContracting,
//     ErrZeroDerivative.
func Check(m Method, p Problem, opts ...Option) error {
	o := gatherOptions(opts...)

	return check(m, p, o)
}

func check(m Method, p Problem, o Options) error {
	tag := "Check(" + m.String() + ")"
	if p.Eq.F == nil {
		return rootsErrorf(tag, ErrNilFunction)
	}
	if !(p.Tolerance > 0) || math.IsInf(p.Tolerance, 0) {
		return rootsErrorf(tag, ErrBadTolerance)
	}

	switch m {
	case Bisection, Chord:
		return checkBracket(tag, p, o)
	case SimpleIteration:
		if err := checkBracket(tag, p, o); err != nil {
			return err
		}
		_, q := iterationParams(p, o.gridCells)
		if !(q < 1) {
			return rootsErrorf(tag, fmt.Errorf("q = %.4g: %w", q, ErrNotContracting))
		}
		return nil
	case Newton:
		fx, dfx := p.Eq.F(p.Left), p.Eq.Derivative(p.Left)
		if !finite(p.Left, fx, dfx) {
			return rootsErrorf(tag, ErrNonFinite)
		}
		if dfx == 0 {
			return rootsErrorf(tag, ErrZeroDerivative)
		}
		return nil
	default:
		return rootsErrorf(tag, ErrUnknownMethod)
	}
}

func checkBracket(tag string, p Problem, o Options) error {
	a, b := p.Left, p.Right
	if !finite(a, b) || !(a < b) {
		return rootsErrorf(tag, ErrBadInterval)
	}
	fa, fb := p.Eq.F(a), p.Eq.F(b)
	if !finite(fa, fb) {
		return rootsErrorf(tag, ErrNonFinite)
	}
	if fa*fb > 0 {
		return rootsErrorf(tag, ErrNoSignChange)
	}

	changes, err := signChanges(p.Eq.F, a, b, o.gridCells)
	if err != nil {
		return rootsErrorf(tag, err)
	}
	if changes > 1 {
		return rootsErrorf(tag, fmt.Errorf("%d sign changes: %w", changes, ErrMultipleRoots))
	}

	return nil
}

// signChanges samples f at cells+1 equally spaced points of [a, b] and counts
// strict sign changes between consecutive non-zero samples.
func signChanges(f func(float64) float64, a, b float64, cells int) (int, error) {
	h := (b - a) / float64(cells)
	count := 0
	prev := 0.0
	for i := 0; i <= cells; i++ {
		x := a + float64(i)*h
		if i == cells {
			x = b
		}
		v := f(x)
		if !finite(v) {
			return 0, fmt.Errorf("f(%g): %w", x, ErrNonFinite)
		}
		if v == 0 {
			continue
		}
		if prev != 0 && (prev < 0) != (v < 0) {
			count++
		}
		prev = v
	}

	return count, nil
}

// iterationParams returns λ and the contraction factor q for
// φ(x) = x + λ·f(x) on [p.Left, p.Right].
// λ = −1/f'(e) where e is the endpoint with the larger |f'|.
func iterationParams(p Problem, cells int) (lambda, q float64) {
	da, db := p.Eq.Derivative(p.Left), p.Eq.Derivative(p.Right)
	m := da
	if math.Abs(db) > math.Abs(da) {
		m = db
	}
	if m == 0 || !finite(m) {
		return 0, math.Inf(1)
	}
	lambda = -1 / m

	h := (p.Right - p.Left) / float64(cells)
	for i := 0; i <= cells; i++ {
		d := math.Abs(1 + lambda*p.Eq.Derivative(p.Left+float64(i)*h))
		if math.IsNaN(d) {
			return lambda, math.Inf(1)
		}
		q = math.Max(q, d)
	}

	return lambda, q
}
