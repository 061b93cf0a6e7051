// SPDX-License-Identifier: MIT

package roots

import (
	"math"
)

// Solve validates p with Check and runs method m.
// MAIN DESCRIPTION:
//   - Stop rules: Bisection stops when |b − a| ≤ ε or |f(x)| ≤ ε; the other
//     methods stop when |x_k − x_{k−1}| ≤ ε or |f(x_k)| ≤ ε.
//
// Returns:
//   - *Result with the root and the iteration Trace.
//   - On ErrNoConvergence the Result is non-nil and holds the last estimate.
//
// Errors:
//   - every Check error; ErrNonFinite; ErrZeroDerivative (Newton hit a flat
//     point mid-iteration); ErrNoConvergence.
func Solve(m Method, p Problem, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	if err := check(m, p, o); err != nil {
		return nil, err
	}

	switch m {
	case Bisection:
		return bisection(p, o)
	case Chord:
		return chord(p, o)
	case SimpleIteration:
		return simpleIteration(p, o)
	default:
		return newton(p, o)
	}
}

func bisection(p Problem, o Options) (*Result, error) {
	const tag = "Solve(bisection)"
	f, eps := p.Eq.F, p.Tolerance
	a, b := p.Left, p.Right
	fa := f(a)
	res := &Result{Method: Bisection, Trace: Trace{Columns: []string{"a", "b", "x", "f(a)", "f(b)", "f(x)", "|a-b|"}}}
	switch {
	case fa == 0:
		res.Root = a
		return res, nil
	case f(b) == 0:
		res.Root = b
		return res, nil
	}

	for res.Iterations < o.maxIterations {
		res.Iterations++
		x := (a + b) / 2
		fx := f(x)
		if !finite(fx) {
			return nil, rootsErrorf(tag, ErrNonFinite)
		}
		res.Trace.add(a, b, x, fa, f(b), fx, math.Abs(a-b))
		res.Root, res.Value = x, fx
		o.logger.Debug("bisection step", "iteration", res.Iterations, "x", x, "f", fx)

		if math.Abs(b-a) <= eps || math.Abs(fx) <= eps {
			return res, nil
		}
		if fa*fx < 0 {
			b = x
		} else {
			a, fa = x, fx
		}
	}

	return res, rootsErrorf(tag, ErrNoConvergence)
}

func chord(p Problem, o Options) (*Result, error) {
	const tag = "Solve(chord)"
	f, eps := p.Eq.F, p.Tolerance
	a, b := p.Left, p.Right
	fa, fb := f(a), f(b)
	prev := a
	res := &Result{Method: Chord, Trace: Trace{Columns: []string{"a", "b", "x", "f(a)", "f(b)", "f(x)", "|x_k-x_k-1|"}}}

	for res.Iterations < o.maxIterations {
		res.Iterations++
		x := a - fa*(b-a)/(fb-fa)
		fx := f(x)
		if !finite(x, fx) {
			return nil, rootsErrorf(tag, ErrNonFinite)
		}
		d := math.Abs(x - prev)
		res.Trace.add(a, b, x, fa, fb, fx, d)
		res.Root, res.Value = x, fx
		o.logger.Debug("chord step", "iteration", res.Iterations, "x", x, "f", fx)

		if d <= eps || math.Abs(fx) <= eps {
			return res, nil
		}
		if fa*fx < 0 {
			b, fb = x, fx
		} else {
			a, fa = x, fx
		}
		prev = x
	}

	return res, rootsErrorf(tag, ErrNoConvergence)
}

func simpleIteration(p Problem, o Options) (*Result, error) {
	const tag = "Solve(simple iteration)"
	f, eps := p.Eq.F, p.Tolerance
	lambda, q := iterationParams(p, o.gridCells)
	o.logger.Debug("simple iteration parameters", "lambda", lambda, "q", q)
	phi := func(x float64) float64 { return x + lambda*f(x) }

	x := p.Left
	res := &Result{Method: SimpleIteration, Trace: Trace{Columns: []string{"x_k", "x_k+1", "phi(x_k+1)", "f(x_k+1)", "|x_k+1-x_k|"}}}

	for res.Iterations < o.maxIterations {
		res.Iterations++
		next := phi(x)
		fn := f(next)
		if !finite(next, fn) {
			return nil, rootsErrorf(tag, ErrNonFinite)
		}
		d := math.Abs(next - x)
		res.Trace.add(x, next, phi(next), fn, d)
		res.Root, res.Value = next, fn
		o.logger.Debug("simple iteration step", "iteration", res.Iterations, "x", next, "f", fn)

		if d <= eps || math.Abs(fn) <= eps {
			return res, nil
		}
		x = next
	}

	return res, rootsErrorf(tag, ErrNoConvergence)
}

func newton(p Problem, o Options) (*Result, error) {
	const tag = "Solve(newton)"
	eq, eps := p.Eq, p.Tolerance
	x := p.Left
	res := &Result{Method: Newton, Trace: Trace{Columns: []string{"x_k", "f(x_k)", "f'(x_k)", "x_k+1", "|x_k+1-x_k|"}}}

	for res.Iterations < o.maxIterations {
		res.Iterations++
		fx, dfx := eq.F(x), eq.Derivative(x)
		if dfx == 0 {
			return nil, rootsErrorf(tag, ErrZeroDerivative)
		}
		next := x - fx/dfx
		fn := eq.F(next)
		if !finite(fx, dfx, next, fn) {
			return nil, rootsErrorf(tag, ErrNonFinite)
		}
		d := math.Abs(next - x)
		res.Trace.add(x, fx, dfx, next, d)
		res.Root, res.Value = next, fn
		o.logger.Debug("newton step", "iteration", res.Iterations, "x", next, "f", fn)

		if d <= eps || math.Abs(fn) <= eps {
			return res, nil
		}
		x = next
	}

	return res, rootsErrorf(tag, ErrNoConvergence)
}
