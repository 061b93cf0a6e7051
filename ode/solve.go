// SPDX-License-Identifier: MIT

package ode

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Solve integrates problem with method m, doubling the step count until the
// error estimate is at most p.Eps.
// MAIN DESCRIPTION:
//   - At least one doubling is always performed, so the first estimate
//     compares two grids.
//   - Euler, ImprovedEuler: Richardson |y_2n(x_end) − y_n(x_end)| / (2^p − 1).
//   - Milne, or any method under WithExactError: max_i |exact(x_i) − y_i|.
//     Milne without an exact solution falls back to Richardson with p = 4.
//
// Returns:
//   - *Solution; Converged is false when the refinement budget or MaxSteps
//     ran out, in which case a warning is logged and no error is returned.
//
// Errors:
//   - ErrNilFunc, ErrUnknownMethod, ErrBadInterval, ErrBadSteps,
//     ErrBadTolerance, ErrDomain, ErrNoExact, ErrNonFinite, ErrCorrectorDiverged.
func Solve(m Method, problem Problem, p Params, opts ...Option) (*Solution, error) {
	o := gatherOptions(opts...)
	tag := "Solve(" + m.String() + ")"
	if problem.F == nil {
		return nil, odeErrorf(tag, ErrNilFunc)
	}
	if m.Order() == 0 {
		return nil, odeErrorf(tag, ErrUnknownMethod)
	}
	if err := p.Validate(); err != nil {
		return nil, odeErrorf(tag, err)
	}
	if problem.Domain != nil {
		if err := problem.Domain(p.X0, p.XEnd); err != nil {
			return nil, odeErrorf(tag, err)
		}
	}
	useExact := o.exactError || (m == Milne && problem.Exact != nil)
	if o.exactError && problem.Exact == nil {
		return nil, odeErrorf(tag, ErrNoExact)
	}

	n := p.N
	xs, ys, err := run(m, problem.F, p, n, o)
	if err != nil {
		return nil, odeErrorf(tag, err)
	}

	sol := &Solution{Method: m, Error: math.Inf(1)}
	richardson := float64(int(1)<<m.Order() - 1)
	for sol.Error > p.Eps {
		if sol.Refinements >= o.maxRefinements || 2*n > MaxSteps {
			o.logger.Warn("refinement budget exhausted before tolerance",
				"method", m.String(), "n", n, "error", sol.Error, "eps", p.Eps)
			break
		}
		sol.Refinements++
		n *= 2
		nxs, nys, err := run(m, problem.F, p, n, o)
		if err != nil {
			return nil, odeErrorf(tag, err)
		}
		if useExact {
			if sol.Error, err = exactError(problem.Exact, nxs, nys, p); err != nil {
				return nil, odeErrorf(tag, err)
			}
		} else {
			sol.Error = math.Abs(nys[len(nys)-1]-ys[len(ys)-1]) / richardson
		}
		xs, ys = nxs, nys
		o.logger.Debug("step doubled", "method", m.String(), "n", n, "error", sol.Error)
	}

	sol.X, sol.Y, sol.N = xs, ys, n
	sol.H = (p.XEnd - p.X0) / float64(n)
	sol.Converged = sol.Error <= p.Eps
	if problem.Exact != nil {
		sol.Exact = make([]float64, len(xs))
		for i, x := range xs {
			sol.Exact[i] = problem.Exact(x, p.X0, p.Y0)
		}
	}

	return sol, nil
}

func run(m Method, f Func, p Params, n int, o Options) ([]float64, []float64, error) {
	xs, err := Grid(p.X0, p.XEnd, n)
	if err != nil {
		return nil, nil, err
	}
	ys, err := Integrate(m, f, xs, p.Y0, p.Eps, WithMaxCorrectorPasses(o.maxCorrector))
	if err != nil {
		return nil, nil, err
	}

	return xs, ys, nil
}

// exactError returns max_i |exact(x_i) − y_i|.
func exactError(exact Exact, xs, ys []float64, p Params) (float64, error) {
	diff := make([]float64, len(xs))
	for i, x := range xs {
		e := exact(x, p.X0, p.Y0)
		if !finite(e) {
			return 0, nonFiniteAt(x)
		}
		diff[i] = e - ys[i]
	}

	return floats.Norm(diff, math.Inf(1)), nil
}
