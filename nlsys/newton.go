// SPDX-License-Identifier: MIT

package nlsys

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const opNewton = "Newton"

// Newton runs Newton's method for sys from x0.
// MAIN DESCRIPTION:
//   - x_{k+1} = x_k + Δx where J(x_k)·Δx = −F(x_k), solved by LU.
//   - Stops when ‖Δx‖₂ < eps.
//
// Returns:
//   - *Result with the trace and the residual F(X).
//   - On ErrNoConvergence the Result is non-nil and holds the last iterate.
//   - On ErrSingularJacobian the Result is nil.
//
// Errors:
//   - ErrNilSystem, ErrDimension, ErrBadTolerance, ErrSingularJacobian,
//     ErrNonFinite, ErrNoConvergence.
//
// Complexity:
//   - O(k·n³) for k steps.
func Newton(sys System, x0 []float64, eps float64, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	if sys.F == nil || sys.J == nil {
		return nil, nlsysErrorf(opNewton, ErrNilSystem)
	}
	n := sys.Dim
	if n < 1 || len(x0) != n {
		return nil, nlsysErrorf(opNewton, ErrDimension)
	}
	if !(eps > 0) || math.IsInf(eps, 0) {
		return nil, nlsysErrorf(opNewton, ErrBadTolerance)
	}

	x := mat.NewVecDense(n, append([]float64(nil), x0...))
	jac := mat.NewDense(n, n, nil)
	negF := mat.NewVecDense(n, nil)
	dx := mat.NewVecDense(n, nil)
	var lu mat.LU
	res := &Result{}

	for res.Iterations < o.maxIterations {
		res.Iterations++
		if err := evaluate(sys, x.RawVector().Data, jac, negF); err != nil {
			return nil, nlsysErrorf(opNewton, err)
		}

		lu.Factorize(jac)
		if lu.Det() == 0 || math.IsInf(lu.Cond(), 1) {
			return nil, nlsysErrorf(opNewton, fmt.Errorf("at x = %v: %w", x.RawVector().Data, ErrSingularJacobian))
		}
		if err := lu.SolveVecTo(dx, false, negF); err != nil {
			var cond mat.Condition
			if !errors.As(err, &cond) {
				return nil, nlsysErrorf(opNewton, err)
			}
			o.logger.Warn("ill-conditioned jacobian", "iteration", res.Iterations, "condition", float64(cond))
		}

		x.AddVec(x, dx)
		xs := append([]float64(nil), x.RawVector().Data...)
		norm := floats.Norm(dx.RawVector().Data, 2)
		if !finiteAll(xs) || math.IsNaN(norm) {
			return nil, nlsysErrorf(opNewton, ErrNonFinite)
		}
		res.Trace = append(res.Trace, Step{X: xs, Norm: norm})
		res.X = xs
		o.logger.Debug("newton step", "iteration", res.Iterations, "x", xs, "norm", norm)

		if norm < eps {
			res.Converged = true
			break
		}
	}

	res.Residual = sys.F(res.X)
	if !res.Converged {
		return res, nlsysErrorf(opNewton, ErrNoConvergence)
	}

	return res, nil
}

// evaluate fills jac with J(x) and negF with −F(x).
func evaluate(sys System, x []float64, jac *mat.Dense, negF *mat.VecDense) error {
	n := sys.Dim
	fx := sys.F(x)
	jx := sys.J(x)
	if len(fx) != n || len(jx) != n {
		return ErrDimension
	}
	if !finiteAll(fx) {
		return ErrNonFinite
	}
	for i, row := range jx {
		if len(row) != n {
			return ErrDimension
		}
		if !finiteAll(row) {
			return ErrNonFinite
		}
		jac.SetRow(i, row)
		negF.SetVec(i, -fx[i])
	}

	return nil
}

func finiteAll(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}
