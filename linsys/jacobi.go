// SPDX-License-Identifier: MIT

package linsys

import (
	"math"

	"github.com/katalvlaran/numlab/matrix"
)

const opSolve = "Solve"

// Solve runs the full pipeline: dominance check, optional pivoting, row
// conditioning, and Jacobi iteration from x = 0.
// MAIN DESCRIPTION:
//   - The caller's System is never mutated.
//
// Implementation:
//   - Stage 1: validate tol and s; clone s.
//   - Stage 2: pivot when not strictly dominant; warn if dominance is still missing.
//   - Stage 3: Scale; reject zero diagonal entries.
//   - Stage 4: iterate x_i ← (b_i − Σ_{j≠i} a_ij x_j) / a_ii from the previous
//     full vector until ‖Δ‖∞ < tol (Δ in original units).
//   - Stage 5: unscale, compute the residual against the original system.
//
// Returns:
//   - *Result on success; on ErrDiverged or ErrMaxIterations the Result is also
//     returned (non-nil) with the last iterate.
//
// Errors:
//   - ErrBadTolerance, ErrBadDimension, ErrZeroDiagonal, ErrDiverged, ErrMaxIterations.
//
// Complexity:
//   - Time O(k·n²) for k sweeps; Space O(k·n) with history, O(n) without.
func Solve(s *System, tol float64, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	if !(tol > 0) || math.IsInf(tol, 0) {
		return nil, linsysErrorf(opSolve, ErrBadTolerance)
	}
	if s == nil || s.A == nil || s.N() < 1 || s.N() > MaxDimension || s.A.Rows() != s.N() || s.A.Cols() != s.N() {
		return nil, linsysErrorf(opSolve, ErrBadDimension)
	}

	work := s.Clone()
	res := &Result{Dominant: IsDiagonallyDominant(work.A)}
	if !res.Dominant {
		swapped, err := Pivot(work)
		if err != nil {
			return nil, linsysErrorf(opSolve, err)
		}
		res.Reordered = swapped
		res.Dominant = IsDiagonallyDominant(work.A)
		if !res.Dominant {
			o.logger.Warn("diagonal dominance not achievable, convergence is not guaranteed",
				"n", work.N(), "reordered", swapped)
		}
	}

	bScale, err := Scale(work)
	if err != nil {
		return nil, linsysErrorf(opSolve, err)
	}

	n := work.N()
	diag := make([]float64, n)
	for i := 0; i < n; i++ {
		diag[i], _ = work.A.At(i, i)
		if diag[i] == 0 {
			return nil, linsysErrorf(opSolve, ErrZeroDiagonal)
		}
	}

	xOld := make([]float64, n)
	xNew := make([]float64, n)
	delta := make([]float64, n)
	var sum, a float64
	for {
		res.Iterations++
		for i := 0; i < n; i++ {
			sum = matrix.ZeroSum
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				a, _ = work.A.At(i, j)
				sum += a * xOld[j]
			}
			xNew[i] = (work.B[i] - sum) / diag[i]
		}
		for i := range delta {
			delta[i] = math.Abs(xNew[i]-xOld[i]) * bScale
		}
		norm := matrix.NormInf(delta)
		if o.keepHistory {
			res.History = append(res.History, Iterate{X: unscale(xNew, bScale), Delta: append([]float64(nil), delta...)})
		}
		o.logger.Debug("jacobi sweep", "iteration", res.Iterations, "delta", norm)

		if math.IsNaN(norm) || math.IsInf(norm, 0) {
			res.X = unscale(xOld, bScale)
			return res, linsysErrorf(opSolve, ErrDiverged)
		}
		if norm < tol {
			res.Converged = true
			break
		}
		if o.maxIterations > 0 && res.Iterations >= o.maxIterations {
			res.X = unscale(xNew, bScale)
			if res.Residual, err = matrix.Residual(s.A, res.X, s.B); err != nil {
				return nil, linsysErrorf(opSolve, err)
			}
			return res, linsysErrorf(opSolve, ErrMaxIterations)
		}
		copy(xOld, xNew)
	}

	res.X = unscale(xNew, bScale)
	if res.Residual, err = matrix.Residual(s.A, res.X, s.B); err != nil {
		return nil, linsysErrorf(opSolve, err)
	}

	return res, nil
}

func unscale(x []float64, f float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v * f
	}

	return out
}
