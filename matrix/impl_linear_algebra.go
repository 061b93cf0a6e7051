// SPDX-License-Identifier: MIT
// Package matrix provides the small set of kernels the iterative solvers rely
// on: matrix-vector products, the infinity norm, and the row/column scans used
// by partial pivoting and row conditioning. All functions perform fail-fast
// validation and return clear errors on dimension mismatches.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for dot products and similar accumulations.
const ZeroSum = 0.0

// NormZero is the additive identity for norm accumulations.
const NormZero = 0.0

// Operation name constants for unified error wrapping.
const (
	opMatVec     = "MatVec"
	opArgMaxCol  = "ArgMaxAbsInColumn"
	opMaxAbsRow  = "MaxAbsInRow"
	opResidualOf = "Residual"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Residual returns r = m*x − b, the defect of x as a solution of m*x = b.
//
// Errors:
//   - ErrNilMatrix / ErrDimensionMismatch from MatVec or when len(b) != m.Rows().
//
// Complexity: Time O(r*c), Space O(r).
func Residual(m Matrix, x, b []float64) ([]float64, error) {
	y, err := MatVec(m, x)
	if err != nil {
		return nil, matrixErrorf(opResidualOf, err)
	}
	if err = ValidateVecLen(b, len(y)); err != nil {
		return nil, matrixErrorf(opResidualOf, err)
	}
	for i := range y {
		y[i] -= b[i]
	}

	return y, nil
}

// NormInf returns max_i |x_i| (0 for an empty vector).
// A NaN component makes the result NaN so that callers comparing against a
// tolerance never mistake a broken iterate for a converged one.
// Complexity: O(n).
func NormInf(x []float64) float64 {
	norm := NormZero
	for _, v := range x {
		if math.IsNaN(v) {
			return math.NaN()
		}
		if a := math.Abs(v); a > norm {
			norm = a
		}
	}

	return norm
}

// MaxAbsInRow returns max_j |m(i,j)|.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (bad row index).
//
// Complexity: O(c).
func MaxAbsInRow(m Matrix, i int) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opMaxAbsRow, err)
	}
	if i < 0 || i >= m.Rows() {
		return 0, matrixErrorf(opMaxAbsRow, ErrOutOfRange)
	}
	best := NormZero
	for j := 0; j < m.Cols(); j++ {
		v, err := m.At(i, j)
		if err != nil {
			return 0, matrixErrorf(opMaxAbsRow, err)
		}
		if a := math.Abs(v); a > best {
			best = a
		}
	}

	return best, nil
}

// ArgMaxAbsInColumn returns the row index r ∈ [from, Rows()) maximizing |m(r,col)|.
// MAIN DESCRIPTION:
//   - Pivot search of partial pivoting: the candidate rows are those not yet
//     fixed (r ≥ from).
//
// Implementation:
//   - Stage 1: validate matrix, column, and starting row.
//   - Stage 2: linear scan; ties resolve to the lowest row index so the
//     reordering is deterministic.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
//
// Complexity:
//   - Time O(r), Space O(1).
func ArgMaxAbsInColumn(m Matrix, col, from int) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opArgMaxCol, err)
	}
	if col < 0 || col >= m.Cols() || from < 0 || from >= m.Rows() {
		return 0, matrixErrorf(opArgMaxCol, ErrOutOfRange)
	}
	best, bestRow := -1.0, from
	for r := from; r < m.Rows(); r++ {
		v, err := m.At(r, col)
		if err != nil {
			return 0, matrixErrorf(opArgMaxCol, err)
		}
		if a := math.Abs(v); a > best {
			best, bestRow = a, r
		}
	}

	return bestRow, nil
}
