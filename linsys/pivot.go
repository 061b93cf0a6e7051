// SPDX-License-Identifier: MIT

package linsys

import (
	"math"

	"github.com/katalvlaran/numlab/matrix"
)

// IsDiagonallyDominant reports strict row diagonal dominance:
// |a_ii| > Σ_{j≠i} |a_ij| for every row i.
// Complexity: O(n²).
func IsDiagonallyDominant(a *matrix.Dense) bool {
	n := a.Rows()
	for i := 0; i < n; i++ {
		var diag, off float64
		for j := 0; j < a.Cols(); j++ {
			v, _ := a.At(i, j) // indices are in range by construction
			if i == j {
				diag = math.Abs(v)
			} else {
				off += math.Abs(v)
			}
		}
		if diag <= off {
			return false
		}
	}

	return true
}

// Pivot reorders the rows of s by partial pivoting and reports whether any
// swap happened.
// MAIN DESCRIPTION:
//   - For column i = 0..n−1 the row r ≥ i with maximal |a_ri| is swapped into
//     position i; b follows the same permutation.
//
// Behavior highlights:
//   - Ties keep the lowest row index (deterministic).
//   - Does not guarantee dominance; callers re-check with IsDiagonallyDominant.
//
// Complexity:
//   - Time O(n²), Space O(1).
func Pivot(s *System) (bool, error) {
	n := s.N()
	swapped := false
	for i := 0; i < n; i++ {
		r, err := matrix.ArgMaxAbsInColumn(s.A, i, i)
		if err != nil {
			return swapped, linsysErrorf("Pivot", err)
		}
		if r == i {
			continue
		}
		if err = s.A.SwapRows(i, r); err != nil {
			return swapped, linsysErrorf("Pivot", err)
		}
		s.B[i], s.B[r] = s.B[r], s.B[i]
		swapped = true
	}

	return swapped, nil
}

// Scale conditions s in place and returns the global factor applied to b.
// MAIN DESCRIPTION:
//   - Each row i (and b_i) is divided by max_j |a_ij|; all-zero rows are left alone.
//   - b is then divided by max_i |b_i| measured BEFORE the row scaling.
//
// Returns:
//   - bScale: the global divisor of b (1 when b is all zeros). The solution of
//     the conditioned system times bScale is the solution of the original one.
//
// Complexity:
//   - Time O(n²), Space O(1).
func Scale(s *System) (float64, error) {
	n := s.N()
	maxB := matrix.NormInf(s.B)
	for i := 0; i < n; i++ {
		rowMax, err := matrix.MaxAbsInRow(s.A, i)
		if err != nil {
			return 0, linsysErrorf("Scale", err)
		}
		if rowMax == 0 {
			continue
		}
		if err = s.A.ScaleRow(i, 1/rowMax); err != nil {
			return 0, linsysErrorf("Scale", err)
		}
		s.B[i] /= rowMax
	}
	if maxB == 0 {
		return 1, nil
	}
	for i := range s.B {
		s.B[i] /= maxB
	}

	return maxB, nil
}
