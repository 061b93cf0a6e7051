// Package matrix offers the dense storage and small linear-algebra kernels
// used by the iterative solvers of numlab.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with error-returning accessors
//     (At/Set never panic on user input).
//   - Row operations needed by pivoting and conditioning steps
//     (SwapRows, ScaleRow, Row).
//   - Kernels: MatVec, NormInf, ArgMaxAbsInColumn, MaxAbsInRow.
//   - Canonical validators (ValidateNotNil, ValidateSquare, ValidateVecLen).
//
// Matrices here are small (the linear solver caps n at 20), so every routine
// favors determinism and clear errors over blocked or parallel kernels.
//
// See example_test.go for usage patterns.
package matrix
