// Package linsys solves square linear systems A·x = b by simple (Jacobi)
// fixed-point iteration.
//
// What it does:
//
//	Solve first checks strict row diagonal dominance. When it is missing the
//	rows are reordered by partial pivoting (for column i the remaining row
//	with the largest |a_ri| moves to position i). Dominance may still be
//	unreachable; the iteration then proceeds without a convergence guarantee
//	and a warning is logged.
//
//	Rows are conditioned so that each row's largest |a_ij| is 1, and b is
//	further divided by its largest magnitude. The iteration runs on that
//	conditioned copy, while the reported solution, per-iteration deltas and
//	residual are expressed in the units of the original system.
//
//	Every component of the next iterate is computed from the previous full
//	vector (Jacobi, not Gauss–Seidel). Iteration stops when the infinity
//	norm of the successive difference drops below the tolerance.
//
// Iteration budget:
//
//	By default there is NO iteration cap: an oscillating system iterates
//	until its iterate overflows (reported as ErrDiverged) or forever.
//	WithMaxIterations(n) selects the bounded variant, which reports
//	ErrMaxIterations together with the best available estimate.
//
// Usage:
//
//	sys, _ := linsys.NewSystem([][]float64{{4, 1}, {1, 3}}, []float64{1, 2})
//	res, err := linsys.Solve(sys, 1e-6, linsys.WithMaxIterations(1000))
//
// Complexity: O(k·n²) for k iterations; n ≤ MaxDimension.
package linsys
