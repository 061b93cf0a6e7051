// Package nlsys solves systems of nonlinear equations F(x) = 0 by Newton's
// method.
//
// Each step solves the linear correction J(x)·Δx = −F(x) with an LU
// factorization from gonum/mat and updates x ← x + Δx. Iteration stops when
// the Euclidean norm ‖Δx‖₂ drops below ε.
//
// A singular Jacobian (zero determinant or infinite condition number) is
// reported as ErrSingularJacobian and no solution is returned; the caller is
// expected to retry from another initial approximation. Exhausting the
// iteration budget (default 100) yields ErrNoConvergence with the last
// iterate still available in the Result.
package nlsys
