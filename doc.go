// Package numlab is a small laboratory of classic numerical methods: each
// method is a narrow routine with explicit inputs, a per-iteration trace and
// typed errors, plus a CLI that reads the lab input formats.
//
// What is inside?
//
//	matrix/     dense row-major storage, row operations, MatVec, norms
//	linsys/     Jacobi iteration with partial pivoting and row scaling
//	roots/      bisection, chord, simple iteration, Newton for f(x) = 0
//	nlsys/      Newton's method for F(x) = 0 (Jacobian solve via gonum/mat)
//	interp/     Lagrange, Newton, Gauss, Stirling and Bessel interpolation
//	ode/        Euler, improved Euler, Milne with step doubling
//	chart/      gonum/plot images of functions, interpolants, trajectories
//	cmd/numlab  cobra CLI over all of the above
//
// Every solver reports an iterative outcome: converged, budget exhausted
// (the best estimate is still returned together with the error), or a hard
// failure such as a singular Jacobian or a non-finite value. Failures are
// package sentinels matched with errors.Is:
//
//	res, err := roots.Solve(roots.Newton, p)
//	switch {
//	case errors.Is(err, roots.ErrNoConvergence):
//		// res holds the last estimate
//	case err != nil:
//		return err
//	}
//
// Iteration progress is logged at Debug level through an injected
// *slog.Logger (WithLogger); the default logger discards everything.
//
// See examples/ for runnable scenarios.
package numlab
