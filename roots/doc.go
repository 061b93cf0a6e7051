// Package roots finds a single real root of a scalar equation f(x) = 0.
//
// Four methods share one contract:
//
//	Bisection        halve a bracketing interval [a, b]
//	Chord            regula falsi on [a, b]
//	SimpleIteration  x ← φ(x) = x + λ·f(x) with λ = −1/f'(·) at the steeper end
//	Newton           x ← x − f(x)/f'(x) from a single seed x0
//
// Every method has a validity check (Check) that must pass before the
// iteration starts; Solve runs it itself. Bracketing methods require a sign
// change on [a, b] and a single sign change on a fine sampling grid, which
// rejects intervals where f is not monotonic. SimpleIteration additionally
// requires the contraction factor q = max|φ'(x)| < 1.
//
// Solve returns the root with a full iteration Trace. Running out of the
// iteration budget (WithMaxIterations, default 1000) yields ErrNoConvergence
// together with the last estimate; NaN or ±Inf anywhere in the iteration
// yields ErrNonFinite.
//
// Precision converts a tolerance literal such as "0.001" into the number of
// decimal places used when formatting the root.
package roots
