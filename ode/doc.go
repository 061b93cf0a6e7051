// Package ode integrates the scalar initial value problem y' = f(x, y),
// y(x0) = y0, on a uniform grid.
//
// Methods:
//
//	Euler          y_{i+1} = y_i + h·f(x_i, y_i)                         order 1
//	ImprovedEuler  Heun predictor-corrector in a single pass              order 2
//	Milne          4-step predictor-corrector, first steps by RK4         order 4
//
// Milne's corrector is repeated as a fixed-point iteration until successive
// corrected values differ by less than ε; the number of passes is capped
// (DefaultMaxCorrectorPasses) and exceeding it is reported as
// ErrCorrectorDiverged.
//
// Solve wraps a method in step doubling: the step count n is doubled until
// the error estimate falls below ε. The Euler variants use the Richardson
// estimate |y_{2n}(x_end) − y_n(x_end)| / (2^p − 1); Milne compares against
// the exact solution. After DefaultMaxRefinements doublings the best
// available solution is returned with Converged = false and a logged warning.
//
// Grids always contain both endpoints: n steps give n+1 points.
package ode
