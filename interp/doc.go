// Package interp builds interpolating polynomials through a table of nodes
// (x_i, y_i) and evaluates them.
//
// Kinds:
//
//	Lagrange        Σ y_i·Π_{j≠i}(x − x_j)/(x_i − x_j)
//	NewtonDivided   Newton form over divided differences
//	NewtonFinite    Newton forward form over finite differences (uniform x)
//	Gauss           central differences; forward series right of the central
//	                node, backward series left of (and at) it
//	Stirling        mean of the Gauss forward and backward series (odd count)
//	Bessel          mean-of-pair formula centered between the two middle nodes
//	                (even count)
//
// Build precomputes the coefficient table once; Polynomial.Eval dispatches on
// the kind. The Gauss branch switch at the central node is intentional: the
// result is piecewise and continuous there, not one global polynomial.
//
// Finite-difference kinds need uniformly spaced nodes. Build verifies the
// spacing (relative tolerance DefaultSpacingTolerance) and fails with
// ErrNonUniform; WithoutSpacingCheck skips that guard.
package interp
