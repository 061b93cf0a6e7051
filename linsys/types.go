// SPDX-License-Identifier: MIT

package linsys

import (
	"github.com/katalvlaran/numlab/matrix"
)

// MaxDimension is the largest accepted system size.
const MaxDimension = 20

// System is a square linear system A·x = B.
// Pivot and Scale mutate it in place; Solve works on a private copy.
type System struct {
	A *matrix.Dense
	B []float64
}

// Iterate is one recorded Jacobi sweep, in original units.
type Iterate struct {
	X     []float64 // iterate after the sweep
	Delta []float64 // |x_new − x_old| per component
}

// Result is the outcome of Solve.
type Result struct {
	X          []float64 // solution (last iterate), original units
	Residual   []float64 // A·X − b against the original system
	History    []Iterate // every sweep when history is enabled
	Iterations int       // number of sweeps performed
	Converged  bool      // ‖Δ‖∞ < tolerance was reached
	Reordered  bool      // rows were permuted by partial pivoting
	Dominant   bool      // strict diagonal dominance holds for the solved ordering
}

// NewSystem copies rows and b into a validated System.
//
// Errors:
//   - ErrBadDimension when n ∉ [1, MaxDimension], A is not n×n or len(b) != n.
//   - matrix.ErrNaNInf for non-finite coefficients.
func NewSystem(rows [][]float64, b []float64) (*System, error) {
	n := len(rows)
	if n < 1 || n > MaxDimension || len(b) != n {
		return nil, linsysErrorf("NewSystem", ErrBadDimension)
	}
	a, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, linsysErrorf("NewSystem", err)
	}
	if err = matrix.ValidateSquare(a); err != nil {
		return nil, linsysErrorf("NewSystem", ErrBadDimension)
	}
	bb := make([]float64, n)
	copy(bb, b)

	return &System{A: a, B: bb}, nil
}

// N returns the system size.
func (s *System) N() int { return len(s.B) }

// Clone returns an independent deep copy.
func (s *System) Clone() *System {
	b := make([]float64, len(s.B))
	copy(b, s.B)

	return &System{A: s.A.Clone().(*matrix.Dense), B: b}
}
