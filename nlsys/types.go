// SPDX-License-Identifier: MIT

package nlsys

// System is F: ℝⁿ → ℝⁿ together with its Jacobian J(x)[i][j] = ∂F_i/∂x_j.
type System struct {
	Label string
	Dim   int
	F     func(x []float64) []float64
	J     func(x []float64) [][]float64
	// Equations holds one printable component per row, used for menus and plots.
	Equations []string
}

// Component returns the scalar function (x, y) ↦ F_i(x, y) of a 2-D system.
func (s System) Component(i int) func(x, y float64) float64 {
	return func(x, y float64) float64 { return s.F([]float64{x, y})[i] }
}

// Step is one recorded Newton iteration.
type Step struct {
	X    []float64 // x_{k+1}
	Norm float64   // ‖Δx‖₂
}

// Result is the outcome of Newton.
type Result struct {
	X          []float64 // last iterate
	Residual   []float64 // F(X)
	Iterations int
	Converged  bool
	Trace      []Step
}
