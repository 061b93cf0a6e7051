// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/numlab/linsys"
	"github.com/katalvlaran/numlab/matrix"
	"github.com/katalvlaran/numlab/nlsys"
	"github.com/katalvlaran/numlab/ode"
	"github.com/katalvlaran/numlab/roots"
)

// RootsTrace tabulates a root finder's iterations; the first column is the
// iteration number.
func RootsTrace(tr roots.Trace, prec int) Table {
	t := Table{Headers: append([]string{"k"}, tr.Columns...)}
	for i, row := range tr.Rows {
		t.Rows = append(t.Rows, append([]string{strconv.Itoa(i + 1)}, Floats(row, prec)...))
	}

	return t
}

// JacobiHistory tabulates every recorded sweep: the iterate and ‖Δ‖∞.
func JacobiHistory(res *linsys.Result, prec int) Table {
	var t Table
	if len(res.History) == 0 {
		return t
	}
	n := len(res.History[0].X)
	t.Headers = []string{"k"}
	for i := 1; i <= n; i++ {
		t.Headers = append(t.Headers, fmt.Sprintf("x%d", i))
	}
	t.Headers = append(t.Headers, "max|dx|")
	for k, it := range res.History {
		row := append([]string{strconv.Itoa(k + 1)}, Floats(it.X, prec)...)
		t.Rows = append(t.Rows, append(row, Float(matrix.NormInf(it.Delta), -1)))
	}

	return t
}

// NewtonTrace tabulates Newton iterates of a system with ‖Δx‖₂.
func NewtonTrace(res *nlsys.Result, prec int) Table {
	var t Table
	if len(res.Trace) == 0 {
		return t
	}
	t.Headers = []string{"k"}
	for i := 1; i <= len(res.Trace[0].X); i++ {
		t.Headers = append(t.Headers, fmt.Sprintf("x%d", i))
	}
	t.Headers = append(t.Headers, "|dx|")
	for k, s := range res.Trace {
		row := append([]string{strconv.Itoa(k + 1)}, Floats(s.X, prec)...)
		t.Rows = append(t.Rows, append(row, Float(s.Norm, -1)))
	}

	return t
}

// Solution tabulates an ODE solution on its grid; the exact column and the
// absolute error appear only when the solution carries exact values.
func Solution(sol *ode.Solution, prec int) Table {
	t := Table{Headers: []string{"i", "x", "y"}}
	withExact := len(sol.Exact) == len(sol.X)
	if withExact {
		t.Headers = append(t.Headers, "exact", "|y-exact|")
	}
	for i := range sol.X {
		row := []string{strconv.Itoa(i), Float(sol.X[i], prec), Float(sol.Y[i], prec)}
		if withExact {
			d := sol.Y[i] - sol.Exact[i]
			if d < 0 {
				d = -d
			}
			row = append(row, Float(sol.Exact[i], prec), Float(d, -1))
		}
		t.Rows = append(t.Rows, row)
	}

	return t
}

// Differences tabulates a ragged finite-difference table: column 0 is y,
// column k holds Δᵏy.
func Differences(x []float64, d [][]float64, prec int) Table {
	t := Table{Headers: []string{"x", "y"}}
	for k := 1; k < len(d); k++ {
		t.Headers = append(t.Headers, fmt.Sprintf("d%dy", k))
	}
	for i := range x {
		row := []string{Float(x[i], prec)}
		for k := range d {
			if i < len(d[k]) {
				row = append(row, Float(d[k][i], prec))
			} else {
				row = append(row, "")
			}
		}
		t.Rows = append(t.Rows, row)
	}

	return t
}
