// SPDX-License-Identifier: MIT
package linsys_test

import (
	"testing"

	"github.com/katalvlaran/numlab/linsys"
)

// BenchmarkSolve_Tridiagonal20 measures Solve on the largest allowed
// tridiagonal system.
func BenchmarkSolve_Tridiagonal20(b *testing.B) {
	n := linsys.MaxDimension
	rows := make([][]float64, n)
	rhs := make([]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		rows[i][i] = 4
		if i > 0 {
			rows[i][i-1] = -1
		}
		if i < n-1 {
			rows[i][i+1] = -1
		}
		rhs[i] = float64(i + 1)
	}
	s, err := linsys.NewSystem(rows, rhs)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = linsys.Solve(s, 1e-10, linsys.WithHistory(false)); err != nil {
			b.Fatal(err)
		}
	}
}
