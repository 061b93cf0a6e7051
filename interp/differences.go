// SPDX-License-Identifier: MIT

package interp

import (
	"fmt"
	"strings"
)

// DividedDifferences returns the Newton coefficients f[x_0], f[x_0,x_1], …,
// f[x_0..x_{n−1}]. x must be distinct.
// Complexity: O(n²) time, O(n) space.
func DividedDifferences(x, y []float64) []float64 {
	n := len(y)
	coef := append([]float64(nil), y...)
	for j := 1; j < n; j++ {
		for i := n - 1; i >= j; i-- {
			coef[i] = (coef[i] - coef[i-1]) / (x[i] - x[i-j])
		}
	}

	return coef
}

// FiniteDifferences returns the forward difference table: d[k][i] = Δ^k y_i,
// with len(d[k]) = len(y) − k.
// Complexity: O(n²) time and space.
func FiniteDifferences(y []float64) [][]float64 {
	n := len(y)
	d := make([][]float64, n)
	d[0] = append([]float64(nil), y...)
	for k := 1; k < n; k++ {
		prev := d[k-1]
		d[k] = make([]float64, n-k)
		for i := range d[k] {
			d[k][i] = prev[i+1] - prev[i]
		}
	}

	return d
}

// FormatTable renders a finite difference table row by row: row i lists
// y_i, Δy_i, Δ²y_i, … separated by tabs, with 4 decimals.
func FormatTable(d [][]float64) string {
	if len(d) == 0 {
		return ""
	}
	var b strings.Builder
	for i := range d[0] {
		for k := 0; k < len(d) && i < len(d[k]); k++ {
			if k > 0 {
				b.WriteByte('\t')
			}
			fmt.Fprintf(&b, "%.4f", d[k][i])
		}
		b.WriteByte('\n')
	}

	return b.String()
}
