// SPDX-License-Identifier: MIT

package nlsys

import "math"

// Catalog returns the predefined 2-D systems.
func Catalog() []System {
	return []System{
		{
			Label:     "circle and parabola",
			Dim:       2,
			Equations: []string{"x^2 + y^2 - 1 = 0", "x^2 - y - 0.5 = 0"},
			F: func(v []float64) []float64 {
				x, y := v[0], v[1]
				return []float64{x*x + y*y - 1, x*x - y - 0.5}
			},
			J: func(v []float64) [][]float64 {
				x, y := v[0], v[1]
				return [][]float64{{2 * x, 2 * y}, {2 * x, -1}}
			},
		},
		{
			Label:     "trigonometric",
			Dim:       2,
			Equations: []string{"sin(y) + 2x - 2 = 0", "y + cos(x - 1) - 0.7 = 0"},
			F: func(v []float64) []float64 {
				x, y := v[0], v[1]
				return []float64{math.Sin(y) + 2*x - 2, y + math.Cos(x-1) - 0.7}
			},
			J: func(v []float64) [][]float64 {
				x, y := v[0], v[1]
				return [][]float64{{2, math.Cos(y)}, {-math.Sin(x - 1), 1}}
			},
		},
	}
}
