// SPDX-License-Identifier: MIT

package roots

import "math"

// Catalog returns the predefined equations in menu order.
// The cube root in the third equation is the real cube root, so f is
// defined on the whole real line.
func Catalog() []Equation {
	return []Equation{
		{
			Label: "-1.38*x^3 - 5.42*x^2 + 2.57*x + 10.95",
			F:     func(x float64) float64 { return -1.38*x*x*x - 5.42*x*x + 2.57*x + 10.95 },
			DF:    func(x float64) float64 { return -4.14*x*x - 10.84*x + 2.57 },
		},
		{
			Label: "x^3 - 1.89*x^2 - 2*x + 1.76",
			F:     func(x float64) float64 { return x*x*x - 1.89*x*x - 2*x + 1.76 },
			DF:    func(x float64) float64 { return 3*x*x - 3.78*x - 2 },
		},
		{
			Label: "x/2 - 2*(x + 2.39)^(1/3)",
			F:     func(x float64) float64 { return x/2 - 2*math.Cbrt(x+2.39) },
			DF: func(x float64) float64 {
				c := math.Cbrt(x + 2.39)
				return 0.5 - 2/(3*c*c)
			},
		},
		{
			Label: "-x/2 + e^x + 5*sin(x)",
			F:     func(x float64) float64 { return -x/2 + math.Exp(x) + 5*math.Sin(x) },
			DF:    func(x float64) float64 { return -0.5 + math.Exp(x) + 5*math.Cos(x) },
		},
	}
}
