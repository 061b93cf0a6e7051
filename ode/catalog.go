// SPDX-License-Identifier: MIT

package ode

import (
	"fmt"
	"math"
)

// Catalog returns the predefined equations in menu order.
func Catalog() []Problem {
	return []Problem{
		{
			Label: "y + (1 + x)*y^2",
			F:     func(x, y float64) float64 { return y + (1+x)*y*y },
			Exact: func(x, x0, y0 float64) float64 {
				return -math.Exp(x) / (x*math.Exp(x) - (x0*math.Exp(x0)*y0+math.Exp(x0))/y0)
			},
		},
		{
			Label: "x + y",
			F:     func(x, y float64) float64 { return x + y },
			Exact: func(x, x0, y0 float64) float64 { return math.Exp(x-x0)*(y0+x0+1) - x - 1 },
		},
		{
			Label: "sin(x) - y",
			F:     func(x, y float64) float64 { return math.Sin(x) - y },
			Exact: func(x, x0, y0 float64) float64 {
				c := 2*math.Exp(x0)*y0 - math.Exp(x0)*math.Sin(x0) + math.Exp(x0)*math.Cos(x0)
				return c/(2*math.Exp(x)) + math.Sin(x)/2 - math.Cos(x)/2
			},
		},
		{
			Label:  "y / x",
			F:      func(x, y float64) float64 { return y / x },
			Exact:  func(x, x0, y0 float64) float64 { return x * y0 / x0 },
			Domain: excludesZero,
		},
		{
			Label: "e^x",
			F:     func(x, _ float64) float64 { return math.Exp(x) },
			Exact: func(x, x0, y0 float64) float64 { return y0 - math.Exp(x0) + math.Exp(x) },
		},
		{
			Label: "cos(x)",
			F:     func(x, _ float64) float64 { return math.Cos(x) },
			Exact: func(x, x0, y0 float64) float64 { return y0 + math.Sin(x) - math.Sin(x0) },
		},
		{
			Label: "x * y",
			F:     func(x, y float64) float64 { return x * y },
			Exact: func(x, x0, y0 float64) float64 { return y0 * math.Exp(0.5*(x*x-x0*x0)) },
		},
		{
			Label: "y * cos(x)",
			F:     func(x, y float64) float64 { return y * math.Cos(x) },
			Exact: func(x, x0, y0 float64) float64 { return y0 * math.Exp(math.Sin(x)-math.Sin(x0)) },
		},
		{
			Label: "ln(x)",
			F:     func(x, _ float64) float64 { return math.Log(x) },
			Exact: func(x, x0, y0 float64) float64 {
				return y0 + x*math.Log(x) - x - x0*math.Log(x0) + x0
			},
			Domain: positive,
		},
	}
}

func positive(x0, xEnd float64) error {
	if x0 <= 0 || xEnd <= 0 {
		return fmt.Errorf("x0 and x_end must be > 0: %w", ErrDomain)
	}

	return nil
}

func excludesZero(x0, xEnd float64) error {
	if x0 <= 0 && xEnd >= 0 {
		return fmt.Errorf("interval must not contain x = 0: %w", ErrDomain)
	}

	return nil
}
