// SPDX-License-Identifier: MIT

package ode

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Func is the right-hand side f(x, y) of y' = f(x, y).
type Func func(x, y float64) float64

// Exact is the closed-form solution through (x0, y0), evaluated at x.
type Exact func(x, x0, y0 float64) float64

// Problem is a catalogued equation.
type Problem struct {
	Label string
	F     Func
	Exact Exact // nil when no closed form is known
	// Domain rejects intervals where F or Exact are undefined; nil accepts all.
	Domain func(x0, xEnd float64) error
}

// Method selects an integrator.
type Method int

const (
	Euler Method = iota + 1
	ImprovedEuler
	Milne
)

// Methods lists every Method in menu order.
func Methods() []Method { return []Method{Euler, ImprovedEuler, Milne} }

// String returns a human-readable name.
func (m Method) String() string {
	switch m {
	case Euler:
		return "euler"
	case ImprovedEuler:
		return "improved euler"
	case Milne:
		return "milne"
	default:
		return "Method(" + strconv.Itoa(int(m)) + ")"
	}
}

// Order is the global order of accuracy p.
func (m Method) Order() int {
	switch m {
	case Euler:
		return 1
	case ImprovedEuler:
		return 2
	case Milne:
		return 4
	default:
		return 0
	}
}

// ParseMethod accepts a name (case-insensitive, '-' or ' ' separated) or a
// menu number.
func ParseMethod(s string) (Method, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if m := Method(n); m >= Euler && m <= Milne {
			return m, nil
		}
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
	}
	norm := strings.ReplaceAll(s, "-", " ")
	for _, m := range Methods() {
		if m.String() == norm {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
}

// Params are the numeric inputs of Solve.
type Params struct {
	X0   float64
	XEnd float64
	N    int // initial step count, >= 2
	Y0   float64
	Eps  float64
}

// Validate checks interval, step count, tolerance and y0.
func (p Params) Validate() error {
	if !finite(p.X0) || !finite(p.XEnd) || !(p.X0 < p.XEnd) {
		return ErrBadInterval
	}
	if p.N < 2 {
		return ErrBadSteps
	}
	if !(p.Eps > 0) || math.IsInf(p.Eps, 0) {
		return ErrBadTolerance
	}
	if !finite(p.Y0) {
		return ErrNonFinite
	}

	return nil
}

// Solution is the outcome of Solve.
type Solution struct {
	Method      Method
	X           []float64 // grid, n+1 points
	Y           []float64 // numeric solution on X
	Exact       []float64 // exact solution on X, nil without a closed form
	N           int       // final step count
	H           float64   // final step
	Error       float64   // last error estimate
	Refinements int       // number of doublings performed
	Converged   bool      // Error <= Eps
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
