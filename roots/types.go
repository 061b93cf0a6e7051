// SPDX-License-Identifier: MIT

package roots

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Equation is a scalar function with a printable label.
// DF is optional; when nil, Derivative falls back to a central difference.
type Equation struct {
	Label string
	F     func(x float64) float64
	DF    func(x float64) float64
}

// Derivative evaluates f'(x) exactly when DF is set, otherwise by a central
// difference with step h = 1e-6·max(1, |x|).
func (e Equation) Derivative(x float64) float64 {
	if e.DF != nil {
		return e.DF(x)
	}
	h := 1e-6 * math.Max(1, math.Abs(x))

	return (e.F(x+h) - e.F(x-h)) / (2 * h)
}

// String returns the label.
func (e Equation) String() string { return e.Label }

// Method selects a root-finding strategy.
type Method int

const (
	Bisection Method = iota + 1
	Chord
	SimpleIteration
	Newton
)

// Methods lists every Method in menu order.
func Methods() []Method { return []Method{Bisection, Chord, SimpleIteration, Newton} }

// String returns a human-readable method name.
func (m Method) String() string {
	switch m {
	case Bisection:
		return "bisection"
	case Chord:
		return "chord"
	case SimpleIteration:
		return "simple iteration"
	case Newton:
		return "newton"
	default:
		return "Method(" + strconv.Itoa(int(m)) + ")"
	}
}

// Bracketing reports whether the method needs an interval rather than a seed.
func (m Method) Bracketing() bool { return m == Bisection || m == Chord || m == SimpleIteration }

// ParseMethod accepts a method name (case-insensitive) or its menu number.
func ParseMethod(s string) (Method, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		m := Method(n)
		if m < Bisection || m > Newton {
			return 0, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
		}
		return m, nil
	}
	for _, m := range Methods() {
		if strings.ReplaceAll(m.String(), " ", "-") == strings.ReplaceAll(s, " ", "-") {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
}

// Problem is one root-finding task.
// For Newton, Left is the initial guess and Right is ignored.
type Problem struct {
	Eq        Equation
	Left      float64
	Right     float64
	Tolerance float64
	Precision int // decimal places for formatting; see Precision
}

// Trace is a per-iteration table: Rows[i][j] is the value of Columns[j]
// after iteration i+1.
type Trace struct {
	Columns []string
	Rows    [][]float64
}

func (t *Trace) add(row ...float64) { t.Rows = append(t.Rows, row) }

// Result is the outcome of Solve.
type Result struct {
	Method     Method
	Root       float64
	Value      float64 // f(Root)
	Iterations int
	Trace      Trace
}

// Format renders the root and f(root) with the given number of decimal places.
func (r *Result) Format(precision int) string {
	if precision < 0 {
		precision = 0
	}

	return fmt.Sprintf("x = %s, f(x) = %.2e, iterations = %d",
		strconv.FormatFloat(r.Root, 'f', precision, 64), r.Value, r.Iterations)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
