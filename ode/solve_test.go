// SPDX-License-Identifier: MIT
package ode_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/katalvlaran/numlab/ode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linearProblem() ode.Problem {
	return ode.Catalog()[1]
}

// TestSolve_RichardsonConverges verifies step doubling meets eps for the
// one-step methods.
func TestSolve_RichardsonConverges(t *testing.T) {
	for _, m := range []ode.Method{ode.Euler, ode.ImprovedEuler} {
		t.Run(m.String(), func(t *testing.T) {
			p := ode.Params{X0: 0, XEnd: 1, N: 4, Y0: 1, Eps: 1e-3}
			sol, err := ode.Solve(m, linearProblem(), p)
			require.NoError(t, err)

			assert.True(t, sol.Converged)
			assert.LessOrEqual(t, sol.Error, p.Eps)
			assert.GreaterOrEqual(t, sol.Refinements, 1)
			assert.Equal(t, 4<<sol.Refinements, sol.N)
			assert.Len(t, sol.X, sol.N+1)
			assert.Len(t, sol.Y, sol.N+1)
			assert.Len(t, sol.Exact, sol.N+1)
			assert.Equal(t, 1.0, sol.X[sol.N])
			assert.InDelta(t, 1.0/float64(sol.N), sol.H, 1e-15)
			assert.InDelta(t, linearExact(1), sol.Y[sol.N], 2*p.Eps)
		})
	}
}

// TestSolve_MilneAgainstExact compares Milne with the exact solution on every
// grid point.
func TestSolve_MilneAgainstExact(t *testing.T) {
	p := ode.Params{X0: 0, XEnd: 1, N: 4, Y0: 1, Eps: 1e-6}
	sol, err := ode.Solve(ode.Milne, linearProblem(), p)
	require.NoError(t, err)

	assert.True(t, sol.Converged)
	for i, x := range sol.X {
		assert.InDelta(t, linearExact(x), sol.Y[i], p.Eps)
	}
}

// TestSolve_MilneWithoutExactUsesRichardson ensures a problem without an
// exact solution falls back to the Richardson estimate.
func TestSolve_MilneWithoutExactUsesRichardson(t *testing.T) {
	pr := linearProblem()
	pr.Exact = nil
	p := ode.Params{X0: 0, XEnd: 1, N: 4, Y0: 1, Eps: 1e-6}

	sol, err := ode.Solve(ode.Milne, pr, p)
	require.NoError(t, err)
	assert.True(t, sol.Converged)
	assert.Nil(t, sol.Exact)
	assert.InDelta(t, linearExact(1), sol.Y[sol.N], 1e-5)

	_, err = ode.Solve(ode.Euler, pr, p, ode.WithExactError())
	assert.ErrorIs(t, err, ode.ErrNoExact)
}

// TestSolve_ExactErrorForEuler verifies WithExactError measures the largest
// deviation from the exact solution.
func TestSolve_ExactErrorForEuler(t *testing.T) {
	p := ode.Params{X0: 0, XEnd: 1, N: 4, Y0: 1, Eps: 1e-2}
	sol, err := ode.Solve(ode.Euler, linearProblem(), p, ode.WithExactError())
	require.NoError(t, err)
	assert.True(t, sol.Converged)

	worst := 0.0
	for i, x := range sol.X {
		worst = math.Max(worst, math.Abs(linearExact(x)-sol.Y[i]))
	}
	assert.InDelta(t, worst, sol.Error, 1e-12)
}

// TestSolve_RefinementBudget checks that an exhausted budget returns the last
// solution unconverged and logs a warning.
func TestSolve_RefinementBudget(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	p := ode.Params{X0: 0, XEnd: 1, N: 4, Y0: 1, Eps: 1e-12}

	sol, err := ode.Solve(ode.Euler, linearProblem(), p, ode.WithMaxRefinements(3), ode.WithLogger(logger))
	require.NoError(t, err)
	assert.False(t, sol.Converged)
	assert.Equal(t, 3, sol.Refinements)
	assert.Equal(t, 32, sol.N)
	assert.Greater(t, sol.Error, p.Eps)
	assert.Contains(t, buf.String(), "refinement budget exhausted")
}

// TestSolve_Validation verifies the sentinel for each invalid problem.
func TestSolve_Validation(t *testing.T) {
	good := ode.Params{X0: 1, XEnd: 2, N: 4, Y0: 1, Eps: 1e-3}
	cases := []struct {
		name string
		m    ode.Method
		pr   ode.Problem
		p    ode.Params
		want error
	}{
		{"reversed interval", ode.Euler, linearProblem(), ode.Params{X0: 2, XEnd: 1, N: 4, Eps: 1e-3}, ode.ErrBadInterval},
		{"one step", ode.Euler, linearProblem(), ode.Params{X0: 0, XEnd: 1, N: 1, Eps: 1e-3}, ode.ErrBadSteps},
		{"zero eps", ode.Euler, linearProblem(), ode.Params{X0: 0, XEnd: 1, N: 4}, ode.ErrBadTolerance},
		{"nan y0", ode.Euler, linearProblem(), ode.Params{X0: 0, XEnd: 1, N: 4, Y0: math.NaN(), Eps: 1e-3}, ode.ErrNonFinite},
		{"nil f", ode.Euler, ode.Problem{}, good, ode.ErrNilFunc},
		{"unknown method", ode.Method(0), linearProblem(), good, ode.ErrUnknownMethod},
		{"log of negative", ode.Euler, ode.Catalog()[8], ode.Params{X0: -1, XEnd: 2, N: 4, Eps: 1e-3}, ode.ErrDomain},
		{"ratio through zero", ode.Milne, ode.Catalog()[3], ode.Params{X0: -1, XEnd: 1, N: 4, Y0: 1, Eps: 1e-3}, ode.ErrDomain},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sol, err := ode.Solve(tc.m, tc.pr, tc.p)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, sol)
		})
	}
}

// TestCatalog_ExactMatchesInitialValue ensures every exact solution passes
// through its initial point.
func TestCatalog_ExactMatchesInitialValue(t *testing.T) {
	for _, pr := range ode.Catalog() {
		require.NotNil(t, pr.Exact, pr.Label)
		assert.InDelta(t, 0.1, pr.Exact(1, 1, 0.1), 1e-12, pr.Label)
	}
}

// TestCatalog_SolvableByEveryMethod runs each catalog equation with each
// method on a safe interval.
func TestCatalog_SolvableByEveryMethod(t *testing.T) {
	p := ode.Params{X0: 1, XEnd: 1.5, N: 4, Y0: 0.1, Eps: 1e-4}
	for _, pr := range ode.Catalog() {
		for _, m := range ode.Methods() {
			sol, err := ode.Solve(m, pr, p)
			require.NoError(t, err, "%s / %s", pr.Label, m)
			assert.True(t, sol.Converged, "%s / %s", pr.Label, m)
			assert.InDelta(t, sol.Exact[sol.N], sol.Y[sol.N], 10*p.Eps, "%s / %s", pr.Label, m)
		}
	}
}

// TestOptions_Panic checks that invalid option values panic.
func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { ode.WithMaxRefinements(-1) })
	assert.Panics(t, func() { ode.WithMaxCorrectorPasses(0) })
}
