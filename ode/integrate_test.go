// SPDX-License-Identifier: MIT
package ode_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numlab/ode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// y' = x + y, y(0) = 1  →  y = 2e^x − x − 1
func linear(x, y float64) float64 { return x + y }

func linearExact(x float64) float64 { return 2*math.Exp(x) - x - 1 }

// TestGrid verifies n+1 equally spaced points and the argument checks.
func TestGrid(t *testing.T) {
	xs, err := ode.Grid(0, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, xs)

	xs, err = ode.Grid(0.1, 0.7, 3)
	require.NoError(t, err)
	assert.Len(t, xs, 4)
	assert.Equal(t, 0.7, xs[3])

	_, err = ode.Grid(0, 1, 0)
	assert.ErrorIs(t, err, ode.ErrBadSteps)
	_, err = ode.Grid(1, 1, 4)
	assert.ErrorIs(t, err, ode.ErrBadInterval)
}

func endError(t *testing.T, m ode.Method, n int) float64 {
	t.Helper()
	xs, err := ode.Grid(0, 1, n)
	require.NoError(t, err)
	ys, err := ode.Integrate(m, linear, xs, 1, 1e-13)
	require.NoError(t, err)
	require.Len(t, ys, n+1)

	return math.Abs(ys[n] - linearExact(1))
}

// Halving the step divides the global error by roughly 2^p.
func TestIntegrate_ConvergenceOrder(t *testing.T) {
	cases := []struct {
		m        ode.Method
		min, max float64
	}{
		{ode.Euler, 1.8, 2.2},
		{ode.ImprovedEuler, 3.6, 4.4},
		{ode.Milne, 10, 22},
	}
	for _, tc := range cases {
		t.Run(tc.m.String(), func(t *testing.T) {
			ratio := endError(t, tc.m, 20) / endError(t, tc.m, 40)
			assert.GreaterOrEqual(t, ratio, tc.min)
			assert.LessOrEqual(t, ratio, tc.max)
		})
	}
}

// TestIntegrate_ShortGridMilne ensures grids too short for Milne use the RK4
// start only.
func TestIntegrate_ShortGridMilne(t *testing.T) {
	// fewer than five points: Milne is pure RK4 bootstrap
	xs, err := ode.Grid(0, 0.2, 2)
	require.NoError(t, err)
	ys, err := ode.Integrate(ode.Milne, linear, xs, 1, 1e-9)
	require.NoError(t, err)
	assert.InDelta(t, linearExact(0.2), ys[2], 1e-6)
}

// TestIntegrate_CorrectorDiverges verifies a stiff equation exhausts the
// corrector passes.
func TestIntegrate_CorrectorDiverges(t *testing.T) {
	stiff := func(_, y float64) float64 { return -1000 * y }
	xs, err := ode.Grid(0, 0.1, 10)
	require.NoError(t, err)

	_, err = ode.Integrate(ode.Milne, stiff, xs, 1, 1e-6)
	assert.ErrorIs(t, err, ode.ErrCorrectorDiverged)
}

// TestIntegrate_NonFinite ensures blow-up and division by zero yield
// ErrNonFinite.
func TestIntegrate_NonFinite(t *testing.T) {
	blowUp := func(_, y float64) float64 { return y * y }
	xs, err := ode.Grid(0, 2, 1000)
	require.NoError(t, err)
	_, err = ode.Integrate(ode.Euler, blowUp, xs, 1, 1e-6)
	assert.ErrorIs(t, err, ode.ErrNonFinite)

	ratio := func(x, y float64) float64 { return y / x }
	xs, err = ode.Grid(0, 1, 4)
	require.NoError(t, err)
	_, err = ode.Integrate(ode.ImprovedEuler, ratio, xs, 1, 1e-6)
	assert.ErrorIs(t, err, ode.ErrNonFinite)
}

// TestIntegrate_Arguments covers a nil f, a one-point grid and an unknown
// method.
func TestIntegrate_Arguments(t *testing.T) {
	_, err := ode.Integrate(ode.Euler, nil, []float64{0, 1}, 0, 1e-3)
	assert.ErrorIs(t, err, ode.ErrNilFunc)
	_, err = ode.Integrate(ode.Euler, linear, []float64{0}, 0, 1e-3)
	assert.ErrorIs(t, err, ode.ErrShortGrid)
	_, err = ode.Integrate(ode.Method(9), linear, []float64{0, 1}, 0, 1e-3)
	assert.ErrorIs(t, err, ode.ErrUnknownMethod)
}

// TestMethod checks method names and ParseMethod by name and number.
func TestMethod(t *testing.T) {
	assert.Equal(t, []int{1, 2, 4}, []int{ode.Euler.Order(), ode.ImprovedEuler.Order(), ode.Milne.Order()})

	m, err := ode.ParseMethod("Improved-Euler")
	require.NoError(t, err)
	assert.Equal(t, ode.ImprovedEuler, m)
	m, err = ode.ParseMethod("3")
	require.NoError(t, err)
	assert.Equal(t, ode.Milne, m)
	_, err = ode.ParseMethod("adams")
	assert.ErrorIs(t, err, ode.ErrUnknownMethod)
}
