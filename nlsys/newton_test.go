// SPDX-License-Identifier: MIT
package nlsys_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/numlab/nlsys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewton_CircleParabola verifies the intersection found from (1, 1).
func TestNewton_CircleParabola(t *testing.T) {
	sys := nlsys.Catalog()[0]

	res, err := nlsys.Newton(sys, []float64{1, 1}, 1e-10)
	require.NoError(t, err)
	assert.True(t, res.Converged)

	wantY := (math.Sqrt(3) - 1) / 2
	assert.InDelta(t, math.Sqrt(wantY+0.5), res.X[0], 1e-9)
	assert.InDelta(t, wantY, res.X[1], 1e-9)
	for _, r := range res.Residual {
		assert.InDelta(t, 0, r, 1e-12)
	}
	assert.Len(t, res.Trace, res.Iterations)
	assert.Less(t, res.Trace[len(res.Trace)-1].Norm, 1e-10)
}

// TestNewton_Trigonometric ensures a tight tolerance is reached on the second
// catalog system.
func TestNewton_Trigonometric(t *testing.T) {
	sys := nlsys.Catalog()[1]

	res, err := nlsys.Newton(sys, []float64{1, 0}, 1e-12)
	require.NoError(t, err)
	for _, r := range res.Residual {
		assert.InDelta(t, 0, r, 1e-10)
	}
}

// TestNewton_SingularJacobianAtOrigin checks that a singular first Jacobian
// stops with ErrSingularJacobian and no result.
func TestNewton_SingularJacobianAtOrigin(t *testing.T) {
	sys := nlsys.Catalog()[0]

	res, err := nlsys.Newton(sys, []float64{0, 0}, 1e-6)
	assert.ErrorIs(t, err, nlsys.ErrSingularJacobian)
	assert.Nil(t, res)
}

// TestNewton_BudgetExhausted verifies the last iterate is returned with
// ErrMaxIterations.
func TestNewton_BudgetExhausted(t *testing.T) {
	sys := nlsys.Catalog()[0]

	res, err := nlsys.Newton(sys, []float64{3, 3}, 1e-14, nlsys.WithMaxIterations(2))
	require.ErrorIs(t, err, nlsys.ErrNoConvergence)
	require.NotNil(t, res)
	assert.False(t, res.Converged)
	assert.Equal(t, 2, res.Iterations)
	assert.Len(t, res.Residual, 2)
}

// TestNewton_NoRealSolution ensures a system without a real root never
// reports convergence.
func TestNewton_NoRealSolution(t *testing.T) {
	// x² + 1 = 0 has no real root; iterates wander until the budget runs out
	// or J = 2x hits zero exactly.
	sys := nlsys.System{
		Dim: 1,
		F:   func(v []float64) []float64 { return []float64{v[0]*v[0] + 1} },
		J:   func(v []float64) [][]float64 { return [][]float64{{2 * v[0]}} },
	}

	_, err := nlsys.Newton(sys, []float64{0.5}, 1e-8, nlsys.WithMaxIterations(50))
	require.Error(t, err)
	assert.True(t, errors.Is(err, nlsys.ErrNoConvergence) ||
		errors.Is(err, nlsys.ErrSingularJacobian) ||
		errors.Is(err, nlsys.ErrNonFinite), err.Error())
}

// TestNewton_InvalidArguments covers nil functions, dimension mismatches, a
// bad tolerance and non-finite values.
func TestNewton_InvalidArguments(t *testing.T) {
	sys := nlsys.Catalog()[0]

	_, err := nlsys.Newton(nlsys.System{Dim: 2}, []float64{1, 1}, 1e-6)
	assert.ErrorIs(t, err, nlsys.ErrNilSystem)
	_, err = nlsys.Newton(sys, []float64{1}, 1e-6)
	assert.ErrorIs(t, err, nlsys.ErrDimension)
	_, err = nlsys.Newton(sys, []float64{1, 1}, 0)
	assert.ErrorIs(t, err, nlsys.ErrBadTolerance)

	bad := sys
	bad.J = func([]float64) [][]float64 { return [][]float64{{1, 0}} }
	_, err = nlsys.Newton(bad, []float64{1, 1}, 1e-6)
	assert.ErrorIs(t, err, nlsys.ErrDimension)

	nan := sys
	nan.F = func([]float64) []float64 { return []float64{math.NaN(), 0} }
	_, err = nlsys.Newton(nan, []float64{1, 1}, 1e-6)
	assert.ErrorIs(t, err, nlsys.ErrNonFinite)
}

// TestSystem_Component checks that Component evaluates one equation of F.
func TestSystem_Component(t *testing.T) {
	sys := nlsys.Catalog()[0]
	f0, f1 := sys.Component(0), sys.Component(1)
	assert.Equal(t, 1.0, f0(1, 1))
	assert.Equal(t, -0.5, f1(1, 1))
}
