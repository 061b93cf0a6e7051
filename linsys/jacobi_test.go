// SPDX-License-Identifier: MIT
package linsys_test

import (
	"testing"

	"github.com/katalvlaran/numlab/linsys"
	"github.com/katalvlaran/numlab/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSystem(t *testing.T, rows [][]float64, b []float64) *linsys.System {
	t.Helper()
	s, err := linsys.NewSystem(rows, b)
	require.NoError(t, err)

	return s
}

// TestSolve_TwoByTwo solves a small dominant system and checks the residual.
func TestSolve_TwoByTwo(t *testing.T) {
	s := mustSystem(t, [][]float64{{4, 1}, {1, 3}}, []float64{1, 2})

	res, err := linsys.Solve(s, 1e-6)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.True(t, res.Dominant)
	assert.False(t, res.Reordered)
	assert.InDelta(t, 1.0/11, res.X[0], 1e-5)
	assert.InDelta(t, 7.0/11, res.X[1], 1e-5)
	assert.Less(t, res.Iterations, 50)
	assert.Len(t, res.History, res.Iterations)
	assert.Less(t, matrix.NormInf(res.Residual), 1e-5)
}

// TestSolve_DominantThreeByThree verifies convergence to a known solution.
func TestSolve_DominantThreeByThree(t *testing.T) {
	// exact solution x = (1, 2, 3)
	s := mustSystem(t, [][]float64{
		{4, -1, 0},
		{-1, 4, -1},
		{0, -1, 4},
	}, []float64{2, 4, 10})

	res, err := linsys.Solve(s, 1e-10)
	require.NoError(t, err)
	for i, want := range []float64{1, 2, 3} {
		assert.InDelta(t, want, res.X[i], 1e-8)
	}
}

// TestSolve_DoesNotMutateInput ensures pivoting and scaling run on a copy.
func TestSolve_DoesNotMutateInput(t *testing.T) {
	s := mustSystem(t, [][]float64{{1, 5, 1}, {6, 1, 1}, {1, 1, 4}}, []float64{7, 8, 6})
	before := s.Clone()

	res, err := linsys.Solve(s, 1e-9)
	require.NoError(t, err)
	assert.True(t, res.Reordered)
	assert.True(t, res.Dominant)
	assert.Equal(t, before.B, s.B)
	assert.Equal(t, before.A.String(), s.A.String())
	// x = (1, 1, 1)
	for _, v := range res.X {
		assert.InDelta(t, 1, v, 1e-7)
	}
}

// TestSolve_ResidualShrinksWithTolerance checks that a tighter eps gives a
// smaller residual.
func TestSolve_ResidualShrinksWithTolerance(t *testing.T) {
	s := mustSystem(t, [][]float64{{5, 2, 1}, {1, 6, 2}, {2, 1, 7}}, []float64{3, -1, 12})

	loose, err := linsys.Solve(s, 1e-2)
	require.NoError(t, err)
	tight, err := linsys.Solve(s, 1e-10)
	require.NoError(t, err)

	assert.Greater(t, tight.Iterations, loose.Iterations)
	assert.Less(t, matrix.NormInf(tight.Residual), matrix.NormInf(loose.Residual))
	assert.Less(t, matrix.NormInf(tight.Residual), 1e-8)
}

// TestSolve_ZeroDiagonal ensures a zero pivot after reordering yields
// ErrZeroDiagonal.
func TestSolve_ZeroDiagonal(t *testing.T) {
	s := mustSystem(t, [][]float64{{0, 0}, {0, 1}}, []float64{1, 1})

	res, err := linsys.Solve(s, 1e-6)
	assert.ErrorIs(t, err, linsys.ErrZeroDiagonal)
	assert.Nil(t, res)
}

// TestSolve_BoundedVariantStops verifies that the iteration cap returns the
// last iterate together with its residual and ErrMaxIterations.
func TestSolve_BoundedVariantStops(t *testing.T) {
	// Jacobi iteration matrix has spectral radius √2; no reordering helps.
	s := mustSystem(t, [][]float64{{1, 2}, {1, 1}}, []float64{3, 2})

	res, err := linsys.Solve(s, 1e-6, linsys.WithMaxIterations(25))
	require.ErrorIs(t, err, linsys.ErrMaxIterations)
	require.NotNil(t, res)
	assert.False(t, res.Converged)
	assert.False(t, res.Dominant)
	assert.Equal(t, 25, res.Iterations)
	assert.Len(t, res.X, 2)
	want, err := matrix.Residual(s.A, res.X, s.B)
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, res.Residual, 1e-12)
}

// TestSolve_Diverges ensures a blown-up iterate stops with ErrDiverged.
func TestSolve_Diverges(t *testing.T) {
	s := mustSystem(t, [][]float64{{1, 2}, {1, 1}}, []float64{3, 2})

	res, err := linsys.Solve(s, 1e-6, linsys.WithHistory(false))
	require.ErrorIs(t, err, linsys.ErrDiverged)
	require.NotNil(t, res)
	assert.False(t, res.Converged)
	assert.Empty(t, res.History)
	assert.Greater(t, res.Iterations, 100)
}

// TestSolve_BadArguments covers non-positive tolerances, a nil system and a 1×1
// system.
func TestSolve_BadArguments(t *testing.T) {
	s := mustSystem(t, [][]float64{{2}}, []float64{4})

	_, err := linsys.Solve(s, 0)
	assert.ErrorIs(t, err, linsys.ErrBadTolerance)
	_, err = linsys.Solve(s, -1)
	assert.ErrorIs(t, err, linsys.ErrBadTolerance)
	_, err = linsys.Solve(nil, 1e-3)
	assert.ErrorIs(t, err, linsys.ErrBadDimension)

	res, err := linsys.Solve(s, 1e-9)
	require.NoError(t, err)
	assert.InDelta(t, 2, res.X[0], 1e-12)
}

// TestNewSystem_Errors ensures NewSystem rejects empty, mismatched, non-square
// and oversized input.
func TestNewSystem_Errors(t *testing.T) {
	_, err := linsys.NewSystem(nil, nil)
	assert.ErrorIs(t, err, linsys.ErrBadDimension)

	_, err = linsys.NewSystem([][]float64{{1, 2}, {3, 4}}, []float64{1})
	assert.ErrorIs(t, err, linsys.ErrBadDimension)

	_, err = linsys.NewSystem([][]float64{{1, 2, 3}, {3, 4, 5}}, []float64{1, 2})
	assert.ErrorIs(t, err, linsys.ErrBadDimension)

	big := make([][]float64, linsys.MaxDimension+1)
	for i := range big {
		big[i] = make([]float64, len(big))
	}
	_, err = linsys.NewSystem(big, make([]float64, len(big)))
	assert.ErrorIs(t, err, linsys.ErrBadDimension)
}

// TestWithMaxIterations_PanicsOnNegative checks the option guard.
func TestWithMaxIterations_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { linsys.WithMaxIterations(-1) })
}
