// SPDX-License-Identifier: MIT
package linsys_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/numlab/linsys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReadFile parses the size, augmented rows and tolerance.
func TestReadFile(t *testing.T) {
	in := "2\n4 1 1\n1 3 2\n1e-6\n"

	s, tol, err := linsys.ReadFile(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 1e-6, tol)
	assert.Equal(t, 2, s.N())
	assert.Equal(t, []float64{1, 2}, s.B)
	row, _ := s.A.Row(1)
	assert.Equal(t, []float64{1, 3}, row)
}

// TestReadFile_Errors verifies the sentinel and line number of each malformed
// input.
func TestReadFile_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
		line string
	}{
		{"not a number", "two\n", linsys.ErrBadInput, "line 1"},
		{"dimension zero", "0\n", linsys.ErrBadDimension, "line 1"},
		{"dimension too big", "21\n", linsys.ErrBadDimension, "line 1"},
		{"short row", "2\n4 1 1\n1 3\n1e-6\n", linsys.ErrBadInput, "line 3"},
		{"bad value", "1\n4 x\n1e-6\n", linsys.ErrBadInput, "line 2"},
		{"missing tolerance", "1\n4 1\n", linsys.ErrBadInput, "line 3"},
		{"negative tolerance", "1\n4 1\n-0.1\n", linsys.ErrBadTolerance, "line 3"},
		{"nan value", "1\nNaN 1\n0.1\n", linsys.ErrBadInput, "line 2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := linsys.ReadFile(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), tc.line)
		})
	}
}

// TestParseRow splits a row into coefficients and the right-hand side.
func TestParseRow(t *testing.T) {
	coef, rhs, err := linsys.ParseRow("  1.5 -2   3e1 ", 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, -2}, coef)
	assert.Equal(t, 30.0, rhs)
}
