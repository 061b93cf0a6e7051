// SPDX-License-Identifier: MIT

package linsys

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ParseDimension parses the system size line and checks 1 ≤ n ≤ MaxDimension.
func ParseDimension(line string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("dimension %q: %w", line, ErrBadInput)
	}
	if n < 1 || n > MaxDimension {
		return 0, fmt.Errorf("dimension %d: %w", n, ErrBadDimension)
	}

	return n, nil
}

// ParseRow parses one augmented row: n coefficients followed by the right-hand side.
func ParseRow(line string, n int) ([]float64, float64, error) {
	fields := strings.Fields(line)
	if len(fields) != n+1 {
		return nil, 0, fmt.Errorf("row has %d values, want %d: %w", len(fields), n+1, ErrBadInput)
	}
	vals := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, 0, fmt.Errorf("value %q: %w", f, ErrBadInput)
		}
		vals[i] = v
	}

	return vals[:n], vals[n], nil
}

// ParseTolerance parses a positive finite tolerance.
func ParseTolerance(line string) (float64, error) {
	tol, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return 0, fmt.Errorf("tolerance %q: %w", line, ErrBadInput)
	}
	if !(tol > 0) || math.IsInf(tol, 0) {
		return 0, fmt.Errorf("tolerance %v: %w", tol, ErrBadTolerance)
	}

	return tol, nil
}

// ReadFile reads the text format:
//
//	line 1      n (1..20)
//	n lines     n coefficients and the right-hand side, space separated
//	last line   tolerance (> 0)
//
// Errors carry the 1-based line number and match ErrBadInput,
// ErrBadDimension or ErrBadTolerance.
func ReadFile(r io.Reader) (*System, float64, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0
	next := func() (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("line %d: unexpected end of input: %w", lineNo+1, ErrBadInput)
		}
		lineNo++
		return sc.Text(), nil
	}

	line, err := next()
	if err != nil {
		return nil, 0, err
	}
	n, err := ParseDimension(line)
	if err != nil {
		return nil, 0, fmt.Errorf("line %d: %w", lineNo, err)
	}

	rows := make([][]float64, n)
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		if line, err = next(); err != nil {
			return nil, 0, err
		}
		if rows[i], b[i], err = ParseRow(line, n); err != nil {
			return nil, 0, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}

	if line, err = next(); err != nil {
		return nil, 0, err
	}
	tol, err := ParseTolerance(line)
	if err != nil {
		return nil, 0, fmt.Errorf("line %d: %w", lineNo, err)
	}

	sys, err := NewSystem(rows, b)
	if err != nil {
		return nil, 0, err
	}

	return sys, tol, nil
}
