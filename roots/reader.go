// SPDX-License-Identifier: MIT

package roots

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadInterval reads the bracketing input format: left bound, right bound
// and tolerance, one per line. The returned Problem has no Equation set.
func ReadInterval(r io.Reader) (Problem, error) {
	lines, err := readLines(r, 3)
	if err != nil {
		return Problem{}, err
	}
	var p Problem
	if p.Left, err = parseFloatLine(lines[0], 1); err != nil {
		return Problem{}, err
	}
	if p.Right, err = parseFloatLine(lines[1], 2); err != nil {
		return Problem{}, err
	}
	if p.Tolerance, p.Precision, err = ParseTolerance(lines[2]); err != nil {
		return Problem{}, fmt.Errorf("line 3: %w", err)
	}

	return p, nil
}

// ReadInitialGuess reads the Newton input format: initial guess and
// tolerance, one per line. The guess is stored in Problem.Left.
func ReadInitialGuess(r io.Reader) (Problem, error) {
	lines, err := readLines(r, 2)
	if err != nil {
		return Problem{}, err
	}
	var p Problem
	if p.Left, err = parseFloatLine(lines[0], 1); err != nil {
		return Problem{}, err
	}
	if p.Tolerance, p.Precision, err = ParseTolerance(lines[1]); err != nil {
		return Problem{}, fmt.Errorf("line 2: %w", err)
	}

	return p, nil
}

func readLines(r io.Reader, n int) ([]string, error) {
	sc := bufio.NewScanner(r)
	out := make([]string, 0, n)
	for len(out) < n && sc.Scan() {
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(out) < n {
		return nil, fmt.Errorf("line %d: unexpected end of input: %w", len(out)+1, ErrBadInput)
	}

	return out, nil
}

func parseFloatLine(s string, line int) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !finite(v) {
		return 0, fmt.Errorf("line %d: %q: %w", line, s, ErrBadInput)
	}

	return v, nil
}
