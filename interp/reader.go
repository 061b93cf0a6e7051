// SPDX-License-Identifier: MIT

package interp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Input is a parsed interpolation task.
type Input struct {
	X        float64  // point to interpolate at
	Nodes    Nodes    // table in file order; Validate is left to the caller
	Warnings []string // skipped lines, one message each
}

// ReadNodes reads the text format: the first non-blank line is the point x,
// each further line is an "x_i y_i" pair. Blank lines before the point are
// ignored. Blank or malformed pair lines are skipped and reported in
// Input.Warnings.
//
// Errors:
//   - ErrBadInput when the point line is not a number or no node was read.
func ReadNodes(r io.Reader) (*Input, error) {
	sc := bufio.NewScanner(r)
	in := &Input{}
	havePoint := false
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			if havePoint {
				in.Warnings = append(in.Warnings, fmt.Sprintf("line %d: skipped empty line", lineNo))
			}
			continue
		}
		if !havePoint {
			v, err := strconv.ParseFloat(line, 64)
			if err != nil || !finite(v) {
				return nil, fmt.Errorf("line %d: interpolation point %q: %w", lineNo, line, ErrBadInput)
			}
			in.X, havePoint = v, true
			continue
		}
		x, y, err := ParsePair(line)
		if err != nil {
			in.Warnings = append(in.Warnings, fmt.Sprintf("line %d: skipped %q: %v", lineNo, line, err))
			continue
		}
		in.Nodes.X = append(in.Nodes.X, x)
		in.Nodes.Y = append(in.Nodes.Y, y)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !havePoint || in.Nodes.Len() == 0 {
		return nil, fmt.Errorf("no interpolation point or nodes: %w", ErrBadInput)
	}

	return in, nil
}

// ParsePair parses one "x y" line.
func ParsePair(line string) (float64, float64, error) {
	f := strings.Fields(line)
	if len(f) != 2 {
		return 0, 0, fmt.Errorf("want two values, got %d: %w", len(f), ErrBadInput)
	}
	x, err := strconv.ParseFloat(f[0], 64)
	if err != nil || !finite(x) {
		return 0, 0, fmt.Errorf("x %q: %w", f[0], ErrBadInput)
	}
	y, err := strconv.ParseFloat(f[1], 64)
	if err != nil || !finite(y) {
		return 0, 0, fmt.Errorf("y %q: %w", f[1], ErrBadInput)
	}

	return x, y, nil
}
