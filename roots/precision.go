// SPDX-License-Identifier: MIT

package roots

import (
	"fmt"
	"strconv"
	"strings"
)

// Precision returns the number of decimal places carried by a tolerance
// literal: "0.001" → 3, "1e-6" → 6, "2.5e-3" → 4, "1" → 0.
// The literal must parse as a positive finite float.
func Precision(tolerance string) (int, error) {
	s := strings.TrimSpace(tolerance)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("tolerance %q: %w", tolerance, ErrBadInput)
	}
	if !(v > 0) || !finite(v) {
		return 0, fmt.Errorf("tolerance %q: %w", tolerance, ErrBadTolerance)
	}

	mant, exp := s, 0
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mant = s[:i]
		if exp, err = strconv.Atoi(s[i+1:]); err != nil {
			return 0, fmt.Errorf("tolerance %q: %w", tolerance, ErrBadInput)
		}
	}
	frac := 0
	if i := strings.IndexByte(mant, '.'); i >= 0 {
		frac = len(mant) - i - 1
	}
	if places := frac - exp; places > 0 {
		return places, nil
	}

	return 0, nil
}

// ParseTolerance parses a tolerance literal into its value and precision.
func ParseTolerance(s string) (float64, int, error) {
	places, err := Precision(s)
	if err != nil {
		return 0, 0, err
	}
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)

	return v, places, nil
}
