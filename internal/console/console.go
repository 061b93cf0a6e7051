// SPDX-License-Identifier: MIT

// Package console reads interactive answers line by line, re-asking until the
// answer parses. Typing q, quit or exit at any prompt returns ErrExit.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrExit is returned when the user asks to leave.
	ErrExit = errors.New("console: exit requested")
	// ErrClosed is returned when input ends before an answer was given.
	ErrClosed = errors.New("console: input closed")
)

// Prompter asks questions on w and reads answers from r.
type Prompter struct {
	sc  *bufio.Scanner
	out io.Writer
}

// New returns a Prompter over r and w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{sc: bufio.NewScanner(r), out: w}
}

// Line prints prompt and returns the trimmed answer, which may be empty.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", err
		}
		return "", ErrClosed
	}
	s := strings.TrimSpace(p.sc.Text())
	switch strings.ToLower(s) {
	case "q", "quit", "exit":
		return "", ErrExit
	}

	return s, nil
}

// Ask repeats prompt until parse accepts the answer; parse errors are shown
// to the user.
func (p *Prompter) Ask(prompt string, parse func(string) error) error {
	for {
		s, err := p.Line(prompt)
		if err != nil {
			return err
		}
		if err = parse(s); err == nil {
			return nil
		}
		fmt.Fprintf(p.out, "  %v, try again\n", err)
	}
}

// Float asks for a finite number accepted by valid (nil accepts any).
func (p *Prompter) Float(prompt string, valid func(float64) error) (float64, error) {
	var v float64
	err := p.Ask(prompt, func(s string) error {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%q is not a number", s)
		}
		if valid != nil {
			if err = valid(f); err != nil {
				return err
			}
		}
		v = f
		return nil
	})

	return v, err
}

// Int asks for an integer in [lo, hi].
func (p *Prompter) Int(prompt string, lo, hi int) (int, error) {
	var v int
	err := p.Ask(prompt, func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("%q is not an integer", s)
		}
		if n < lo || n > hi {
			return fmt.Errorf("%d is outside [%d, %d]", n, lo, hi)
		}
		v = n
		return nil
	})

	return v, err
}

// Choice prints a numbered menu and returns the 0-based index picked.
func (p *Prompter) Choice(title string, items []string) (int, error) {
	fmt.Fprintln(p.out, title)
	for i, it := range items {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, it)
	}
	n, err := p.Int(fmt.Sprintf("choose 1-%d: ", len(items)), 1, len(items))
	if err != nil {
		return 0, err
	}

	return n - 1, nil
}

// YesNo asks a y/n question; an empty answer returns def.
func (p *Prompter) YesNo(prompt string, def bool) (bool, error) {
	var v bool
	err := p.Ask(prompt, func(s string) error {
		switch strings.ToLower(s) {
		case "":
			v = def
		case "y", "yes":
			v = true
		case "n", "no":
			v = false
		default:
			return fmt.Errorf("answer y or n")
		}
		return nil
	})

	return v, err
}
