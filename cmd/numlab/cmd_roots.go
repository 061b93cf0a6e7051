// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numlab/chart"
	"github.com/katalvlaran/numlab/internal/report"
	"github.com/katalvlaran/numlab/roots"
)

type rootsInput struct {
	equation int    // 1-based catalog index, 0 prompts
	method   string // empty prompts
	file     string
}

func (a *app) rootsCmd() *cobra.Command {
	in := rootsInput{}
	cmd := &cobra.Command{
		Use:   "roots",
		Short: "Find a root of a predefined equation",
		Long: `Bracketing methods read "left, right, tolerance" and Newton reads
"initial guess, tolerance", one value per line, from --file or interactively.
The number of decimal places of the tolerance sets the printed precision.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.finish(a.runRoots(in))
		},
	}
	cmd.Flags().IntVarP(&in.equation, "equation", "e", 0, "equation number (see the menu)")
	cmd.Flags().StringVarP(&in.method, "method", "m", "", "bisection, chord, simple-iteration or newton (or 1-4)")
	cmd.Flags().StringVarP(&in.file, "file", "f", "", "read bounds and tolerance from this file")

	return cmd
}

func (a *app) runRoots(in rootsInput) error {
	catalog := roots.Catalog()
	eq, err := a.pickEquation(catalog, in.equation)
	if err != nil {
		return err
	}
	m, err := a.pickMethod(in.method)
	if err != nil {
		return err
	}
	p, err := a.rootsProblem(m, in.file)
	if err != nil {
		return err
	}
	p.Eq = eq

	opts := []roots.Option{
		roots.WithMaxIterations(a.cfg.Roots.MaxIterations),
		roots.WithGridCells(a.cfg.Roots.GridCells),
		roots.WithLogger(a.log),
	}
	res, err := roots.Solve(m, p, opts...)
	if res == nil {
		return err
	}

	heading := fmt.Sprintf("%s: %s = 0", m, eq.Label)
	if eerr := a.emit(heading, []report.Table{report.RootsTrace(res.Trace, p.Precision+2)}, []string{res.Format(p.Precision)}); eerr != nil {
		return errors.Join(err, eerr)
	}

	lo, hi := p.Left, p.Right
	if !m.Bracketing() {
		d := math.Max(1, math.Abs(res.Root-p.Left))
		lo, hi = res.Root-2*d, res.Root+2*d
	}
	if perr := a.plot(plotJob{"roots", func(path string, size chart.Size) error {
		return chart.Function(path, eq.Label, eq.F, lo, hi, size)
	}}); perr != nil {
		return perr
	}

	return err
}

func (a *app) pickEquation(catalog []roots.Equation, n int) (roots.Equation, error) {
	if n >= 1 && n <= len(catalog) {
		return catalog[n-1], nil
	}
	if n != 0 {
		return roots.Equation{}, fmt.Errorf("equation %d: choose 1-%d", n, len(catalog))
	}
	labels := make([]string, len(catalog))
	for i, e := range catalog {
		labels[i] = e.Label + " = 0"
	}
	i, err := a.prompt.Choice("equation:", labels)
	if err != nil {
		return roots.Equation{}, err
	}

	return catalog[i], nil
}

func (a *app) pickMethod(name string) (roots.Method, error) {
	if name != "" {
		return roots.ParseMethod(name)
	}
	ms := roots.Methods()
	labels := make([]string, len(ms))
	for i, m := range ms {
		labels[i] = m.String()
	}
	i, err := a.prompt.Choice("method:", labels)
	if err != nil {
		return 0, err
	}

	return ms[i], nil
}

func (a *app) rootsProblem(m roots.Method, file string) (roots.Problem, error) {
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return roots.Problem{}, err
		}
		defer f.Close()
		if m.Bracketing() {
			return roots.ReadInterval(f)
		}
		return roots.ReadInitialGuess(f)
	}

	var (
		p   roots.Problem
		err error
	)
	if m.Bracketing() {
		if p.Left, err = a.prompt.Float("left bound: ", nil); err != nil {
			return p, err
		}
		left := p.Left
		p.Right, err = a.prompt.Float("right bound: ", func(v float64) error {
			if v <= left {
				return errors.New("must exceed the left bound")
			}
			return nil
		})
		if err != nil {
			return p, err
		}
	} else if p.Left, err = a.prompt.Float("initial guess: ", nil); err != nil {
		return p, err
	}
	err = a.prompt.Ask("tolerance: ", func(s string) (err error) {
		p.Tolerance, p.Precision, err = roots.ParseTolerance(s)
		return err
	})

	return p, err
}
