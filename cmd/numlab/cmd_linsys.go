// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numlab/internal/report"
	"github.com/katalvlaran/numlab/linsys"
)

type linsysInput struct {
	file    string
	maxIter int // < 0 uses the configured budget
}

func (a *app) linsysCmd() *cobra.Command {
	in := linsysInput{}
	cmd := &cobra.Command{
		Use:   "linsys",
		Short: "Solve A·x = b by Jacobi iteration with pivoting and scaling",
		Long: `Reads n (1..20), n rows "a_i1 ... a_in b_i" and a tolerance, either from
--file or interactively, then iterates until max|x_new - x_old| < tolerance.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.finish(a.runLinsys(in))
		},
	}
	cmd.Flags().StringVarP(&in.file, "file", "f", "", "read the system from this file")
	cmd.Flags().IntVar(&in.maxIter, "max-iter", -1, "iteration budget, 0 = unbounded (default from config)")

	return cmd
}

func (a *app) runLinsys(in linsysInput) error {
	sys, tol, err := a.linsysSource(in.file)
	if err != nil {
		return err
	}
	budget := a.cfg.Linsys.MaxIterations
	if in.maxIter >= 0 {
		budget = in.maxIter
	}

	res, err := linsys.Solve(sys, tol, linsys.WithMaxIterations(budget), linsys.WithLogger(a.log))
	if res == nil {
		return err
	}

	summary := []string{
		fmt.Sprintf("diagonally dominant: %t, rows reordered: %t", res.Dominant, res.Reordered),
		fmt.Sprintf("iterations: %d, converged: %t", res.Iterations, res.Converged),
		"x        = " + fmt.Sprint(report.Floats(res.X, 6)),
	}
	if res.Residual != nil {
		summary = append(summary, "residual = "+fmt.Sprint(report.Floats(res.Residual, -1)))
	}
	if !res.Dominant {
		fmt.Fprintln(a.out, report.Warning("diagonal dominance not achieved; convergence is not guaranteed"))
	}
	if eerr := a.emit("Jacobi iteration", []report.Table{report.JacobiHistory(res, 6)}, summary); eerr != nil {
		return errors.Join(err, eerr)
	}

	return err
}

func (a *app) linsysSource(file string) (*linsys.System, float64, error) {
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, 0, err
		}
		defer f.Close()
		return linsys.ReadFile(f)
	}

	var n int
	err := a.prompt.Ask(fmt.Sprintf("n (1-%d): ", linsys.MaxDimension), func(s string) (err error) {
		n, err = linsys.ParseDimension(s)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	rows := make([][]float64, n)
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		err = a.prompt.Ask(fmt.Sprintf("row %d (%d coefficients and b): ", i+1, n), func(s string) (err error) {
			rows[i], b[i], err = linsys.ParseRow(s, n)
			return err
		})
		if err != nil {
			return nil, 0, err
		}
	}
	var tol float64
	err = a.prompt.Ask("tolerance: ", func(s string) (err error) {
		tol, err = linsys.ParseTolerance(s)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	sys, err := linsys.NewSystem(rows, b)

	return sys, tol, err
}
