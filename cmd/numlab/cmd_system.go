// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numlab/chart"
	"github.com/katalvlaran/numlab/internal/report"
	"github.com/katalvlaran/numlab/nlsys"
)

type systemInput struct {
	system int // 1-based catalog index, 0 prompts
	x0     []float64
	eps    float64 // <= 0 prompts
}

func (a *app) systemCmd() *cobra.Command {
	in := systemInput{}
	cmd := &cobra.Command{
		Use:   "system",
		Short: "Solve a predefined nonlinear system by Newton's method",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.finish(a.runSystem(in))
		},
	}
	cmd.Flags().IntVarP(&in.system, "system", "s", 0, "system number (see the menu)")
	cmd.Flags().Float64SliceVar(&in.x0, "x0", nil, "initial guess, comma separated")
	cmd.Flags().Float64Var(&in.eps, "eps", 0, "tolerance on |dx|")

	return cmd
}

func (a *app) runSystem(in systemInput) error {
	catalog := nlsys.Catalog()
	sys, err := a.pickSystem(catalog, in.system)
	if err != nil {
		return err
	}
	x0 := in.x0
	if len(x0) == 0 {
		x0 = make([]float64, sys.Dim)
		for i := range x0 {
			if x0[i], err = a.prompt.Float(fmt.Sprintf("x%d initial guess: ", i+1), nil); err != nil {
				return err
			}
		}
	}
	eps := in.eps
	if eps <= 0 {
		if eps, err = a.prompt.Float("tolerance: ", positive); err != nil {
			return err
		}
	}

	res, err := nlsys.Newton(sys, x0, eps, nlsys.WithMaxIterations(a.cfg.System.MaxIterations), nlsys.WithLogger(a.log))
	if res == nil {
		return err
	}

	summary := []string{
		fmt.Sprintf("iterations: %d, converged: %t", res.Iterations, res.Converged),
		"x        = " + fmt.Sprint(report.Floats(res.X, 6)),
		"residual = " + fmt.Sprint(report.Floats(res.Residual, -1)),
	}
	heading := fmt.Sprintf("Newton: %s", strings.Join(sys.Equations, ", "))
	if eerr := a.emit(heading, []report.Table{report.NewtonTrace(res, 6)}, summary); eerr != nil {
		return errors.Join(err, eerr)
	}

	if sys.Dim == 2 {
		curves := make([]chart.Curve, len(sys.Equations))
		for i, label := range sys.Equations {
			curves[i] = chart.Curve{Label: label, G: sys.Component(i)}
		}
		if perr := a.plot(plotJob{"system", func(path string, size chart.Size) error {
			return chart.ZeroContours(path, sys.Label, curves, chart.DefaultWindow, res.X, size)
		}}); perr != nil {
			return perr
		}
	}

	return err
}

func (a *app) pickSystem(catalog []nlsys.System, n int) (nlsys.System, error) {
	if n >= 1 && n <= len(catalog) {
		return catalog[n-1], nil
	}
	if n != 0 {
		return nlsys.System{}, fmt.Errorf("system %d: choose 1-%d", n, len(catalog))
	}
	labels := make([]string, len(catalog))
	for i, s := range catalog {
		labels[i] = strings.Join(s.Equations, ", ")
	}
	i, err := a.prompt.Choice("system:", labels)
	if err != nil {
		return nlsys.System{}, err
	}

	return catalog[i], nil
}
