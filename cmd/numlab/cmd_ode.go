// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numlab/chart"
	"github.com/katalvlaran/numlab/internal/report"
	"github.com/katalvlaran/numlab/ode"
)

type odeInput struct {
	equation  int    // 1-based catalog index, 0 prompts
	method    string // empty prompts
	x0, xEnd  *float64
	y0, eps   *float64
	n         int // 0 prompts
	exactNorm bool
}

func (a *app) odeCmd() *cobra.Command {
	in := odeInput{}
	var x0, xEnd, y0, eps float64
	cmd := &cobra.Command{
		Use:   "ode",
		Short: "Integrate y' = f(x, y) with Euler, improved Euler or Milne",
		Long: `Integrates on [x0, xend] starting from n steps and doubles n until the
error estimate drops below eps: Richardson for the Euler methods, the exact
solution for Milne.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fl := cmd.Flags()
			for name, dst := range map[string]**float64{"x0": &in.x0, "xend": &in.xEnd, "y0": &in.y0, "eps": &in.eps} {
				if fl.Changed(name) {
					v, _ := fl.GetFloat64(name)
					*dst = &v
				}
			}
			return a.finish(a.runODE(in))
		},
	}
	fl := cmd.Flags()
	fl.IntVarP(&in.equation, "equation", "e", 0, "equation number (see the menu)")
	fl.StringVarP(&in.method, "method", "m", "", "euler, improved-euler or milne (or 1-3)")
	fl.Float64Var(&x0, "x0", 0, "start of the interval")
	fl.Float64Var(&xEnd, "xend", 0, "end of the interval")
	fl.Float64Var(&y0, "y0", 0, "initial value y(x0)")
	fl.Float64Var(&eps, "eps", 0, "error tolerance")
	fl.IntVarP(&in.n, "steps", "n", 0, "initial number of steps (>= 2)")
	fl.BoolVar(&in.exactNorm, "exact-error", false, "measure every method against the exact solution")

	return cmd
}

func (a *app) runODE(in odeInput) error {
	catalog := ode.Catalog()
	problem, err := a.pickODE(catalog, in.equation)
	if err != nil {
		return err
	}
	m, err := a.pickODEMethod(in.method)
	if err != nil {
		return err
	}

	var p ode.Params
	if p.X0, err = a.floatOr(in.x0, "x0: ", nil); err != nil {
		return err
	}
	x0 := p.X0
	p.XEnd, err = a.floatOr(in.xEnd, "x end: ", func(v float64) error {
		if v <= x0 {
			return errors.New("must exceed x0")
		}
		return nil
	})
	if err != nil {
		return err
	}
	if p.Y0, err = a.floatOr(in.y0, "y0: ", nil); err != nil {
		return err
	}
	if p.N = in.n; p.N == 0 {
		if p.N, err = a.prompt.Int("initial steps n (2-100000): ", 2, 100000); err != nil {
			return err
		}
	}
	if p.Eps, err = a.floatOr(in.eps, "eps: ", positive); err != nil {
		return err
	}

	opts := []ode.Option{
		ode.WithMaxRefinements(a.cfg.ODE.MaxRefinements),
		ode.WithMaxCorrectorPasses(a.cfg.ODE.MaxCorrectorPasses),
		ode.WithLogger(a.log),
	}
	if (in.exactNorm || a.cfg.ODE.ExactError) && problem.Exact != nil {
		opts = append(opts, ode.WithExactError())
	}
	sol, err := ode.Solve(m, problem, p, opts...)
	if err != nil {
		return err
	}

	summary := []string{
		fmt.Sprintf("n = %d, h = %g, refinements = %d", sol.N, sol.H, sol.Refinements),
		fmt.Sprintf("error estimate = %.3e, converged = %t", sol.Error, sol.Converged),
		fmt.Sprintf("y(%g) = %s", p.XEnd, report.Float(sol.Y[len(sol.Y)-1], 6)),
	}
	if !sol.Converged {
		fmt.Fprintln(a.out, report.Warning("tolerance not reached within the refinement budget"))
	}
	heading := fmt.Sprintf("%s: y' = %s", m, problem.Label)
	if err = a.emit(heading, []report.Table{report.Solution(sol, 6)}, summary); err != nil {
		return err
	}

	var exact func(float64) float64
	if problem.Exact != nil {
		exact = func(x float64) float64 { return problem.Exact(x, p.X0, p.Y0) }
	}
	return a.plot(plotJob{"ode", func(path string, size chart.Size) error {
		return chart.Trajectory(path, heading, sol.X, sol.Y, exact, size)
	}})
}

func (a *app) pickODE(catalog []ode.Problem, n int) (ode.Problem, error) {
	if n >= 1 && n <= len(catalog) {
		return catalog[n-1], nil
	}
	if n != 0 {
		return ode.Problem{}, fmt.Errorf("equation %d: choose 1-%d", n, len(catalog))
	}
	labels := make([]string, len(catalog))
	for i, pr := range catalog {
		labels[i] = "y' = " + pr.Label
	}
	i, err := a.prompt.Choice("equation:", labels)
	if err != nil {
		return ode.Problem{}, err
	}

	return catalog[i], nil
}

func (a *app) pickODEMethod(name string) (ode.Method, error) {
	if name != "" {
		return ode.ParseMethod(name)
	}
	ms := ode.Methods()
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
