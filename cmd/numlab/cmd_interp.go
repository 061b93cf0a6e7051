// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numlab/chart"
	"github.com/katalvlaran/numlab/internal/report"
	"github.com/katalvlaran/numlab/interp"
)

// maxNodes bounds interactively generated tables.
const maxNodes = 100

type interpInput struct {
	file     string
	typed    bool // read the point and nodes at the prompt
	function int  // 1-based generator index, 0 prompts
	nodes    int // 0 prompts
	x0, xn   *float64
	at       *float64
	kind     string // empty evaluates every applicable kind
}

func (a *app) interpCmd() *cobra.Command {
	in := interpInput{}
	var x0, xn, at float64
	cmd := &cobra.Command{
		Use:   "interp",
		Short: "Interpolate a node table with Lagrange, Newton, Gauss, Stirling and Bessel",
		Long: `Nodes come from --file (first line: the point x, then "x_i y_i" pairs),
are typed at the prompt (--typed, an empty line finishes) or are generated
from a predefined function on a uniform grid. An unreadable file falls back
to typed entry.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fl := cmd.Flags()
			if fl.Changed("x0") {
				in.x0 = &x0
			}
			if fl.Changed("xn") {
				in.xn = &xn
			}
			if fl.Changed("at") {
				in.at = &at
			}
			return a.finish(a.runInterp(in))
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&in.file, "file", "f", "", "read the point and nodes from this file")
	fl.BoolVar(&in.typed, "typed", false, "type the point and nodes at the prompt")
	fl.IntVar(&in.function, "function", 0, "generator function number (see the menu)")
	fl.IntVarP(&in.nodes, "nodes", "n", 0, "number of generated nodes")
	fl.Float64Var(&x0, "x0", 0, "first generated node")
	fl.Float64Var(&xn, "xn", 0, "last generated node")
	fl.Float64Var(&at, "at", 0, "point to interpolate at")
	fl.StringVarP(&in.kind, "kind", "k", "", "only this formula (lagrange, newton-divided, newton-finite, gauss, stirling, bessel)")

	return cmd
}

func (a *app) runInterp(in interpInput) error {
	nodes, x, title, err := a.interpSource(in)
	if err != nil {
		return err
	}
	if err = nodes.Validate(); err != nil {
		return err
	}

	kinds := interp.Kinds()
	if in.kind != "" {
		k, err := interp.ParseKind(in.kind)
		if err != nil {
			return err
		}
		kinds = []interp.Kind{k}
	}

	var opts []interp.Option
	if !a.cfg.Interp.CheckSpacing {
		opts = append(opts, interp.WithoutSpacingCheck())
	} else {
		opts = append(opts, interp.WithSpacingTolerance(a.cfg.Interp.SpacingTolerance))
	}

	values := report.Table{Headers: []string{"formula", fmt.Sprintf("P(%g)", x), "note"}}
	var built []*interp.Polynomial
	for _, k := range kinds {
		p, err := interp.Build(k, nodes, opts...)
		if err != nil {
			a.log.Debug("interpolant skipped", "kind", k.String(), "err", err)
			values.Rows = append(values.Rows, []string{k.String(), "", err.Error()})
			continue
		}
		built = append(built, p)
		values.Rows = append(values.Rows, []string{k.String(), report.Float(p.Eval(x), 6), ""})
	}
	if lo, hi := nodes.Span(); x < lo || x > hi {
		fmt.Fprintln(a.out, report.Warning(fmt.Sprintf("x = %g lies outside [%g, %g]; extrapolating", x, lo, hi)))
	}

	tables := []report.Table{values}
	if _, uniform := nodes.Step(a.cfg.Interp.SpacingTolerance); uniform {
		tables = append([]report.Table{report.Differences(nodes.X, interp.FiniteDifferences(nodes.Y), 4)}, tables...)
	}
	if err = a.emit("Interpolation: "+title, tables, nil); err != nil {
		return err
	}
	if len(built) == 0 {
		return errors.New("interp: no formula applies to this node table")
	}

	jobs := make([]plotJob, len(built))
	for i, p := range built {
		jobs[i] = plotJob{
			name: "interp-" + strings.ReplaceAll(p.Kind().String(), " ", "-"),
			draw: func(path string, size chart.Size) error {
				return chart.Interpolant(path, p.Kind().String(), p.Eval, nodes.X, nodes.Y, x, size)
			},
		}
	}

	return a.plot(jobs...)
}

// interpSource returns the node table, the point and a title. Without a
// source flag the user picks one.
func (a *app) interpSource(in interpInput) (interp.Nodes, float64, string, error) {
	generated := in.function != 0 || in.nodes != 0 || in.x0 != nil || in.xn != nil
	if in.file == "" && !in.typed && !generated {
		i, err := a.prompt.Choice("nodes from:", []string{"a file", "typed at the prompt", "a predefined function"})
		if err != nil {
			return interp.Nodes{}, 0, "", err
		}
		switch i {
		case 0:
			err = a.prompt.Ask("file: ", func(s string) error {
				if s == "" {
					return errors.New("file name required")
				}
				in.file = s
				return nil
			})
			if err != nil {
				return interp.Nodes{}, 0, "", err
			}
		case 1:
			in.typed = true
		}
	}

	if in.file != "" {
		nodes, x, err := a.interpFile(in.file, in.at)
		if err == nil {
			return nodes, x, in.file, nil
		}
		a.log.Warn("node file unreadable", "file", in.file, "err", err)
		fmt.Fprintln(a.out, report.Warning(fmt.Sprintf("%v; enter the nodes instead", err)))
		in.typed = true
	}
	if in.typed {
		nodes, x, err := a.typedNodes(in.at)
		return nodes, x, "typed nodes", err
	}

	return a.generatedNodes(in)
}

// interpFile reads the point and nodes from path, printing skipped lines.
func (a *app) interpFile(path string, at *float64) (interp.Nodes, float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return interp.Nodes{}, 0, err
	}
	defer f.Close()
	data, err := interp.ReadNodes(f)
	if err != nil {
		return interp.Nodes{}, 0, fmt.Errorf("%s: %w", path, err)
	}
	for _, w := range data.Warnings {
		a.log.Warn("input line skipped", "reason", w)
		fmt.Fprintln(a.out, report.Warning(w))
	}
	x := data.X
	if at != nil {
		x = *at
	}

	return data.Nodes, x, nil
}

// typedNodes reads the point, then "x y" lines until an empty line. Bad lines
// are re-asked; at least two nodes are required before the empty line.
func (a *app) typedNodes(at *float64) (interp.Nodes, float64, error) {
	x, err := a.floatOr(at, "interpolate at x: ", nil)
	if err != nil {
		return interp.Nodes{}, 0, err
	}
	fmt.Fprintln(a.out, `enter nodes as "x y", an empty line finishes`)

	var nodes interp.Nodes
	for done := false; !done; {
		err = a.prompt.Ask(fmt.Sprintf("node %d: ", nodes.Len()+1), func(s string) error {
			if s == "" {
				if nodes.Len() < 2 {
					return errors.New("at least two nodes are required")
				}
				done = true
				return nil
			}
			if nodes.Len() == maxNodes {
				return fmt.Errorf("at most %d nodes; press enter to finish", maxNodes)
			}
			xi, yi, err := interp.ParsePair(s)
			if err != nil {
				return err
			}
			nodes.X = append(nodes.X, xi)
			nodes.Y = append(nodes.Y, yi)
			return nil
		})
		if err != nil {
			return interp.Nodes{}, 0, err
		}
	}

	return nodes, x, nil
}

// generatedNodes samples a predefined function on a uniform grid.
func (a *app) generatedNodes(in interpInput) (interp.Nodes, float64, string, error) {
	funcs := interp.Functions()
	var (
		fn  interp.Function
		err error
	)
	switch {
	case in.function >= 1 && in.function <= len(funcs):
		fn = funcs[in.function-1]
	case in.function != 0:
		return interp.Nodes{}, 0, "", fmt.Errorf("function %d: choose 1-%d", in.function, len(funcs))
	default:
		labels := make([]string, len(funcs))
		for i, f := range funcs {
			labels[i] = f.Label
		}
		i, err := a.prompt.Choice("function:", labels)
		if err != nil {
			return interp.Nodes{}, 0, "", err
		}
		fn = funcs[i]
	}

	n := in.nodes
	if n == 0 {
		if n, err = a.prompt.Int(fmt.Sprintf("number of nodes (2-%d): ", maxNodes), 2, maxNodes); err != nil {
			return interp.Nodes{}, 0, "", err
		}
	}
	x0, err := a.floatOr(in.x0, "first node x0: ", nil)
	if err != nil {
		return interp.Nodes{}, 0, "", err
	}
	xn, err := a.floatOr(in.xn, "last node xn: ", func(v float64) error {
		if v <= x0 {
			return errors.New("must exceed x0")
		}
		return nil
	})
	if err != nil {
		return interp.Nodes{}, 0, "", err
	}
	x, err := a.floatOr(in.at, "interpolate at x: ", nil)
	if err != nil {
		return interp.Nodes{}, 0, "", err
	}
	nodes, err := interp.Sample(fn, n, x0, xn)

	return nodes, x, fn.Label, err
}

// floatOr returns *v when set, otherwise prompts.
func (a *app) floatOr(v *float64, prompt string, valid func(float64) error) (float64, error) {
	if v != nil {
		return *v, nil
	}

	return a.prompt.Float(prompt, valid)
}
