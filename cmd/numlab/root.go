// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numlab/chart"
	"github.com/katalvlaran/numlab/internal/config"
	"github.com/katalvlaran/numlab/internal/console"
	"github.com/katalvlaran/numlab/internal/report"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	cfg    config.Config
	log    *slog.Logger
	prompt *console.Prompter
	out    io.Writer

	configPath string
	logLevel   string
	plotDir    string
	outPath    string

	// interactive is set by the menu; plots are then offered, not implied.
	interactive bool
}

// plotJob is one image: its base file name and the function that draws it.
type plotJob struct {
	name string
	draw func(path string, size chart.Size) error
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	a := &app{out: out, prompt: console.New(in, out)}

	root := &cobra.Command{
		Use:           "numlab",
		Short:         "Numerical methods laboratory",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.menu()
		},
	}
	root.SetIn(in)
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to numlab.yaml")
	pf.StringVar(&a.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")
	pf.StringVar(&a.plotDir, "plot-dir", "", "write plots into this directory (enables plotting)")
	pf.StringVarP(&a.outPath, "out", "o", "", "also write the plain-text report to this file (the menu asks per lab)")

	root.AddCommand(
		a.linsysCmd(),
		a.rootsCmd(),
		a.systemCmd(),
		a.interpCmd(),
		a.odeCmd(),
		a.configCmd(),
	)

	return root
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return a.fail(err)
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.plotDir != "" {
		cfg.Plot.Enabled, cfg.Plot.Dir = true, a.plotDir
	}
	if err = cfg.Validate(); err != nil {
		return a.fail(err)
	}
	a.cfg = cfg
	a.log = cfg.Log.Logger(cmd.ErrOrStderr())
	a.log.Debug("configuration loaded", "path", a.configPath, "plots", cfg.Plot.Enabled)

	return nil
}

// labs lists the interactive menu entries in order.
func (a *app) labs() []struct {
	name string
	run  func() error
} {
	return []struct {
		name string
		run  func() error
	}{
		{"linear system (Jacobi)", func() error { return a.runLinsys(linsysInput{}) }},
		{"nonlinear equation", func() error { return a.runRoots(rootsInput{}) }},
		{"nonlinear system (Newton)", func() error { return a.runSystem(systemInput{}) }},
		{"interpolation", func() error { return a.runInterp(interpInput{}) }},
		{"ordinary differential equation", func() error { return a.runODE(odeInput{}) }},
	}
}

// menu loops over the labs until the user exits or declines another run.
// Each lab asks for its own report file; lab errors are reported and the
// loop continues.
func (a *app) menu() error {
	a.interactive = true
	labs := a.labs()
	names := make([]string, len(labs))
	for i, l := range labs {
		names[i] = l.name
	}
	for {
		fmt.Fprintln(a.out, report.Title("numlab (q to quit)"))
		i, err := a.prompt.Choice("lab:", names)
		if err != nil {
			return quiet(err)
		}
		if a.outPath, err = a.prompt.Line("output file (empty for console): "); err != nil {
			return quiet(err)
		}
		if err = labs[i].run(); err != nil {
			if errors.Is(err, console.ErrExit) || errors.Is(err, console.ErrClosed) {
				return quiet(err)
			}
			fmt.Fprintln(a.out, report.Error(err))
		}
		again, err := a.prompt.YesNo("run another lab? [Y/n]: ", true)
		if err != nil {
			return quiet(err)
		}
		if !again {
			return nil
		}
	}
}

// quiet turns a user exit into a clean return.
func quiet(err error) error {
	if errors.Is(err, console.ErrExit) || errors.Is(err, console.ErrClosed) {
		return nil
	}

	return err
}

// fail prints err in the error style and returns it.
func (a *app) fail(err error) error {
	fmt.Fprintln(a.out, report.Error(err))

	return err
}

// finish reports err for a one-shot subcommand; user exits are not errors.
func (a *app) finish(err error) error {
	if err = quiet(err); err != nil {
		return a.fail(err)
	}

	return nil
}

// emit prints the styled tables to the terminal and, when --out is set,
// writes heading, plain tables and summary lines to that file.
func (a *app) emit(heading string, tables []report.Table, summary []string) error {
	fmt.Fprintln(a.out, report.Title(heading))
	for _, t := range tables {
		if len(t.Headers) == 0 {
			continue
		}
		fmt.Fprintln(a.out, t.Render())
	}
	if len(summary) > 0 {
		fmt.Fprintln(a.out, report.Box(strings.Join(summary, "\n")))
	}
	if a.outPath == "" {
		return nil
	}

	f, err := os.Create(a.outPath)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	defer f.Close()
	fmt.Fprintln(f, heading)
	for _, t := range tables {
		if len(t.Headers) == 0 {
			continue
		}
		fmt.Fprintln(f, t.Plain())
	}
	for _, s := range summary {
		fmt.Fprintln(f, s)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	fmt.Fprintln(a.out, report.Success("report written to "+a.outPath))

	return nil
}

// plot draws every job into the plot directory. Subcommands plot when
// plotting is enabled; the menu asks first, defaulting to the config. Plot
// failures are logged and shown, never fatal; only a prompt error is returned.
func (a *app) plot(jobs ...plotJob) error {
	enabled := a.cfg.Plot.Enabled
	if a.interactive {
		hint := "[y/N]"
		if enabled {
			hint = "[Y/n]"
		}
		var err error
		if enabled, err = a.prompt.YesNo("save plot? "+hint+": ", enabled); err != nil {
			return err
		}
	}
	if !enabled {
		return nil
	}
	if err := os.MkdirAll(a.cfg.Plot.Dir, 0o755); err != nil {
		a.log.Warn("plot directory", "dir", a.cfg.Plot.Dir, "err", err)
		fmt.Fprintln(a.out, report.Warning(err.Error()))
		return nil
	}
	size := chart.Size{Width: a.cfg.Plot.Width, Height: a.cfg.Plot.Height}
	for _, j := range jobs {
		path := filepath.Join(a.cfg.Plot.Dir, j.name+"."+a.cfg.Plot.Format)
		if err := j.draw(path, size); err != nil {
			a.log.Warn("plot failed", "path", path, "err", err)
			fmt.Fprintln(a.out, report.Warning(err.Error()))
			continue
		}
		fmt.Fprintln(a.out, report.Success("plot saved to "+path))
	}

	return nil
}

// positive rejects values <= 0.
func positive(v float64) error {
	if v <= 0 {
		return errors.New("must be positive")
	}

	return nil
}
