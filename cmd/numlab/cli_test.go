// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/numlab/internal/config"
	"github.com/katalvlaran/numlab/roots"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes numlab with args and stdin, returning stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

// writeFile stores body in a temporary file and returns its path.
func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

// TestLinsys_FromFileWithReport solves a file system and checks the plain report.
func TestLinsys_FromFileWithReport(t *testing.T) {
	in := writeFile(t, "sys.txt", "2\n4 1 1\n1 3 2\n1e-6\n")
	report := filepath.Join(t.TempDir(), "out.txt")

	out, err := run(t, "", "linsys", "--file", in, "--out", report)
	require.NoError(t, err)
	assert.Contains(t, out, "converged: true")
	assert.Contains(t, out, "[0.090909 0.636364]")

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Jacobi iteration")
	assert.Contains(t, string(data), "max|dx|")
}

// TestLinsys_Interactive verifies prompted input where an oversized dimension,
// a short row and a zero tolerance are each asked again.
func TestLinsys_Interactive(t *testing.T) {
	out, err := run(t, "21\n2\n4 1\n4 1 1\n1 3 2\n0\n1e-6\n", "linsys")
	require.NoError(t, err)
	assert.Contains(t, out, "try again")
	assert.Contains(t, out, "converged: true")
}

// TestRoots_Interactive runs bisection with every value answered at the prompt.
func TestRoots_Interactive(t *testing.T) {
	out, err := run(t, "1\n1\n1\n2\n0.001\n", "roots")
	require.NoError(t, err)
	assert.Contains(t, out, "bisection")
	assert.Contains(t, out, "x = 1.40")
}

// TestRoots_CheckFailureFromFlags ensures a failed interval check surfaces as
// roots.ErrNoSignChange.
func TestRoots_CheckFailureFromFlags(t *testing.T) {
	in := writeFile(t, "interval.txt", "2\n3\n0.01\n")
	out, err := run(t, "", "roots", "-e", "1", "-m", "bisection", "-f", in)
	assert.ErrorIs(t, err, roots.ErrNoSignChange)
	assert.Contains(t, out, "same sign")
}

// TestSystem_Flags solves the first system non-interactively.
func TestSystem_Flags(t *testing.T) {
	out, err := run(t, "", "system", "-s", "1", "--x0", "1,1", "--eps", "1e-8")
	require.NoError(t, err)
	assert.Contains(t, out, "0.930605")
	assert.Contains(t, out, "0.366025")
}

// TestInterp_Generated verifies that every applicable formula agrees on a
// generated table and that Bessel reports the parity problem.
func TestInterp_Generated(t *testing.T) {
	out, err := run(t, "", "interp", "--function", "4", "-n", "5", "--x0", "0", "--xn", "2", "--at", "1.3")
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(out, "-3.120000"))
	assert.Contains(t, out, "node count")
}

// TestInterp_FileWithWarnings ensures skipped file lines, blank ones included,
// are shown as warnings.
func TestInterp_FileWithWarnings(t *testing.T) {
	in := writeFile(t, "nodes.txt", "1.5\n0 0\n1 1\nbad line\n\n2 4\n3 9\n")
	out, err := run(t, "", "interp", "-f", in, "-k", "lagrange")
	require.NoError(t, err)
	assert.Contains(t, out, "2.250000")
	assert.Contains(t, out, "bad line")
	assert.Contains(t, out, "line 5: skipped empty line")
}

// TestInterp_TypedNodes feeds the point and nodes through stdin: a premature
// empty line and a malformed pair are re-asked, the final empty line finishes.
func TestInterp_TypedNodes(t *testing.T) {
	stdin := strings.Join([]string{
		"1.5",
		"0 0",
		"",    // only one node so far
		"abc", // not a pair
		"1 1", "2 4", "3 9",
		"",
	}, "\n") + "\n"
	out, err := run(t, stdin, "interp", "--typed", "-k", "lagrange")
	require.NoError(t, err)
	assert.Contains(t, out, "at least two nodes are required, try again")
	assert.Contains(t, out, "want two values")
	assert.Contains(t, out, "node 4: ")
	assert.Contains(t, out, "2.250000")
}

// TestInterp_UnreadableFileFallsBackToTyped ensures a missing node file is
// reported and the nodes are then read from the prompt.
func TestInterp_UnreadableFileFallsBackToTyped(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.txt")
	out, err := run(t, "1.5\n0 0\n1 1\n2 4\n\n", "interp", "-f", missing, "-k", "lagrange")
	require.NoError(t, err)
	assert.Contains(t, out, "enter the nodes instead")
	assert.Contains(t, out, "2.250000")
}

// TestInterp_MenuSourceChoice picks typed entry from the source menu.
func TestInterp_MenuSourceChoice(t *testing.T) {
	out, err := run(t, "2\n1.5\n0 0\n1 1\n2 4\n\n", "interp", "-k", "newton-divided")
	require.NoError(t, err)
	assert.Contains(t, out, "nodes from:")
	assert.Contains(t, out, "2.250000")
}

// TestInterp_PlotsEveryKind verifies that one image is written per built
// interpolant; Bessel is skipped for an odd node count.
func TestInterp_PlotsEveryKind(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "", "--plot-dir", dir,
		"interp", "--function", "4", "-n", "5", "--x0", "0", "--xn", "2", "--at", "1.3")
	require.NoError(t, err)

	for _, name := range []string{"lagrange", "newton-divided", "newton-finite", "gauss", "stirling"} {
		info, err := os.Stat(filepath.Join(dir, "interp-"+name+".png"))
		require.NoError(t, err, name)
		assert.Positive(t, info.Size())
	}
	assert.NoFileExists(t, filepath.Join(dir, "interp-bessel.png"))
}

// TestODE_FlagsAndPlot runs Milne from flags and checks the saved image.
func TestODE_FlagsAndPlot(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "", "--plot-dir", dir,
		"ode", "-e", "2", "-m", "milne", "--x0", "0", "--xend", "1", "--y0", "1", "-n", "4", "--eps", "1e-4")
	require.NoError(t, err)
	assert.Contains(t, out, "converged = true")
	assert.Contains(t, out, "y(1) = 3.436")

	info, err := os.Stat(filepath.Join(dir, "ode.png"))
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

// TestMenu_ErrorsDoNotStopTheLoop verifies that a failing lab is reported and
// the menu continues until the user declines another run.
func TestMenu_ErrorsDoNotStopTheLoop(t *testing.T) {
	stdin := strings.Join([]string{
		"9",                                 // out of range, asked again
		"2", "", "1", "1", "2", "3", "0.01", // roots to console: no sign change
		"",                                  // run another lab (default yes)
		"3", "", "1", "1", "1", "1e-8",      // system to console
		"n",                                 // no plot
		"n",                                 // no further lab
	}, "\n") + "\n"
	out, err := run(t, stdin)
	require.NoError(t, err)
	assert.Contains(t, out, "same sign")
	assert.Contains(t, out, "0.930605")
	assert.Contains(t, out, "save plot? [y/N]")
	assert.Equal(t, 2, strings.Count(out, "run another lab?"))
}

// TestMenu_ReportFilePerLab ensures the menu asks for an output file on every
// run and offers the plot, so a named file is written only for that lab.
func TestMenu_ReportFilePerLab(t *testing.T) {
	dir := t.TempDir()
	reportPath := filepath.Join(dir, "system.txt")
	stdin := strings.Join([]string{
		"3", reportPath, "1", "1", "1", "1e-8", "", "y", // report file, plot (default yes)
		"3", "", "1", "1", "1", "1e-8", "n", "n", // console only, no plot
	}, "\n") + "\n"
	out, err := run(t, stdin, "--plot-dir", dir)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "report written to "+reportPath))
	assert.Equal(t, 1, strings.Count(out, "plot saved to"))

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Newton")
	assert.FileExists(t, filepath.Join(dir, "system.png"))
}

// TestMenu_QuitAtAnyPrompt ensures q at the output file prompt leaves cleanly.
func TestMenu_QuitAtAnyPrompt(t *testing.T) {
	out, err := run(t, "1\nq\n")
	require.NoError(t, err)
	assert.Contains(t, out, "output file (empty for console): ")
	assert.NotContains(t, out, "Jacobi iteration")
}

// TestMenu_ClosedInput ensures an empty stdin ends the menu without error.
func TestMenu_ClosedInput(t *testing.T) {
	_, err := run(t, "")
	assert.NoError(t, err)
}

// TestConfig_InitShowAndInvalid covers config init, show with overrides, and
// rejection of an invalid file.
func TestConfig_InitShowAndInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numlab.yaml")
	_, err := run(t, "", "config", "init", path)
	require.NoError(t, err)

	out, err := run(t, "", "--config", path, "--log-level", "debug", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "level: debug")
	assert.Contains(t, out, "max_iterations")

	bad := writeFile(t, "bad.yaml", "log:\n  format: xml\n")
	_, err = run(t, "", "--config", bad, "config", "show")
	assert.ErrorIs(t, err, config.ErrInvalid)
}
