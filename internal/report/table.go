// SPDX-License-Identifier: MIT

package report

import (
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Table is a header row plus formatted cells.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Render draws t with a rounded border for the terminal.
func (t Table) Render() string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorBorder)).
		Headers(t.Headers...).
		Rows(t.Rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return Styles.Header
			}
			return Styles.Cell
		}).
		String()
}

// Plain renders t as aligned, undecorated columns, suitable for files.
func (t Table) Plain() string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', tabwriter.AlignRight)
	writeRow := func(cells []string) {
		for _, c := range cells {
			w.Write([]byte(c + "\t"))
		}
		w.Write([]byte("\n"))
	}
	writeRow(t.Headers)
	for _, r := range t.Rows {
		writeRow(r)
	}
	w.Flush()

	return sb.String()
}

// Floats formats vs with prec decimal places; prec < 0 uses the shortest
// representation.
func Floats(vs []float64, prec int) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = Float(v, prec)
	}

	return out
}

// Float formats one value like Floats.
func Float(v float64, prec int) string {
	if prec < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strconv.FormatFloat(v, 'f', prec, 64)
}
