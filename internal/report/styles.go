// SPDX-License-Identifier: MIT

// Package report turns solver results into terminal tables and plain-text
// files.
package report

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	ColorAccent  = lipgloss.Color("#5FAFD7")
	ColorBorder  = lipgloss.Color("#3A6F8F")
	ColorMuted   = lipgloss.Color("#6C7A89")
	ColorSuccess = lipgloss.Color("#5FD787")
	ColorWarning = lipgloss.Color("#F4D03F")
	ColorError   = lipgloss.Color("#E74C3C")
)

// Styles holds the pre-configured lipgloss styles.
var Styles = struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Box     lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
	Muted:   lipgloss.NewStyle().Foreground(ColorMuted),
	Success: lipgloss.NewStyle().Foreground(ColorSuccess),
	Warning: lipgloss.NewStyle().Foreground(ColorWarning),
	Error:   lipgloss.NewStyle().Foreground(ColorError),
	Header:  lipgloss.NewStyle().Bold(true).Foreground(ColorAccent).Padding(0, 1),
	Cell:    lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1),
}

// Title renders a section heading.
func Title(s string) string { return Styles.Title.Render(s) }

// Success renders a success line prefixed with a check mark.
func Success(s string) string { return Styles.Success.Render("✓ " + s) }

// Warning renders a warning line.
func Warning(s string) string { return Styles.Warning.Render("⚠ " + s) }

// Error renders an error line.
func Error(err error) string { return Styles.Error.Render("✗ " + err.Error()) }

// Box frames a block of text.
func Box(s string) string { return Styles.Box.Render(s) }
