// SPDX-License-Identifier: MIT

// Command numlab runs the numerical methods labs from the terminal: linear
// systems, roots of equations and systems, interpolation and ODEs.
//
// Every subcommand takes its inputs from flags or a file and prompts for
// whatever is missing. Without a subcommand numlab shows a menu and keeps
// running until the user types q.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
