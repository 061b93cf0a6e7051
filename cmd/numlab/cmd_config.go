// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/numlab/internal/config"
	"github.com/katalvlaran/numlab/internal/report"
)

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
	}
	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			data, err := yaml.Marshal(a.cfg)
			if err != nil {
				return a.fail(err)
			}
			fmt.Fprint(a.out, string(data))
			return nil
		},
	}
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration (numlab.yaml by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := "numlab.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.Write(path, config.Default()); err != nil {
				return a.fail(err)
			}
			fmt.Fprintln(a.out, report.Success("wrote "+path))
			return nil
		},
	}
	cmd.AddCommand(show, initCmd)

	return cmd
}
