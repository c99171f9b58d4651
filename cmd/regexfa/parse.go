package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"regexfa/regexlib"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <regex>",
		Short: "Print the expression tree of a regex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree := regexlib.Parse(args[0])
			a.logger.Debug("parsed", "pattern", args[0], "depth", tree.Depth())
			fmt.Fprintln(cmd.OutOrStdout(), tree)
			return nil
		},
	}
}
