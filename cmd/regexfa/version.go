package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"regexfa/internal/presentation/tui"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of regexfa",
		Run: func(cmd *cobra.Command, args []string) {
			if banner, _ := cmd.Flags().GetBool("banner"); banner {
				tui.NewPrinter(cmd.OutOrStdout()).PrintBanner(version)
				return
			}
			fmt.Fprintf(cmd.OutOrStdout(), "regexfa version %s\n", version)
		},
	}
	cmd.Flags().Bool("banner", false, "Print a coloured banner")
	return cmd
}
