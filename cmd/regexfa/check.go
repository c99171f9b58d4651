package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"regexfa/internal/presentation/tui"
	"regexfa/internal/suite"
)

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file.rfa>...",
		Short: "Run .rfa check scripts",
		Long: `Runs check scripts. Each script binds patterns with let and states the words
they must accept or reject with expect. Every expectation is checked against
both the epsilon-NFA and the DFA. Exits non-zero when an expectation fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			markdown, _ := cmd.Flags().GetBool("markdown")

			report := &suite.Report{}
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				script, err := suite.ParseNamed(path, string(data))
				if err != nil {
					return err
				}
				ctx := suite.NewContext(cmd.OutOrStdout(), a.logger)
				if err := script.Exec(ctx); err != nil {
					return err
				}
				a.logger.Info("script done", "file", path,
					"passed", ctx.Report.Passed(), "failed", ctx.Report.Failed())
				report.Results = append(report.Results, ctx.Report.Results...)
			}

			switch {
			case markdown && !tui.IsTerminal(cmd.OutOrStdout()):
				fmt.Fprint(cmd.OutOrStdout(), report.Markdown())
			case markdown:
				render, err := tui.NewRenderer()
				if err != nil {
					return err
				}
				out, err := render(report.Markdown())
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
			default:
				if _, err := report.WriteTo(cmd.OutOrStdout()); err != nil {
					return err
				}
			}

			if !report.OK() {
				return fmt.Errorf("%d of %d expectations failed", report.Failed(), len(report.Results))
			}
			return nil
		},
	}

	cmd.Flags().Bool("markdown", false, "Print the report as a markdown table, rendered when stdout is a terminal")
	return cmd
}
