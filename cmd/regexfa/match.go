package main

import (
	"github.com/spf13/cobra"

	"regexfa/internal/presentation/tui"
	"regexfa/regexlib"
)

func newMatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match <regex> <input>...",
		Short: "Test inputs against a regex",
		Long: `Reports for each input whether the whole input belongs to the regex's
language. --trace walks the DFA and prints every transition taken.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dfa, _ := cmd.Flags().GetBool("dfa")
			trace, _ := cmd.Flags().GetBool("trace")
			shortest, _ := cmd.Flags().GetBool("shortest")

			mode := regexlib.ModeNFA
			if dfa || trace {
				mode = regexlib.ModeDFA
			}
			re := regexlib.Compile(args[0], mode)
			a.logger.Debug("compiled", "pattern", re.Pattern(), "mode", mode, "states", re.Automaton().Len())

			p := tui.NewPrinter(cmd.OutOrStdout())
			for _, in := range args[1:] {
				if !trace {
					p.Verdict(in, re.Match(in))
					continue
				}
				w := regexlib.NewWalker(re.DFA())
				p.Verdict(in, w.Run(in))
				p.Trace(w)
			}
			if shortest {
				p.Shortest(regexlib.ShortestAccepted(re.Automaton()))
			}
			return nil
		},
	}

	cmd.Flags().Bool("dfa", false, "Match with the DFA instead of simulating the epsilon-NFA")
	cmd.Flags().Bool("trace", false, "Print the DFA transitions taken for each input")
	cmd.Flags().Bool("shortest", false, "Also print a shortest accepted word")
	return cmd
}
