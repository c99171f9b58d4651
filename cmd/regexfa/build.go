package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"regexfa/internal/export"
	"regexfa/regexlib"
)

func newBuildCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <regex>",
		Short: "Compile a regex and export its automaton",
		Long: `Compiles the regex into an epsilon-NFA (or a DFA with --dfa) and writes it as
DOT, Mermaid, JSON or text. With --png the DOT output is piped through the
configured Graphviz renderer.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := args[0]
			flags := cmd.Flags()
			dfa, _ := flags.GetBool("dfa")
			output, _ := flags.GetString("output")
			png, _ := flags.GetBool("png")
			timings, _ := flags.GetBool("timings")

			formatName := a.cfg.Export.Format
			if flags.Changed("format") {
				formatName, _ = flags.GetString("format")
			}
			format, err := export.ParseFormat(formatName)
			if err != nil {
				return err
			}
			hide := a.cfg.Export.HideLabels
			if flags.Changed("hide-labels") {
				hide, _ = flags.GetBool("hide-labels")
			}
			if png && format != export.FormatDOT {
				return errors.New("--png needs the dot format")
			}

			phase := func(name string, start time.Time) {
				if timings {
					fmt.Fprintf(cmd.ErrOrStderr(), "%-12s %s\n", name, time.Since(start))
				}
			}
			start := time.Now()
			tree := regexlib.Parse(pattern)
			phase("parse", start)

			start = time.Now()
			automaton := regexlib.BuildNFA(tree)
			phase("thompson", start)

			if dfa {
				start = time.Now()
				automaton = regexlib.Determinize(automaton)
				phase("determinize", start)
			}
			st := regexlib.StatsOf(automaton)
			a.logger.Info("built automaton",
				"pattern", pattern,
				"kind", automaton.Kind(),
				"states", st.States,
				"transitions", st.Transitions,
			)

			var buf bytes.Buffer
			start = time.Now()
			if err := export.Write(&buf, automaton, format, export.Options{HideLabels: hide}); err != nil {
				return err
			}
			phase("export", start)

			if png {
				out := output
				if out == "-" {
					out = "automaton." + a.cfg.Export.ImageFormat
				}
				r := export.Renderer{Binary: a.cfg.Export.Renderer, Format: a.cfg.Export.ImageFormat}
				start = time.Now()
				if err := r.Render(cmd.Context(), buf.Bytes(), out); err != nil {
					return err
				}
				phase("render", start)
				fmt.Fprintf(cmd.OutOrStdout(), "image written to %s\n", out)
				return nil
			}

			if output == "-" {
				_, err := io.Copy(cmd.OutOrStdout(), &buf)
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("cannot write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s written to %s\n", format, output)
			return nil
		},
	}

	cmd.Flags().Bool("dfa", false, "Determinize the epsilon-NFA")
	cmd.Flags().StringP("format", "f", "", "Output format (dot|mermaid|json|text)")
	cmd.Flags().Bool("hide-labels", false, "Omit state names from graph nodes")
	cmd.Flags().StringP("output", "o", "-", "Output file, - for stdout")
	cmd.Flags().Bool("png", false, "Render an image with the configured Graphviz binary")
	cmd.Flags().Bool("timings", false, "Print the duration of each phase to stderr")
	return cmd
}
