package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"regexfa/internal/config"
	"regexfa/internal/logging"
)

// app holds what every subcommand shares once flags are parsed.
type app struct {
	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), logger: logging.NewNop()}
	root := &cobra.Command{
		Use:   "regexfa",
		Short: "regexfa turns regular expressions into finite automata",
		Long: `regexfa compiles the small regex language (symbols, grouping, '+' union,
postfix '*') into an epsilon-NFA with Thompson's construction and, on request,
into a DFA with the subset construction.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	// Persistent flags (available to all commands)
	root.PersistentFlags().String("config", config.DefaultPath, "Path to a YAML or JSON config file")
	root.PersistentFlags().String("log-level", "", "Log level (debug|info|warn|error), overrides the config file")

	root.AddCommand(
		newBuildCmd(a),
		newParseCmd(a),
		newMatchCmd(a),
		newCheckCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	a.cfg = cfg

	levelName := cfg.LogLevel
	if cmd.Flags().Changed("log-level") {
		levelName, _ = cmd.Flags().GetString("log-level")
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return err
	}
	a.logger = logging.NewWithWriter(cmd.ErrOrStderr(), level)
	a.logger.Debug("config loaded", "path", path, "log_level", level)
	return nil
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
