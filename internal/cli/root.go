// Package cli provides the command-line interface for the KASD interpreter.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kasd-lang/kasd/internal/cli/commands"
	"github.com/kasd-lang/kasd/internal/cli/config"
	"github.com/kasd-lang/kasd/internal/engine"
)

var (
	cfgFile string
	cfg     *config.Config
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kasd [file]",
		Short: "KASD language interpreter",
		Long: `kasd interprets the KASD declaration language.

With a file argument the file is executed as one compilation unit;
without one an interactive REPL is started.`,
		Version: commands.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			var err error
			cfg, err = config.Load(cfgFile, cmd.Root().PersistentFlags())
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := engine.LoggerForLevel(cfg.LogLevel, cmd.ErrOrStderr())
			eng := engine.New(engine.Config{
				Out:    cmd.OutOrStdout(),
				Logger: logger,
			})

			if len(args) == 1 {
				return commands.RunFile(eng, args[0], cmd.ErrOrStderr())
			}
			return commands.RunREPL(eng, cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.HistoryPath())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./kasd.yaml)")
	rootCmd.PersistentFlags().IntP("log-level", "l", config.DefaultLogLevel,
		"log level (0: none, 1: error, 2: warning, 3: info, 4: debug)")

	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// A failed run has already rendered its diagnostic.
		if !errors.Is(err, commands.ErrExecution) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return err
	}
	return nil
}
