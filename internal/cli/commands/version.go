package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the interpreter version (set at build time).
var Version = "0.1.0"

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "KASD v%s\n", Version)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "A minimal statically-typed declaration language")
		},
	}
}
