// Package cli provides the command-line interface for rawlines.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rawlines/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or usage error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	opts := &commands.RunOptions{}

	rootCmd := &cobra.Command{
		Use:   "rawlines [flags] [file...]",
		Short: "Count executable lines of Python source",
		Long: `rawlines is a line-classification filter for Python source files.

A line counts as executable when it is not blank, not a comment, and not
part of a docstring that immediately follows a class or def header. The
classification is a heuristic over text lines, not a parser.

With no file arguments (or "-") rawlines reads standard input. File
arguments may contain glob patterns.

Exit codes:
  0 - All sources processed
  1 - One or more sources failed (missing file, truncated input)
  2 - Configuration or usage error`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Run(cmd, args, opts)
		},
	}

	// Flags
	rootCmd.Flags().BoolVarP(&opts.Count, "count", "c", false, "Print the executable line count per source")
	rootCmd.Flags().BoolVarP(&opts.Library, "library", "l", false, "Remove entry-point blocks (library mode)")
	rootCmd.Flags().StringVarP(&opts.Out, "out", "o", "", "Write output to a file instead of stdout")
	rootCmd.Flags().StringVar(&opts.Format, "format", "", "Count report format (text|json)")
	rootCmd.Flags().StringVar(&opts.Config, "config", "", "Path to a rawlines.yaml configuration file")

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
