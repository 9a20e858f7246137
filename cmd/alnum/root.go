package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

// rootOptions holds global flags shared by all subcommands.
type rootOptions struct {
	Format string // "text" | "json"
}

// validFormats defines the allowed output formats.
var validFormats = []string{"text", "json"}

// newRootCommand creates the root command for the alnum CLI.
func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "alnum",
		Short: "Alien Numerals calculator",
		Long: `Convert Alien Numeral strings to integers and validate their formation rules.

The alphabet is A=1, B=5, Z=10, L=50, C=100, D=500, R=1000. A, Z, C and R
may repeat up to three times in a row; only the pairs AB, AZ, ZL, ZC, CD
and CR combine subtractively.`,
		SilenceUsage:  true,
		SilenceErrors: true, // main prints the error; keeps JSON output clean
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, validFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")

	cmd.AddCommand(newConvertCommand(opts))
	cmd.AddCommand(newValidateCommand(opts))
	cmd.AddCommand(newSymbolsCommand(opts))
	cmd.AddCommand(newDemoCommand())
	cmd.AddCommand(newReplCommand())

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(validFormats, format)
}
