package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/alnum/numeral"
)

// newValidateCommand creates the validate command. Unlike convert, it
// always exits zero: malformed input is the expected subject of the
// command, not a failure of it.
func newValidateCommand(rootOpts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <numeral>...",
		Short: "Check Alien Numeral strings against the formation rules",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]result, 0, len(args))
			for _, arg := range args {
				if err := numeral.Validate(arg); err != nil {
					results = append(results, result{Input: arg, Reason: err.Error()})
					continue
				}
				results = append(results, result{Input: arg, Valid: true})
			}
			return writeValidations(cmd.OutOrStdout(), rootOpts.Format, results)
		},
	}
}

// writeValidations renders validation outcomes: valid/invalid per line
// in text mode, the result slice in JSON mode.
func writeValidations(w io.Writer, format string, results []result) error {
	if format == "json" {
		return writeResults(w, format, results)
	}
	for _, r := range results {
		if r.Valid {
			fmt.Fprintf(w, "%s: valid\n", r.Input)
		} else {
			fmt.Fprintf(w, "%s: invalid: %s\n", r.Input, r.Reason)
		}
	}
	return nil
}
