package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/alnum/numeral"
)

// newConvertCommand creates the convert command.
func newConvertCommand(rootOpts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <numeral>...",
		Short: "Convert Alien Numeral strings to integers",
		Long: `Convert one or more Alien Numeral strings to their integer values.

Every argument is validated against the formation rules first; invalid
numerals are reported with a reason and the command exits nonzero.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]result, 0, len(args))
			invalid := 0
			for _, arg := range args {
				v, err := numeral.ToIntegerSafe(arg)
				if err != nil {
					invalid++
					results = append(results, result{Input: arg, Reason: err.Error()})
					continue
				}
				results = append(results, result{Input: arg, Valid: true, Value: v})
			}

			if err := writeResults(cmd.OutOrStdout(), rootOpts.Format, results); err != nil {
				return err
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d numerals invalid", invalid, len(args))
			}
			return nil
		},
	}
}
