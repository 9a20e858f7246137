package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/alnum/numeral"
)

// demoFixtures are the documented conversions shown with their expected
// values in the walkthrough.
var demoFixtures = []struct {
	in   string
	want int
}{
	{"AAA", 3},
	{"LBAAA", 58},
	{"RCRZCAB", 1994},
}

// demoExamples are extra conversions printed without expectations.
var demoExamples = []string{
	"A", "B", "AB", "BA", "Z", "AA", "R", "RR", "RCRZ", "CDZCAB",
}

// newDemoCommand creates the demo command: a fixed demonstration
// printout of the symbol table, the documented fixtures, and a batch of
// additional conversions.
func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print the demonstration walkthrough",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}
}

func runDemo(w io.Writer) error {
	rule := strings.Repeat("=", 60)
	dash := strings.Repeat("-", 60)

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "ALIEN NUMERALS CALCULATION APPLICATION")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Single Symbol Values:")
	printSymbolValues(w, "  ")
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "TEST CASES:")
	fmt.Fprintln(w, dash)
	for _, tc := range demoFixtures {
		got, err := numeral.ToIntegerSafe(tc.in)
		if err != nil {
			return err
		}
		status := "PASS"
		if got != tc.want {
			status = "FAIL"
		}
		fmt.Fprintf(w, "Input: %-15s | Result: %5d | Expected: %5d | %s\n", tc.in, got, tc.want, status)
	}
	fmt.Fprintln(w, dash)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "ADDITIONAL EXAMPLES:")
	fmt.Fprintln(w, dash)
	for _, in := range demoExamples {
		got, err := numeral.ToInteger(in)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Input: %-15s | Result: %5d\n", in, got)
	}
	fmt.Fprintln(w, dash)

	return nil
}
