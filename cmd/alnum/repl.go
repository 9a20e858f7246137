package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/alnum/numeral"
	"github.com/katalvlaran/alnum/symbols"
)

// newReplCommand creates the repl command: an interactive
// read-convert-print loop over stdin.
func newReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Convert numerals interactively",
		Long: `Read Alien Numeral strings line by line and print their values.

Input is trimmed and uppercased before conversion, so "rcrzcab" converts
like "RCRZCAB". Malformed numerals print a reason and the loop continues;
end of input (Ctrl+D) exits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// runRepl drives the interactive loop. Malformed input is an expected,
// recoverable condition: every failure prints and the loop goes on.
func runRepl(in io.Reader, out io.Writer) error {
	alphabet := symbols.Alphabet()
	hint := strings.Join(strings.Split(alphabet, ""), ", ")

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Enter Alien Numeral: ")
		if !sc.Scan() {
			break
		}
		line := strings.ToUpper(strings.TrimSpace(sc.Text()))
		if line == "" {
			continue
		}

		v, err := numeral.ToIntegerSafe(line)
		switch {
		case err == nil:
			fmt.Fprintf(out, "Result: %d\n\n", v)
		case errors.Is(err, numeral.ErrUnknownSymbol):
			fmt.Fprintf(out, "Invalid input! Use only: %s\n\n", hint)
		default:
			fmt.Fprintf(out, "Invalid input! %s\n\n", err)
		}
	}

	fmt.Fprint(out, "\n\nThank you for using Alien Numerals Calculator!\n")

	return sc.Err()
}
