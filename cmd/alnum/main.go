// Command alnum is the interactive/demo shell over the alnum engine:
// it converts Alien Numeral strings to integers, validates formation
// rules, prints the symbol table, and runs a read-convert-print loop.
// Presentation only — all numeral semantics live in the library.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
