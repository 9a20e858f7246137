package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/alnum/symbols"
)

// symbolEntry is the JSON shape of one symbol-table row.
type symbolEntry struct {
	Symbol string `json:"symbol"`
	Value  int    `json:"value"`
}

// newSymbolsCommand creates the symbols command: it prints the fixed
// symbol table, ascending by value.
func newSymbolsCommand(rootOpts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "symbols",
		Short: "Print the Alien Numeral symbol table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if rootOpts.Format == "json" {
				entries := make([]symbolEntry, 0, 7)
				for _, sv := range symbols.Info() {
					entries = append(entries, symbolEntry{Symbol: string(sv.Symbol), Value: sv.Value})
				}
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			printSymbolValues(w, "")
			return nil
		},
	}
}

// printSymbolValues writes one "S = value" line per symbol, ascending by
// value, each prefixed with indent. Shared with the demo printout.
func printSymbolValues(w io.Writer, indent string) {
	for _, sv := range symbols.Info() {
		fmt.Fprintf(w, "%s%c = %d\n", indent, sv.Symbol, sv.Value)
	}
}
