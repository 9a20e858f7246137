package main

import (
	"encoding/json"
	"fmt"
	"io"
)

// result is one conversion or validation outcome, shaped for both the
// text and JSON renderers.
type result struct {
	Input  string `json:"input"`
	Valid  bool   `json:"valid"`
	Value  int    `json:"value,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// writeResults renders results in the requested format. Text prints one
// line per input; JSON emits the full slice, indented.
func writeResults(w io.Writer, format string, results []result) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, r := range results {
		if r.Valid {
			fmt.Fprintf(w, "%s = %d\n", r.Input, r.Value)
		} else {
			fmt.Fprintf(w, "%s: invalid: %s\n", r.Input, r.Reason)
		}
	}
	return nil
}
