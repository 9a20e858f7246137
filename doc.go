// Package alnum converts Alien Numeral strings — a symbolic numbering
// system structurally analogous to Roman numerals — into integers, and
// validates that a string is a well-formed numeral.
//
// 🚀 What is alnum?
//
//	A small, focused library built around three ideas:
//		• Symbol table: a fixed alphabet {A, B, Z, L, C, D, R} mapped to
//		  {1, 5, 10, 50, 100, 500, 1000}, plus repetition and
//		  subtraction-pair rule tables
//		• Peek-ahead conversion: a single left-to-right pass that compares
//		  each symbol against its successor to decide add vs subtract
//		• Formation rules: run-length limits and a closed table of
//		  sanctioned subtraction pairs, checked in a fixed order
//
// ✨ Why choose alnum?
//
//   - Pure functions – no state beyond immutable tables, safe for any
//     number of concurrent callers without locking
//   - Sentinel errors – every failure matches via errors.Is, with a
//     human-readable reason ready to print verbatim
//   - Dual entry points – Validate+ToInteger composed in ToIntegerSafe
//     for untrusted input, raw ToInteger for pre-validated fast paths
//
// Everything is organized under two subpackages plus a demo shell:
//
//	symbols/   — the symbol table and rule tables (leaf, no dependencies)
//	numeral/   — conversion, validation, and the safe composed entry point
//	cmd/alnum/ — command-line shell: convert, validate, demo, interactive loop
//
// Quick example:
//
//	v, err := numeral.ToIntegerSafe("RCRZCAB")
//	// v == 1994, err == nil
//
//	go get github.com/katalvlaran/alnum/numeral
package alnum
