// Package numeral converts Alien Numeral strings to integers and checks
// them against the formation rules of the system.
//
// 🚀 What is numeral?
//
//	The engine of alnum. Four operations, all pure single-pass functions
//	over the input string and the immutable tables in alnum/symbols:
//	  • ContainsOnlyKnownSymbols — alphabet membership scan
//	  • Validate — the formation-rule checker (non-empty, membership,
//	    run lengths, subtraction pairs), first failing category reported
//	  • ToInteger — raw peek-ahead summation, no rule checks
//	  • ToIntegerSafe — Validate composed with ToInteger
//
// ✨ Key features:
//   - Peek-ahead summation: each symbol is compared against its
//     successor; a smaller value before a larger one subtracts, anything
//     else adds, and the final symbol always adds
//   - Deterministic diagnostics: rule categories are checked in a fixed
//     order and the leftmost violation within the failing category is
//     the one reported
//   - Sentinel errors (ErrEmptyInput, ErrUnknownSymbol,
//     ErrExcessiveRepetition, ErrInvalidSubtractionPair) matched via
//     errors.Is, each carrying a printable reason
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/alnum/numeral"
//
//	// untrusted input: validate, then convert
//	v, err := numeral.ToIntegerSafe("RCRZCAB")   // 1994, nil
//
//	// pre-validated input: skip the rule checks
//	v, err = numeral.ToInteger("LBAAA")          // 58, nil
//
//	// classification
//	err = numeral.Validate("AAAA")
//	errors.Is(err, numeral.ErrExcessiveRepetition) // true
//
// Performance:
//
//   - Time:   O(n) for every operation
//   - Memory: O(1) beyond the result
//
// ToIntegerSafe is the recommended entry point for untrusted input;
// ToInteger alone is the trusted fast path and skips redundant checks,
// though it still refuses unknown symbols rather than computing garbage.
package numeral
