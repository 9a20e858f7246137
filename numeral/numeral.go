package numeral

import (
	"fmt"

	"github.com/katalvlaran/alnum/symbols"
)

// ContainsOnlyKnownSymbols reports whether every character of s belongs
// to the fixed alphabet. The empty string is trivially true (it contains
// no invalid characters); Validate still rejects it, since a numeral
// must represent at least one symbol.
func ContainsOnlyKnownSymbols(s string) bool {
	for i := 0; i < len(s); i++ {
		if _, err := symbols.ValueOf(s[i]); err != nil {
			return false
		}
	}

	return true
}

// Validate — formation-rule checker
//
// Description:
//
//	Checks s against the formation rules of the Alien Numeral system,
//	one rule category at a time. The first failing category determines
//	the error; within a category the leftmost violation is reported,
//	so diagnostics are deterministic.
//
// Rule order:
//  1. Non-empty: a numeral represents at least one symbol.
//  2. Membership: every character belongs to the alphabet.
//  3. Run length: no maximal run of an identical symbol exceeds that
//     symbol's limit (3 for A, Z, C, R; 1 for B, L, D).
//  4. Subtraction pairs: every adjacent pair whose first value is
//     smaller than its second must appear in the subtraction-pair
//     table. Non-ascending adjacent pairs are additive and always
//     allowed, subject only to rule 3.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(1)
//
// Errors:
//   - ErrEmptyInput              — zero-length input.
//   - ErrUnknownSymbol           — character outside the alphabet,
//     wrapped with the character and its position.
//   - ErrExcessiveRepetition     — run longer than the symbol's limit,
//     wrapped with symbol, run length, and allowed maximum.
//   - ErrInvalidSubtractionPair  — ascending pair absent from the
//     table, wrapped with the two-character pair.
//
// Returns nil iff s is a well-formed numeral.
func Validate(s string) error {
	if len(s) == 0 {
		return ErrEmptyInput
	}

	for i := 0; i < len(s); i++ {
		if _, err := symbols.ValueOf(s[i]); err != nil {
			return fmt.Errorf("numeral: symbol %q at position %d: %w", s[i], i, ErrUnknownSymbol)
		}
	}

	// Run-length scan: close each maximal run at its last index.
	run := 1
	for i := 1; i <= len(s); i++ {
		if i < len(s) && s[i] == s[i-1] {
			run++
			continue
		}
		if limit := symbols.MaxRun(s[i-1]); run > limit {
			return fmt.Errorf("numeral: symbol %q repeated %d times, at most %d allowed: %w",
				s[i-1], run, limit, ErrExcessiveRepetition)
		}
		run = 1
	}

	for i := 0; i+1 < len(s); i++ {
		cur, _ := symbols.ValueOf(s[i])
		next, _ := symbols.ValueOf(s[i+1])
		if cur < next && !symbols.IsSubtractionPair(s[i], s[i+1]) {
			return fmt.Errorf("numeral: pair %q: %w", s[i:i+2], ErrInvalidSubtractionPair)
		}
	}

	return nil
}

// ToInteger — peek-ahead summation
//
// Description:
//
//	Converts s to its integer value in a single left-to-right pass.
//	Each symbol is compared against its successor: a strictly smaller
//	value subtracts, anything else adds; the final symbol is never
//	compared and always adds. No formation rules are applied — this is
//	the raw path for pre-validated input. Unknown symbols fail fast
//	rather than producing a garbage sum.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(1)
//
// Errors:
//   - ErrEmptyInput     — s has no symbols to sum.
//   - ErrUnknownSymbol  — character outside the alphabet, wrapped with
//     the character and its position.
func ToInteger(s string) (int, error) {
	if len(s) == 0 {
		return 0, ErrEmptyInput
	}

	cur, err := symbols.ValueOf(s[0])
	if err != nil {
		return 0, fmt.Errorf("numeral: symbol %q at position 0: %w", s[0], ErrUnknownSymbol)
	}

	total := 0
	for i := 1; i < len(s); i++ {
		next, err := symbols.ValueOf(s[i])
		if err != nil {
			return 0, fmt.Errorf("numeral: symbol %q at position %d: %w", s[i], i, ErrUnknownSymbol)
		}
		if cur < next {
			total -= cur
		} else {
			total += cur
		}
		cur = next
	}

	// The last symbol is always additive.
	return total + cur, nil
}

// ToIntegerSafe composes Validate and ToInteger: the recommended entry
// point for untrusted input. On a validation failure it returns (0, err)
// without attempting conversion; the error is one of the package
// sentinels, wrapped with its reason. Calling it twice on the same
// string yields identical results.
func ToIntegerSafe(s string) (int, error) {
	if err := Validate(s); err != nil {
		return 0, err
	}

	return ToInteger(s)
}
