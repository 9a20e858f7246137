package numeral_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/alnum/numeral"
)

// longestWellFormed is the longest numeral every formation rule allows:
// maximal runs of the repeatable symbols in strictly descending value
// order, separated by the single-run symbols.
const longestWellFormed = "RRRDCCCLZZZBAAA"

// benchmarkRaw runs ToInteger on a known-symbol string of roughly n
// symbols. The raw path applies no formation rules, so the input only
// has to stay inside the alphabet.
func benchmarkRaw(b *testing.B, n int) {
	s := strings.Repeat("RCRZCAB", n/7+1)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := numeral.ToInteger(s); err != nil {
			b.Fatalf("ToInteger failed: %v", err)
		}
	}
}

// BenchmarkToInteger_Small benchmarks the raw path on ~100 symbols.
func BenchmarkToInteger_Small(b *testing.B) {
	benchmarkRaw(b, 100)
}

// BenchmarkToInteger_Large benchmarks the raw path on ~10k symbols.
func BenchmarkToInteger_Large(b *testing.B) {
	benchmarkRaw(b, 10_000)
}

// BenchmarkToIntegerSafe benchmarks validation+conversion on the longest
// well-formed numeral the rules permit.
func BenchmarkToIntegerSafe(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := numeral.ToIntegerSafe(longestWellFormed); err != nil {
			b.Fatalf("ToIntegerSafe failed: %v", err)
		}
	}
}

// BenchmarkValidate benchmarks the rule checker alone on the same input.
func BenchmarkValidate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if err := numeral.Validate(longestWellFormed); err != nil {
			b.Fatalf("Validate failed: %v", err)
		}
	}
}
