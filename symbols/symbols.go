package symbols

import "fmt"

// Run-length limits per symbol class.
const (
	// MaxRunRepeatable is the longest allowed run of a repeatable symbol.
	MaxRunRepeatable = 3

	// MaxRunSingle is the longest allowed run of a non-repeatable symbol.
	MaxRunSingle = 1
)

// values maps each symbol of the alphabet to its integer value.
// Total over {A, B, Z, L, C, D, R}, undefined elsewhere.
var values = map[byte]int{
	'A': 1,
	'B': 5,
	'Z': 10,
	'L': 50,
	'C': 100,
	'D': 500,
	'R': 1000,
}

// repeatable marks the symbols permitted to repeat consecutively,
// each up to MaxRunRepeatable.
var repeatable = map[byte]bool{
	'A': true,
	'Z': true,
	'C': true,
	'R': true,
}

// subtractionPairs is the closed table of sanctioned (low, high)
// subtractive combinations. Exact membership only.
var subtractionPairs = map[[2]byte]bool{
	{'A', 'B'}: true,
	{'A', 'Z'}: true,
	{'Z', 'L'}: true,
	{'Z', 'C'}: true,
	{'C', 'D'}: true,
	{'C', 'R'}: true,
}

// ascending holds the alphabet ordered by value, fixed at package init.
var ascending = [...]byte{'A', 'B', 'Z', 'L', 'C', 'D', 'R'}

// SymbolValue pairs a symbol with its integer value, for introspection
// and display.
type SymbolValue struct {
	Symbol byte
	Value  int
}

// ValueOf returns the integer value mapped to sym.
// Returns ErrUnknownSymbol (wrapped with the character) for any byte
// outside the alphabet.
func ValueOf(sym byte) (int, error) {
	v, ok := values[sym]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, sym)
	}

	return v, nil
}

// IsRepeatable reports whether sym belongs to the repeatable set
// {A, Z, C, R}. Unknown bytes are not repeatable.
func IsRepeatable(sym byte) bool {
	return repeatable[sym]
}

// MaxRun returns the longest allowed consecutive run of sym:
// MaxRunRepeatable for repeatable symbols, MaxRunSingle otherwise
// (including unknown bytes).
func MaxRun(sym byte) int {
	if repeatable[sym] {
		return MaxRunRepeatable
	}

	return MaxRunSingle
}

// IsSubtractionPair reports whether (low, high) appears literally in the
// subtraction-pair table. Value comparison alone never legitimizes a
// pair absent from the table.
func IsSubtractionPair(low, high byte) bool {
	return subtractionPairs[[2]byte{low, high}]
}

// Info returns every symbol with its value, ascending by value.
// The returned slice is a fresh copy on each call; mutating it does not
// affect the table.
func Info() []SymbolValue {
	out := make([]SymbolValue, 0, len(ascending))
	for _, sym := range ascending {
		out = append(out, SymbolValue{Symbol: sym, Value: values[sym]})
	}

	return out
}

// Alphabet returns the seven symbols as a string, ascending by value.
func Alphabet() string {
	return string(ascending[:])
}
