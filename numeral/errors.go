package numeral

import (
	"errors"

	"github.com/katalvlaran/alnum/symbols"
)

// Sentinel error set of the engine. Validate and ToIntegerSafe never
// panic on user input: they return one of these, wrapped with the
// offending symbol, position, or pair. Tests and callers match via
// errors.Is; the wrapped message is the human-readable reason and is
// safe to surface verbatim.
var (
	// ErrEmptyInput indicates a zero-length input: a numeral must
	// represent at least one symbol.
	ErrEmptyInput = errors.New("numeral: input must contain at least one symbol")

	// ErrUnknownSymbol aliases symbols.ErrUnknownSymbol so callers can
	// match membership failures without importing the symbols package.
	ErrUnknownSymbol = symbols.ErrUnknownSymbol

	// ErrExcessiveRepetition indicates a consecutive run of one symbol
	// longer than that symbol's allowed maximum.
	ErrExcessiveRepetition = errors.New("numeral: symbol repeated beyond its allowed run")

	// ErrInvalidSubtractionPair indicates an adjacent low-before-high
	// pair that is absent from the subtraction-pair table.
	ErrInvalidSubtractionPair = errors.New("numeral: not a valid subtraction pair")
)
