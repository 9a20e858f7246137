package symbols

import "errors"

// ErrUnknownSymbol indicates a character outside the fixed seven-symbol
// alphabet {A, B, Z, L, C, D, R}. Callers wrap it with the offending
// character and position where that context is available; match with
// errors.Is.
var ErrUnknownSymbol = errors.New("symbols: unknown symbol")
