// Package symbols is the single source of truth for Alien Numeral symbol
// meaning and formation constraints.
//
// 🚀 What is symbols?
//
//	The leaf package of alnum: a fixed, immutable set of lookup tables
//	initialized once at process start and never mutated:
//	  • Value table:  A=1, B=5, Z=10, L=50, C=100, D=500, R=1000
//	  • Repeatable set: {A, Z, C, R} may run up to 3 in a row;
//	    {B, L, D} must never repeat
//	  • Subtraction-pair table: exactly AB, AZ, ZL, ZC, CD, CR
//
// ✨ Key guarantees:
//   - Total over the alphabet, undefined elsewhere — ValueOf is the only
//     operation that can fail, and it fails with ErrUnknownSymbol
//   - No two symbols share a value
//   - Pure lookups, no side effects — concurrent use needs no locking
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/alnum/symbols"
//
//	v, err := symbols.ValueOf('Z')        // 10, nil
//	symbols.IsRepeatable('Z')             // true
//	symbols.MaxRun('B')                   // 1
//	symbols.IsSubtractionPair('C', 'R')   // true
//	symbols.Info()                        // all symbols, ascending by value
//
// A pair is a valid subtraction only if it appears literally in the table:
// value comparison alone never legitimizes a pair (e.g. A<L, yet "AL" is
// not a sanctioned pair).
package symbols
