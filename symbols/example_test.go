package symbols_test

import (
	"fmt"

	"github.com/katalvlaran/alnum/symbols"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleValueOf
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Look up one symbol inside the alphabet and one outside it.
//
// ExampleValueOf demonstrates the only failing lookup in the package.
func ExampleValueOf() {
	v, err := symbols.ValueOf('Z')
	fmt.Println(v, err)

	_, err = symbols.ValueOf('X')
	fmt.Println(err)
	// Output:
	// 10 <nil>
	// symbols: unknown symbol: 'X'
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleInfo
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Render the full symbol table for display, ascending by value —
//	the shape an interactive shell prints on startup.
//
// ExampleInfo demonstrates introspection over the fixed table.
func ExampleInfo() {
	for _, sv := range symbols.Info() {
		fmt.Printf("%c = %d\n", sv.Symbol, sv.Value)
	}
	// Output:
	// A = 1
	// B = 5
	// Z = 10
	// L = 50
	// C = 100
	// D = 500
	// R = 1000
}
