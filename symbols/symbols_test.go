package symbols_test

import (
	"testing"

	"github.com/katalvlaran/alnum/symbols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValueOf_Alphabet verifies the complete fixed mapping and that no
// two symbols share a value.
func TestValueOf_Alphabet(t *testing.T) {
	want := map[byte]int{
		'A': 1, 'B': 5, 'Z': 10, 'L': 50, 'C': 100, 'D': 500, 'R': 1000,
	}
	seen := make(map[int]byte, len(want))
	for sym, expected := range want {
		v, err := symbols.ValueOf(sym)
		require.NoError(t, err, "symbol %q must be in the alphabet", sym)
		assert.Equal(t, expected, v, "value of %q", sym)

		prev, dup := seen[v]
		assert.False(t, dup, "symbols %q and %q share value %d", prev, sym, v)
		seen[v] = sym
	}
}

// TestValueOf_Unknown ensures every byte outside the alphabet fails
// with ErrUnknownSymbol, including lowercase forms of valid symbols.
func TestValueOf_Unknown(t *testing.T) {
	for _, sym := range []byte{'X', 'a', 'r', '0', ' ', '?'} {
		_, err := symbols.ValueOf(sym)
		assert.ErrorIs(t, err, symbols.ErrUnknownSymbol, "byte %q must be unknown", sym)
	}
}

// TestIsRepeatable_Partition checks the repeatable set {A, Z, C, R}
// against its complement {B, L, D}.
func TestIsRepeatable_Partition(t *testing.T) {
	for _, sym := range []byte{'A', 'Z', 'C', 'R'} {
		assert.True(t, symbols.IsRepeatable(sym), "%q is repeatable", sym)
		assert.Equal(t, symbols.MaxRunRepeatable, symbols.MaxRun(sym))
	}
	for _, sym := range []byte{'B', 'L', 'D'} {
		assert.False(t, symbols.IsRepeatable(sym), "%q must never repeat", sym)
		assert.Equal(t, symbols.MaxRunSingle, symbols.MaxRun(sym))
	}
}

// TestMaxRun_UnknownByte pins down that bytes outside the alphabet get
// the non-repeatable limit rather than a panic or zero.
func TestMaxRun_UnknownByte(t *testing.T) {
	assert.Equal(t, symbols.MaxRunSingle, symbols.MaxRun('X'))
	assert.False(t, symbols.IsRepeatable('X'))
}

// TestIsSubtractionPair_TableExact verifies exact table membership:
// every sanctioned pair is accepted and ascending-value pairs absent
// from the table are rejected.
func TestIsSubtractionPair_TableExact(t *testing.T) {
	valid := [][2]byte{
		{'A', 'B'}, {'A', 'Z'}, {'Z', 'L'}, {'Z', 'C'}, {'C', 'D'}, {'C', 'R'},
	}
	for _, p := range valid {
		assert.True(t, symbols.IsSubtractionPair(p[0], p[1]), "pair %q%q", p[0], p[1])
	}

	// Ascending by value, yet never sanctioned.
	invalid := [][2]byte{
		{'A', 'L'}, {'A', 'C'}, {'A', 'D'}, {'A', 'R'},
		{'B', 'Z'}, {'B', 'R'}, {'Z', 'D'}, {'Z', 'R'},
		{'L', 'C'}, {'L', 'R'}, {'D', 'R'},
	}
	for _, p := range invalid {
		assert.False(t, symbols.IsSubtractionPair(p[0], p[1]), "pair %q%q is not in the table", p[0], p[1])
	}

	// Reversed sanctioned pairs are additive contexts, not table members.
	assert.False(t, symbols.IsSubtractionPair('B', 'A'))
	assert.False(t, symbols.IsSubtractionPair('R', 'C'))
}

// TestInfo_AscendingAndImmutable checks introspection order and that the
// returned slice is a copy.
func TestInfo_AscendingAndImmutable(t *testing.T) {
	info := symbols.Info()
	require.Len(t, info, 7)
	for i := 1; i < len(info); i++ {
		assert.Less(t, info[i-1].Value, info[i].Value, "Info must ascend by value")
	}
	assert.Equal(t, symbols.SymbolValue{Symbol: 'A', Value: 1}, info[0])
	assert.Equal(t, symbols.SymbolValue{Symbol: 'R', Value: 1000}, info[6])

	info[0] = symbols.SymbolValue{Symbol: '?', Value: -1}
	fresh := symbols.Info()
	assert.Equal(t, byte('A'), fresh[0].Symbol, "Info must return a fresh copy")
}

// TestAlphabet_Order verifies the display alphabet ascends by value.
func TestAlphabet_Order(t *testing.T) {
	assert.Equal(t, "ABZLCDR", symbols.Alphabet())
}
