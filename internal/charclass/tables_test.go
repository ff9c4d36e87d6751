package charclass_test

import (
	"testing"

	"github.com/go-xmlscan/xmlscan/internal/charclass"
	"github.com/stretchr/testify/require"
)

func TestIsChar(t *testing.T) {
	require.True(t, charclass.IsChar('\t'))
	require.True(t, charclass.IsChar('\n'))
	require.True(t, charclass.IsChar('A'))
	require.False(t, charclass.IsChar(0x0001))
	require.False(t, charclass.IsChar(0xFFFE))
	require.False(t, charclass.IsChar(0xD800)) // lone surrogate value
}

func TestNameStartAndNameChar(t *testing.T) {
	require.True(t, charclass.IsNameStartChar('a'))
	require.True(t, charclass.IsNameStartChar('_'))
	require.True(t, charclass.IsNameStartChar(':'))
	require.False(t, charclass.IsNameStartChar('-'))
	require.False(t, charclass.IsNameStartChar('0'))

	require.True(t, charclass.IsNameChar('-'))
	require.True(t, charclass.IsNameChar('0'))
	require.True(t, charclass.IsNameChar('a'))
	require.False(t, charclass.IsNameChar(' '))
}

func TestWhiteSpace(t *testing.T) {
	for _, c := range []uint16{' ', '\t', '\r', '\n'} {
		require.True(t, charclass.IsWhiteSpace(c))
	}
	require.False(t, charclass.IsWhiteSpace('a'))
}

func TestSurrogateCombination(t *testing.T) {
	// U+1F600 GRINNING FACE -> D83D DE00
	cp := charclass.CombineSurrogates(0xD83D, 0xDE00)
	require.Equal(t, rune(0x1F600), cp)
	require.True(t, charclass.IsCharCodePoint(cp))
	require.True(t, charclass.IsScalarValue(cp))
}

func TestIsScalarValueRejectsSurrogates(t *testing.T) {
	require.False(t, charclass.IsScalarValue(0xD800))
	require.False(t, charclass.IsScalarValue(0xDFFF))
	require.True(t, charclass.IsScalarValue(0x41))
	require.False(t, charclass.IsScalarValue(0x110000))
}

func TestLanePredicates(t *testing.T) {
	require.True(t, charclass.ContentLaneOK([]uint16{'h', 'e', 'l', 'l', 'o'}))
	require.False(t, charclass.ContentLaneOK([]uint16{'h', '<', 'i'}))
	require.False(t, charclass.ContentLaneOK([]uint16{'h', 0xD800}))

	require.True(t, charclass.AttrValueLaneOK([]uint16{'a', 'b'}, '"'))
	require.False(t, charclass.AttrValueLaneOK([]uint16{'a', '"'}, '"'))

	require.True(t, charclass.NameLaneOK([]uint16{'r', 'o', 'o', 't'}))
	require.False(t, charclass.NameLaneOK([]uint16{'r', ' '}))
}
