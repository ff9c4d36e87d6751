package charsource_test

import (
	"testing"

	"github.com/go-xmlscan/xmlscan/internal/charsource"
	"github.com/stretchr/testify/require"
)

func TestDetectEncoding(t *testing.T) {
	cases := []struct {
		name    string
		lead    []byte
		want    string
		wantBOM int
	}{
		{"utf8 bom", []byte{0xEF, 0xBB, 0xBF, 'x'}, "utf-8", 3},
		{"utf16le bom", []byte{0xFF, 0xFE, 'x', 0}, "utf-16le", 2},
		{"utf16be bom", []byte{0xFE, 0xFF, 0, 'x'}, "utf-16be", 2},
		{"utf32le bom", []byte{0xFF, 0xFE, 0x00, 0x00}, "utf-32le", 4},
		{"utf32be bom", []byte{0x00, 0x00, 0xFE, 0xFF}, "utf-32be", 4},
		{"utf8 heuristic", []byte{0x3C, 0x3F, 0x78, 0x6D}, "utf-8", 0},
		{"utf16le heuristic", []byte{0x3C, 0x00, 0x3F, 0x00}, "utf-16le", 0},
		{"utf16be heuristic", []byte{0x00, 0x3C, 0x00, 0x3F}, "utf-16be", 0},
		{"utf32le heuristic", []byte{0x3C, 0x00, 0x00, 0x00}, "utf-32le", 0},
		{"utf32be heuristic", []byte{0x00, 0x00, 0x00, 0x3C}, "utf-32be", 0},
		{"no match defaults utf8", []byte{0xde, 0xad, 0xbe, 0xef}, "utf-8", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			name, bomLen := charsource.DetectEncoding(tc.lead, "")
			require.Equal(t, tc.want, name)
			require.Equal(t, tc.wantBOM, bomLen)
		})
	}
}

func TestDetectEncodingOverride(t *testing.T) {
	name, bomLen := charsource.DetectEncoding([]byte{0xEF, 0xBB, 0xBF}, "iso-8859-1")
	require.Equal(t, "iso-8859-1", name)
	require.Equal(t, 0, bomLen)
}
