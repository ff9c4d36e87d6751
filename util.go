package xmlscan

import "unicode/utf16"

func utf16Decode(units []uint16) []rune {
	return utf16.Decode(units)
}

func equalUint16(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}
	for i, c := range a {
		if c != b[i] {
			return false
		}
	}
	return true
}
