package xmlscan

import (
	"unicode/utf16"

	"github.com/go-xmlscan/xmlscan/internal/charclass"
	"github.com/go-xmlscan/xmlscan/internal/scratch"
)

// appendRune appends cp to buf as one or two UTF-16 code units.
func appendRune(buf *scratch.Buffer, cp rune) {
	if cp <= 0xFFFF {
		buf.AppendCodeUnit(uint16(cp))
		return
	}
	r1, r2 := utf16.EncodeRune(cp)
	buf.AppendCodeUnit(uint16(r1))
	buf.AppendCodeUnit(uint16(r2))
}

// predefinedEntity returns the code point denoted by one of the five
// built-in entity names of XML 1.0 4.6, or false if name is none of
// them. Custom and external entities are a non-goal; any other name
// is reported through Handler.OnError by the caller.
func predefinedEntity(name []uint16) (rune, bool) {
	switch {
	case equalsASCII(name, "lt"):
		return '<', true
	case equalsASCII(name, "gt"):
		return '>', true
	case equalsASCII(name, "amp"):
		return '&', true
	case equalsASCII(name, "apos"):
		return '\'', true
	case equalsASCII(name, "quot"):
		return '"', true
	default:
		return 0, false
	}
}

func equalsASCII(name []uint16, s string) bool {
	if len(name) != len(s) {
		return false
	}
	for i, c := range name {
		if c != uint16(s[i]) {
			return false
		}
	}
	return true
}

// parseNumericCharRefDigits computes the code point denoted by the
// digits of a numeric character reference (the text between "&#" or
// "&#x" and the terminating ";"), already collected into a slice.
// It reports false if digits is empty, overflows a valid code point,
// or denotes a code point that isn't itself a legal XML Char.
func parseNumericCharRefDigits(digits []uint16, hex bool) (rune, bool) {
	if len(digits) == 0 {
		return 0, false
	}
	var val int64
	for _, c := range digits {
		var v int
		if hex {
			if !charclass.IsHexDigit(c) {
				return 0, false
			}
			v = charclass.HexDigitValue(c)
			val = val*16 + int64(v)
		} else {
			if !charclass.IsDecDigit(c) {
				return 0, false
			}
			v = int(c - '0')
			val = val*10 + int64(v)
		}
		if val > charclass.MaxCodePoint {
			return 0, false
		}
	}
	cp := rune(val)
	if !charclass.IsCharCodePoint(cp) {
		return 0, false
	}
	return cp, true
}
