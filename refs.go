package xmlscan

import "github.com/go-xmlscan/xmlscan/internal/charclass"

// parseReference consumes one reference, "&..." through its
// terminating ";", and appends the character it denotes to s.buf's
// current lexeme. It is shared by content text and attribute value
// scanning, the two contexts XML 1.0 4.1 allows a reference in.
func (s *state[H, Sm, Tc]) parseReference() error {
	if c, ok := s.read(); !ok || c != '&' {
		return s.errorf(ErrInvalidChar)
	}

	if c, ok := s.peek(); ok && c == '#' {
		s.read()
		hex := false
		if c, ok := s.peek(); ok && (c == 'x' || c == 'X') {
			hex = true
			s.read()
		}

		var digits []uint16
		for {
			c, ok := s.peek()
			if !ok || c == ';' {
				break
			}
			digits = append(digits, c)
			s.read()
		}

		if c, ok := s.read(); !ok || c != ';' {
			return s.errorf(ErrMissingSemicolon)
		}

		cp, okNum := parseNumericCharRefDigits(digits, hex)
		if !okNum {
			return s.errorf(ErrInvalidCharacterReference)
		}
		appendRune(s.buf, cp)
		return nil
	}

	start := s.buf.Mark()
	s.appendRun(charclass.IsNameChar, charclass.NameLaneOK)
	name := s.buf.Slice(start)
	if len(name) == 0 {
		s.buf.Truncate(start)
		return s.errorf(ErrUnknownEntity)
	}

	cp, okEnt := predefinedEntity(name)
	s.buf.Truncate(start)

	if c, ok := s.read(); !ok || c != ';' {
		return s.errorf(ErrMissingSemicolon)
	}
	if !okEnt {
		return s.errorf(ErrUnknownEntity)
	}
	appendRune(s.buf, cp)
	return nil
}
