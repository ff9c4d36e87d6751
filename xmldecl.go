package xmlscan

import "github.com/go-xmlscan/xmlscan/internal/charclass"

// parseXMLDeclaration consumes "<?xml" through "?>", with the cursor
// sitting right after the "<?xml" marker, and fires OnXmlDeclaration.
// line and col are the position of the declaration's opening "<". It
// is only ever called for the very first construct in the document;
// any later "<?xml" is rejected by the caller before this is reached.
func (s *state[H, Sm, Tc]) parseXMLDeclaration(line, col int) error {
	start := s.buf.Mark()
	s.skipRun(charclass.IsWhiteSpace, whitespaceLaneOK)

	version, err := s.parsePseudoAttribute("version")
	if err != nil {
		return err
	}
	if version == nil {
		return s.errorf(ErrMalformedXmlDeclaration)
	}

	var encoding, standalone []uint16

	sawWS := s.skipRun(charclass.IsWhiteSpace, whitespaceLaneOK)
	if s.peekName("encoding") {
		if !sawWS {
			return s.errorf(ErrMalformedXmlDeclaration)
		}
		encoding, err = s.parsePseudoAttribute("encoding")
		if err != nil {
			return err
		}
		if len(encoding) == 0 {
			return s.errorf(ErrInvalidEncodingName)
		}
		sawWS = s.skipRun(charclass.IsWhiteSpace, whitespaceLaneOK)
	}

	if s.peekName("standalone") {
		if !sawWS {
			return s.errorf(ErrMalformedXmlDeclaration)
		}
		standalone, err = s.parsePseudoAttribute("standalone")
		if err != nil {
			return err
		}
		if !equalASCII(standalone, "yes") && !equalASCII(standalone, "no") {
			return s.errorf(ErrMalformedXmlDeclaration)
		}
		s.skipRun(charclass.IsWhiteSpace, whitespaceLaneOK)
	}

	c, ok := s.read()
	if !ok || c != '?' {
		return s.errorf(ErrMalformedXmlDeclaration)
	}
	c, ok = s.read()
	if !ok || c != '>' {
		return s.errorf(ErrMalformedXmlDeclaration)
	}

	err = s.h.OnXmlDeclaration(version, encoding, standalone, line, col)
	s.buf.Truncate(start)
	return err
}

// peekName reports whether the upcoming code units spell name without
// consuming anything, used to decide whether an optional pseudo
// attribute is present.
func (s *state[H, Sm, Tc]) peekName(name string) bool {
	for i := 0; i < len(name); i++ {
		c, ok := s.peekAt(i)
		if !ok || c != uint16(name[i]) {
			return false
		}
	}
	return true
}

// parsePseudoAttribute consumes one "name = 'value'" or
// "name = \"value\"" pseudo attribute from an XML declaration,
// requiring the literal name to match exactly.
func (s *state[H, Sm, Tc]) parsePseudoAttribute(name string) ([]uint16, error) {
	for i := 0; i < len(name); i++ {
		c, ok := s.read()
		if !ok || c != uint16(name[i]) {
			return nil, s.errorf(ErrMalformedXmlDeclaration)
		}
	}

	s.skipRun(charclass.IsWhiteSpace, whitespaceLaneOK)
	if c, ok := s.read(); !ok || c != '=' {
		return nil, s.errorf(ErrMalformedXmlDeclaration)
	}
	s.skipRun(charclass.IsWhiteSpace, whitespaceLaneOK)

	quote, ok := s.read()
	if !ok || (quote != '"' && quote != '\'') {
		return nil, s.errorf(ErrMalformedXmlDeclaration)
	}

	start := s.buf.Mark()
	isPlain := func(c uint16) bool { return c != quote && charclass.IsChar(c) }
	laneOK := func(lane []uint16) bool { return charclass.AttrValueLaneOK(lane, quote) }
	s.appendRun(isPlain, laneOK)
	value := s.buf.Slice(start)

	c, ok := s.read()
	if !ok || c != quote {
		s.buf.Truncate(start)
		return nil, s.errorf(ErrMalformedXmlDeclaration)
	}
	return value, nil
}

func equalASCII(v []uint16, s string) bool {
	if len(v) != len(s) {
		return false
	}
	for i, c := range v {
		if c != uint16(s[i]) {
			return false
		}
	}
	return true
}
