package xmlscan

import "github.com/go-xmlscan/xmlscan/internal/charclass"

// parseAttribute consumes one Name Eq AttValue and fires OnAttribute.
// It is called with the cursor sitting on the attribute name's first
// character.
func (s *state[H, Sm, Tc]) parseAttribute() error {
	nameStart := s.buf.Mark()
	nameLine, nameCol := s.pos.position()

	name, err := s.parseName()
	if err != nil {
		return err
	}

	s.skipRun(charclass.IsWhiteSpace, whitespaceLaneOK)
	if c, ok := s.read(); !ok || c != '=' {
		s.buf.Truncate(nameStart)
		return s.errorf(ErrMissingEquals)
	}
	s.skipRun(charclass.IsWhiteSpace, whitespaceLaneOK)

	quote, ok := s.read()
	if !ok || (quote != '"' && quote != '\'') {
		s.buf.Truncate(nameStart)
		return s.errorf(ErrAttributeValueNotQuoted)
	}

	valueLine, valueCol := s.pos.position()
	valueStart := s.buf.Mark()
	if err := s.parseAttributeValueBody(quote); err != nil {
		s.buf.Truncate(nameStart)
		return err
	}
	value := s.buf.Slice(valueStart)

	err = s.h.OnAttribute(name, value, nameLine, nameCol, valueLine, valueCol)
	s.buf.Truncate(nameStart)
	return err
}

// parseAttributeValueBody consumes the AttValue body up to and
// including the closing quote, applying XML 1.0 3.3.3 attribute-value
// normalization: a literal tab, CR, or LF (CRLF counts once) becomes a
// single space; a character or entity reference contributes its
// resolved text unmodified.
func (s *state[H, Sm, Tc]) parseAttributeValueBody(quote uint16) error {
	isPlain := func(c uint16) bool {
		return c != quote && c != '&' && c != '<' && c != 0x9 && c != 0xA && c != 0xD && charclass.IsChar(c)
	}
	laneOK := func(lane []uint16) bool { return charclass.AttrValueLaneOK(lane, quote) }

	for {
		s.appendExtendedRun(isPlain, laneOK, charclass.IsCharCodePoint)

		c, ok := s.peek()
		if !ok {
			return s.errorf(ErrUnexpectedEOF)
		}

		switch {
		case c == quote:
			s.read()
			return nil
		case c == '&':
			if err := s.parseReference(); err != nil {
				return err
			}
		case c == '<':
			return s.errorf(ErrLiteralLtInAttributeValue)
		case c == 0x9 || c == 0xA:
			s.read()
			s.buf.AppendCodeUnit(' ')
		case c == 0xD:
			s.read()
			if c2, ok := s.peek(); ok && c2 == 0xA {
				s.read()
			}
			s.buf.AppendCodeUnit(' ')
		default:
			return s.errorf(ErrInvalidCharInAttributeValue)
		}
	}
}
