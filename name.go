package xmlscan

import "github.com/go-xmlscan/xmlscan/internal/charclass"

// parseName appends one XML Name to the current lexeme and returns
// it as a borrowed slice, or reports ErrInvalidTagName if the next
// character isn't a valid NameStartChar.
func (s *state[H, Sm, Tc]) parseName() ([]uint16, error) {
	start := s.buf.Mark()

	c, ok := s.peek()
	switch {
	case ok && charclass.IsNameStartChar(c):
		s.read()
		s.buf.AppendCodeUnit(c)
	case ok && charclass.IsHighSurrogate(c):
		s.read()
		low, lowOK := s.peek()
		if !lowOK || !charclass.IsLowSurrogate(low) || !charclass.IsNameStartCodePoint(charclass.CombineSurrogates(c, low)) {
			return nil, s.errorf(ErrInvalidTagName)
		}
		s.read()
		s.buf.AppendCodeUnit(c)
		s.buf.AppendCodeUnit(low)
	default:
		return nil, s.errorf(ErrInvalidTagName)
	}

	s.appendExtendedRun(charclass.IsNameChar, charclass.NameLaneOK, charclass.IsNameCodePoint)
	return s.buf.Slice(start), nil
}
