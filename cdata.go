package xmlscan

import "github.com/go-xmlscan/xmlscan/internal/charclass"

// parseCData consumes a CDATA section's body, with the cursor sitting
// right after the "<![CDATA[" marker, through and including its
// closing "]]>". line and col are the position of the section's
// opening "<".
func (s *state[H, Sm, Tc]) parseCData(line, col int) error {
	start := s.buf.Mark()
	isPlain := func(c uint16) bool { return c != ']' && c != '\r' && c != '\n' && charclass.IsChar(c) }

	for {
		s.appendExtendedRun(isPlain, charclass.CDataLaneOK, charclass.IsCharCodePoint)

		c, ok := s.peek()
		if !ok {
			s.buf.Truncate(start)
			return s.errorf(ErrUnexpectedEOF)
		}
		if c == '\r' || c == '\n' {
			s.consumeNewline()
			continue
		}
		if c != ']' {
			s.buf.Truncate(start)
			return s.errorf(ErrInvalidChar)
		}

		n := 0
		for {
			c, ok := s.peek()
			if !ok || c != ']' {
				break
			}
			s.read()
			n++
		}

		c, ok = s.peek()
		if ok && c == '>' && n >= 2 {
			s.read()
			for i := 0; i < n-2; i++ {
				s.buf.AppendCodeUnit(']')
			}
			break
		}

		for i := 0; i < n; i++ {
			s.buf.AppendCodeUnit(']')
		}
		if !ok {
			s.buf.Truncate(start)
			return s.errorf(ErrUnexpectedEOF)
		}
	}

	body := s.buf.Slice(start)
	err := s.h.OnCData(body, line, col)
	s.buf.Truncate(start)
	return err
}
