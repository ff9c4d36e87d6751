package xmlscan

import "github.com/go-xmlscan/xmlscan/internal/charclass"

// parseComment consumes a comment's body, with the cursor sitting
// right after the "<!--" marker, through and including its closing
// "-->". line and col are the position of the comment's opening "<".
// The Comment production forbids "--" from appearing anywhere inside
// the body, so a run of hyphens longer than one is always an error,
// either ErrHyphenHyphenInComment (more text follows) or
// ErrCommentEndsInHyphen (the run runs straight into "-->").
func (s *state[H, Sm, Tc]) parseComment(line, col int) error {
	start := s.buf.Mark()
	isPlain := func(c uint16) bool { return c != '-' && c != '\r' && c != '\n' && charclass.IsChar(c) }

	for {
		s.appendExtendedRun(isPlain, charclass.CommentLaneOK, charclass.IsCharCodePoint)

		c, ok := s.peek()
		if !ok {
			s.buf.Truncate(start)
			return s.errorf(ErrUnexpectedEOF)
		}
		if c == '\r' || c == '\n' {
			s.consumeNewline()
			continue
		}
		if c != '-' {
			s.buf.Truncate(start)
			return s.errorf(ErrInvalidChar)
		}
		s.read()

		c2, ok := s.peek()
		if !ok {
			s.buf.Truncate(start)
			return s.errorf(ErrUnexpectedEOF)
		}
		if c2 != '-' {
			s.buf.AppendCodeUnit('-')
			continue
		}
		s.read()

		c3, ok := s.peek()
		if !ok {
			s.buf.Truncate(start)
			return s.errorf(ErrUnexpectedEOF)
		}
		if c3 == '>' {
			s.read()
			break
		}
		if c3 == '-' {
			s.read()
			if c4, ok := s.peek(); ok && c4 == '>' {
				return s.errorf(ErrCommentEndsInHyphen)
			}
			return s.errorf(ErrHyphenHyphenInComment)
		}
		return s.errorf(ErrHyphenHyphenInComment)
	}

	body := s.buf.Slice(start)
	err := s.h.OnComment(body, line, col)
	s.buf.Truncate(start)
	return err
}
