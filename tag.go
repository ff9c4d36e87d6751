package xmlscan

import "github.com/go-xmlscan/xmlscan/internal/charclass"

// parseBeginTag consumes "<Name" through the tag's closing ">" or
// "/>", firing OnAttribute for each attribute along the way. line and
// col are the position of the tag's opening "<". It reports whether
// the tag was self-closing, in which case the caller must not expect
// a subtree or a matching end tag.
func (s *state[H, Sm, Tc]) parseBeginTag(line, col int) (selfClosing bool, err error) {
	s.read() // '<'

	name, err := s.parseName()
	if err != nil {
		return false, err
	}
	if err := s.h.OnBeginTag(name, line, col); err != nil {
		return false, err
	}

	var tc Tc
	if tc.enabled() {
		s.buf.PushName()
	} else {
		s.buf.ClearLexeme()
	}

	for {
		sawWS := s.skipRun(charclass.IsWhiteSpace, whitespaceLaneOK)
		c, ok := s.peek()
		if !ok {
			return false, s.errorf(ErrUnexpectedEOF)
		}

		switch c {
		case '>':
			s.read()
			return false, nil
		case '/':
			s.read()
			c2, ok := s.read()
			if !ok || c2 != '>' {
				return false, s.errorf(ErrExpectingWhitespaceOrGt)
			}
			if tc.enabled() {
				s.buf.PopName()
				s.buf.ClearLexeme()
			}
			if err := s.h.OnEndTagEmpty(); err != nil {
				return true, err
			}
			return true, nil
		default:
			if !sawWS {
				return false, s.errorf(ErrExpectingWhitespaceOrGt)
			}
			if err := s.parseAttribute(); err != nil {
				return false, err
			}
		}
	}
}

// parseEndTag consumes "</Name" through its closing ">". line and col
// are the position of the tag's opening "<". When matched-tag
// checking is enabled, it compares the name against the innermost
// still-open begin tag and reports ErrEndTagMismatch or
// ErrUnmatchedEndTag instead of calling OnEndTag if they disagree.
func (s *state[H, Sm, Tc]) parseEndTag(line, col int) error {
	s.read() // '<'
	s.read() // '/'

	name, err := s.parseName()
	if err != nil {
		return err
	}
	s.skipRun(charclass.IsWhiteSpace, whitespaceLaneOK)
	c, ok := s.read()
	if !ok || c != '>' {
		return s.errorf(ErrExpectingWhitespaceOrGt)
	}

	var tc Tc
	if !tc.enabled() {
		err := s.h.OnEndTag(name, line, col)
		s.buf.ClearLexeme()
		return err
	}

	if s.buf.StackEmpty() {
		err := s.errorAt(ErrUnmatchedEndTag, line, col)
		s.buf.ClearLexeme()
		return err
	}

	open := s.buf.PopName()
	if !equalUint16(open, name) {
		err := s.errorAt(ErrEndTagMismatch, line, col)
		s.buf.ClearLexeme()
		return err
	}

	err = s.h.OnEndTag(name, line, col)
	s.buf.ClearLexeme()
	return err
}

func whitespaceLaneOK(lane []uint16) bool {
	for _, c := range lane {
		if !charclass.IsWhiteSpace(c) {
			return false
		}
	}
	return true
}
