package xmlscan

import "github.com/go-xmlscan/xmlscan/internal/charclass"

// isContentUnit reports whether c can appear literally in character
// data. '<' and '&' start markup or a reference; ']' is excluded so
// the scalar loop can check for a forbidden "]]>" run.
func isContentUnit(c uint16) bool {
	return c != '<' && c != '&' && c != ']' && c != '\r' && c != '\n' && charclass.IsChar(c)
}

// parseText consumes a run of character data up to the next '<',
// expanding any references inline so literal and reference-produced
// text are delivered to the handler as a single OnText call. line and
// col are the position of the run's first unit.
func (s *state[H, Sm, Tc]) parseText(line, col int) error {
	start := s.buf.Mark()

	for {
		s.appendExtendedRun(isContentUnit, charclass.ContentLaneOK, charclass.IsCharCodePoint)

		c, ok := s.peek()
		if !ok {
			break
		}

		switch c {
		case '&':
			if err := s.parseReference(); err != nil {
				s.buf.Truncate(start)
				return err
			}
			continue
		case ']':
			if err := s.consumeBracketRun(); err != nil {
				s.buf.Truncate(start)
				return err
			}
			continue
		case '\r', '\n':
			s.consumeNewline()
			continue
		case '<':
			// Markup starts here; stop the run.
		default:
			s.buf.Truncate(start)
			return s.errorf(ErrInvalidChar)
		}
		break
	}

	text := s.buf.Slice(start)
	err := s.h.OnText(text, line, col)
	s.buf.Truncate(start)
	return err
}

// consumeBracketRun is called with the cursor sitting on a ']' found
// while scanning content. It appends the longest run of consecutive
// ']' characters, checked so that the run never ends up immediately
// followed by '>' while its length is at least two, which the CharData
// production forbids.
func (s *state[H, Sm, Tc]) consumeBracketRun() error {
	n := 0
	for {
		c, ok := s.peek()
		if !ok || c != ']' {
			break
		}
		s.read()
		s.buf.AppendCodeUnit(']')
		n++
	}

	if n >= 2 {
		if c, ok := s.peek(); ok && c == '>' {
			return s.errorf(ErrLiteralCDataEndInContent)
		}
	}
	return nil
}
