package xmlscan

import (
	"github.com/go-xmlscan/xmlscan/internal/charclass"
	"github.com/go-xmlscan/xmlscan/internal/debug"
)

// run drives the top-level content dispatch loop: it repeatedly
// inspects the upcoming markup, at any nesting depth, and routes to
// the construct-specific parser, until the source is
// exhausted. An XML declaration, if present, must be the very first
// thing seen; any later "<?xml" is rejected outright.
func (s *state[H, Sm, Tc]) run() error {
	first := true

	for {
		c, ok := s.peek()
		if !ok {
			break
		}

		if c != '<' {
			line, col := s.pos.position()
			if err := s.parseText(line, col); err != nil {
				return err
			}
			first = false
			continue
		}

		line, col := s.pos.position()

		if s.peekName("<?xml") && s.atXMLDeclBoundary() {
			s.advanceLiteral("<?xml")
			if !first {
				return s.errorf(ErrXmlDeclarationNotFirst)
			}
			if err := s.parseXMLDeclaration(line, col); err != nil {
				return err
			}
			first = false
			continue
		}

		first = false

		switch {
		case s.peekName("<!--"):
			debug.Printf("comment at line %d column %d", line, col)
			s.advanceLiteral("<!--")
			if err := s.parseComment(line, col); err != nil {
				return err
			}
		case s.peekName("<![CDATA["):
			debug.Printf("cdata at line %d column %d", line, col)
			s.advanceLiteral("<![CDATA[")
			if err := s.parseCData(line, col); err != nil {
				return err
			}
		case s.peekName("</"):
			debug.Printf("end tag at line %d column %d", line, col)
			if err := s.parseEndTag(line, col); err != nil {
				return err
			}
		case s.peekName("<!"):
			return s.errorf(ErrUnsupportedDirective)
		case s.peekName("<?"):
			return s.errorf(ErrUnsupportedDirective)
		default:
			debug.Printf("begin tag at line %d column %d", line, col)
			if _, err := s.parseBeginTag(line, col); err != nil {
				return err
			}
		}
	}

	return s.finish()
}

// atXMLDeclBoundary reports whether the code unit right after "<?xml"
// is whitespace or '?', so that a tag genuinely named e.g. "xmlfoo" is
// not mistaken for a declaration.
func (s *state[H, Sm, Tc]) atXMLDeclBoundary() bool {
	c, ok := s.peekAt(5)
	return ok && (charclass.IsWhiteSpace(c) || c == '?')
}

// advanceLiteral consumes exactly the ASCII literal lit, which the
// caller has already confirmed with peekName.
func (s *state[H, Sm, Tc]) advanceLiteral(lit string) {
	for i := 0; i < len(lit); i++ {
		s.read()
	}
}

// finish is called once the source is exhausted cleanly, i.e. not
// because of a hard parse error. When matched-tag checking is
// enabled, it reports one OnError per element still open, innermost
// first, draining the open-tag stack.
func (s *state[H, Sm, Tc]) finish() error {
	var tc Tc
	if !tc.enabled() {
		return nil
	}

	line, col := s.pos.position()
	for !s.buf.StackEmpty() {
		name := s.buf.PopName()
		nameStr := string(utf16Decode(name))
		if err := s.h.OnError(unclosedElementError(nameStr, line, col).Error(), line, col); err != nil {
			s.buf.ClearLexeme()
			return err
		}
	}
	s.buf.ClearLexeme()
	return nil
}
