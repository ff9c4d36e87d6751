package xmlscan

import (
	"io"
	"unicode/utf16"

	"github.com/go-xmlscan/xmlscan/internal/charsource"
	"github.com/go-xmlscan/xmlscan/sax"
)

// ParseString parses an already-decoded UTF-16 document, driving h
// with one callback per construct. It returns the first error a
// callback returned, or nil once the input is fully consumed.
func ParseString(data []uint16, h sax.Handler, opts ...Option) error {
	return dispatch(charsource.NewTextSource(data), h, opts)
}

// ParseText is a convenience wrapper over ParseString for callers
// holding a Go string; it decodes s to UTF-16 first.
func ParseText(s string, h sax.Handler, opts ...Option) error {
	return ParseString(utf16.Encode([]rune(s)), h, opts...)
}

// ParseReader parses an entire byte stream, detecting its encoding
// from a leading byte-order mark or, failing that, a four-byte
// heuristic pattern, unless WithEncoding overrides it.
func ParseReader(r io.Reader, h sax.Handler, opts ...Option) error {
	cfg := resolveOptions(opts)
	src, err := charsource.NewStreamSource(r, cfg.encoding)
	if err != nil {
		return err
	}
	return dispatch(src, h, opts)
}

// dispatch resolves opts to a concrete (simd, checkTags) pair and
// calls the matching generic instantiation of the engine, so that the
// compiler specializes each of the four combinations separately; see
// Flag.
func dispatch(src charsource.Source, h sax.Handler, opts []Option) error {
	cfg := resolveOptions(opts)

	switch {
	case cfg.simd && cfg.checkTags:
		return runWith[SIMDOn, CheckTagsOn](src, h)
	case cfg.simd && !cfg.checkTags:
		return runWith[SIMDOn, CheckTagsOff](src, h)
	case !cfg.simd && cfg.checkTags:
		return runWith[SIMDOff, CheckTagsOn](src, h)
	default:
		return runWith[SIMDOff, CheckTagsOff](src, h)
	}
}

func runWith[Sm Flag, Tc Flag](src charsource.Source, h sax.Handler) error {
	s := newState[sax.Handler, Sm, Tc](src, h)
	defer s.release()
	return s.run()
}
