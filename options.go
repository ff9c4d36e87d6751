package xmlscan

import "github.com/lestrrat-go/option"

// Option configures a Parse call. Construct one with WithEncoding,
// WithSIMD, or WithCheckBeginEndTag.
type Option = option.Interface

type identEncoding struct{}
type identSIMD struct{}
type identCheckBeginEndTag struct{}

// WithEncoding overrides the character encoding that would otherwise
// be detected from the input's leading bytes. The encoding named in an
// XML declaration is not consulted.
// It only affects ParseReader; ParseText and ParseString already
// receive decoded UTF-16 and ignore it.
func WithEncoding(name string) Option {
	return option.New(identEncoding{}, name)
}

// WithSIMD selects whether the parser takes its vectorised fast paths
// for content, name, and attribute-value scanning. It defaults to
// true; pass false to force the scalar loop, which is useful for
// isolating a SIMD-path bug or benchmarking the two against each
// other.
func WithSIMD(enabled bool) Option {
	return option.New(identSIMD{}, enabled)
}

// WithCheckBeginEndTag selects whether the parser tracks open
// elements and verifies that each end tag matches the most recently
// opened, not-yet-closed begin tag, reporting a mismatch or an
// element still open at end-of-input through Handler.OnError. It
// defaults to true; pass false to skip the bookkeeping entirely for
// documents whose well-formedness with respect to tag nesting is
// already guaranteed by the producer.
func WithCheckBeginEndTag(enabled bool) Option {
	return option.New(identCheckBeginEndTag{}, enabled)
}

// runtimeConfig is the resolved, non-generic form of a parse call's
// options. simd and checkTags pick which of the four runWith
// instantiations a ParseText/ParseString/ParseReader call dispatches to.
type runtimeConfig struct {
	encoding  string
	simd      bool
	checkTags bool
}

func resolveOptions(opts []Option) runtimeConfig {
	cfg := runtimeConfig{simd: true, checkTags: true}
	for _, opt := range opts {
		switch opt.Ident() {
		case identEncoding{}:
			cfg.encoding = opt.Value().(string)
		case identSIMD{}:
			cfg.simd = opt.Value().(bool)
		case identCheckBeginEndTag{}:
			cfg.checkTags = opt.Value().(bool)
		}
	}
	return cfg
}
