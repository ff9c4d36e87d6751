// Package xmlscan is a streaming, allocation-light XML 1.0 parser. It
// reads UTF-16 code units and drives a sax.Handler with borrowed
// slices instead of building a document tree, so a caller that only
// needs to react to markup as it goes by never pays for a DOM.
//
// ParseText and ParseString parse an in-memory document; ParseReader
// decodes a byte stream first, detecting its encoding from a leading
// byte-order mark, a four-byte heuristic, or an explicit
// WithEncoding override. WithSIMD and WithCheckBeginEndTag pick which
// of the engine's four compile-time specializations a call dispatches
// to; see Flag.
package xmlscan
