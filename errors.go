package xmlscan

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind identifies one of the fixed, closed set of conditions the
// parser can report through Handler.OnError, each with a fixed,
// human-readable message. Handler.OnError receives that message text
// and the position, not the ErrorKind itself.
type ErrorKind int

const (
	ErrInvalidTagName ErrorKind = iota
	ErrExpectingWhitespaceOrGt
	ErrInvalidAttributeName
	ErrMissingEquals
	ErrAttributeValueNotQuoted
	ErrLiteralLtInAttributeValue
	ErrInvalidCharInAttributeValue
	ErrInvalidChar
	ErrInvalidCharacterReference
	ErrMissingSemicolon
	ErrUnknownEntity
	ErrInvalidEndTagName
	ErrEndTagMismatch
	ErrUnmatchedEndTag
	ErrMalformedCDataStart
	ErrMalformedCommentStart
	ErrHyphenHyphenInComment
	ErrCommentEndsInHyphen
	ErrXmlDeclarationNotFirst
	ErrMalformedXmlDeclaration
	ErrUnsupportedDirective
	ErrUnexpectedEOF
	ErrUnclosedElement
	ErrInvalidEncodingName
	ErrLiteralCDataEndInContent
)

var errorMessages = map[ErrorKind]string{
	ErrInvalidTagName:              "Invalid tag name",
	ErrExpectingWhitespaceOrGt:     "Expecting whitespace or '>' after tag name",
	ErrInvalidAttributeName:        "Invalid attribute name",
	ErrMissingEquals:               "Expecting '=' after attribute name",
	ErrAttributeValueNotQuoted:     "Attribute value must be quoted",
	ErrLiteralLtInAttributeValue:   "'<' is not allowed in an attribute value",
	ErrInvalidCharInAttributeValue: "Invalid character in attribute value",
	ErrInvalidChar:                 "Invalid character",
	ErrInvalidCharacterReference:   "Invalid character reference",
	ErrMissingSemicolon:            "Expecting ';' to terminate reference",
	ErrUnknownEntity:               "Unknown entity reference",
	ErrInvalidEndTagName:           "Invalid end tag name",
	ErrEndTagMismatch:              "End tag does not match the currently open start tag",
	ErrUnmatchedEndTag:             "Invalid end tag. No matching start tag found",
	ErrMalformedCDataStart:         "Malformed CDATA section start",
	ErrMalformedCommentStart:       "Malformed comment start",
	ErrHyphenHyphenInComment:       "'--' is not allowed inside a comment",
	ErrCommentEndsInHyphen:         "Comment must not end in '--->'",
	ErrXmlDeclarationNotFirst:      "XML declaration must be the first thing in the document",
	ErrMalformedXmlDeclaration:     "Malformed XML declaration",
	ErrUnsupportedDirective:        "Unsupported markup declaration",
	ErrUnexpectedEOF:               "Unexpected end of input",
	ErrUnclosedElement:             "not closed at the end of the document.",
	ErrInvalidEncodingName:         "Invalid encoding name",
	ErrLiteralCDataEndInContent:    "']]>' is not allowed in content outside a CDATA section",
}

// String returns the fixed message for kind, without position
// information.
func (k ErrorKind) String() string {
	if msg, ok := errorMessages[k]; ok {
		return msg
	}
	return "unknown error"
}

// ParseError describes one parse failure; its Error() text is the
// message the parser passes to Handler.OnError. Line and Column are
// zero-based internally; callers presenting them to a user should add
// one.
type ParseError struct {
	Kind   ErrorKind
	Line   int
	Column int

	// detail, if set, replaces Kind.String() in Error() — used by
	// errors whose message carries information beyond the fixed,
	// per-kind text (e.g. the tag name in an unclosed-element report).
	detail string

	cause error
}

func (e *ParseError) Error() string {
	msg := e.Kind.String()
	if e.detail != "" {
		msg = e.detail
	}
	return fmt.Sprintf("%s (line %d, column %d)", msg, e.Line+1, e.Column+1)
}

// Unwrap exposes the pkg/errors-annotated cause so callers can use
// errors.Is / errors.As against it, or print a stack trace with
// "%+v" during debugging.
func (e *ParseError) Unwrap() error { return e.cause }

func newParseError(kind ErrorKind, line, column int) *ParseError {
	return &ParseError{
		Kind:   kind,
		Line:   line,
		Column: column,
		cause:  errors.WithStack(errors.New(kind.String())),
	}
}

// unclosedElementError builds the per-frame message reported for
// each element still open when the input ends cleanly.
func unclosedElementError(name string, line, column int) *ParseError {
	e := newParseError(ErrUnclosedElement, line, column)
	e.detail = fmt.Sprintf("Invalid tag %s %s", name, errorMessages[ErrUnclosedElement])
	e.cause = errors.WithStack(errors.New(e.detail))
	return e
}
