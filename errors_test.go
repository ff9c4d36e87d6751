package xmlscan_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-xmlscan/xmlscan"
)

func TestParseEndTagMismatch(t *testing.T) {
	_, h := newRecorder()
	err := xmlscan.ParseText(`<a><b></c></a>`, h)
	require.Error(t, err)
	require.Contains(t, err.Error(), "End tag does not match")
}

func TestParseUnmatchedEndTag(t *testing.T) {
	_, h := newRecorder()
	err := xmlscan.ParseText(`<a></a></a>`, h)
	require.Error(t, err)
	require.Contains(t, err.Error(), "No matching start tag")
}

func TestParseUnclosedElement(t *testing.T) {
	events, h := newRecorder()
	err := xmlscan.ParseText(`<a><b></b>`, h)
	require.Error(t, err)
	last := (*events)[len(*events)-1]
	require.Equal(t, "error", last.kind)
	require.Contains(t, last.value, "not closed")
	require.Contains(t, last.value, "Invalid tag a not closed")
}

func TestParseLiteralLtInAttributeValue(t *testing.T) {
	_, h := newRecorder()
	err := xmlscan.ParseText(`<a b="<"/>`, h)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not allowed in an attribute value")
}

func TestParseUnquotedAttributeValue(t *testing.T) {
	_, h := newRecorder()
	err := xmlscan.ParseText(`<a b=1/>`, h)
	require.Error(t, err)
	require.Contains(t, err.Error(), "must be quoted")
}

func TestParseMissingEquals(t *testing.T) {
	_, h := newRecorder()
	err := xmlscan.ParseText(`<a b "x"/>`, h)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Expecting '='")
}

func TestParseUnknownEntity(t *testing.T) {
	_, h := newRecorder()
	err := xmlscan.ParseText(`<a>&bogus;</a>`, h)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unknown entity")
}

func TestParseInvalidCharacterReference(t *testing.T) {
	_, h := newRecorder()
	err := xmlscan.ParseText(`<a>&#xD800;</a>`, h)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Invalid character reference")
}

func TestParseMissingSemicolon(t *testing.T) {
	_, h := newRecorder()
	err := xmlscan.ParseText(`<a>&amp x</a>`, h)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Expecting ';'")
}

func TestParseLiteralCDataEndInContent(t *testing.T) {
	_, h := newRecorder()
	err := xmlscan.ParseText(`<a>x]]>y</a>`, h)
	require.Error(t, err)
	require.Contains(t, err.Error(), "']]>' is not allowed")
}

func TestParseHyphenHyphenInComment(t *testing.T) {
	_, h := newRecorder()
	err := xmlscan.ParseText(`<a><!-- a -- b --></a>`, h)
	require.Error(t, err)
	require.Contains(t, err.Error(), "'--' is not allowed")
}

func TestParseCommentEndsInHyphen(t *testing.T) {
	_, h := newRecorder()
	err := xmlscan.ParseText(`<a><!-- oops ---></a>`, h)
	require.Error(t, err)
	require.Contains(t, err.Error(), "must not end in")
}

func TestParseUnsupportedDirective(t *testing.T) {
	_, h := newRecorder()
	err := xmlscan.ParseText(`<!DOCTYPE root><root/>`, h)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unsupported markup declaration")
}

func TestParseXmlDeclarationNotFirst(t *testing.T) {
	_, h := newRecorder()
	err := xmlscan.ParseText(`<root/><?xml version="1.0"?>`, h)
	require.Error(t, err)
	require.Contains(t, err.Error(), "must be the first thing")
}

func TestParseMalformedXmlDeclaration(t *testing.T) {
	_, h := newRecorder()
	err := xmlscan.ParseText(`<?xml encoding="utf-8"?><root/>`, h)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Malformed XML declaration")
}
