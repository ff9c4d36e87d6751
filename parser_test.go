package xmlscan_test

import (
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/require"

	"github.com/go-xmlscan/xmlscan"
	"github.com/go-xmlscan/xmlscan/sax"
)

// event is a single decoded callback captured by newRecorder, string
// fields pre-decoded from UTF-16 so assertions can compare against
// ordinary Go string literals.
type event struct {
	kind  string
	name  string
	value string
	line  int
	col   int
}

func u(units []uint16) string { return string(utf16.Decode(units)) }

func newRecorder() (*[]event, sax.Handler) {
	events := &[]event{}
	h := sax.Funcs{
		XmlDeclarationHandler: func(version, encoding, standalone []uint16, line, column int) error {
			*events = append(*events, event{kind: "decl", name: u(version), value: u(encoding), line: line, col: column})
			return nil
		},
		BeginTagHandler: func(name []uint16, line, column int) error {
			*events = append(*events, event{kind: "begin", name: u(name), line: line, col: column})
			return nil
		},
		AttributeHandler: func(name, value []uint16, nameLine, nameColumn, valueLine, valueColumn int) error {
			*events = append(*events, event{kind: "attr", name: u(name), value: u(value), line: nameLine, col: nameColumn})
			return nil
		},
		EndTagEmptyHandler: func() error {
			*events = append(*events, event{kind: "endEmpty"})
			return nil
		},
		EndTagHandler: func(name []uint16, line, column int) error {
			*events = append(*events, event{kind: "end", name: u(name), line: line, col: column})
			return nil
		},
		TextHandler: func(text []uint16, line, column int) error {
			*events = append(*events, event{kind: "text", value: u(text), line: line, col: column})
			return nil
		},
		CommentHandler: func(body []uint16, line, column int) error {
			*events = append(*events, event{kind: "comment", value: u(body), line: line, col: column})
			return nil
		},
		CDataHandler: func(body []uint16, line, column int) error {
			*events = append(*events, event{kind: "cdata", value: u(body), line: line, col: column})
			return nil
		},
		ErrorHandler: func(message string, line, column int) error {
			*events = append(*events, event{kind: "error", value: message, line: line, col: column})
			return &sax.Error{Message: message, Line: line, Column: column}
		},
	}
	return events, h
}

func kinds(events []event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.kind
	}
	return out
}

func TestParseSimpleElement(t *testing.T) {
	events, h := newRecorder()
	err := xmlscan.ParseText(`<root>hello</root>`, h)
	require.NoError(t, err)
	require.Equal(t, []string{"begin", "text", "end"}, kinds(*events))
	require.Equal(t, "root", (*events)[0].name)
	require.Equal(t, "hello", (*events)[1].value)
	require.Equal(t, "root", (*events)[2].name)
}

func TestParseSelfClosingTag(t *testing.T) {
	events, h := newRecorder()
	err := xmlscan.ParseText(`<root><child/></root>`, h)
	require.NoError(t, err)
	require.Equal(t, []string{"begin", "begin", "endEmpty", "end"}, kinds(*events))
}

func TestParseAttributes(t *testing.T) {
	events, h := newRecorder()
	err := xmlscan.ParseText(`<root a="1" b='two'></root>`, h)
	require.NoError(t, err)
	require.Equal(t, []string{"begin", "attr", "attr", "end"}, kinds(*events))
	require.Equal(t, "a", (*events)[1].name)
	require.Equal(t, "1", (*events)[1].value)
	require.Equal(t, "b", (*events)[2].name)
	require.Equal(t, "two", (*events)[2].value)
}

func TestParseAttributesMissingWhitespace(t *testing.T) {
	_, h := newRecorder()
	err := xmlscan.ParseText(`<a b="1"c="2"/>`, h)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Expecting whitespace or '>'")
}

func TestParseAttributeValueNormalization(t *testing.T) {
	events, h := newRecorder()
	err := xmlscan.ParseText("<root a=\"line1\tline2\r\nline3\"/>", h)
	require.NoError(t, err)
	require.Equal(t, "line1 line2 line3", (*events)[1].value)
}

func TestParseAttributeValueWithReference(t *testing.T) {
	events, h := newRecorder()
	err := xmlscan.ParseText(`<root a="&amp;&#65;&#x42;"/>`, h)
	require.NoError(t, err)
	require.Equal(t, "&AB", (*events)[1].value)
}

func TestParseTextNewlineNormalization(t *testing.T) {
	events, h := newRecorder()
	err := xmlscan.ParseText("<root>a\r\nb\rc\nd</root>", h)
	require.NoError(t, err)
	require.Equal(t, "a\nb\nc\nd", (*events)[1].value)
}

func TestParseTextInvalidCharacter(t *testing.T) {
	_, h := newRecorder()
	err := xmlscan.ParseText("<root>a\x01b</root>", h)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Invalid character")
}

func TestParseNestedElements(t *testing.T) {
	events, h := newRecorder()
	err := xmlscan.ParseText(`<a><b><c/></b></a>`, h)
	require.NoError(t, err)
	require.Equal(t, []string{"begin", "begin", "begin", "endEmpty", "end", "end"}, kinds(*events))
}

func TestParseComment(t *testing.T) {
	events, h := newRecorder()
	err := xmlscan.ParseText(`<root><!-- a comment --></root>`, h)
	require.NoError(t, err)
	require.Equal(t, []string{"begin", "comment", "end"}, kinds(*events))
	require.Equal(t, " a comment ", (*events)[1].value)
}

func TestParseCData(t *testing.T) {
	events, h := newRecorder()
	err := xmlscan.ParseText(`<root><![CDATA[<not a tag> & ]]]></root>`, h)
	require.NoError(t, err)
	require.Equal(t, []string{"begin", "cdata", "end"}, kinds(*events))
	require.Equal(t, "<not a tag> & ]", (*events)[1].value)
}

func TestParseCommentNewlineNormalization(t *testing.T) {
	events, h := newRecorder()
	err := xmlscan.ParseText("<root><!--a\r\nb\rc--></root>", h)
	require.NoError(t, err)
	require.Equal(t, "a\nb\nc", (*events)[1].value)
}

func TestParseCDataNewlineNormalization(t *testing.T) {
	events, h := newRecorder()
	err := xmlscan.ParseText("<root><![CDATA[a\r\nb\rc]]></root>", h)
	require.NoError(t, err)
	require.Equal(t, "a\nb\nc", (*events)[1].value)
}

func TestParseTextWithEntityReferences(t *testing.T) {
	events, h := newRecorder()
	err := xmlscan.ParseText(`<root>a &amp; b &lt;tag&gt; c</root>`, h)
	require.NoError(t, err)
	require.Equal(t, "a & b <tag> c", (*events)[1].value)
}

func TestParseTextWithNumericCharRef(t *testing.T) {
	events, h := newRecorder()
	err := xmlscan.ParseText(`<root>&#x1F600;</root>`, h)
	require.NoError(t, err)
	require.Equal(t, "\U0001F600", (*events)[1].value)
}

func TestParseNonBMPName(t *testing.T) {
	// U+10000 is a valid NameStartChar; verify it survives as a name.
	events, h := newRecorder()
	err := xmlscan.ParseText("<\U00010000/>", h)
	require.NoError(t, err)
	require.Equal(t, "\U00010000", (*events)[0].name)
}

func TestParseXmlDeclaration(t *testing.T) {
	events, h := newRecorder()
	err := xmlscan.ParseText(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?><root/>`, h)
	require.NoError(t, err)
	require.Equal(t, []string{"decl", "begin", "endEmpty"}, kinds(*events))
	require.Equal(t, "1.0", (*events)[0].name)
	require.Equal(t, "UTF-8", (*events)[0].value)
}

func TestParseXmlDeclarationMissingWhitespace(t *testing.T) {
	_, h := newRecorder()
	err := xmlscan.ParseText(`<?xml version="1.0"encoding="utf-8"?><root/>`, h)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Malformed XML declaration")
}

func TestParseLineColumnTracking(t *testing.T) {
	events, h := newRecorder()
	doc := "<root>\n  <child/>\n</root>"
	err := xmlscan.ParseText(doc, h)
	require.NoError(t, err)

	require.Equal(t, "begin", (*events)[0].kind)
	require.Equal(t, 0, (*events)[0].line)
	require.Equal(t, 0, (*events)[0].col)

	require.Equal(t, "begin", (*events)[1].kind)
	require.Equal(t, "child", (*events)[1].name)
	require.Equal(t, 1, (*events)[1].line)
	require.Equal(t, 2, (*events)[1].col)
}

func TestParseLargeDocument(t *testing.T) {
	var b strings.Builder
	b.WriteString("<root>")
	for i := 0; i < 200; i++ {
		b.WriteString("<item>value</item>")
	}
	b.WriteString("</root>")

	events, h := newRecorder()
	err := xmlscan.ParseText(b.String(), h)
	require.NoError(t, err)
	require.Equal(t, 1+200*3+1, len(*events))
}
