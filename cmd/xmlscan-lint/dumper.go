package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf16"

	"github.com/fatih/color"

	"github.com/go-xmlscan/xmlscan/sax"
)

// dumper is a sax.Handler that prints one indented, colorized line
// per event, tracking nesting depth itself so begin/end tags read as
// a tree even when the parser was built without tag matching.
type dumper struct {
	w     io.Writer
	depth int

	tagColor  *color.Color
	attrColor *color.Color
	textColor *color.Color
	errColor  *color.Color
}

func newDumper(w io.Writer) *dumper {
	return &dumper{
		w:         w,
		tagColor:  color.New(color.FgCyan, color.Bold),
		attrColor: color.New(color.FgYellow),
		textColor: color.New(color.FgWhite),
		errColor:  color.New(color.FgRed, color.Bold),
	}
}

func (d *dumper) indent() string { return strings.Repeat("  ", d.depth) }

func u16(units []uint16) string { return string(utf16.Decode(units)) }

func (d *dumper) OnXmlDeclaration(version, encoding, standalone []uint16, line, column int) error {
	fmt.Fprintf(d.w, "%s<?xml version=%q encoding=%q standalone=%q?>\n",
		d.indent(), u16(version), u16(encoding), u16(standalone))
	return nil
}

func (d *dumper) OnBeginTag(name []uint16, line, column int) error {
	fmt.Fprintf(d.w, "%s%s\n", d.indent(), d.tagColor.Sprintf("<%s>", u16(name)))
	d.depth++
	return nil
}

func (d *dumper) OnAttribute(name, value []uint16, nameLine, nameColumn, valueLine, valueColumn int) error {
	fmt.Fprintf(d.w, "%s%s\n", d.indent(), d.attrColor.Sprintf("%s=%q", u16(name), u16(value)))
	return nil
}

func (d *dumper) OnEndTagEmpty() error {
	d.depth--
	fmt.Fprintf(d.w, "%s%s\n", d.indent(), d.tagColor.Sprint("</>"))
	return nil
}

func (d *dumper) OnEndTag(name []uint16, line, column int) error {
	d.depth--
	fmt.Fprintf(d.w, "%s%s\n", d.indent(), d.tagColor.Sprintf("</%s>", u16(name)))
	return nil
}

func (d *dumper) OnText(text []uint16, line, column int) error {
	fmt.Fprintf(d.w, "%s%s\n", d.indent(), d.textColor.Sprintf("%q", u16(text)))
	return nil
}

func (d *dumper) OnComment(body []uint16, line, column int) error {
	fmt.Fprintf(d.w, "%s<!--%s-->\n", d.indent(), u16(body))
	return nil
}

func (d *dumper) OnCData(body []uint16, line, column int) error {
	fmt.Fprintf(d.w, "%s<![CDATA[%s]]>\n", d.indent(), u16(body))
	return nil
}

func (d *dumper) OnError(message string, line, column int) error {
	fmt.Fprintf(d.w, "%s%s\n", d.indent(), d.errColor.Sprintf("ERROR: %s (line %d, column %d)", message, line+1, column+1))
	return &sax.Error{Message: message, Line: line, Column: column}
}
