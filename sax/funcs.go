package sax

// Func-typed fields for each Handler method, for use with Funcs.
type (
	XmlDeclarationFunc func(version, encoding, standalone []uint16, line, column int) error
	BeginTagFunc       func(name []uint16, line, column int) error
	AttributeFunc      func(name, value []uint16, nameLine, nameColumn, valueLine, valueColumn int) error
	EndTagEmptyFunc    func() error
	EndTagFunc         func(name []uint16, line, column int) error
	TextFunc           func(text []uint16, line, column int) error
	CommentFunc        func(body []uint16, line, column int) error
	CDataFunc          func(body []uint16, line, column int) error
	ErrorFunc          func(message string, line, column int) error
)

// Funcs adapts a set of plain functions to Handler, for callers that
// want to supply event callbacks as closures (e.g. chosen at runtime)
// rather than define a Handler type. The parse entry points call any
// handler, Funcs included, through the Handler interface; they are not
// specialized on a concrete handler type. Every field is optional; an
// unset field falls back to NopHandler's behaviour for that event.
type Funcs struct {
	XmlDeclarationHandler XmlDeclarationFunc
	BeginTagHandler       BeginTagFunc
	AttributeHandler      AttributeFunc
	EndTagEmptyHandler    EndTagEmptyFunc
	EndTagHandler         EndTagFunc
	TextHandler           TextFunc
	CommentHandler        CommentFunc
	CDataHandler          CDataFunc
	ErrorHandler          ErrorFunc
}

var _ Handler = Funcs{}

func (f Funcs) OnXmlDeclaration(version, encoding, standalone []uint16, line, column int) error {
	if h := f.XmlDeclarationHandler; h != nil {
		return h(version, encoding, standalone, line, column)
	}
	return NopHandler{}.OnXmlDeclaration(version, encoding, standalone, line, column)
}

func (f Funcs) OnBeginTag(name []uint16, line, column int) error {
	if h := f.BeginTagHandler; h != nil {
		return h(name, line, column)
	}
	return NopHandler{}.OnBeginTag(name, line, column)
}

func (f Funcs) OnAttribute(name, value []uint16, nameLine, nameColumn, valueLine, valueColumn int) error {
	if h := f.AttributeHandler; h != nil {
		return h(name, value, nameLine, nameColumn, valueLine, valueColumn)
	}
	return NopHandler{}.OnAttribute(name, value, nameLine, nameColumn, valueLine, valueColumn)
}

func (f Funcs) OnEndTagEmpty() error {
	if h := f.EndTagEmptyHandler; h != nil {
		return h()
	}
	return NopHandler{}.OnEndTagEmpty()
}

func (f Funcs) OnEndTag(name []uint16, line, column int) error {
	if h := f.EndTagHandler; h != nil {
		return h(name, line, column)
	}
	return NopHandler{}.OnEndTag(name, line, column)
}

func (f Funcs) OnText(text []uint16, line, column int) error {
	if h := f.TextHandler; h != nil {
		return h(text, line, column)
	}
	return NopHandler{}.OnText(text, line, column)
}

func (f Funcs) OnComment(body []uint16, line, column int) error {
	if h := f.CommentHandler; h != nil {
		return h(body, line, column)
	}
	return NopHandler{}.OnComment(body, line, column)
}

func (f Funcs) OnCData(body []uint16, line, column int) error {
	if h := f.CDataHandler; h != nil {
		return h(body, line, column)
	}
	return NopHandler{}.OnCData(body, line, column)
}

func (f Funcs) OnError(message string, line, column int) error {
	if h := f.ErrorHandler; h != nil {
		return h(message, line, column)
	}
	return NopHandler{}.OnError(message, line, column)
}
