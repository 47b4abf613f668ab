package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// RenderOptions controls how a tree is written back out as markup.
type RenderOptions struct {
	// Pretty puts every element and comment on its own line, indented by
	// nesting depth. Elements whose children are all text stay on one line.
	Pretty bool
	// Indent is the per-level indentation used when Pretty is set.
	// Defaults to four spaces.
	Indent string
	// EscapeText escapes '<', '>', '&', '\'' and '"' in text and attribute
	// values. The parser does not decode entities, so escaped output does
	// not parse back to the same text.
	EscapeText bool
}

const defaultIndent = "    "

// Render writes the nodes out as compact markup. Parsing the result yields
// the same tree again.
func Render(nodes ...*Node) string {
	return RenderWith(RenderOptions{}, nodes...)
}

// RenderWith writes the nodes out as markup using opts.
func RenderWith(opts RenderOptions, nodes ...*Node) string {
	if opts.Indent == "" {
		opts.Indent = defaultIndent
	}
	r := &renderer{opts: opts}
	for i, n := range nodes {
		if opts.Pretty && i > 0 {
			r.sb.WriteByte('\n')
		}
		r.node(n, 0)
	}
	return r.sb.String()
}

// String renders the node as compact markup.
func (n *Node) String() string {
	return Render(n)
}

// String renders the element as compact markup.
func (e *Element) String() string {
	return Render(e.AsNode())
}

type renderer struct {
	opts RenderOptions
	sb   strings.Builder
}

func (r *renderer) node(n *Node, depth int) {
	switch n.nodeType {
	case TextNode:
		r.text(n.nodeValue)
	case CommentNode:
		r.sb.WriteString("<!-- ")
		r.sb.WriteString(n.nodeValue)
		r.sb.WriteString(" -->")
	case ElementNode:
		r.element((*Element)(n), depth)
	}
}

func (r *renderer) text(s string) {
	if r.opts.EscapeText {
		s = html.EscapeString(s)
	}
	r.sb.WriteString(s)
}

func (r *renderer) element(e *Element, depth int) {
	r.sb.WriteByte('<')
	r.sb.WriteString(e.TagName())
	r.attributes(e)

	if e.SelfClosing() {
		r.sb.WriteString(" />")
		return
	}
	r.sb.WriteByte('>')

	children := e.AsNode().children
	if r.opts.Pretty && !textOnly(children) {
		for _, c := range children {
			r.newline(depth + 1)
			r.node(c, depth+1)
		}
		r.newline(depth)
	} else {
		for _, c := range children {
			r.node(c, depth+1)
		}
	}

	r.sb.WriteString("</")
	r.sb.WriteString(e.TagName())
	r.sb.WriteByte('>')
}

func (r *renderer) attributes(e *Element) {
	attrs := e.Attributes()
	for i := 0; i < attrs.Length(); i++ {
		attr := attrs.Item(i)
		r.sb.WriteByte(' ')
		r.sb.WriteString(attr.name)
		if attr.bare {
			continue
		}
		r.sb.WriteByte('=')
		r.quoted(attr.value)
	}
	if classes := e.ClassList(); classes.Length() > 0 {
		r.sb.WriteString(" class=")
		r.quoted(classes.Value())
	}
}

// quoted writes a quoted attribute value. The parser does no escape
// processing inside quotes and joins adjacent quoted runs into one value, so
// a value holding both quote characters is split into runs that each avoid
// one of them.
func (r *renderer) quoted(value string) {
	if r.opts.EscapeText {
		r.run(html.EscapeString(value), '"')
		return
	}
	for {
		dq := strings.IndexByte(value, '"')
		sq := strings.IndexByte(value, '\'')
		switch {
		case dq < 0:
			r.run(value, '"')
			return
		case sq < 0:
			r.run(value, '\'')
			return
		case dq > sq:
			r.run(value[:dq], '"')
			value = value[dq:]
		default:
			r.run(value[:sq], '\'')
			value = value[sq:]
		}
	}
}

func (r *renderer) run(value string, quote byte) {
	r.sb.WriteByte(quote)
	r.sb.WriteString(value)
	r.sb.WriteByte(quote)
}

func (r *renderer) newline(depth int) {
	r.sb.WriteByte('\n')
	r.sb.WriteString(strings.Repeat(r.opts.Indent, depth))
}

func textOnly(children []*Node) bool {
	for _, c := range children {
		if c.nodeType != TextNode {
			return false
		}
	}
	return true
}
