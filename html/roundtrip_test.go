package html

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/chrisuehlinger/tagtree/dom"
)

// shape is a comparable projection of a node tree.
type shape struct {
	Type        dom.NodeType
	Name        string
	Attrs       []string
	Classes     []string
	SelfClosing bool
	Data        string
	Children    []shape
}

func shapeOf(nodes []*dom.Node) []shape {
	var shapes []shape
	for _, n := range nodes {
		s := shape{Type: n.NodeType(), Name: n.NodeName(), Data: n.NodeValue()}
		if el := n.AsElement(); el != nil {
			attrs := el.Attributes()
			for i := 0; i < attrs.Length(); i++ {
				a := attrs.Item(i)
				s.Attrs = append(s.Attrs, fmt.Sprintf("%s=%q bare=%t", a.Name(), a.Value(), a.Bare()))
			}
			s.Classes = el.ClassList().Values()
			s.SelfClosing = el.SelfClosing()
			s.Children = shapeOf(el.Children())
		}
		shapes = append(shapes, s)
	}
	return shapes
}

// treeGen builds random well-formed trees.
type treeGen struct {
	rnd      *rand.Rand
	elements int
	texts    int
	comments int
}

var (
	genTags   = []string{"div", "p", "span", "i", "b", "ul", "li", "Section"}
	genAttrs  = []string{"id", "href", "data-x", "title", "hidden"}
	genWords  = []string{"alpha", "beta", "gamma", "delta", "x", "y z", `it's "x"`, `'"`, `a"b'c`}
	genLetter = "abcdefghijklmnopqrstuvwxyz "
)

func (g *treeGen) word() string {
	return genWords[g.rnd.Intn(len(genWords))]
}

func (g *treeGen) text() string {
	n := 1 + g.rnd.Intn(12)
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte(genLetter[g.rnd.Intn(len(genLetter))])
	}
	return sb.String()
}

func (g *treeGen) element(depth int) *dom.Element {
	g.elements++
	el := dom.DefaultFactory().CreateElement(genTags[g.rnd.Intn(len(genTags))])
	for _, name := range genAttrs {
		switch g.rnd.Intn(4) {
		case 0:
			el.SetAttribute(name, g.word())
		case 1:
			if name == "hidden" {
				el.SetBareAttribute(name)
			}
		}
	}
	if g.rnd.Intn(3) == 0 {
		_ = el.ClassList().Add(strings.Fields(g.word())...)
		_ = el.ClassList().Add("c" + g.word()[:1])
	}

	if depth > 3 || g.rnd.Intn(5) == 0 {
		_ = el.SetSelfClosing(true)
		return el
	}

	lastText := false
	for i := g.rnd.Intn(4); i > 0; i-- {
		switch k := g.rnd.Intn(3); {
		case k == 0 && !lastText:
			g.texts++
			_ = el.AppendChild(dom.NewText(g.text()).AsNode())
			lastText = true
		case k == 1:
			g.comments++
			_ = el.AppendChild(dom.NewComment(g.word()).AsNode())
			lastText = false
		default:
			_ = el.AppendChild(g.element(depth + 1).AsNode())
			lastText = false
		}
	}
	return el
}

func countNodes(nodes []*dom.Node) int {
	count := len(nodes)
	for _, n := range nodes {
		count += countNodes(n.ChildNodes())
	}
	return count
}

func TestRoundTrip_RandomTrees(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		g := &treeGen{rnd: rand.New(rand.NewSource(seed))}
		var tree []*dom.Node
		for i := 1 + g.rnd.Intn(3); i > 0; i-- {
			tree = append(tree, g.element(0).AsNode())
		}

		markup := dom.Render(tree...)
		parsed, err := Parse(markup)
		require.NoError(t, err, "seed %d: %s", seed, markup)

		if diff := cmp.Diff(shapeOf(tree), shapeOf(parsed)); diff != "" {
			t.Fatalf("seed %d: tree mismatch (-want +got):\n%s\nmarkup: %s", seed, diff, markup)
		}
		require.Equal(t, g.elements+g.texts+g.comments, countNodes(parsed), "seed %d", seed)

		// Parsing rendered output is idempotent.
		require.Equal(t, markup, dom.Render(parsed...), "seed %d", seed)
	}
}

func TestRoundTrip_Document(t *testing.T) {
	markup := `<html lang="en"><head><title>Test</title><link rel="stylesheet" href="/a.css" /></head>` +
		`<body class="page"><!-- nav --><nav><a href="/" data-page="home">Home</a></nav>` +
		`<main><p>Some <i>styled</i> and <b>bold</b> text.</p><input type="checkbox" checked /></main></body></html>`

	node, err := ParseOne(markup)
	require.NoError(t, err)
	require.Equal(t, markup, dom.Render(node))

	again, err := ParseOne(dom.Render(node))
	require.NoError(t, err)
	if diff := cmp.Diff(shapeOf([]*dom.Node{node}), shapeOf([]*dom.Node{again})); diff != "" {
		t.Fatalf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTrip_MixedQuotes(t *testing.T) {
	tests := []struct {
		markup string
		value  string
	}{
		{`<a x="'"'"'>y</a>`, `'"`},
		{`<a x='"'"'">y</a>`, `"'`},
		{`<a x="c"d'e'>y</a>`, `cde`},
		{`<a x="it's "'"quoted"'>y</a>`, `it's "quoted"`},
	}
	for _, tt := range tests {
		node, err := ParseOne(tt.markup)
		require.NoError(t, err, tt.markup)
		require.Equal(t, tt.value, node.AsElement().GetAttribute("x"), tt.markup)

		again, err := ParseOne(dom.Render(node))
		require.NoError(t, err, dom.Render(node))
		require.Equal(t, tt.value, again.AsElement().GetAttribute("x"), dom.Render(node))
		require.Equal(t, dom.Render(node), dom.Render(again))
	}
}

func TestRoundTrip_Pretty(t *testing.T) {
	node, err := ParseOne(`<ul><li>One</li><li>Two</li></ul>`)
	require.NoError(t, err)

	pretty := dom.RenderWith(dom.RenderOptions{Pretty: true}, node)
	require.Equal(t, "<ul>\n    <li>One</li>\n    <li>Two</li>\n</ul>", pretty)

	reparsed, err := ParseOne(pretty)
	require.NoError(t, err)
	items := reparsed.AsElement().FindAllByTagName("li")
	require.Len(t, items, 2)
	require.Equal(t, "Two", items[1].TextContent())
}
