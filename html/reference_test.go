package html

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	nethtml "golang.org/x/net/html"

	"github.com/chrisuehlinger/tagtree/dom"
)

type startTag struct {
	Name  string
	Attrs [][2]string
}

// referenceStartTags tokenizes src with golang.org/x/net/html and returns
// the start tags in document order, class attributes excluded.
func referenceStartTags(t *testing.T, src string) []startTag {
	t.Helper()
	var tags []startTag
	z := nethtml.NewTokenizer(strings.NewReader(src))
	for {
		switch z.Next() {
		case nethtml.ErrorToken:
			return tags
		case nethtml.StartTagToken, nethtml.SelfClosingTagToken:
			tok := z.Token()
			tag := startTag{Name: tok.Data}
			for _, a := range tok.Attr {
				if a.Key == "class" {
					continue
				}
				tag.Attrs = append(tag.Attrs, [2]string{a.Key, a.Val})
			}
			tags = append(tags, tag)
		}
	}
}

func TestParse_AgreesWithReferenceTokenizer(t *testing.T) {
	inputs := []string{
		`<div id="main" class="container" data-value="123">content</div>`,
		`<ul><li class="a">One</li><li title='two'>Two</li></ul>`,
		`<!DOCTYPE html><html><head><title>T</title></head><body><p>Hello, <b>World</b>!</p></body></html>`,
		`<form method="POST" action="/submit"><input type="text" name="q" /><button>Go</button></form>`,
		`<p>Some <i>styled</i> text<!-- c --><br/></p>`,
		`<a href=/path title="x y">link</a>`,
	}

	for _, src := range inputs {
		t.Run(src, func(t *testing.T) {
			nodes, err := Parse(src)
			require.NoError(t, err)

			var got []startTag
			for _, el := range nodes.FindAll(func(*dom.Element) bool { return true }) {
				tag := startTag{Name: el.LocalName()}
				attrs := el.Attributes()
				for i := 0; i < attrs.Length(); i++ {
					a := attrs.Item(i)
					tag.Attrs = append(tag.Attrs, [2]string{a.Name(), a.Value()})
				}
				got = append(got, tag)
			}

			require.Equal(t, referenceStartTags(t, src), got)
		})
	}
}
