package dom_test

import (
	"testing"

	"github.com/htmlshape/htmlshape/internal/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestParse_NeverFails(t *testing.T) {
	cases := []string{
		"",
		"<div>unterminated",
		"not html at all, just text",
		"\x00\x01\x02binary junk",
		"<p>hello</p><p>world</p>",
	}
	for _, in := range cases {
		doc := dom.Parse(in)
		require.NotNil(t, doc)
	}
}

func TestElementChildrenSkipsTextAndComments(t *testing.T) {
	doc := dom.Parse(`<ul>text<li>a</li><!-- c --><li>b</li></ul>`)
	var ul *html.Node
	dom.WalkElements(doc, func(n *html.Node) {
		if n.Data == "ul" {
			ul = n
		}
	})
	require.NotNil(t, ul)
	children := dom.ElementChildren(ul)
	assert.Len(t, children, 2)
	assert.Equal(t, "li", children[0].Data)
	assert.Equal(t, "li", children[1].Data)
}

func TestChildPattern(t *testing.T) {
	doc := dom.Parse(`<div><h2>a</h2><p>b</p><p>c</p></div>`)
	var div *html.Node
	dom.WalkElements(doc, func(n *html.Node) {
		if n.Data == "div" {
			div = n
		}
	})
	require.NotNil(t, div)
	assert.Equal(t, []string{"h2", "p", "p"}, dom.ChildPattern(div))
}

func TestCommonPrefixLen(t *testing.T) {
	tests := []struct {
		name     string
		patterns [][]string
		want     int
	}{
		{"empty", nil, 0},
		{"identical", [][]string{{"div", "p"}, {"div", "p"}}, 2},
		{"prefix tolerance", [][]string{
			{"div", "div", "div"},
			{"div", "div", "div"},
			{"div", "div", "div", "div"},
		}, 3},
		{"no overlap", [][]string{{"div"}, {"span"}}, 0},
		{"single pattern", [][]string{{"a", "b", "c"}}, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, dom.CommonPrefixLen(tc.patterns))
		})
	}
}

func TestHasAncestor(t *testing.T) {
	doc := dom.Parse(`<article><div><p id="target">x</p></div></article><p id="outside">y</p>`)
	var inside, outside *html.Node
	dom.WalkElements(doc, func(n *html.Node) {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == "target" {
				inside = n
			}
			if a.Key == "id" && a.Val == "outside" {
				outside = n
			}
		}
	})
	require.NotNil(t, inside)
	require.NotNil(t, outside)
	assert.True(t, dom.HasAncestor(inside, "article"))
	assert.False(t, dom.HasAncestor(outside, "article"))
}

func TestRenderRoundTrip(t *testing.T) {
	doc := dom.Parse(`<p>hello &amp; world</p>`)
	var p *html.Node
	dom.WalkElements(doc, func(n *html.Node) {
		if n.Data == "p" {
			p = n
		}
	})
	require.NotNil(t, p)
	out := dom.Render(p)
	assert.Contains(t, out, "<p>")
	assert.Contains(t, out, "hello &amp; world")
}
