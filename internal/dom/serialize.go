package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// DefaultVoidTags are the void elements named in the output contract:
// they take no children and serialize self-closed.
var DefaultVoidTags = map[string]bool{
	"img": true, "br": true, "hr": true, "input": true, "meta": true, "link": true,
}

// Serialize renders n and its descendants to the engine's stable output
// form: lowercase tags (already guaranteed by the parser), attributes
// in source order, HTML-escaped text and attribute values, and void
// elements self-closed. This is distinct from Render, which defers to
// golang.org/x/net/html's own (non-self-closing) convention and is
// used only for internal round-trip checks.
func Serialize(n *html.Node) string {
	return SerializeWithVoidTags(n, DefaultVoidTags)
}

// SerializeWithVoidTags is Serialize parameterized on the void-tag set,
// for callers running with a non-default config.Config.
func SerializeWithVoidTags(n *html.Node, voidTags map[string]bool) string {
	var b strings.Builder
	serializeNode(&b, n, voidTags)
	return b.String()
}

// SerializeNodes concatenates the Serialize output of every node in ns,
// in order — used for a sibling-group item spanning more than one
// element (§4.4b).
func SerializeNodes(ns []*html.Node, voidTags map[string]bool) string {
	var b strings.Builder
	for _, n := range ns {
		serializeNode(&b, n, voidTags)
	}
	return b.String()
}

func serializeNode(b *strings.Builder, n *html.Node, voidTags map[string]bool) {
	if n == nil {
		return
	}
	switch n.Type {
	case html.DocumentNode, html.DocumentFragmentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			serializeNode(b, c, voidTags)
		}
	case html.ElementNode:
		b.WriteByte('<')
		b.WriteString(n.Data)
		for _, a := range n.Attr {
			b.WriteByte(' ')
			b.WriteString(a.Key)
			b.WriteString(`="`)
			b.WriteString(escapeAttrValue(a.Val))
			b.WriteByte('"')
		}
		if voidTags[n.Data] {
			b.WriteString("/>")
			return
		}
		b.WriteByte('>')
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			serializeNode(b, c, voidTags)
		}
		b.WriteString("</")
		b.WriteString(n.Data)
		b.WriteByte('>')
	case html.TextNode:
		b.WriteString(escapeText(n.Data))
	default:
		// Comments and doctypes are dropped by the Cleaner; if one
		// slips through, serialize it as nothing rather than leak it.
	}
}

func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

func escapeAttrValue(s string) string {
	s = escapeText(s)
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return s
}
