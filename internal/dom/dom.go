// Package dom wraps golang.org/x/net/html with the tree-shaped helpers
// every downstream package (cleaner, mainlocator, siblings, children)
// walks: leniently parsing a byte string into a *html.Node tree,
// serializing a subtree back to HTML, and enumerating the direct
// element children of a node.
//
// Responsibilities
//   - Parse untrusted input without ever panicking
//   - Serialize a node (and its descendants) back to HTML
//   - Provide shared traversal primitives: element children, tag
//     patterns, common-prefix length
package dom

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// Parse leniently parses an HTML document string into a node tree.
// On input that cannot be tokenized at all it returns an empty,
// childless document node rather than an error — the Tokenizer/Tree
// Builder contract never fails a caller.
func Parse(rawHTML string) *html.Node {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil || doc == nil {
		return &html.Node{Type: html.DocumentNode}
	}
	return doc
}

// Render serializes a node and its descendants back to an HTML string.
// A nil node renders as the empty string.
func Render(n *html.Node) string {
	if n == nil {
		return ""
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}

// RenderChildren concatenates the rendered HTML of every node in ns, in
// order. It is the Render counterpart of SerializeNodes; engine output
// for multi-element sibling items (§4.4b) goes through SerializeNodes.
func RenderChildren(ns []*html.Node) string {
	var buf bytes.Buffer
	for _, n := range ns {
		buf.WriteString(Render(n))
	}
	return buf.String()
}

// ElementChildren returns the direct element children of n, in
// document order. Text, comment, and doctype children are skipped.
func ElementChildren(n *html.Node) []*html.Node {
	if n == nil {
		return nil
	}
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// ChildPattern returns the ordered tag names of n's direct element
// children — n's "pattern" as defined in the data model. An element
// with no element children has a pattern of length zero.
func ChildPattern(n *html.Node) []string {
	children := ElementChildren(n)
	pattern := make([]string, len(children))
	for i, c := range children {
		pattern[i] = c.Data
	}
	return pattern
}

// CommonPrefixLen returns the length of the longest common leading
// subsequence shared by every pattern in patterns. An empty patterns
// slice has a common prefix of length zero.
func CommonPrefixLen(patterns [][]string) int {
	if len(patterns) == 0 {
		return 0
	}
	first := patterns[0]
	for i := range first {
		for _, p := range patterns[1:] {
			if i >= len(p) || p[i] != first[i] {
				return i
			}
		}
	}
	return len(first)
}

// Walk visits n and every descendant, depth-first, pre-order.
func Walk(n *html.Node, visit func(*html.Node)) {
	if n == nil {
		return
	}
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		Walk(c, visit)
	}
}

// WalkElements visits every ElementNode in n's subtree, depth-first,
// pre-order.
func WalkElements(n *html.Node, visit func(*html.Node)) {
	Walk(n, func(node *html.Node) {
		if node.Type == html.ElementNode {
			visit(node)
		}
	})
}

// TextLen returns the number of bytes of text content within n's
// subtree, each text node trimmed of leading and trailing whitespace.
func TextLen(n *html.Node) int {
	total := 0
	Walk(n, func(node *html.Node) {
		if node.Type == html.TextNode {
			total += len(strings.TrimSpace(node.Data))
		}
	})
	return total
}

// HasAncestor reports whether n has an ancestor element (not including
// n itself) with the given tag name.
func HasAncestor(n *html.Node, tag string) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && p.Data == tag {
			return true
		}
	}
	return false
}

// DescendantElementCount counts every ElementNode in n's subtree,
// excluding n itself.
func DescendantElementCount(n *html.Node) int {
	count := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			count++
		}
		count += DescendantElementCount(c)
	}
	return count
}
