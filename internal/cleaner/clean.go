/*
Responsibilities
- Strip every attribute not on the configured allow-list
- Recursively remove junk elements (script, style, nav, header, ...)
- Remove comments and doctypes
- Collapse runs of whitespace in text nodes

This stage never fails on malformed input: an empty or unparseable
document cleans to an empty document (spec §7), it never panics or
returns an error to the caller. HTMLCleaner.Clean keeps the
ClassifiedError return for symmetry with the rest of the engine's
packages; it always returns a nil error.
*/
package cleaner

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/htmlshape/htmlshape/internal/config"
	"github.com/htmlshape/htmlshape/internal/metadata"
	"github.com/htmlshape/htmlshape/pkg/failure"
	"golang.org/x/net/html"
)

type HTMLCleaner struct {
	cfg          config.Config
	metadataSink metadata.MetadataSink
}

func NewHTMLCleaner(cfg config.Config, metadataSink metadata.MetadataSink) HTMLCleaner {
	return HTMLCleaner{
		cfg:          cfg,
		metadataSink: metadataSink,
	}
}

// Clean is the exported entry point. It never mutates inputNode: the
// cleaned result is built on a cloned tree.
func (c *HTMLCleaner) Clean(inputNode *html.Node) (CleanedDoc, failure.ClassifiedError) {
	if !isParseable(inputNode) {
		err := &CleaningError{
			Message: "input node is nil or has no content",
			Cause:   ErrCauseEmptyInput,
		}
		c.metadataSink.RecordError(
			time.Now(),
			"cleaner",
			"HTMLCleaner.Clean",
			mapCleaningErrorToMetadataCause(err.Cause),
			err.Error(),
			[]metadata.Attribute{metadata.NewAttr(metadata.AttrOperation, "clean")},
		)
		return CleanedDoc{root: emptyDocument()}, nil
	}

	root := Clean(inputNode, c.cfg)
	return CleanedDoc{root: root}, nil
}

// Clean is the pure, stateless transform: strip junk elements, strip
// disallowed attributes, normalize whitespace. It clones the input so
// callers may reuse the source tree afterward.
func Clean(n *html.Node, cfg config.Config) *html.Node {
	if !isParseable(n) {
		return emptyDocument()
	}

	docQuery := goquery.NewDocumentFromNode(n)
	cloned := goquery.CloneDocument(docQuery)
	root := cloned.Get(0)

	removeJunk(root, cfg.JunkTagSet())
	stripAttributes(root, cfg.AllowedAttributeSet())
	collapseWhitespace(root)

	return root
}

// isParseable reports whether n holds anything to clean: non-whitespace
// text, or an element other than the html/head/body scaffold the parser
// synthesizes for every input, including "".
func isParseable(n *html.Node) bool {
	if n == nil || n.FirstChild == nil {
		return false
	}
	var hasContent func(*html.Node) bool
	hasContent = func(p *html.Node) bool {
		for c := p.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode && strings.TrimSpace(c.Data) != "" {
				return true
			}
			if c.Type == html.ElementNode && c.Data != "html" && c.Data != "head" && c.Data != "body" {
				return true
			}
			if hasContent(c) {
				return true
			}
		}
		return false
	}
	return hasContent(n)
}

func emptyDocument() *html.Node {
	return &html.Node{Type: html.DocumentNode}
}

// removeJunk recursively drops elements whose tag is in junkTags, and
// every comment and doctype node. Traversal collects children first
// since removal mutates the sibling list.
func removeJunk(n *html.Node, junkTags map[string]bool) {
	if n == nil {
		return
	}

	var children []*html.Node
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		children = append(children, child)
	}

	for _, child := range children {
		switch child.Type {
		case html.CommentNode, html.DoctypeNode:
			n.RemoveChild(child)
		case html.ElementNode:
			if junkTags[child.Data] {
				n.RemoveChild(child)
				continue
			}
			removeJunk(child, junkTags)
		default:
			removeJunk(child, junkTags)
		}
	}
}

// stripAttributes drops every attribute not on allowed, on every
// element in the subtree. Attribute order among the survivors is
// preserved (spec §6).
func stripAttributes(n *html.Node, allowed map[string]bool) {
	if n == nil {
		return
	}
	if n.Type == html.ElementNode {
		kept := n.Attr[:0]
		for _, a := range n.Attr {
			if allowed[a.Key] {
				kept = append(kept, a)
			}
		}
		n.Attr = kept
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		stripAttributes(child, allowed)
	}
}

// collapseWhitespace folds runs of whitespace in text nodes to a
// single space, except inside pre and textarea where whitespace is
// significant. Afterward, trims the single leading/trailing space left
// over at each element's boundary — §4.2's "trim leading/trailing
// whitespace at block boundaries" — so `<p> text </p>` cleans to
// `<p>text</p>` rather than retaining the edge spaces.
func collapseWhitespace(n *html.Node) {
	if n == nil {
		return
	}
	if n.Type == html.ElementNode && (n.Data == "pre" || n.Data == "textarea") {
		return
	}
	if n.Type == html.TextNode {
		n.Data = collapseSpaces(n.Data)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collapseWhitespace(child)
	}
	if n.Type == html.ElementNode {
		trimBoundaries(n)
	}
}

func trimBoundaries(n *html.Node) {
	if first := n.FirstChild; first != nil && first.Type == html.TextNode {
		first.Data = strings.TrimLeft(first.Data, " ")
	}
	if last := n.LastChild; last != nil && last.Type == html.TextNode {
		last.Data = strings.TrimRight(last.Data, " ")
	}
}

func collapseSpaces(s string) string {
	var b strings.Builder
	lastWasSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' {
			if !lastWasSpace {
				b.WriteByte(' ')
			}
			lastWasSpace = true
			continue
		}
		b.WriteRune(r)
		lastWasSpace = false
	}
	return b.String()
}
