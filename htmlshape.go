// Package htmlshape turns a raw HTML document into the pieces worth
// keeping: a cleaned tree, its main content, and the repeated item
// groups — sibling cards, list entries, search results — that make up
// a listing page.
//
// The four operations compose rather than duplicate work:
//
//	Main internally applies Clean to the node it selects.
//	Siblings applies Clean to every item it emits.
//	Children runs Siblings and keeps only the qualifying items.
//
// Each operation degrades to empty output on malformed or empty input
// rather than returning an error (see pkg/failure and
// internal/metadata): a caller never has to special-case a crawl that
// hit a blank page.
package htmlshape

import (
	"github.com/htmlshape/htmlshape/internal/children"
	"github.com/htmlshape/htmlshape/internal/cleaner"
	"github.com/htmlshape/htmlshape/internal/config"
	"github.com/htmlshape/htmlshape/internal/dom"
	"github.com/htmlshape/htmlshape/internal/mainlocator"
	"github.com/htmlshape/htmlshape/internal/metadata"
	"github.com/htmlshape/htmlshape/internal/siblings"
	"golang.org/x/net/html"
)

// Engine bundles the config every operation needs and the metadata
// sink, so a caller that wants a non-default config or a shared
// Recorder doesn't have to thread it through four free functions by
// hand. Of the four operations only Children reports to the sink.
type Engine struct {
	cfg          config.Config
	metadataSink metadata.MetadataSink
}

// New returns an Engine wired with cfg and sink.
func New(cfg config.Config, sink metadata.MetadataSink) Engine {
	return Engine{cfg: cfg, metadataSink: sink}
}

// Default is the package-level Engine every free function in this
// package delegates to: config.Default plus a Recorder logging through
// slog.Default().
var Default = New(config.Default, metadata.NewRecorder(nil))

// Clean parses rawHTML, removes the configured junk elements, comments
// and doctypes, strips every attribute outside the configured
// allow-list, and returns the remaining markup.
func Clean(rawHTML string) string {
	return Default.Clean(rawHTML)
}

func (e Engine) Clean(rawHTML string) string {
	doc := dom.Parse(rawHTML)
	cleaned := cleaner.Clean(doc, e.cfg)
	return dom.SerializeWithVoidTags(cleaned, e.cfg.VoidTagSet())
}

// Main parses rawHTML and returns the document's main content,
// already cleaned.
func Main(rawHTML string) string {
	return Default.Main(rawHTML)
}

func (e Engine) Main(rawHTML string) string {
	doc := dom.Parse(rawHTML)
	node, tier := mainlocator.Locate(doc, e.cfg)
	if tier == mainlocator.TierCleanedBodyFallback {
		// Locate already ran Clean to produce the fallback node.
		return dom.SerializeWithVoidTags(node, e.cfg.VoidTagSet())
	}
	cleaned := cleaner.Clean(node, e.cfg)
	return dom.SerializeWithVoidTags(cleaned, e.cfg.VoidTagSet())
}

// Siblings parses rawHTML and returns the winning sibling group's
// items, each cleaned and serialized independently, in document
// order. A document with no repeated sibling group returns nil.
func Siblings(rawHTML string) []string {
	return Default.Siblings(rawHTML)
}

func (e Engine) Siblings(rawHTML string) []string {
	doc := dom.Parse(rawHTML)
	cleaned := cleaner.Clean(doc, e.cfg)
	group, ok := siblings.Detect(cleaned, e.cfg)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(group.Items))
	for _, item := range group.Items {
		out = append(out, serializeCleanedItem(item, e.cfg))
	}
	return out
}

// Children parses rawHTML, runs Siblings, and keeps only the items
// that contain a non-empty <a href>, joined into a single HTML string
// in document order.
func Children(rawHTML string) string {
	return Default.Children(rawHTML)
}

func (e Engine) Children(rawHTML string) string {
	doc := dom.Parse(rawHTML)
	f := children.NewFilter(e.cfg, e.metadataSink)
	result, err := f.Apply(doc)
	if err != nil {
		return ""
	}
	return result.Joined
}

// serializeCleanedItem re-cleans an item's nodes in isolation from the
// document they were detected in, wrapping them in a throwaway parent
// so cleaner.Clean (which operates on a single root) has something to
// clean, then serializes the cleaned children back out.
func serializeCleanedItem(item []*html.Node, cfg config.Config) string {
	wrapper := &html.Node{Type: html.ElementNode, Data: "div"}
	for _, n := range item {
		wrapper.AppendChild(cloneSubtree(n))
	}
	cleaned := cleaner.Clean(wrapper, cfg)
	return dom.SerializeNodes(dom.ElementChildren(cleaned), cfg.VoidTagSet())
}

func cloneSubtree(n *html.Node) *html.Node {
	clone := &html.Node{
		Type:     n.Type,
		DataAtom: n.DataAtom,
		Data:     n.Data,
		Attr:     append([]html.Attribute{}, n.Attr...),
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		clone.AppendChild(cloneSubtree(c))
	}
	return clone
}
