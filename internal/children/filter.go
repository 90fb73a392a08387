/*
Children Filter (spec §4.5). Runs the Sibling Detector, then retains
only items whose cleaned HTML contains at least one <a> with a
non-empty href, preserving order. Host canonicalization runs purely
for observability — it never affects which items qualify.
*/
package children

import (
	"net/url"
	"time"

	"github.com/htmlshape/htmlshape/internal/cleaner"
	"github.com/htmlshape/htmlshape/internal/config"
	"github.com/htmlshape/htmlshape/internal/dom"
	"github.com/htmlshape/htmlshape/internal/metadata"
	"github.com/htmlshape/htmlshape/internal/siblings"
	"github.com/htmlshape/htmlshape/pkg/failure"
	"github.com/htmlshape/htmlshape/pkg/urlutil"
	"golang.org/x/net/html"
)

type Filter struct {
	cfg          config.Config
	detector     siblings.Detector
	metadataSink metadata.MetadataSink
}

func NewFilter(cfg config.Config, metadataSink metadata.MetadataSink) Filter {
	return Filter{
		cfg:          cfg,
		detector:     siblings.NewDetector(cfg, metadataSink),
		metadataSink: metadataSink,
	}
}

// Apply cleans doc, runs sibling detection on the cleaned tree (§4.4
// Phase 1 walks the cleaned DOM, so junk elements like <nav>/<form>
// never participate in candidate enumeration), and returns the
// qualifying items, cleaned and serialized.
func (f *Filter) Apply(doc *html.Node) (Result, failure.ClassifiedError) {
	cleaned := cleaner.Clean(doc, f.cfg)
	group, ok, err := f.detector.Detect(cleaned)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return Result{}, nil
	}

	var qualified []string
	for _, item := range group.Items {
		if !hasOutboundLink(item) {
			continue
		}
		f.recordHosts(item)

		cleanedItem := cleanItem(item, f.cfg)
		qualified = append(qualified, dom.SerializeNodes(cleanedItem, f.cfg.VoidTagSet()))
	}

	if len(qualified) == 0 {
		f.metadataSink.RecordError(
			time.Now(),
			"children",
			"Filter.Apply",
			mapFilterErrorToMetadataCause(ErrCauseNoneQualified),
			"no sibling item contained a qualifying outbound link",
			[]metadata.Attribute{metadata.NewAttr(metadata.AttrOperation, "children")},
		)
		return Result{}, nil
	}

	joined := ""
	for _, s := range qualified {
		joined += s
	}

	return Result{Items: qualified, Joined: joined}, nil
}

// cleanItem re-cleans an item's nodes independently of the document
// they came from, per the facade contract that `siblings` (and by
// extension `children`) applies clean to each emitted fragment.
func cleanItem(item []*html.Node, cfg config.Config) []*html.Node {
	wrapper := &html.Node{Type: html.ElementNode, Data: "div"}
	for _, n := range item {
		clone := cloneSubtree(n)
		wrapper.AppendChild(clone)
	}
	cleaned := cleaner.Clean(wrapper, cfg)
	return dom.ElementChildren(cleaned)
}

func hasOutboundLink(item []*html.Node) bool {
	found := false
	for _, n := range item {
		dom.WalkElements(n, func(el *html.Node) {
			if found || el.Data != "a" {
				return
			}
			for _, a := range el.Attr {
				if a.Key == "href" && a.Val != "" {
					found = true
					return
				}
			}
		})
	}
	return found
}

// recordHosts canonicalizes and logs the host of every outbound link
// in item, for observability only — qualification above never reads
// this output.
func (f *Filter) recordHosts(item []*html.Node) {
	for _, n := range item {
		dom.WalkElements(n, func(el *html.Node) {
			if el.Data != "a" {
				return
			}
			for _, a := range el.Attr {
				if a.Key != "href" || a.Val == "" {
					continue
				}
				parsed, err := url.Parse(a.Val)
				if err != nil || parsed.Host == "" {
					return
				}
				canonical := urlutil.Canonicalize(*parsed)
				f.metadataSink.RecordError(
					time.Now(),
					"children",
					"Filter.Apply",
					metadata.CauseUnknown,
					"observed outbound link host",
					[]metadata.Attribute{metadata.NewAttr(metadata.AttrHost, canonical.Host)},
				)
			}
		})
	}
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
