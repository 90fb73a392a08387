/*
Responsibilities
- Find the single node that is the main body of a document, using a
  fixed, non-scoring selection order:
    1. the first <main> element in document order
    2. else the <article> with the most descendant elements
    3. else the div/section/body with the most text bytes, excluding
       text inside nav/header/footer/aside subtrees and inside any
       junk element the Cleaner removes (script, style, ...)
    4. else the cleaned <body>

Unlike a Readability-style weighted-scoring extractor, nothing here is
probabilistic: a given document always resolves to the same node
through the same tier.
*/
package mainlocator

import (
	"time"

	"github.com/htmlshape/htmlshape/internal/cleaner"
	"github.com/htmlshape/htmlshape/internal/config"
	"github.com/htmlshape/htmlshape/internal/dom"
	"github.com/htmlshape/htmlshape/internal/metadata"
	"github.com/htmlshape/htmlshape/pkg/failure"
	"golang.org/x/net/html"
)

// Locator defines the interface for main-content location.
type Locator interface {
	Locate(doc *html.Node) (LocateResult, failure.ClassifiedError)
}

type DomLocator struct {
	cfg          config.Config
	metadataSink metadata.MetadataSink
}

func NewDomLocator(cfg config.Config, metadataSink metadata.MetadataSink) DomLocator {
	return DomLocator{cfg: cfg, metadataSink: metadataSink}
}

var _ Locator = (*DomLocator)(nil)

func (d *DomLocator) Locate(doc *html.Node) (LocateResult, failure.ClassifiedError) {
	if doc == nil || doc.FirstChild == nil {
		err := &LocateError{Message: "document is nil or empty", Cause: ErrCauseEmptyInput}
		d.metadataSink.RecordError(
			time.Now(),
			"mainlocator",
			"DomLocator.Locate",
			mapLocateErrorToMetadataCause(err.Cause),
			err.Error(),
			[]metadata.Attribute{metadata.NewAttr(metadata.AttrOperation, "main")},
		)
		return LocateResult{DocumentRoot: doc, ContentNode: nil, Tier: TierCleanedBodyFallback}, nil
	}

	node, tier := Locate(doc, d.cfg)

	if tier == TierCleanedBodyFallback {
		d.metadataSink.RecordError(
			time.Now(),
			"mainlocator",
			"DomLocator.Locate",
			metadata.CauseNoMainFound,
			"fell through to cleaned body",
			[]metadata.Attribute{metadata.NewAttr(metadata.AttrOperation, "main")},
		)
	}

	return LocateResult{DocumentRoot: doc, ContentNode: node, Tier: tier}, nil
}

// Locate is the pure, stateless selection. It never mutates doc.
func Locate(doc *html.Node, cfg config.Config) (*html.Node, SelectionTier) {
	if main := firstMainElement(doc); main != nil {
		return main, TierMainElement
	}

	if article := largestArticle(doc); article != nil {
		return article, TierLargestArticle
	}

	excludeSet := cfg.NavigationalTagSet()
	for tag := range cfg.JunkTagSet() {
		excludeSet[tag] = true
	}
	candidateSet := cfg.MainCandidateTagSet()
	if candidate := bestTextByteCandidate(doc, candidateSet, excludeSet); candidate != nil {
		return candidate, TierTextByteCandidate
	}

	body := findBody(doc)
	cleaned := cleaner.Clean(body, cfg)
	return cleaned, TierCleanedBodyFallback
}

func firstMainElement(doc *html.Node) *html.Node {
	var found *html.Node
	dom.WalkElements(doc, func(n *html.Node) {
		if found == nil && n.Data == "main" {
			found = n
		}
	})
	return found
}

func largestArticle(doc *html.Node) *html.Node {
	var best *html.Node
	bestCount := -1
	dom.WalkElements(doc, func(n *html.Node) {
		if n.Data != "article" {
			return
		}
		count := dom.DescendantElementCount(n)
		if count > bestCount {
			best = n
			bestCount = count
		}
	})
	return best
}

func bestTextByteCandidate(doc *html.Node, candidateTags, navTags map[string]bool) *html.Node {
	var best *html.Node
	bestBytes := -1
	dom.WalkElements(doc, func(n *html.Node) {
		if !candidateTags[n.Data] {
			return
		}
		bytes := textLenExcluding(n, navTags)
		if bytes > bestBytes {
			best = n
			bestBytes = bytes
		}
	})
	if bestBytes <= 0 {
		return nil
	}
	return best
}

// textLenExcluding sums the text bytes in n's subtree, each text node
// trimmed of leading and trailing whitespace, skipping any descendant
// subtree rooted at a tag in excludeTags.
func textLenExcluding(n *html.Node, excludeTags map[string]bool) int {
	if n == nil {
		return 0
	}
	if n.Type == html.ElementNode && excludeTags[n.Data] {
		return 0
	}
	total := 0
	if n.Type == html.TextNode {
		total += len(trimSpaceBytes(n.Data))
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		total += textLenExcluding(child, excludeTags)
	}
	return total
}

func trimSpaceBytes(s string) string {
	start, end := 0, len(s)
	for start < end && isSpaceByte(s[start]) {
		start++
	}
	for end > start && isSpaceByte(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f'
}

func findBody(doc *html.Node) *html.Node {
	var body *html.Node
	dom.WalkElements(doc, func(n *html.Node) {
		if body == nil && n.Data == "body" {
			body = n
		}
	})
	if body != nil {
		return body
	}
	return doc
}
