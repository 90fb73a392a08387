/*
Phase 1 (traversal), Phase 3 (filtering), and Phase 4 (selection) of
the sibling-detection algorithm (spec §4.4). Phase 2 lives in
candidates.go.
*/
package siblings

import (
	"time"

	"github.com/htmlshape/htmlshape/internal/config"
	"github.com/htmlshape/htmlshape/internal/dom"
	"github.com/htmlshape/htmlshape/internal/metadata"
	"github.com/htmlshape/htmlshape/pkg/failure"
	"golang.org/x/net/html"
)

// Detector is the stateful wrapper exposing the ClassifiedError/
// MetadataSink conventions shared by the rest of the engine.
type Detector struct {
	cfg          config.Config
	metadataSink metadata.MetadataSink
}

func NewDetector(cfg config.Config, metadataSink metadata.MetadataSink) Detector {
	return Detector{cfg: cfg, metadataSink: metadataSink}
}

// Detect finds the winning sibling group in doc, if any.
func (d *Detector) Detect(doc *html.Node) (Group, bool, failure.ClassifiedError) {
	if doc == nil || doc.FirstChild == nil {
		err := &DetectionError{Message: "document is nil or empty", Cause: ErrCauseEmptyInput}
		d.metadataSink.RecordError(
			time.Now(),
			"siblings",
			"Detector.Detect",
			mapDetectionErrorToMetadataCause(err.Cause),
			err.Error(),
			[]metadata.Attribute{metadata.NewAttr(metadata.AttrOperation, "siblings")},
		)
		return Group{}, false, nil
	}

	group, ok := Detect(doc, d.cfg)
	if !ok {
		d.metadataSink.RecordError(
			time.Now(),
			"siblings",
			"Detector.Detect",
			metadata.CauseNoSiblingsFound,
			"no candidate survived selection",
			[]metadata.Attribute{metadata.NewAttr(metadata.AttrOperation, "siblings")},
		)
		return Group{}, false, nil
	}

	return group, true, nil
}

// Detect is the pure, stateless algorithm: Phase 1 traversal, Phase 2
// candidate enumeration (candidates.go), Phase 3 filtering, Phase 4
// selection.
func Detect(doc *html.Node, cfg config.Config) (Group, bool) {
	var candidates []Group

	pos := 0
	dom.WalkElements(doc, func(n *html.Node) {
		pos++
		children := dom.ElementChildren(n)
		if len(children) < 2 {
			return
		}

		inArticle := n.Data == "article" || dom.HasAncestor(n, "article")
		depth := nodeDepth(n)

		candidates = append(candidates, singleElementCandidates(children, inArticle, depth, pos, cfg)...)
		candidates = append(candidates, multiElementCandidates(children, inArticle, depth, pos, cfg)...)
	})

	candidates = filterCandidates(candidates)
	if len(candidates) == 0 {
		return Group{}, false
	}

	return selectWinner(candidates), true
}

// filterCandidates implements Phase 3: drop zero-length patterns and
// candidates whose items carry no element grandchildren (trivial
// inline repeaters).
func filterCandidates(candidates []Group) []Group {
	var out []Group
	for _, c := range candidates {
		if c.PatternLen == 0 {
			continue
		}
		if !anyItemHasElementGrandchild(c.Items) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func anyItemHasElementGrandchild(items [][]*html.Node) bool {
	for _, item := range items {
		for _, node := range item {
			if len(dom.ElementChildren(node)) > 0 {
				return true
			}
		}
	}
	return false
}

// selectWinner implements Phase 4: lexicographic comparison on
// (in_article, item_count, pattern_len), then deeper parent, then
// earliest source position.
func selectWinner(candidates []Group) Group {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if better(c, best) {
			best = c
		}
	}
	return best
}

func better(a, b Group) bool {
	if a.InArticle != b.InArticle {
		return a.InArticle
	}
	if a.ItemCount() != b.ItemCount() {
		return a.ItemCount() > b.ItemCount()
	}
	if a.PatternLen != b.PatternLen {
		return a.PatternLen > b.PatternLen
	}
	if a.parentDepth != b.parentDepth {
		return a.parentDepth > b.parentDepth
	}
	return a.sourcePos < b.sourcePos
}

func nodeDepth(n *html.Node) int {
	depth := 0
	for p := n.Parent; p != nil; p = p.Parent {
		depth++
	}
	return depth
}
