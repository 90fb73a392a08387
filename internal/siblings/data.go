package siblings

import "golang.org/x/net/html"

// Group is a sibling group: a run of adjacent elements under one
// parent sharing a pattern, per one of the two pattern families in
// §4.4.
type Group struct {
	InArticle  bool
	PatternLen int
	// Items is the ordered list of matched ranges; each item is one or
	// more consecutive element nodes (more than one only for the
	// multi-element family).
	Items [][]*html.Node

	parentDepth int
	sourcePos   int
}

// ItemCount returns the number of items in the group.
func (g Group) ItemCount() int {
	return len(g.Items)
}
