package mainlocator

import "golang.org/x/net/html"

// LocateResult holds the outcome of a Locate call.
type LocateResult struct {
	DocumentRoot *html.Node
	ContentNode  *html.Node
	// Tier records which of the four selection tiers produced
	// ContentNode, for observability only.
	Tier SelectionTier
}

type SelectionTier int

const (
	TierMainElement SelectionTier = iota
	TierLargestArticle
	TierTextByteCandidate
	TierCleanedBodyFallback
)

func (t SelectionTier) String() string {
	switch t {
	case TierMainElement:
		return "main_element"
	case TierLargestArticle:
		return "largest_article"
	case TierTextByteCandidate:
		return "text_byte_candidate"
	case TierCleanedBodyFallback:
		return "cleaned_body_fallback"
	default:
		return "unknown"
	}
}
