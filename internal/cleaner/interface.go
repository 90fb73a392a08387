package cleaner

import (
	"github.com/htmlshape/htmlshape/pkg/failure"
	"golang.org/x/net/html"
)

// Cleaner defines the interface for HTML cleaning. Implementations
// strip forbidden elements and attributes and leave the remaining DOM
// structurally untouched.
type Cleaner interface {
	// Clean processes inputNode and returns a cleaned copy, or a
	// ClassifiedError if the node cannot be cleaned.
	Clean(inputNode *html.Node) (CleanedDoc, failure.ClassifiedError)
}

// Compile-time interface check.
var _ Cleaner = (*HTMLCleaner)(nil)
