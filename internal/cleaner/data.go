package cleaner

import "golang.org/x/net/html"

// CleanedDoc is the result of a successful Clean call.
type CleanedDoc struct {
	root *html.Node
}

func (d CleanedDoc) Root() *html.Node {
	return d.root
}
