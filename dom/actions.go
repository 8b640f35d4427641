package dom

import (
	"errors"
	"fmt"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// ErrSelector is returned for CSS selectors which cannot be compiled.
var ErrSelector = errors.New("invalid selector")

// Find returns all nodes of an HTML tree matching a CSS selector, in
// document order. The root itself is included in the search.
func Find(root *html.Node, selector string) ([]*html.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrSelector, selector, err)
	}
	if root == nil {
		return nil, nil
	}
	matches := sel.MatchAll(root)
	tracer().Debugf("selector %q matched %d nodes", selector, len(matches))
	return matches, nil
}

// FindIn lowers an element descriptor tree and searches it for nodes
// matching a CSS selector.
func FindIn(n Node, selector string) ([]*html.Node, error) {
	if n == nil {
		return Find(nil, selector)
	}
	return Find(n.HTML(), selector)
}

// NodeIsText is a predicate to match text nodes of an HTML tree.
func NodeIsText(n *html.Node) bool {
	return n != nil && n.Type == html.TextNode
}

// TextContent returns the concatenated text of n and all its descendents.
func TextContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	if NodeIsText(n) {
		return n.Data
	}
	var s string
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		s += TextContent(ch)
	}
	return s
}
