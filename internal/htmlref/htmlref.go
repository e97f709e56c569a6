// Package htmlref finds asset references inside generated HTML documents.
//
// Slide decks reference images, stylesheets and links through element
// attributes. Collect lists the attributes whose value contains a token so
// callers can report what a textual rewrite is going to touch.
package htmlref

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// referenceAttrs are the attributes that carry asset or link paths.
var referenceAttrs = map[string]bool{
	"src":      true,
	"href":     true,
	"data-src": true,
	"poster":   true,
}

// Reference is one attribute value containing the searched token.
type Reference struct {
	Tag   string `json:"tag"`
	Attr  string `json:"attr"`
	Value string `json:"value"`
}

// Collect parses htmlContent and returns, in document order, every
// reference attribute whose value contains token.
// An empty token matches nothing.
func Collect(htmlContent, token string) ([]Reference, error) {
	if token == "" {
		return nil, nil
	}

	doc, err := parseHTML(htmlContent)
	if err != nil {
		return nil, err
	}

	var refs []Reference
	collectNode(doc, token, &refs)
	return refs, nil
}

// parseHTML parses a full document, or a fragment in body context.
func parseHTML(content string) (*html.Node, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		return html.Parse(strings.NewReader(content))
	}

	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

// collectNode walks the tree depth-first.
func collectNode(n *html.Node, token string, refs *[]Reference) {
	if n.Type == html.ElementNode {
		for _, attr := range n.Attr {
			if !referenceAttrs[attr.Key] {
				continue
			}
			if strings.Contains(attr.Val, token) {
				*refs = append(*refs, Reference{Tag: n.Data, Attr: attr.Key, Value: attr.Val})
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectNode(c, token, refs)
	}
}
