package jsx

import (
	"strings"

	"golang.org/x/net/html"
)

// FromHTML parses markup with golang.org/x/net/html and adapts it into a
// Node tree. This is the convenience adapter described in SPEC_FULL.md §1:
// JSX's tag/attribute grammar is a subset of HTML's, so the real tokenizer
// is reused rather than reimplemented. It does not evaluate JS expressions
// or understand fragments-with-keys; it is a test/CLI/demo-server
// convenience, not a faithful TSX parser. Grounded on the teacher's
// internal/core/engine/html.Parser.convertNode, which wraps the same
// library for the same reason.
func FromHTML(markup string) (*Node, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}
	body := findBody(doc)
	if body == nil {
		body = doc
	}
	var root *Node
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if child := convert(c); child != nil {
			root = child
			break
		}
	}
	if root == nil {
		return NewElement("div", nil), nil
	}
	return root, nil
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findBody(c); found != nil {
			return found
		}
	}
	return nil
}

// convert walks an html.Node, skipping document/doctype/comment nodes and
// collapsing whitespace-only text nodes that x/net/html inserts around
// block elements.
func convert(n *html.Node) *Node {
	switch n.Type {
	case html.TextNode:
		if strings.TrimSpace(n.Data) == "" {
			return nil
		}
		return NewText(n.Data)
	case html.ElementNode:
		attrs := make(map[string]string, len(n.Attr))
		for _, a := range n.Attr {
			key := a.Key
			if key == "classname" {
				key = "className"
			}
			attrs[key] = a.Val
		}
		el := &Node{Type: ElementNode, Tag: n.Data, Attributes: attrs}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := convert(c); child != nil {
				el.Children = append(el.Children, child)
			}
		}
		return el
	default:
		// Document, DoctypeNode, CommentNode: recurse into children only,
		// collapsing them into whichever single element we find (there's
		// normally exactly one, html > body > ... but FromHTML already
		// descends to body before calling convert).
		var first *Node
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := convert(c); child != nil && first == nil {
				first = child
			}
		}
		return first
	}
}
