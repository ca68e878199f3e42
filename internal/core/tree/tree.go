// Package tree implements C2, the tree builder: a jsx.Node tree (after
// being run through the C1 style resolver) becomes a constraint tree of
// layout nodes with per-node style and, for text leaves, a flat sequence of
// inline runs the box solver measures and wraps into TextLines. Grounded on
// the teacher's internal/core/engine/layout.Engine.buildLayoutTree
// (recursive descent, display:none pruning, parent-link threading).
package tree

import (
	"resumewright/internal/core/domain"
	"resumewright/internal/core/jsx"
	"resumewright/internal/core/style"
)

// Kind distinguishes a block-level container node from an inline text leaf.
type Kind int

const (
	KindContainer Kind = iota
	KindText
)

// InlineRun is one run of fully-resolved inline text, produced by flattening
// a paragraph-like element's text and inline-element (span/strong/em/a)
// descendants. It already carries the resolved style for this run, unlike
// domain.TextSegment's optional-override fields, since the cascade has
// already run by the time the tree builder emits it.
type InlineRun struct {
	Text  string
	Style domain.TextStyle
}

// Node is one node of the constraint tree.
type Node struct {
	Kind           Kind
	ElementType    domain.ElementType
	HasElementType bool
	Style          domain.StyleDeclaration
	Children       []*Node    // meaningful when Kind == KindContainer
	Runs           []InlineRun // meaningful when Kind == KindText
}

// inlineTags are elements the tree builder treats as inline runs inside a
// text-leaf node rather than as block-level containers of their own.
var inlineTags = map[string]bool{
	"span": true, "strong": true, "b": true, "em": true, "i": true, "a": true,
}

// blockTextTags are elements whose own content (once inline descendants are
// flattened) becomes a single KindText leaf: paragraphs and list items.
var blockTextTags = map[string]bool{
	"p": true, "li": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// Build converts a jsx.Node into the constraint tree, applying the C1
// cascade along the way. ctx is the root style.Context (style.RootContext()
// for a document root).
func Build(n *jsx.Node, ctx style.Context) *Node {
	if n == nil {
		return nil
	}
	if n.Type == jsx.TextNode {
		// A bare text node at the top level (no enclosing p/li/heading) is
		// wrapped as its own text leaf using the inherited style verbatim.
		return &Node{
			Kind: KindText,
			Runs: []InlineRun{{Text: n.Text, Style: ctx.Parent.Text}},
		}
	}

	resolved := style.Resolve(n.Tag, n.ClassName(), n.Style(), ctx)
	if resolved.Style.Flex.Display == domain.DisplayNone {
		return nil
	}

	if blockTextTags[n.Tag] {
		runs := flattenInline(n.Children, resolved.Child)
		return &Node{
			Kind:           KindText,
			ElementType:    resolved.ElementType,
			HasElementType: resolved.HasElementType,
			Style:          resolved.Style,
			Runs:           runs,
		}
	}

	node := &Node{
		Kind:           KindContainer,
		ElementType:    resolved.ElementType,
		HasElementType: resolved.HasElementType,
		Style:          resolved.Style,
	}
	for _, c := range n.Children {
		if child := Build(c, resolved.Child); child != nil {
			node.Children = append(node.Children, child)
		}
	}
	return node
}

// flattenInline walks a paragraph-like element's children, turning nested
// <span>/<strong>/<em>/<a> elements and raw text into a flat sequence of
// InlineRuns, each carrying its own resolved style per §4.3's multi-segment
// text line rule.
func flattenInline(children []*jsx.Node, ctx style.Context) []InlineRun {
	var runs []InlineRun
	for _, c := range children {
		switch c.Type {
		case jsx.TextNode:
			if c.Text != "" {
				runs = append(runs, InlineRun{Text: c.Text, Style: ctx.Parent.Text})
			}
		case jsx.ElementNode:
			if c.Tag == "br" {
				runs = append(runs, InlineRun{Text: "\n", Style: ctx.Parent.Text})
				continue
			}
			if inlineTags[c.Tag] {
				resolved := style.Resolve(c.Tag, c.ClassName(), c.Style(), ctx)
				runs = append(runs, flattenInline(c.Children, resolved.Child)...)
				continue
			}
			// A non-inline element nested inside a text-bearing tag (malformed
			// but tolerated input) is flattened into plain text runs too,
			// rather than silently dropped.
			resolved := style.Resolve(c.Tag, c.ClassName(), c.Style(), ctx)
			runs = append(runs, flattenInline(c.Children, resolved.Child)...)
		}
	}
	return runs
}
