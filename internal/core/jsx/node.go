// Package jsx defines the external-AST boundary the style resolver and tree
// builder consume (§1 scope note: the real TSX/JSX lexer is out of scope).
// Node is deliberately minimal — tag name, attributes, text, children — so a
// caller with a real TSX parser can construct it directly without pulling in
// this package's HTML-based adapter at all.
package jsx

// NodeType distinguishes element nodes from text leaves.
type NodeType int

const (
	ElementNode NodeType = iota
	TextNode
)

// Node is one node of the JSX tree fed into the C1 style resolver and C2
// tree builder.
type Node struct {
	Type       NodeType
	Tag        string // e.g. "h1", "p", "span"; empty for TextNode
	Text       string // only meaningful for TextNode
	Attributes map[string]string
	Children   []*Node
}

// Attr returns an attribute value and whether it was present.
func (n *Node) Attr(key string) (string, bool) {
	if n.Attributes == nil {
		return "", false
	}
	v, ok := n.Attributes[key]
	return v, ok
}

// ClassName is shorthand for the "className" attribute (React's name for
// "class"), falling back to a plain "class" attribute so hand-authored
// fixtures can use either spelling.
func (n *Node) ClassName() string {
	if v, ok := n.Attr("className"); ok {
		return v
	}
	v, _ := n.Attr("class")
	return v
}

// Style is shorthand for the inline "style" attribute.
func (n *Node) Style() string {
	v, _ := n.Attr("style")
	return v
}

func NewElement(tag string, attrs map[string]string, children ...*Node) *Node {
	if attrs == nil {
		attrs = map[string]string{}
	}
	return &Node{Type: ElementNode, Tag: tag, Attributes: attrs, Children: children}
}

func NewText(text string) *Node {
	return &Node{Type: TextNode, Text: text}
}
