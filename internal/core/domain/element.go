package domain

// ElementType is the semantic tag enum of §3.
type ElementType string

const (
	Heading1       ElementType = "h1"
	Heading2       ElementType = "h2"
	Heading3       ElementType = "h3"
	Heading4       ElementType = "h4"
	Heading5       ElementType = "h5"
	Heading6       ElementType = "h6"
	Paragraph      ElementType = "p"
	Span           ElementType = "span"
	Section        ElementType = "section"
	Div            ElementType = "div"
	UnorderedList  ElementType = "ul"
	OrderedList    ElementType = "ol"
	ListItem       ElementType = "li"
	Anchor         ElementType = "a"
	LineBreak      ElementType = "br"
	Strong         ElementType = "strong"
	Emphasis       ElementType = "em"
)

// IsHeading reports whether the element is any of h1-h6.
func (e ElementType) IsHeading() bool {
	switch e {
	case Heading1, Heading2, Heading3, Heading4, Heading5, Heading6:
		return true
	default:
		return false
	}
}

// NeedsOrphanPrevention reports whether the paginator must guard against
// stranding this element alone at the bottom of a page: any heading.
func (e ElementType) NeedsOrphanPrevention() bool {
	return e.IsHeading()
}

// NeedsLookaheadOrphanPrevention reports whether the paginator must check
// the box *following* this one before committing it to a page: only the two
// top-level section headings, H1 and H2, per §4.5 rule 1.
func (e ElementType) NeedsLookaheadOrphanPrevention() bool {
	return e == Heading1 || e == Heading2
}

// HeadingLevel returns 1-6 for a heading element, 0 otherwise.
func (e ElementType) HeadingLevel() int {
	switch e {
	case Heading1:
		return 1
	case Heading2:
		return 2
	case Heading3:
		return 3
	case Heading4:
		return 4
	case Heading5:
		return 5
	case Heading6:
		return 6
	default:
		return 0
	}
}
