// Package flatten implements C4: given the solved box tree (C3), it produces
// a mostly-flat sequence of leaf boxes for the paginator (C5) to walk. There
// is no direct teacher equivalent — the teacher's renderer walks its layout
// tree recursively with no flatten step — so this package is grounded
// directly on spec.md §4.4 and on §9's node-arena re-architecture note,
// shaped after the teacher's recursive-descent style in
// internal/core/engine/render/pdf.go (renderLayoutNode) generalized into an
// explicit flatten pass that produces an ordered []*domain.LayoutBox a
// later mutable pass (pagination, §9) can index into without aliasing the
// original tree, since domain.StyleDeclaration is cloned wherever this
// package mutates a box's own style metadata.
package flatten

import "resumewright/internal/core/domain"

// Flatten converts the solved tree rooted at root into an ordered sequence
// of leaf boxes: Text leaves, border-only Empty leaves, and flex-row
// containers preserved as atomic units (§4.4). Plain block containers are
// dissolved; their own trailing margin is folded into the last surviving
// descendant so pagination still sees the space that would otherwise be
// lost when the container box itself disappears.
func Flatten(root *domain.LayoutBox) []*domain.LayoutBox {
	if root == nil {
		return nil
	}
	boxes, _ := flattenNode(root)
	return boxes
}

// flattenNode returns the leaves contributed by n along with n's own
// margin-bottom, so the caller can fold it into whichever descendant ends
// up last in the flattened sequence. A dissolved container has already
// folded its own margin-bottom into its last leaf, so it returns 0.
func flattenNode(n *domain.LayoutBox) ([]*domain.LayoutBox, float64) {
	marginBottom := n.Style.Box.Margin.Bottom

	switch {
	case n.Content.IsText():
		leaf := cloneLeaf(n)
		return []*domain.LayoutBox{leaf}, marginBottom

	case n.Content.IsEmpty():
		if !n.Style.Box.Border[2].Visible() && !n.Style.Box.Border[0].Visible() &&
			!n.Style.Box.Border[1].Visible() && !n.Style.Box.Border[3].Visible() {
			return nil, marginBottom
		}
		return []*domain.LayoutBox{cloneLeaf(n)}, marginBottom

	case isPreservedFlexRow(n):
		preserved := cloneLeaf(n)
		propagateHeading(preserved)
		return []*domain.LayoutBox{preserved}, marginBottom

	default:
		return dissolve(n), 0
	}
}

// isPreservedFlexRow reports whether n is an atomic "Title … Date"-style
// flex row that must not be split across pages (§4.4).
func isPreservedFlexRow(n *domain.LayoutBox) bool {
	return n.Content.IsContainer() &&
		n.Style.Flex.Display == domain.DisplayFlex &&
		n.Style.Flex.FlexDirection == domain.FlexDirectionRow
}

// dissolve flattens an ordinary (non-flex-row) container: its children are
// recursively flattened and concatenated, its own margin-bottom transferred
// to the last surviving leaf, and — if it carries a visible bottom border —
// a synthetic zero-height Empty box is appended at the padding-bottom edge
// so the border still renders once the container itself is gone.
func dissolve(n *domain.LayoutBox) []*domain.LayoutBox {
	var out []*domain.LayoutBox
	for _, child := range n.Content.Children {
		leaves, childMargin := flattenNode(child)
		if len(leaves) == 0 {
			continue
		}
		last := leaves[len(leaves)-1]
		if childMargin > 0 {
			st := last.Style.Clone()
			st.Box.Margin.Bottom += childMargin
			last.Style = st
		}
		out = append(out, leaves...)
	}
	if len(out) > 0 {
		last := out[len(out)-1]
		if n.Style.Box.Margin.Bottom > 0 {
			st := last.Style.Clone()
			st.Box.Margin.Bottom += n.Style.Box.Margin.Bottom
			last.Style = st
		}
	}
	if n.Style.Box.Border[2].Visible() {
		out = append(out, borderBottomBox(n))
	}
	if len(out) > 0 && n.HasElementType && (!out[0].HasElementType || !out[0].ElementType.IsHeading()) {
		propagateHeadingTo(out[0], n.ElementType)
	}
	return out
}

// borderBottomBox synthesizes the zero-height Empty box spec.md §4.4
// requires so a dissolved container's bottom border survives flattening.
func borderBottomBox(n *domain.LayoutBox) *domain.LayoutBox {
	st := n.Style.Clone()
	borderW := st.Box.Border[2].Width
	return &domain.LayoutBox{
		X:      n.X,
		Y:      n.Bottom() - borderW,
		Width:  n.Width,
		Height: 0,
		Content: domain.EmptyContent(),
		Style:  st,
	}
}

// propagateHeading lifts a preserved flex-row's first heading child's
// element type onto the row itself, so pagination's look-ahead/threshold
// rules (§4.5) see "this flex row is a heading" (§4.4).
func propagateHeading(preserved *domain.LayoutBox) {
	if preserved.HasElementType {
		return
	}
	for _, child := range preserved.Content.Children {
		if child.HasElementType && child.ElementType.IsHeading() {
			propagateHeadingTo(preserved, child.ElementType)
			return
		}
	}
}

func propagateHeadingTo(box *domain.LayoutBox, et domain.ElementType) {
	if !et.IsHeading() {
		return
	}
	box.ElementType = et
	box.HasElementType = true
}

// cloneLeaf copies a leaf box shallowly enough to let flatten mutate its
// Style independent of the solved tree (value-semantics StyleDeclaration
// per §9, so Clone is a plain copy with no ref-counting to manage).
func cloneLeaf(n *domain.LayoutBox) *domain.LayoutBox {
	cp := *n
	cp.Style = n.Style.Clone()
	return &cp
}
