package box

import (
	"resumewright/internal/core/domain"
	"resumewright/internal/core/tree"
)

// Solve lays out the constraint tree rooted at n within the page content
// area [originX, originY, availWidth], producing absolute-positioned
// LayoutBoxes (§3: "coordinates are top-left origin in CSS-points"). Box
// geometry here is the border-box (content+padding+border); margin is kept
// in Style.Box.Margin for the flattener (C4) and paginator (C5) to consult,
// matching the teacher's BoxCalculator's content->padding->border->margin
// composition order without collapsing margins between siblings (§4.3).
func Solve(n *tree.Node, originX, originY, availWidth float64, measurer TextMeasurer) *domain.LayoutBox {
	if n == nil {
		return &domain.LayoutBox{X: originX, Y: originY, Content: domain.ContainerContent()}
	}
	return layout(n, originX, originY, availWidth, nil, measurer)
}

// layout is the recursive block+flex solver. forcedHeight, if non-nil,
// overrides the node's auto height (used for align-items:stretch).
func layout(n *tree.Node, x, y, availWidth float64, forcedHeight *float64, measurer TextMeasurer) *domain.LayoutBox {
	st := n.Style
	width := availWidth
	if st.Box.Width != nil {
		width = *st.Box.Width
	}
	if st.Box.MaxWidth != nil && width > *st.Box.MaxWidth {
		width = *st.Box.MaxWidth
	}
	if width < 0 {
		width = 0
	}

	contentLeft := x + st.Box.Border[3].Width + st.Box.Padding.Left
	contentTop := y + st.Box.Border[0].Width + st.Box.Padding.Top
	contentWidth := width - st.Box.Border[1].Width - st.Box.Border[3].Width - st.Box.Padding.Horizontal()
	if contentWidth < 0 {
		contentWidth = 0
	}

	box := &domain.LayoutBox{
		X: x, Y: y, Width: width,
		Style:          st,
		ElementType:    n.ElementType,
		HasElementType: n.HasElementType,
	}

	switch n.Kind {
	case tree.KindText:
		lines := WrapText(n.Runs, contentWidth, measurer)
		box.Content = domain.TextContent(lines...)
		lineHeight := st.Text.LineHeight
		textHeight := float64(len(lines)) * lineHeight
		box.Height = textHeight + st.Box.Padding.Vertical() + st.Box.Border[0].Width + st.Box.Border[2].Width
		if forcedHeight != nil {
			box.Height = *forcedHeight
		} else if st.Box.Height != nil {
			box.Height = *st.Box.Height
		}
		return box
	}

	// Container.
	var contentHeight float64
	switch {
	case st.Flex.Display == domain.DisplayFlex && st.Flex.FlexDirection == domain.FlexDirectionRow:
		box.Content, contentHeight = layoutFlexRow(n.Children, contentLeft, contentTop, contentWidth, st, measurer)
	case st.Flex.Display == domain.DisplayFlex:
		box.Content, contentHeight = layoutFlexColumn(n.Children, contentLeft, contentTop, contentWidth, st, measurer)
	default:
		box.Content, contentHeight = layoutBlock(n.Children, contentLeft, contentTop, contentWidth, measurer)
	}

	if forcedHeight != nil {
		box.Height = *forcedHeight
	} else if st.Box.Height != nil {
		box.Height = *st.Box.Height
	} else {
		box.Height = contentHeight + st.Box.Padding.Vertical() + st.Box.Border[0].Width + st.Box.Border[2].Width
	}
	if st.Box.MaxHeight != nil && box.Height > *st.Box.MaxHeight {
		box.Height = *st.Box.MaxHeight
	}
	return box
}

// layoutBlock stacks children vertically without collapsing margins (§4.3).
// Container auto-height is computed as max_y - min_y of children, the §9
// Open Question resolution recorded in SPEC_FULL.md §9 (fixing the source's
// drifting-accumulation bug rather than replicating it).
func layoutBlock(children []*tree.Node, x, y, width float64, measurer TextMeasurer) (domain.BoxContent, float64) {
	if len(children) == 0 {
		return domain.ContainerContent(), 0
	}
	cursorY := y
	minY, maxY := y, y
	boxes := make([]*domain.LayoutBox, 0, len(children))
	for _, child := range children {
		m := child.Style.Box.Margin
		cursorY += m.Top
		childBox := layout(child, x+m.Left, cursorY, width-m.Horizontal(), nil, measurer)
		boxes = append(boxes, childBox)
		if childBox.Y < minY {
			minY = childBox.Y
		}
		bottom := childBox.Bottom() + m.Bottom
		if bottom > maxY {
			maxY = bottom
		}
		cursorY = childBox.Bottom() + m.Bottom
	}
	return domain.ContainerContent(boxes...), maxY - minY
}

// layoutFlexColumn is block stacking plus an explicit gap (used both for
// flex-direction:column and, via the Tailwind space-y transform, the same
// code path per §4.2).
func layoutFlexColumn(children []*tree.Node, x, y, width float64, st domain.StyleDeclaration, measurer TextMeasurer) (domain.BoxContent, float64) {
	gap := resolveGap(st, false)
	if len(children) == 0 {
		return domain.ContainerContent(), 0
	}
	cursorY := y
	boxes := make([]*domain.LayoutBox, 0, len(children))
	for i, child := range children {
		if i > 0 {
			cursorY += gap
		}
		m := child.Style.Box.Margin
		cursorY += m.Top
		childBox := layout(child, x+m.Left, cursorY, width-m.Horizontal(), nil, measurer)
		boxes = append(boxes, childBox)
		cursorY = childBox.Bottom() + m.Bottom
	}
	return domain.ContainerContent(boxes...), cursorY - y
}

// layoutFlexRow lays children on the main axis left->right, honoring
// justify-content, align-items, flex-grow/flex-shrink, and gap (§4.3).
func layoutFlexRow(children []*tree.Node, x, y, width float64, st domain.StyleDeclaration, measurer TextMeasurer) (domain.BoxContent, float64) {
	if len(children) == 0 {
		return domain.ContainerContent(), 0
	}
	gap := resolveGap(st, true)
	n := len(children)
	totalGap := gap * float64(n-1)

	basis := make([]float64, n)
	grow := make([]float64, n)
	shrink := make([]float64, n)
	var totalBasis, totalGrow float64
	for i, child := range children {
		basis[i] = itemBasis(child, width, measurer)
		grow[i] = child.Style.Flex.FlexGrow
		shrink[i] = child.Style.Flex.FlexShrink
		totalBasis += basis[i]
		totalGrow += grow[i]
	}

	free := width - totalBasis - totalGap
	itemWidths := make([]float64, n)
	copy(itemWidths, basis)
	if free > 0 && totalGrow > 0 {
		for i := range itemWidths {
			if grow[i] > 0 {
				itemWidths[i] += free * (grow[i] / totalGrow)
			}
		}
		free = 0
	} else if free < 0 {
		// Shrink proportionally; flex-shrink:0 forbids shrinking below
		// intrinsic basis (§4.3).
		var shrinkable float64
		for i := range itemWidths {
			if shrink[i] > 0 {
				shrinkable += basis[i] * shrink[i]
			}
		}
		if shrinkable > 0 {
			deficit := -free
			for i := range itemWidths {
				if shrink[i] > 0 {
					itemWidths[i] -= deficit * (basis[i] * shrink[i] / shrinkable)
					if itemWidths[i] < 0 {
						itemWidths[i] = 0
					}
				}
			}
		}
		free = 0
	}

	// First pass: layout each child at its resolved width to discover its
	// natural height (needed for align-items and for justify-content when
	// free space remains).
	natural := make([]*domain.LayoutBox, n)
	maxHeight := 0.0
	for i, child := range children {
		natural[i] = layout(child, 0, 0, itemWidths[i], nil, measurer)
		if natural[i].Height > maxHeight {
			maxHeight = natural[i].Height
		}
	}

	leading, between := distributeJustify(st.Flex.JustifyContent, free, n)

	cursorX := x + leading
	boxes := make([]*domain.LayoutBox, 0, n)
	for i, child := range children {
		m := child.Style.Box.Margin
		itemX := cursorX + m.Left
		itemY := y
		var forced *float64
		switch st.Flex.AlignItems {
		case domain.AlignStretch:
			h := maxHeight
			forced = &h
		case domain.AlignCenter:
			itemY = y + (maxHeight-natural[i].Height)/2
		case domain.AlignEnd:
			itemY = y + (maxHeight - natural[i].Height)
		}
		childBox := layout(child, itemX, itemY, itemWidths[i], forced, measurer)
		boxes = append(boxes, childBox)
		cursorX += itemWidths[i] + m.Horizontal()
		if i < n-1 {
			cursorX += gap + between
		}
	}
	return domain.ContainerContent(boxes...), maxHeight
}

// itemBasis is a flex item's content-size contribution before grow/shrink:
// its explicit width if set, otherwise its intrinsic preferred size
// measured at the container's full available width (text leaves measure
// their natural unwrapped width, clamped to the container).
func itemBasis(n *tree.Node, containerWidth float64, measurer TextMeasurer) float64 {
	if n.Style.Box.Width != nil {
		return *n.Style.Box.Width
	}
	if n.Kind == tree.KindText {
		var w float64
		for _, run := range n.Runs {
			w += measurer.MeasureWidth(run.Text, run.Style)
		}
		w += n.Style.Box.Padding.Horizontal()
		if w > containerWidth {
			w = containerWidth
		}
		return w
	}
	// Containers without an explicit width default to an even share; a
	// second itemBasis call after this function already divided the space
	// is unnecessary because layoutFlexRow treats basis as a starting point
	// that grow/shrink then adjusts.
	return containerWidth / 4
}

func resolveGap(st domain.StyleDeclaration, row bool) float64 {
	if row && st.Flex.ColumnGap > 0 {
		return st.Flex.ColumnGap
	}
	if !row && st.Flex.RowGap > 0 {
		return st.Flex.RowGap
	}
	return st.Flex.Gap
}

// distributeJustify returns the leading space before the first item and the
// additional space inserted between each pair of items, for the given
// justify-content mode and total free space (already net of gaps).
func distributeJustify(j domain.JustifyContent, free float64, n int) (leading, between float64) {
	if free <= 0 || n == 0 {
		return 0, 0
	}
	switch j {
	case domain.JustifyEnd:
		return free, 0
	case domain.JustifyCenter:
		return free / 2, 0
	case domain.JustifySpaceBetween:
		if n == 1 {
			return 0, 0
		}
		return 0, free / float64(n-1)
	case domain.JustifySpaceAround:
		each := free / float64(n)
		return each / 2, each
	case domain.JustifySpaceEvenly:
		each := free / float64(n+1)
		return each, each
	default: // start
		return 0, 0
	}
}
