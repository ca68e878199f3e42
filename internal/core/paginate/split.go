package paginate

import "resumewright/internal/core/domain"

// MinFragmentHeight is the §4.5 rule 4 threshold below which a splittable
// box is instead moved whole to the next page.
const MinFragmentHeight = 50.0

// split breaks box at the given absolute Y coordinate (§4.6), returning the
// portion above the line and the portion at/below it. ok is false when the
// box cannot be meaningfully split (Empty boxes, or a text box whose
// widow/orphan rule forces it to move whole).
func split(b *domain.LayoutBox, splitY float64) (first, second *domain.LayoutBox, ok bool) {
	switch {
	case b.Content.IsEmpty():
		return nil, nil, false
	case b.Content.IsText():
		return splitText(b, splitY)
	case b.Content.IsContainer():
		return splitContainer(b, splitY)
	default:
		return nil, nil, false
	}
}

// splitText divides a text box's lines at splitY, enforcing the widow/orphan
// rule: each non-empty fragment must carry at least 2 lines, otherwise the
// whole box is pushed to the next page (§4.6).
func splitText(b *domain.LayoutBox, splitY float64) (first, second *domain.LayoutBox, ok bool) {
	lineHeight := b.Style.Text.LineHeight
	if lineHeight <= 0 {
		return nil, nil, false
	}
	contentTop := b.Y + b.Style.Box.Border[0].Width + b.Style.Box.Padding.Top
	fitLines := int((splitY - contentTop) / lineHeight)
	lines := b.Content.Lines
	if fitLines < 0 {
		fitLines = 0
	}
	if fitLines > len(lines) {
		fitLines = len(lines)
	}
	remaining := len(lines) - fitLines
	if (fitLines > 0 && fitLines < 2) || (remaining > 0 && remaining < 2) {
		return nil, nil, false
	}
	if fitLines == 0 || remaining == 0 {
		return nil, nil, false
	}

	firstLines := append([]domain.TextLine(nil), lines[:fitLines]...)
	secondLines := append([]domain.TextLine(nil), lines[fitLines:]...)

	firstBox := cloneDecoration(b)
	firstBox.Y = b.Y
	firstBox.Height = float64(fitLines)*lineHeight + b.Style.Box.Border[0].Width + b.Style.Box.Padding.Top
	firstBox.Content = domain.TextContent(firstLines...)

	secondBox := cloneDecoration(b)
	secondBox.Y = b.Y + float64(fitLines)*lineHeight
	secondBox.Height = float64(remaining)*lineHeight + b.Style.Box.Padding.Bottom + b.Style.Box.Border[2].Width
	secondBox.Content = domain.TextContent(secondLines...)

	return firstBox, secondBox, true
}

// splitContainer recursively partitions a container's children by splitY,
// applying the heading-orphan and list-item rules to the resulting
// fragments (§4.6).
func splitContainer(b *domain.LayoutBox, splitY float64) (first, second *domain.LayoutBox, ok bool) {
	var firstChildren, secondChildren []*domain.LayoutBox
	for _, child := range b.Content.Children {
		switch {
		case child.Bottom() <= splitY:
			firstChildren = append(firstChildren, child)
		case child.Y >= splitY:
			secondChildren = append(secondChildren, child)
		default:
			cf, cs, childOK := split(child, splitY)
			if !childOK {
				if child.Y < splitY {
					firstChildren = append(firstChildren, child)
				} else {
					secondChildren = append(secondChildren, child)
				}
				continue
			}
			firstChildren = append(firstChildren, cf)
			secondChildren = append(secondChildren, cs)
		}
	}
	if len(firstChildren) == 0 || len(secondChildren) == 0 {
		return nil, nil, false
	}

	applyHeadingOrphanRule(&firstChildren, &secondChildren)
	applyListItemRule(&firstChildren, &secondChildren)

	firstBox := cloneDecoration(b)
	firstBox.Content = domain.ContainerContent(firstChildren...)
	firstBox.Height = fragmentHeight(firstChildren, b.Y)

	secondBox := cloneDecoration(b)
	secondBox.Content = domain.ContainerContent(secondChildren...)
	restackFromTop(secondChildren, b.Y)
	secondBox.Y = b.Y
	secondBox.Height = fragmentHeight(secondChildren, b.Y)

	return firstBox, secondBox, true
}

// applyHeadingOrphanRule pops trailing headings (and any glued zero-height
// border box) off the first fragment and prepends them to the second, so a
// heading never ends up alone at the bottom of a page fragment (§4.6).
func applyHeadingOrphanRule(first, second *[]*domain.LayoutBox) {
	f := *first
	cut := len(f)
	for cut > 0 {
		b := f[cut-1]
		if b.Content.IsEmpty() || (b.HasElementType && b.ElementType.IsHeading()) {
			cut--
			continue
		}
		break
	}
	if cut == len(f) {
		return
	}
	popped := append([]*domain.LayoutBox(nil), f[cut:]...)
	*first = f[:cut]
	*second = append(popped, (*second)...)
}

// applyListItemRule guarantees at least 2 ListItem boxes per fragment when
// both fragments contain list items, shifting the lone item across the
// split boundary otherwise (§4.6).
func applyListItemRule(first, second *[]*domain.LayoutBox) {
	firstItems := countListItems(*first)
	secondItems := countListItems(*second)
	if firstItems == 1 && secondItems >= 1 {
		f := *first
		moved := f[len(f)-1]
		*first = f[:len(f)-1]
		*second = append([]*domain.LayoutBox{moved}, (*second)...)
		return
	}
	if secondItems == 1 && firstItems >= 1 {
		s := *second
		moved := s[0]
		*second = s[1:]
		*first = append(*first, moved)
	}
}

func countListItems(boxes []*domain.LayoutBox) int {
	n := 0
	for _, b := range boxes {
		if b.HasElementType && b.ElementType == domain.ListItem {
			n++
		}
	}
	return n
}

// restackFromTop re-derives each box's absolute Y so the second fragment's
// content is contiguous again starting at originY, preserving relative
// vertical spacing (§4.6: "Y coordinates of the second fragment are
// re-stacked from its top").
func restackFromTop(boxes []*domain.LayoutBox, originY float64) {
	if len(boxes) == 0 {
		return
	}
	shift := originY - boxes[0].Y
	if shift == 0 {
		return
	}
	for _, b := range boxes {
		shiftBox(b, shift)
	}
}

func shiftBox(b *domain.LayoutBox, dy float64) {
	b.Y += dy
	for _, c := range b.Content.Children {
		shiftBox(c, dy)
	}
}

func fragmentHeight(boxes []*domain.LayoutBox, top float64) float64 {
	max := top
	for _, b := range boxes {
		if b.Bottom() > max {
			max = b.Bottom()
		}
	}
	return max - top
}

// cloneDecoration copies a box's style and identity fields for box-decoration-break:
// clone semantics (§4.6) — borders and background duplicate onto both fragments.
func cloneDecoration(b *domain.LayoutBox) *domain.LayoutBox {
	cp := *b
	cp.Style = b.Style.Clone()
	return &cp
}
