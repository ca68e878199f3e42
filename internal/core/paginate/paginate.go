// Package paginate implements C5, the paginator, and its §4.6 splitter:
// given the flattened box sequence (C4) it walks once left to right,
// deciding per box whether it fits, must be moved to protect a heading from
// orphaning, or must be split across a page boundary. Grounded on the
// teacher's internal/core/engine/layout.PageBreaker (page.go) — the same
// currentPage/overflow-check/breakWithinNode shape — generalized to the
// widow/orphan, heading-orphan, subtitle, and list-item rules spec.md §4.5
// and §4.6 require that the teacher's simpler height-threshold breaker
// does not have.
package paginate

import "resumewright/internal/core/domain"

// MinSpaceAfterHeading is the §4.5 rule 3 threshold: a heading this close
// to the page bottom is pushed to the next page instead.
const MinSpaceAfterHeading = 30.0

// shortSubtitleMax is the §4.5 rule 2 height below which a text box
// following an H3 is treated as a subtitle glued to it.
const shortSubtitleMax = 25.0

// Paginate splits the flat box sequence into pages of at most contentHeight
// points, each box placed with content_top at its visual top (§4.5).
func Paginate(boxes []*domain.LayoutBox, contentTop, contentHeight float64) domain.LayoutStructure {
	ComputeKeepWithNext(boxes)

	var pages []domain.Page
	if len(boxes) == 0 {
		return domain.LayoutStructure{Pages: pages}
	}

	pageBottom := contentTop + contentHeight
	pageYOffset := boxes[0].Y - contentTop
	curPage := domain.Page{PageNumber: 1}

	startNewPage := func(firstBoxY float64) {
		pages = append(pages, curPage)
		curPage = domain.Page{PageNumber: len(pages) + 1}
		pageYOffset = firstBoxY - contentTop
	}

	onTop := func(b *domain.LayoutBox) float64 { return b.Y - pageYOffset }
	onBottom := func(b *domain.LayoutBox) float64 { return b.Bottom() - pageYOffset }

	// pushed records, per box index, that a lookahead/subtitle/orphan push
	// has already been decided for it once — a box is never offered the
	// same push decision twice, so a push that (on some future pathology)
	// fails to change the outcome can never cycle forever.
	pushed := make(map[int]bool)

	i := 0
	for i < len(boxes) {
		b := boxes[i]
		top, bottom := onTop(b), onBottom(b)

		if !pushed[i] && b.HasElementType && b.ElementType.NeedsLookaheadOrphanPrevention() && bottom <= pageBottom {
			if shouldPushHeadingForLookahead(boxes, i, pageBottom, pageYOffset) {
				pushed[i] = true
				startNewPage(b.Y)
				continue
			}
		}

		if !pushed[i] && b.HasElementType && b.ElementType == domain.Heading3 && bottom <= pageBottom {
			if shouldPushH3ForSubtitle(boxes, i, pageBottom, pageYOffset) {
				pushed[i] = true
				startNewPage(b.Y)
				continue
			}
		}

		if !pushed[i] && b.HasElementType && b.ElementType.NeedsOrphanPrevention() && bottom <= pageBottom {
			if (pageBottom-bottom) < MinSpaceAfterHeading && !nextIsMajorSection(boxes, i) &&
				!b.ElementType.NeedsLookaheadOrphanPrevention() {
				pushed[i] = true
				startNewPage(b.Y)
				continue
			}
		}

		if bottom > pageBottom {
			onFreshPage := top <= contentTop+0.01
			if !onFreshPage {
				remaining := pageBottom - top
				if remaining >= MinFragmentHeight {
					if first, second, ok := split(b, pageBottom+pageYOffset); ok {
						curPage.Boxes = append(curPage.Boxes, translate(first, pageYOffset))
						boxes[i] = second
						startNewPage(second.Y)
						continue
					}
				}
				startNewPage(b.Y)
				continue
			}
			// Already at the top of a fresh page and the box alone exceeds
			// the page: split if possible, else place it whole and overflow
			// rather than loop forever.
			if first, second, ok := split(b, pageBottom+pageYOffset); ok {
				curPage.Boxes = append(curPage.Boxes, translate(first, pageYOffset))
				boxes[i] = second
				startNewPage(second.Y)
				continue
			}
			curPage.Boxes = append(curPage.Boxes, translate(b, pageYOffset))
			i++
			continue
		}

		curPage.Boxes = append(curPage.Boxes, translate(b, pageYOffset))
		i++
	}
	pages = append(pages, curPage)
	return domain.LayoutStructure{Pages: pages}
}

// translate returns a copy of b with Y expressed in on-page coordinates.
func translate(b *domain.LayoutBox, pageYOffset float64) *domain.LayoutBox {
	cp := *b
	cp.Y = b.Y - pageYOffset
	if b.Content.IsContainer() && len(b.Content.Children) > 0 {
		children := make([]*domain.LayoutBox, len(b.Content.Children))
		for i, c := range b.Content.Children {
			children[i] = translate(c, pageYOffset)
		}
		cp.Content = domain.ContainerContent(children...)
	}
	return &cp
}

// nextContentIndex returns the index of the next box that is neither a
// zero-height border box nor an Empty box, or -1 if none remains (§4.5 rule
// 1: "skipping zero-height border boxes and empties").
func nextContentIndex(boxes []*domain.LayoutBox, from int) int {
	for j := from; j < len(boxes); j++ {
		if boxes[j].Content.IsEmpty() {
			continue
		}
		return j
	}
	return -1
}

func nextIsMajorSection(boxes []*domain.LayoutBox, i int) bool {
	j := nextContentIndex(boxes, i+1)
	if j == -1 {
		return false
	}
	b := boxes[j]
	return b.HasElementType && b.ElementType.NeedsLookaheadOrphanPrevention()
}

// shouldPushHeadingForLookahead implements §4.5 rule 1: an H1/H2 that itself
// fits is still pushed to the next page if the next content box would land
// too close to the page bottom with no following major section to justify
// the break, or if there isn't even room for a minimal fragment of the next
// box. A next box that merely overflows the rest of the page but still has
// room for a MinFragmentHeight-sized piece is left alone — rule 4's
// overflow/split handling takes it from there, splitting it across the
// page boundary right after the heading instead of pushing the heading
// ahead of a box that would overflow on every following page just the same.
func shouldPushHeadingForLookahead(boxes []*domain.LayoutBox, i int, pageBottom, pageYOffset float64) bool {
	j := nextContentIndex(boxes, i+1)
	if j == -1 {
		return false
	}
	next := boxes[j]
	nextTop := next.Y - pageYOffset
	nextBottom := next.Bottom() - pageYOffset
	if nextBottom > pageBottom {
		return (pageBottom - nextTop) < MinFragmentHeight
	}
	if (pageBottom-nextBottom) < MinSpaceAfterHeading && !nextIsMajorSection(boxes, j) {
		return true
	}
	return false
}

// shouldPushH3ForSubtitle implements §4.5 rule 2: keep an H3, a short
// subtitle-like text box right after it, and the content after that
// together, rather than orphaning the H3 from its subtitle.
func shouldPushH3ForSubtitle(boxes []*domain.LayoutBox, i int, pageBottom, pageYOffset float64) bool {
	j := nextContentIndex(boxes, i+1)
	if j == -1 || !boxes[j].Content.IsText() {
		return false
	}
	subtitle := boxes[j]
	if subtitle.Height >= shortSubtitleMax {
		return false
	}
	subtitleBottom := subtitle.Bottom() - pageYOffset
	if subtitleBottom > pageBottom {
		return false // rule 4 (overflow) already handles this case
	}
	k := nextContentIndex(boxes, j+1)
	if k == -1 {
		return false
	}
	afterBottom := boxes[k].Bottom() - pageYOffset
	return afterBottom > pageBottom
}

// ComputeKeepWithNext is the §9 pre-pagination metadata pass: marks every
// box whose movement must cascade with the box(es) immediately following it
// — headings needing orphan prevention, and any box directly glued to one
// by the flattener's synthetic border box.
func ComputeKeepWithNext(boxes []*domain.LayoutBox) {
	for i, b := range boxes {
		if b.HasElementType && b.ElementType.NeedsOrphanPrevention() {
			b.KeepWithNext = true
			continue
		}
		if b.Content.IsEmpty() && i > 0 {
			prev := boxes[i-1]
			if prev.HasElementType && prev.ElementType.NeedsOrphanPrevention() {
				b.KeepWithNext = true
			}
		}
	}
}
