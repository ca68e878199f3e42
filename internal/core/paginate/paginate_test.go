package paginate

import (
	"testing"

	"resumewright/internal/core/domain"
)

func textBox(y, height float64, lines int, et domain.ElementType, hasET bool) *domain.LayoutBox {
	ls := make([]domain.TextLine, lines)
	lineHeight := height / float64(lines)
	return &domain.LayoutBox{
		Y: y, Height: height, Width: 400,
		Content:        domain.TextContent(ls...),
		Style:          domain.StyleDeclaration{Text: domain.TextStyle{LineHeight: lineHeight}},
		ElementType:    et,
		HasElementType: hasET,
	}
}

func TestPaginateSinglePageFitsWithoutBreaking(t *testing.T) {
	boxes := []*domain.LayoutBox{
		textBox(0, 20, 2, domain.Paragraph, true),
		textBox(20, 20, 2, domain.Paragraph, true),
	}
	out := Paginate(boxes, 0, 500)
	if len(out.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(out.Pages))
	}
	if len(out.Pages[0].Boxes) != 2 {
		t.Fatalf("expected both boxes on the page, got %d", len(out.Pages[0].Boxes))
	}
}

func TestPaginateOverflowStartsNewPage(t *testing.T) {
	boxes := []*domain.LayoutBox{
		textBox(0, 80, 4, domain.Paragraph, true),
		textBox(80, 80, 4, domain.Paragraph, true),
	}
	out := Paginate(boxes, 0, 100)
	if len(out.Pages) < 2 {
		t.Fatalf("expected the second box to overflow onto a new page, got %d pages", len(out.Pages))
	}
}

func TestPaginateThresholdRulePushesHeadingAcrossPage(t *testing.T) {
	boxes := []*domain.LayoutBox{
		textBox(0, 380, 4, domain.Paragraph, true),
		textBox(380, 10, 1, domain.Heading3, true),
		textBox(390, 40, 4, domain.Paragraph, true),
	}
	out := Paginate(boxes, 0, 400)
	if len(out.Pages) < 2 {
		t.Fatalf("expected the heading to be pushed to page 2, got %d pages", len(out.Pages))
	}
	firstPage := out.Pages[0]
	for _, b := range firstPage.Boxes {
		if b.HasElementType && b.ElementType == domain.Heading3 {
			t.Fatal("heading should have been pushed off page 1 by the threshold rule")
		}
	}
}

func TestComputeKeepWithNextMarksHeadings(t *testing.T) {
	boxes := []*domain.LayoutBox{
		textBox(0, 10, 1, domain.Heading2, true),
		textBox(10, 20, 2, domain.Paragraph, true),
	}
	ComputeKeepWithNext(boxes)
	if !boxes[0].KeepWithNext {
		t.Fatal("expected heading to be marked KeepWithNext")
	}
}

func TestSplitTextEnforcesWidowOrphanRule(t *testing.T) {
	b := textBox(0, 30, 3, domain.Paragraph, true) // 10pt lines
	// Splitting at y=10 would leave 1 line in the first fragment: rejected.
	_, _, ok := splitText(b, 10)
	if ok {
		t.Fatal("expected widow/orphan rule to reject a 1-line-vs-2-line split")
	}
	// Splitting at y=20 leaves 2 and 1: still rejected (remaining < 2).
	_, _, ok = splitText(b, 20)
	if ok {
		t.Fatal("expected widow/orphan rule to reject a 2-line-vs-1-line split")
	}
}

func TestSplitEmptyBoxNeverSplits(t *testing.T) {
	b := &domain.LayoutBox{Content: domain.EmptyContent(), Height: 0}
	_, _, ok := split(b, 0)
	if ok {
		t.Fatal("Empty boxes must never split")
	}
}

// TestPaginateHeadingStaysWithOverflowingBlock covers the Letter/54pt-margin
// heading-followed-by-a-taller-than-one-page-block case: the heading has
// full room to fit and the block after it cannot fit on any single page no
// matter which page it starts on, so pushing the heading ahead of it would
// never produce a page where the lookahead check passes. The heading must
// stay put and the block split right after it instead.
func TestPaginateHeadingStaysWithOverflowingBlock(t *testing.T) {
	const contentHeight = 684.0 // Letter(792) - 2*54pt margin
	boxes := []*domain.LayoutBox{
		textBox(0, 20, 1, domain.Heading2, true),
		textBox(20, 700, 40, domain.Paragraph, true),
	}
	out := Paginate(boxes, 0, contentHeight)
	if len(out.Pages) < 2 {
		t.Fatalf("expected the tall block to split across at least 2 pages, got %d", len(out.Pages))
	}
	firstPage := out.Pages[0]
	if len(firstPage.Boxes) != 2 {
		t.Fatalf("expected the heading and the start of the block on page 1, got %d boxes", len(firstPage.Boxes))
	}
	if !(firstPage.Boxes[0].HasElementType && firstPage.Boxes[0].ElementType == domain.Heading2) {
		t.Fatal("expected the heading to remain the first box on page 1")
	}
}
