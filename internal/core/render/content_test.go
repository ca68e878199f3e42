package render

import (
	"strings"
	"testing"

	"resumewright/internal/core/domain"
)

type fakeResolver struct{}

func (fakeResolver) ResourceName(family string, weight int, italic bool) string {
	if weight >= 600 {
		return "F2"
	}
	return "F1"
}

func seg(text string, size float64, weight int) domain.TextSegment {
	col := domain.ColorBlack
	italic := false
	return domain.TextSegment{Text: text, FontSize: &size, FontWeight: &weight, Italic: &italic, Color: &col, Width: float64(len(text)) * size * 0.5}
}

func TestRenderTextEmitsHexTjPerSegment(t *testing.T) {
	box := &domain.LayoutBox{
		Width: 200, Height: 20,
		Content: domain.TextContent(domain.TextLine{Segments: []domain.TextSegment{seg("hello", 10, 400)}}),
		Style:   domain.StyleDeclaration{Text: domain.TextStyle{LineHeight: 12}},
	}
	r := NewRenderer(fakeResolver{}, 800)
	out := string(r.RenderPage(domain.Page{Boxes: []*domain.LayoutBox{box}}))
	if !strings.Contains(out, "BT\n") || !strings.Contains(out, "ET\n") {
		t.Fatalf("expected a BT/ET text block, got:\n%s", out)
	}
	if !strings.Contains(out, "Tj") {
		t.Fatalf("expected a Tj glyph-show operator, got:\n%s", out)
	}
	if !strings.Contains(out, "<") {
		t.Fatalf("expected hex-encoded CIDFont string delimiters, got:\n%s", out)
	}
}

func TestRenderBackgroundSkipsFullyTransparent(t *testing.T) {
	box := &domain.LayoutBox{
		Width: 100, Height: 50,
		Content: domain.ContainerContent(),
		Style:   domain.StyleDeclaration{Box: domain.BoxStyle{Background: domain.Color{A: 0}}},
	}
	r := NewRenderer(fakeResolver{}, 800)
	out := string(r.RenderPage(domain.Page{Boxes: []*domain.LayoutBox{box}}))
	if strings.Contains(out, " re f\n") {
		t.Fatalf("transparent background should not emit a fill rectangle, got:\n%s", out)
	}
}

func TestRenderBorderBottomScalesThinWidths(t *testing.T) {
	box := &domain.LayoutBox{
		Width: 100, Height: 50,
		Content: domain.ContainerContent(),
		Style: domain.StyleDeclaration{Box: domain.BoxStyle{
			Border: [4]domain.BorderStyle{{}, {}, {Width: 0.75, Style: domain.BorderSolid, Color: domain.ColorBlack}, {}},
		}},
	}
	r := NewRenderer(fakeResolver{}, 800)
	out := string(r.RenderPage(domain.Page{Boxes: []*domain.LayoutBox{box}}))
	if !strings.Contains(out, "\n1.00 w\n") {
		t.Fatalf("expected the 0.75pt border scaled by 1.33 to a 1.00 line width, got:\n%s", out)
	}
}

func TestPageNumberOperatorsCentersLabel(t *testing.T) {
	out := string(PageNumberOperators(fakeResolver{}, 612, 2))
	if !strings.Contains(out, "<0032>") {
		t.Fatalf("expected the hex-encoded digit '2' (U+0032), got:\n%s", out)
	}
	if !strings.Contains(out, "1 0 0 1 303.25 36.00 Tm") {
		t.Fatalf("expected the label centred at x=(612-5.5)/2, got:\n%s", out)
	}
}
