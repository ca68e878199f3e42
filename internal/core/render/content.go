// Package render implements C6, the content-stream renderer: it walks the
// paginated box tree (C5) and emits raw PDF content-stream operators
// directly, not through a high-level library API, since PDF/A CIDFont +
// ToUnicode output needs exact control over operator emission that no
// library in the pack exposes. Grounded on the teacher's PDFRenderer
// (engine/render/pdf.go: RenderElement/RenderText/renderBackground/
// renderBorder/mapFontFamily/mapFontStyle) for overall shape, generalized
// from gofpdf calls to literal operator strings, and on
// chinmay-sawant/gopdfsuit's internal/pdf fmt.Sprintf-based object/operator
// construction style (other_examples) for how those strings are built.
package render

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"

	"resumewright/internal/core/domain"
)

// kappa approximates a quarter circle with a cubic Bézier arc (§4.7).
const kappa = 0.552284749

// FontResolver maps a resolved text style to the content-stream font
// resource name (e.g. "F1") the page's /Resources /Font dictionary binds to
// an embedded or Standard-14 font (§4.7, §4.8). Supplied by the PDF
// assembler (C8), which is the component that actually knows which fonts
// got embedded under which names.
type FontResolver interface {
	ResourceName(family string, weight int, italic bool) string
}

// Renderer emits content-stream operators for one page at a time.
type Renderer struct {
	resolver   FontResolver
	pageHeight float64
}

func NewRenderer(resolver FontResolver, pageHeight float64) *Renderer {
	return &Renderer{resolver: resolver, pageHeight: pageHeight}
}

// RenderPage returns the content-stream bytes for one page of boxes,
// flipping CSS top-left Y coordinates to PDF bottom-left using pageHeight.
func (r *Renderer) RenderPage(page domain.Page) []byte {
	var buf strings.Builder
	state := &textState{}
	for _, b := range page.Boxes {
		r.renderBox(&buf, b, state)
	}
	return []byte(buf.String())
}

// renderBox emits one box's content in the §4.7 order: background, bullet,
// text, decorations, border-bottom, then recurses into any preserved
// container's children (still in their own local coordinates, per §4.4).
func (r *Renderer) renderBox(buf *strings.Builder, b *domain.LayoutBox, state *textState) {
	r.renderBackground(buf, b)
	if b.HasElementType && b.ElementType == domain.ListItem {
		r.renderBullet(buf, b)
	}
	if b.Content.IsText() {
		r.renderText(buf, b, state)
	}
	r.renderBorderBottom(buf, b)
	if b.Content.IsContainer() {
		for _, child := range b.Content.Children {
			r.renderBox(buf, child, state)
		}
	}
}

func (r *Renderer) flipY(y float64) float64 { return r.pageHeight - y }

// renderBackground emits a non-stroking fill rectangle (§4.7 step 1).
func (r *Renderer) renderBackground(buf *strings.Builder, b *domain.LayoutBox) {
	bg := b.Style.Box.Background
	if bg.A == 0 {
		return
	}
	top := r.flipY(b.Y)
	fmt.Fprintf(buf, "%s rg\n%s %s %s %s re f\n",
		rgbOperands(bg),
		fnum(b.X), fnum(top-b.Height), fnum(b.Width), fnum(b.Height))
}

// renderBullet draws a filled circle approximated by four cubic Bézier
// curves (§4.7 step 2), offset one line-height's leading so it lines up
// with the first line of text optically.
func (r *Renderer) renderBullet(buf *strings.Builder, b *domain.LayoutBox) {
	if !b.Content.IsContainer() || len(b.Content.Children) == 0 {
		return
	}
	first := b.Content.Children[0]
	if !first.Content.IsText() || len(first.Content.Lines) == 0 {
		return
	}
	lineHeight := first.Style.Text.LineHeight
	radius := lineHeight * 0.12
	cx := b.X + radius*1.5
	cy := r.flipY(first.Y) - lineHeight*0.65
	k := radius * kappa

	fmt.Fprintf(buf, "%s rg\n", rgbOperands(first.Style.Text.Color))
	fmt.Fprintf(buf, "%s %s m\n", fnum(cx+radius), fnum(cy))
	fmt.Fprintf(buf, "%s %s %s %s %s %s c\n", fnum(cx+radius), fnum(cy+k), fnum(cx+k), fnum(cy+radius), fnum(cx), fnum(cy+radius))
	fmt.Fprintf(buf, "%s %s %s %s %s %s c\n", fnum(cx-k), fnum(cy+radius), fnum(cx-radius), fnum(cy+k), fnum(cx-radius), fnum(cy))
	fmt.Fprintf(buf, "%s %s %s %s %s %s c\n", fnum(cx-radius), fnum(cy-k), fnum(cx-k), fnum(cy-radius), fnum(cx), fnum(cy-radius))
	fmt.Fprintf(buf, "%s %s %s %s %s %s c\nf\n", fnum(cx+k), fnum(cy-radius), fnum(cx+radius), fnum(cy-k), fnum(cx+radius), fnum(cy))
}

// textState tracks the last Tf/color emitted, so per-segment state changes
// (§4.7 step 3) only emit an operator when something actually changed.
type textState struct {
	font     string
	size     float64
	haveFont bool
	color    domain.Color
	haveCol  bool
}

// renderText emits one BT...ET block per line, one Tf + color change per
// distinct segment style, and glyphs as hex CIDFont Type 2 strings (§4.7
// step 3, §4.9: big-endian UTF-16 code units, one Tj run per segment).
func (r *Renderer) renderText(buf *strings.Builder, b *domain.LayoutBox, state *textState) {
	paddingLeft := b.Style.Box.Padding.Left + b.Style.Box.Border[3].Width
	contentX := b.X + paddingLeft
	lineHeight := b.Style.Text.LineHeight
	baselineOffset := lineHeight * 0.8
	contentTop := b.Y + b.Style.Box.Padding.Top + b.Style.Box.Border[0].Width

	for i, line := range b.Content.Lines {
		if len(line.Segments) == 0 {
			continue
		}
		lineTop := contentTop + float64(i)*lineHeight
		baseline := r.flipY(lineTop + baselineOffset)
		lineLeft := contentX
		align := b.Style.Text.Align
		if align == domain.TextAlignCenter || align == domain.TextAlignRight {
			contentWidth := b.Width - b.Style.Box.Padding.Horizontal() - b.Style.Box.Border[1].Width - b.Style.Box.Border[3].Width
			free := contentWidth - line.Width()
			if free > 0 {
				if align == domain.TextAlignCenter {
					lineLeft += free / 2
				} else {
					lineLeft += free
				}
			}
		}

		buf.WriteString("BT\n")
		x := lineLeft
		for _, seg := range line.Segments {
			fontSize := *seg.FontSize
			weight := *seg.FontWeight
			italic := *seg.Italic
			color := *seg.Color
			fontKey := r.resolver.ResourceName(b.Style.Text.FontFamily, weight, italic)

			if !state.haveFont || state.font != fontKey || state.size != fontSize {
				fmt.Fprintf(buf, "/%s %s Tf\n", fontKey, fnum(fontSize))
				state.font, state.size, state.haveFont = fontKey, fontSize, true
			}
			if !state.haveCol || state.color != color {
				fmt.Fprintf(buf, "%s rg\n", rgbOperands(color))
				state.color, state.haveCol = color, true
			}
			fmt.Fprintf(buf, "1 0 0 1 %s %s Tm\n<%s> Tj\n", fnum(x), fnum(baseline), hexEncode(seg.Text))
			r.renderDecoration(buf, seg, x, lineTop, fontSize)
			x += seg.Width
		}
		buf.WriteString("ET\n")
	}
}

// renderDecoration strokes an underline/strikethrough at the positions
// fixed by §4.7 step 4, relative to a segment's own line top.
func (r *Renderer) renderDecoration(buf *strings.Builder, seg domain.TextSegment, x, lineTop, fontSize float64) {
	dec := domain.TextDecorationNone
	if seg.TextDecoration != nil {
		dec = *seg.TextDecoration
	}
	if dec == domain.TextDecorationNone || seg.Width == 0 {
		return
	}
	var yOffset float64
	switch dec {
	case domain.TextDecorationUnderline:
		yOffset = fontSize * 0.8 + fontSize*0.1
	case domain.TextDecorationLineThrough:
		yOffset = fontSize*0.8 - fontSize*0.3
	default:
		return
	}
	y := r.flipY(lineTop + yOffset)
	color := domain.ColorBlack
	if seg.Color != nil {
		color = *seg.Color
	}
	fmt.Fprintf(buf, "%s RG\n0.5 w\n%s %s m %s %s l S\n", rgbOperands(color), fnum(x), fnum(y), fnum(x+seg.Width), fnum(y))
}

// renderBorderBottom strokes the bottom border (§4.7 step 5): dash pattern
// by style, effective width scaled up (≤1pt -> 1.33x, else 1.67x) to
// stay visually distinct at print sizes.
func (r *Renderer) renderBorderBottom(buf *strings.Builder, b *domain.LayoutBox) {
	border := b.Style.Box.Border[2]
	if !border.Visible() {
		return
	}
	width := border.Width
	if width <= 1 {
		width *= 1.33
	} else {
		width *= 1.67
	}
	var dash string
	switch border.Style {
	case domain.BorderDashed:
		dash = "[3 2] 0 d\n"
	case domain.BorderDotted:
		dash = "[1 1] 0 d\n"
	default:
		dash = "[] 0 d\n"
	}
	y := r.flipY(b.Bottom())
	fmt.Fprintf(buf, "%s RG\n%s\n%s w\n%s %s m %s %s l S\n",
		rgbOperands(border.Color), dash, fnum(width), fnum(b.X), fnum(y), fnum(b.Right()), fnum(y))
}

// PageNumberOperators renders the centered gray page number used on every
// page after the first (§4.7, 10pt gray, 36pt from the bottom edge).
func PageNumberOperators(resolver FontResolver, pageWidth float64, pageNumber int) []byte {
	label := strconv.Itoa(pageNumber)
	font := resolver.ResourceName("Helvetica", 400, false)
	approxWidth := float64(len(label)) * 10 * 0.55
	x := (pageWidth - approxWidth) / 2
	var buf strings.Builder
	fmt.Fprintf(&buf, "BT\n/%s 10 Tf\n0.45 0.45 0.45 rg\n1 0 0 1 %s %s Tm\n<%s> Tj\nET\n",
		font, fnum(x), fnum(36), hexEncode(label))
	return []byte(buf.String())
}

// fnum formats a coordinate/length with fixed 2-decimal precision,
// deterministic across runs (§4.7 — "no timestamp from the system clock" is
// the sibling requirement; this is its numeric-formatting counterpart).
func fnum(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func rgbOperands(c domain.Color) string {
	return fmt.Sprintf("%s %s %s", fnum(float64(c.R)/255), fnum(float64(c.G)/255), fnum(float64(c.B)/255))
}

// hexEncode produces the big-endian UTF-16 hex string Identity-H CIDFont
// Type 2 text expects: one 16-bit code per character (§4.9).
func hexEncode(s string) string {
	var sb strings.Builder
	for _, r := range s {
		units := utf16.Encode([]rune{r})
		for _, u := range units {
			fmt.Fprintf(&sb, "%04X", u)
		}
	}
	return sb.String()
}
