package domain

// TextSegment is one run of text with optional style overrides (§3). A nil
// field inherits the enclosing paragraph/line style; a non-nil field
// overrides it for this segment only.
type TextSegment struct {
	Text           string
	FontSize       *float64
	FontWeight     *int
	Italic         *bool
	Color          *Color
	TextDecoration *TextDecoration

	// Width is the measured advance width in points at the segment's
	// resolved font size, filled in by the box solver's text pass (§4.3).
	Width float64
}

// ResolvedFontSize returns the segment's font size, falling back to the
// enclosing line's.
func (t TextSegment) ResolvedFontSize(fallback float64) float64 {
	if t.FontSize != nil {
		return *t.FontSize
	}
	return fallback
}

func (t TextSegment) ResolvedFontWeight(fallback int) int {
	if t.FontWeight != nil {
		return *t.FontWeight
	}
	return fallback
}

func (t TextSegment) ResolvedItalic(fallback bool) bool {
	if t.Italic != nil {
		return *t.Italic
	}
	return fallback
}

func (t TextSegment) ResolvedColor(fallback Color) Color {
	if t.Color != nil {
		return *t.Color
	}
	return fallback
}

func (t TextSegment) ResolvedDecoration(fallback TextDecoration) TextDecoration {
	if t.TextDecoration != nil {
		return *t.TextDecoration
	}
	return fallback
}

// TextLine is one shaped line of text: an ordered sequence of segments (§3).
// A paragraph becomes N TextLines after wrapping.
type TextLine struct {
	Segments []TextSegment
}

// PlainText concatenates every segment's text, for ATS text extraction and
// for the "Native: Russian" style scenarios in §8.
func (l TextLine) PlainText() string {
	out := make([]byte, 0, 64)
	for _, seg := range l.Segments {
		out = append(out, seg.Text...)
	}
	return string(out)
}

// Width sums segment advance widths.
func (l TextLine) Width() float64 {
	var w float64
	for _, seg := range l.Segments {
		w += seg.Width
	}
	return w
}
