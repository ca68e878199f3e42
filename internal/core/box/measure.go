// Package box implements C3, the box solver: a two-pass block + flex layout
// engine computing x/y/width/height for every node given a content area.
// Grounded on the teacher's internal/core/engine/layout.BoxCalculator
// (content/padding/border/margin box composition, box.go) and FlowEngine
// (block stacking, flex distribution, flow.go), generalized from the
// teacher's px-based estimation to exact per-segment glyph widths and real
// flex-grow/shrink/justify-content/align-items per §4.3.
package box

import "resumewright/internal/core/domain"

// TextMeasurer returns the advance width, in points, of a run of text set
// in the given resolved text style. The box solver never measures glyphs
// itself — per §4.3, a measurement callback is injected so the same solver
// works whether or not real font metrics (C7) are available.
type TextMeasurer interface {
	MeasureWidth(text string, s domain.TextStyle) float64
}

// HeuristicMeasurer approximates glyph widths as a fraction of font size per
// character, modulated by weight and italic, with no real font data. It
// exists for standalone box-solver tests and as a fallback; production
// conversions wire in font.Measurer (C7), which uses actual glyph advance
// widths. Grounded on the teacher's TextEngine.estimateCharWidth
// (weight/family multipliers).
type HeuristicMeasurer struct{}

func (HeuristicMeasurer) MeasureWidth(text string, s domain.TextStyle) float64 {
	if text == "" {
		return 0
	}
	base := 0.5 // average glyph width as a fraction of font size
	if s.FontWeight >= 600 {
		base += 0.03
	}
	if s.Italic {
		base += 0.01
	}
	var w float64
	for _, r := range text {
		cw := base
		if r == ' ' {
			cw = 0.28
		} else if r >= 'A' && r <= 'Z' {
			cw += 0.08
		} else if r == 'i' || r == 'l' || r == 'I' || r == '.' || r == ',' {
			cw -= 0.25
		}
		w += cw * s.FontSize
	}
	w += s.LetterSpacing * float64(len([]rune(text))-1)
	if w < 0 {
		w = 0
	}
	return w
}
