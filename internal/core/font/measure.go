package font

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"resumewright/internal/core/domain"
)

const fontHintingNone = font.HintingNone

// fixedPPEM is an arbitrary large em-square used for glyph-metric queries;
// results are rescaled to the requested point size, matching the approach
// the teacher's box/text estimation replaces (TextEngine.estimateCharWidth
// in engine/layout/text.go) but with real glyph advances instead of a
// weight/family heuristic.
var fixedPPEM = fixed.I(1000)

// Measurer implements box.TextMeasurer using real glyph advance widths from
// a set of parsed sfnt faces, one per (family, weight, italic) variant, with
// the box package's HeuristicMeasurer as the fallback for any text in a
// variant whose font failed to decode or was never supplied (§7's
// per-font-falls-back-and-continues asset error policy).
type Measurer struct {
	mu       sync.Mutex
	faces    map[string]*sfnt.Font
	fallback domain.TextStyle // unused placeholder kept for symmetry with callers
	buf      sfnt.Buffer
}

func NewMeasurer() *Measurer {
	return &Measurer{faces: make(map[string]*sfnt.Font)}
}

// AddFace registers a parsed face under the given variant key
// (Variant.Key()); MeasureWidth falls back to the heuristic estimator for
// any style whose key was never registered.
func (m *Measurer) AddFace(key string, f *sfnt.Font) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.faces[key] = f
}

func (m *Measurer) MeasureWidth(text string, s domain.TextStyle) float64 {
	if text == "" {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := Variant{Family: s.FontFamily, Weight: s.FontWeight, Italic: s.Italic}.Key()
	f, ok := m.faces[key]
	if !ok {
		return heuristicFallback{}.MeasureWidth(text, s)
	}
	var w float64
	for _, r := range text {
		gi, err := f.GlyphIndex(&m.buf, r)
		if err != nil {
			w += s.FontSize * 0.5
			continue
		}
		adv, err := f.GlyphAdvance(&m.buf, gi, fixedPPEM, fontHintingNone)
		if err != nil {
			w += s.FontSize * 0.5
			continue
		}
		w += (float64(adv) / float64(fixedPPEM)) * s.FontSize
	}
	w += s.LetterSpacing * float64(len([]rune(text))-1)
	if w < 0 {
		w = 0
	}
	return w
}

// heuristicFallback mirrors box.HeuristicMeasurer without importing the box
// package (font is lower in the dependency graph than box), so a variant
// with no registered face still gets a plausible width instead of zero.
type heuristicFallback struct{}

func (heuristicFallback) MeasureWidth(text string, s domain.TextStyle) float64 {
	base := 0.5
	if s.FontWeight >= 600 {
		base += 0.03
	}
	if s.Italic {
		base += 0.01
	}
	var w float64
	for _, r := range text {
		cw := base
		switch {
		case r == ' ':
			cw = 0.28
		case r >= 'A' && r <= 'Z':
			cw += 0.08
		case r == 'i' || r == 'l' || r == 'I' || r == '.' || r == ',':
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
