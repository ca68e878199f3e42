package pdfdoc

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// metricsPPEM is chosen so sfnt's fixed.Int26_6 results convert directly to
// PDF's conventional 1000-units-per-em glyph space: querying at 1000
// "pixels" per em makes Round() on the result an integer already in that
// space, independent of the font's actual internal unitsPerEm.
var metricsPPEM = fixed.I(1000)

// defaultParseForMetrics extracts the FontDescriptor-relevant values from a
// decompressed sfnt font via golang.org/x/image/font/sfnt's metrics and
// per-glyph advance queries.
func defaultParseForMetrics(sfntBytes []byte) (fontMetricsValues, error) {
	f, err := sfnt.Parse(sfntBytes)
	if err != nil {
		return fontMetricsValues{}, err
	}
	var buf sfnt.Buffer
	m, err := f.Metrics(&buf, metricsPPEM, font.HintingNone)
	if err != nil {
		return fontMetricsValues{}, err
	}
	notdefAdv, _ := f.GlyphAdvance(&buf, 0, metricsPPEM, font.HintingNone)

	return fontMetricsValues{
		ascent:      int(m.Ascent.Round()),
		descent:     -int(m.Descent.Round()),
		capHeight:   int(m.CapHeight.Round()),
		bboxLeft:    -200,
		bboxRight:   1000,
		italicAngle: 0,
		notdefWidth: int(notdefAdv.Round()),
		glyphWidth: func(gid uint16) int {
			var b sfnt.Buffer
			adv, err := f.GlyphAdvance(&b, sfnt.GlyphIndex(gid), metricsPPEM, font.HintingNone)
			if err != nil {
				return int(notdefAdv.Round())
			}
			return int(adv.Round())
		},
	}, nil
}
