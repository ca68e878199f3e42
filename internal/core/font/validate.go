package font

import (
	"golang.org/x/image/font/sfnt"
)

// Validate implements §4.8's post-decompression checks, run after either
// decompressor produces sfnt bytes: the result must parse as a TrueType
// face, have at least one glyph, expose horizontal metrics for glyph 0, and
// map at least one of 'A', 'a', '0', ' ' to a real glyph.
func Validate(sfntBytes []byte) error {
	f, err := sfnt.Parse(sfntBytes)
	if err != nil {
		return &DecodeError{Format: "sfnt", Reason: "parse: " + err.Error()}
	}
	if f.NumGlyphs() == 0 {
		return &DecodeError{Format: "sfnt", Reason: "zero glyphs"}
	}
	var buf sfnt.Buffer
	if _, err := f.GlyphAdvance(&buf, 0, fixedPPEM, fontHintingNone); err != nil {
		return &DecodeError{Format: "sfnt", Reason: "glyph 0 has no horizontal metrics: " + err.Error()}
	}
	var sawOne bool
	for _, r := range []rune{'A', 'a', '0', ' '} {
		gi, err := f.GlyphIndex(&buf, r)
		if err == nil && gi != 0 {
			sawOne = true
			break
		}
	}
	if !sawOne {
		return &DecodeError{Format: "sfnt", Reason: "no glyph for any of 'A','a','0',' '"}
	}
	return nil
}
