// Package font implements C7, the font toolkit: decompressing WOFF/WOFF2
// web fonts into plain TrueType sfnt bytes, validating the result, subsetting
// to the glyphs a conversion actually uses, stripping hinting tables, and
// falling back to the PDF Standard-14 base fonts (with a Google-font
// detection registry deciding when that fallback is appropriate). Grounded
// on `chinmay-sawant/gopdfsuit`'s internal/pdf font-metrics/FontDescriptor
// tables (other_examples) for the Standard-14 path, and on
// golang.org/x/image/font/sfnt (present in the teacher's own indirect
// requires, and a direct dependency of iansmith-louis14/gompdf) for sfnt
// parsing and glyph metrics once a font is decompressed.
package font

import "fmt"

// MaxDecompressedSize is the §5 resource-policy default cap on decompressed
// font size (configurable per conversion).
const MaxDecompressedSize = 2 * 1024 * 1024

// DecodeError reports a font decoding failure; callers fall back to the
// nearest Standard-14 mapping per §7's asset-error policy rather than
// failing the whole conversion.
type DecodeError struct {
	Format string // "woff", "woff2", "sfnt"
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("font: %s decode failed: %s", e.Format, e.Reason)
}

// Variant identifies one (family, weight, italic) combination, the unit the
// renderer and PDF assembler key fonts by (§4.8: "family:weight:italic").
type Variant struct {
	Family string
	Weight int
	Italic bool
}

func (v Variant) Key() string {
	style := "n"
	if v.Italic {
		style = "i"
	}
	return fmt.Sprintf("%s:%d:%s", v.Family, v.Weight, style)
}
