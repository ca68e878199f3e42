package resumewright

import (
	"golang.org/x/image/font/sfnt"

	"resumewright/internal/core/font"
	"resumewright/internal/core/jsx"
	"resumewright/internal/core/style"
	"resumewright/internal/core/tree"
	"resumewright/internal/pkg/perrors"
)

// FontData is one caller-supplied embeddable font (§6 FontCollection:
// "List of FontData{family, weight, italic, bytes}").
type FontData struct {
	Family string
	Weight int
	Italic bool
	Bytes  []byte // TTF or WOFF/WOFF2
}

// FontCollection is the §6 FontCollection, keyed implicitly by
// family:weight:italic (font.Variant.Key()) once indexed.
type FontCollection []FontData

func (fc FontCollection) index() map[string]FontData {
	out := make(map[string]FontData, len(fc))
	for _, fd := range fc {
		key := font.Variant{Family: fd.Family, Weight: fd.Weight, Italic: fd.Italic}.Key()
		out[key] = fd
	}
	return out
}

// FontRequirement is one entry of detect_fonts's result (§6): a
// (family, weight, italic) combination a document actually uses, annotated
// with whether the font toolkit's web-safe mapping (§4.8) can already
// satisfy it without a caller-supplied asset.
type FontRequirement struct {
	Family       string
	Weight       int
	Italic       bool
	IsStandard14 bool
	IsGoogleFont bool
}

// DetectFonts parses tsx and reports every distinct font variant it uses,
// without running layout or pagination — a cheap pre-pass over the resolved
// tree, grounded the same way CVMetadata's font_complexity count is (§3
// [EXPANDED]).
func DetectFonts(tsx string) ([]FontRequirement, error) {
	root, err := parseTSX(tsx)
	if err != nil {
		return nil, err
	}
	t := tree.Build(root, style.RootContext())

	seen := make(map[string]bool)
	var out []FontRequirement
	var walk func(n *tree.Node)
	walk = func(n *tree.Node) {
		if n == nil {
			return
		}
		if n.Kind == tree.KindText {
			for _, run := range n.Runs {
				addFontRequirement(&seen, &out, run.Style.FontFamily, run.Style.FontWeight, run.Style.Italic)
			}
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(t)
	return out, nil
}

func addFontRequirement(seen *map[string]bool, out *[]FontRequirement, family string, weight int, italic bool) {
	key := font.Variant{Family: family, Weight: weight, Italic: italic}.Key()
	if (*seen)[key] {
		return
	}
	(*seen)[key] = true
	*out = append(*out, FontRequirement{
		Family:       family,
		Weight:       weight,
		Italic:       italic,
		IsStandard14: font.StandardBaseName(family) != "",
		IsGoogleFont: font.IsGoogleFont(family),
	})
}

// parseTSX wraps the jsx adapter, reclassifying its error as the §7 input
// class per ConversionError's taxonomy.
func parseTSX(tsx string) (*jsx.Node, error) {
	root, err := jsx.FromHTML(tsx)
	if err != nil {
		return nil, perrors.NewTSXParseError(stageParsing, "failed to parse TSX markup", err)
	}
	return root, nil
}

// buildMeasurer decodes every supplied font asset into a parsed sfnt face
// (falling back silently to the heuristic measurer for any asset that
// fails to decode — §7's asset-error policy applies identically to
// measurement as it does to embedding, since both read the same bytes).
func buildMeasurer(fonts FontCollection) *font.Measurer {
	m := font.NewMeasurer()
	for _, fd := range fonts {
		sfntBytes, err := decodeFontAsset(fd.Bytes)
		if err != nil {
			continue
		}
		f, err := sfnt.Parse(sfntBytes)
		if err != nil {
			continue
		}
		key := font.Variant{Family: fd.Family, Weight: fd.Weight, Italic: fd.Italic}.Key()
		m.AddFace(key, f)
	}
	return m
}

func decodeFontAsset(data []byte) ([]byte, error) {
	switch {
	case len(data) >= 4 && string(data[0:4]) == "wOFF":
		return font.DecompressWOFF(data, 0)
	case len(data) >= 4 && string(data[0:4]) == "wOF2":
		return font.DecompressWOFF2(data, 0)
	default:
		if err := font.Validate(data); err != nil {
			return nil, err
		}
		return data, nil
	}
}
