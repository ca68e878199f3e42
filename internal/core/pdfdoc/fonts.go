package pdfdoc

import (
	"bytes"
	"compress/flate"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf16"

	"resumewright/internal/core/domain"
	"resumewright/internal/core/font"
)

// FontAsset is one caller-supplied font binary (TTF, WOFF, or WOFF2 bytes),
// keyed by font.Variant.Key() in a FontCollection (§6's FontData, minus the
// family/weight/italic fields which become the map key).
type FontAsset struct {
	Bytes []byte
}

// FontCollection is the §6 FontCollection: every font the caller supplied,
// keyed by Variant.Key().
type FontCollection map[string]FontAsset

var errNoAsset = errors.New("pdfdoc: no font asset supplied for this variant")

// FontManager discovers the (family, weight, italic) variants a laid-out
// document actually uses, assigns each a deterministic content-stream
// resource name, and embeds the corresponding PDF font objects. It
// implements render.FontResolver so the same instance drives both the
// discovery walk and the real content-stream render pass.
type FontManager struct {
	order []font.Variant
	seen  map[string]bool
	names map[string]string
	text  map[string]*strings.Builder
}

func NewFontManager() *FontManager {
	return &FontManager{
		seen:  make(map[string]bool),
		names: make(map[string]string),
		text:  make(map[string]*strings.Builder),
	}
}

// Collect walks a full paginated document in page/box order, registering
// every text variant it finds and accumulating the union string of
// characters each variant renders — the input the subsetter needs (§4.8).
func (fm *FontManager) Collect(layout domain.LayoutStructure) {
	for _, page := range layout.Pages {
		for _, b := range page.Boxes {
			fm.collectBox(b)
		}
	}
}

func (fm *FontManager) collectBox(b *domain.LayoutBox) {
	if b.Content.IsText() {
		for _, line := range b.Content.Lines {
			for _, seg := range line.Segments {
				v := font.Variant{
					Family: b.Style.Text.FontFamily,
					Weight: seg.ResolvedFontWeight(b.Style.Text.FontWeight),
					Italic: seg.ResolvedItalic(b.Style.Text.Italic),
				}
				fm.register(v, seg.Text)
			}
		}
	}
	if b.Content.IsContainer() {
		for _, child := range b.Content.Children {
			fm.collectBox(child)
		}
	}
}

func (fm *FontManager) register(v font.Variant, text string) {
	key := v.Key()
	if !fm.seen[key] {
		fm.seen[key] = true
		fm.order = append(fm.order, v)
		fm.names[key] = fmt.Sprintf("F%d", len(fm.order))
		fm.text[key] = &strings.Builder{}
	}
	fm.text[key].WriteString(text)
}

// ResourceName implements render.FontResolver. The real render pass walks
// the identical box tree Collect already walked, in the same order, so
// every call here hits an already-assigned name; the registration branch
// only guards against a variant render reaches that collection somehow
// missed.
func (fm *FontManager) ResourceName(family string, weight int, italic bool) string {
	v := font.Variant{Family: family, Weight: weight, Italic: italic}
	key := v.Key()
	if name, ok := fm.names[key]; ok {
		return name
	}
	fm.register(v, "")
	return fm.names[key]
}

// Embed writes one font object (Type1 for an unembedded Standard-14
// substitute, or a full Type0/CIDFontType2 graph for an embedded asset) per
// variant Collect discovered, per §4.9's embedding algorithm, and returns
// the object ID to reference from each page's /Resources /Font dictionary.
func (fm *FontManager) Embed(w *Writer, assets FontCollection, forcePDFA bool) map[string]int {
	out := make(map[string]int, len(fm.order))
	for _, v := range fm.order {
		key := v.Key()
		name := fm.names[key]
		asset, haveAsset := assets[key]
		base := font.StandardBaseName(v.Family)

		if base != "" && !haveAsset {
			out[name] = fm.writeStandard14(w, base, v)
			continue
		}

		sfntBytes, err := resolveTTF(asset, haveAsset)
		if err != nil {
			out[name] = fm.writeStandardFallback(w, base, v)
			continue
		}
		id, err := fm.embedType0(w, sfntBytes, fm.text[key].String(), v)
		if err != nil {
			out[name] = fm.writeStandardFallback(w, base, v)
			continue
		}
		out[name] = id
	}
	return out
}

func (fm *FontManager) writeStandard14(w *Writer, base string, v font.Variant) int {
	id := w.Alloc()
	w.WriteObject(id, fmt.Sprintf("<< /Type /Font /Subtype /Type1 /BaseFont /%s >>",
		font.StandardFontName(base, v.Weight, v.Italic)))
	return id
}

// writeStandardFallback is the §7 asset-error recovery path: per-font,
// substitute the nearest Standard-14 name and keep going rather than
// failing the whole conversion.
func (fm *FontManager) writeStandardFallback(w *Writer, base string, v font.Variant) int {
	if base == "" {
		base = "Helvetica"
	}
	return fm.writeStandard14(w, base, v)
}

// resolveTTF decompresses a supplied font asset (detecting WOFF/WOFF2 by
// magic, otherwise assuming already-plain TTF) and validates the result.
func resolveTTF(asset FontAsset, haveAsset bool) ([]byte, error) {
	if !haveAsset {
		return nil, errNoAsset
	}
	data := asset.Bytes
	var sfntBytes []byte
	var err error
	switch {
	case len(data) >= 4 && string(data[0:4]) == "wOFF":
		sfntBytes, err = font.DecompressWOFF(data, 0)
	case len(data) >= 4 && string(data[0:4]) == "wOF2":
		sfntBytes, err = font.DecompressWOFF2(data, 0)
	default:
		sfntBytes = data
	}
	if err != nil {
		return nil, err
	}
	if err := font.Validate(sfntBytes); err != nil {
		return nil, err
	}
	return sfntBytes, nil
}

// fallbackStemV is the spec-mandated default (§4.9: "clamped [50,200],
// fallback 80") used in place of a real glyph-bbox stroke-width
// measurement — see DESIGN.md for why that measurement isn't attempted.
const fallbackStemV = 80

// embedType0 builds the full Type0/CIDFontType2 object graph for one
// embedded, subsetted font: FontFile2 (flate-compressed TTF), a
// FontDescriptor, the CIDFontType2 descendant font (with its
// CIDToGIDMap stream and W-array), and the top-level Type0 font with its
// ToUnicode CMap. Grounded on unidoc's compositeFontDicts shape
// (other_examples/be1661d0_...font_test.go.go) for the dictionary fields.
func (fm *FontManager) embedType0(w *Writer, sfntBytes []byte, text string, v font.Variant) (int, error) {
	subset, cidToGID, err := font.Subset(sfntBytes, text)
	if err != nil {
		return 0, err
	}
	stripped, err := font.StripHinting(subset)
	if err != nil {
		stripped = subset
	}

	var flated bytes.Buffer
	fw, _ := flate.NewWriter(&flated, flate.DefaultCompression)
	fw.Write(stripped)
	fw.Close()

	fileID := w.Alloc()
	w.WriteStream(fileID, fmt.Sprintf("/Filter /FlateDecode /Length1 %d", len(stripped)), flated.Bytes())

	mx := fontMetrics(stripped)

	baseName := strings.ReplaceAll(v.Family, " ", "") + variantSuffix(v)

	descID := w.Alloc()
	w.WriteObject(descID, fmt.Sprintf(
		"<< /Type /FontDescriptor /FontName /%s /Flags 32 /FontBBox [%d %d %d %d] /ItalicAngle %d /Ascent %d /Descent %d /CapHeight %d /StemV %d /FontFile2 %d 0 R >>",
		baseName, mx.bboxLeft, mx.descent, mx.bboxRight, mx.ascent, mx.italicAngle, mx.ascent, mx.descent, mx.capHeight, fallbackStemV, fileID))

	cidMap := font.CIDToGIDTable(cidToGID)
	var flatedMap bytes.Buffer
	mw, _ := flate.NewWriter(&flatedMap, flate.DefaultCompression)
	mw.Write(cidMap)
	mw.Close()
	cidMapID := w.Alloc()
	w.WriteStream(cidMapID, "/Filter /FlateDecode", flatedMap.Bytes())

	dw := mx.notdefWidth
	wArray := buildWArray(cidToGID, mx)

	cidFontID := w.Alloc()
	w.WriteObject(cidFontID, fmt.Sprintf(
		"<< /Type /Font /Subtype /CIDFontType2 /BaseFont /%s /CIDSystemInfo << /Registry (Adobe) /Ordering (Identity) /Supplement 0 >> /FontDescriptor %d 0 R /DW %d /W %s /CIDToGIDMap %d 0 R >>",
		baseName, descID, dw, wArray, cidMapID))

	toUnicodeID := w.Alloc()
	cmap := buildToUnicodeCMap(cidToGID)
	w.WriteStream(toUnicodeID, "/Filter /FlateDecode", flateBytes(cmap))

	type0ID := w.Alloc()
	w.WriteObject(type0ID, fmt.Sprintf(
		"<< /Type /Font /Subtype /Type0 /BaseFont /%s /Encoding /Identity-H /DescendantFonts [%d 0 R] /ToUnicode %d 0 R >>",
		baseName, cidFontID, toUnicodeID))

	return type0ID, nil
}

func flateBytes(b []byte) []byte {
	var buf bytes.Buffer
	fw, _ := flate.NewWriter(&buf, flate.DefaultCompression)
	fw.Write(b)
	fw.Close()
	return buf.Bytes()
}

func variantSuffix(v font.Variant) string {
	bold := v.Weight >= 600
	switch {
	case bold && v.Italic:
		return "-BoldItalic"
	case bold:
		return "-Bold"
	case v.Italic:
		return "-Italic"
	default:
		return ""
	}
}

// fontMetricsValues holds the FontDescriptor fields derived from a
// decompressed sfnt, per §4.9.
type fontMetricsValues struct {
	ascent, descent, capHeight int
	bboxLeft, bboxRight        int
	italicAngle                int
	notdefWidth                int
	glyphWidth                 func(gid uint16) int
}

// fontMetrics extracts FontDescriptor values at PDF's conventional 1000
// units-per-em glyph space by querying sfnt metrics at a 1000 "pixels per
// em" scale, so the returned fixed.Int26_6 values convert to integers
// directly via Round(). FontBBox is approximated as the font's overall
// ascent/descent span rather than a true ink bounding box (sfnt does not
// expose one without full glyph-outline decoding, the same risk this
// package's WOFF2 reconstruction already declines — see DESIGN.md), which
// is a conservative, always-valid box for FontDescriptor purposes.
func fontMetrics(sfntBytes []byte) fontMetricsValues {
	f, err := parseForMetrics(sfntBytes)
	if err != nil {
		return fontMetricsValues{ascent: 800, descent: -200, capHeight: 700, bboxLeft: -200, bboxRight: 1000, notdefWidth: 0}
	}
	return f
}

func buildWArray(cidToGID map[uint16]uint16, mx fontMetricsValues) string {
	cids := make([]int, 0, len(cidToGID))
	for cid := range cidToGID {
		cids = append(cids, int(cid))
	}
	sort.Ints(cids)
	var sb strings.Builder
	sb.WriteString("[")
	for i, cid := range cids {
		if i > 0 {
			sb.WriteString(" ")
		}
		width := mx.notdefWidth
		if mx.glyphWidth != nil {
			width = mx.glyphWidth(cidToGID[uint16(cid)])
		}
		fmt.Fprintf(&sb, "%d [%d]", cid, width)
	}
	sb.WriteString("]")
	return sb.String()
}

// buildToUnicodeCMap emits a standard ToUnicode CMap stream: Adobe/UCS/0
// CIDSystemInfo, codespace <0000><FFFF>, one bfchar line per mapped
// codepoint (§6: "lets ATS systems extract text verbatim"). Under
// Identity-H, CID == Unicode codepoint, so each bfchar entry's two
// hex operands are numerically identical.
func buildToUnicodeCMap(cidToGID map[uint16]uint16) []byte {
	cids := make([]int, 0, len(cidToGID))
	for cid := range cidToGID {
		if cid == 0 {
			continue // .notdef has no meaningful Unicode mapping
		}
		cids = append(cids, int(cid))
	}
	sort.Ints(cids)

	var sb strings.Builder
	sb.WriteString("/CIDInit /ProcSet findresource begin\n12 dict begin\nbegincmap\n")
	sb.WriteString("/CIDSystemInfo << /Registry (Adobe) /Ordering (UCS) /Supplement 0 >> def\n")
	sb.WriteString("/CMapName /Adobe-Identity-UCS def\n/CMapType 2 def\n")
	sb.WriteString("1 begincodespacerange\n<0000> <FFFF>\nendcodespacerange\n")
	fmt.Fprintf(&sb, "%d beginbfchar\n", len(cids))
	for _, cid := range cids {
		units := utf16.Encode([]rune{rune(cid)})
		var hex strings.Builder
		for _, u := range units {
			fmt.Fprintf(&hex, "%04X", u)
		}
		fmt.Fprintf(&sb, "<%04X> <%s>\n", cid, hex.String())
	}
	sb.WriteString("endbfchar\nendcmap\nCMapName currentdict /CMap defineresource pop\nend\nend\n")
	return []byte(sb.String())
}

// parseForMetrics is defined in metrics_sfnt.go to keep the
// golang.org/x/image/font/sfnt-specific plumbing out of this file.
var parseForMetrics = defaultParseForMetrics
