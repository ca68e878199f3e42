package pdfdoc

import (
	"strings"
	"testing"

	"resumewright/internal/core/domain"
	"resumewright/internal/core/font"
)

func textBox(family string, weight int, italic bool, text string) *domain.LayoutBox {
	seg := domain.TextSegment{Text: text}
	return &domain.LayoutBox{
		Content: domain.TextContent(domain.TextLine{Segments: []domain.TextSegment{seg}}),
		Style: domain.StyleDeclaration{
			Text: domain.TextStyle{FontFamily: family, FontWeight: weight, Italic: italic},
		},
	}
}

func TestCollectRegistersVariantsInFirstUseOrder(t *testing.T) {
	layout := domain.LayoutStructure{
		Pages: []domain.Page{
			{PageNumber: 1, Boxes: []*domain.LayoutBox{
				textBox("Arial", 400, false, "Hello "),
				textBox("Georgia", 700, true, "World"),
				textBox("Arial", 400, false, "Again"),
			}},
		},
	}
	fm := NewFontManager()
	fm.Collect(layout)

	if len(fm.order) != 2 {
		t.Fatalf("expected 2 distinct variants, got %d", len(fm.order))
	}
	if fm.names[fm.order[0].Key()] != "F1" {
		t.Fatalf("expected first variant named F1, got %s", fm.names[fm.order[0].Key()])
	}
	if fm.names[fm.order[1].Key()] != "F2" {
		t.Fatalf("expected second variant named F2, got %s", fm.names[fm.order[1].Key()])
	}
	arialKey := font.Variant{Family: "Arial", Weight: 400, Italic: false}.Key()
	if got := fm.text[arialKey].String(); got != "Hello Again" {
		t.Fatalf("expected accumulated text 'Hello Again', got %q", got)
	}
}

func TestCollectRecursesIntoContainers(t *testing.T) {
	child := textBox("Courier", 400, false, "nested")
	parent := &domain.LayoutBox{Content: domain.ContainerContent(child)}
	layout := domain.LayoutStructure{Pages: []domain.Page{{PageNumber: 1, Boxes: []*domain.LayoutBox{parent}}}}

	fm := NewFontManager()
	fm.Collect(layout)
	if len(fm.order) != 1 {
		t.Fatalf("expected the nested text variant to be discovered, got %d variants", len(fm.order))
	}
}

func TestResourceNameReturnsCachedNameOnRepeatCalls(t *testing.T) {
	fm := NewFontManager()
	first := fm.ResourceName("Helvetica", 400, false)
	second := fm.ResourceName("Helvetica", 400, false)
	if first != second {
		t.Fatalf("expected stable resource name, got %q then %q", first, second)
	}
	other := fm.ResourceName("Helvetica", 700, false)
	if other == first {
		t.Fatalf("expected a distinct variant to get a distinct name")
	}
}

func TestEmbedWritesBareType1ForStandard14WithNoAsset(t *testing.T) {
	layout := domain.LayoutStructure{
		Pages: []domain.Page{{PageNumber: 1, Boxes: []*domain.LayoutBox{
			textBox("Arial", 700, true, "hi"),
		}}},
	}
	fm := NewFontManager()
	fm.Collect(layout)
	w := NewWriter(Header(false))
	ids := fm.Embed(w, FontCollection{}, false)

	if len(ids) != 1 {
		t.Fatalf("expected one embedded font object, got %d", len(ids))
	}
	out := string(w.Bytes())
	if !strings.Contains(out, "/Subtype /Type1") {
		t.Fatalf("expected a bare Type1 dictionary, got: %s", out)
	}
	if !strings.Contains(out, "/BaseFont /Helvetica-BoldOblique") {
		t.Fatalf("expected bold-italic Standard-14 variant name, got: %s", out)
	}
	if strings.Contains(out, "/FontDescriptor") {
		t.Fatalf("Standard-14 substitution must not carry a FontDescriptor: %s", out)
	}
}

func TestEmbedFallsBackToStandardWhenAssetIsInvalid(t *testing.T) {
	layout := domain.LayoutStructure{
		Pages: []domain.Page{{PageNumber: 1, Boxes: []*domain.LayoutBox{
			textBox("CustomSans", 400, false, "hi"),
		}}},
	}
	fm := NewFontManager()
	fm.Collect(layout)
	w := NewWriter(Header(false))

	key := font.Variant{Family: "CustomSans", Weight: 400, Italic: false}.Key()
	assets := FontCollection{key: FontAsset{Bytes: []byte("not a font")}}

	ids := fm.Embed(w, assets, false)
	if len(ids) != 1 {
		t.Fatalf("expected fallback object to still be written, got %d", len(ids))
	}
	out := string(w.Bytes())
	if !strings.Contains(out, "/BaseFont /Helvetica") {
		t.Fatalf("expected fallback to the Helvetica default when family is unrecognized, got: %s", out)
	}
}

func TestVariantSuffixSelectsBoldItalicCombination(t *testing.T) {
	cases := []struct {
		weight int
		italic bool
		want   string
	}{
		{400, false, ""},
		{700, false, "-Bold"},
		{400, true, "-Italic"},
		{700, true, "-BoldItalic"},
	}
	for _, c := range cases {
		got := variantSuffix(font.Variant{Weight: c.weight, Italic: c.italic})
		if got != c.want {
			t.Fatalf("weight=%d italic=%v: got %q want %q", c.weight, c.italic, got, c.want)
		}
	}
}

func TestBuildWArraySortsCIDsAscending(t *testing.T) {
	mx := fontMetricsValues{notdefWidth: 250}
	cidToGID := map[uint16]uint16{5: 1, 2: 2, 9: 3}
	got := buildWArray(cidToGID, mx)
	want := "[2 [250] 5 [250] 9 [250]]"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestBuildToUnicodeCMapSkipsNotdefAndEmitsBfchar(t *testing.T) {
	cidToGID := map[uint16]uint16{0: 0, 65: 1}
	cmap := string(buildToUnicodeCMap(cidToGID))
	if !strings.Contains(cmap, "1 beginbfchar") {
		t.Fatalf("expected exactly one bfchar entry (CID 0 excluded), got:\n%s", cmap)
	}
	if !strings.Contains(cmap, "<0041> <0041>") {
		t.Fatalf("expected CID 0x41 mapped to itself under Identity-H, got:\n%s", cmap)
	}
	if !strings.Contains(cmap, "begincodespacerange\n<0000> <FFFF>") {
		t.Fatalf("missing codespace range, got:\n%s", cmap)
	}
}

func TestResolveTTFRejectsInvalidAsset(t *testing.T) {
	_, err := resolveTTF(FontAsset{Bytes: []byte("garbage")}, true)
	if err == nil {
		t.Fatalf("expected validation error for non-sfnt bytes")
	}
}

func TestResolveTTFReturnsErrNoAssetWhenMissing(t *testing.T) {
	_, err := resolveTTF(FontAsset{}, false)
	if err != errNoAsset {
		t.Fatalf("expected errNoAsset, got %v", err)
	}
}

func TestFontMetricsFallsBackOnParseError(t *testing.T) {
	mx := fontMetrics([]byte("not a real font"))
	if mx.ascent != 800 || mx.descent != -200 {
		t.Fatalf("expected hardcoded fallback metrics, got %+v", mx)
	}
}
