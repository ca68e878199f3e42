package resumewright

import "testing"

func TestDetectFontsReportsDistinctVariantsInDocumentOrder(t *testing.T) {
	tsx := `<div>
		<h1>Jordan Avery</h1>
		<p style="font-style:italic">Summary line</p>
	</div>`

	reqs, err := DetectFonts(tsx)
	if err != nil {
		t.Fatal(err)
	}
	if len(reqs) != 2 {
		t.Fatalf("expected 2 distinct font variants, got %d: %+v", len(reqs), reqs)
	}
	if reqs[0].Weight != 700 || reqs[0].Italic {
		t.Fatalf("expected h1's bold upright variant first, got %+v", reqs[0])
	}
	if reqs[1].Weight != 400 || !reqs[1].Italic {
		t.Fatalf("expected p's regular italic variant second, got %+v", reqs[1])
	}
}

func TestDetectFontsDeduplicatesRepeatedVariants(t *testing.T) {
	tsx := `<div><p>One</p><p>Two</p></div>`
	reqs, err := DetectFonts(tsx)
	if err != nil {
		t.Fatal(err)
	}
	if len(reqs) != 1 {
		t.Fatalf("expected a single deduplicated variant, got %d: %+v", len(reqs), reqs)
	}
}

func TestDetectFontsFlagsStandard14Families(t *testing.T) {
	reqs, err := DetectFonts(`<p>Plain text</p>`)
	if err != nil {
		t.Fatal(err)
	}
	if len(reqs) != 1 || !reqs[0].IsStandard14 {
		t.Fatalf("expected the default Helvetica family to be flagged Standard-14, got %+v", reqs)
	}
}

func TestFontCollectionIndexKeysByVariant(t *testing.T) {
	fc := FontCollection{
		{Family: "Lato", Weight: 400, Italic: false, Bytes: []byte{1, 2, 3}},
		{Family: "Lato", Weight: 700, Italic: false, Bytes: []byte{4, 5, 6}},
	}
	idx := fc.index()
	if len(idx) != 2 {
		t.Fatalf("expected 2 indexed entries, got %d", len(idx))
	}
}

func TestBuildMeasurerSkipsUndecodableAssets(t *testing.T) {
	fc := FontCollection{
		{Family: "Broken", Weight: 400, Italic: false, Bytes: []byte("not a font")},
	}
	m := buildMeasurer(fc)
	if m == nil {
		t.Fatal("expected a non-nil measurer even when every asset fails to decode")
	}
}

func TestBuildMeasurerHandlesEmptyCollection(t *testing.T) {
	m := buildMeasurer(nil)
	if m == nil {
		t.Fatal("expected a non-nil measurer for an empty font collection")
	}
}

func TestDecodeFontAssetRejectsGarbageBytes(t *testing.T) {
	if _, err := decodeFontAsset([]byte("definitely not sfnt")); err == nil {
		t.Fatal("expected an error decoding non-sfnt, non-WOFF bytes")
	}
}
