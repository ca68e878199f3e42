package font

import "testing"

func TestStandardBaseNameResolvesKnownFamilies(t *testing.T) {
	cases := map[string]string{
		"Arial":                 "Helvetica",
		"  Times New Roman  ":   "Times",
		"\"Courier New\", mono": "Courier",
		"Georgia":               "Times",
		"Verdana":               "Helvetica",
	}
	for in, want := range cases {
		if got := StandardBaseName(in); got != want {
			t.Errorf("StandardBaseName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStandardBaseNameUnknownFamilyReturnsEmpty(t *testing.T) {
	if got := StandardBaseName("Roboto"); got != "" {
		t.Errorf("expected empty base name for a non-web-safe family, got %q", got)
	}
}

func TestStandardFontNameSelectsVariant(t *testing.T) {
	cases := []struct {
		base    string
		weight  int
		italic  bool
		want    string
	}{
		{"Times", 400, false, "Times-Roman"},
		{"Times", 700, false, "Times-Bold"},
		{"Times", 400, true, "Times-Italic"},
		{"Times", 600, true, "Times-BoldItalic"},
		{"Helvetica", 400, false, "Helvetica"},
		{"Helvetica", 700, true, "Helvetica-BoldOblique"},
		{"Courier", 700, false, "Courier-Bold"},
	}
	for _, c := range cases {
		if got := StandardFontName(c.base, c.weight, c.italic); got != c.want {
			t.Errorf("StandardFontName(%q,%d,%v) = %q, want %q", c.base, c.weight, c.italic, got, c.want)
		}
	}
}

func TestIsGoogleFontCaseInsensitive(t *testing.T) {
	if !IsGoogleFont("roboto") || !IsGoogleFont("Open Sans") {
		t.Error("expected known Google Fonts to be recognized regardless of case")
	}
	if IsGoogleFont("Arial") {
		t.Error("a web-safe family should not also register as a Google Font")
	}
}
