package style

import (
	"testing"

	"resumewright/internal/core/domain"
)

func TestParseColorVariants(t *testing.T) {
	cases := []struct {
		in   string
		want domain.Color
	}{
		{"black", domain.Color{R: 0, G: 0, B: 0, A: 1}},
		{"#fff", domain.Color{R: 255, G: 255, B: 255, A: 1}},
		{"#FF0000", domain.Color{R: 255, G: 0, B: 0, A: 1}},
		{"rgb(10, 20, 30)", domain.Color{R: 10, G: 20, B: 30, A: 1}},
		{"rgba(10, 20, 30, 0.5)", domain.Color{R: 10, G: 20, B: 30, A: 0.5}},
	}
	for _, tc := range cases {
		got, ok := ParseColor(tc.in)
		if !ok {
			t.Errorf("ParseColor(%q) failed to parse", tc.in)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestParseColorRejectsGarbage(t *testing.T) {
	if _, ok := ParseColor("not-a-color"); ok {
		t.Error("expected ParseColor to reject garbage input")
	}
}

func TestFlattenAlphaProducesOpaque(t *testing.T) {
	c := domain.Color{R: 0, G: 0, B: 0, A: 0.5}
	flat := FlattenAlpha(c)
	if flat.A != 1 {
		t.Fatalf("FlattenAlpha did not set alpha to 1: %+v", flat)
	}
	if flat.R != 127 && flat.R != 128 {
		t.Fatalf("FlattenAlpha blend unexpected: %+v", flat)
	}
}

func TestParseLengthConversions(t *testing.T) {
	if n, ok := ParseLength("16px", 11, 0); !ok || n != 12 {
		t.Errorf("16px -> %v (ok=%v), want 12", n, ok)
	}
	if n, ok := ParseLength("2em", 10, 0); !ok || n != 20 {
		t.Errorf("2em -> %v (ok=%v), want 20", n, ok)
	}
	if n, ok := ParseLength("1rem", 10, 0); !ok || n != RootFontSize {
		t.Errorf("1rem -> %v (ok=%v), want %v", n, ok, RootFontSize)
	}
	if n, ok := ParseLength("50%", 0, 200); !ok || n != 100 {
		t.Errorf("50%% of 200 -> %v (ok=%v), want 100", n, ok)
	}
}

func TestParseLineHeightUnitlessMultiplier(t *testing.T) {
	n, ok := ParseLineHeight("1.5", 10)
	if !ok || n != 15 {
		t.Errorf("ParseLineHeight(1.5, 10) = %v (ok=%v), want 15", n, ok)
	}
}

func TestClassesToDeclarationsSpaceY(t *testing.T) {
	decls := ClassesToDeclarations("space-y-2")
	want := map[string]string{"display": "flex", "flex-direction": "column", "gap": "6pt"}
	got := map[string]string{}
	for _, d := range decls {
		got[d.Property] = d.Value
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("declaration %q = %q, want %q (got map %v)", k, got[k], v, got)
		}
	}
}

func TestClassesToDeclarationsBorderBottomDefault(t *testing.T) {
	decls := ClassesToDeclarations("border-b")
	found := false
	for _, d := range decls {
		if d.Property == "border-bottom" {
			found = true
			if d.Value != "0.75pt solid black" {
				t.Errorf("border-bottom = %q, want default 0.75pt solid black", d.Value)
			}
		}
	}
	if !found {
		t.Error("expected a border-bottom declaration from border-b")
	}
}

func TestClassesToDeclarationsBorderBottomWithColor(t *testing.T) {
	decls := ClassesToDeclarations("border-b border-gray-300")
	for _, d := range decls {
		if d.Property == "border-bottom" && d.Value == "0.75pt solid black" {
			t.Errorf("expected gray-300 color to be picked up, got default: %q", d.Value)
		}
	}
}

func TestResolveHeadingDefaults(t *testing.T) {
	r := Resolve("h1", "", "", RootContext())
	if r.Style.Text.FontSize != 28 {
		t.Errorf("h1 font size = %v, want 28", r.Style.Text.FontSize)
	}
	if r.Style.Text.FontWeight != 700 {
		t.Errorf("h1 font weight = %v, want 700", r.Style.Text.FontWeight)
	}
	if !r.ElementType.IsHeading() {
		t.Error("h1 should resolve to a heading ElementType")
	}
}

func TestResolveInlineStyleOverridesClass(t *testing.T) {
	r := Resolve("p", "text-sm", "font-size:18pt", RootContext())
	if r.Style.Text.FontSize != 18 {
		t.Errorf("inline style should win over class: got %v", r.Style.Text.FontSize)
	}
}

func TestResolveInheritsExplicitAncestorColor(t *testing.T) {
	parent := Resolve("div", "", "color:rgb(10,20,30)", RootContext())
	child := Resolve("p", "", "", parent.Child)
	if child.Style.Text.Color != (domain.Color{R: 10, G: 20, B: 30, A: 1}) {
		t.Errorf("child did not inherit explicit ancestor color: %+v", child.Style.Text.Color)
	}
}

func TestResolveChildTagDefaultBeatsAncestorTagDefault(t *testing.T) {
	// Neither h1 nor h2 sets font-size via class/inline, so font-size is
	// never in the explicit set — the child's own tag default must win.
	parent := Resolve("h1", "", "", RootContext())
	child := Resolve("h2", "", "", parent.Child)
	if child.Style.Text.FontSize != 22 {
		t.Errorf("h2 child should keep its own tag default 22pt, got %v", child.Style.Text.FontSize)
	}
}

func TestResolveSpanInheritsParagraphFontWhenOverridden(t *testing.T) {
	p := Resolve("p", "", "font-weight:600", RootContext())
	span := Resolve("span", "font-semibold", "", p.Child)
	if span.Style.Text.FontWeight != 600 {
		t.Errorf("span should inherit explicit parent font-weight overridden by its own class; got %v", span.Style.Text.FontWeight)
	}
}
