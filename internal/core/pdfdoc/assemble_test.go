package pdfdoc

import (
	"strings"
	"testing"

	"resumewright/internal/core/domain"
)

func simpleLayout() domain.LayoutStructure {
	return domain.LayoutStructure{
		PageWidth:  612,
		PageHeight: 792,
		Pages: []domain.Page{
			{PageNumber: 1, Boxes: []*domain.LayoutBox{
				textBox("Arial", 400, false, "Page one"),
			}},
			{PageNumber: 2, Boxes: []*domain.LayoutBox{
				textBox("Arial", 400, false, "Page two"),
			}},
		},
	}
}

func TestAssembleProducesWellFormedPlainPDF(t *testing.T) {
	out, err := Assemble(simpleLayout(), Options{Metadata: Metadata{Title: "CV"}, Now: fixedTime()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := string(out)

	if !strings.HasPrefix(s, "%PDF-1.7\n") {
		t.Fatalf("expected plain PDF version header, got prefix %q", s[:10])
	}
	if !strings.Contains(s, "/Type /Catalog") {
		t.Fatalf("missing catalog object")
	}
	if !strings.Contains(s, "/Type /Pages") {
		t.Fatalf("missing pages tree object")
	}
	if strings.Count(s, "/Type /Page /Parent") != 2 {
		t.Fatalf("expected two page objects, got:\n%s", s)
	}
	if strings.Contains(s, "/OutputIntents") {
		t.Fatalf("plain PDF mode must not include OutputIntents")
	}
	if !strings.HasSuffix(s, "%%EOF\n") {
		t.Fatalf("missing trailing EOF marker")
	}
}

func TestAssemblePDFA1bIncludesOutputIntentAndMetadata(t *testing.T) {
	out, err := Assemble(simpleLayout(), Options{
		PDFA1b:   true,
		Metadata: Metadata{Title: "CV", Author: "Jane Doe"},
		Now:      fixedTime(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := string(out)

	if !strings.HasPrefix(s, "%PDF-1.4\n") {
		t.Fatalf("expected PDF/A forced version 1.4, got prefix %q", s[:10])
	}
	if !strings.Contains(s, "/OutputIntents [") {
		t.Fatalf("missing OutputIntents array in PDF/A mode")
	}
	if !strings.Contains(s, "/Metadata ") {
		t.Fatalf("missing catalog /Metadata reference in PDF/A mode")
	}
	if !strings.Contains(s, "/S /GTS_PDFA1") {
		t.Fatalf("missing GTS_PDFA1 intent")
	}
}

func TestAssembleReferencesSharedFontResourceAcrossPages(t *testing.T) {
	out, err := Assemble(simpleLayout(), Options{Now: fixedTime()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := string(out)

	if strings.Count(s, "/F1 ") < 2 {
		t.Fatalf("expected both pages' /Resources to reference the same /F1 font, got:\n%s", s)
	}
	if !strings.Contains(s, "/Subtype /Type1") {
		t.Fatalf("expected the unresolved Arial variant to fall back to a Standard-14 Type1 font")
	}
}

func TestAssembleEmptyDocumentStillProducesValidTrailer(t *testing.T) {
	empty := domain.LayoutStructure{PageWidth: 612, PageHeight: 792}
	out, err := Assemble(empty, Options{Now: fixedTime()})
	if err != nil {
		t.Fatalf("unexpected error on an empty document: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, "/Kids [] /Count 0") {
		t.Fatalf("expected an empty Kids array, got:\n%s", s)
	}
	if !strings.HasSuffix(s, "%%EOF\n") {
		t.Fatalf("missing trailing EOF marker")
	}
}
