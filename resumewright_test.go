package resumewright

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"resumewright/internal/pkg/clock"
)

const sampleResumeTSX = `<div>
	<h1>Jordan Avery</h1>
	<h2>Senior Platform Engineer</h2>
	<p>jordan.avery@example.com</p>
	<h2>Experience</h2>
	<p>Built distributed systems for a decade.</p>
</div>`

func TestConvertTSXToPDFProducesWellFormedPDF(t *testing.T) {
	out, err := ConvertTSXToPDF(context.Background(), sampleResumeTSX, DefaultConfig(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-1.7")) {
		t.Fatalf("expected a PDF1.7 header for the default Standard, got %q", out[:20])
	}
	if !bytes.Contains(out, []byte("%%EOF")) {
		t.Fatal("expected a terminating %%EOF marker")
	}
}

func TestConvertTSXToPDFPDFA1bEmitsConformanceMarkers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Standard = PDFA1b
	cfg.Title = "Jordan Avery Resume"

	out, err := ConvertTSXToPDF(context.Background(), sampleResumeTSX, cfg, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-1.4")) {
		t.Fatalf("expected PDF/A-1b to force version 1.4, got %q", out[:20])
	}
	if !bytes.Contains(out, []byte("GTS_PDFA1")) {
		t.Fatal("expected a GTS_PDFA1 OutputIntent marker")
	}
	if !bytes.Contains(out, []byte("pdfaid:part")) {
		t.Fatal("expected XMP pdfaid:part metadata")
	}
}

func TestConvertTSXToPDFReportsEveryStageInOrder(t *testing.T) {
	var stages []string
	_, err := ConvertTSXToPDF(context.Background(), sampleResumeTSX, DefaultConfig(), nil,
		func(stage string, percent int) { stages = append(stages, stage) })
	if err != nil {
		t.Fatal(err)
	}
	if len(stages) == 0 {
		t.Fatal("expected at least one progress callback invocation")
	}
	if stages[0] != stageParsing {
		t.Fatalf("expected first stage to be %q, got %q", stageParsing, stages[0])
	}
	if stages[len(stages)-1] != stageCompleted {
		t.Fatalf("expected final stage to be %q, got %q", stageCompleted, stages[len(stages)-1])
	}
}

func TestConvertTSXToPDFRejectsOversizedInput(t *testing.T) {
	huge := strings.Repeat("a", MaxTSXBytes+1)
	_, err := ConvertTSXToPDF(context.Background(), huge, DefaultConfig(), nil, nil)
	if err == nil {
		t.Fatal("expected an error for input exceeding MaxTSXBytes")
	}
}

func TestConvertTSXToPDFRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Standard = "not-a-real-standard"
	_, err := ConvertTSXToPDF(context.Background(), sampleResumeTSX, cfg, nil, nil)
	if err == nil {
		t.Fatal("expected an error for an invalid config")
	}
}

func TestConvertTSXToPDFHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ConvertTSXToPDF(ctx, sampleResumeTSX, DefaultConfig(), nil, nil)
	if err == nil {
		t.Fatal("expected an error when the context is already canceled")
	}
}

func TestConverterUsesInjectedClockForDeterministicMetadata(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cv := &Converter{Clock: clock.NewFixedClock(fixed)}

	cfg := DefaultConfig()
	cfg.Standard = PDFA1b
	out, err := cv.ConvertTSXToPDF(context.Background(), sampleResumeTSX, cfg, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(out, []byte("D:20260301120000Z")) {
		t.Fatal("expected the Info dict's CreationDate to reflect the injected fixed clock")
	}
}

func TestNewConverterDefaultsToSystemClock(t *testing.T) {
	cv := NewConverter()
	if cv.Clock == nil {
		t.Fatal("expected NewConverter to set a non-nil clock")
	}
}
