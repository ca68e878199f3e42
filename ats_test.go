package resumewright

import "testing"

func TestValidateATSCompatibilityScoresCompleteResumeHigh(t *testing.T) {
	tsx := `<div>
		<h1>Jordan Avery</h1>
		<h2>Senior Platform Engineer</h2>
		<p>jordan.avery@example.com</p>
		<h2>Experience</h2>
		<p>Built things.</p>
	</div>`

	report, err := ValidateATSCompatibility(tsx, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if report.Score != 100 {
		t.Fatalf("expected a perfect score for a complete resume, got %d (warnings: %v)", report.Score, report.Warnings)
	}
	if report.ExtractedText == "" {
		t.Fatal("expected non-empty extracted text")
	}
}

func TestValidateATSCompatibilityPenalizesMissingContactInfo(t *testing.T) {
	tsx := `<div><h1>Jordan Avery</h1><h2>Experience</h2><p>Built things.</p></div>`

	report, err := ValidateATSCompatibility(tsx, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if report.HasContactInfo {
		t.Fatal("expected no contact info detected")
	}
	if report.Score != 70 {
		t.Fatalf("expected score 100-30=70 for missing contact info, got %d", report.Score)
	}
}

func TestValidateATSCompatibilityClampsScoreAtZero(t *testing.T) {
	report, err := ValidateATSCompatibility(`<div></div>`, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if report.Score < 0 {
		t.Fatal("expected score to never go negative")
	}
	if report.ExtractedText != "" {
		t.Fatalf("expected empty extracted text for an empty document, got %q", report.ExtractedText)
	}
}

func TestValidateATSCompatibilityReturnsConfigValidationError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PageSize.WidthPt = 0
	if _, err := ValidateATSCompatibility(`<p>Hi</p>`, cfg); err == nil {
		t.Fatal("expected an error for an invalid config")
	}
}
