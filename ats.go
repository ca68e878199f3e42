package resumewright

import "strings"

// ATSValidationReport is §6 [EXPANDED]'s pure pass over the emitted layout
// text: a 0-100 compatibility score plus the signals that informed it.
type ATSValidationReport struct {
	Score            int
	HasContactInfo   bool
	HasClearSections bool
	Warnings         []string
	ExtractedText    string
}

// ValidateATSCompatibility re-uses CVMetadata detection (contact info,
// section headings) plus a render of the full pipeline to confirm the
// document is "parseable as plain text in source order" — concatenating
// every TextLine across every Page in document order, per §6 [EXPANDED].
func ValidateATSCompatibility(tsx string, cfg Config) (ATSValidationReport, error) {
	if err := cfg.Validate(); err != nil {
		return ATSValidationReport{}, err
	}

	md, err := ExtractCVMetadata(tsx)
	if err != nil {
		return ATSValidationReport{}, err
	}

	layout, err := buildLayout(tsx, cfg, nil)
	if err != nil {
		return ATSValidationReport{}, err
	}

	var sb strings.Builder
	for _, page := range layout.Pages {
		for _, b := range page.Boxes {
			appendPlainText(&sb, b)
		}
	}

	report := ATSValidationReport{
		HasContactInfo:   md.HasContactInfo,
		HasClearSections: md.HasClearSections,
		ExtractedText:    sb.String(),
	}

	score := 100
	if !md.HasContactInfo {
		score -= 30
		report.Warnings = append(report.Warnings, "no email or phone number detected")
	}
	if !md.HasClearSections {
		score -= 20
		report.Warnings = append(report.Warnings, "no recognized section headings (experience, education, skills, ...)")
	}
	if md.Name == "" {
		score -= 15
		report.Warnings = append(report.Warnings, "no leading heading detected as a name")
	}
	if md.FontComplexity > 6 {
		score -= 10
		report.Warnings = append(report.Warnings, "many distinct font variants may confuse ATS text extraction")
	}
	if strings.TrimSpace(report.ExtractedText) == "" {
		score -= 25
		report.Warnings = append(report.Warnings, "no extractable text in document")
	}
	if score < 0 {
		score = 0
	}
	report.Score = score

	return report, nil
}
