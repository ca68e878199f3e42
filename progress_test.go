package resumewright

import "testing"

func TestReportInvokesCallbackWithMappedPercent(t *testing.T) {
	var gotStage string
	var gotPercent int
	report(func(stage string, percent int) {
		gotStage = stage
		gotPercent = percent
	}, stageLayingOut)

	if gotStage != stageLayingOut || gotPercent != 40 {
		t.Fatalf("expected (laying-out, 40), got (%q, %d)", gotStage, gotPercent)
	}
}

func TestReportToleratesNilCallback(t *testing.T) {
	report(nil, stageCompleted) // must not panic
}

func TestStagePercentTableIsNonDecreasingInPipelineOrder(t *testing.T) {
	order := []string{
		stageParsing, stageExtractingMetadata, stageResolvingStyles, stageLayingOut,
		stagePaginating, stageEmbeddingFonts, stageGeneratingPDF, stageCompleted,
	}
	prev := -1
	for _, s := range order {
		p, ok := stagePercent[s]
		if !ok {
			t.Fatalf("missing percent entry for stage %q", s)
		}
		if p < prev {
			t.Fatalf("stage %q percent %d regressed from previous %d", s, p, prev)
		}
		prev = p
	}
	if prev != 100 {
		t.Fatalf("expected final stage to reach 100, got %d", prev)
	}
}
