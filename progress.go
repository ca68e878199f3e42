package resumewright

// ProgressFunc is the §5/§6 progress callback type: invoked at each named
// pipeline stage with a monotonically non-decreasing 0-100 percentage. A
// nil ProgressFunc is valid and simply means no one is listening.
type ProgressFunc func(stage string, percent int)

// Stage names and their emitted percentage, per SPEC_FULL.md §4.10.
const (
	stageParsing            = "parsing"
	stageExtractingMetadata = "extracting-metadata"
	stageResolvingStyles    = "resolving-styles"
	stageLayingOut          = "laying-out"
	stagePaginating         = "paginating"
	stageEmbeddingFonts     = "embedding-fonts"
	stageGeneratingPDF      = "generating-pdf"
	stageCompleted          = "completed"
)

var stagePercent = map[string]int{
	stageParsing:            0,
	stageExtractingMetadata: 10,
	stageResolvingStyles:    20,
	stageLayingOut:          40,
	stagePaginating:         55,
	stageEmbeddingFonts:     70,
	stageGeneratingPDF:      90,
	stageCompleted:          100,
}

func report(on ProgressFunc, stage string) {
	if on == nil {
		return
	}
	on(stage, stagePercent[stage])
}
