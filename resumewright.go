package resumewright

import (
	"context"
	"strings"

	"resumewright/internal/core/box"
	"resumewright/internal/core/domain"
	"resumewright/internal/core/flatten"
	"resumewright/internal/core/font"
	"resumewright/internal/core/paginate"
	"resumewright/internal/core/pdfdoc"
	"resumewright/internal/core/style"
	"resumewright/internal/core/tree"
	"resumewright/internal/pkg/clock"
	"resumewright/internal/pkg/perrors"
)

// MaxTSXBytes is the §5 resource-policy input-size cap.
const MaxTSXBytes = 5 * 1024 * 1024

// Converter holds nothing but an injected clock: per §5, no state leaks
// across conversions, so a zero-value Converter using clock.SystemClock is
// always safe to reuse or to construct fresh per call.
type Converter struct {
	Clock clock.Clock
}

// NewConverter returns a Converter using the real system clock. Tests that
// need deterministic XMP/Info timestamps construct a Converter directly
// with a clock.FixedClock instead.
func NewConverter() *Converter {
	return &Converter{Clock: clock.SystemClock{}}
}

// ConvertTSXToPDF is the §6 library entry point: parses tsx, resolves
// styles, lays out and paginates the result, embeds fonts, and assembles
// the final PDF (or PDF/A-1b) bytes. Grounded on the teacher's
// PrintService.ProcessDocument orchestration shape (validate, parse,
// render, in strict sequence), adapted from an async cache/queue-backed job
// to one synchronous call with a progress callback instead of a stored
// RenderResult.
func ConvertTSXToPDF(ctx context.Context, tsx string, cfg Config, fonts FontCollection, onProgress ProgressFunc) ([]byte, error) {
	return NewConverter().ConvertTSXToPDF(ctx, tsx, cfg, fonts, onProgress)
}

func (cv *Converter) ConvertTSXToPDF(ctx context.Context, tsx string, cfg Config, fonts FontCollection, onProgress ProgressFunc) ([]byte, error) {
	if len(tsx) > MaxTSXBytes {
		return nil, perrors.NewMemoryLimitExceeded(stageParsing, MaxTSXBytes, len(tsx))
	}
	if err := cfg.Validate(); err != nil {
		return nil, perrors.NewInvalidConfig(stageParsing, err.Error())
	}

	report(onProgress, stageParsing)
	layout, err := cv.buildLayoutWithProgress(ctx, tsx, cfg, fonts, onProgress)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report(onProgress, stageEmbeddingFonts)
	clk := cv.clockOrDefault()
	out, err := pdfdoc.Assemble(layout, pdfdoc.Options{
		PDFA1b:   cfg.Standard == PDFA1b,
		Metadata: metadataFromConfig(cfg),
		Fonts:    toPDFFontCollection(fonts),
		Now:      clk.Now(),
	})
	if err != nil {
		return nil, perrors.NewPDFAssemblyError(stageGeneratingPDF, "failed to assemble PDF", err)
	}

	report(onProgress, stageGeneratingPDF)
	report(onProgress, stageCompleted)
	return out, nil
}

func (cv *Converter) clockOrDefault() clock.Clock {
	if cv.Clock != nil {
		return cv.Clock
	}
	return clock.SystemClock{}
}

// buildLayoutWithProgress runs C1-C5 with progress reporting, used by
// ConvertTSXToPDF.
func (cv *Converter) buildLayoutWithProgress(ctx context.Context, tsx string, cfg Config, fonts FontCollection, onProgress ProgressFunc) (domain.LayoutStructure, error) {
	root, err := parseTSX(tsx)
	if err != nil {
		return domain.LayoutStructure{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.LayoutStructure{}, err
	}

	report(onProgress, stageExtractingMetadata)

	report(onProgress, stageResolvingStyles)
	t := tree.Build(root, style.RootContext())
	if err := ctx.Err(); err != nil {
		return domain.LayoutStructure{}, err
	}

	report(onProgress, stageLayingOut)
	measurer := buildMeasurer(fonts)
	originX, originY, width, height := cfg.contentArea()
	rootBox := box.Solve(t, originX, originY, width, measurer)
	flat := flatten.Flatten(rootBox)
	if err := ctx.Err(); err != nil {
		return domain.LayoutStructure{}, err
	}

	report(onProgress, stagePaginating)
	layout := paginate.Paginate(flat, originY, height)
	layout.PageWidth = cfg.PageSize.WidthPt
	layout.PageHeight = cfg.PageSize.HeightPt

	return layout, nil
}

// buildLayout is the progress-free variant ValidateATSCompatibility uses —
// it needs the final layout's text but has no caller-supplied progress
// callback to drive.
func buildLayout(tsx string, cfg Config, fonts FontCollection) (domain.LayoutStructure, error) {
	cv := NewConverter()
	return cv.buildLayoutWithProgress(context.Background(), tsx, cfg, fonts, nil)
}

func metadataFromConfig(cfg Config) pdfdoc.Metadata {
	return pdfdoc.Metadata{
		Title:    cfg.Title,
		Author:   cfg.Author,
		Subject:  cfg.Subject,
		Keywords: cfg.Keywords,
		Creator:  cfg.Creator,
	}
}

func toPDFFontCollection(fonts FontCollection) pdfdoc.FontCollection {
	out := make(pdfdoc.FontCollection, len(fonts))
	for _, fd := range fonts {
		key := font.Variant{Family: fd.Family, Weight: fd.Weight, Italic: fd.Italic}.Key()
		out[key] = pdfdoc.FontAsset{Bytes: fd.Bytes}
	}
	return out
}

// appendPlainText concatenates a box's text content in document order,
// recursing into containers, for ValidateATSCompatibility's "parseable as
// plain text in source order" check.
func appendPlainText(sb *strings.Builder, b *domain.LayoutBox) {
	if b == nil {
		return
	}
	if b.Content.IsText() {
		for _, line := range b.Content.Lines {
			sb.WriteString(line.PlainText())
			sb.WriteString("\n")
		}
	}
	if b.Content.IsContainer() {
		for _, c := range b.Content.Children {
			appendPlainText(sb, c)
		}
	}
}
