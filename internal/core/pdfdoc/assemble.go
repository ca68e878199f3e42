package pdfdoc

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"resumewright/internal/core/domain"
	"resumewright/internal/core/render"
)

// Options carries the per-document choices pdfdoc needs beyond the laid-out
// page geometry: whether to target PDF/A-1b conformance, the document's
// bibliographic metadata, and any caller-supplied embeddable font assets
// (§6 Config/FontCollection, kept as plain fields here rather than
// importing the top-level resumewright.Config type, which this package is
// beneath in the dependency graph).
type Options struct {
	PDFA1b   bool
	Metadata Metadata
	Fonts    FontCollection
	Now      time.Time
}

// Assemble is C8: it walks a paginated document once to discover fonts,
// embeds them, renders every page's content stream, and writes the
// complete classical-xref PDF (or PDF/A-1b variant) document. All object
// IDs are allocated monotonically and in a single pass (§4.9: "all PDF/A
// catalog modifications are applied in a single pass that fetches the
// catalog object once" — here the catalog is only ever written once,
// at the end, after every object it references already has an ID).
func Assemble(layout domain.LayoutStructure, opts Options) ([]byte, error) {
	w := NewWriter(Header(opts.PDFA1b))

	catalogID := w.Alloc()
	pagesTreeID := w.Alloc()

	fm := NewFontManager()
	fm.Collect(layout)
	fontObjIDs := fm.Embed(w, opts.Fonts, opts.PDFA1b)

	resourcesDict := buildFontResourcesDict(fontObjIDs)

	renderer := render.NewRenderer(fm, layout.PageHeight)

	pageIDs := make([]int, 0, len(layout.Pages))
	for _, page := range layout.Pages {
		content := renderer.RenderPage(page)
		if page.PageNumber > 1 {
			content = append(content, render.PageNumberOperators(fm, layout.PageWidth, page.PageNumber)...)
		}
		contentID := w.Alloc()
		w.WriteStream(contentID, "", content)

		pageID := w.Alloc()
		w.WriteObject(pageID, fmt.Sprintf(
			"<< /Type /Page /Parent %d 0 R /MediaBox [0 0 %s %s] /Resources << %s >> /Contents %d 0 R >>",
			pagesTreeID, fnumPt(layout.PageWidth), fnumPt(layout.PageHeight), resourcesDict, contentID))
		pageIDs = append(pageIDs, pageID)
	}

	kids := make([]string, len(pageIDs))
	for i, id := range pageIDs {
		kids[i] = fmt.Sprintf("%d 0 R", id)
	}
	w.WriteObject(pagesTreeID, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>",
		strings.Join(kids, " "), len(pageIDs)))

	infoID := writeInfo(w, opts.Metadata, opts.Now)

	catalogExtra := ""
	if opts.PDFA1b {
		xmpID := writeXMPStream(w, opts.Metadata, opts.Now)
		intentID := writeOutputIntent(w)
		catalogExtra = fmt.Sprintf(" /Metadata %d 0 R /OutputIntents [%d 0 R]", xmpID, intentID)
	}
	w.WriteObject(catalogID, fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R%s >>", pagesTreeID, catalogExtra))

	return w.Finish(catalogID, infoID), nil
}

// buildFontResourcesDict assembles the /Font subdictionary entries in
// resource-name order (F1, F2, ...) so output is byte-stable across runs
// regardless of Go's randomized map iteration.
func buildFontResourcesDict(fontObjIDs map[string]int) string {
	names := make([]string, 0, len(fontObjIDs))
	for name := range fontObjIDs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return resourceIndex(names[i]) < resourceIndex(names[j])
	})
	var sb strings.Builder
	sb.WriteString("/Font <<")
	for _, name := range names {
		fmt.Fprintf(&sb, " /%s %d 0 R", name, fontObjIDs[name])
	}
	sb.WriteString(" >>")
	return sb.String()
}

func resourceIndex(name string) int {
	n := 0
	for _, r := range strings.TrimPrefix(name, "F") {
		n = n*10 + int(r-'0')
	}
	return n
}

func fnumPt(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
