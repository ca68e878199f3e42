package resumewright

import (
	"math"
	"regexp"
	"strings"

	"resumewright/internal/core/box"
	"resumewright/internal/core/domain"
	"resumewright/internal/core/font"
	"resumewright/internal/core/style"
	"resumewright/internal/core/tree"
)

var (
	emailRE = regexp.MustCompile(`[[:alnum:].+_-]+@[[:alnum:].-]+\.[[:alpha:]]{2,}`)
	phoneRE = regexp.MustCompile(`(\+?\d[\d\s().-]{6,}\d)`)
	urlRE   = regexp.MustCompile(`(?i)\b(https?://\S+|www\.\S+)\b`)
)

// sectionVocabulary is the §3 [EXPANDED] fixed vocabulary a heading is
// matched against (case-insensitively, substring match) to decide
// has_clear_sections.
var sectionVocabulary = []string{
	"experience", "education", "skills", "projects", "summary",
	"certifications", "languages", "references",
}

// ExtractCVMetadata walks the resolved tree (after C1/C2, before layout)
// looking for contact-info patterns and structural signals, per §3
// [EXPANDED]'s extraction detail.
func ExtractCVMetadata(tsx string) (domain.CVMetadata, error) {
	root, err := parseTSX(tsx)
	if err != nil {
		return domain.CVMetadata{}, err
	}
	t := tree.Build(root, style.RootContext())

	md := domain.CVMetadata{LayoutType: domain.LayoutSingleColumn}

	var allText strings.Builder
	var headings []string // in document order, element type recorded alongside text
	var headingTypes []domain.ElementType
	variantSeen := make(map[string]bool)
	md.ComponentCount = 0

	var walk func(n *tree.Node, depth int)
	walk = func(n *tree.Node, depth int) {
		if n == nil {
			return
		}
		md.ComponentCount++
		if n.HasElementType && n.ElementType.IsHeading() {
			headings = append(headings, textOfNode(n))
			headingTypes = append(headingTypes, n.ElementType)
		}
		if n.Kind == tree.KindText {
			for _, run := range n.Runs {
				allText.WriteString(run.Text)
				allText.WriteString(" ")
				key := font.Variant{Family: run.Style.FontFamily, Weight: run.Style.FontWeight, Italic: run.Style.Italic}.Key()
				variantSeen[key] = true
			}
		}
		if depth <= 1 && isRowFlexWithMultipleNonHeadingSiblings(n) {
			md.LayoutType = domain.LayoutTwoColumn
		}
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	walk(t, 0)

	text := allText.String()
	if loc := emailRE.FindString(text); loc != "" {
		md.Email = loc
	}
	if loc := phoneRE.FindString(text); loc != "" {
		md.Phone = strings.TrimSpace(loc)
	}
	if loc := urlRE.FindString(text); loc != "" {
		md.Website = loc
	}
	md.HasContactInfo = md.Email != "" || md.Phone != ""

	for i, h := range headingTypes {
		if h == domain.Heading1 && md.Name == "" {
			md.Name = strings.TrimSpace(headings[i])
			continue
		}
		if h == domain.Heading2 && md.Title == "" {
			md.Title = strings.TrimSpace(headings[i])
		}
	}

	for _, h := range headings {
		lower := strings.ToLower(h)
		for _, v := range sectionVocabulary {
			if strings.Contains(lower, v) {
				md.HasClearSections = true
				break
			}
		}
		if md.HasClearSections {
			break
		}
	}

	md.FontComplexity = len(variantSeen)
	md.EstimatedPages = estimatePages(t)

	return md, nil
}

// textOfNode concatenates the text of every inline run a heading's text
// leaf carries (headings are always a single KindText leaf per
// tree.blockTextTags).
func textOfNode(n *tree.Node) string {
	var sb strings.Builder
	for _, run := range n.Runs {
		sb.WriteString(run.Text)
	}
	for _, c := range n.Children {
		sb.WriteString(textOfNode(c))
	}
	return sb.String()
}

// isRowFlexWithMultipleNonHeadingSiblings implements the §3 [EXPANDED]
// layout_type detection: a flex-row container with more than one
// non-heading child signals a two-column resume layout.
func isRowFlexWithMultipleNonHeadingSiblings(n *tree.Node) bool {
	if n.Kind != tree.KindContainer {
		return false
	}
	if n.Style.Flex.Display != domain.DisplayFlex || n.Style.Flex.FlexDirection != domain.FlexDirectionRow {
		return false
	}
	count := 0
	for _, c := range n.Children {
		if c.HasElementType && c.ElementType.IsHeading() {
			continue
		}
		count++
	}
	return count > 1
}

// estimatePages is the §3 [EXPANDED] cheap pre-pass: lay out the tree once
// against a default page's content width using the heuristic measurer
// (ExtractCVMetadata takes no Config, so there is no caller page size to
// honor), then divide total height by the default content height rather
// than running the full paginator.
func estimatePages(t *tree.Node) int {
	if t == nil {
		return 0
	}
	cfg := DefaultConfig()
	originX, originY, width, height := cfg.contentArea()
	root := box.Solve(t, originX, originY, width, box.HeuristicMeasurer{})
	pages := math.Ceil(root.Height / height)
	if pages < 1 {
		pages = 1
	}
	return int(pages)
}
