package style

import "resumewright/internal/core/domain"

// tagDefault is the per-tag UA-stylesheet-equivalent default, §4.1b.
type tagDefault struct {
	fontSize   float64
	fontWeight int
	marginTop  float64 // em multiples of fontSize, resolved at apply time
	marginBot  float64
}

// tagDefaults implements the §4.1b per-tag default table. Paragraph
// line-height ratio is 1.2 for every tag unless overridden, per §4.1.
var tagDefaults = map[string]tagDefault{
	"h1": {fontSize: 28, fontWeight: 700, marginTop: 0.6, marginBot: 0.3},
	"h2": {fontSize: 22, fontWeight: 700, marginTop: 0.6, marginBot: 0.3},
	"h3": {fontSize: 18, fontWeight: 600, marginTop: 0.6, marginBot: 0.3},
	"h4": {fontSize: 16, fontWeight: 600, marginTop: 0.6, marginBot: 0.3},
	"h5": {fontSize: 14, fontWeight: 600, marginTop: 0.6, marginBot: 0.3},
	"h6": {fontSize: 12, fontWeight: 600, marginTop: 0.6, marginBot: 0.3},
	"p":  {fontSize: 11, fontWeight: 400},
	"span": {fontSize: 11, fontWeight: 400},
	"li": {fontSize: 11, fontWeight: 400},
	"ul": {fontSize: 11, fontWeight: 400},
	"ol": {fontSize: 11, fontWeight: 400},
}

const defaultLineHeightRatio = 1.2

// tagElementType maps a tag name onto the §3 ElementType enum. Unknown tags
// map to Div (a plain block container).
func tagElementType(tag string) (domain.ElementType, bool) {
	switch tag {
	case "h1":
		return domain.Heading1, true
	case "h2":
		return domain.Heading2, true
	case "h3":
		return domain.Heading3, true
	case "h4":
		return domain.Heading4, true
	case "h5":
		return domain.Heading5, true
	case "h6":
		return domain.Heading6, true
	case "p":
		return domain.Paragraph, true
	case "span":
		return domain.Span, true
	case "section":
		return domain.Section, true
	case "div":
		return domain.Div, true
	case "ul":
		return domain.UnorderedList, true
	case "ol":
		return domain.OrderedList, true
	case "li":
		return domain.ListItem, true
	case "a":
		return domain.Anchor, true
	case "br":
		return domain.LineBreak, true
	case "strong", "b":
		return domain.Strong, true
	case "em", "i":
		return domain.Emphasis, true
	default:
		return domain.Div, false
	}
}

// defaultStyleDeclaration is the initial declaration before any tag default,
// inheritance, class, or inline layer is applied: sane box/flex initial
// values matching CSS's initial values for the properties this engine
// tracks.
func defaultStyleDeclaration() domain.StyleDeclaration {
	return domain.StyleDeclaration{
		Text: domain.TextStyle{
			FontFamily:    "Helvetica",
			FontSize:      11,
			FontWeight:    400,
			Color:         domain.ColorBlack,
			Align:         domain.TextAlignLeft,
			LineHeight:    11 * defaultLineHeightRatio,
			Transform:     domain.TextTransformNone,
			Decoration:    domain.TextDecorationNone,
			WhiteSpace:    domain.WhiteSpaceNormal,
			VerticalAlign: domain.VerticalAlignBaseline,
		},
		Box: domain.BoxStyle{
			Opacity: 1,
		},
		Flex: domain.FlexStyle{
			Display:        domain.DisplayBlock,
			FlexGrow:       0,
			FlexShrink:     1,
			FlexDirection:  domain.FlexDirectionRow,
			JustifyContent: domain.JustifyStart,
			AlignItems:     domain.AlignStretch,
		},
	}
}
