package domain

// ContentKind tags the variant carried by a BoxContent (§3).
type ContentKind int

const (
	ContentEmpty ContentKind = iota
	ContentText
	ContentContainer
)

// BoxContent is the tagged variant {Text | Container | Empty} of §3. Exactly
// one of Lines/Children is meaningful, selected by Kind. ContentEmpty is
// used for zero-height border-only boxes synthesized by the flattener (§4.4);
// ContentContainer may nest arbitrarily before flattening.
type BoxContent struct {
	Kind     ContentKind
	Lines    []TextLine
	Children []*LayoutBox
}

func TextContent(lines ...TextLine) BoxContent {
	return BoxContent{Kind: ContentText, Lines: lines}
}

func ContainerContent(children ...*LayoutBox) BoxContent {
	return BoxContent{Kind: ContentContainer, Children: children}
}

func EmptyContent() BoxContent { return BoxContent{Kind: ContentEmpty} }

func (c BoxContent) IsEmpty() bool     { return c.Kind == ContentEmpty }
func (c BoxContent) IsText() bool      { return c.Kind == ContentText }
func (c BoxContent) IsContainer() bool { return c.Kind == ContentContainer }

// LayoutBox is the positioned, measured box of §3. Coordinates are top-left
// origin in CSS points until the renderer (C6) flips to PDF bottom-left.
type LayoutBox struct {
	X, Y, Width, Height float64
	Content             BoxContent
	Style               StyleDeclaration
	ElementType         ElementType // zero value "" means "no semantic tag"
	HasElementType      bool

	// KeepWithNext is the §9 pre-pagination "keep-with-next" metadata: true
	// if this box's movement must cascade together with the box(es)
	// immediately following it (computed by paginate.ComputeKeepWithNext).
	KeepWithNext bool
}

func (b *LayoutBox) Bottom() float64 { return b.Y + b.Height }
func (b *LayoutBox) Right() float64  { return b.X + b.Width }

// Page is one page of laid-out boxes, 1-based page number (§3).
type Page struct {
	PageNumber int
	Boxes      []*LayoutBox
}

// LayoutStructure is the full paginated document (§3).
type LayoutStructure struct {
	PageWidth, PageHeight float64
	Pages                 []Page
}

// PageSize is a named page dimension in points (§6 Config: Letter, A4, or an
// explicit {width_pt, height_pt}).
type PageSize struct {
	WidthPt, HeightPt float64
	Name              string
}

var (
	PageLetter = PageSize{WidthPt: 612, HeightPt: 792, Name: "Letter"}
	PageA4     = PageSize{WidthPt: 595.28, HeightPt: 841.89, Name: "A4"}
)
