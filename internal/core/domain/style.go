package domain

// Display is the CSS display mode this engine understands (§3 Flex group).
type Display string

const (
	DisplayBlock       Display = "block"
	DisplayFlex        Display = "flex"
	DisplayInline      Display = "inline"
	DisplayInlineBlock Display = "inline-block"
	DisplayNone        Display = "none"
)

// TextAlign is the resolved text-align value.
type TextAlign string

const (
	TextAlignLeft    TextAlign = "left"
	TextAlignCenter  TextAlign = "center"
	TextAlignRight   TextAlign = "right"
	TextAlignJustify TextAlign = "justify"
)

// VerticalAlign is the resolved vertical-align value.
type VerticalAlign string

const (
	VerticalAlignBaseline VerticalAlign = "baseline"
	VerticalAlignTop      VerticalAlign = "top"
	VerticalAlignMiddle   VerticalAlign = "middle"
	VerticalAlignBottom   VerticalAlign = "bottom"
)

// TextTransform is the resolved text-transform value.
type TextTransform string

const (
	TextTransformNone       TextTransform = "none"
	TextTransformUppercase  TextTransform = "uppercase"
	TextTransformLowercase  TextTransform = "lowercase"
	TextTransformCapitalize TextTransform = "capitalize"
)

// TextDecoration is the resolved text-decoration value.
type TextDecoration string

const (
	TextDecorationNone          TextDecoration = "none"
	TextDecorationUnderline     TextDecoration = "underline"
	TextDecorationLineThrough   TextDecoration = "line-through"
	TextDecorationUnderlineLine TextDecoration = "underline line-through"
)

// WhiteSpace is the resolved white-space value (only "normal" and "pre" are
// distinguished; §4.1 does not need the full CSS enumeration).
type WhiteSpace string

const (
	WhiteSpaceNormal WhiteSpace = "normal"
	WhiteSpacePre    WhiteSpace = "pre"
)

// FlexDirection is the resolved flex-direction value.
type FlexDirection string

const (
	FlexDirectionRow    FlexDirection = "row"
	FlexDirectionColumn FlexDirection = "column"
)

// JustifyContent is the resolved justify-content value.
type JustifyContent string

const (
	JustifyStart        JustifyContent = "start"
	JustifyEnd          JustifyContent = "end"
	JustifyCenter       JustifyContent = "center"
	JustifySpaceBetween JustifyContent = "space-between"
	JustifySpaceAround  JustifyContent = "space-around"
	JustifySpaceEvenly  JustifyContent = "space-evenly"
)

// AlignItems is the resolved align-items value (cross-axis).
type AlignItems string

const (
	AlignStart    AlignItems = "start"
	AlignEnd      AlignItems = "end"
	AlignCenter   AlignItems = "center"
	AlignStretch  AlignItems = "stretch"
	AlignBaseline AlignItems = "baseline"
)

// TextStyle groups the inheritable text properties of §3's Text group.
type TextStyle struct {
	FontFamily     string
	FontSize       float64 // points, resolved (not em/rem/px)
	FontWeight     int     // 100-900, CSS numeric scale
	Italic         bool
	Color          Color
	Align          TextAlign
	LineHeight     float64 // points, absolute after resolution
	LetterSpacing  float64 // points
	Transform      TextTransform
	Decoration     TextDecoration
	WhiteSpace     WhiteSpace
	VerticalAlign  VerticalAlign
}

// BoxStyle groups the non-inheriting Box properties of §3.
type BoxStyle struct {
	Margin        Spacing
	Padding       Spacing
	Border        [4]BorderStyle // top, right, bottom, left
	Background    Color
	Width         *float64 // nil = auto
	Height        *float64 // nil = auto
	MaxWidth      *float64
	MaxHeight     *float64
	BorderRadius  float64
	Opacity       float64 // 0..1, pre-flatten; see style.FlattenAlpha
}

// FlexStyle groups the non-inheriting Flex properties of §3.
type FlexStyle struct {
	Display        Display
	FlexGrow       float64
	FlexShrink     float64
	FlexDirection  FlexDirection
	JustifyContent JustifyContent
	AlignItems     AlignItems
	Gap            float64
	RowGap         float64
	ColumnGap      float64
}

// StyleDeclaration is the fully-resolved style of §3: the output of the C1
// style resolver cascade.
type StyleDeclaration struct {
	Text TextStyle
	Box  BoxStyle
	Flex FlexStyle
}

// Clone returns a value copy. StyleDeclaration is a fixed-size struct of
// options (per §9 "borrowed style vs owned style" — value semantics
// suffice, no reference counting), so Clone is just an assignment, kept as
// a named method for readability at call sites that clone explicitly.
func (s StyleDeclaration) Clone() StyleDeclaration { return s }
