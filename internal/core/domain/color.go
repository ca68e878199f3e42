package domain

// Color is the resolved RGBA color of §3. Alpha is a float in [0,1] for
// resolution-time arithmetic (e.g. flattening against white), but the
// archival profile disallows transparency in the emitted PDF: anything that
// reaches the renderer must already have alpha collapsed to 1 (see
// style.FlattenAlpha).
type Color struct {
	R uint8
	G uint8
	B uint8
	A float32
}

// Opaque reports whether the color can be painted directly without needing
// alpha compositing against a backdrop.
func (c Color) Opaque() bool { return c.A >= 1 }

var (
	ColorBlack = Color{R: 0, G: 0, B: 0, A: 1}
	ColorWhite = Color{R: 255, G: 255, B: 255, A: 1}
)

// Spacing is the four-sided box model measurement from §3, in points.
type Spacing struct {
	Top, Right, Bottom, Left float64
}

// ExpandSpacing implements the CSS shorthand expansion rules (1, 2, 3, or 4
// values) described in §3.
func ExpandSpacing(values ...float64) Spacing {
	switch len(values) {
	case 1:
		return Spacing{values[0], values[0], values[0], values[0]}
	case 2:
		return Spacing{values[0], values[1], values[0], values[1]}
	case 3:
		return Spacing{values[0], values[1], values[2], values[1]}
	case 4:
		return Spacing{values[0], values[1], values[2], values[3]}
	default:
		return Spacing{}
	}
}

func (s Spacing) Horizontal() float64 { return s.Left + s.Right }
func (s Spacing) Vertical() float64   { return s.Top + s.Bottom }

// BorderLineStyle is the dash pattern used by one edge of a border.
type BorderLineStyle string

const (
	BorderSolid  BorderLineStyle = "solid"
	BorderDashed BorderLineStyle = "dashed"
	BorderDotted BorderLineStyle = "dotted"
	BorderNone   BorderLineStyle = "none"
)

// BorderStyle is one side's border per §3: width, dash style, color.
type BorderStyle struct {
	Width float64
	Style BorderLineStyle
	Color Color
}

func (b BorderStyle) Visible() bool {
	return b.Style != BorderNone && b.Style != "" && b.Width > 0
}
