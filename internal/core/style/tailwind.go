package style

import (
	"fmt"
	"strconv"
	"strings"
)

// spacingStep is the §4.2 4pt-step scale: {n} x 3pt.
const spacingStep = 3.0

// ClassesToDeclarations implements the §4.2 Tailwind subset: a closed
// mapping from utility classes to synthetic inline CSS, fed back through
// ParseDeclarations-compatible Declaration values so the same resolver path
// handles both inline style and classes. Grounded on the teacher's
// css.Parser value/selector parsing for the underlying value grammar, but
// this mapping table itself has no teacher equivalent (the teacher consumes
// real CSS, not a closed Tailwind subset) — built directly from §4.2.
func ClassesToDeclarations(classList string) []Declaration {
	classes := strings.Fields(classList)

	var out []Declaration
	var pendingBorderWidth string
	var pendingBorderColor string
	haveBorderBottom := false

	for _, cls := range classes {
		switch {
		case cls == "flex":
			out = append(out, Declaration{"display", "flex"})
		case cls == "block":
			out = append(out, Declaration{"display", "block"})
		case cls == "hidden":
			out = append(out, Declaration{"display", "none"})
		case cls == "inline-block":
			out = append(out, Declaration{"display", "inline-block"})
		case cls == "flex-row":
			out = append(out, Declaration{"flex-direction", "row"})
		case cls == "flex-col":
			out = append(out, Declaration{"flex-direction", "column"})
		case cls == "items-start":
			out = append(out, Declaration{"align-items", "start"})
		case cls == "items-center":
			out = append(out, Declaration{"align-items", "center"})
		case cls == "items-end":
			out = append(out, Declaration{"align-items", "end"})
		case cls == "items-baseline":
			out = append(out, Declaration{"align-items", "baseline"})
		case cls == "items-stretch":
			out = append(out, Declaration{"align-items", "stretch"})
		case cls == "justify-start":
			out = append(out, Declaration{"justify-content", "start"})
		case cls == "justify-end":
			out = append(out, Declaration{"justify-content", "end"})
		case cls == "justify-center":
			out = append(out, Declaration{"justify-content", "center"})
		case cls == "justify-between":
			out = append(out, Declaration{"justify-content", "space-between"})
		case cls == "justify-around":
			out = append(out, Declaration{"justify-content", "space-around"})
		case cls == "justify-evenly":
			out = append(out, Declaration{"justify-content", "space-evenly"})
		case cls == "font-bold":
			out = append(out, Declaration{"font-weight", "700"})
		case cls == "font-semibold":
			out = append(out, Declaration{"font-weight", "600"})
		case cls == "font-medium":
			out = append(out, Declaration{"font-weight", "500"})
		case cls == "font-normal":
			out = append(out, Declaration{"font-weight", "400"})
		case cls == "italic":
			out = append(out, Declaration{"font-style", "italic"})
		case cls == "underline":
			out = append(out, Declaration{"text-decoration", "underline"})
		case cls == "line-through":
			out = append(out, Declaration{"text-decoration", "line-through"})
		case cls == "uppercase":
			out = append(out, Declaration{"text-transform", "uppercase"})
		case cls == "lowercase":
			out = append(out, Declaration{"text-transform", "lowercase"})
		case cls == "capitalize":
			out = append(out, Declaration{"text-transform", "capitalize"})
		case cls == "text-left":
			out = append(out, Declaration{"text-align", "left"})
		case cls == "text-center":
			out = append(out, Declaration{"text-align", "center"})
		case cls == "text-right":
			out = append(out, Declaration{"text-align", "right"})

		case strings.HasPrefix(cls, "text-") && textSizeScale[strings.TrimPrefix(cls, "text-")] != "":
			out = append(out, Declaration{"font-size", textSizeScale[strings.TrimPrefix(cls, "text-")]})
		case strings.HasPrefix(cls, "text-"):
			if c, ok := colorClassDecl(strings.TrimPrefix(cls, "text-")); ok {
				out = append(out, Declaration{"color", c})
			}
		case strings.HasPrefix(cls, "bg-"):
			if c, ok := colorClassDecl(strings.TrimPrefix(cls, "bg-")); ok {
				out = append(out, Declaration{"background-color", c})
			}

		case cls == "space-y-0", cls == "space-y-1", cls == "space-y-2", cls == "space-y-3", cls == "space-y-4",
			cls == "space-y-6", cls == "space-y-8":
			n := spacingScaleValue(strings.TrimPrefix(cls, "space-y-"))
			out = append(out,
				Declaration{"display", "flex"},
				Declaration{"flex-direction", "column"},
				Declaration{"gap", fmt.Sprintf("%gpt", n)},
			)
		case strings.HasPrefix(cls, "space-x-"):
			n := spacingScaleValue(strings.TrimPrefix(cls, "space-x-"))
			out = append(out,
				Declaration{"display", "flex"},
				Declaration{"flex-direction", "row"},
				Declaration{"gap", fmt.Sprintf("%gpt", n)},
			)
		case strings.HasPrefix(cls, "gap-"):
			n := spacingScaleValue(strings.TrimPrefix(cls, "gap-"))
			out = append(out, Declaration{"gap", fmt.Sprintf("%gpt", n)})

		case cls == "border-b" || strings.HasPrefix(cls, "border-b-"):
			haveBorderBottom = true
			if w := strings.TrimPrefix(cls, "border-b-"); w != cls && w != "" {
				if n, err := strconv.Atoi(w); err == nil {
					pendingBorderWidth = fmt.Sprintf("%dpt", n)
				}
			}
		case strings.HasPrefix(cls, "border-") && isColorShadeFragment(strings.TrimPrefix(cls, "border-")):
			if c, ok := colorClassDecl(strings.TrimPrefix(cls, "border-")); ok {
				pendingBorderColor = c
			}

		case strings.HasPrefix(cls, "p-"):
			n := spacingScaleValue(strings.TrimPrefix(cls, "p-"))
			out = append(out, Declaration{"padding", fmt.Sprintf("%gpt", n)})
		case strings.HasPrefix(cls, "px-"):
			n := spacingScaleValue(strings.TrimPrefix(cls, "px-"))
			out = append(out, Declaration{"padding", fmt.Sprintf("0pt %gpt", n)})
		case strings.HasPrefix(cls, "py-"):
			n := spacingScaleValue(strings.TrimPrefix(cls, "py-"))
			out = append(out, Declaration{"padding", fmt.Sprintf("%gpt 0pt", n)})
		case strings.HasPrefix(cls, "pt-"):
			out = append(out, Declaration{"padding-top", fmt.Sprintf("%gpt", spacingScaleValue(strings.TrimPrefix(cls, "pt-")))})
		case strings.HasPrefix(cls, "pb-"):
			out = append(out, Declaration{"padding-bottom", fmt.Sprintf("%gpt", spacingScaleValue(strings.TrimPrefix(cls, "pb-")))})
		case strings.HasPrefix(cls, "pl-"):
			out = append(out, Declaration{"padding-left", fmt.Sprintf("%gpt", spacingScaleValue(strings.TrimPrefix(cls, "pl-")))})
		case strings.HasPrefix(cls, "pr-"):
			out = append(out, Declaration{"padding-right", fmt.Sprintf("%gpt", spacingScaleValue(strings.TrimPrefix(cls, "pr-")))})
		case strings.HasPrefix(cls, "m-"):
			n := spacingScaleValue(strings.TrimPrefix(cls, "m-"))
			out = append(out, Declaration{"margin", fmt.Sprintf("%gpt", n)})
		case strings.HasPrefix(cls, "mt-"):
			out = append(out, Declaration{"margin-top", fmt.Sprintf("%gpt", spacingScaleValue(strings.TrimPrefix(cls, "mt-")))})
		case strings.HasPrefix(cls, "mb-"):
			out = append(out, Declaration{"margin-bottom", fmt.Sprintf("%gpt", spacingScaleValue(strings.TrimPrefix(cls, "mb-")))})
		}
	}

	if haveBorderBottom {
		width := pendingBorderWidth
		if width == "" {
			width = "0.75pt"
		}
		color := pendingBorderColor
		if color == "" {
			color = "black"
		}
		out = append(out, Declaration{"border-bottom", fmt.Sprintf("%s solid %s", width, color)})
	}

	return out
}

// textSizeScale maps Tailwind text-size utilities to point sizes.
var textSizeScale = map[string]string{
	"xs": "9pt", "sm": "10pt", "base": "11pt", "lg": "13pt",
	"xl": "15pt", "2xl": "18pt", "3xl": "22pt", "4xl": "28pt",
}

func spacingScaleValue(n string) float64 {
	v, err := strconv.Atoi(n)
	if err != nil {
		return 0
	}
	return float64(v) * spacingStep
}

// colorClassDecl turns a "{color}-{shade}" or bare "black"/"white" fragment
// into a CSS-parseable color string ("rgb(r,g,b)"), for feeding back
// through ParseColor uniformly with inline styles.
func colorClassDecl(fragment string) (string, bool) {
	if fragment == "black" || fragment == "white" {
		c, ok := TailwindColor(fragment, "")
		if !ok {
			return "", false
		}
		return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B), true
	}
	idx := strings.LastIndex(fragment, "-")
	if idx < 0 {
		return "", false
	}
	color, shade := fragment[:idx], fragment[idx+1:]
	c, ok := TailwindColor(color, shade)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B), true
}

func isColorShadeFragment(fragment string) bool {
	if fragment == "black" || fragment == "white" {
		return true
	}
	idx := strings.LastIndex(fragment, "-")
	if idx < 0 {
		return false
	}
	_, err := strconv.Atoi(fragment[idx+1:])
	return err == nil
}
