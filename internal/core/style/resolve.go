// Package style implements C1, the style resolver: JSX element + inline
// style + class list -> resolved StyleDeclaration, via the CSS cascade of
// §4.1 (tag defaults, then inheritance, then Tailwind classes, then inline
// style) plus the §4.2 Tailwind subset. Grounded on the teacher's
// internal/core/engine/css.Parser (value/color/declaration parsing) and
// internal/core/engine/layout.Engine.computeStyle/applyDeclaration (cascade
// shape, default-style seeding).
package style

import (
	"strings"

	"resumewright/internal/core/domain"
)

// inheritableProps is the §4.1a fixed list.
var inheritableProps = map[string]bool{
	"font-family": true, "font-size": true, "font-weight": true, "font-style": true,
	"color": true, "text-align": true, "line-height": true, "letter-spacing": true,
	"text-transform": true, "text-decoration": true, "white-space": true, "vertical-align": true,
}

// Context carries the inherited state a child needs to resolve its own
// style: the parent's fully resolved declaration, plus the set of
// inheritable properties that were *explicitly* set somewhere up the
// ancestor chain (via a class or inline style, not merely a tag default).
// A child's own tag default always wins over a merely-inherited tag
// default further up the chain; it loses only to an ancestor's explicit
// override, which is the ordinary expectation of CSS inheritance and the
// chosen reading of §4.1's "inherited properties from parent" cascade
// layer (recorded as a judgment call in DESIGN.md since §4.1 does not spell
// out how tag defaults interact with inheritance of the same property).
type Context struct {
	Parent   domain.StyleDeclaration
	Explicit map[string]bool
}

// RootContext is the inheritance context for a document's root element: no
// parent overrides exist yet, so every inheritable property starts from the
// engine-wide initial values.
func RootContext() Context {
	return Context{Parent: defaultStyleDeclaration(), Explicit: map[string]bool{}}
}

// Resolved is the output of Resolve: the declaration itself plus the
// Context a child of this element should use.
type Resolved struct {
	Style       domain.StyleDeclaration
	ElementType domain.ElementType
	HasElementType bool
	Child       Context
}

// Resolve implements the §4.1 cascade for one element: tag defaults,
// inherited properties, §4.2 Tailwind classes, then inline style, in that
// specificity order.
func Resolve(tag, classNameAttr, inlineStyle string, ctx Context) Resolved {
	out := defaultStyleDeclaration()
	elemType, hasType := tagElementType(tag)

	// Layer 1: per-element defaults derived from tag.
	if def, ok := tagDefaults[tag]; ok {
		out.Text.FontSize = def.fontSize
		out.Text.FontWeight = def.fontWeight
		out.Text.LineHeight = def.fontSize * defaultLineHeightRatio
		if elemType.IsHeading() {
			out.Box.Margin.Top = def.marginTop * def.fontSize
			out.Box.Margin.Bottom = def.marginBot * def.fontSize
		}
	} else {
		out.Text.LineHeight = out.Text.FontSize * defaultLineHeightRatio
	}

	// Layer 2: inherited properties from parent, but only those the
	// ancestor chain set explicitly (see Context doc comment).
	newExplicit := make(map[string]bool, len(ctx.Explicit))
	for k := range ctx.Explicit {
		newExplicit[k] = true
	}
	for prop := range ctx.Explicit {
		applyInherited(&out, ctx.Parent, prop)
	}

	// Layer 3: classes via §4.2.
	for _, d := range ClassesToDeclarations(classNameAttr) {
		if applyDeclaration(&out, d) && inheritableProps[d.Property] {
			newExplicit[d.Property] = true
		}
	}

	// Layer 4: inline style (highest).
	for _, d := range ParseDeclarations(inlineStyle) {
		if applyDeclaration(&out, d) && inheritableProps[d.Property] {
			newExplicit[d.Property] = true
		}
	}

	if out.Box.Opacity < 1 {
		out.Text.Color = FlattenAlpha(out.Text.Color)
		out.Box.Background = FlattenAlpha(out.Box.Background)
		for i := range out.Box.Border {
			out.Box.Border[i].Color = FlattenAlpha(out.Box.Border[i].Color)
		}
		out.Box.Opacity = 1
	}
	if a := out.Text.Color.A; a > 0 && a < 1 {
		out.Text.Color = FlattenAlpha(out.Text.Color)
	}
	if a := out.Box.Background.A; a > 0 && a < 1 {
		out.Box.Background = FlattenAlpha(out.Box.Background)
	}
	for i := range out.Box.Border {
		if a := out.Box.Border[i].Color.A; a > 0 && a < 1 {
			out.Box.Border[i].Color = FlattenAlpha(out.Box.Border[i].Color)
		}
	}

	return Resolved{
		Style:          out,
		ElementType:    elemType,
		HasElementType: hasType,
		Child:          Context{Parent: out, Explicit: newExplicit},
	}
}

func applyInherited(out *domain.StyleDeclaration, parent domain.StyleDeclaration, prop string) {
	switch prop {
	case "font-family":
		out.Text.FontFamily = parent.Text.FontFamily
	case "font-size":
		out.Text.FontSize = parent.Text.FontSize
		out.Text.LineHeight = parent.Text.FontSize * defaultLineHeightRatio
	case "font-weight":
		out.Text.FontWeight = parent.Text.FontWeight
	case "font-style":
		out.Text.Italic = parent.Text.Italic
	case "color":
		out.Text.Color = parent.Text.Color
	case "text-align":
		out.Text.Align = parent.Text.Align
	case "line-height":
		out.Text.LineHeight = parent.Text.LineHeight
	case "letter-spacing":
		out.Text.LetterSpacing = parent.Text.LetterSpacing
	case "text-transform":
		out.Text.Transform = parent.Text.Transform
	case "text-decoration":
		out.Text.Decoration = parent.Text.Decoration
	case "white-space":
		out.Text.WhiteSpace = parent.Text.WhiteSpace
	case "vertical-align":
		out.Text.VerticalAlign = parent.Text.VerticalAlign
	}
}

// applyDeclaration applies one property:value pair onto out. It returns
// true if the property was recognized and the value parsed successfully;
// per §4.1, an unrecognized property or unparseable value is silently
// discarded and out keeps its previous value for that property.
func applyDeclaration(out *domain.StyleDeclaration, d Declaration) bool {
	fs := out.Text.FontSize
	switch d.Property {
	case "font-family":
		out.Text.FontFamily = d.Value
		return true
	case "font-size":
		if n, ok := ParseLength(d.Value, fs, fs); ok {
			out.Text.FontSize = n
			out.Text.LineHeight = n * defaultLineHeightRatio
			return true
		}
	case "font-weight":
		if n, ok := ParseFontWeight(d.Value); ok {
			out.Text.FontWeight = n
			return true
		}
	case "font-style":
		out.Text.Italic = d.Value == "italic"
		return true
	case "color":
		if c, ok := ParseColor(d.Value); ok {
			out.Text.Color = c
			return true
		}
	case "text-align":
		out.Text.Align = domain.TextAlign(d.Value)
		return true
	case "line-height":
		if n, ok := ParseLineHeight(d.Value, fs); ok {
			out.Text.LineHeight = n
			return true
		}
	case "letter-spacing":
		if n, ok := ParseLength(d.Value, fs, 0); ok {
			out.Text.LetterSpacing = n
			return true
		}
	case "text-transform":
		out.Text.Transform = domain.TextTransform(d.Value)
		return true
	case "text-decoration":
		out.Text.Decoration = domain.TextDecoration(d.Value)
		return true
	case "white-space":
		if d.Value == "pre" {
			out.Text.WhiteSpace = domain.WhiteSpacePre
		} else {
			out.Text.WhiteSpace = domain.WhiteSpaceNormal
		}
		return true
	case "vertical-align":
		out.Text.VerticalAlign = domain.VerticalAlign(d.Value)
		return true

	case "display":
		out.Flex.Display = domain.Display(d.Value)
		return true
	case "flex-direction":
		out.Flex.FlexDirection = domain.FlexDirection(d.Value)
		return true
	case "justify-content":
		out.Flex.JustifyContent = domain.JustifyContent(d.Value)
		return true
	case "align-items":
		out.Flex.AlignItems = domain.AlignItems(d.Value)
		return true
	case "gap":
		if n, ok := ParseLength(d.Value, fs, 0); ok {
			out.Flex.Gap = n
			return true
		}
	case "row-gap":
		if n, ok := ParseLength(d.Value, fs, 0); ok {
			out.Flex.RowGap = n
			return true
		}
	case "column-gap":
		if n, ok := ParseLength(d.Value, fs, 0); ok {
			out.Flex.ColumnGap = n
			return true
		}

	case "width":
		if n, ok := ParseLength(d.Value, fs, 0); ok {
			out.Box.Width = &n
			return true
		}
	case "height":
		if n, ok := ParseLength(d.Value, fs, 0); ok {
			out.Box.Height = &n
			return true
		}
	case "max-width":
		if n, ok := ParseLength(d.Value, fs, 0); ok {
			out.Box.MaxWidth = &n
			return true
		}
	case "max-height":
		if n, ok := ParseLength(d.Value, fs, 0); ok {
			out.Box.MaxHeight = &n
			return true
		}
	case "border-radius":
		if n, ok := ParseLength(d.Value, fs, 0); ok {
			out.Box.BorderRadius = n
			return true
		}
	case "opacity":
		if n, ok := parseFloatValue(d.Value); ok {
			out.Box.Opacity = n
			return true
		}
	case "background-color":
		if c, ok := ParseColor(d.Value); ok {
			out.Box.Background = c
			return true
		}

	case "margin":
		if vals, ok := ParseShorthandLengths(d.Value, fs); ok {
			s := domain.ExpandSpacing(vals...)
			out.Box.Margin = s
			return true
		}
	case "margin-top":
		if n, ok := ParseLength(d.Value, fs, 0); ok {
			out.Box.Margin.Top = n
			return true
		}
	case "margin-bottom":
		if n, ok := ParseLength(d.Value, fs, 0); ok {
			out.Box.Margin.Bottom = n
			return true
		}
	case "padding":
		if vals, ok := ParseShorthandLengths(d.Value, fs); ok {
			s := domain.ExpandSpacing(vals...)
			out.Box.Padding = s
			return true
		}
	case "padding-top":
		if n, ok := ParseLength(d.Value, fs, 0); ok {
			out.Box.Padding.Top = n
			return true
		}
	case "padding-bottom":
		if n, ok := ParseLength(d.Value, fs, 0); ok {
			out.Box.Padding.Bottom = n
			return true
		}
	case "padding-left":
		if n, ok := ParseLength(d.Value, fs, 0); ok {
			out.Box.Padding.Left = n
			return true
		}
	case "padding-right":
		if n, ok := ParseLength(d.Value, fs, 0); ok {
			out.Box.Padding.Right = n
			return true
		}
	case "border-bottom":
		if bs, ok := parseBorderShorthand(d.Value); ok {
			out.Box.Border[2] = bs
			return true
		}
	}
	return false
}

func parseFloatValue(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	n, ok := ParseLength(raw, 0, 0)
	return n, ok
}

// parseBorderShorthand parses "0.75pt solid black" style values.
func parseBorderShorthand(raw string) (domain.BorderStyle, bool) {
	fields := strings.Fields(raw)
	var bs domain.BorderStyle
	bs.Style = domain.BorderSolid
	bs.Color = domain.ColorBlack
	found := false
	for _, f := range fields {
		if n, ok := ParseLength(f, 0, 0); ok {
			bs.Width = n
			found = true
			continue
		}
		switch f {
		case "solid", "dashed", "dotted", "none":
			bs.Style = domain.BorderLineStyle(f)
			found = true
			continue
		}
		if c, ok := ParseColor(f); ok {
			bs.Color = c
			found = true
		}
	}
	return bs, found
}
