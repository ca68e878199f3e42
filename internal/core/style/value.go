package style

import (
	"regexp"
	"strconv"
	"strings"
)

// RootFontSize is the fixed root size rem resolves against (§4.1: "rem uses
// the root 12pt").
const RootFontSize = 12.0

// PxToPt is the 96dpi -> 72dpi conversion factor from §4.1.
const PxToPt = 0.75

var lengthRE = regexp.MustCompile(`^(-?[\d.]+)(px|pt|em|rem|%)?$`)

// ParseLength resolves a CSS length per §4.1: px->pt at 0.75, em/rem
// multiply the current font size (rem against RootFontSize), a bare number
// is treated as already being in points, % is returned as a fraction
// of the ref value supplied by the caller (the containing block's matching
// axis). ok is false for anything that doesn't parse as a length.
func ParseLength(raw string, currentFontSize, percentRef float64) (float64, bool) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, false
	}
	m := lengthRE.FindStringSubmatch(v)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	switch m[2] {
	case "px":
		return n * PxToPt, true
	case "em":
		return n * currentFontSize, true
	case "rem":
		return n * RootFontSize, true
	case "%":
		return n / 100 * percentRef, true
	case "pt", "":
		return n, true
	default:
		return 0, false
	}
}

// ParseLineHeight resolves the unitless-multiplier special case: a bare
// number (no unit) is a multiplier of fontSize, not a point value.
func ParseLineHeight(raw string, fontSize float64) (float64, bool) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, false
	}
	if n, err := strconv.ParseFloat(v, 64); err == nil {
		return n * fontSize, true
	}
	return ParseLength(v, fontSize, 0)
}

// ParseShorthandLengths splits a CSS shorthand value (margin/padding) on
// whitespace and parses 1-4 lengths. Per §4.1, a value that cannot parse as
// 1/2/3/4 lengths fails the whole property, not individual numbers.
func ParseShorthandLengths(raw string, currentFontSize float64) ([]float64, bool) {
	fields := strings.Fields(raw)
	if len(fields) == 0 || len(fields) > 4 {
		return nil, false
	}
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		n, ok := ParseLength(f, currentFontSize, 0)
		if !ok {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}

// ParseFontWeight maps CSS keyword/numeric font-weight values onto the
// numeric 100-900 scale.
func ParseFontWeight(raw string) (int, bool) {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch v {
	case "normal":
		return 400, true
	case "bold":
		return 700, true
	case "":
		return 0, false
	}
	if n, err := strconv.Atoi(v); err == nil && n >= 100 && n <= 900 {
		return n, true
	}
	return 0, false
}
