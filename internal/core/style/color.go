package style

import (
	"regexp"
	"strconv"
	"strings"

	"resumewright/internal/core/domain"
)

// namedColors is the CSS named-color table. Grounded on the teacher's
// internal/core/engine/css.Parser.parseColor, which keeps the same closed
// set for an inline-style subset rather than the full CSS Color Module list.
var namedColors = map[string]domain.Color{
	"black":       {R: 0, G: 0, B: 0, A: 1},
	"white":       {R: 255, G: 255, B: 255, A: 1},
	"red":         {R: 255, G: 0, B: 0, A: 1},
	"green":       {R: 0, G: 128, B: 0, A: 1},
	"blue":        {R: 0, G: 0, B: 255, A: 1},
	"gray":        {R: 128, G: 128, B: 128, A: 1},
	"grey":        {R: 128, G: 128, B: 128, A: 1},
	"yellow":      {R: 255, G: 255, B: 0, A: 1},
	"orange":      {R: 255, G: 165, B: 0, A: 1},
	"purple":      {R: 128, G: 0, B: 128, A: 1},
	"transparent": {R: 0, G: 0, B: 0, A: 0},
}

var (
	hexShortRE = regexp.MustCompile(`^#([0-9a-fA-F]{3})$`)
	hexLongRE  = regexp.MustCompile(`^#([0-9a-fA-F]{6})$`)
	rgbRE      = regexp.MustCompile(`^rgba?\(\s*([\d.]+)\s*,\s*([\d.]+)\s*,\s*([\d.]+)\s*(?:,\s*([\d.]+)\s*)?\)$`)
)

// ParseColor accepts named CSS colors, #RGB, #RRGGBB, rgb(...), rgba(...)
// per §3. Returns false if the value is not recognized (callers discard
// silently per §4.1's "invalid values are discarded" policy).
func ParseColor(raw string) (domain.Color, bool) {
	v := strings.TrimSpace(strings.ToLower(raw))
	if v == "" {
		return domain.Color{}, false
	}
	if c, ok := namedColors[v]; ok {
		return c, true
	}
	if m := hexShortRE.FindStringSubmatch(v); m != nil {
		hex := m[1]
		r := hexByte(string(hex[0]) + string(hex[0]))
		g := hexByte(string(hex[1]) + string(hex[1]))
		b := hexByte(string(hex[2]) + string(hex[2]))
		return domain.Color{R: r, G: g, B: b, A: 1}, true
	}
	if m := hexLongRE.FindStringSubmatch(v); m != nil {
		hex := m[1]
		r := hexByte(hex[0:2])
		g := hexByte(hex[2:4])
		b := hexByte(hex[4:6])
		return domain.Color{R: r, G: g, B: b, A: 1}, true
	}
	if m := rgbRE.FindStringSubmatch(v); m != nil {
		r, _ := strconv.ParseFloat(m[1], 64)
		g, _ := strconv.ParseFloat(m[2], 64)
		b, _ := strconv.ParseFloat(m[3], 64)
		a := 1.0
		if m[4] != "" {
			a, _ = strconv.ParseFloat(m[4], 64)
		}
		return domain.Color{R: clampByte(r), G: clampByte(g), B: clampByte(b), A: float32(a)}, true
	}
	return domain.Color{}, false
}

func hexByte(s string) uint8 {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0
	}
	return uint8(v)
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// FlattenAlpha resolves the §9 Open Question on transparency: alpha < 1 is
// flattened against opaque white at resolution time rather than rejected,
// since the archival profile forbids translucent output but resolution
// should not fail outright.
func FlattenAlpha(c domain.Color) domain.Color {
	if c.A >= 1 {
		return c
	}
	a := float64(c.A)
	return domain.Color{
		R: blendByte(c.R, 255, a),
		G: blendByte(c.G, 255, a),
		B: blendByte(c.B, 255, a),
		A: 1,
	}
}

func blendByte(fg uint8, bg uint8, alpha float64) uint8 {
	v := float64(fg)*alpha + float64(bg)*(1-alpha)
	return clampByte(v)
}

// tailwindPalette is the fixed color-shade table of §4.2: gray/blue/red/green
// 50-900 plus black/white. Unknown color/shade pairs produce no output.
var tailwindPalette = map[string]map[string]domain.Color{
	"gray": {
		"50": rgb(249, 250, 251), "100": rgb(243, 244, 246), "200": rgb(229, 231, 235),
		"300": rgb(209, 213, 219), "400": rgb(156, 163, 175), "500": rgb(107, 114, 128),
		"600": rgb(75, 85, 99), "700": rgb(55, 65, 81), "800": rgb(31, 41, 55), "900": rgb(17, 24, 39),
	},
	"blue": {
		"50": rgb(239, 246, 255), "100": rgb(219, 234, 254), "200": rgb(191, 219, 254),
		"300": rgb(147, 197, 253), "400": rgb(96, 165, 250), "500": rgb(59, 130, 246),
		"600": rgb(37, 99, 235), "700": rgb(29, 78, 216), "800": rgb(30, 64, 175), "900": rgb(30, 58, 138),
	},
	"red": {
		"50": rgb(254, 242, 242), "100": rgb(254, 226, 226), "200": rgb(254, 202, 202),
		"300": rgb(252, 165, 165), "400": rgb(248, 113, 113), "500": rgb(239, 68, 68),
		"600": rgb(220, 38, 38), "700": rgb(185, 28, 28), "800": rgb(153, 27, 27), "900": rgb(127, 29, 29),
	},
	"green": {
		"50": rgb(240, 253, 244), "100": rgb(220, 252, 231), "200": rgb(187, 247, 208),
		"300": rgb(134, 239, 172), "400": rgb(74, 222, 128), "500": rgb(34, 197, 94),
		"600": rgb(22, 163, 74), "700": rgb(21, 128, 61), "800": rgb(22, 101, 52), "900": rgb(20, 83, 45),
	},
}

func rgb(r, g, b uint8) domain.Color { return domain.Color{R: r, G: g, B: b, A: 1} }

// TailwindColor resolves a "{color}-{shade}" pair (e.g. "blue-600"), plus
// the bare "black"/"white" shortcuts. ok is false for unknown pairs.
func TailwindColor(color, shade string) (domain.Color, bool) {
	if shade == "" {
		switch color {
		case "black":
			return domain.Color{A: 1}, true
		case "white":
			return domain.Color{R: 255, G: 255, B: 255, A: 1}, true
		}
		return domain.Color{}, false
	}
	shades, ok := tailwindPalette[color]
	if !ok {
		return domain.Color{}, false
	}
	c, ok := shades[shade]
	return c, ok
}
