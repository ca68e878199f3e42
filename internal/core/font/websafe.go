package font

import "strings"

// webSafeFamilies maps common CSS family names to PDF Standard-14 base
// names, per §4.8. Lookup is case-insensitive and tolerant of a
// quoted/comma-separated CSS font-family list (only the first family is
// consulted, matching how browsers resolve a family stack).
var webSafeFamilies = map[string]string{
	"arial":            "Helvetica",
	"helvetica":        "Helvetica",
	"times":            "Times",
	"times new roman":  "Times",
	"georgia":          "Times",
	"courier":          "Courier",
	"courier new":      "Courier",
	"monospace":        "Courier",
	"verdana":          "Helvetica",
}

// StandardBaseName resolves a CSS font-family value to one of the three
// Standard-14 base families (Helvetica, Times, Courier), or "" if the
// family isn't a recognized web-safe name (the caller should then treat it
// as a font needing embedding).
func StandardBaseName(cssFamily string) string {
	first := cssFamily
	if i := strings.IndexByte(first, ','); i >= 0 {
		first = first[:i]
	}
	first = strings.Trim(first, " \t\"'")
	return webSafeFamilies[strings.ToLower(first)]
}

// StandardFontName combines a Standard-14 base name with weight and italic
// to produce the variant's PostScript name, e.g. "Times-BoldItalic" (§4.8:
// bold at weight >= 600).
func StandardFontName(base string, weight int, italic bool) string {
	bold := weight >= 600
	switch base {
	case "Helvetica":
		switch {
		case bold && italic:
			return "Helvetica-BoldOblique"
		case bold:
			return "Helvetica-Bold"
		case italic:
			return "Helvetica-Oblique"
		default:
			return "Helvetica"
		}
	case "Times":
		switch {
		case bold && italic:
			return "Times-BoldItalic"
		case bold:
			return "Times-Bold"
		case italic:
			return "Times-Italic"
		default:
			return "Times-Roman"
		}
	case "Courier":
		switch {
		case bold && italic:
			return "Courier-BoldOblique"
		case bold:
			return "Courier-Bold"
		case italic:
			return "Courier-Oblique"
		default:
			return "Courier"
		}
	default:
		return "Helvetica"
	}
}

// googleFonts is a fixed registry of popular Google Fonts family names
// (§4.8: "~50 popular family names"), used to decide whether a family
// should be embedded from a supplied/fetched font asset rather than
// silently falling back to a Standard-14 substitute.
var googleFonts = map[string]bool{
	"roboto": true, "open sans": true, "lato": true, "montserrat": true,
	"oswald": true, "source sans pro": true, "raleway": true, "pt sans": true,
	"merriweather": true, "noto sans": true, "ubuntu": true, "playfair display": true,
	"poppins": true, "nunito": true, "roboto condensed": true, "roboto slab": true,
	"pt serif": true, "lora": true, "inter": true, "work sans": true,
	"fira sans": true, "mulish": true, "rubik": true, "quicksand": true,
	"karla": true, "barlow": true, "dm sans": true, "titillium web": true,
	"libre franklin": true, "cabin": true, "heebo": true, "ibm plex sans": true,
	"josefin sans": true, "crimson text": true, "bitter": true, "eb garamond": true,
	"archivo": true, "nunito sans": true, "hind": true, "asap": true,
	"catamaran": true, "varela round": true, "dosis": true, "maven pro": true,
	"teko": true, "exo 2": true, "zilla slab": true, "manrope": true,
	"space grotesk": true, "outfit": true, "figtree": true,
}

// IsGoogleFont reports whether family is in the recognized Google Fonts
// registry, case-insensitively.
func IsGoogleFont(family string) bool {
	return googleFonts[strings.ToLower(strings.TrimSpace(family))]
}
