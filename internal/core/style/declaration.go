package style

import "strings"

// Declaration is one "property: value" pair parsed out of an inline style
// attribute or a Tailwind utility's synthetic CSS string. Grounded on the
// teacher's css.Parser.parseDeclaration (colon split, !important stripped).
type Declaration struct {
	Property string
	Value    string
}

// ParseDeclarations splits a CSS declaration block ("color:red; font-size:
// 12pt") into individual Declarations. Malformed individual declarations
// (no colon) are skipped; per §4.1 a parse failure fails only the one
// property, never the whole style string.
func ParseDeclarations(block string) []Declaration {
	var out []Declaration
	for _, raw := range strings.Split(block, ";") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		idx := strings.Index(raw, ":")
		if idx < 0 {
			continue
		}
		prop := strings.ToLower(strings.TrimSpace(raw[:idx]))
		val := strings.TrimSpace(raw[idx+1:])
		val = strings.TrimSuffix(val, "!important")
		val = strings.TrimSpace(val)
		if prop == "" || val == "" {
			continue
		}
		out = append(out, Declaration{Property: prop, Value: val})
	}
	return out
}
