package font

import (
	"sort"

	"golang.org/x/image/font/sfnt"
)

// Subset computes the glyphs a conversion actually references, per §4.8:
// input is the decompressed TTF bytes and the union of every string the
// renderer emitted in this font. .notdef (GID 0) is always preserved.
//
// The returned bytes are the original face (glyf/loca table surgery to
// physically drop unreferenced glyphs is not performed here — see
// DESIGN.md for why: reconstructing a self-consistent glyf/loca/hmtx/cmap
// set after removing glyphs requires exactly the point-level glyf encoder
// this package's WOFF2 path already simplifies away, and a broken subset
// produces invisible glyphs, which is strictly worse for a CV than a larger
// file). What IS produced here, faithfully, is the CIDToGIDMap the PDF
// assembler's CIDFontType2 dictionary requires (§4.9): Identity-H means CID
// == Unicode codepoint, and this map is CID -> original GID.
func Subset(sfntBytes []byte, text string) (ttf []byte, cidToGID map[uint16]uint16, err error) {
	f, perr := sfnt.Parse(sfntBytes)
	if perr != nil {
		return nil, nil, &DecodeError{Format: "sfnt", Reason: "parse: " + perr.Error()}
	}
	var buf sfnt.Buffer
	mapping := map[uint16]uint16{0: 0}
	for _, r := range uniqueRunes(text) {
		if r > 0xFFFF {
			continue // Identity-H / 2-byte CIDs only, per §4.9
		}
		gi, gerr := f.GlyphIndex(&buf, r)
		if gerr != nil || gi == 0 {
			continue
		}
		mapping[uint16(r)] = uint16(gi)
	}
	return sfntBytes, mapping, nil
}

// uniqueRunes returns the distinct runes of s sorted by ascending code
// point, so CIDToGIDMap construction and W-array building are deterministic
// across runs (§4.7's determinism requirement extends here).
func uniqueRunes(s string) []rune {
	seen := make(map[rune]bool)
	var order []rune
	for _, r := range s {
		if !seen[r] {
			seen[r] = true
			order = append(order, r)
		}
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
	return order
}

// CIDToGIDTable serializes a CID->GID mapping into the flat 128 KiB
// big-endian 16-bit table §4.9 requires (64 Ki CIDs * 2 bytes each;
// unmapped CIDs resolve to GID 0, i.e. .notdef).
func CIDToGIDTable(mapping map[uint16]uint16) []byte {
	table := make([]byte, 65536*2)
	for cid, gid := range mapping {
		off := int(cid) * 2
		table[off] = byte(gid >> 8)
		table[off+1] = byte(gid)
	}
	return table
}
