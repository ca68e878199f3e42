package font

import (
	"encoding/binary"
)

// buildTestSfnt assembles a minimal, well-formed sfnt blob from the given
// tag->data tables (padded/checksummed/offset correctly), for exercising
// the table-directory parsing and rebuild logic without a real font file.
func buildTestSfnt(tables map[string][]byte) []byte {
	tags := make([]string, 0, len(tables))
	for tag := range tables {
		tags = append(tags, tag)
	}
	// deterministic order
	for i := 0; i < len(tags); i++ {
		for j := i + 1; j < len(tags); j++ {
			if tags[j] < tags[i] {
				tags[i], tags[j] = tags[j], tags[i]
			}
		}
	}

	numTables := len(tags)
	searchRange, entrySelector, rangeShift := sfntSearchParams(numTables)

	out := make([]byte, 0, 256)
	hdr := make([]byte, 12)
	binary.BigEndian.PutUint32(hdr[0:4], 0x00010000)
	binary.BigEndian.PutUint16(hdr[4:6], uint16(numTables))
	binary.BigEndian.PutUint16(hdr[6:8], searchRange)
	binary.BigEndian.PutUint16(hdr[8:10], entrySelector)
	binary.BigEndian.PutUint16(hdr[10:12], rangeShift)
	out = append(out, hdr...)

	dirStart := len(out)
	out = append(out, make([]byte, 16*numTables)...)

	offset := uint32(len(out))
	for i, tag := range tags {
		data := tables[tag]
		padded := padTo4(data)
		rec := out[dirStart+i*16 : dirStart+i*16+16]
		copy(rec[0:4], tag)
		binary.BigEndian.PutUint32(rec[4:8], checksumTable(padded))
		binary.BigEndian.PutUint32(rec[8:12], offset)
		binary.BigEndian.PutUint32(rec[12:16], uint32(len(data)))
		out = append(out, padded...)
		offset += uint32(len(padded))
	}
	fixHeadChecksumAdjustment(out)
	return out
}
