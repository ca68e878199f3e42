package font

import (
	"bytes"
	"encoding/binary"
)

// hintingTables are the optional tables §4.8 says to drop post-subset: they
// aren't consulted by PDF viewers (hinting is a rasterizer concern) and
// their removal is a meaningful size win on typical fonts.
var hintingTables = map[string]bool{"fpgm": true, "prep": true, "cvt ": true}

// StripHinting rebuilds an sfnt, dropping fpgm/prep/cvt tables.
func StripHinting(sfntBytes []byte) ([]byte, error) {
	tables, flavor, err := parseSfntTables(sfntBytes)
	if err != nil {
		return nil, err
	}
	kept := tables[:0]
	for _, t := range tables {
		if hintingTables[t.tag] {
			continue
		}
		kept = append(kept, t)
	}
	return rebuildSfnt(flavor, kept), nil
}

type sfntTable struct {
	tag  string
	data []byte
}

func parseSfntTables(b []byte) ([]sfntTable, uint32, error) {
	if len(b) < 12 {
		return nil, 0, &DecodeError{Format: "sfnt", Reason: "input shorter than sfnt header"}
	}
	flavor := binary.BigEndian.Uint32(b[0:4])
	numTables := int(binary.BigEndian.Uint16(b[4:6]))
	var tables []sfntTable
	for i := 0; i < numTables; i++ {
		rec := b[12+i*16 : 12+i*16+16]
		tag := string(rec[0:4])
		offset := binary.BigEndian.Uint32(rec[8:12])
		length := binary.BigEndian.Uint32(rec[12:16])
		if int(offset)+int(length) > len(b) {
			return nil, 0, &DecodeError{Format: "sfnt", Reason: "table " + tag + " extends past end of input"}
		}
		tables = append(tables, sfntTable{tag: tag, data: append([]byte(nil), b[offset:offset+length]...)})
	}
	return tables, flavor, nil
}

// fixHeadChecksumAdjustment recomputes the head table's checkSumAdjustment
// field (§6's "head-table checkSumAdjustment field must be correct"): zero
// it, sum the whole file as big-endian uint32 words, then store
// 0xB1B0AFBA minus that sum.
func fixHeadChecksumAdjustment(sfntBytes []byte) {
	numTables := int(binary.BigEndian.Uint16(sfntBytes[4:6]))
	headOffset := -1
	for i := 0; i < numTables; i++ {
		rec := sfntBytes[12+i*16 : 12+i*16+16]
		if string(rec[0:4]) == "head" {
			headOffset = int(binary.BigEndian.Uint32(rec[8:12]))
			break
		}
	}
	if headOffset < 0 || headOffset+12 > len(sfntBytes) {
		return
	}
	binary.BigEndian.PutUint32(sfntBytes[headOffset+8:headOffset+12], 0)
	var sum uint32
	for i := 0; i+4 <= len(sfntBytes); i += 4 {
		sum += binary.BigEndian.Uint32(sfntBytes[i : i+4])
	}
	adjustment := 0xB1B0AFBA - sum
	binary.BigEndian.PutUint32(sfntBytes[headOffset+8:headOffset+12], adjustment)
}

func rebuildSfnt(flavor uint32, tables []sfntTable) []byte {
	numTables := len(tables)
	searchRange, entrySelector, rangeShift := sfntSearchParams(numTables)

	var out bytes.Buffer
	binary.Write(&out, binary.BigEndian, flavor)
	binary.Write(&out, binary.BigEndian, uint16(numTables))
	binary.Write(&out, binary.BigEndian, searchRange)
	binary.Write(&out, binary.BigEndian, entrySelector)
	binary.Write(&out, binary.BigEndian, rangeShift)

	offset := uint32(12 + 16*numTables)
	bodies := make([][]byte, numTables)
	for i, t := range tables {
		padded := padTo4(t.data)
		var tagArr [4]byte
		copy(tagArr[:], t.tag)
		out.Write(tagArr[:])
		binary.Write(&out, binary.BigEndian, checksumTable(padded))
		binary.Write(&out, binary.BigEndian, offset)
		binary.Write(&out, binary.BigEndian, uint32(len(t.data)))
		bodies[i] = padded
		offset += uint32(len(padded))
	}
	for _, b := range bodies {
		out.Write(b)
	}
	result := out.Bytes()
	fixHeadChecksumAdjustment(result)
	return result
}
