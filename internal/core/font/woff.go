package font

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"io"
)

const woffMagic = 0x774F4646 // "wOFF"

// woffHeader is the 44-byte WOFF header (§4.8).
type woffHeader struct {
	Signature      uint32
	Flavor         uint32
	Length         uint32
	NumTables      uint16
	Reserved       uint16
	TotalSfntSize  uint32
	MajorVersion   uint16
	MinorVersion   uint16
	MetaOffset     uint32
	MetaLength     uint32
	MetaOrigLength uint32
	PrivOffset     uint32
	PrivLength     uint32
}

// woffTableEntry is one 20-byte table-directory entry (§4.8).
type woffTableEntry struct {
	Tag          [4]byte
	Offset       uint32
	CompLength   uint32
	OrigLength   uint32
	OrigChecksum uint32
}

// DecompressWOFF reassembles a WOFF-wrapped font into plain sfnt bytes: for
// every table directory entry, inflate via zlib when CompLength < OrigLength
// and assert the inflated length matches, otherwise copy verbatim; then
// rebuild a 12-byte sfnt header with correctly computed searchRange/
// entrySelector/rangeShift, 4-byte-aligned, checksummed table entries, per
// §4.8.
func DecompressWOFF(data []byte, maxSize int) ([]byte, error) {
	if maxSize <= 0 {
		maxSize = MaxDecompressedSize
	}
	if len(data) < 44 {
		return nil, &DecodeError{Format: "woff", Reason: "input shorter than the 44-byte header"}
	}
	r := bytes.NewReader(data)
	var hdr woffHeader
	if err := binary.Read(r, binary.BigEndian, &hdr); err != nil {
		return nil, &DecodeError{Format: "woff", Reason: "malformed header: " + err.Error()}
	}
	if hdr.Signature != woffMagic {
		return nil, &DecodeError{Format: "woff", Reason: "bad magic"}
	}
	if int(hdr.Length) > maxSize*2 {
		return nil, &DecodeError{Format: "woff", Reason: "declared length exceeds the configured limit"}
	}

	entries := make([]woffTableEntry, hdr.NumTables)
	for i := range entries {
		if err := binary.Read(r, binary.BigEndian, &entries[i]); err != nil {
			return nil, &DecodeError{Format: "woff", Reason: "truncated table directory"}
		}
	}

	type tableData struct {
		tag  [4]byte
		data []byte
		sum  uint32
	}
	tables := make([]tableData, 0, len(entries))
	var total int
	for _, e := range entries {
		if int(e.Offset)+int(e.CompLength) > len(data) {
			return nil, &DecodeError{Format: "woff", Reason: "table extends past end of input"}
		}
		raw := data[e.Offset : e.Offset+e.CompLength]
		var out []byte
		if e.CompLength < e.OrigLength {
			zr, err := zlib.NewReader(bytes.NewReader(raw))
			if err != nil {
				return nil, &DecodeError{Format: "woff", Reason: "zlib init: " + err.Error()}
			}
			inflated, err := io.ReadAll(io.LimitReader(zr, int64(maxSize)+1))
			zr.Close()
			if err != nil {
				return nil, &DecodeError{Format: "woff", Reason: "zlib inflate: " + err.Error()}
			}
			if len(inflated) != int(e.OrigLength) {
				return nil, &DecodeError{Format: "woff", Reason: "inflated length mismatch"}
			}
			out = inflated
		} else {
			out = append([]byte(nil), raw...)
		}
		total += len(out)
		if total > maxSize {
			return nil, &DecodeError{Format: "woff", Reason: "decompressed size exceeds the configured limit"}
		}
		tables = append(tables, tableData{tag: e.Tag, data: out, sum: e.OrigChecksum})
	}

	numTables := len(tables)
	searchRange, entrySelector, rangeShift := sfntSearchParams(numTables)

	var out bytes.Buffer
	binary.Write(&out, binary.BigEndian, hdr.Flavor)
	binary.Write(&out, binary.BigEndian, uint16(numTables))
	binary.Write(&out, binary.BigEndian, searchRange)
	binary.Write(&out, binary.BigEndian, entrySelector)
	binary.Write(&out, binary.BigEndian, rangeShift)

	headerSize := 12 + 16*numTables
	offset := uint32(headerSize)
	type dirEntry struct {
		tag      [4]byte
		checksum uint32
		offset   uint32
		length   uint32
	}
	dir := make([]dirEntry, numTables)
	bodies := make([][]byte, numTables)
	for i, t := range tables {
		padded := padTo4(t.data)
		dir[i] = dirEntry{tag: t.tag, checksum: checksumTable(padded), offset: offset, length: uint32(len(t.data))}
		bodies[i] = padded
		offset += uint32(len(padded))
	}
	for _, d := range dir {
		out.Write(d.tag[:])
		binary.Write(&out, binary.BigEndian, d.checksum)
		binary.Write(&out, binary.BigEndian, d.offset)
		binary.Write(&out, binary.BigEndian, d.length)
	}
	for _, b := range bodies {
		out.Write(b)
	}
	result := out.Bytes()
	fixHeadChecksumAdjustment(result)
	return result, nil
}

func padTo4(b []byte) []byte {
	n := (4 - len(b)%4) % 4
	if n == 0 {
		return b
	}
	return append(append([]byte(nil), b...), make([]byte, n)...)
}

func checksumTable(padded []byte) uint32 {
	var sum uint32
	for i := 0; i+4 <= len(padded); i += 4 {
		sum += binary.BigEndian.Uint32(padded[i : i+4])
	}
	return sum
}

// sfntSearchParams computes the binary-search parameters an sfnt header's
// table directory requires, per the TrueType spec.
func sfntSearchParams(numTables int) (searchRange, entrySelector, rangeShift uint16) {
	entries := 1
	maxPow2 := 0
	for entries*2 <= numTables {
		entries *= 2
		maxPow2++
	}
	searchRange = uint16(entries * 16)
	entrySelector = uint16(maxPow2)
	rangeShift = uint16(numTables*16) - searchRange
	return
}
