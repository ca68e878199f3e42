package font

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"testing"
)

// buildTestWOFF wraps the given tag->data tables into a minimal WOFF blob.
// When compress is true, table data is zlib-deflated and CompLength is set
// below OrigLength so DecompressWOFF takes the inflate path.
func buildTestWOFF(t *testing.T, tables map[string][]byte, compress bool) []byte {
	t.Helper()
	tags := make([]string, 0, len(tables))
	for tag := range tables {
		tags = append(tags, tag)
	}
	for i := 0; i < len(tags); i++ {
		for j := i + 1; j < len(tags); j++ {
			if tags[j] < tags[i] {
				tags[i], tags[j] = tags[j], tags[i]
			}
		}
	}

	type entry struct {
		tag                       string
		raw                       []byte
		compLength, origLength    uint32
		origChecksum              uint32
	}
	entries := make([]entry, 0, len(tags))
	for _, tag := range tags {
		data := tables[tag]
		origChecksum := checksumTable(padTo4(data))
		if compress {
			var buf bytes.Buffer
			zw := zlib.NewWriter(&buf)
			zw.Write(data)
			zw.Close()
			entries = append(entries, entry{tag: tag, raw: buf.Bytes(), compLength: uint32(buf.Len()), origLength: uint32(len(data)), origChecksum: origChecksum})
		} else {
			entries = append(entries, entry{tag: tag, raw: data, compLength: uint32(len(data)), origLength: uint32(len(data)), origChecksum: origChecksum})
		}
	}

	headerSize := 44
	dirSize := 20 * len(entries)
	offset := uint32(headerSize + dirSize)

	var body bytes.Buffer
	dirBytes := make([]byte, dirSize)
	for i, e := range entries {
		rec := dirBytes[i*20 : i*20+20]
		copy(rec[0:4], e.tag)
		binary.BigEndian.PutUint32(rec[4:8], offset)
		binary.BigEndian.PutUint32(rec[8:12], e.compLength)
		binary.BigEndian.PutUint32(rec[12:16], e.origLength)
		binary.BigEndian.PutUint32(rec[16:20], e.origChecksum)
		body.Write(e.raw)
		offset += e.compLength
	}

	var out bytes.Buffer
	hdr := make([]byte, 44)
	binary.BigEndian.PutUint32(hdr[0:4], woffMagic)
	binary.BigEndian.PutUint32(hdr[4:8], 0x00010000)
	binary.BigEndian.PutUint32(hdr[8:12], uint32(headerSize+dirSize+body.Len()))
	binary.BigEndian.PutUint16(hdr[12:14], uint16(len(entries)))
	out.Write(hdr)
	out.Write(dirBytes)
	out.Write(body.Bytes())
	return out.Bytes()
}

func TestDecompressWOFFReassemblesUncompressedTables(t *testing.T) {
	src := buildTestWOFF(t, map[string][]byte{
		"glyf": []byte("glyph-outline-data"),
		"head": make([]byte, 54),
	}, false)

	out, err := DecompressWOFF(src, 0)
	if err != nil {
		t.Fatalf("DecompressWOFF: %v", err)
	}
	tables, _, err := parseSfntTables(out)
	if err != nil {
		t.Fatalf("parseSfntTables(out): %v", err)
	}
	if len(tables) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(tables))
	}
}

func TestDecompressWOFFInflatesZlibTables(t *testing.T) {
	src := buildTestWOFF(t, map[string][]byte{
		"glyf": bytes.Repeat([]byte("AB"), 100),
		"head": make([]byte, 54),
	}, true)

	out, err := DecompressWOFF(src, 0)
	if err != nil {
		t.Fatalf("DecompressWOFF: %v", err)
	}
	tables, _, err := parseSfntTables(out)
	if err != nil {
		t.Fatalf("parseSfntTables(out): %v", err)
	}
	found := false
	for _, tbl := range tables {
		if tbl.tag == "glyf" {
			found = true
			if !bytes.Equal(tbl.data, bytes.Repeat([]byte("AB"), 100)) {
				t.Error("inflated glyf table data did not round-trip")
			}
		}
	}
	if !found {
		t.Fatal("glyf table missing from reassembled sfnt")
	}
}

func TestDecompressWOFFRejectsBadMagic(t *testing.T) {
	bad := make([]byte, 44)
	if _, err := DecompressWOFF(bad, 0); err == nil {
		t.Error("expected an error for a bad magic number")
	}
}

func TestDecompressWOFFRejectsTruncatedInput(t *testing.T) {
	if _, err := DecompressWOFF([]byte{1, 2, 3}, 0); err == nil {
		t.Error("expected an error for input shorter than the 44-byte header")
	}
}
