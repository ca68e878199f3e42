package font

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/andybalholm/brotli"
)

func uintBase128(v uint32) []byte {
	var stack []byte
	stack = append(stack, byte(v&0x7f))
	v >>= 7
	for v > 0 {
		stack = append(stack, byte(v&0x7f)|0x80)
		v >>= 7
	}
	out := make([]byte, len(stack))
	for i, b := range stack {
		out[len(stack)-1-i] = b
	}
	return out
}

// buildTestWOFF2 wraps a single untransformed table (tag must be one of the
// known 63) into a minimal WOFF2 blob, exercising the non-glyf/loca path.
func buildTestWOFF2(t *testing.T, tag string, data []byte) []byte {
	t.Helper()
	tagIndex := -1
	for i, kt := range woff2KnownTags {
		if kt == tag {
			tagIndex = i
			break
		}
	}
	if tagIndex < 0 {
		t.Fatalf("tag %q not in woff2KnownTags", tag)
	}

	var dir bytes.Buffer
	dir.WriteByte(byte(tagIndex))
	dir.Write(uintBase128(uint32(len(data))))

	var compBuf bytes.Buffer
	bw := brotli.NewWriter(&compBuf)
	bw.Write(data)
	bw.Close()

	hdr := make([]byte, 48)
	binary.BigEndian.PutUint32(hdr[0:4], woff2Magic)
	binary.BigEndian.PutUint32(hdr[4:8], 0x00010000)
	totalLength := uint32(48 + dir.Len() + compBuf.Len())
	binary.BigEndian.PutUint32(hdr[8:12], totalLength)
	binary.BigEndian.PutUint16(hdr[12:14], 1) // numTables
	binary.BigEndian.PutUint32(hdr[16:20], 0) // totalSfntSize
	binary.BigEndian.PutUint32(hdr[20:24], uint32(compBuf.Len()))

	var out bytes.Buffer
	out.Write(hdr)
	out.Write(dir.Bytes())
	out.Write(compBuf.Bytes())
	return out.Bytes()
}

func TestDecompressWOFF2ReassemblesUntransformedTable(t *testing.T) {
	src := buildTestWOFF2(t, "head", make([]byte, 54))
	out, err := DecompressWOFF2(src, 0)
	if err != nil {
		t.Fatalf("DecompressWOFF2: %v", err)
	}
	tables, _, err := parseSfntTables(out)
	if err != nil {
		t.Fatalf("parseSfntTables(out): %v", err)
	}
	if len(tables) != 1 || tables[0].tag != "head" {
		t.Fatalf("expected a single head table, got %v", tables)
	}
}

func TestDecompressWOFF2RejectsBadMagic(t *testing.T) {
	bad := make([]byte, 48)
	if _, err := DecompressWOFF2(bad, 0); err == nil {
		t.Error("expected an error for a bad magic number")
	}
}

func TestDecompressWOFF2RejectsTruncatedInput(t *testing.T) {
	if _, err := DecompressWOFF2([]byte{1, 2, 3}, 0); err == nil {
		t.Error("expected an error for input shorter than the WOFF2 header")
	}
}

func TestDecompressWOFF2RecoversFromPanicOnCorruptTableDirectory(t *testing.T) {
	src := buildTestWOFF2(t, "head", make([]byte, 54))
	// Truncate right after the header, before the table directory/brotli
	// stream, so the reader runs off the end of the slice mid-parse.
	truncated := append([]byte(nil), src[:50]...)
	if _, err := DecompressWOFF2(truncated, 0); err == nil {
		t.Error("expected a recovered error, not a panic, for a truncated table directory")
	}
}

func TestByteReaderUVarintRoundTrips(t *testing.T) {
	for _, v := range []uint32{0, 1, 127, 128, 300, 16384, 2097151} {
		encoded := uintBase128(v)
		r := &byteReader{b: encoded}
		got := r.uVarint()
		if got != v {
			t.Errorf("uVarint round-trip for %d: got %d", v, got)
		}
	}
}
