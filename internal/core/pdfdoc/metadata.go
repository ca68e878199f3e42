package pdfdoc

import (
	"bytes"
	"compress/flate"
	"fmt"
	"strings"
	"time"
)

// Metadata is the document's bibliographic properties (§6 Config's
// title/author/subject/keywords/creator), carried separately from the
// per-conversion page geometry so pdfdoc stays agnostic of the top-level
// resumewright.Config shape.
type Metadata struct {
	Title, Author, Subject, Keywords, Creator string
}

// escapePDFString escapes parentheses/backslashes for a PDF literal string.
func escapePDFString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `(`, `\(`)
	s = strings.ReplaceAll(s, `)`, `\)`)
	return s
}

// pdfDate formats t, converted to UTC, as a PDF date string
// D:YYYYMMDDHHmmSSZ.
func pdfDate(t time.Time) string {
	return fmt.Sprintf("D:%sZ", t.UTC().Format("20060102150405"))
}

// writeInfo emits the document Info dictionary.
func writeInfo(w *Writer, md Metadata, now time.Time) int {
	id := w.Alloc()
	var b strings.Builder
	b.WriteString("<<")
	if md.Title != "" {
		fmt.Fprintf(&b, " /Title (%s)", escapePDFString(md.Title))
	}
	if md.Author != "" {
		fmt.Fprintf(&b, " /Author (%s)", escapePDFString(md.Author))
	}
	if md.Subject != "" {
		fmt.Fprintf(&b, " /Subject (%s)", escapePDFString(md.Subject))
	}
	if md.Keywords != "" {
		fmt.Fprintf(&b, " /Keywords (%s)", escapePDFString(md.Keywords))
	}
	creator := md.Creator
	if creator == "" {
		creator = "resumewright"
	}
	fmt.Fprintf(&b, " /Creator (%s) /Producer (%s)", escapePDFString(creator), escapePDFString(creator))
	fmt.Fprintf(&b, " /CreationDate (%s) /ModDate (%s)", pdfDate(now), pdfDate(now))
	b.WriteString(" >>")
	w.WriteObject(id, b.String())
	return id
}

// xmlEscape escapes the five XML special characters for safe interpolation
// into the XMP RDF packet (§4.9: "XML escape & < > \" ' in every
// interpolated value").
func xmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}

// buildXMP builds the PDF/A-1b XMP metadata packet: pdfaid:part=1,
// pdfaid:conformance=B, dc:title/creator/description/subject, and
// xmp:CreateDate/ModifyDate from the injected clock (§4.9, §9 — the clock
// is the only time source; no system clock call happens in this package).
func buildXMP(md Metadata, now time.Time) []byte {
	iso := now.UTC().Format(time.RFC3339)
	title := md.Title
	if title == "" {
		title = "Untitled"
	}
	author := md.Author
	subject := md.Subject
	keywords := md.Keywords

	var b strings.Builder
	b.WriteString(`<?xpacket begin="` + "﻿" + `" id="W5M0MpCehiHzreSzNTczkc9d"?>` + "\n")
	b.WriteString(`<x:xmpmeta xmlns:x="adobe:ns:meta/">` + "\n")
	b.WriteString(`<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">` + "\n")
	b.WriteString(`<rdf:Description rdf:about=""` + "\n")
	b.WriteString(`  xmlns:pdfaid="http://www.aiim.org/pdfa/ns/id/"` + "\n")
	b.WriteString(`  xmlns:dc="http://purl.org/dc/elements/1.1/"` + "\n")
	b.WriteString(`  xmlns:xmp="http://ns.adobe.com/xap/1.0/">` + "\n")
	b.WriteString(`  <pdfaid:part>1</pdfaid:part>` + "\n")
	b.WriteString(`  <pdfaid:conformance>B</pdfaid:conformance>` + "\n")
	fmt.Fprintf(&b, "  <dc:title><rdf:Alt><rdf:li xml:lang=\"x-default\">%s</rdf:li></rdf:Alt></dc:title>\n", xmlEscape(title))
	if author != "" {
		fmt.Fprintf(&b, "  <dc:creator><rdf:Seq><rdf:li>%s</rdf:li></rdf:Seq></dc:creator>\n", xmlEscape(author))
	}
	if subject != "" {
		fmt.Fprintf(&b, "  <dc:description><rdf:Alt><rdf:li xml:lang=\"x-default\">%s</rdf:li></rdf:Alt></dc:description>\n", xmlEscape(subject))
	}
	if keywords != "" {
		b.WriteString("  <dc:subject><rdf:Bag>\n")
		for _, kw := range strings.Split(keywords, ",") {
			kw = strings.TrimSpace(kw)
			if kw == "" {
				continue
			}
			fmt.Fprintf(&b, "    <rdf:li>%s</rdf:li>\n", xmlEscape(kw))
		}
		b.WriteString("  </rdf:Bag></dc:subject>\n")
	}
	fmt.Fprintf(&b, "  <xmp:CreateDate>%s</xmp:CreateDate>\n", xmlEscape(iso))
	fmt.Fprintf(&b, "  <xmp:ModifyDate>%s</xmp:ModifyDate>\n", xmlEscape(iso))
	b.WriteString("</rdf:Description>\n")
	b.WriteString("</rdf:RDF>\n")
	b.WriteString("</x:xmpmeta>\n")
	b.WriteString(`<?xpacket end="w"?>`)
	return []byte(b.String())
}

// writeXMPStream writes the XMP packet as an uncompressed metadata stream
// (PDF/A viewers commonly expect XMP readable without a filter).
func writeXMPStream(w *Writer, md Metadata, now time.Time) int {
	id := w.Alloc()
	packet := buildXMP(md, now)
	w.WriteStream(id, "/Type /Metadata /Subtype /XML", packet)
	return id
}

// writeOutputIntent emits the §4.9 OutputIntents array entry: a
// GTS_PDFA1 intent referencing an embedded, flate-compressed sRGB ICC
// profile stream, grounded on the teacher's OutputIntent struct shape
// (engine/render/pdf.go) generalized from a gofpdf options bag into actual
// PDF objects.
func writeOutputIntent(w *Writer) int {
	iccID := w.Alloc()
	profile := srgbICCProfile()
	var flated bytes.Buffer
	fw, _ := flate.NewWriter(&flated, flate.DefaultCompression)
	fw.Write(profile)
	fw.Close()
	w.WriteStream(iccID, fmt.Sprintf("/N 3 /Filter /FlateDecode /Length1 %d", len(profile)), flated.Bytes())

	intentID := w.Alloc()
	w.WriteObject(intentID, fmt.Sprintf(
		"<< /Type /OutputIntent /S /GTS_PDFA1 /OutputConditionIdentifier (sRGB IEC61966-2.1) /Info (sRGB IEC61966-2.1) /DestOutputProfile %d 0 R >>",
		iccID))
	return intentID
}
