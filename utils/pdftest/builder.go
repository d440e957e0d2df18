// Package pdftest builds small, valid PDF documents for tests.
package pdftest

import (
	"bytes"
	"fmt"
	"strings"
)

// LineMode selects the text operators used to move between lines.
type LineMode int

const (
	// NextLine uses TL and T*.
	NextLine LineMode = iota
	// MoveText uses a relative 0 -14 Td per line.
	MoveText
	// TextMatrix draws each line in its own BT block positioned with Tm.
	TextMatrix
	// Quote uses TL and the ' operator.
	Quote
)

func (m LineMode) String() string {
	switch m {
	case MoveText:
		return "Td"
	case TextMatrix:
		return "Tm"
	case Quote:
		return "quote"
	default:
		return "T*"
	}
}

// Modes lists every LineMode.
var Modes = []LineMode{NextLine, MoveText, TextMatrix, Quote}

// Build returns a PDF with one page per element of pages. Each string in a
// page is drawn on its own text line; a page with no lines has no text.
func Build(pages ...[]string) []byte {
	return BuildWith(NextLine, pages...)
}

// BuildWith is Build with an explicit line mode.
func BuildWith(mode LineMode, pages ...[]string) []byte {
	streams := make([]string, len(pages))
	for i, lines := range pages {
		streams[i] = contentStream(mode, lines)
	}
	return Raw(streams...)
}

// Raw returns a PDF with one page per content stream. Font /F1 is Helvetica
// without widths; /F2 is a monospaced font with 600-unit glyphs.
func Raw(streams ...string) []byte {
	var objects []string

	// 1 catalog, 2 page tree, 3 font; then a page + content pair per page
	kids := make([]string, len(streams))
	for i := range streams {
		kids[i] = fmt.Sprintf("%d 0 R", 5+2*i)
	}
	objects = append(objects,
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(streams)),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
		fmt.Sprintf("<< /Type /Font /Subtype /Type1 /BaseFont /Courier /Encoding /WinAnsiEncoding "+
			"/FirstChar 32 /LastChar 126 /Widths [%s] >>", strings.TrimSpace(strings.Repeat("600 ", 95))),
	)

	for i, content := range streams {
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] "+
				"/Resources << /Font << /F1 3 0 R /F2 4 0 R >> >> /Contents %d 0 R >>", 6+2*i),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		)
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func contentStream(mode LineMode, lines []string) string {
	if len(lines) == 0 {
		return "q\nQ"
	}
	var b strings.Builder
	switch mode {
	case TextMatrix:
		for i, line := range lines {
			fmt.Fprintf(&b, "BT\n/F1 12 Tf\n1 0 0 1 72 %d Tm\n(%s) Tj\nET\n", 720-14*i, escape(line))
		}
	case Quote:
		b.WriteString("BT\n/F1 12 Tf\n14 TL\n72 734 Td\n")
		for _, line := range lines {
			fmt.Fprintf(&b, "(%s) '\n", escape(line))
		}
		b.WriteString("ET\n")
	default:
		b.WriteString("BT\n/F1 12 Tf\n14 TL\n72 720 Td\n")
		for i, line := range lines {
			if i > 0 {
				if mode == MoveText {
					b.WriteString("0 -14 Td\n")
				} else {
					b.WriteString("T*\n")
				}
			}
			fmt.Fprintf(&b, "(%s) Tj\n", escape(line))
		}
		b.WriteString("ET\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func escape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`).Replace(s)
}
