package export

import (
	"bytes"
	"fmt"
	"strings"
)

// A4 geometry in PostScript points, with a 15 mm margin, Helvetica 10 pt and
// a 6 mm line height. The first baseline sits 20 mm below the top edge.
const (
	pdfPageWidth   = 595.28
	pdfPageHeight  = 841.89
	pdfMargin      = 42.52
	pdfFontSize    = 10
	pdfLineHeight  = 17.01
	pdfFirstLineY  = pdfPageHeight - 56.69
	pdfMaxLineRune = 100
)

// PDF strips Markdown markers from the improved content, wraps it to the
// page width and emits a single-font PDF. Output is deterministic for a
// given input.
func PDF(content string) ([]byte, error) {
	cleaned := strings.NewReplacer("**", "", "#", "", "*", "•").Replace(content)

	lines := wrapLines(cleaned, pdfMaxLineRune)
	pages := paginate(lines, linesPerPage())
	if len(pages) == 0 {
		pages = [][]string{nil}
	}

	return assemblePDF(pages), nil
}

func linesPerPage() int {
	n := 1
	for y := pdfFirstLineY - pdfLineHeight; y >= pdfMargin; y -= pdfLineHeight {
		n++
	}
	return n
}

// wrapLines breaks paragraphs at word boundaries so no line exceeds the
// limit. Words longer than a whole line are split hard.
func wrapLines(text string, limit int) []string {
	var out []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := ""
		for _, word := range words {
			for len([]rune(word)) > limit {
				if line != "" {
					out = append(out, line)
					line = ""
				}
				runes := []rune(word)
				out = append(out, string(runes[:limit]))
				word = string(runes[limit:])
			}
			switch {
			case line == "":
				line = word
			case len([]rune(line))+1+len([]rune(word)) <= limit:
				line += " " + word
			default:
				out = append(out, line)
				line = word
			}
		}
		out = append(out, line)
	}
	return out
}

func paginate(lines []string, perPage int) [][]string {
	var pages [][]string
	for len(lines) > 0 {
		n := perPage
		if n > len(lines) {
			n = len(lines)
		}
		pages = append(pages, lines[:n])
		lines = lines[n:]
	}
	return pages
}

// assemblePDF writes the object graph by hand: catalog, page tree, one
// Helvetica font, then a page and content stream per page, followed by the
// cross-reference table and trailer.
func assemblePDF(pages [][]string) []byte {
	objectCount := 3 + 2*len(pages)
	offsets := make([]int, objectCount+1)
	var buf bytes.Buffer

	buf.WriteString("%PDF-1.4\n")

	writeObj := func(num int, body string) {
		offsets[num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}

	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}
	writeObj(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>",
		strings.Join(kids, " "), len(pages)))

	writeObj(3, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	for i, page := range pages {
		pageNum := 4 + 2*i
		streamNum := pageNum + 1
		writeObj(pageNum, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %.2f %.2f] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			pdfPageWidth, pdfPageHeight, streamNum))

		stream := contentStream(page)
		writeObj(streamNum, fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", len(stream), stream))
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", objectCount+1)
	buf.WriteString("0000000000 65535 f \n")
	for num := 1; num <= objectCount; num++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[num])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		objectCount+1, xrefOffset)

	return buf.Bytes()
}

func contentStream(lines []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "BT\n/F1 %d Tf\n%.2f TL\n%.2f %.2f Td\n",
		pdfFontSize, pdfLineHeight, pdfMargin, pdfFirstLineY)
	for i, line := range lines {
		if i > 0 {
			b.WriteString("T*\n")
		}
		fmt.Fprintf(&b, "(%s) Tj\n", escapePDFString(line))
	}
	b.WriteString("ET\n")
	return b.String()
}

// escapePDFString escapes the PDF string delimiters and folds text into the
// WinAnsi range. The bullet glyph lands on its WinAnsi code point; anything
// outside Latin-1 degrades to '?'.
func escapePDFString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '\\' || r == '(' || r == ')':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '•':
			b.WriteByte(0x95)
		case r < 0x20:
			fmt.Fprintf(&b, "\\%03o", r)
		case r < 0x100:
			b.WriteByte(byte(r))
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}
