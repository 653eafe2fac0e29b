// Package extract converts uploaded file bytes into plain text.
// Libraries used: github.com/ledongthuc/pdf (PDF); DOCX is unpacked directly
// (archive/zip + encoding/xml) since only raw text content is wanted.
package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

const (
	mimePDF   = "application/pdf"
	mimeDOCX  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimePlain = "text/plain"
)

// Text extracts plain text from an in-memory payload. The declared mime type
// decides the decoder; unrecognized types fail with ErrUnsupportedFormat and
// decoder failures with ErrCorruptDocument. No partial text is returned
// alongside an error, and nothing is persisted.
func Text(data []byte, mimeType string, fileName string) (string, error) {
	switch normalizeMimeType(mimeType, fileName, data) {
	case mimePDF:
		return extractPDF(data)
	case mimeDOCX:
		return extractDOCX(data)
	case mimePlain:
		return extractPlain(data), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, mimeType)
	}
}

func extractPDF(data []byte) (text string, err error) {
	// The pdf reader panics on some malformed files.
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = fmt.Errorf("%w: pdf: %v", ErrCorruptDocument, rec)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: pdf: %v", ErrCorruptDocument, err)
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: pdf page %d: %v", ErrCorruptDocument, i, err)
		}
		pages = append(pages, pageText)
	}
	return strings.TrimSpace(strings.Join(pages, "\n")), nil
}

func extractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: docx: %v", ErrCorruptDocument, err)
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", fmt.Errorf("%w: docx: document.xml not found", ErrCorruptDocument)
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", fmt.Errorf("%w: docx: %v", ErrCorruptDocument, err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("%w: docx: %v", ErrCorruptDocument, err)
	}
	return stripDocxXML(raw)
}

func stripDocxXML(raw []byte) (string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: docx: %v", ErrCorruptDocument, err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.Write(t)
		case xml.EndElement:
			// Paragraph and line-break ends become newlines.
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String()), nil
}

func extractPlain(data []byte) string {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	if utf8.Valid(data) {
		return strings.TrimSpace(string(data))
	}
	return strings.TrimSpace(strings.ToValidUTF8(string(data), "�"))
}

// normalizeMimeType lowercases the declared type, drops parameters, and maps
// DOCX payloads declared as generic zip onto the OOXML mime by probing the
// archive and then the file extension. Real zip archives stay unsupported.
func normalizeMimeType(mimeType string, fileName string, data []byte) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	if clean != "application/zip" {
		return clean
	}

	if zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data))); err == nil {
		for _, f := range zr.File {
			if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
				return mimeDOCX
			}
		}
	}

	if strings.ToLower(filepath.Ext(fileName)) == ".docx" {
		return mimeDOCX
	}
	return clean
}
