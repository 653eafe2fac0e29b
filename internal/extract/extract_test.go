package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestText_PlainText(t *testing.T) {
	got, err := Text([]byte("Hello World"), "text/plain", "resume.txt")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != "Hello World" {
		t.Fatalf("got %q, want %q", got, "Hello World")
	}
}

func TestText_PlainTextStripsBOMAndWhitespace(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("  Hello World \n")...)
	got, err := Text(data, "text/plain; charset=utf-8", "resume.txt")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != "Hello World" {
		t.Fatalf("got %q", got)
	}
}

func TestText_Docx(t *testing.T) {
	const doc = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Managed a team of 5</w:t></w:r></w:p>
    <w:p><w:r><w:t>Shipped the launch</w:t></w:r></w:p>
  </w:body>
</w:document>`
	got, err := Text(buildDocx(t, doc), mimeDOCX, "resume.docx")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if !strings.Contains(got, "Managed a team of 5") || !strings.Contains(got, "Shipped the launch") {
		t.Fatalf("missing content: %q", got)
	}
	if !strings.Contains(got, "Managed a team of 5\n") {
		t.Fatalf("expected newline after paragraph: %q", got)
	}
}

func TestText_DocxDeclaredAsZip(t *testing.T) {
	doc := `<w:document xmlns:w="x"><w:body><w:p><w:r><w:t>hi</w:t></w:r></w:p></w:body></w:document>`
	if _, err := Text(buildDocx(t, doc), "application/zip", "resume.docx"); err != nil {
		t.Fatalf("expected docx to extract from zip mime, got %v", err)
	}
}

func TestText_RealZipRejected(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	text, err := Text(buf.Bytes(), "application/zip", "notes.zip")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if text != "" {
		t.Fatalf("expected no partial text, got %q", text)
	}
}

func TestText_UnrecognizedMime(t *testing.T) {
	_, err := Text([]byte("data"), "image/png", "photo.png")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestText_CorruptPDF(t *testing.T) {
	_, err := Text([]byte("not a pdf"), "application/pdf", "resume.pdf")
	if !errors.Is(err, ErrCorruptDocument) {
		t.Fatalf("expected ErrCorruptDocument, got %v", err)
	}
}

func TestText_CorruptDocx(t *testing.T) {
	_, err := Text([]byte("not a zip"), mimeDOCX, "resume.docx")
	if !errors.Is(err, ErrCorruptDocument) {
		t.Fatalf("expected ErrCorruptDocument, got %v", err)
	}
}

func TestText_DocxMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	if _, err := zw.Create("word/styles.xml"); err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err := Text(buf.Bytes(), mimeDOCX, "resume.docx")
	if !errors.Is(err, ErrCorruptDocument) {
		t.Fatalf("expected ErrCorruptDocument, got %v", err)
	}
}
