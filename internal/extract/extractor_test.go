package extract

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praktiki/certverify/constants"
	"github.com/praktiki/certverify/internal/ocr"
)

// fakeRunner answers tesseract invocations with canned text and fails
// everything else, so no external binaries are needed.
type fakeRunner struct {
	tesseractOut string
	err          error
}

func (f fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	if f.err != nil {
		return nil, []byte("boom"), f.err
	}
	if strings.Contains(name, "tesseract") {
		return []byte(f.tesseractOut), nil, nil
	}
	return nil, []byte("unexpected command " + name), os.ErrNotExist
}

func newTestExtractor(r ocr.Runner) *Extractor {
	engine := ocr.NewEngineWithRunner(ocr.Config{}, r, nil)
	return NewExtractor(engine, nil)
}

func TestExtractImage(t *testing.T) {
	x := newTestExtractor(fakeRunner{tesseractOut: "Internship Certificate\n"})
	res := x.Extract(context.Background(), "/tmp/cert.png")

	assert.Equal(t, constants.IMAGE, res.SourceFormat)
	assert.Equal(t, "image-ocr", res.Method)
	assert.Equal(t, 1, res.Pages)
	assert.Equal(t, "Internship Certificate", res.Text)
	assert.Empty(t, res.Warnings)
}

func TestExtractImageOCRFailureDegrades(t *testing.T) {
	x := newTestExtractor(fakeRunner{err: os.ErrPermission})
	res := x.Extract(context.Background(), "/tmp/cert.jpg")

	assert.Empty(t, res.Text)
	assert.NotEmpty(t, res.Warnings)
}

func TestExtractUnknownExtensionGoesToOCR(t *testing.T) {
	x := newTestExtractor(fakeRunner{tesseractOut: "scanned text"})
	res := x.Extract(context.Background(), "/tmp/cert.tiff")

	assert.Equal(t, constants.IMAGE, res.SourceFormat)
	assert.Equal(t, "scanned text", res.Text)
}

func writeDocx(t *testing.T, paragraphs []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cert.docx")
	f, err := os.Create(path)
	require.NoError(t, err)

	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)

	var b strings.Builder
	b.WriteString(`<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		b.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}
	b.WriteString(`</w:body></w:document>`)

	_, err = w.Write([]byte(b.String()))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

func TestExtractDocx(t *testing.T) {
	x := newTestExtractor(fakeRunner{})
	path := writeDocx(t, []string{"Internship Certificate", "Awarded to Jane Roe"})

	res := x.Extract(context.Background(), path)
	assert.Equal(t, constants.DOCX, res.SourceFormat)
	assert.Equal(t, "docx", res.Method)
	assert.Equal(t, "Internship Certificate Awarded to Jane Roe", res.Text)
	assert.Empty(t, res.Warnings)
}

func TestExtractDocxCorruptDegrades(t *testing.T) {
	x := newTestExtractor(fakeRunner{})
	path := filepath.Join(t.TempDir(), "broken.docx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip archive"), 0o644))

	res := x.Extract(context.Background(), path)
	assert.Empty(t, res.Text)
	assert.NotEmpty(t, res.Warnings)
}

func TestExtractPDFUnreadableDegrades(t *testing.T) {
	// not a real PDF and pdftoppm fails too: empty text, warnings, no panic
	x := newTestExtractor(fakeRunner{err: os.ErrNotExist})
	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF- truncated"), 0o644))

	res := x.Extract(context.Background(), path)
	assert.Equal(t, constants.PDF, res.SourceFormat)
	assert.Empty(t, res.Text)
	assert.NotEmpty(t, res.Warnings)
}
