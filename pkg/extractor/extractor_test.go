package extractor

import (
	"archive/zip"
	"bytes"
	"testing"

	"ai-study-notebook-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestExtractPlainText(t *testing.T) {
	e := NewDocumentExtractor()

	got, err := e.Extract([]byte("plain contents"), "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "plain contents", got)

	got, err = e.Extract([]byte("# Heading"), "notes.md")
	require.NoError(t, err)
	assert.Equal(t, "# Heading", got)
}

func TestExtractDocx(t *testing.T) {
	data := buildDocx(t, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second</w:t></w:r><w:r><w:t xml:space="preserve"> paragraph.</w:t></w:r></w:p>
  </w:body>
</w:document>`)

	got, err := NewDocumentExtractor().Extract(data, "Notes.DOCX")
	require.NoError(t, err)
	assert.Equal(t, "First paragraph.\nSecond paragraph.", got)
}

func TestExtractDocxWithTabsAndBreaks(t *testing.T) {
	data := buildDocx(t, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>a</w:t><w:tab/><w:t>b</w:t><w:br/><w:t>c</w:t></w:r></w:p>
  </w:body>
</w:document>`)

	got, err := NewDocumentExtractor().Extract(data, "notes.docx")
	require.NoError(t, err)
	assert.Equal(t, "a\tb\nc", got)
}

func TestExtractDocxCorrupt(t *testing.T) {
	_, err := NewDocumentExtractor().Extract([]byte("not a zip"), "notes.docx")
	require.Error(t, err)
	assert.Equal(t, apperror.KindExtractionError, apperror.KindOf(err))
}

func TestExtractDocxMissingDocument(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte("<w:styles/>"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = NewDocumentExtractor().Extract(buf.Bytes(), "notes.docx")
	require.Error(t, err)
	assert.Equal(t, apperror.KindExtractionError, apperror.KindOf(err))
}

func TestExtractUnsupportedFormat(t *testing.T) {
	_, err := NewDocumentExtractor().Extract([]byte("binary"), "slides.pptx")
	require.Error(t, err)
	assert.Equal(t, apperror.KindUnsupportedFormat, apperror.KindOf(err))
}
