package extractor

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"ai-study-notebook-be/internal/pkg/apperror"

	"github.com/gen2brain/go-fitz"
)

// Extractor turns an uploaded document into plain text for the notebook
// context.
type Extractor interface {
	Extract(data []byte, filename string) (string, error)
}

type DocumentExtractor struct{}

var _ Extractor = &DocumentExtractor{}

func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

func (e *DocumentExtractor) Extract(data []byte, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return e.extractPDF(data)
	case ".docx":
		return e.extractDOCX(data)
	case ".txt", ".md":
		return string(data), nil
	default:
		return "", apperror.New(apperror.KindUnsupportedFormat, "unsupported file type "+ext)
	}
}

func (e *DocumentExtractor) extractPDF(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", apperror.Wrap(apperror.KindExtractionError, "failed to open pdf", err)
	}
	defer doc.Close()

	pages := make([]string, 0, doc.NumPage())
	for pageNum := 0; pageNum < doc.NumPage(); pageNum++ {
		text, err := doc.Text(pageNum)
		if err != nil {
			return "", apperror.Wrap(apperror.KindExtractionError,
				fmt.Sprintf("failed to extract text from page %d", pageNum), err)
		}
		pages = append(pages, text)
	}
	return strings.Join(pages, "\n"), nil
}

// A .docx file is a zip archive; the visible text lives in the w:t runs of
// word/document.xml, with w:p marking paragraphs.
func (e *DocumentExtractor) extractDOCX(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", apperror.Wrap(apperror.KindExtractionError, "failed to open docx", err)
	}

	var document io.ReadCloser
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			document, err = f.Open()
			if err != nil {
				return "", apperror.Wrap(apperror.KindExtractionError, "failed to read docx document", err)
			}
			break
		}
	}
	if document == nil {
		return "", apperror.New(apperror.KindExtractionError, "docx has no word/document.xml")
	}
	defer document.Close()

	var text strings.Builder
	decoder := xml.NewDecoder(document)
	inRun := false
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", apperror.Wrap(apperror.KindExtractionError, "failed to parse docx document", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inRun = true
			case "tab":
				text.WriteString("\t")
			case "br":
				text.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inRun = false
			case "p":
				text.WriteString("\n")
			}
		case xml.CharData:
			if inRun {
				text.Write(t)
			}
		}
	}
	return strings.TrimRight(text.String(), "\n"), nil
}
