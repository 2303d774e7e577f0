package extract

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/praktiki/certverify/constants"
)

// extractDocx reads word/document.xml from the ZIP archive and joins the
// non-empty paragraph texts in document order.
func (x *Extractor) extractDocx(path string) ExtractionResult {
	res := ExtractionResult{SourceFormat: constants.DOCX, Method: "docx", Pages: 1}
	text, err := docxParagraphText(path)
	if err != nil {
		res.Warnings = append(res.Warnings, err.Error())
		return res
	}
	res.Text = text
	return res
}

func docxParagraphText(path string) (string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open zip: %w", err)
	}
	defer func() { _ = r.Close() }()

	var docFile *zip.File
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", fmt.Errorf("word/document.xml not found in archive")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", fmt.Errorf("open document.xml: %w", err)
	}
	defer func() { _ = rc.Close() }()

	decoder := xml.NewDecoder(rc)
	var paragraphs []string
	var current strings.Builder
	inParagraph := false

	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "p" {
				inParagraph = true
				current.Reset()
			}
		case xml.CharData:
			if inParagraph {
				current.Write(t)
			}
		case xml.EndElement:
			if t.Name.Local == "p" && inParagraph {
				inParagraph = false
				if text := strings.TrimSpace(current.String()); text != "" {
					paragraphs = append(paragraphs, text)
				}
			}
		}
	}

	return strings.Join(paragraphs, " "), nil
}
