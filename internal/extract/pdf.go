package extract

import (
	"context"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/praktiki/certverify/constants"
)

// extractPDF walks the document page by page: structured text where the
// page has any, OCR of the rasterized page where it has none. A document
// pdfcpu cannot read at all (scanned or damaged file) is rasterized whole
// and OCRed.
func (x *Extractor) extractPDF(ctx context.Context, path string) ExtractionResult {
	res := ExtractionResult{SourceFormat: constants.PDF}

	f, err := os.Open(path)
	if err != nil {
		res.Warnings = append(res.Warnings, err.Error())
		return x.pdfFallbackOCR(ctx, path, res)
	}
	defer func() { _ = f.Close() }()

	conf := model.NewDefaultConfiguration()
	pdfCtx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		res.Warnings = append(res.Warnings, "pdfcpu read: "+err.Error())
		return x.pdfFallbackOCR(ctx, path, res)
	}

	res.Pages = pdfCtx.PageCount
	res.Method = "pdf-text"

	var b strings.Builder
	ocrPages := 0
	for pageNr := 1; pageNr <= pdfCtx.PageCount; pageNr++ {
		pageText := pageContentText(pdfCtx, pageNr)
		if pageText == "" {
			// nothing structured on this page: rasterize and OCR it
			txt, err := x.ocr.PDFPageText(ctx, path, pageNr)
			if err != nil {
				res.Warnings = append(res.Warnings, err.Error())
				continue
			}
			pageText = txt
			ocrPages++
		}
		if pageText == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(pageText)
	}

	if ocrPages > 0 {
		res.Method = "pdf-mixed"
		if ocrPages == pdfCtx.PageCount {
			res.Method = "pdf-ocr"
		}
	}
	res.Text = strings.TrimSpace(b.String())
	return res
}

// pdfFallbackOCR rasterizes the whole document and OCRs every page.
func (x *Extractor) pdfFallbackOCR(ctx context.Context, path string, res ExtractionResult) ExtractionResult {
	res.Method = "pdf-ocr"
	txt, pages, err := x.ocr.PDFText(ctx, path)
	if err != nil {
		res.Warnings = append(res.Warnings, err.Error())
		return res
	}
	res.Text = strings.TrimSpace(txt)
	res.Pages = pages
	return res
}

// pageContentText extracts structured text from a single PDF page via the
// pdfcpu content stream. Empty string when the page carries no text.
func pageContentText(pdfCtx *model.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(pdfCtx, pageNr)
	if err != nil || r == nil {
		return ""
	}
	return contentStreamText(r)
}
