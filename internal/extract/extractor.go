package extract

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/praktiki/certverify/constants"
	"github.com/praktiki/certverify/internal/ocr"
)

// Extractor picks a strategy based on file extension. Anything it cannot
// recognize is handed to OCR as a last resort.
type Extractor struct {
	ocr    *ocr.Engine
	logger *slog.Logger
}

func NewExtractor(engine *ocr.Engine, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{ocr: engine, logger: logger}
}

func (x *Extractor) Extract(ctx context.Context, path string) ExtractionResult {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	x.logger.Debug("starting text extraction", "path", path, "ext", ext)

	var res ExtractionResult
	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		res = x.extractPDF(ctx, path)
	case constants.DOCX:
		res = x.extractDocx(path)
	default:
		res = x.extractImage(ctx, path)
	}
	res.Duration = time.Since(start)

	x.logger.Info("text extraction done",
		"path", path,
		"format", res.SourceFormat,
		"method", res.Method,
		"pages", res.Pages,
		"chars", len(res.Text),
		"warnings", len(res.Warnings),
	)
	return res
}

func (x *Extractor) extractImage(ctx context.Context, path string) ExtractionResult {
	res := ExtractionResult{SourceFormat: constants.IMAGE, Method: "image-ocr", Pages: 1}
	txt, err := x.ocr.ImageText(ctx, path)
	if err != nil {
		// degrade to empty text, never fail
		res.Warnings = append(res.Warnings, err.Error())
		return res
	}
	res.Text = txt
	return res
}
