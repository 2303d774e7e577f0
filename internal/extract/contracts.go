package extract

import (
	"context"
	"time"
)

// TextExtractor is Stage 1: file -> text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) ExtractionResult
}

// ExtractionResult is the best-effort plain text recovered from a file.
// Text is empty when nothing could be extracted; extraction itself never
// fails; per-page and per-document errors are recorded as warnings.
type ExtractionResult struct {
	Text         string
	SourceFormat string // constants.PDF | constants.DOCX | constants.IMAGE
	Pages        int
	Method       string // "pdf-text" | "pdf-mixed" | "pdf-ocr" | "docx" | "image-ocr"
	Duration     time.Duration
	Warnings     []string
}
