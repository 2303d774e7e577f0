package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// PDFPageText rasterizes one page of a PDF and OCRs it.
// Page numbers are 1-based.
func (e *Engine) PDFPageText(ctx context.Context, path string, page int) (string, error) {
	tmpDir, err := os.MkdirTemp("", "cv-pp-*")
	if err != nil {
		return "", err
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -f N -l N -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm,
		"-r", dpiArg(e.cfg.DPI), "-f", fmt.Sprintf("%d", page), "-l", fmt.Sprintf("%d", page),
		"-png", path, prefix)
	if err != nil {
		return "", fmt.Errorf("pdftoppm page %d: %w: %s", page, err, truncate(string(errb), 512))
	}

	matches, _ := filepath.Glob(prefix + "-*.png")
	if len(matches) == 0 {
		return "", fmt.Errorf("pdftoppm rendered no image for page %d", page)
	}
	return e.ImageText(ctx, matches[0])
}

// PDFText rasterizes every page of a PDF and OCRs them in page order.
// Used when the document is unreadable as structured PDF (scanned or
// damaged files).
func (e *Engine) PDFText(ctx context.Context, path string) (string, int, error) {
	tmpDir, err := os.MkdirTemp("", "cv-pp-*")
	if err != nil {
		return "", 0, err
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", dpiArg(e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return "", 0, fmt.Errorf("pdftoppm: %w: %s", err, truncate(string(errb), 512))
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return "", 0, fmt.Errorf("pdftoppm produced no images")
	}

	var b strings.Builder
	for _, img := range matches {
		txt, err := e.ImageText(ctx, img)
		if err != nil {
			e.logger.Warn("page ocr failed", "image", img, "error", err)
			continue
		}
		if b.Len() > 0 && txt != "" {
			b.WriteString(" ")
		}
		b.WriteString(txt)
	}
	return b.String(), len(matches), nil
}
