package ocr

import (
	"fmt"
	"log/slog"
	"regexp"
)

type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"

	TesseractLang string // default "eng"
	TessdataDir   string
	DPI           int // rasterization DPI for scanned pages, default 300
	MaxPages      int // 0 = no limit
}

// Engine runs the external OCR binaries. Page rendering and character
// recognition are subprocess calls; the Runner indirection keeps them
// stubbable in tests.
type Engine struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewEngine(cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return newEngine(cfg, execRunner{logger: logger}, logger)
}

// NewEngineWithRunner is for tests that stub subprocess execution.
func NewEngineWithRunner(cfg Config, r Runner, logger *slog.Logger) *Engine {
	return newEngine(cfg, r, logger)
}

func newEngine(cfg Config, r Runner, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Engine{cfg: cfg, runner: r, logger: logger}
}

var reBoxNoise = regexp.MustCompile(`(?m)^\s*[_\-]{3,}\s*$`)

func (e *Engine) tesseractArgs(path string) []string {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	return args
}

func dpiArg(dpi int) string { return fmt.Sprintf("%d", dpi) }
