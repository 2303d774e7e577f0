// Command runvalidate validates certificate files from the command line
// and prints one JSON result per file.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/praktiki/certverify/internal/common"
	"github.com/praktiki/certverify/internal/embedding"
	"github.com/praktiki/certverify/internal/extract"
	"github.com/praktiki/certverify/internal/fields"
	"github.com/praktiki/certverify/internal/nlp"
	"github.com/praktiki/certverify/internal/ocr"
	"github.com/praktiki/certverify/internal/similarity"
	"github.com/praktiki/certverify/internal/textnorm"
	"github.com/praktiki/certverify/internal/validator"
)

func main() {
	_ = godotenv.Load()

	verbose := flag.Bool("v", false, "verbose logging")
	pretty := flag.Bool("pretty", false, "indent JSON output")
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s [-v] [-pretty] file [file...]\n", os.Args[0])
		os.Exit(2)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	engine := ocr.NewEngine(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		DPI:           cfg.OCR.DPI,
	}, logger)
	extractor := extract.NewExtractor(engine, logger)
	normalizer := textnorm.New()

	var model *embedding.Model
	if cfg.Matcher.EmbeddingPath != "" {
		m, err := embedding.Load(cfg.Matcher.EmbeddingPath)
		if err != nil {
			logger.Warn("embedding model unavailable, using lexical overlap", "error", err)
		} else {
			model = m
		}
	}
	scorer := similarity.NewScorer(model, logger)

	var recognizer nlp.Recognizer
	if cfg.Matcher.NEREnabled {
		recognizer = nlp.NewProseRecognizer(logger)
	}
	fieldExtractor := fields.NewExtractor(fields.Config{
		Recognizer:         recognizer,
		KnownOrganizations: similarity.RecognizedOrganizations,
		FuzzyThreshold:     cfg.Validator.FuzzyThreshold,
	}, logger)

	referenceText := ""
	if cfg.Matcher.ReferencePath != "" {
		if b, err := os.ReadFile(cfg.Matcher.ReferencePath); err != nil {
			logger.Warn("reference text unavailable, using built-in descriptor", "error", err)
		} else {
			referenceText = string(b)
		}
	}

	val := validator.New(extractor, normalizer, scorer, fieldExtractor, referenceText, cfg.Validator, logger)

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}

	exitCode := 0
	for _, path := range flag.Args() {
		res, err := val.Validate(context.Background(), path)
		if err != nil {
			logger.Error("validation failed", "file", path, "error", err)
			exitCode = 1
			continue
		}
		if err := enc.Encode(res); err != nil {
			logger.Error("encode result failed", "file", path, "error", err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}
