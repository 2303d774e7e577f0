package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/praktiki/certverify/internal/common"
	"github.com/praktiki/certverify/internal/embedding"
	"github.com/praktiki/certverify/internal/extract"
	"github.com/praktiki/certverify/internal/fields"
	"github.com/praktiki/certverify/internal/nlp"
	"github.com/praktiki/certverify/internal/ocr"
	"github.com/praktiki/certverify/internal/server"
	"github.com/praktiki/certverify/internal/similarity"
	"github.com/praktiki/certverify/internal/textnorm"
	"github.com/praktiki/certverify/internal/validator"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	val, scorer, normalizer := buildPipeline(cfg, logger)

	svc, err := server.NewService(val, scorer, normalizer, cfg.Server, logger)
	if err != nil {
		logger.Error("server init failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	srv := &http.Server{Addr: cfg.Server.Addr, Handler: svc.Router()}
	go func() {
		logger.Info("http serving", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
	logger.Info("stopped")
}

// buildPipeline wires the validation core from configuration. The
// embedding model and NER are optional: absence downgrades the scorer
// and field extractor to their fallback strategies, never an error.
func buildPipeline(cfg *common.Config, logger *slog.Logger) (*validator.Validator, *similarity.Scorer, *textnorm.Normalizer) {
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
			logger.Warn("embedding model unavailable, using lexical overlap",
				"path", cfg.Matcher.EmbeddingPath, "error", err)
		} else {
			logger.Info("embedding model loaded",
				"path", cfg.Matcher.EmbeddingPath, "vocab", m.Len(), "dims", m.Dims())
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
			logger.Warn("reference text unavailable, using built-in descriptor",
				"path", cfg.Matcher.ReferencePath, "error", err)
		} else {
			referenceText = string(b)
		}
	}

	val := validator.New(extractor, normalizer, scorer, fieldExtractor, referenceText, cfg.Validator, logger)
	return val, scorer, normalizer
}
