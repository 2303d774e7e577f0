// Package validator composes extraction, normalization, similarity
// scoring and field extraction into a single verdict per file.
package validator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/praktiki/certverify/constants"
	"github.com/praktiki/certverify/internal/common"
	"github.com/praktiki/certverify/internal/extract"
	"github.com/praktiki/certverify/internal/fields"
	"github.com/praktiki/certverify/internal/similarity"
	"github.com/praktiki/certverify/internal/textnorm"
)

// DefaultReferenceText is the catalog descriptor certificates are scored
// against when no reference file is configured.
const DefaultReferenceText = `Internship certificate issued to a student for successfully completing ` +
	`an internship or training program at a company, law firm, university or organization. ` +
	`The certificate states the duration or period of the internship in months or weeks, ` +
	`the domain or area of specialization, the project undertaken, and the date of certification. ` +
	`Recognized under UGC guidelines for academic credit.`

type Validator struct {
	extractor  extract.TextExtractor
	normalizer *textnorm.Normalizer
	scorer     *similarity.Scorer
	fields     *fields.Extractor
	cfg        common.ValidatorConfig
	logger     *slog.Logger

	// normalized once at construction; read-only afterward
	referenceClean string
}

func New(
	extractor extract.TextExtractor,
	normalizer *textnorm.Normalizer,
	scorer *similarity.Scorer,
	fieldExtractor *fields.Extractor,
	referenceText string,
	cfg common.ValidatorConfig,
	logger *slog.Logger,
) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	if referenceText == "" {
		referenceText = DefaultReferenceText
	}
	return &Validator{
		extractor:      extractor,
		normalizer:     normalizer,
		scorer:         scorer,
		fields:         fieldExtractor,
		cfg:            cfg,
		logger:         logger,
		referenceClean: normalizer.Clean(referenceText),
	}
}

// Validate runs the pipeline for one file. The only error it returns is
// an unreadable file; every downstream failure degrades the verdict
// instead of aborting it.
func (v *Validator) Validate(ctx context.Context, path string) (Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Result{}, common.NewAppError("FILE_UNREADABLE",
			fmt.Sprintf("cannot read %q", path), common.ErrUnreadable)
	}
	hash := Fingerprint(raw)

	extracted := v.extractor.Extract(ctx, path)

	score := v.scorer.Score(v.normalizer.Clean(extracted.Text), v.referenceClean)
	score = round2(score)

	rec := v.fields.Extract(extracted.Text)
	if !rec.HasCompany() {
		// last resort: a well-known organization named anywhere in the text
		if org := similarity.FindRecognizedOrganization(extracted.Text); org != "" {
			rec.Company = org
		}
	}

	status := constants.StatusSuccess
	if score < v.cfg.SuspectSimilarity {
		status = constants.StatusSuspect
	}
	if !rec.HasCompany() && score < v.cfg.CompanySimilarity {
		status = constants.StatusSuspect
	}

	v.logger.Info("validation done",
		"path", path,
		"status", string(status),
		"similarity", score,
		"method", extracted.Method,
		"company", rec.Company,
	)
	return newResult(status, score, rec, hash), nil
}

// Fingerprint is the SHA-256 content hash of the file bytes, hex-encoded.
func Fingerprint(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return r
}
