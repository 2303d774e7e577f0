package validator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praktiki/certverify/constants"
	"github.com/praktiki/certverify/internal/common"
	"github.com/praktiki/certverify/internal/extract"
	"github.com/praktiki/certverify/internal/fields"
	"github.com/praktiki/certverify/internal/similarity"
	"github.com/praktiki/certverify/internal/textnorm"
)

// stubExtractor returns a fixed extraction result for every file, the
// way a blank scan or a clean text layer would.
type stubExtractor struct {
	text string
}

func (s stubExtractor) Extract(context.Context, string) extract.ExtractionResult {
	return extract.ExtractionResult{Text: s.text, SourceFormat: constants.IMAGE, Method: "image-ocr", Pages: 1}
}

func testConfig() common.ValidatorConfig {
	return common.ValidatorConfig{
		SuspectSimilarity: 0.2,
		CompanySimilarity: 0.5,
		FuzzyThreshold:    80,
	}
}

func newTestValidator(t *testing.T, text string) *Validator {
	t.Helper()
	fx := fields.NewExtractor(fields.Config{
		KnownOrganizations: similarity.RecognizedOrganizations,
		FuzzyThreshold:     80,
	}, nil)
	return New(stubExtractor{text: text}, textnorm.New(), similarity.NewScorer(nil, nil), fx, "", testConfig(), nil)
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cert.jpg")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateGenuineCertificate(t *testing.T) {
	text := "This is to certify that John Smith has successfully completed a 3-month internship " +
		"as Software Engineer Intern at Deloitte. The certificate states the duration or period " +
		"of the internship in months or weeks, the domain or area of specialization, the project " +
		"undertaken, and the date of certification. Recognized under UGC guidelines for academic credit."
	v := newTestValidator(t, text)

	res, err := v.Validate(context.Background(), writeTempFile(t, "pixels"))
	require.NoError(t, err)

	assert.Equal(t, constants.StatusSuccess, res.Status)
	assert.GreaterOrEqual(t, res.Similarity, 0.2)
	assert.Equal(t, "John Smith", res.Name)
	assert.Equal(t, "Deloitte", res.Company)
	assert.Equal(t, "3-month", res.Duration)
	assert.NotEmpty(t, res.FileHash)
}

func TestValidateBlankExtraction(t *testing.T) {
	v := newTestValidator(t, "")

	res, err := v.Validate(context.Background(), writeTempFile(t, "blank pixels"))
	require.NoError(t, err)

	assert.Equal(t, constants.StatusSuspect, res.Status)
	assert.Zero(t, res.Similarity)
	assert.Equal(t, constants.NotFound, res.Name)
	assert.Equal(t, constants.NotFound, res.Course)
	assert.Equal(t, constants.NotFound, res.Company)
	assert.Equal(t, constants.NotFound, res.Domain)
	assert.Equal(t, constants.NotFound, res.Duration)
	assert.Equal(t, constants.NotFound, res.DateOfCertification)
	assert.Equal(t, Fingerprint([]byte("blank pixels")), res.FileHash)
}

func TestValidateUnrelatedText(t *testing.T) {
	v := newTestValidator(t, "grocery receipt milk eggs bread total 14.20")

	res, err := v.Validate(context.Background(), writeTempFile(t, "receipt scan"))
	require.NoError(t, err)
	assert.Equal(t, constants.StatusSuspect, res.Status)
}

func TestValidateMissingCompanyBelowCompanyThreshold(t *testing.T) {
	// enough overlap to clear the suspect floor, nothing company-like
	v := newTestValidator(t, "internship certificate duration period training program student " +
		"completing organization domain specialization project")

	res, err := v.Validate(context.Background(), writeTempFile(t, "scan"))
	require.NoError(t, err)
	assert.Equal(t, constants.NotFound, res.Company)
	assert.GreaterOrEqual(t, res.Similarity, 0.2)
	assert.Equal(t, constants.StatusSuspect, res.Status)
}

func TestValidateRecognizedOrganizationFallback(t *testing.T) {
	// no company phrasing anywhere, but a well-known employer is named
	v := newTestValidator(t, "completed internship training kpmg certificate program duration period")

	res, err := v.Validate(context.Background(), writeTempFile(t, "scan"))
	require.NoError(t, err)
	assert.Equal(t, "KPMG", res.Company)
}

func TestValidateUnreadableFile(t *testing.T) {
	v := newTestValidator(t, "anything")

	_, err := v.Validate(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FILE_UNREADABLE", appErr.Code)
}

func TestFingerprint(t *testing.T) {
	h1 := Fingerprint([]byte("certificate bytes"))
	h2 := Fingerprint([]byte("certificate bytes"))
	h3 := Fingerprint([]byte("certificate bytes."))

	assert.Len(t, h1, 64)
	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
}

func TestSimilarityRounding(t *testing.T) {
	assert.Equal(t, 0.33, round2(1.0/3.0))
	assert.Equal(t, 1.0, round2(0.999))
	assert.Zero(t, round2(0))
}
