package validator

import (
	"github.com/praktiki/certverify/constants"
	"github.com/praktiki/certverify/internal/fields"
)

// Result is the verdict for one validation request. Created once,
// never mutated, not persisted by this package.
type Result struct {
	Status              constants.ValidationStatus `json:"status"`
	Similarity          float64                    `json:"similarity"`
	Name                string                     `json:"name"`
	Course              string                     `json:"course"`
	Company             string                     `json:"company"`
	Domain              string                     `json:"domain"`
	Duration            string                     `json:"duration"`
	DateOfCertification string                     `json:"date_of_certification"`
	FileHash            string                     `json:"file_hash"`
}

func newResult(status constants.ValidationStatus, similarity float64, rec fields.Record, hash string) Result {
	return Result{
		Status:              status,
		Similarity:          similarity,
		Name:                rec.Name,
		Course:              rec.Course,
		Company:             rec.Company,
		Domain:              rec.Domain,
		Duration:            rec.Duration,
		DateOfCertification: rec.DateOfCertification,
		FileHash:            hash,
	}
}
