package fields

import "github.com/praktiki/certverify/constants"

// Record holds the six certificate fields. Every field is either a
// recovered value or the "Not Found" sentinel, never empty.
type Record struct {
	Name                string `json:"name"`
	Course              string `json:"course"`
	Company             string `json:"company"`
	Domain              string `json:"domain"`
	Duration            string `json:"duration"`
	DateOfCertification string `json:"date_of_certification"`
}

// NewRecord returns a Record with every field set to the sentinel.
func NewRecord() Record {
	return Record{
		Name:                constants.NotFound,
		Course:              constants.NotFound,
		Company:             constants.NotFound,
		Domain:              constants.NotFound,
		Duration:            constants.NotFound,
		DateOfCertification: constants.NotFound,
	}
}

// HasCompany reports whether a company was recovered.
func (r Record) HasCompany() bool {
	return r.Company != constants.NotFound && r.Company != ""
}
