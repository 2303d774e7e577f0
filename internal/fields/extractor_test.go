package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/praktiki/certverify/constants"
	"github.com/praktiki/certverify/internal/nlp"
)

var knownOrgs = []string{"Deloitte", "Infosys", "TCS", "Carter & Mills"}

func newTestExtractor(rec nlp.Recognizer) *Extractor {
	return NewExtractor(Config{
		Recognizer:         rec,
		KnownOrganizations: knownOrgs,
		FuzzyThreshold:     80,
	}, nil)
}

// stubRecognizer returns canned entities regardless of input.
type stubRecognizer struct {
	entities []nlp.Entity
	err      error
}

func (s stubRecognizer) Entities(string) ([]nlp.Entity, error) {
	return s.entities, s.err
}

func TestExtractCanonicalCertificate(t *testing.T) {
	x := newTestExtractor(nil)
	text := "This is to certify that John Smith has completed a 3-month internship as Software Engineer Intern at Deloitte Consulting Pvt Ltd."

	rec := x.Extract(text)
	assert.Equal(t, "John Smith", rec.Name)
	assert.Equal(t, "Software Engineer Intern", rec.Course)
	assert.Equal(t, "Deloitte", rec.Company)
	assert.Equal(t, "3-month", rec.Duration)
	assert.Equal(t, constants.NotFound, rec.Domain)
	assert.Equal(t, constants.NotFound, rec.DateOfCertification)
	assert.True(t, rec.HasCompany())
}

func TestExtractEmptyText(t *testing.T) {
	x := newTestExtractor(nil)
	for _, text := range []string{"", "   \n\t "} {
		rec := x.Extract(text)
		assert.Equal(t, NewRecord(), rec)
		assert.False(t, rec.HasCompany())
	}
}

func TestExtractNamePresentedTo(t *testing.T) {
	x := newTestExtractor(nil)
	rec := x.Extract("Certificate of Completion presented to Anita Desai for outstanding work.")
	assert.Equal(t, "Anita Desai", rec.Name)
}

func TestExtractNameFromNER(t *testing.T) {
	x := newTestExtractor(stubRecognizer{entities: []nlp.Entity{
		{Text: "Priya Sharma", Label: "PERSON"},
		{Text: "Infosys Limited", Label: "ORG"},
	}})
	rec := x.Extract("hereby recognized for excellent contribution during the engagement")
	assert.Equal(t, "Priya Sharma", rec.Name)
	assert.Equal(t, "Infosys", rec.Company)
}

func TestExtractNameNERSingleTokenRejected(t *testing.T) {
	x := newTestExtractor(stubRecognizer{entities: []nlp.Entity{
		{Text: "Priya", Label: "PERSON"},
	}})
	rec := x.Extract("hereby recognized for excellent contribution during the engagement")
	assert.Equal(t, constants.NotFound, rec.Name)
}

func TestExtractCompanyFuzzyCanonicalization(t *testing.T) {
	x := newTestExtractor(nil)
	rec := x.Extract("This is to certify that Ravi Kumar has completed an internship at Delloite Consulting Pvt Ltd.")
	assert.Equal(t, "Deloitte", rec.Company)
}

func TestExtractCompanyBelowFuzzyThreshold(t *testing.T) {
	x := newTestExtractor(nil)
	rec := x.Extract("This is to certify that Ravi Kumar has completed an internship at Samsung Electronics.")
	// no known organization is close enough; the raw candidate survives
	assert.Equal(t, "Samsung", rec.Company)
}

func TestExtractDuration(t *testing.T) {
	x := newTestExtractor(nil)
	cases := map[string]string{
		"completed a 6 months internship":       "6 months",
		"an internship of 54 days":              "54 days",
		"a 3-6 months training program":         "3-6 months",
		"a 2 to 4 weeks orientation":            "2 to 4 weeks",
		"completed the 3-month internship term": "3-month",
	}
	for text, want := range cases {
		rec := x.Extract(text)
		assert.Equal(t, want, rec.Duration, "text %q", text)
	}
}

func TestExtractDomain(t *testing.T) {
	x := newTestExtractor(nil)
	rec := x.Extract("Internship completed in the domain: corporate law practice")
	assert.Equal(t, "Corporate Law Practice", rec.Domain)
}

func TestExtractDateWithKeyword(t *testing.T) {
	x := newTestExtractor(nil)
	rec := x.Extract("Joined on 1st March 2024. Date of Certification: 15th August 2024")
	assert.Equal(t, "15 August 2024", rec.DateOfCertification)
}

func TestExtractDatePrefersLastWithoutKeyword(t *testing.T) {
	x := newTestExtractor(nil)
	rec := x.Extract("Program ran from 10 January 2024 and concluded 20 June 2024")
	assert.Equal(t, "20 June 2024", rec.DateOfCertification)
}

func TestExtractDateNumeric(t *testing.T) {
	x := newTestExtractor(nil)
	rec := x.Extract("Issued date 12/08/2024 by the registrar")
	assert.Equal(t, "12/08/2024", rec.DateOfCertification)
}

func TestFuzzyScoreThreshold(t *testing.T) {
	// one transposition-style typo clears 80
	assert.GreaterOrEqual(t, fuzzyScore("Delloite", "Deloitte"), 80)
	// unrelated names stay well below it
	assert.Less(t, fuzzyScore("Samsung", "Deloitte"), 80)
}

func TestFuzzyMatchOrganization(t *testing.T) {
	assert.Equal(t, "Deloitte", fuzzyMatchOrganization("Delloite Consulting", knownOrgs, 80))
	assert.Equal(t, "Infosys", fuzzyMatchOrganization("infosys limited", knownOrgs, 80))
	assert.Equal(t, "", fuzzyMatchOrganization("Quantum Widgets", knownOrgs, 80))
	assert.Equal(t, "", fuzzyMatchOrganization("", knownOrgs, 80))
}

func TestExtractNERFailureFallsThrough(t *testing.T) {
	x := newTestExtractor(stubRecognizer{err: assert.AnError})
	rec := x.Extract("This is to certify that John Smith has completed an internship at Deloitte.")
	assert.Equal(t, "John Smith", rec.Name)
	assert.Equal(t, "Deloitte", rec.Company)
}
