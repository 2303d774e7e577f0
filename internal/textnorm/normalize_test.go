package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCollapsesWhitespace(t *testing.T) {
	n := New()
	got := n.Clean("Internship   Certificate\n\n\tCorporate\tLaw")
	assert.Equal(t, "Internship Certificate Corporate Law", got)
}

func TestCleanStripsNoiseCharacters(t *testing.T) {
	n := New()
	got := n.Clean("Certificate*** @@@ Law~Firm")
	assert.Equal(t, "Certificate Law Firm", got)
}

func TestCleanDropsStopWords(t *testing.T) {
	n := New()
	got := n.Clean("certificate is awarded and presented")
	assert.Equal(t, "certificate awarded presented", got)
}

func TestCleanKeepsDomainKeywords(t *testing.T) {
	// "from" and "to" are stop words in the general list but carry
	// meaning in duration spans, so they survive.
	n := New()
	got := n.Clean("internship from January to March")
	assert.Equal(t, "internship from January to March", got)
}

func TestCleanIdempotent(t *testing.T) {
	n := New()
	inputs := []string{
		"",
		"   ",
		"This is to certify that John Smith completed a 3-month internship.",
		"UGC*** internship\n\ncertificate    at Deloitte!!!",
	}
	for _, in := range inputs {
		once := n.Clean(in)
		assert.Equal(t, once, n.Clean(once), "input %q", in)
	}
}

func TestCleanEmpty(t *testing.T) {
	n := New()
	assert.Equal(t, "", n.Clean(""))
	assert.Equal(t, "", n.Clean("   \n\t  "))
}

func TestNewWithoutStopWordsKeepsEverything(t *testing.T) {
	n := NewWithoutStopWords()
	got := n.Clean("this is a certificate")
	assert.Equal(t, "this is a certificate", got)
}
