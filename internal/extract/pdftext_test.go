package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentStreamText(t *testing.T) {
	stream := strings.NewReader(`BT
/F1 18 Tf
72 720 Td
(Internship Certificate) Tj
0 -24 Td
[(Awar) -12 (ded to ) (Jane Roe)] TJ
T*
(Duration: 3 months) '
ET`)

	got := contentStreamText(stream)
	assert.Contains(t, got, "Internship Certificate")
	assert.Contains(t, got, "Awarded to Jane Roe")
	assert.Contains(t, got, "Duration: 3 months")
}

func TestContentStreamTextEmpty(t *testing.T) {
	assert.Empty(t, contentStreamText(strings.NewReader("")))
	assert.Empty(t, contentStreamText(strings.NewReader("72 712 Td\nT*\n")))
}

func TestContentStreamTextEscapes(t *testing.T) {
	got := contentStreamText(strings.NewReader(`(Carter \(and\) Mills) Tj`))
	assert.Equal(t, "Carter (and) Mills", got)

	got = contentStreamText(strings.NewReader(`(3\055month) Tj`))
	assert.Equal(t, "3-month", got)
}

func TestContentStreamTextNestedParens(t *testing.T) {
	got := contentStreamText(strings.NewReader(`(Acme (Global) Ltd) Tj`))
	assert.Equal(t, "Acme (Global) Ltd", got)
}

func TestSquashPDFText(t *testing.T) {
	assert.Equal(t, "a b c", squashPDFText("  a\n\nb\t c "))
	assert.Equal(t, "clean", squashPDFText("cle\x00an"))
}
