package extract

import (
	"io"
	"strings"
	"unicode"
)

// contentStreamText recovers the text a PDF content stream draws. Only
// string literals handed to the show operators (Tj, TJ, ') matter;
// everything else in the stream is positioning and styling. Literals
// collected since the previous show are emitted together, so kerned
// fragments inside one TJ array rejoin into a single word.
func contentStreamText(r io.Reader) string {
	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return ""
	}

	var out strings.Builder
	var pending []string

	flush := func(sep string) {
		if len(pending) == 0 {
			return
		}
		if out.Len() > 0 {
			out.WriteString(sep)
		}
		for _, lit := range pending {
			out.WriteString(lit)
		}
		pending = pending[:0]
	}

	for i := 0; i < len(data); {
		switch c := data[i]; {
		case c == '(':
			lit, next := readStringLiteral(data, i)
			pending = append(pending, lit)
			i = next
		case c == '\'':
			// show-on-next-line operator
			flush("\n")
			i++
		case c == 'T' && i+1 < len(data) && (data[i+1] == 'j' || data[i+1] == 'J'):
			flush(" ")
			i += 2
		default:
			i++
		}
	}

	return squashPDFText(out.String())
}

// readStringLiteral decodes the literal starting at data[i], which must
// be '(', and returns the text plus the index one past the closing
// parenthesis. Unescaped balanced parentheses nest per the PDF spec.
func readStringLiteral(data []byte, i int) (string, int) {
	var sb strings.Builder
	depth := 1
	for i++; i < len(data) && depth > 0; i++ {
		c := data[i]
		switch c {
		case '(':
			depth++
			sb.WriteByte(c)
		case ')':
			depth--
			if depth > 0 {
				sb.WriteByte(c)
			}
		case '\\':
			if i+1 == len(data) {
				break
			}
			i++
			switch e := data[i]; e {
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case '(', ')', '\\':
				sb.WriteByte(e)
			case '0', '1', '2', '3', '4', '5', '6', '7':
				v := int(e - '0')
				for n := 0; n < 2 && i+1 < len(data) && data[i+1] >= '0' && data[i+1] <= '7'; n++ {
					i++
					v = v*8 + int(data[i]-'0')
				}
				sb.WriteByte(byte(v))
			default:
				sb.WriteByte(e)
			}
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String(), i
}

// squashPDFText drops unprintable runes and collapses whitespace runs.
func squashPDFText(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, s)
	return strings.Join(strings.Fields(s), " ")
}
