package server

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// newInternshipID mints an INT-XXXXXXXXX identifier.
func newInternshipID() string {
	sum := sha1.Sum([]byte(uuid.NewString()))
	return "INT-" + strings.ToUpper(hex.EncodeToString(sum[:]))[:9]
}

// deterministicToken derives a stable ABC-TOK token from a payload:
// identical payloads always produce identical tokens, so replayed
// credit uploads are idempotent.
func deterministicToken(payload map[string]any) string {
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		b, _ := json.Marshal(payload[k])
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.Write(b)
		sb.WriteByte(';')
	}
	sum := sha256.Sum256([]byte(sb.String()))
	return "ABC-TOK-" + hex.EncodeToString(sum[:])[:12]
}
