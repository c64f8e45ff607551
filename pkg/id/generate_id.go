package id

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// Canonical normalizes a user or record reference. Anything uuid.Parse
// accepts (hyphenated, braced, urn:uuid, bare 32-hex, any case) comes back
// as 32-char lowercase hex with ok=true. Other input is returned trimmed
// with ok=false.
func Canonical(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	u, err := uuid.Parse(raw)
	if err != nil {
		return raw, false
	}
	return hex.EncodeToString(u[:]), true
}

// Candidates lists the distinct stored forms a reference may appear under:
// the trimmed raw value and, when it parses, its canonical 32-hex form and
// its hyphenated form.
func Candidates(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	u, err := uuid.Parse(raw)
	if err != nil {
		return []string{raw}
	}
	out := []string{raw}
	for _, f := range []string{hex.EncodeToString(u[:]), u.String()} {
		if f != out[0] && (len(out) == 1 || f != out[1]) {
			out = append(out, f)
		}
	}
	return out
}
