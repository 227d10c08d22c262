package helper

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug menormalkan string menjadi slug:
// - lower-case, diakritik dibuang (é → e)
// - setiap run non-alnum jadi satu "-"
// - trim "-" di kedua ujung
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}

	out := reNonAlnum.ReplaceAllString(b.String(), "-")
	return strings.Trim(out, "-")
}
