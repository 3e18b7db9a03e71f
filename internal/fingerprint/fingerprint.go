// Package fingerprint derives the dedup key for a job posting. The same
// logical job scraped on different days or platforms must reduce to the same
// key, so the key is built from the raw scraped title plus the company name —
// never the post-classification role, which is lossy.
package fingerprint

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// Legal suffixes vary between boards for the same employer.
	companySuffixRe = regexp.MustCompile(`(?i)\b(?:pty\.?\s*ltd|limited|ltd|inc|corp|llc|co)\b\.?`)
	punctuationRe   = regexp.MustCompile(`[^\w\s]`)
	whitespaceRe    = regexp.MustCompile(`\s+`)

	foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Generate returns the deterministic dedup key for (company, title).
// Both inputs are lowercased, diacritic-folded, stripped of punctuation and
// company suffixes, whitespace-collapsed, then joined with "|".
func Generate(company, title string) string {
	return normalize(company) + "|" + normalize(title)
}

func normalize(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	if folded, _, err := transform.String(foldDiacritics, s); err == nil {
		s = folded
	}
	s = companySuffixRe.ReplaceAllString(s, "")
	s = punctuationRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
