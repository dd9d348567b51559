package service

import (
	"strings"
	"unicode"
)

const strippedPunctuation = ".,?!;:"

// NormalizeAnswer prepares a sentence for comparison: the punctuation set
// .,?!;: is stripped, all whitespace removed and letters lowercased, so
// "Tu vas où?" and "tu vas  où" compare equal.
func NormalizeAnswer(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || strings.ContainsRune(strippedPunctuation, r) {
			continue
		}
		sb.WriteRune(unicode.ToLower(r))
	}
	return sb.String()
}
