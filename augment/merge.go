package augment

import (
	"strconv"
	"strings"

	"github.com/jonwraymond/baseforms/lemma"
)

// Merge appends lemma forms to the original text. Any lemma equal to one of
// the original tokens is dropped first; if nothing remains the trimmed
// original is returned alone. Otherwise the result is the trimmed original,
// one space, and the remaining members joined by spaces in sorted order.
func Merge(original string, tokens []string, lemmas lemma.Set) string {
	trimmed := strings.TrimSpace(original)

	remaining := lemmas.Subtract(tokens)
	if remaining.Len() == 0 {
		return trimmed
	}

	return trimmed + " " + strings.Join(remaining.Members(), " ")
}

// Textual reports whether s is worth sending through the pipeline. Empty,
// whitespace-only, and purely numeric input is not: tokenizing a price or
// an ID field and calling the lemmatization service for it is wasted
// network traffic.
func Textual(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return false
	}
	if _, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return false
	}
	return true
}
