package tokenize

import (
	"strings"
	"unicode"
)

// Tokenize splits text into an ordered sequence of word tokens. Boundary
// characters (punctuation, separators, control and format characters) are
// consumed and discarded. Returns an empty slice for input with no word
// content.
func Tokenize(text string) []string {
	tokens := []string{}
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range text {
		if isBoundary(r) {
			flush()
			continue
		}
		current.WriteRune(r)
	}
	flush()

	return tokens
}

// isBoundary reports whether r separates tokens: Unicode categories
// P (punctuation), Z (separator), and C (other).
func isBoundary(r rune) bool {
	return unicode.IsPunct(r) || unicode.In(r, unicode.Z, unicode.C)
}

// StripTags removes markup tags from s, replacing each <...> span with a
// single space so words on either side of a tag stay separated. An
// unterminated tag is dropped through end of input.
func StripTags(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}

	var out strings.Builder
	out.Grow(len(s))

	inTag := false
	for _, r := range s {
		switch {
		case inTag:
			if r == '>' {
				inTag = false
			}
		case r == '<':
			inTag = true
			out.WriteRune(' ')
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}
