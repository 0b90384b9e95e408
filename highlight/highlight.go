package highlight

import (
	"regexp"
	"strings"

	"github.com/jonwraymond/baseforms/lemma"
)

// Character classes for Unicode-aware word boundaries. Go's \w and \b are
// ASCII-only, so word characters are spelled out as letters, digits, and
// underscore.
const (
	wordChar    = `[\p{L}\p{N}_]`
	nonWordChar = `[^\p{L}\p{N}_]`
)

// Pattern builds a case-insensitive pattern matching term or any member of
// lemmas, together with one adjacent boundary character:
//
//   - a run of word characters, the alternation, then one non-word
//     character, or
//   - one non-word character, the alternation, then a run of word
//     characters.
//
// When lemmas is empty the caller's defaultPattern is returned unchanged.
// Alternatives are escaped and emitted in deterministic order: term first,
// then the lemma members sorted.
func Pattern(defaultPattern, term string, lemmas lemma.Set) string {
	if lemmas.Len() == 0 {
		return defaultPattern
	}

	alts := make([]string, 0, lemmas.Len()+1)
	alts = append(alts, regexp.QuoteMeta(term))
	for _, m := range lemmas.Members() {
		if m == term {
			continue
		}
		alts = append(alts, regexp.QuoteMeta(m))
	}

	group := "(?:" + strings.Join(alts, "|") + ")"

	var b strings.Builder
	b.WriteString("(?i)(")
	b.WriteString(wordChar + "*" + group + nonWordChar)
	b.WriteString(")|(")
	b.WriteString(nonWordChar + group + wordChar + "*")
	b.WriteString(")")
	return b.String()
}

// Compile builds the pattern and compiles it. The error is the usual
// regexp compile error; with escaped alternatives it only occurs when
// defaultPattern itself (returned for an empty set) is not valid.
func Compile(defaultPattern, term string, lemmas lemma.Set) (*regexp.Regexp, error) {
	return regexp.Compile(Pattern(defaultPattern, term, lemmas))
}
