// Package highlight builds matching patterns that recognize a search term
// and its base-form variants inside surrounding text.
//
// A host highlighter typically matches the literal search term only. After
// query augmentation the hits may instead contain a base form returned by
// the lemmatization service, so the highlighter needs a pattern covering
// every variant. Pattern produces that pattern; when there are no variants
// it returns the host's default pattern untouched.
//
// The built pattern is case-insensitive and Unicode-aware. It matches the
// word plus one adjacent boundary character, which is what highlighters
// that splice markup around matches need for context:
//
//	p := highlight.Pattern(def, "kissa", lemma.NewSet("kissaeläin"))
//	re := regexp.MustCompile(p)
//
// Alternatives appear in deterministic order (term first, then variants
// sorted), so a fixed input always yields the same pattern string and
// callers can cache compiled patterns by pattern text.
package highlight
