// Package tokenize splits raw text into word tokens.
//
// Tokenization is Unicode-codepoint-aware: a token is a maximal run of
// characters outside the Unicode punctuation, separator, and other
// (control/format) categories, so Finnish diacritics and any non-ASCII
// alphabet survive intact. Punctuation and whitespace act purely as
// boundaries and never appear inside a token.
//
// No normalization is performed here: case and diacritics are preserved
// exactly as written, because the lemmatization service decides what a word
// maps to.
//
//	tokenize.Tokenize("koira ja kissa.")  // ["koira" "ja" "kissa"]
//
// StripTags removes markup spans before tokenization. It is plain-text
// extraction, not an HTML parser: everything between < and > is replaced
// with a single space.
package tokenize
