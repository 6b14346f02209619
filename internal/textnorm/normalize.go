// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textnorm turns free text into a normalized token string shared by
// the ranker and the classifier. Normalization is deterministic: lowercase,
// strip everything outside [a-z0-9 ], drop stopwords and short tokens, stem.
package textnorm

import (
	"strings"

	"github.com/kljensen/snowball/english"
)

// minTokenLen is the smallest surviving token length. Tokens of one or two
// characters carry almost no ranking signal and are dropped.
const minTokenLen = 3

// Normalize returns the normalized form of text: stemmed tokens joined by
// single spaces. Empty or whitespace-only input yields "".
//
// Re-normalizing already-normalized text is close to a no-op but not
// guaranteed bit-identical: a stemmed token is not always a fixed point of
// the stemmer. Callers depend on the current output, so this is preserved.
func Normalize(text string) string {
	return strings.Join(Tokens(text), " ")
}

// Tokens returns the normalized token sequence for text. The steps run in
// order: lowercase, replace every rune outside [a-z0-9 ] with a space, split
// on whitespace, drop stopwords and tokens shorter than three characters,
// stem the survivors.
func Tokens(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}

	fields := strings.Fields(b.String())
	tokens := make([]string, 0, len(fields))
	for _, tok := range fields {
		if len(tok) < minTokenLen || stopwords[tok] {
			continue
		}
		tokens = append(tokens, english.Stem(tok, false))
	}
	return tokens
}
