package ingest

import (
	"strings"
	"unicode"
)

// Tokenizer splits corpus lines into lowercase ASCII words.
// Anything that is neither a-z nor whitespace is dropped before splitting,
// so "don't" becomes "dont" and "well-known" becomes "wellknown".
type Tokenizer struct{}

// NewTokenizer creates a tokenizer
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize lowercases line, strips non-letter characters and splits on
// runs of whitespace. The result never contains empty tokens.
func (t *Tokenizer) Tokenize(line string) []string {
	return strings.FieldsFunc(t.clean(line), IsSpace)
}

// TokenizeLines flattens the tokens of every line, preserving order and
// duplicates.
func (t *Tokenizer) TokenizeLines(lines []string) []string {
	var words []string
	for _, line := range lines {
		words = append(words, t.Tokenize(line)...)
	}
	return words
}

// clean keeps a-z and whitespace from the lowercased line.
func (t *Tokenizer) clean(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	for _, r := range strings.ToLower(line) {
		if (r >= 'a' && r <= 'z') || IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsSpace reports whether r separates words: unicode.IsSpace plus the
// ASCII file, group, record and unit separators (U+001C..U+001F).
func IsSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
