package ingest

import (
	"strings"
	"unicode"

	"github.com/cognicore/readmetrics/pkg/readmetrics/lexicon"
)

// Cleaner turns raw text into the filtered token sequence the sentiment and
// complexity metrics are computed over.
type Cleaner struct {
	stopwords lexicon.WordSet
	words     *WordTokenizer
}

// NewCleaner creates a cleaner that drops the given stop words.
func NewCleaner(stopwords lexicon.WordSet, words *WordTokenizer) *Cleaner {
	if words == nil {
		words = NewWordTokenizer()
	}
	return &Cleaner{stopwords: stopwords, words: words}
}

// Clean lowercases text, strips everything that is neither a word character
// nor whitespace, tokenizes the remainder and keeps alphanumeric tokens that
// are not stop words.
func (c *Cleaner) Clean(text string) []string {
	stripped := StripPunctuation(strings.ToLower(text))

	var tokens []string
	for _, tok := range c.words.Tokenize(stripped) {
		if !isAlnum(tok) || c.stopwords.Contains(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// StripPunctuation removes every rune that is not a letter, number,
// underscore or whitespace.
func StripPunctuation(text string) string {
	return strings.Map(func(r rune) rune {
		if isWordRune(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, text)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

// isAlnum reports whether tok is non-empty and made only of letters and
// numbers; underscores fail.
func isAlnum(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}
