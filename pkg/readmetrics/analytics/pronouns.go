package analytics

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var pronouns = map[string]struct{}{
	"i":    {},
	"we":   {},
	"my":   {},
	"ours": {},
	"us":   {},
}

// CountPersonalPronouns counts whole-word, case-insensitive occurrences of
// I, we, my, ours and us in raw text. A match is dropped when it is the
// literal "US" or when optional whitespace and two uppercase ASCII letters
// follow it ("us UN", "US AID").
func CountPersonalPronouns(text string) int {
	count := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isWordChar(r) {
			i += size
			continue
		}
		start := i
		for i < len(text) {
			r, size = utf8.DecodeRuneInString(text[i:])
			if !isWordChar(r) {
				break
			}
			i += size
		}
		word := text[start:i]
		if _, ok := pronouns[strings.ToLower(word)]; !ok {
			continue
		}
		if word == "US" || acronymFollows(text[i:]) {
			continue
		}
		count++
	}
	return count
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

func acronymFollows(rest string) bool {
	rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
	return len(rest) >= 2 && isUpperASCII(rest[0]) && isUpperASCII(rest[1])
}

func isUpperASCII(b byte) bool {
	return b >= 'A' && b <= 'Z'
}
