package analytics

import "strings"

// CountSyllables estimates syllables as the number of vowel-to-consonant
// transitions. Words of three letters or fewer count as one; a trailing
// "es" or "ed" is ignored. The result is never below 1.
func CountSyllables(word string) int {
	w := []rune(strings.ToLower(word))
	if len(w) <= 3 {
		return 1
	}
	if s := string(w[len(w)-2:]); s == "es" || s == "ed" {
		w = w[:len(w)-2]
	}

	count := 0
	for i := 0; i+1 < len(w); i++ {
		if isVowel(w[i]) && !isVowel(w[i+1]) {
			count++
		}
	}
	if count < 1 {
		return 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
