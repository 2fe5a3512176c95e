package lexicon

import (
	"sort"
	"strings"
)

// WordSet is an immutable set of lowercase words.
type WordSet struct {
	words map[string]struct{}
}

// NewWordSet builds a set from words, trimming and lowercasing each entry.
// Blank entries are dropped.
func NewWordSet(words ...string) WordSet {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = normalize(w)
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return WordSet{words: set}
}

// Contains reports whether word is in the set. word is expected to be
// lowercase already.
func (s WordSet) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of distinct words.
func (s WordSet) Len() int {
	return len(s.words)
}

// Words returns the members in sorted order.
func (s WordSet) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Without returns a copy of s minus every word in other.
func (s WordSet) Without(other WordSet) WordSet {
	set := make(map[string]struct{}, len(s.words))
	for w := range s.words {
		if other.Contains(w) {
			continue
		}
		set[w] = struct{}{}
	}
	return WordSet{words: set}
}

func normalize(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}
