package ingest

import (
	"reflect"
	"strings"
	"testing"

	"github.com/cognicore/readmetrics/pkg/readmetrics/lexicon"
)

func TestCleanerBasic(t *testing.T) {
	c := NewCleaner(lexicon.NewWordSet("this", "that"), nil)

	got := c.Clean("I love this. We hate that.")
	want := []string{"i", "love", "we", "hate"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Clean = %q, want %q", got, want)
	}
}

func TestCleanerStripsPunctuationInsideWords(t *testing.T) {
	c := NewCleaner(lexicon.NewWordSet(), nil)

	got := c.Clean("Don't re-use e-mail; it's 3.5% off!")
	want := []string{"dont", "reuse", "email", "its", "35", "off"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Clean = %q, want %q", got, want)
	}
}

func TestCleanerRejectsUnderscoreTokens(t *testing.T) {
	c := NewCleaner(lexicon.NewWordSet(), nil)

	got := c.Clean("snake_case stays out but words stay")
	for _, tok := range got {
		if strings.Contains(tok, "_") {
			t.Errorf("token %q should have been dropped", tok)
		}
	}
	if len(got) != 5 {
		t.Errorf("expected 5 tokens, got %q", got)
	}
}

func TestCleanerSplitsCompounds(t *testing.T) {
	c := NewCleaner(lexicon.NewWordSet("not"), nil)

	got := c.Clean("We cannot wait")
	want := []string{"we", "can", "wait"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Clean = %q, want %q", got, want)
	}
}

func TestCleanerLowercases(t *testing.T) {
	c := NewCleaner(lexicon.NewWordSet("the"), nil)

	for _, tok := range c.Clean("THE Quick BROWN Fox") {
		if tok != strings.ToLower(tok) {
			t.Errorf("token %q not lowercased", tok)
		}
		if tok == "the" {
			t.Error("stop word survived")
		}
	}
}

func TestCleanerEmpty(t *testing.T) {
	c := NewCleaner(lexicon.NewWordSet(), nil)
	if got := c.Clean(""); len(got) != 0 {
		t.Errorf("expected no tokens, got %q", got)
	}
	if got := c.Clean("?!... --"); len(got) != 0 {
		t.Errorf("expected no tokens from punctuation, got %q", got)
	}
}

func TestStripPunctuation(t *testing.T) {
	got := StripPunctuation("héllo, wörld_1! ¿qué?")
	want := "héllo wörld_1 qué"
	if got != want {
		t.Errorf("StripPunctuation = %q, want %q", got, want)
	}
}
