package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/readmetrics/internal/logger"
	"github.com/cognicore/readmetrics/pkg/readmetrics/internalerr"
)

func writeList(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoaderBuildsComponents(t *testing.T) {
	root := t.TempDir()
	stopDir := filepath.Join(root, "stop")
	dictDir := filepath.Join(root, "dict")
	writeList(t, stopDir, "generic.txt", "this\nthat\n")
	writeList(t, dictDir, "positive-words.txt", "love\n")
	writeList(t, dictDir, "negative-words.txt", "hate\n")

	cfg := Default()
	cfg.Paths.StopWords = stopDir
	cfg.Paths.Sentiment = dictDir

	comp, err := NewLoader(cfg, logger.Discard()).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if comp.Lexicon == nil || comp.Calculator == nil {
		t.Fatal("expected lexicon and calculator")
	}

	rec := comp.Calculator.Analyze("I love this. We hate that.")
	if rec.PositiveScore != 1 || rec.NegativeScore != 1 {
		t.Errorf("unexpected scores: %+v", rec)
	}
}

func TestLoaderNonExistentStopWords(t *testing.T) {
	loader := Loader{
		StopWordsDir: "/nonexistent/stop",
		SentimentDir: "/nonexistent/dict",
		Logger:       logger.Discard(),
	}
	_, err := loader.Load()
	if !errors.Is(err, internalerr.ErrSourceMissing) {
		t.Errorf("expected ErrSourceMissing, got %v", err)
	}
}

func TestLoaderMissingSentimentStillBuilds(t *testing.T) {
	stopDir := filepath.Join(t.TempDir(), "stop")
	writeList(t, stopDir, "a.txt", "the\n")

	loader := Loader{StopWordsDir: stopDir, SentimentDir: "/nonexistent/dict", Logger: logger.Discard()}
	comp, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if comp.Lexicon.Positive.Len() != 0 || comp.Lexicon.Negative.Len() != 0 {
		t.Error("expected empty sentiment sets")
	}
}
