package config

import (
	"fmt"
	"log/slog"

	"github.com/cognicore/readmetrics/pkg/readmetrics/analytics"
	"github.com/cognicore/readmetrics/pkg/readmetrics/lexicon"
)

// Loader loads the word lists and constructs components
type Loader struct {
	StopWordsDir string
	SentimentDir string
	Logger       *slog.Logger
}

// Components holds all loaded components
type Components struct {
	Lexicon    *lexicon.Lexicon
	Calculator *analytics.Calculator
}

// NewLoader returns a Loader for the paths in cfg.
func NewLoader(cfg *Config, log *slog.Logger) *Loader {
	return &Loader{
		StopWordsDir: cfg.Paths.StopWords,
		SentimentDir: cfg.Paths.Sentiment,
		Logger:       log,
	}
}

// Load reads the lexicon and returns initialized components
func (l *Loader) Load() (*Components, error) {
	lex, err := lexicon.Loader{
		StopWordsDir: l.StopWordsDir,
		SentimentDir: l.SentimentDir,
		Logger:       l.Logger,
	}.Load()
	if err != nil {
		return nil, err
	}

	calc, err := analytics.NewDefaultCalculator(lex)
	if err != nil {
		return nil, fmt.Errorf("build calculator: %w", err)
	}

	return &Components{Lexicon: lex, Calculator: calc}, nil
}
