package lexicon

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cognicore/readmetrics/internal/logger"
	"github.com/cognicore/readmetrics/pkg/readmetrics/internalerr"
)

// Lexicon holds the three word sets the analyzer classifies tokens against.
// Positive and Negative never share a word with Stop; they may overlap with
// each other.
type Lexicon struct {
	Stop     WordSet
	Positive WordSet
	Negative WordSet
}

// LoadStopWords merges every source into one stop-word set.
func LoadStopWords(sources []Source) WordSet {
	var words []string
	for _, src := range sources {
		words = append(words, src.Lines()...)
	}
	return NewWordSet(words...)
}

// Sentiment is the pair of polarity word sets.
type Sentiment struct {
	Positive WordSet
	Negative WordSet
}

// LoadSentiment classifies each source by name and drops words already in
// stop. Sources whose name matches neither polarity are ignored.
func LoadSentiment(sources []Source, stop WordSet) Sentiment {
	var pos, neg []string
	for _, src := range sources {
		switch Classify(src.Name) {
		case Positive:
			pos = append(pos, src.Lines()...)
		case Negative:
			neg = append(neg, src.Lines()...)
		}
	}
	return Sentiment{
		Positive: NewWordSet(pos...).Without(stop),
		Negative: NewWordSet(neg...).Without(stop),
	}
}

// New assembles a Lexicon from already-collected sources.
func New(stopSources, sentimentSources []Source) *Lexicon {
	stop := LoadStopWords(stopSources)
	sent := LoadSentiment(sentimentSources, stop)
	return &Lexicon{
		Stop:     stop,
		Positive: sent.Positive,
		Negative: sent.Negative,
	}
}

// Loader reads the two word-list directories.
type Loader struct {
	StopWordsDir string
	SentimentDir string
	Logger       *slog.Logger
}

// Load reads both directories. A missing stop-word directory is an error; a
// missing sentiment directory degrades to empty polarity sets with a warning.
func (l Loader) Load() (*Lexicon, error) {
	log := l.Logger
	if log == nil {
		log = logger.WithComponent("lexicon")
	}

	stopSources, err := ReadDir(l.StopWordsDir)
	if err != nil {
		return nil, fmt.Errorf("load stop words: %w", err)
	}

	sentSources, err := ReadDir(l.SentimentDir)
	switch {
	case errors.Is(err, internalerr.ErrSourceMissing):
		log.Warn("sentiment lexicon not found, using empty dictionaries", "dir", l.SentimentDir)
		sentSources = nil
	case err != nil:
		return nil, fmt.Errorf("load sentiment lexicon: %w", err)
	}

	lex := New(stopSources, sentSources)
	log.Info("lexicon loaded",
		"stop_words", lex.Stop.Len(),
		"positive", lex.Positive.Len(),
		"negative", lex.Negative.Len(),
	)
	return lex, nil
}
