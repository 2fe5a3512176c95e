package analytics

import (
	"fmt"
	"unicode/utf8"

	"github.com/cognicore/readmetrics/pkg/readmetrics/ingest"
	"github.com/cognicore/readmetrics/pkg/readmetrics/lexicon"
)

// Epsilon is added to every ratio denominator so empty documents score 0
// instead of dividing by zero.
const Epsilon = 0.000001

// ComplexSyllables is the syllable count a word must exceed to be complex.
const ComplexSyllables = 2

// Calculator derives a Record from raw text. It holds only read-only state
// and may be shared across goroutines.
type Calculator struct {
	pipeline *ingest.Pipeline
	lex      *lexicon.Lexicon
}

// NewCalculator builds a calculator over lex using segmenter for sentence
// boundaries.
func NewCalculator(lex *lexicon.Lexicon, segmenter ingest.Segmenter) *Calculator {
	words := ingest.NewWordTokenizer()
	return &Calculator{
		pipeline: ingest.NewPipeline(ingest.NewCleaner(lex.Stop, words), words, segmenter),
		lex:      lex,
	}
}

// NewDefaultCalculator builds a calculator with the Punkt English segmenter.
func NewDefaultCalculator(lex *lexicon.Lexicon) (*Calculator, error) {
	seg, err := ingest.NewPunktSegmenter()
	if err != nil {
		return nil, fmt.Errorf("sentence segmenter: %w", err)
	}
	return NewCalculator(lex, seg), nil
}

// Analyze computes the metrics for text. The result depends only on text and
// the lexicon.
func (c *Calculator) Analyze(text string) Record {
	doc := c.pipeline.Process(text)
	tokens := doc.Tokens

	var positive, negative, complexWords, syllables, letters int
	for _, tok := range tokens {
		if c.lex.Positive.Contains(tok) {
			positive++
		}
		if c.lex.Negative.Contains(tok) {
			negative++
		}
		n := CountSyllables(tok)
		syllables += n
		if n > ComplexSyllables {
			complexWords++
		}
		letters += utf8.RuneCountInString(tok)
	}

	total := float64(len(tokens))
	sentiment := float64(positive + negative)

	avgSentenceLength := float64(doc.RawWords) / (float64(doc.Sentences) + Epsilon)
	pctComplex := float64(complexWords) / (total + Epsilon) * 100

	return Record{
		PositiveScore:          positive,
		NegativeScore:          negative,
		PolarityScore:          float64(positive-negative) / (sentiment + Epsilon),
		SubjectivityScore:      sentiment / (total + Epsilon),
		AvgSentenceLength:      avgSentenceLength,
		PercentageComplexWords: pctComplex,
		FogIndex:               0.4 * (avgSentenceLength + pctComplex),
		AvgWordLength:          float64(letters) / (total + Epsilon),
		ComplexWordCount:       complexWords,
		WordCount:              len(tokens),
		SyllablesPerWord:       float64(syllables) / (total + Epsilon),
		PersonalPronouns:       CountPersonalPronouns(text),
	}
}
