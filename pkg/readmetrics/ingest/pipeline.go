package ingest

// Pipeline orchestrates per-document text processing:
// raw text → cleaned tokens, plus raw sentence and word counts
type Pipeline struct {
	cleaner   *Cleaner
	words     *WordTokenizer
	segmenter Segmenter
}

// NewPipeline creates a processing pipeline with the given components
func NewPipeline(cleaner *Cleaner, words *WordTokenizer, segmenter Segmenter) *Pipeline {
	if words == nil {
		words = NewWordTokenizer()
	}
	return &Pipeline{
		cleaner:   cleaner,
		words:     words,
		segmenter: segmenter,
	}
}

// ProcessedDoc represents a document after processing. Sentences and
// RawWords come from the unmodified text; Tokens from the cleaned text.
type ProcessedDoc struct {
	Tokens    []string
	Sentences int
	RawWords  int
}

// Process runs a document through the pipeline
func (p *Pipeline) Process(text string) ProcessedDoc {
	doc := ProcessedDoc{Tokens: p.cleaner.Clean(text)}

	// Raw words are tokenized sentence by sentence, as the readability
	// metrics expect.
	for _, sent := range p.segmenter.Segment(text) {
		doc.Sentences++
		doc.RawWords += len(p.words.Tokenize(sent))
	}
	return doc
}
