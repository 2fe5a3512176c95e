package analytics

// Record is the fixed set of readability and sentiment metrics computed for
// one document. Count fields are integers; everything else is a ratio.
type Record struct {
	PositiveScore          int     `json:"positive_score"`
	NegativeScore          int     `json:"negative_score"`
	PolarityScore          float64 `json:"polarity_score"`
	SubjectivityScore      float64 `json:"subjectivity_score"`
	AvgSentenceLength      float64 `json:"avg_sentence_length"`
	PercentageComplexWords float64 `json:"percentage_of_complex_words"`
	FogIndex               float64 `json:"fog_index"`
	AvgWordLength          float64 `json:"avg_word_length"`
	ComplexWordCount       int     `json:"complex_word_count"`
	WordCount              int     `json:"word_count"`
	SyllablesPerWord       float64 `json:"syllables_per_word"`
	PersonalPronouns       int     `json:"personal_pronouns"`
}

// Columns lists the metric names in report order.
var Columns = []string{
	"positive_score",
	"negative_score",
	"polarity_score",
	"subjectivity_score",
	"avg_sentence_length",
	"percentage_of_complex_words",
	"fog_index",
	"avg_word_length",
	"complex_word_count",
	"word_count",
	"syllables_per_word",
	"personal_pronouns",
}

// Values returns the metrics in Columns order.
func (r Record) Values() []float64 {
	return []float64{
		float64(r.PositiveScore),
		float64(r.NegativeScore),
		r.PolarityScore,
		r.SubjectivityScore,
		r.AvgSentenceLength,
		r.PercentageComplexWords,
		r.FogIndex,
		r.AvgWordLength,
		float64(r.ComplexWordCount),
		float64(r.WordCount),
		r.SyllablesPerWord,
		float64(r.PersonalPronouns),
	}
}
