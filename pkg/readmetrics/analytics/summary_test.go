package analytics

import (
	"math"
	"testing"
)

func TestSummarizeEmpty(t *testing.T) {
	if got := Summarize(nil); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestSummarize(t *testing.T) {
	recs := []Record{
		{PositiveScore: 1, WordCount: 10, FogIndex: 8},
		{PositiveScore: 3, WordCount: 20, FogIndex: 12},
	}
	sums := Summarize(recs)
	if len(sums) != len(Columns) {
		t.Fatalf("expected %d summaries, got %d", len(Columns), len(sums))
	}

	byName := make(map[string]ColumnSummary, len(sums))
	for _, s := range sums {
		byName[s.Column] = s
	}

	pos := byName["positive_score"]
	if pos.N != 2 || pos.Mean != 2 || pos.Min != 1 || pos.Max != 3 {
		t.Errorf("positive_score summary = %+v", pos)
	}
	if math.Abs(pos.StdDev-math.Sqrt2) > 1e-9 {
		t.Errorf("positive_score std = %v, want sqrt(2)", pos.StdDev)
	}
	if byName["fog_index"].Mean != 10 {
		t.Errorf("fog_index mean = %v", byName["fog_index"].Mean)
	}
}

func TestSummarizeSingleRecordStdDevZero(t *testing.T) {
	sums := Summarize([]Record{{WordCount: 7}})
	for _, s := range sums {
		if s.StdDev != 0 || math.IsNaN(s.StdDev) {
			t.Errorf("%s std = %v, want 0", s.Column, s.StdDev)
		}
	}
}
