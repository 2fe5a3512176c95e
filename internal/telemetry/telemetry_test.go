package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewRegistersAndWrites(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.DocumentsAnalyzed.Add(3)
	m.DocumentsSkipped.WithLabelValues("unreadable").Inc()
	m.AnalysisDuration.Observe(0.002)
	m.LexiconWords.WithLabelValues("stop").Set(120)

	path := filepath.Join(t.TempDir(), "metrics.prom")
	if err := WriteFile(path, reg); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for _, want := range []string{
		"readmetrics_documents_analyzed_total 3",
		`readmetrics_documents_skipped_total{reason="unreadable"} 1`,
		`readmetrics_lexicon_words{set="stop"} 120`,
		"readmetrics_analysis_seconds_count 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestNewNilRegistry(t *testing.T) {
	m := New(nil)
	m.DocumentsAnalyzed.Inc()
}
