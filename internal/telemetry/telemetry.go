// Package telemetry defines the Prometheus collectors a batch run updates.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors for one analyzer process.
type Metrics struct {
	DocumentsAnalyzed prometheus.Counter
	DocumentsSkipped  *prometheus.CounterVec
	AnalysisDuration  prometheus.Histogram
	LexiconWords      *prometheus.GaugeVec
}

// New creates the collectors and registers them with reg. A nil reg leaves
// them unregistered.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		DocumentsAnalyzed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "readmetrics_documents_analyzed_total",
				Help: "Documents successfully analyzed.",
			},
		),
		DocumentsSkipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "readmetrics_documents_skipped_total",
				Help: "Documents skipped, by reason.",
			},
			[]string{"reason"},
		),
		AnalysisDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "readmetrics_analysis_seconds",
				Help:    "Time spent analyzing one document.",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
			},
		),
		LexiconWords: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "readmetrics_lexicon_words",
				Help: "Words loaded per lexicon set.",
			},
			[]string{"set"},
		),
	}

	if reg != nil {
		reg.MustRegister(
			m.DocumentsAnalyzed,
			m.DocumentsSkipped,
			m.AnalysisDuration,
			m.LexiconWords,
		)
	}
	return m
}

// WriteFile dumps every metric gathered by g in text exposition format.
func WriteFile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
