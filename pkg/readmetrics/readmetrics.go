package readmetrics

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cognicore/readmetrics/internal/corpus"
	"github.com/cognicore/readmetrics/internal/logger"
	"github.com/cognicore/readmetrics/internal/telemetry"
	"github.com/cognicore/readmetrics/pkg/readmetrics/analytics"
)

// Analyzer computes the metric record for one document's raw text.
type Analyzer interface {
	Analyze(text string) analytics.Record
}

// Options configures an Engine
type Options struct {
	Analyzer Analyzer
	Workers  int // <= 0 means runtime.NumCPU()
	Logger   *slog.Logger
	Metrics  *telemetry.Metrics
}

// Engine runs the analyzer over a batch of documents.
type Engine struct {
	analyzer Analyzer
	workers  int
	log      *slog.Logger
	metrics  *telemetry.Metrics
}

// New creates an Engine with the given dependencies
func New(opts Options) *Engine {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	log := opts.Logger
	if log == nil {
		log = logger.WithComponent("engine")
	}
	m := opts.Metrics
	if m == nil {
		m = telemetry.New(nil)
	}
	return &Engine{
		analyzer: opts.Analyzer,
		workers:  workers,
		log:      log,
		metrics:  m,
	}
}

// AnalyzeDocuments analyzes documents whose text is already in memory.
func (e *Engine) AnalyzeDocuments(ctx context.Context, docs []corpus.Document) (*Table, error) {
	return e.AnalyzeAll(ctx, corpus.Refs(docs))
}

// AnalyzeAll loads and analyzes every document, up to Workers at a time.
// A document whose text cannot be loaded is logged, recorded in
// Table.Skipped and left out of the rows; the rest of the batch continues.
// Rows keep the input order. The only error returned is ctx's.
func (e *Engine) AnalyzeAll(ctx context.Context, docs []corpus.DocRef) (*Table, error) {
	rows := make([]*Row, len(docs))
	skips := make([]error, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, ref := range docs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			text, err := ref.Load()
			if err != nil {
				e.log.Warn("skipping document", "id", ref.ID, "err", err)
				e.metrics.DocumentsSkipped.WithLabelValues("unreadable").Inc()
				skips[i] = err
				return nil
			}

			start := time.Now()
			rec := e.analyzer.Analyze(text)
			e.metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
			e.metrics.DocumentsAnalyzed.Inc()

			rows[i] = &Row{ID: ref.ID, Record: rec}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	table := newTable(len(docs))
	for i, row := range rows {
		if row != nil {
			table.add(*row)
			continue
		}
		if skips[i] != nil {
			table.Skipped = append(table.Skipped, Skip{ID: docs[i].ID, Err: skips[i]})
		}
	}
	e.log.Info("batch analyzed", "documents", table.Len(), "skipped", len(table.Skipped))
	return table, nil
}
