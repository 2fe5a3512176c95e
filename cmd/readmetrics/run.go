package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/cognicore/readmetrics/internal/corpus"
	"github.com/cognicore/readmetrics/internal/logger"
	"github.com/cognicore/readmetrics/internal/telemetry"
	"github.com/cognicore/readmetrics/pkg/readmetrics"
	"github.com/cognicore/readmetrics/pkg/readmetrics/analytics"
	"github.com/cognicore/readmetrics/pkg/readmetrics/config"
	"github.com/cognicore/readmetrics/pkg/readmetrics/internalerr"
	"github.com/cognicore/readmetrics/pkg/readmetrics/report"
	"github.com/cognicore/readmetrics/pkg/readmetrics/store"
	"github.com/cognicore/readmetrics/pkg/readmetrics/store/sqlite"
)

type runOptions struct {
	Format  string
	Summary bool
}

type runResult struct {
	RunID     string
	Documents int
	Skipped   int
	Summary   []analytics.ColumnSummary
}

func run(ctx context.Context, cfg *config.Config, opts runOptions) (runResult, error) {
	var res runResult
	switch opts.Format {
	case "", "csv", "json":
	default:
		return res, fmt.Errorf("%w: unknown format %q", internalerr.ErrInvalidInput, opts.Format)
	}

	reg := prometheus.NewRegistry()
	metrics := telemetry.New(reg)

	comp, err := config.NewLoader(cfg, logger.WithComponent("lexicon")).Load()
	if err != nil {
		return res, fmt.Errorf("load lexicon: %w", err)
	}
	metrics.LexiconWords.WithLabelValues("stop").Set(float64(comp.Lexicon.Stop.Len()))
	metrics.LexiconWords.WithLabelValues("positive").Set(float64(comp.Lexicon.Positive.Len()))
	metrics.LexiconWords.WithLabelValues("negative").Set(float64(comp.Lexicon.Negative.Len()))

	refs, metas, err := loadCorpus(cfg)
	if err != nil {
		return res, err
	}

	started := time.Now()
	engine := readmetrics.New(readmetrics.Options{
		Analyzer: comp.Calculator,
		Workers:  cfg.Analysis.Workers,
		Logger:   logger.WithComponent("engine"),
		Metrics:  metrics,
	})
	table, err := engine.AnalyzeAll(ctx, refs)
	if err != nil {
		return res, err
	}
	res.Documents = table.Len()
	res.Skipped = len(table.Skipped)

	lines := report.Join(metas, table)
	if err := writeReport(cfg.Paths.Output, opts.Format, lines); err != nil {
		return res, err
	}

	if cfg.Paths.Database != "" {
		id, err := persist(ctx, cfg.Paths.Database, started, table, lines)
		if err != nil {
			return res, fmt.Errorf("persist run: %w", err)
		}
		res.RunID = id
	}

	if opts.Summary {
		res.Summary = analytics.Summarize(table.Records())
		for _, s := range res.Summary {
			slog.Info("metric summary",
				"column", s.Column, "n", s.N,
				"mean", s.Mean, "std_dev", s.StdDev,
				"min", s.Min, "max", s.Max,
			)
		}
	}

	if cfg.Metrics.File != "" {
		if err := telemetry.WriteFile(cfg.Metrics.File, reg); err != nil {
			return res, fmt.Errorf("write metrics: %w", err)
		}
	}
	return res, nil
}

// loadCorpus returns the documents to analyze and the metadata to join
// against. JSONL input carries its own metadata; otherwise the metadata CSV
// is optional.
func loadCorpus(cfg *config.Config) ([]corpus.DocRef, []corpus.Meta, error) {
	if cfg.Paths.JSONL != "" {
		items, err := corpus.LoadJSONL(cfg.Paths.JSONL, logger.WithComponent("corpus"))
		if err != nil {
			return nil, nil, fmt.Errorf("load documents: %w", err)
		}
		docs := make([]corpus.Document, len(items))
		for i, it := range items {
			docs[i] = it.Document()
		}
		return corpus.Refs(docs), corpus.Metas(items), nil
	}

	refs, err := corpus.FromDir(cfg.Paths.Texts)
	if err != nil {
		return nil, nil, fmt.Errorf("load documents: %w", err)
	}

	var metas []corpus.Meta
	if cfg.Paths.Input != "" {
		metas, err = corpus.LoadMetadata(cfg.Paths.Input)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			slog.Warn("metadata file not found, reporting without URLs", "path", cfg.Paths.Input)
			metas = nil
		case err != nil:
			return nil, nil, err
		}
	}
	return refs, metas, nil
}

func writeReport(path, format string, lines []report.Line) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	if format == "json" {
		err = report.WriteJSON(f, lines)
	} else {
		err = report.WriteCSV(f, lines)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("write output: %w", err)
	}
	return f.Close()
}

func persist(ctx context.Context, path string, started time.Time, table *readmetrics.Table, lines []report.Line) (string, error) {
	st, err := sqlite.OpenSQLite(ctx, path)
	if err != nil {
		return "", err
	}
	defer st.Close()

	run := store.Run{
		ID:        store.NewRunID(started),
		StartedAt: started,
		Documents: table.Len(),
		Skipped:   len(table.Skipped),
	}
	if err := st.CreateRun(ctx, run); err != nil {
		return "", err
	}

	urls := make(map[string]string, len(lines))
	for _, l := range lines {
		urls[l.ID] = l.URL
	}
	rows := make([]store.DocRecord, 0, table.Len())
	for _, r := range table.Rows {
		rows = append(rows, store.DocRecord{DocID: r.ID, URL: urls[r.ID], Record: r.Record})
	}
	if err := st.SaveRecords(ctx, run.ID, rows); err != nil {
		return "", err
	}
	slog.Info("run recorded", "run_id", run.ID, "db", path, "records", len(rows))
	return run.ID, nil
}
