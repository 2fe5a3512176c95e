// Command readmetrics computes sentiment and readability metrics for a
// directory (or JSONL file) of texts and writes them as one table.
//
// Usage:
//
//	go run ./cmd/readmetrics [-config readmetrics.yaml] [-texts extracted_texts] [-output Output.csv]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/cognicore/readmetrics/internal/logger"
	"github.com/cognicore/readmetrics/pkg/readmetrics/config"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to YAML config file")
		texts       = flag.String("texts", "", "Directory of <id>.txt documents")
		jsonl       = flag.String("jsonl", "", "JSONL file of {id,url,title,text} documents (overrides -texts)")
		stopWords   = flag.String("stopwords", "", "Stop-word list directory")
		sentiment   = flag.String("sentiment", "", "Positive/negative word list directory")
		input       = flag.String("input", "", "Metadata CSV with URL_ID and URL columns")
		output      = flag.String("output", "", "Output file")
		format      = flag.String("format", "csv", "Output format: csv or json")
		dbPath      = flag.String("db", "", "Optional SQLite database to record the run in")
		workers     = flag.Int("workers", 0, "Concurrent documents (0 keeps the configured value)")
		metricsFile = flag.String("metrics-file", "", "Write Prometheus metrics to this textfile")
		summary     = flag.Bool("summary", false, "Log per-metric mean/stddev/min/max")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	override(&cfg.Paths.Texts, *texts)
	override(&cfg.Paths.JSONL, *jsonl)
	override(&cfg.Paths.StopWords, *stopWords)
	override(&cfg.Paths.Sentiment, *sentiment)
	override(&cfg.Paths.Input, *input)
	override(&cfg.Paths.Output, *output)
	override(&cfg.Paths.Database, *dbPath)
	override(&cfg.Metrics.File, *metricsFile)
	if *workers > 0 {
		cfg.Analysis.Workers = *workers
	}

	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := run(ctx, cfg, runOptions{Format: *format, Summary: *summary})
	if err != nil {
		slog.Error("analysis failed", "error", err)
		os.Exit(1)
	}
	slog.Info("report written",
		"output", cfg.Paths.Output,
		"documents", res.Documents,
		"skipped", res.Skipped,
		"run_id", res.RunID,
	)
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
