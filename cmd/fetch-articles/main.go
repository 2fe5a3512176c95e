// Command fetch-articles downloads every URL listed in a metadata CSV and
// writes the readable article text to <out>/<URL_ID>.txt for readmetrics.
//
// Usage:
//
//	go run ./cmd/fetch-articles [-config readmetrics.yaml] [-input Input.csv] [-out extracted_texts]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/cognicore/readmetrics/internal/corpus"
	"github.com/cognicore/readmetrics/internal/fetch"
	"github.com/cognicore/readmetrics/internal/logger"
	"github.com/cognicore/readmetrics/pkg/readmetrics/config"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML config file")
		input      = flag.String("input", "", "Metadata CSV with URL_ID and URL columns")
		out        = flag.String("out", "", "Directory for extracted texts")
		rps        = flag.Float64("rate", 0, "Requests per second (0 keeps the configured value)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *input != "" {
		cfg.Paths.Input = *input
	}
	if *out != "" {
		cfg.Paths.Texts = *out
	}
	if *rps > 0 {
		cfg.Fetch.Rate = *rps
	}

	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)

	metas, err := corpus.LoadMetadata(cfg.Paths.Input)
	if err != nil {
		slog.Error("failed to load metadata", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	f := fetch.New(fetch.Options{
		Rate:      cfg.Fetch.Rate,
		Burst:     cfg.Fetch.Burst,
		Timeout:   cfg.Fetch.Timeout,
		UserAgent: cfg.Fetch.UserAgent,
		Logger:    logger.WithComponent("fetch"),
	})

	slog.Info("fetching articles", "urls", len(metas), "out", cfg.Paths.Texts, "rate", cfg.Fetch.Rate)
	n, err := f.FetchAll(ctx, metas, cfg.Paths.Texts)
	if err != nil {
		slog.Error("fetch interrupted", "written", n, "error", err)
		os.Exit(1)
	}
	slog.Info("articles saved", "written", n, "failed", len(metas)-n)
}
