// Package fetch downloads article pages and stores their readable text as
// documents for the analyzer.
package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/time/rate"

	"github.com/cognicore/readmetrics/internal/corpus"
	"github.com/cognicore/readmetrics/internal/logger"
)

// Options configures a Fetcher.
type Options struct {
	Rate      float64 // requests per second
	Burst     int
	Timeout   time.Duration
	UserAgent string
	Client    *http.Client
	Logger    *slog.Logger
}

// Fetcher retrieves pages politely, one limiter token per request.
type Fetcher struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
	log       *slog.Logger
}

// New builds a Fetcher. A zero Rate disables limiting.
func New(opts Options) *Fetcher {
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	limit := rate.Inf
	if opts.Rate > 0 {
		limit = rate.Limit(opts.Rate)
	}
	burst := opts.Burst
	if burst < 1 {
		burst = 1
	}
	log := opts.Logger
	if log == nil {
		log = logger.WithComponent("fetch")
	}
	return &Fetcher{
		client:    client,
		limiter:   rate.NewLimiter(limit, burst),
		userAgent: opts.UserAgent,
		log:       log,
	}
}

// Fetch downloads url and extracts its article.
func (f *Fetcher) Fetch(ctx context.Context, url string) (Article, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return Article{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Article{}, err
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return Article{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Article{}, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}
	return Extract(resp.Body)
}

// WriteArticle stores a as <dir>/<id>.txt and returns the path.
func WriteArticle(dir, id string, a Article) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, id+".txt")
	body := fmt.Sprintf("Title: %s\n\n%s", a.Title, a.Text)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// FetchAll downloads every entry in order and writes it to dir. Failed pages
// are logged and skipped; only context cancellation stops the loop.
func (f *Fetcher) FetchAll(ctx context.Context, metas []corpus.Meta, dir string) (int, error) {
	written := 0
	for _, m := range metas {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		if m.URL == "" {
			f.log.Warn("skipping entry without url", "id", m.ID)
			continue
		}

		a, err := f.Fetch(ctx, m.URL)
		if err != nil {
			if ctx.Err() != nil {
				return written, ctx.Err()
			}
			f.log.Warn("fetch failed", "id", m.ID, "url", m.URL, "error", err)
			continue
		}
		if _, err := WriteArticle(dir, m.ID, a); err != nil {
			f.log.Warn("write failed", "id", m.ID, "error", err)
			continue
		}
		written++
		f.log.Debug("article saved", "id", m.ID, "title", a.Title)
	}
	return written, nil
}
