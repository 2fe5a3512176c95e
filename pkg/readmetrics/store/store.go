package store

import (
	"context"
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/readmetrics/pkg/readmetrics/analytics"
)

// Store persists analysis runs and their per-document records
type Store interface {
	Close() error

	// Runs
	CreateRun(ctx context.Context, r Run) error
	GetRun(ctx context.Context, id string) (Run, error)
	ListRuns(ctx context.Context, limit int) ([]Run, error)

	// Records
	SaveRecords(ctx context.Context, runID string, rows []DocRecord) error
	GetRecord(ctx context.Context, runID, docID string) (analytics.Record, bool, error)
	ListRecords(ctx context.Context, runID string) ([]DocRecord, error)
}

// Run describes one batch analysis
type Run struct {
	ID        string
	StartedAt time.Time
	Documents int
	Skipped   int
}

// DocRecord is a stored record keyed by document ID
type DocRecord struct {
	DocID  string
	URL    string
	Record analytics.Record
}

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewRunID returns a lexically sortable run identifier for t.
func NewRunID(t time.Time) string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}
