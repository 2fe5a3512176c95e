package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/cognicore/readmetrics/pkg/readmetrics/analytics"
	"github.com/cognicore/readmetrics/pkg/readmetrics/internalerr"
	"github.com/cognicore/readmetrics/pkg/readmetrics/store"
)

// Store is the in-memory test double for store.Store. Production runs use
// the sqlite package.
type Store struct {
	mu      sync.RWMutex
	runs    map[string]store.Run
	records map[string][]store.DocRecord
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		runs:    make(map[string]store.Run),
		records: make(map[string][]store.DocRecord),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// CreateRun registers a run; IDs must be unique.
func (s *Store) CreateRun(ctx context.Context, r store.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == "" {
		return fmt.Errorf("%w: run id required", internalerr.ErrInvalidInput)
	}
	if _, ok := s.runs[r.ID]; ok {
		return fmt.Errorf("%w: run %s exists", internalerr.ErrInvalidInput, r.ID)
	}
	s.runs[r.ID] = r
	return nil
}

// GetRun returns a run by ID.
func (s *Store) GetRun(ctx context.Context, id string) (store.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.runs[id]
	if !ok {
		return store.Run{}, fmt.Errorf("run %s: %w", id, internalerr.ErrNotFound)
	}
	return r, nil
}

// ListRuns returns runs newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]store.Run, 0, len(s.runs))
	for _, r := range s.runs {
		runs = append(runs, r)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].ID > runs[j].ID })
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// SaveRecords replaces any stored record with the same document ID.
func (s *Store) SaveRecords(ctx context.Context, runID string, rows []store.DocRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.runs[runID]; !ok {
		return fmt.Errorf("run %s: %w", runID, internalerr.ErrNotFound)
	}
	existing := s.records[runID]
	for _, row := range rows {
		replaced := false
		for i := range existing {
			if existing[i].DocID == row.DocID {
				existing[i] = row
				replaced = true
				break
			}
		}
		if !replaced {
			existing = append(existing, row)
		}
	}
	s.records[runID] = existing
	return nil
}

// GetRecord returns one stored record.
func (s *Store) GetRecord(ctx context.Context, runID, docID string) (analytics.Record, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, row := range s.records[runID] {
		if row.DocID == docID {
			return row.Record, true, nil
		}
	}
	return analytics.Record{}, false, nil
}

// ListRecords returns a run's records in insertion order.
func (s *Store) ListRecords(ctx context.Context, runID string) ([]store.DocRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.DocRecord, len(s.records[runID]))
	copy(out, s.records[runID])
	return out, nil
}
