package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cognicore/readmetrics/pkg/readmetrics/analytics"
	"github.com/cognicore/readmetrics/pkg/readmetrics/internalerr"
	"github.com/cognicore/readmetrics/pkg/readmetrics/store"
)

var _ store.Store = (*Store)(nil)

func TestCreateRun_RejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	s := New()
	run := store.Run{ID: "01A", StartedAt: time.Now()}
	if err := s.CreateRun(ctx, run); err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	if err := s.CreateRun(ctx, run); !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput on duplicate, got %v", err)
	}
	if err := s.CreateRun(ctx, store.Run{}); !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput on empty id, got %v", err)
	}
}

func TestGetRun_NotFound(t *testing.T) {
	s := New()
	if _, err := s.GetRun(context.Background(), "missing"); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListRuns_NewestFirst(t *testing.T) {
	ctx := context.Background()
	s := New()
	for _, id := range []string{"01B", "01C", "01A"} {
		if err := s.CreateRun(ctx, store.Run{ID: id}); err != nil {
			t.Fatalf("CreateRun %s: %v", id, err)
		}
	}
	runs, err := s.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 || runs[0].ID != "01C" || runs[1].ID != "01B" {
		t.Errorf("unexpected order: %+v", runs)
	}
}

func TestSaveRecords_Upsert(t *testing.T) {
	ctx := context.Background()
	s := New()
	if err := s.CreateRun(ctx, store.Run{ID: "r1"}); err != nil {
		t.Fatal(err)
	}

	first := []store.DocRecord{
		{DocID: "a", Record: analytics.Record{WordCount: 1}},
		{DocID: "b", Record: analytics.Record{WordCount: 2}},
	}
	if err := s.SaveRecords(ctx, "r1", first); err != nil {
		t.Fatalf("SaveRecords: %v", err)
	}
	if err := s.SaveRecords(ctx, "r1", []store.DocRecord{{DocID: "a", Record: analytics.Record{WordCount: 9}}}); err != nil {
		t.Fatalf("SaveRecords upsert: %v", err)
	}

	rec, ok, err := s.GetRecord(ctx, "r1", "a")
	if err != nil || !ok {
		t.Fatalf("GetRecord: ok=%v err=%v", ok, err)
	}
	if rec.WordCount != 9 {
		t.Errorf("expected upserted word count 9, got %d", rec.WordCount)
	}

	all, _ := s.ListRecords(ctx, "r1")
	if len(all) != 2 || all[0].DocID != "a" || all[1].DocID != "b" {
		t.Errorf("unexpected records: %+v", all)
	}

	if _, ok, _ := s.GetRecord(ctx, "r1", "zzz"); ok {
		t.Error("expected missing record")
	}
}

func TestSaveRecords_UnknownRun(t *testing.T) {
	s := New()
	err := s.SaveRecords(context.Background(), "nope", []store.DocRecord{{DocID: "a"}})
	if !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
