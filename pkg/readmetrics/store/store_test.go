package store

import (
	"testing"
	"time"
)

func TestNewRunID_SortsByTime(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	a := NewRunID(base)
	b := NewRunID(base.Add(time.Second))
	if len(a) != 26 {
		t.Fatalf("expected 26-char id, got %q", a)
	}
	if !(a < b) {
		t.Errorf("expected %s < %s", a, b)
	}
}

func TestNewRunID_MonotonicWithinTimestamp(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	prev := NewRunID(ts)
	for i := 0; i < 50; i++ {
		next := NewRunID(ts)
		if next <= prev {
			t.Fatalf("id %d not increasing: %s <= %s", i, next, prev)
		}
		prev = next
	}
}
