package readmetrics

import "github.com/cognicore/readmetrics/pkg/readmetrics/analytics"

// Row pairs a document ID with its metrics.
type Row struct {
	ID     string
	Record analytics.Record
}

// Skip records a document that could not be analyzed.
type Skip struct {
	ID  string
	Err error
}

// Table is the ordered result of a batch run.
type Table struct {
	Rows    []Row
	Skipped []Skip
	index   map[string]int
}

func newTable(capacity int) *Table {
	return &Table{
		Rows:  make([]Row, 0, capacity),
		index: make(map[string]int, capacity),
	}
}

func (t *Table) add(r Row) {
	t.index[r.ID] = len(t.Rows)
	t.Rows = append(t.Rows, r)
}

// Get returns the record for id. With duplicate IDs the last row wins.
func (t *Table) Get(id string) (analytics.Record, bool) {
	i, ok := t.index[id]
	if !ok {
		return analytics.Record{}, false
	}
	return t.Rows[i].Record, true
}

// Len returns the number of analyzed documents.
func (t *Table) Len() int {
	return len(t.Rows)
}

// IDs returns the row IDs in order.
func (t *Table) IDs() []string {
	out := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r.ID
	}
	return out
}

// Records returns the metric records in row order.
func (t *Table) Records() []analytics.Record {
	out := make([]analytics.Record, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r.Record
	}
	return out
}
