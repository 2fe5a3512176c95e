// Package report joins analysis results with per-document metadata and
// writes them as a flat table.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/cognicore/readmetrics/internal/corpus"
	"github.com/cognicore/readmetrics/pkg/readmetrics"
	"github.com/cognicore/readmetrics/pkg/readmetrics/analytics"
)

// Columns is the fixed output header.
var Columns = append([]string{corpus.IDColumn, corpus.URLColumn}, analytics.Columns...)

// Line is one output row. Record is nil when the document has metadata but
// no analysis result.
type Line struct {
	ID     string
	URL    string
	Record *analytics.Record
}

// Join left-joins table onto metas by ID, in metadata order. With no
// metadata every table row becomes a line with an empty URL.
func Join(metas []corpus.Meta, table *readmetrics.Table) []Line {
	if len(metas) == 0 {
		lines := make([]Line, 0, table.Len())
		for _, row := range table.Rows {
			rec := row.Record
			lines = append(lines, Line{ID: row.ID, Record: &rec})
		}
		return lines
	}

	lines := make([]Line, 0, len(metas))
	for _, m := range metas {
		line := Line{ID: m.ID, URL: m.URL}
		if rec, ok := table.Get(m.ID); ok {
			line.Record = &rec
		}
		lines = append(lines, line)
	}
	return lines
}

// Cells renders the line in Columns order; missing metrics are empty.
func (l Line) Cells() []string {
	cells := make([]string, 0, len(Columns))
	cells = append(cells, l.ID, l.URL)
	if l.Record == nil {
		for range analytics.Columns {
			cells = append(cells, "")
		}
		return cells
	}
	for _, v := range l.Record.Values() {
		cells = append(cells, strconv.FormatFloat(v, 'f', -1, 64))
	}
	return cells
}

// WriteCSV writes the header and one record per line.
func WriteCSV(w io.Writer, lines []Line) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, l := range lines {
		if err := cw.Write(l.Cells()); err != nil {
			return fmt.Errorf("write row %s: %w", l.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

type jsonLine struct {
	ID  string `json:"URL_ID"`
	URL string `json:"URL"`
	*analytics.Record
}

// WriteJSON writes lines as a JSON array; unmatched lines carry only ID and URL.
func WriteJSON(w io.Writer, lines []Line) error {
	out := make([]jsonLine, len(lines))
	for i, l := range lines {
		out[i] = jsonLine{ID: l.ID, URL: l.URL, Record: l.Record}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
