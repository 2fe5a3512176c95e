package corpus

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cognicore/readmetrics/pkg/readmetrics/internalerr"
)

// Column names expected in the metadata sheet.
const (
	IDColumn  = "URL_ID"
	URLColumn = "URL"
)

// Meta is the per-document metadata the report joins metrics against.
type Meta struct {
	ID  string
	URL string
}

// LoadMetadata reads a CSV file whose header names URL_ID and URL columns.
func LoadMetadata(path string) ([]Meta, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open metadata %s: %w", path, err)
	}
	defer f.Close()

	metas, err := ReadMetadata(f)
	if err != nil {
		return nil, fmt.Errorf("metadata %s: %w", path, err)
	}
	return metas, nil
}

// ReadMetadata parses metadata CSV from r. Rows with an empty ID are skipped.
func ReadMetadata(r io.Reader) ([]Meta, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty metadata file", internalerr.ErrInvalidInput)
	}
	if err != nil {
		return nil, err
	}

	idIdx, urlIdx := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")) {
		case IDColumn:
			idIdx = i
		case URLColumn:
			urlIdx = i
		}
	}
	if idIdx < 0 {
		return nil, fmt.Errorf("%w: missing %s column", internalerr.ErrInvalidInput, IDColumn)
	}

	var metas []Meta
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		m := Meta{ID: field(rec, idIdx)}
		if m.ID == "" {
			continue
		}
		if urlIdx >= 0 {
			m.URL = field(rec, urlIdx)
		}
		metas = append(metas, m)
	}
	return metas, nil
}

func field(rec []string, i int) string {
	if i < len(rec) {
		return strings.TrimSpace(rec[i])
	}
	return ""
}
