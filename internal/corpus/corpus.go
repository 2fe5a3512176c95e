package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cognicore/readmetrics/internal/textenc"
	"github.com/cognicore/readmetrics/pkg/readmetrics/internalerr"
)

// Document is one unit of raw text keyed by its identifier.
type Document struct {
	ID   string
	Text string
}

// DocRef names a document whose text is read on demand. Load errors are
// reported per document so a batch can skip it and continue.
type DocRef struct {
	ID   string
	Load func() (string, error)
}

// Refs wraps already-loaded documents.
func Refs(docs []Document) []DocRef {
	refs := make([]DocRef, len(docs))
	for i, d := range docs {
		text := d.Text
		refs[i] = DocRef{ID: d.ID, Load: func() (string, error) { return text, nil }}
	}
	return refs
}

// FromDir lists every *.txt file directly under dir in name order. The
// document ID is the file name up to its first dot. Files are read lazily;
// undecodable bytes are dropped.
func FromDir(dir string) ([]DocRef, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read texts dir %s: %w", dir, err)
	}

	var refs []DocRef
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		refs = append(refs, DocRef{
			ID:   IDFromFilename(e.Name()),
			Load: func() (string, error) { return readText(path) },
		})
	}
	return refs, nil
}

// IDFromFilename returns name up to its first '.'.
func IDFromFilename(name string) string {
	id, _, _ := strings.Cut(filepath.Base(name), ".")
	return id
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", internalerr.ErrDocumentUnread, path, err)
	}
	return textenc.Decode(data), nil
}
