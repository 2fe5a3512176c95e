package corpus

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/cognicore/readmetrics/internal/textenc"
)

// Item is one JSONL record: an identified text with optional metadata.
type Item struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Document returns the item as a Document, prefixing the title line the way
// extracted article files are written.
func (it Item) Document() Document {
	text := it.Text
	if it.Title != "" {
		text = "Title: " + it.Title + "\n\n" + text
	}
	return Document{ID: it.ID, Text: text}
}

// LoadJSONL loads items from a JSONL file. Malformed or ID-less lines are
// skipped with a warning.
func LoadJSONL(path string, log *slog.Logger) ([]Item, error) {
	if log == nil {
		log = slog.Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var items []Item
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(textenc.Decode(scanner.Bytes()))
		if raw == "" {
			continue
		}

		var item Item
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			log.Warn("skipping malformed JSON line", "path", path, "line", line, "err", err)
			continue
		}
		if item.ID == "" {
			log.Warn("skipping item without id", "path", path, "line", line)
			continue
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("no valid items found in %s", path)
	}
	return items, nil
}

// Metas extracts the ID/URL metadata of items in order.
func Metas(items []Item) []Meta {
	out := make([]Meta, len(items))
	for i, it := range items {
		out[i] = Meta{ID: it.ID, URL: it.URL}
	}
	return out
}
