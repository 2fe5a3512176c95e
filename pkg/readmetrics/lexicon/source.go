package lexicon

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cognicore/readmetrics/internal/textenc"
	"github.com/cognicore/readmetrics/pkg/readmetrics/internalerr"
)

// Source is one named word list: a file name and its raw bytes.
type Source struct {
	Name    string
	Content []byte
}

// newlines folds CRLF and lone CR line endings into LF.
var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Lines splits the source into normalized words. Undecodable bytes are
// dropped before splitting; \n, \r\n and \r all end a line.
func (s Source) Lines() []string {
	text := newlines.Replace(textenc.Decode(s.Content))
	raw := strings.Split(text, "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		if w := normalize(line); w != "" {
			out = append(out, w)
		}
	}
	return out
}

// Polarity is the sentiment class a word-list file name maps to.
type Polarity int

const (
	Unclassified Polarity = iota
	Positive
	Negative
)

func (p Polarity) String() string {
	switch p {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "unclassified"
	}
}

// Classify maps a word-list file name to a polarity by case-insensitive
// substring match. "positive" is checked first.
func Classify(name string) Polarity {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "positive"):
		return Positive
	case strings.Contains(lower, "negative"):
		return Negative
	default:
		return Unclassified
	}
}

// ReadDir collects every *.txt file directly under dir, sorted by name.
// A missing directory yields an error wrapping internalerr.ErrSourceMissing.
func ReadDir(dir string) ([]Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", internalerr.ErrSourceMissing, dir)
		}
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var sources []Source
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read word list %s: %w", e.Name(), err)
		}
		sources = append(sources, Source{Name: e.Name(), Content: data})
	}
	sort.Slice(sources, func(i, j int) bool {
		return sources[i].Name < sources[j].Name
	})
	return sources, nil
}
