package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/cognicore/readmetrics/internal/corpus"
	"github.com/cognicore/readmetrics/internal/logger"
)

const page = `<!DOCTYPE html>
<html><head><title>Site Title</title><style>p{color:red}</style></head>
<body>
<nav><p>Menu</p></nav>
<h1>  Rising   AI Adoption </h1>
<div class="post entry-content">
  <p>First paragraph with <b>bold</b> text.</p>
  <script>var x = 1;</script>
  <p>Second paragraph.</p>
</div>
</body></html>`

func TestExtract(t *testing.T) {
	a, err := Extract(strings.NewReader(page))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if a.Title != "Rising AI Adoption" {
		t.Errorf("title = %q", a.Title)
	}
	want := "First paragraph with bold text.\nSecond paragraph."
	if a.Text != want {
		t.Errorf("text = %q, want %q", a.Text, want)
	}
}

func TestExtractFallbacks(t *testing.T) {
	tests := []struct {
		name      string
		html      string
		wantTitle string
		wantText  string
	}{
		{
			name:      "title tag when no h1",
			html:      `<html><head><title>Only Title</title></head><body><article>Body</article></body></html>`,
			wantTitle: "Only Title",
			wantText:  "Body",
		},
		{
			name:      "nothing found",
			html:      `<html><body><p>loose</p></body></html>`,
			wantTitle: titleNotFound,
			wantText:  textNotFound,
		},
		{
			name:      "main-content id",
			html:      `<html><body><h1>H</h1><section id="main-content">Main</section></body></html>`,
			wantTitle: "H",
			wantText:  "Main",
		},
		{
			name:      "first match in document order",
			html:      `<html><body><div class="article-content">A</div><article>B</article></body></html>`,
			wantTitle: titleNotFound,
			wantText:  "A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Extract(strings.NewReader(tt.html))
			if err != nil {
				t.Fatalf("Extract: %v", err)
			}
			if a.Title != tt.wantTitle || a.Text != tt.wantText {
				t.Errorf("got (%q, %q), want (%q, %q)", a.Title, a.Text, tt.wantTitle, tt.wantText)
			}
		})
	}
}

func TestWriteArticle(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	path, err := WriteArticle(dir, "blackassign0001", Article{Title: "T", Text: "Body"})
	if err != nil {
		t.Fatalf("WriteArticle: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "Title: T\n\nBody" {
		t.Errorf("unexpected file content %q", data)
	}
	if filepath.Base(path) != "blackassign0001.txt" {
		t.Errorf("unexpected file name %s", path)
	}
}

func TestFetchAll(t *testing.T) {
	var (
		mu     sync.Mutex
		agents []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		agents = append(agents, r.UserAgent())
		mu.Unlock()
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(page))
	}))
	defer srv.Close()

	f := New(Options{UserAgent: "readmetrics-test", Client: srv.Client(), Logger: logger.Discard()})
	dir := t.TempDir()
	metas := []corpus.Meta{
		{ID: "a", URL: srv.URL + "/a"},
		{ID: "b", URL: srv.URL + "/missing"},
		{ID: "c"},
	}

	n, err := f.FetchAll(context.Background(), metas, dir)
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 article written, got %d", n)
	}
	if _, err := os.Stat(filepath.Join(dir, "a.txt")); err != nil {
		t.Errorf("expected a.txt: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "b.txt")); !os.IsNotExist(err) {
		t.Error("b.txt should not exist")
	}
	mu.Lock()
	defer mu.Unlock()
	for _, ua := range agents {
		if ua != "readmetrics-test" {
			t.Errorf("unexpected user agent %q", ua)
		}
	}
}

func TestFetchCancelled(t *testing.T) {
	f := New(Options{Rate: 0.001, Logger: logger.Discard()})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := f.Fetch(ctx, "http://127.0.0.1:1/"); err == nil {
		t.Error("expected error on cancelled context")
	}
}
