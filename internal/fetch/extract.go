package fetch

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

const (
	titleNotFound = "Title Not Found"
	textNotFound  = "Article Text Not Found"
)

// Article is the readable part of a page.
type Article struct {
	Title string
	Text  string
}

// Extract parses an HTML page. The title comes from the first <h1>, then
// <title>; the text from the first element that is an <article> or carries
// the article-content / entry-content class or the main-content id.
func Extract(r io.Reader) (Article, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Article{}, err
	}

	a := Article{Title: titleNotFound, Text: textNotFound}
	if n := find(doc, isTag("h1")); n != nil {
		if t := innerText(n); t != "" {
			a.Title = t
		}
	} else if n := find(doc, isTag("title")); n != nil {
		if t := innerText(n); t != "" {
			a.Title = t
		}
	}
	if n := find(doc, isContent); n != nil {
		if t := innerText(n); t != "" {
			a.Text = t
		}
	}
	return a, nil
}

func isTag(name string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == name
	}
}

func isContent(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if n.Data == "article" {
		return true
	}
	for _, attr := range n.Attr {
		switch attr.Key {
		case "id":
			if attr.Val == "main-content" {
				return true
			}
		case "class":
			for _, c := range strings.Fields(attr.Val) {
				if c == "article-content" || c == "entry-content" {
					return true
				}
			}
		}
	}
	return false
}

// find returns the first node in document order matching pred.
func find(n *html.Node, pred func(*html.Node) bool) *html.Node {
	if pred(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if m := find(c, pred); m != nil {
			return m
		}
	}
	return nil
}

var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "dd": true, "div": true, "dl": true, "dt": true,
	"figcaption": true, "figure": true, "footer": true, "h1": true,
	"h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "li": true, "main": true, "nav": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true,
	"tr": true, "ul": true,
}

// innerText renders visible text with one line per block element.
func innerText(n *html.Node) string {
	var lines []string
	var cur strings.Builder

	flush := func() {
		if line := strings.Join(strings.Fields(cur.String()), " "); line != "" {
			lines = append(lines, line)
		}
		cur.Reset()
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			cur.WriteString(n.Data)
			cur.WriteByte(' ')
			return
		case html.ElementNode:
			switch n.Data {
			case "script", "style", "noscript", "template":
				return
			}
		}
		block := n.Type == html.ElementNode && blockTags[n.Data]
		if block {
			flush()
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if block {
			flush()
		}
	}
	walk(n)
	flush()

	return strings.Join(lines, "\n")
}
