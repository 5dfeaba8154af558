// Package htmldoc reads HTML pattern exports as plain text lines. Some
// charting tools export the word chart as an HTML table or a run of
// paragraphs; this reader flattens block-level elements into one line
// each (table rows become their cells space-joined) so the wordchart
// parser can consume the result like extracted document text.
package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// Reader provides access to HTML document text content.
type Reader struct {
	title string
	lines []string
}

// Open opens an HTML file for reading.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses HTML from an io.Reader.
func OpenReader(r io.Reader) (*Reader, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	reader := &Reader{}
	reader.collect(doc)
	return reader, nil
}

// Title returns the document title, if any.
func (r *Reader) Title() string {
	return r.title
}

// Lines returns the flattened block-level text lines in document order.
func (r *Reader) Lines() []string {
	return r.lines
}

// Text returns the document text, one block element per line.
func (r *Reader) Text() string {
	return strings.Join(r.lines, "\n")
}

// skippedElements never contribute text.
var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"iframe":   true,
}

func (r *Reader) collect(n *html.Node) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript", "iframe":
			return

		case "title":
			r.title = strings.TrimSpace(textContent(n))
			return

		case "tr":
			// One chart row per table row: cells space-joined.
			var cells []string
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
					if text := strings.TrimSpace(textContent(c)); text != "" {
						cells = append(cells, text)
					}
				}
			}
			if len(cells) > 0 {
				r.lines = append(r.lines, strings.Join(cells, " "))
			}
			return

		case "p", "li", "h1", "h2", "h3", "h4", "h5", "h6":
			if text := strings.TrimSpace(textContent(n)); text != "" {
				r.lines = append(r.lines, text)
			}
			return

		case "div":
			// Leaf divs act like paragraphs; container divs are traversed.
			if !hasBlockChild(n) {
				if text := strings.TrimSpace(textContent(n)); text != "" {
					r.lines = append(r.lines, text)
				}
				return
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.collect(c)
	}
}

// textContent concatenates all text nodes beneath n, collapsing runs of
// whitespace to single spaces.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
			sb.WriteString(" ")
			return
		}
		if node.Type == html.ElementNode && skippedElements[node.Data] {
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

var blockElements = map[string]bool{
	"p": true, "div": true, "table": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

func hasBlockChild(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && blockElements[c.Data] {
			return true
		}
	}
	return false
}
