package scrape

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// parseDocument builds an HTML node tree from a fetched page body
func parseDocument(r io.Reader) (*html.Node, error) {
	return html.Parse(r)
}

// pageText flattens a document's visible text into one space-joined string.
// Script and style contents are skipped.
func pageText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				if b.Len() > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// elementText returns the flattened text of the first element with the
// given tag name, or "" when the document has none.
func elementText(n *html.Node, tag string) string {
	el := findElement(n, tag)
	if el == nil {
		return ""
	}
	return pageText(el)
}

// findElement walks the tree depth-first for the first element with the
// given tag name
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}
