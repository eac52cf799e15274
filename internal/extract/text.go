package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// selectionText flattens all descendant text nodes of a selection into
// normalized text: whitespace runs collapsed to single spaces, block-level
// boundaries preserved as single newlines.
func selectionText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		collectText(&b, n)
	}
	return normalizeWhitespace(b.String())
}

func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode && isBlock(n.Data) {
		b.WriteString("\n")
	}
	if n.Type == html.TextNode {
		// Collapse the text node's own whitespace here so that source-level
		// line wrapping never masquerades as a paragraph break. Only block
		// boundaries produce newlines.
		b.WriteString(collapseSpaces(n.Data))
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
	if n.Type == html.ElementNode && isBlock(n.Data) {
		b.WriteString("\n")
	}
}

func isBlock(tag string) bool {
	switch strings.ToLower(tag) {
	case "p", "h1", "h2", "h3", "h4", "h5", "h6", "li", "ul", "ol",
		"div", "section", "article", "main", "aside", "blockquote",
		"pre", "table", "tr", "br", "hr":
		return true
	}
	return false
}

// normalizeWhitespace trims every line, collapses internal runs, and drops
// blank lines entirely so paragraph breaks come out as single newlines.
func normalizeWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		out = append(out, collapseSpaces(trimmed))
	}
	return strings.Join(out, "\n")
}

func collapseSpaces(s string) string {
	var b strings.Builder
	lastSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return b.String()
}
