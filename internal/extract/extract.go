package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Coding-4A11j/chatbot-Scrape-Website/internal/fetch"
)

// ErrUnparseable reports markup so broken the parser could not build any tree.
var ErrUnparseable = errors.New("extract: unparseable document")

// NoTitleSentinel is how callers should present a page that has no <title>.
// The Title facet itself stays empty so the assembled context can omit it.
const NoTitleSentinel = "No title found"

// Per-facet ceilings. Each facet is capped independently; the assembled
// context has no further global cap.
const (
	MaxMainContentBytes = 3000
	MaxFullTextBytes    = 5000
	MaxHeadings         = 20
	MaxLinks            = 15
)

// Heading is one h1..h6 element in document order.
type Heading struct {
	Level int
	Text  string
}

// Link is one anchor with a usable href. Text falls back to the href when the
// anchor has no visible text.
type Link struct {
	Text string
	Href string
}

// Facets is the fixed-shape result of one extraction. Every field is
// independently optional; absence is a terminal state, never an error.
type Facets struct {
	Title       string
	Description string
	Headings    []Heading
	MainContent string
	Links       []Link
	// FullText is the whole pruned document's text. It is kept for callers
	// and diagnostics and never enters the assembled context.
	FullText string
}

// Extract parses the document, prunes boilerplate subtrees, and pulls each
// facet best-effort. Partial extraction is success; only a parse that yields
// no tree at all is an error.
func Extract(doc *fetch.RawDocument) (*Facets, error) {
	d, err := goquery.NewDocumentFromReader(strings.NewReader(doc.HTML))
	if err != nil || d == nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}

	// Structural pruning before any facet work so script bodies, styles, and
	// chrome (nav/footer/header) cannot contaminate text.
	d.Find("script, style, nav, footer, header").Remove()

	return &Facets{
		Title:       extractTitle(d),
		Description: extractDescription(d),
		Headings:    extractHeadings(d),
		MainContent: extractMainContent(d),
		Links:       extractLinks(d),
		FullText:    extractFullText(d),
	}, nil
}

func extractTitle(d *goquery.Document) string {
	return strings.TrimSpace(d.Find("title").First().Text())
}

func extractDescription(d *goquery.Document) string {
	var desc string
	d.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		name, _ := s.Attr("name")
		if !strings.EqualFold(name, "description") {
			return true
		}
		if content, ok := s.Attr("content"); ok {
			desc = strings.TrimSpace(content)
		}
		return false
	})
	return desc
}

// extractMainContent runs the priority search: <main>, then <article>, then
// the first container whose class or id mentions "content", then the pruned
// body. First match wins even when a better candidate exists later; the
// tie-break order is part of the observable contract.
func extractMainContent(d *goquery.Document) string {
	root := d.Find("main").First()
	if root.Length() == 0 {
		root = d.Find("article").First()
	}
	if root.Length() == 0 {
		root = findContentContainer(d)
	}
	if root == nil || root.Length() == 0 {
		root = d.Find("body")
	}
	return truncateBytes(selectionText(root), MaxMainContentBytes)
}

func findContentContainer(d *goquery.Document) *goquery.Selection {
	var found *goquery.Selection
	d.Find("div, section").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		id, _ := s.Attr("id")
		if strings.Contains(strings.ToLower(class), "content") ||
			strings.Contains(strings.ToLower(id), "content") {
			found = s
			return false
		}
		return true
	})
	return found
}

func extractHeadings(d *goquery.Document) []Heading {
	var out []Heading
	d.Find("h1, h2, h3, h4, h5, h6").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		name := goquery.NodeName(s)
		level := int(name[1] - '0')
		out = append(out, Heading{
			Level: level,
			Text:  collapseSpaces(strings.TrimSpace(s.Text())),
		})
		return len(out) < MaxHeadings
	})
	return out
}

func extractLinks(d *goquery.Document) []Link {
	var out []Link
	d.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		// Same-page fragment references carry no grounding value.
		if href == "" || strings.HasPrefix(href, "#") {
			return true
		}
		text := collapseSpaces(strings.TrimSpace(s.Text()))
		if text == "" {
			text = href
		}
		out = append(out, Link{Text: text, Href: href})
		return len(out) < MaxLinks
	})
	return out
}

func extractFullText(d *goquery.Document) string {
	return truncateBytes(selectionText(d.Selection), MaxFullTextBytes)
}
